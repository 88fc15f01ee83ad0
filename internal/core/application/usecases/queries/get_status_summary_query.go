package queries

import (
	"errors"

	"orderservice/internal/core/domain/model/order"
	"orderservice/internal/pkg/guard"
)

// ErrGetStatusSummaryQueryIsNotConstructed is returned when a
// GetStatusSummaryQuery was not created via NewGetStatusSummaryQuery.
var ErrGetStatusSummaryQueryIsNotConstructed = errors.New(
	"GetStatusSummaryQuery must be created via NewGetStatusSummaryQuery constructor",
)

// GetStatusSummaryQuery retrieves order counts grouped by status.
// Parameterless; used by the periodic status report job.
type GetStatusSummaryQuery struct {
	guard guard.ConstructorGuard
}

// NewGetStatusSummaryQuery creates a query for per-status order counts.
func NewGetStatusSummaryQuery() GetStatusSummaryQuery {
	return GetStatusSummaryQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetStatusSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetStatusSummaryQueryIsNotConstructed)
}

// StatusCountResponse is one row of the status summary.
type StatusCountResponse struct {
	Status order.Status
	Count  int64
}
