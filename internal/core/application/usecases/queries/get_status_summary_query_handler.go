package queries

import (
	"context"

	"orderservice/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetStatusSummaryQueryHandler counts orders per status straight off the
// database, bypassing the aggregate: this is reporting, not domain logic.
type GetStatusSummaryQueryHandler struct {
	db *gorm.DB
}

// NewGetStatusSummaryQueryHandler creates a handler for status summaries.
// Requires a GORM database connection for query execution.
func NewGetStatusSummaryQueryHandler(db *gorm.DB) GetStatusSummaryQueryHandler {
	return GetStatusSummaryQueryHandler{db: db}
}

// Handle executes the summary query. Statuses with no orders are absent from
// the result.
func (h GetStatusSummaryQueryHandler) Handle(
	ctx context.Context,
	query GetStatusSummaryQuery,
) ([]StatusCountResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	summary := make([]StatusCountResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			COUNT(*)
		FROM orders
		GROUP BY status
		ORDER BY status
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var statusName string
		var count int64

		if err = rows.Scan(&statusName, &count); err != nil {
			return nil, err
		}

		status, statusErr := order.ParseStatus(statusName)
		if statusErr != nil {
			return nil, statusErr
		}

		summary = append(summary, StatusCountResponse{Status: status, Count: count})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return summary, nil
}
