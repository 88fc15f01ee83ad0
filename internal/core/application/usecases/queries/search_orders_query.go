package queries

import (
	"errors"

	"orderservice/internal/core/domain/model/order"
	"orderservice/internal/core/ports"
	"orderservice/internal/pkg/guard"
)

// ErrSearchOrdersQueryIsNotConstructed is returned when a SearchOrdersQuery
// was not created via NewSearchOrdersQuery.
var ErrSearchOrdersQueryIsNotConstructed = errors.New(
	"SearchOrdersQuery must be created via NewSearchOrdersQuery constructor",
)

// SearchOrdersQuery retrieves one page of orders matching a dynamic filter,
// with owners bulk-resolved from the user service.
type SearchOrdersQuery struct {
	filter order.Filter
	page   ports.PageRequest
	creds  ports.Credentials

	guard guard.ConstructorGuard
}

// NewSearchOrdersQuery creates a search query. An empty filter selects all
// orders; the page request bounds the result size.
func NewSearchOrdersQuery(filter order.Filter, page ports.PageRequest, creds ports.Credentials) (SearchOrdersQuery, error) {
	if err := filter.Validate(); err != nil {
		return SearchOrdersQuery{}, err
	}
	if err := creds.Validate(); err != nil {
		return SearchOrdersQuery{}, err
	}

	return SearchOrdersQuery{
		filter: filter,
		page:   page,
		creds:  creds,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q SearchOrdersQuery) Validate() error {
	return q.guard.Validate(ErrSearchOrdersQueryIsNotConstructed)
}

// Filter returns the search filter.
func (q SearchOrdersQuery) Filter() order.Filter {
	return q.filter
}

// Page returns the page request.
func (q SearchOrdersQuery) Page() ports.PageRequest {
	return q.page
}

// Credentials returns the authenticated caller's credentials.
func (q SearchOrdersQuery) Credentials() ports.Credentials {
	return q.creds
}
