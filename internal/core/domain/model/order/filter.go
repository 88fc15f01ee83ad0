package order

// Filter describes a dynamic search condition over orders. Each populated
// field contributes an IN-clause; populated fields combine conjunctively.
// The zero Filter matches every order: callers must treat "no clauses"
// as "select all", never as "select none".
type Filter struct {
	// Statuses restricts results to orders in any of the listed statuses.
	Statuses []Status

	// IDs restricts results to orders with any of the listed identifiers.
	IDs []int64
}

// Clause is one store-agnostic IN-condition of a filter: Field must take one
// of Values. The persistence adapter translates clauses into its native query
// form so that filtering composes with pagination inside the store.
type Clause struct {
	Field  string
	Values []any
}

// Filterable field names used in clauses.
const (
	FieldID     = "id"
	FieldStatus = "status"
)

// Validate checks that every listed status is a known status value.
func (f Filter) Validate() error {
	for _, s := range f.Statuses {
		if err := s.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// IsEmpty reports whether the filter carries no conditions.
func (f Filter) IsEmpty() bool {
	return len(f.Statuses) == 0 && len(f.IDs) == 0
}

// Clauses builds the conjunction of zero, one, or two IN-clauses from the
// filter. An empty filter yields nil, meaning unrestricted selection.
func (f Filter) Clauses() []Clause {
	var clauses []Clause

	if len(f.IDs) > 0 {
		values := make([]any, len(f.IDs))
		for i, id := range f.IDs {
			values[i] = id
		}
		clauses = append(clauses, Clause{Field: FieldID, Values: values})
	}

	if len(f.Statuses) > 0 {
		values := make([]any, len(f.Statuses))
		for i, s := range f.Statuses {
			values[i] = string(s)
		}
		clauses = append(clauses, Clause{Field: FieldStatus, Values: values})
	}

	return clauses
}
