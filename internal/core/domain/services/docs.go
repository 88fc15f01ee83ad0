// Package services contains domain services: business logic that spans
// entities and does not naturally belong to a single aggregate.
//
// ItemReconciler implements the order item merge algorithm used when an
// order's item list is created or updated. It preserves the identity of
// retained items, resolves new items through the catalog, and replaces
// the list as a whole in the order of the submitted requests.
package services
