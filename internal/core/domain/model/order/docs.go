// Package order provides domain entities and business logic for order
// management. It implements the Order aggregate root with lifecycle
// management and state transitions.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, ownership, and lifecycle
//   - OrderItem: A quantity of a specific catalog item attached to one order
//   - Status: A state machine that enforces valid order status transitions
//   - Filter: A store-agnostic description of dynamic search conditions
//
// Key business rules:
//   - Orders are created in NEW status with a fixed creation date
//   - Status follows the workflow NEW -> PROCESSING -> SHIPPED -> DELIVERED,
//     with CANCELLED reachable from every non-terminal status
//   - DELIVERED and CANCELLED are terminal
//   - The item list is replaced as a whole through reconciliation; item
//     identity for the merge is the referenced catalog item
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
