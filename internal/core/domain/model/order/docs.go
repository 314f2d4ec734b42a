// Package order provides domain entities and business logic for the canteen
// order lifecycle. It implements the Order aggregate root with its status
// state machine, dispute overlay and immutable item snapshots.
//
// The package includes:
//   - Order: the aggregate root managing identity, the item snapshot taken at
//     creation, and all lifecycle mutations
//   - Status: a closed state machine over Pending, Confirmed, Delivered,
//     Settled and Cancelled
//   - Item: the per-line snapshot of catalog name and price at order time
//
// Key business rules:
//   - Self-placed orders can be cancelled within a 60-second grace window,
//     admin-placed orders within a 24-hour contest window
//   - Disputes can be raised once per order, never on terminal orders
//   - The admin advance path moves forward only and cannot reach the
//     terminal states; settlement requires Delivered status
//   - Totals are captured at creation in integer minor units and never
//     recomputed from live catalog prices
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
