// Package order contains the order aggregate: the Order root, its Item
// entities, and the Status state machine.
//
// Two invariants are owned by this package:
//
//   - The stored total always equals the sum of quantity × price-at-time over
//     the order's items. The total is recomputed by the aggregate on every
//     path that sets the item set; it is never accepted from a caller.
//   - Status changes follow the allowed transition set. Anything outside the
//     set fails with ErrInvalidTransition and leaves the order untouched.
//
// Item prices are frozen at order placement. They are captured from the cart
// at creation time and never recomputed from the catalog, so later catalog
// price changes do not affect existing orders.
package order
