// Package order implements the order lifecycle: cart creation, line item
// management, payment, cancellation, and shipping.
//
// Payment is the one flow that mutates two aggregate types together: every
// referenced product's stock is re-checked and decremented in the same unit
// of consistency that flips the order to paid. The UnitOfWork interface
// defined here is the transactional boundary the persistence layer provides
// for that flow.
//
// Repository implementations live in repository/postgres/ and repository/memory/.
package order
