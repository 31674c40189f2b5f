// Package resolve turns raw catalog records into canonical assets and
// applies the filtering pipeline: expansion, product-boundary
// enforcement, explicit filters, and presentation defaults.
//
// Everything here is pure computation over in-memory records. The
// pipeline order is fixed: the product boundary is enforced before any
// other predicate and downstream consumers must never re-derive it.
package resolve
