// Package kernel holds the primitives shared by every aggregate of the vendorflow domain.
//
// The package includes:
//   - UUID: the identifier value object used for orders, vendors and purchasers
//   - Role and Actor: the closed set of parties that may act on a purchase order,
//     together with the identity the caller resolved for the current request
//
// Values in this package are immutable and safe for concurrent use.
package kernel
