// Package services provides domain services of the vendorflow system: business logic
// that reads several aggregates at once and does not belong to either of them.
//
// The package includes:
//   - PerformanceCalculator: derives a vendor's rolling metrics from its purchase orders
//
// PerformanceCalculator is pure. Loading the orders and saving the vendor is the job of
// the application layer.
package services
