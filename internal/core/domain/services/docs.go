// Package services implements the order lifecycle engine and the rules it
// composes:
//
//   - AuthorizationPolicy: which actor may request which transition
//   - StockGuard: the creation-time inventory precondition
//   - DriverAssigner: the pending -> assigned workflow that binds a driver
//   - LifecycleEngine: the single entry point for status changes
//   - CountByStatus: the read-side aggregation used by dashboards
//
// Everything here is synchronous and free of I/O. Callers load orders, users
// and stock through the ports package, call the engine, and persist the
// result; a rejected call leaves the order untouched.
package services
