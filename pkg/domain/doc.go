// Package domain contains the core value types of the navigation
// authorization subsystem: state snapshots, deep-link results, routing
// decisions and the lifecycle events emitted while deciding.
//
// Everything in this package is a plain value. Snapshots are assembled
// fresh for every evaluation and never mutated; decisions are produced by
// the engine and consumed by the trigger. The only mutable state in the
// subsystem lives behind the ports.PendingRouteStore interface.
package domain
