// Package ports defines the interfaces between the navigation core and
// its collaborators: the asynchronous state sources owned by the auth
// subsystem, the pending-route store, the navigation stack and the
// external auth handler.
//
// The engine and trigger depend only on these interfaces; concrete
// implementations live under pkg/adapters. Contract test helpers for
// store implementations are exported here so every adapter runs the same
// suite.
package ports
