package domain

import "errors"

// ErrTableVersion is returned when a routing table file declares a version
// this build does not understand.
var ErrTableVersion = errors.New("unsupported routing table version")

// ErrRouteConflict is returned when a routing table registers the same
// route identifier twice.
var ErrRouteConflict = errors.New("duplicate route identifier")
