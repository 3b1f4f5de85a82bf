// Package profiler records nested scopes into a fixed ring and writes them as
// a speedscope "evented" profile. Without the "profile" build tag every call
// is a no-op.
package profiler

import "errors"

var (
	// ErrDisabled is returned by Dump in builds without the "profile" tag.
	ErrDisabled = errors.New("profiler: built without the profile tag")
	ErrNoEvents = errors.New("profiler: no events to dump")
)
