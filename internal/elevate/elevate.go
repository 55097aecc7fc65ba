// Package elevate checks for administrator rights and relaunches the
// current executable through the UAC "runas" verb.
package elevate

// Elevator is the privilege facility used at startup.
type Elevator interface {
	// Required reports whether this platform needs an elevation check.
	Required() bool

	// IsElevated reports whether the process already has admin rights.
	IsElevated() bool

	// Relaunch starts a new elevated copy of the process. It returns once
	// the request has been handed to the OS; it does not wait for or
	// observe the new process.
	Relaunch() error
}

// System is the Elevator for the running OS.
type System struct{}

var _ Elevator = System{}
