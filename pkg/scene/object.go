// Package scene provides the host objects animations attach to.
//
// The scheduler in pkg/animation never inspects a host object; the
// association exists so external subsystems can map an animable back to
// its scene placement. Hierarchy, transforms and rendering live in those
// subsystems, not here.
package scene

import "sync/atomic"

var nextObjectID atomic.Uint64

// Object is an addressable scene entity that animations attach to.
type Object struct {
	id   uint64
	name string
}

// NewObject creates an object with the given name and a process-unique ID.
func NewObject(name string) *Object {
	return &Object{
		id:   nextObjectID.Add(1),
		name: name,
	}
}

// ID returns the object's process-unique identifier.
func (o *Object) ID() uint64 { return o.id }

// Name returns the object's name. Names are caller-assigned and need not
// be unique; use ID for identity.
func (o *Object) Name() string { return o.name }

// String returns the name, for diagnostics.
func (o *Object) String() string { return o.name }
