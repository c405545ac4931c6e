// Package hydro defines the capability contract shared by every
// hydrodynamic backend that supplies forcing values to the coral
// simulation.
//
// A backend implements [Model], is bound at construction time, and is
// driven through the Initiate/Update/Finalise lifecycle:
//
//	m := reef.New(cfg)
//	if err := m.Initiate(); err != nil { ... }
//	forcing, err := m.Update(c, stormCat)
//	...
//	m.Finalise()
//
// Capabilities a backend cannot supply (for example configuration files
// on an analytical backend) fail with [ErrNotImplemented] rather than
// returning a silent default.
package hydro
