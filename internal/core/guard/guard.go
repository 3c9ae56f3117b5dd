// Package guard carries the re-entrancy marker for field synchronization.
//
// Every write to an axis field travels with a Pass. A user edit travels with a
// free pass and is mirrored onto the bound object; writes made while the
// system itself is synchronizing travel with a held pass and are not mirrored
// back, which breaks the field -> object -> field loop.
package guard

import "github.com/google/uuid"

type Pass struct {
	id     string
	origin string
	held   bool
}

// User is the pass for operator-initiated edits.
func User() Pass {
	return Pass{origin: "user"}
}

// Begin opens a system-initiated pass.
func Begin(origin string) Pass {
	return Pass{id: uuid.NewString(), origin: origin, held: true}
}

// Held reports whether writes in this pass must be suppressed.
func (p Pass) Held() bool { return p.held }

func (p Pass) Origin() string { return p.origin }

// ID is empty for user passes.
func (p Pass) ID() string { return p.id }
