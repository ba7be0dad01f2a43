package tss

import "fmt"

// PartyID represents a participant in a multi-party protocol.
// It must be unique within a session.
type PartyID interface {
	// Index returns the numeric participant identifier. Proofs are bound to
	// this value.
	Index() int32

	// Moniker returns a human-readable name for the party (optional).
	Moniker() string
}

// Party is a basic implementation of PartyID.
type Party struct {
	ID   int32
	Name string
}

// NewParty returns a Party with the given index and moniker.
func NewParty(index int32, moniker string) *Party {
	return &Party{ID: index, Name: moniker}
}

func (p *Party) Index() int32 { return p.ID }

func (p *Party) Moniker() string {
	if p.Name == "" {
		return fmt.Sprintf("party-%d", p.ID)
	}
	return p.Name
}
