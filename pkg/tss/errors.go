package tss

import (
	"fmt"
	"strings"
)

// Blame attributes a failed check to the party whose message caused it,
// within the session the message was sent for.
type Blame struct {
	SessionID string
	Party     PartyID
	Reason    string
	Err       error
}

// NewBlame returns a Blame for party in sessionID. err may be nil.
func NewBlame(sessionID string, party PartyID, reason string, err error) *Blame {
	return &Blame{SessionID: sessionID, Party: party, Reason: reason, Err: err}
}

func (b *Blame) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "session %q: party %d (%s): %s", b.SessionID, b.Party.Index(), b.Party.Moniker(), b.Reason)
	if b.Err != nil {
		fmt.Fprintf(&sb, ": %v", b.Err)
	}
	return sb.String()
}

func (b *Blame) Unwrap() error { return b.Err }
