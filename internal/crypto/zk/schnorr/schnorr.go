// Package schnorr implements a non-interactive Schnorr proof of knowledge of
// a discrete logarithm, bound to a session and a participant.
package schnorr

import (
	"errors"
	"fmt"
	"io"

	"github.com/smallyu/go-dlogproof/internal/crypto/curves"
	"github.com/smallyu/go-dlogproof/internal/crypto/hashes"
)

var (
	// ErrNilInput is returned by Prove when a required argument is missing.
	ErrNilInput = errors.New("schnorr: inputs cannot be nil")

	// ErrCurveMismatch is returned by Prove when a key or base point is not
	// an element of the curve the proof is made over.
	ErrCurveMismatch = errors.New("schnorr: input is not an element of the curve")
)

// Proof represents a Schnorr proof of knowledge of a discrete logarithm.
// Proves knowledge of x such that Y = x * B for a base point B.
type Proof struct {
	Commitment curves.Point  // R = k * B
	Response   curves.Scalar // s = k + c * x
}

// Prove generates a proof for the secret x and public key Y = x*B.
// The caller is responsible for Y actually being x*B; it is not re-checked.
// The nonce k is drawn from rand on every call and never reused.
func Prove(curve curves.Curve, h hashes.Hash, rand io.Reader, sessionID string, participantID int32, x curves.Scalar, Y, B curves.Point) (*Proof, error) {
	if curve == nil || h.IsZero() || rand == nil || x == nil || Y == nil || B == nil {
		return nil, ErrNilInput
	}
	if !ownsScalar(curve, x) || !ownsPoint(curve, Y) || !ownsPoint(curve, B) {
		return nil, ErrCurveMismatch
	}

	// 1. Generate random nonce k
	k, err := curve.RandomScalar(rand)
	if err != nil {
		return nil, fmt.Errorf("schnorr: failed to generate nonce: %w", err)
	}

	// 2. Compute R = k * B
	R := B.ScalarMult(k)

	// 3. Compute challenge c = H(sid, pid, B, Y, R)
	c, err := Challenge(curve, h, sessionID, participantID, B, Y, R)
	if err != nil {
		return nil, err
	}

	// 4. Compute s = k + x * c mod q
	s := k.Add(x.Mul(c))

	return &Proof{
		Commitment: R,
		Response:   s,
	}, nil
}

// Verify checks the proof for public key Y and base point B under the given
// context. It returns false for any proof that does not satisfy
// s*B == R + c*Y, including one whose elements belong to another curve, and an
// error only when the challenge cannot be derived.
func (p *Proof) Verify(curve curves.Curve, h hashes.Hash, sessionID string, participantID int32, Y, B curves.Point) (bool, error) {
	if p == nil || p.Commitment == nil || p.Response == nil || curve == nil || h.IsZero() || Y == nil || B == nil {
		return false, nil
	}
	if !ownsPoint(curve, p.Commitment) || !ownsScalar(curve, p.Response) || !ownsPoint(curve, Y) || !ownsPoint(curve, B) {
		return false, nil
	}

	// 1. Compute challenge c = H(sid, pid, B, Y, R)
	c, err := Challenge(curve, h, sessionID, participantID, B, Y, p.Commitment)
	if err != nil {
		return false, err
	}

	// 2. LHS = s * B
	lhs := B.ScalarMult(p.Response)

	// 3. RHS = R + c * Y
	rhs := p.Commitment.Add(Y.ScalarMult(c))

	return lhs.Equal(rhs), nil
}

// ownsPoint reports whether p round-trips through curve's own parser, which
// rejects foreign encodings and points outside the prime-order group.
func ownsPoint(curve curves.Curve, p curves.Point) bool {
	q, err := curve.NewPointFromBytes(p.Bytes())
	return err == nil && q.Equal(p)
}

// ownsScalar reports whether s round-trips through curve's own parser.
func ownsScalar(curve curves.Curve, s curves.Scalar) bool {
	t, err := curve.NewScalarFromBytes(s.Bytes())
	return err == nil && t.Equal(s)
}
