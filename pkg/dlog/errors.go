package dlog

import (
	"errors"

	"github.com/smallyu/go-dlogproof/internal/crypto/zk/schnorr"
)

var (
	// ErrDerivationFailed means the Fiat-Shamir challenge reduced to zero. The
	// operation was aborted; the proof was neither produced nor judged.
	ErrDerivationFailed = schnorr.ErrDerivationFailed

	// ErrNilInput is returned when a required key or point is missing.
	ErrNilInput = schnorr.ErrNilInput

	// ErrCurveMismatch is returned when a key or base point belongs to a
	// different curve than the suite.
	ErrCurveMismatch = schnorr.ErrCurveMismatch

	// ErrWeakHash is returned by NewSuite when the hash output is shorter
	// than the group order.
	ErrWeakHash = errors.New("dlog: hash output shorter than group order")

	// ErrInvalidProof is returned when an encoded proof cannot be decoded for
	// the suite's curve.
	ErrInvalidProof = errors.New("dlog: invalid proof encoding")
)

// IsFatal reports whether err signals that a proof could not be evaluated at
// all, as opposed to being rejected.
func IsFatal(err error) bool {
	return errors.Is(err, ErrDerivationFailed)
}
