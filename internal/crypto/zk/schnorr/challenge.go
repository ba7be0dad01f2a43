package schnorr

import (
	"encoding/binary"
	"errors"
	"math/big"

	"github.com/smallyu/go-dlogproof/internal/crypto/curves"
	"github.com/smallyu/go-dlogproof/internal/crypto/hashes"
)

// ErrDerivationFailed is returned when the Fiat-Shamir challenge reduces to
// zero. A zero challenge makes the proof relation trivial, so the enclosing
// prove or verify call is aborted; it is not a rejection of the proof.
var ErrDerivationFailed = errors.New("schnorr: challenge derivation yielded zero scalar")

// Challenge computes
//
//	c = H(sid || be32(pid) || P_1 || ... || P_n) mod q
//
// where every P_i is fed in its uncompressed serialization, in the given
// order.
func Challenge(curve curves.Curve, h hashes.Hash, sessionID string, participantID int32, points ...curves.Point) (curves.Scalar, error) {
	st := h.New()
	st.Write([]byte(sessionID))

	var pid [4]byte
	binary.BigEndian.PutUint32(pid[:], uint32(participantID))
	st.Write(pid[:])

	for _, p := range points {
		st.Write(p.Bytes())
	}

	digest := st.Sum(nil)
	c := curve.NewScalarFromBigInt(new(big.Int).SetBytes(digest))
	if c.IsZero() {
		return nil, ErrDerivationFailed
	}
	return c, nil
}
