package dlog

import (
	"encoding/json"
	"fmt"

	"github.com/smallyu/go-dlogproof/internal/crypto/zk/schnorr"
	"github.com/smallyu/go-dlogproof/internal/wire"
	"github.com/smallyu/go-dlogproof/pkg/tss"
)

// Proof is a non-interactive proof of knowledge of a discrete logarithm. It is
// only meaningful together with the session id, participant id, public key
// and base point it was generated for.
type Proof struct {
	Commitment Point  // R = k·B
	Response   Scalar // s = k + x·c
}

// GenerateProof proves knowledge of privateKey such that
// publicKey = privateKey·basePoint. The relation is not re-checked; passing a
// mismatched pair yields a proof that does not verify.
func (s *Suite) GenerateProof(sessionID string, participantID int32, privateKey Scalar, publicKey, basePoint Point) (*Proof, error) {
	p, err := schnorr.Prove(s.curve, s.hash, s.rand, sessionID, participantID, privateKey, publicKey, basePoint)
	if err != nil {
		return nil, err
	}
	return &Proof{Commitment: p.Commitment, Response: p.Response}, nil
}

// VerifyProof checks proof against the given context. It returns (false, nil)
// for a proof that does not hold and (false, ErrDerivationFailed) when the
// challenge could not be derived.
func (s *Suite) VerifyProof(proof *Proof, sessionID string, participantID int32, publicKey, basePoint Point) (bool, error) {
	if proof == nil {
		return false, nil
	}
	p := schnorr.Proof{Commitment: proof.Commitment, Response: proof.Response}
	return p.Verify(s.curve, s.hash, sessionID, participantID, publicKey, basePoint)
}

// VerifyParty verifies a proof received from party inside a protocol round.
// A rejected proof is reported as a *tss.Blame naming the party; a derivation
// failure is returned as is, so it can never be mistaken for misbehaviour.
func (s *Suite) VerifyParty(proof *Proof, sessionID string, party tss.PartyID, publicKey, basePoint Point) error {
	ok, err := s.VerifyProof(proof, sessionID, party.Index(), publicKey, basePoint)
	if err != nil {
		return err
	}
	if !ok {
		return tss.NewBlame(sessionID, party, "schnorr proof verification failed", nil)
	}
	return nil
}

// GenerateProof proves with DefaultSuite.
func GenerateProof(sessionID string, participantID int32, privateKey Scalar, publicKey, basePoint Point) (*Proof, error) {
	return defaultSuite.GenerateProof(sessionID, participantID, privateKey, publicKey, basePoint)
}

// VerifyProof verifies with DefaultSuite.
func VerifyProof(proof *Proof, sessionID string, participantID int32, publicKey, basePoint Point) (bool, error) {
	return defaultSuite.VerifyProof(proof, sessionID, participantID, publicKey, basePoint)
}

// Verify is shorthand for DefaultSuite().VerifyProof(p, ...).
func (p *Proof) Verify(sessionID string, participantID int32, publicKey, basePoint Point) (bool, error) {
	return defaultSuite.VerifyProof(p, sessionID, participantID, publicKey, basePoint)
}

func (s *Suite) toWire(p *Proof) (wire.Proof, error) {
	if p == nil || p.Commitment == nil || p.Response == nil {
		return wire.Proof{}, ErrNilInput
	}
	return wire.Proof{Commitment: p.Commitment.Bytes(), Response: p.Response.Bytes()}, nil
}

func (s *Suite) fromWire(w wire.Proof) (*Proof, error) {
	commitment, err := s.curve.NewPointFromBytes(w.Commitment)
	if err != nil {
		return nil, fmt.Errorf("%w: commitment: %v", ErrInvalidProof, err)
	}
	response, err := s.curve.NewScalarFromBytes(w.Response)
	if err != nil {
		return nil, fmt.Errorf("%w: response: %v", ErrInvalidProof, err)
	}
	return &Proof{Commitment: commitment, Response: response}, nil
}

// Encode returns the binary wire encoding of p.
func (s *Suite) Encode(p *Proof) ([]byte, error) {
	w, err := s.toWire(p)
	if err != nil {
		return nil, err
	}
	return wire.Encode(w)
}

// Decode parses a binary encoding produced by Encode with the same suite.
func (s *Suite) Decode(data []byte) (*Proof, error) {
	w, err := wire.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidProof, err)
	}
	return s.fromWire(w)
}

// MarshalProofJSON encodes p as {"commitment": "<hex>", "response": "<hex>"}.
func (s *Suite) MarshalProofJSON(p *Proof) ([]byte, error) {
	w, err := s.toWire(p)
	if err != nil {
		return nil, err
	}
	return json.Marshal(w)
}

// UnmarshalProofJSON parses the output of MarshalProofJSON.
func (s *Suite) UnmarshalProofJSON(data []byte) (*Proof, error) {
	var w wire.Proof
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidProof, err)
	}
	return s.fromWire(w)
}
