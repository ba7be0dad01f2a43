// Package wire defines the transmitted form of a discrete-log proof: the
// commitment point and the response scalar, each in the canonical encoding of
// the curve backend that produced them.
package wire

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
)

// MaxProofBytes bounds the memory spent decoding a single proof.
const MaxProofBytes = 1024

// ErrTrailingBytes is returned by Decode when data continues past the proof.
var ErrTrailingBytes = errors.New("wire: trailing bytes after proof")

// Proof is the exported data shape of a proof.
type Proof struct {
	Commitment []byte
	Response   []byte
}

// Encode returns the binary encoding of p.
func Encode(p Proof) ([]byte, error) {
	buf := make([]byte, p.SizeHint())
	if _, _, err := p.Marshal(buf, MaxProofBytes); err != nil {
		return nil, err
	}
	return buf, nil
}

// Decode parses a binary encoding produced by Encode.
func Decode(data []byte) (Proof, error) {
	var p Proof
	tail, _, err := p.Unmarshal(data, MaxProofBytes)
	if err != nil {
		return Proof{}, err
	}
	if len(tail) != 0 {
		return Proof{}, ErrTrailingBytes
	}
	return p, nil
}

type jsonProof struct {
	Commitment string `json:"commitment"`
	Response   string `json:"response"`
}

// MarshalJSON encodes both fields as hex strings.
func (p Proof) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonProof{
		Commitment: hex.EncodeToString(p.Commitment),
		Response:   hex.EncodeToString(p.Response),
	})
}

// UnmarshalJSON implements json.Unmarshaler.
func (p *Proof) UnmarshalJSON(data []byte) error {
	var in jsonProof
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	commitment, err := hex.DecodeString(in.Commitment)
	if err != nil {
		return fmt.Errorf("wire: decoding commitment: %w", err)
	}
	response, err := hex.DecodeString(in.Response)
	if err != nil {
		return fmt.Errorf("wire: decoding response: %w", err)
	}
	p.Commitment = commitment
	p.Response = response
	return nil
}
