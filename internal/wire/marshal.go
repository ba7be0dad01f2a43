package wire

import (
	"fmt"
	"math/rand"
	"reflect"

	"github.com/renproject/surge"
)

// Generate implements the quick.Generator interface.
func (p Proof) Generate(r *rand.Rand, _ int) reflect.Value {
	commitment := make([]byte, 1+r.Intn(65))
	response := make([]byte, 1+r.Intn(32))
	r.Read(commitment)
	r.Read(response)
	return reflect.ValueOf(Proof{Commitment: commitment, Response: response})
}

// SizeHint implements the surge.SizeHinter interface.
func (p Proof) SizeHint() int {
	return surge.SizeHint(p.Commitment) +
		surge.SizeHint(p.Response)
}

// Marshal implements the surge.Marshaler interface.
func (p Proof) Marshal(buf []byte, rem int) ([]byte, int, error) {
	buf, rem, err := surge.Marshal(p.Commitment, buf, rem)
	if err != nil {
		return buf, rem, fmt.Errorf("marshaling commitment: %v", err)
	}
	buf, rem, err = surge.Marshal(p.Response, buf, rem)
	if err != nil {
		return buf, rem, fmt.Errorf("marshaling response: %v", err)
	}
	return buf, rem, nil
}

// Unmarshal implements the surge.Unmarshaler interface.
func (p *Proof) Unmarshal(buf []byte, rem int) ([]byte, int, error) {
	buf, rem, err := surge.Unmarshal(&p.Commitment, buf, rem)
	if err != nil {
		return buf, rem, fmt.Errorf("unmarshaling commitment: %v", err)
	}
	buf, rem, err = surge.Unmarshal(&p.Response, buf, rem)
	if err != nil {
		return buf, rem, fmt.Errorf("unmarshaling response: %v", err)
	}
	return buf, rem, nil
}
