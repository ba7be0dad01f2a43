package curves

import (
	"bytes"
	"fmt"
	"io"
	"math/big"

	"github.com/bwesterb/go-ristretto"
)

const (
	ristrettoPointSize  = 32
	ristrettoScalarSize = 32
	ristrettoWideSize   = 64
)

// Ristretto255 implements Curve over the ristretto255 prime-order group.
// The group order is the same l as edwards25519.
type Ristretto255 struct{}

// NewRistretto255 returns the ristretto255 group wrapper.
func NewRistretto255() Curve {
	return &Ristretto255{}
}

func (c *Ristretto255) Name() string    { return Ristretto255Name }
func (c *Ristretto255) PointSize() int  { return ristrettoPointSize }
func (c *Ristretto255) ScalarSize() int { return ristrettoScalarSize }

func (c *Ristretto255) Order() *big.Int {
	return new(big.Int).Set(ed25519Order)
}

func (c *Ristretto255) BasePoint() Point {
	var p ristretto.Point
	p.SetBase()
	return &RistrettoPoint{p: p}
}

func (c *Ristretto255) Identity() Point {
	var p ristretto.Point
	p.SetZero()
	return &RistrettoPoint{p: p}
}

func (c *Ristretto255) RandomScalar(r io.Reader) (Scalar, error) {
	var b [ristrettoWideSize]byte
	for {
		if _, err := io.ReadFull(r, b[:]); err != nil {
			return nil, fmt.Errorf("curves: reading randomness: %w", err)
		}
		var s ristretto.Scalar
		s.SetReduced(&b)
		res := &RistrettoScalar{s: s}
		if !res.IsZero() {
			return res, nil
		}
	}
}

func (c *Ristretto255) NewScalarFromBigInt(n *big.Int) Scalar {
	v := new(big.Int).Mod(n, ed25519Order)
	var be [ristrettoScalarSize]byte
	v.FillBytes(be[:])

	var le [ristrettoScalarSize]byte
	copy(le[:], reverse(be[:]))
	var s ristretto.Scalar
	s.SetBytes(&le)
	return &RistrettoScalar{s: s}
}

func (c *Ristretto255) NewScalarFromBytes(b []byte) (Scalar, error) {
	if len(b) != ristrettoScalarSize {
		return nil, ErrInvalidScalarLength
	}
	var buf [ristrettoScalarSize]byte
	copy(buf[:], b)
	var s ristretto.Scalar
	s.SetBytes(&buf)
	// SetBytes reduces silently, a canonical encoding survives the round trip.
	if !bytes.Equal(s.Bytes(), b) {
		return nil, ErrInvalidScalar
	}
	return &RistrettoScalar{s: s}, nil
}

func (c *Ristretto255) NewPointFromBytes(b []byte) (Point, error) {
	if len(b) != ristrettoPointSize {
		return nil, ErrInvalidPointLength
	}
	var p ristretto.Point
	if err := p.UnmarshalBinary(b); err != nil {
		return nil, ErrInvalidPoint
	}
	if !bytes.Equal(p.Bytes(), b) {
		return nil, ErrInvalidPoint
	}
	return &RistrettoPoint{p: p}, nil
}

// RistrettoScalar implements Scalar
type RistrettoScalar struct {
	s ristretto.Scalar
}

func (s *RistrettoScalar) Bytes() []byte {
	return s.s.Bytes()
}

func (s *RistrettoScalar) BigInt() *big.Int {
	return new(big.Int).SetBytes(reverse(s.s.Bytes()))
}

func (s *RistrettoScalar) Add(other Scalar) Scalar {
	o := mustRistrettoScalar(other)
	var res ristretto.Scalar
	res.Add(&s.s, &o.s)
	return &RistrettoScalar{s: res}
}

func (s *RistrettoScalar) Mul(other Scalar) Scalar {
	o := mustRistrettoScalar(other)
	var res ristretto.Scalar
	res.Mul(&s.s, &o.s)
	return &RistrettoScalar{s: res}
}

func (s *RistrettoScalar) Equal(other Scalar) bool {
	o, ok := other.(*RistrettoScalar)
	return ok && s.s.Equals(&o.s)
}

func (s *RistrettoScalar) IsZero() bool {
	var zero ristretto.Scalar
	zero.SetZero()
	return zero.Equals(&s.s)
}

// RistrettoPoint implements Point
type RistrettoPoint struct {
	p ristretto.Point
}

func (p *RistrettoPoint) Bytes() []byte {
	return p.p.Bytes()
}

func (p *RistrettoPoint) Add(other Point) Point {
	o := mustRistrettoPoint(other)
	var res ristretto.Point
	res.Add(&p.p, &o.p)
	return &RistrettoPoint{p: res}
}

func (p *RistrettoPoint) ScalarMult(scalar Scalar) Point {
	s := mustRistrettoScalar(scalar)
	var res ristretto.Point
	res.ScalarMult(&p.p, &s.s)
	return &RistrettoPoint{p: res}
}

func (p *RistrettoPoint) Equal(other Point) bool {
	o, ok := other.(*RistrettoPoint)
	return ok && p.p.Equals(&o.p)
}

func (p *RistrettoPoint) IsIdentity() bool {
	var zero ristretto.Point
	zero.SetZero()
	return p.p.Equals(&zero)
}

func mustRistrettoScalar(s Scalar) *RistrettoScalar {
	o, ok := s.(*RistrettoScalar)
	if !ok {
		panic("curves: scalar is not a ristretto255 scalar")
	}
	return o
}

func mustRistrettoPoint(p Point) *RistrettoPoint {
	o, ok := p.(*RistrettoPoint)
	if !ok {
		panic("curves: point is not a ristretto255 point")
	}
	return o
}
