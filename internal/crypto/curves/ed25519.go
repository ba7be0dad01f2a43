package curves

import (
	"bytes"
	"fmt"
	"io"
	"math/big"

	"filippo.io/edwards25519"
)

const (
	ed25519PointSize  = 32
	ed25519ScalarSize = 32
	ed25519WideSize   = 64
)

// l = 2^252 + 27742317777372353535851937790883648493
var ed25519Order, _ = new(big.Int).SetString("7237005577332262213973186563042994240857116359379907606001950938285454250989", 10)

// ed25519OrderMinusOne is l - 1; l itself is not representable as a Scalar.
var ed25519OrderMinusOne = func() *edwards25519.Scalar {
	var be [ed25519ScalarSize]byte
	new(big.Int).Sub(ed25519Order, big.NewInt(1)).FillBytes(be[:])
	s, err := edwards25519.NewScalar().SetCanonicalBytes(reverse(be[:]))
	if err != nil {
		panic("curves: l - 1 rejected: " + err.Error())
	}
	return s
}()

// Ed25519Curve implements Curve over the prime-order subgroup of edwards25519.
// Points with a small-order component never enter through NewPointFromBytes,
// and the arithmetic keeps the subgroup closed.
type Ed25519Curve struct{}

// NewEd25519 returns the edwards25519 curve wrapper.
func NewEd25519() Curve {
	return &Ed25519Curve{}
}

func (c *Ed25519Curve) Name() string {
	return Ed25519Name
}

func (c *Ed25519Curve) Order() *big.Int {
	return new(big.Int).Set(ed25519Order)
}

func (c *Ed25519Curve) PointSize() int  { return ed25519PointSize }
func (c *Ed25519Curve) ScalarSize() int { return ed25519ScalarSize }

func (c *Ed25519Curve) BasePoint() Point {
	return &Ed25519Point{p: edwards25519.NewGeneratorPoint()}
}

func (c *Ed25519Curve) Identity() Point {
	return &Ed25519Point{p: edwards25519.NewIdentityPoint()}
}

func (c *Ed25519Curve) RandomScalar(r io.Reader) (Scalar, error) {
	var b [ed25519WideSize]byte
	for {
		if _, err := io.ReadFull(r, b[:]); err != nil {
			return nil, fmt.Errorf("curves: reading randomness: %w", err)
		}
		s, err := edwards25519.NewScalar().SetUniformBytes(b[:])
		if err != nil {
			return nil, err
		}
		res := &Ed25519Scalar{s: s}
		if !res.IsZero() {
			return res, nil
		}
	}
}

func (c *Ed25519Curve) NewScalarFromBigInt(n *big.Int) Scalar {
	v := new(big.Int).Mod(n, ed25519Order)
	var be [ed25519ScalarSize]byte
	v.FillBytes(be[:])

	// edwards25519 uses little-endian, big.Int is big-endian.
	s, err := edwards25519.NewScalar().SetCanonicalBytes(reverse(be[:]))
	if err != nil {
		// v < l always yields a canonical encoding.
		panic("curves: reduced scalar rejected: " + err.Error())
	}
	return &Ed25519Scalar{s: s}
}

func (c *Ed25519Curve) NewScalarFromBytes(b []byte) (Scalar, error) {
	if len(b) != ed25519ScalarSize {
		return nil, ErrInvalidScalarLength
	}
	s, err := edwards25519.NewScalar().SetCanonicalBytes(b)
	if err != nil {
		return nil, ErrInvalidScalar
	}
	return &Ed25519Scalar{s: s}, nil
}

// NewPointFromBytes accepts only canonical encodings of points in the
// prime-order subgroup. edwards25519 itself also accepts a few non-canonical
// encodings and every point of the full group of order 8·l.
func (c *Ed25519Curve) NewPointFromBytes(b []byte) (Point, error) {
	if len(b) != ed25519PointSize {
		return nil, ErrInvalidPointLength
	}
	p, err := edwards25519.NewIdentityPoint().SetBytes(b)
	if err != nil {
		return nil, ErrInvalidPoint
	}
	if !bytes.Equal(p.Bytes(), b) {
		return nil, ErrInvalidPoint
	}
	if !inPrimeOrderSubgroup(p) {
		return nil, ErrInvalidPoint
	}
	return &Ed25519Point{p: p}, nil
}

// inPrimeOrderSubgroup reports whether l·p is the identity, computed as
// (l-1)·p + p.
func inPrimeOrderSubgroup(p *edwards25519.Point) bool {
	q := edwards25519.NewIdentityPoint().ScalarMult(ed25519OrderMinusOne, p)
	q.Add(q, p)
	return q.Equal(edwards25519.NewIdentityPoint()) == 1
}

// Ed25519Scalar implements Scalar
type Ed25519Scalar struct {
	s *edwards25519.Scalar
}

func (s *Ed25519Scalar) Bytes() []byte {
	return s.s.Bytes()
}

func (s *Ed25519Scalar) BigInt() *big.Int {
	// Convert little-endian bytes to big.Int (big-endian)
	return new(big.Int).SetBytes(reverse(s.s.Bytes()))
}

func (s *Ed25519Scalar) Add(other Scalar) Scalar {
	o := mustEd25519Scalar(other)
	res := edwards25519.NewScalar().Add(s.s, o.s)
	return &Ed25519Scalar{s: res}
}

func (s *Ed25519Scalar) Mul(other Scalar) Scalar {
	o := mustEd25519Scalar(other)
	res := edwards25519.NewScalar().Multiply(s.s, o.s)
	return &Ed25519Scalar{s: res}
}

func (s *Ed25519Scalar) Equal(other Scalar) bool {
	o, ok := other.(*Ed25519Scalar)
	return ok && s.s.Equal(o.s) == 1
}

func (s *Ed25519Scalar) IsZero() bool {
	return s.s.Equal(edwards25519.NewScalar()) == 1
}

// Ed25519Point implements Point
type Ed25519Point struct {
	p *edwards25519.Point
}

func (p *Ed25519Point) Bytes() []byte {
	return p.p.Bytes()
}

func (p *Ed25519Point) Add(other Point) Point {
	o := mustEd25519Point(other)
	res := edwards25519.NewIdentityPoint().Add(p.p, o.p)
	return &Ed25519Point{p: res}
}

func (p *Ed25519Point) ScalarMult(scalar Scalar) Point {
	s := mustEd25519Scalar(scalar)
	res := edwards25519.NewIdentityPoint().ScalarMult(s.s, p.p)
	return &Ed25519Point{p: res}
}

func (p *Ed25519Point) Equal(other Point) bool {
	o, ok := other.(*Ed25519Point)
	return ok && p.p.Equal(o.p) == 1
}

func (p *Ed25519Point) IsIdentity() bool {
	return p.p.Equal(edwards25519.NewIdentityPoint()) == 1
}

func mustEd25519Scalar(s Scalar) *Ed25519Scalar {
	o, ok := s.(*Ed25519Scalar)
	if !ok {
		panic("curves: scalar is not an ed25519 scalar")
	}
	return o
}

func mustEd25519Point(p Point) *Ed25519Point {
	o, ok := p.(*Ed25519Point)
	if !ok {
		panic("curves: point is not an ed25519 point")
	}
	return o
}
