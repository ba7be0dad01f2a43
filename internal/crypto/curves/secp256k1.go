package curves

import (
	"bytes"
	"io"
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

const (
	secp256k1PointSize  = 65
	secp256k1ScalarSize = 32

	secp256k1Uncompressed = 0x04
)

// Secp256k1 implements Curve over secp256k1 using decred's secp256k1 package.
// Points serialize to the 65-byte SEC1 uncompressed form.
type Secp256k1 struct{}

// NewSecp256k1 returns a new instance of the Secp256k1 curve wrapper
func NewSecp256k1() Curve {
	return &Secp256k1{}
}

func (c *Secp256k1) Name() string    { return Secp256k1Name }
func (c *Secp256k1) PointSize() int  { return secp256k1PointSize }
func (c *Secp256k1) ScalarSize() int { return secp256k1ScalarSize }

func (c *Secp256k1) Order() *big.Int {
	return new(big.Int).Set(secp256k1.S256().Params().N)
}

func (c *Secp256k1) BasePoint() Point {
	var one secp256k1.ModNScalar
	one.SetInt(1)
	var g secp256k1.JacobianPoint
	secp256k1.ScalarBaseMultNonConst(&one, &g)
	g.ToAffine()
	return &Secp256k1Point{p: g}
}

func (c *Secp256k1) Identity() Point {
	return &Secp256k1Point{identity: true}
}

func (c *Secp256k1) RandomScalar(r io.Reader) (Scalar, error) {
	k, err := randomBelow(r, c.Order(), secp256k1ScalarSize+16)
	if err != nil {
		return nil, err
	}
	return c.NewScalarFromBigInt(k), nil
}

func (c *Secp256k1) NewScalarFromBigInt(n *big.Int) Scalar {
	v := new(big.Int).Mod(n, c.Order())
	var buf [secp256k1ScalarSize]byte
	v.FillBytes(buf[:])
	var s secp256k1.ModNScalar
	s.SetBytes(&buf)
	return &Secp256k1Scalar{s: s}
}

func (c *Secp256k1) NewScalarFromBytes(b []byte) (Scalar, error) {
	if len(b) != secp256k1ScalarSize {
		return nil, ErrInvalidScalarLength
	}
	var s secp256k1.ModNScalar
	if overflow := s.SetByteSlice(b); overflow {
		return nil, ErrInvalidScalar
	}
	return &Secp256k1Scalar{s: s}, nil
}

func (c *Secp256k1) NewPointFromBytes(b []byte) (Point, error) {
	if len(b) != secp256k1PointSize {
		return nil, ErrInvalidPointLength
	}
	if bytes.Equal(b, make([]byte, secp256k1PointSize)) {
		return c.Identity(), nil
	}
	if b[0] != secp256k1Uncompressed {
		return nil, ErrInvalidPoint
	}
	pub, err := secp256k1.ParsePubKey(b)
	if err != nil {
		return nil, ErrInvalidPoint
	}
	var p secp256k1.JacobianPoint
	pub.AsJacobian(&p)
	return &Secp256k1Point{p: p}, nil
}

// Secp256k1Scalar implements Scalar
type Secp256k1Scalar struct {
	s secp256k1.ModNScalar
}

func (s *Secp256k1Scalar) Bytes() []byte {
	b := s.s.Bytes()
	return b[:]
}

func (s *Secp256k1Scalar) BigInt() *big.Int {
	return new(big.Int).SetBytes(s.Bytes())
}

func (s *Secp256k1Scalar) Add(other Scalar) Scalar {
	o := mustSecp256k1Scalar(other)
	var res secp256k1.ModNScalar
	res.Add2(&s.s, &o.s)
	return &Secp256k1Scalar{s: res}
}

func (s *Secp256k1Scalar) Mul(other Scalar) Scalar {
	o := mustSecp256k1Scalar(other)
	var res secp256k1.ModNScalar
	res.Mul2(&s.s, &o.s)
	return &Secp256k1Scalar{s: res}
}

func (s *Secp256k1Scalar) Equal(other Scalar) bool {
	o, ok := other.(*Secp256k1Scalar)
	return ok && s.s.Equals(&o.s)
}

func (s *Secp256k1Scalar) IsZero() bool {
	return s.s.IsZero()
}

// Secp256k1Point implements Point. Non-identity points are kept in affine
// form (Z = 1).
type Secp256k1Point struct {
	p        secp256k1.JacobianPoint
	identity bool
}

// newSecp256k1Point normalizes p. The point at infinity maps to (0, 0) in
// affine form, which is not on the curve.
func newSecp256k1Point(p *secp256k1.JacobianPoint) *Secp256k1Point {
	p.ToAffine()
	if p.X.IsZero() && p.Y.IsZero() {
		return &Secp256k1Point{identity: true}
	}
	return &Secp256k1Point{p: *p}
}

func (p *Secp256k1Point) Bytes() []byte {
	if p.identity {
		return make([]byte, secp256k1PointSize)
	}
	x, y := p.p.X, p.p.Y
	return secp256k1.NewPublicKey(&x, &y).SerializeUncompressed()
}

func (p *Secp256k1Point) Add(other Point) Point {
	o := mustSecp256k1Point(other)
	if p.identity {
		return o
	}
	if o.identity {
		return p
	}
	lhs, rhs := p.p, o.p
	var res secp256k1.JacobianPoint
	secp256k1.AddNonConst(&lhs, &rhs, &res)
	return newSecp256k1Point(&res)
}

func (p *Secp256k1Point) ScalarMult(scalar Scalar) Point {
	k := mustSecp256k1Scalar(scalar)
	if p.identity || k.IsZero() {
		return &Secp256k1Point{identity: true}
	}
	base := p.p
	var res secp256k1.JacobianPoint
	secp256k1.ScalarMultNonConst(&k.s, &base, &res)
	return newSecp256k1Point(&res)
}

func (p *Secp256k1Point) Equal(other Point) bool {
	o, ok := other.(*Secp256k1Point)
	if !ok {
		return false
	}
	if p.identity || o.identity {
		return p.identity == o.identity
	}
	return p.p.X.Equals(&o.p.X) && p.p.Y.Equals(&o.p.Y)
}

func (p *Secp256k1Point) IsIdentity() bool {
	return p.identity
}

func mustSecp256k1Scalar(s Scalar) *Secp256k1Scalar {
	o, ok := s.(*Secp256k1Scalar)
	if !ok {
		panic("curves: scalar is not a secp256k1 scalar")
	}
	return o
}

func mustSecp256k1Point(p Point) *Secp256k1Point {
	o, ok := p.(*Secp256k1Point)
	if !ok {
		panic("curves: point is not a secp256k1 point")
	}
	return o
}
