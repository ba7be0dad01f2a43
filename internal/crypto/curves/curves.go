package curves

import (
	"errors"
	"fmt"
	"io"
	"math/big"
	"sort"
)

// Common errors returned by curve backends.
var (
	ErrUnsupportedCurve    = errors.New("curves: unsupported curve")
	ErrInvalidPointLength  = errors.New("curves: invalid point length")
	ErrInvalidScalarLength = errors.New("curves: invalid scalar length")
	ErrInvalidPoint        = errors.New("curves: invalid point encoding")
	ErrInvalidScalar       = errors.New("curves: invalid scalar encoding")
)

// Point represents an element of a prime-order group.
type Point interface {
	// Bytes returns the fixed-length serialization of the point. For curves
	// with a compressed form this is the uncompressed encoding.
	Bytes() []byte

	// Add returns p + q.
	Add(q Point) Point

	// ScalarMult returns s·p.
	ScalarMult(s Scalar) Point

	// Equal reports whether p and q are the same group element.
	Equal(q Point) bool

	// IsIdentity reports whether p is the neutral element.
	IsIdentity() bool
}

// Scalar represents an element of the scalar field, i.e. an integer modulo
// the group order.
type Scalar interface {
	// Bytes returns the canonical fixed-length serialization of the scalar.
	Bytes() []byte

	// BigInt returns the scalar as a big integer in [0, order).
	BigInt() *big.Int

	Add(t Scalar) Scalar
	Mul(t Scalar) Scalar
	Equal(t Scalar) bool
	IsZero() bool
}

// Curve is the group-arithmetic capability the proofs are built on.
type Curve interface {
	// Name returns the registry name of the curve.
	Name() string

	// Order returns the order of the base point (group order).
	Order() *big.Int

	// PointSize and ScalarSize return the encoded lengths in bytes.
	PointSize() int
	ScalarSize() int

	// BasePoint returns the generator G.
	BasePoint() Point

	// Identity returns the neutral element.
	Identity() Point

	// RandomScalar samples a uniform nonzero scalar from r.
	RandomScalar(r io.Reader) (Scalar, error)

	// NewScalarFromBigInt reduces n modulo the group order.
	NewScalarFromBigInt(n *big.Int) Scalar

	// NewScalarFromBytes parses a canonical scalar encoding.
	NewScalarFromBytes(b []byte) (Scalar, error)

	// NewPointFromBytes parses a point encoding produced by Point.Bytes.
	NewPointFromBytes(b []byte) (Point, error)
}

// Registry names of the built-in curves.
const (
	Secp256k1Name    = "secp256k1"
	Ed25519Name      = "ed25519"
	Ristretto255Name = "ristretto255"
)

var registry = map[string]func() Curve{
	Secp256k1Name:    NewSecp256k1,
	Ed25519Name:      NewEd25519,
	Ristretto255Name: NewRistretto255,
}

// ByName returns the curve registered under name.
func ByName(name string) (Curve, error) {
	ctor, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedCurve, name)
	}
	return ctor(), nil
}

// Names returns the registered curve names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// reverse returns a reversed copy of b, used to convert between big.Int's
// big-endian bytes and little-endian scalar encodings.
func reverse(b []byte) []byte {
	out := make([]byte, len(b))
	for i := range b {
		out[len(b)-1-i] = b[i]
	}
	return out
}

// randomBelow reads uniform bytes from r and reduces them modulo order until a
// nonzero value is found. wide is the number of bytes read per attempt and
// should exceed the order length by at least 8 bytes.
func randomBelow(r io.Reader, order *big.Int, wide int) (*big.Int, error) {
	buf := make([]byte, wide)
	for {
		if _, err := io.ReadFull(r, buf); err != nil {
			return nil, fmt.Errorf("curves: reading randomness: %w", err)
		}
		k := new(big.Int).SetBytes(buf)
		k.Mod(k, order)
		if k.Sign() != 0 {
			return k, nil
		}
	}
}
