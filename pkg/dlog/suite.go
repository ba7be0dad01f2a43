package dlog

import (
	"crypto/rand"
	"fmt"
	"io"

	"github.com/smallyu/go-dlogproof/internal/crypto/curves"
	"github.com/smallyu/go-dlogproof/internal/crypto/hashes"
)

// Point and Scalar are the group element and field element types of a Suite.
type (
	Point  = curves.Point
	Scalar = curves.Scalar
)

// Default suite parameters.
const (
	DefaultCurve = curves.Secp256k1Name
	DefaultHash  = hashes.SHA256Name
)

// Suite fixes the group, the challenge hash and the randomness source. A Suite
// is immutable and safe for concurrent use.
type Suite struct {
	curve curves.Curve
	hash  hashes.Hash
	rand  io.Reader
}

// Option configures a Suite.
type Option func(*Suite)

// WithRand sets the randomness source used for nonces and keys. It must be
// safe for concurrent use if the Suite is shared. Defaults to crypto/rand.
func WithRand(r io.Reader) Option {
	return func(s *Suite) {
		s.rand = r
	}
}

// NewSuite returns the suite for the named curve and hash. Supported names
// are listed by Curves and Hashes.
func NewSuite(curveName, hashName string, opts ...Option) (*Suite, error) {
	curve, err := curves.ByName(curveName)
	if err != nil {
		return nil, err
	}
	h, err := hashes.ByName(hashName)
	if err != nil {
		return nil, err
	}
	return newSuite(curve, h, opts...)
}

func newSuite(curve curves.Curve, h hashes.Hash, opts ...Option) (*Suite, error) {
	if h.Size()*8 < curve.Order().BitLen() {
		return nil, fmt.Errorf("%w: %s (%d bits) for %s (%d bits)",
			ErrWeakHash, h.Name(), h.Size()*8, curve.Name(), curve.Order().BitLen())
	}
	s := &Suite{curve: curve, hash: h, rand: rand.Reader}
	for _, opt := range opts {
		opt(s)
	}
	if s.rand == nil {
		s.rand = rand.Reader
	}
	return s, nil
}

var defaultSuite = func() *Suite {
	s, err := NewSuite(DefaultCurve, DefaultHash)
	if err != nil {
		panic(err)
	}
	return s
}()

// DefaultSuite returns the secp256k1 / SHA-256 suite.
func DefaultSuite() *Suite {
	return defaultSuite
}

// Generator returns the base point of DefaultSuite.
func Generator() Point {
	return defaultSuite.Generator()
}

// Curves returns the supported curve names.
func Curves() []string { return curves.Names() }

// Hashes returns the supported hash names.
func Hashes() []string { return hashes.Names() }

// String returns "<curve>/<hash>".
func (s *Suite) String() string {
	return s.curve.Name() + "/" + s.hash.Name()
}

// CurveName returns the registry name of the suite's curve.
func (s *Suite) CurveName() string { return s.curve.Name() }

// HashName returns the registry name of the suite's hash.
func (s *Suite) HashName() string { return s.hash.Name() }

// Generator returns the curve's distinguished base point.
func (s *Suite) Generator() Point {
	return s.curve.BasePoint()
}

// GenerateKey samples a private key x and returns it with x·G.
func (s *Suite) GenerateKey() (Scalar, Point, error) {
	x, err := s.curve.RandomScalar(s.rand)
	if err != nil {
		return nil, nil, err
	}
	return x, s.curve.BasePoint().ScalarMult(x), nil
}

// ParsePoint decodes a point in the curve's canonical encoding.
func (s *Suite) ParsePoint(b []byte) (Point, error) {
	return s.curve.NewPointFromBytes(b)
}

// ParseScalar decodes a scalar in the curve's canonical encoding.
func (s *Suite) ParseScalar(b []byte) (Scalar, error) {
	return s.curve.NewScalarFromBytes(b)
}
