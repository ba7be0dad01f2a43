package curves

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"
	"math/big"
	"testing"

	"filippo.io/edwards25519"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allCurves(t *testing.T) []Curve {
	t.Helper()
	var out []Curve
	for _, name := range Names() {
		c, err := ByName(name)
		require.NoError(t, err)
		out = append(out, c)
	}
	return out
}

func TestByName(t *testing.T) {
	assert.Equal(t, []string{Ed25519Name, Ristretto255Name, Secp256k1Name}, Names())

	c, err := ByName(Secp256k1Name)
	require.NoError(t, err)
	assert.Equal(t, Secp256k1Name, c.Name())

	_, err = ByName("p256")
	assert.ErrorIs(t, err, ErrUnsupportedCurve)
}

func TestScalarArithmetic(t *testing.T) {
	for _, c := range allCurves(t) {
		t.Run(c.Name(), func(t *testing.T) {
			val := big.NewInt(12345)
			s := c.NewScalarFromBigInt(val)
			assert.Equal(t, val, s.BigInt())

			assert.Equal(t, big.NewInt(24690), s.Add(s).BigInt())
			assert.Equal(t, new(big.Int).Mul(val, val), s.Mul(s).BigInt())

			// Reduction modulo the group order.
			q := c.Order()
			assert.True(t, c.NewScalarFromBigInt(q).IsZero())
			wrapped := c.NewScalarFromBigInt(new(big.Int).Add(q, val))
			assert.True(t, wrapped.Equal(s))

			minusOne := c.NewScalarFromBigInt(new(big.Int).Sub(q, big.NewInt(1)))
			one := c.NewScalarFromBigInt(big.NewInt(1))
			assert.True(t, minusOne.Add(one).IsZero())
		})
	}
}

func TestRandomScalar(t *testing.T) {
	for _, c := range allCurves(t) {
		t.Run(c.Name(), func(t *testing.T) {
			s1, err := c.RandomScalar(rand.Reader)
			require.NoError(t, err)
			s2, err := c.RandomScalar(rand.Reader)
			require.NoError(t, err)

			assert.False(t, s1.IsZero())
			assert.False(t, s1.Equal(s2))
			assert.Equal(t, -1, s1.BigInt().Cmp(c.Order()))
			assert.Len(t, s1.Bytes(), c.ScalarSize())
		})
	}
}

func TestRandomScalarReaderFailure(t *testing.T) {
	for _, c := range allCurves(t) {
		_, err := c.RandomScalar(bytes.NewReader(nil))
		assert.Error(t, err, c.Name())
	}
}

func TestPointArithmetic(t *testing.T) {
	for _, c := range allCurves(t) {
		t.Run(c.Name(), func(t *testing.T) {
			g := c.BasePoint()
			two := c.NewScalarFromBigInt(big.NewInt(2))
			three := c.NewScalarFromBigInt(big.NewInt(3))

			assert.True(t, g.ScalarMult(two).Equal(g.Add(g)))
			assert.True(t, g.ScalarMult(three).Equal(g.Add(g).Add(g)))
			assert.False(t, g.ScalarMult(two).Equal(g))

			id := c.Identity()
			assert.True(t, id.IsIdentity())
			assert.False(t, g.IsIdentity())
			assert.True(t, g.Add(id).Equal(g))
			assert.True(t, id.Add(g).Equal(g))

			// q·G = identity, (q-1)·G + G = identity
			zero := c.NewScalarFromBigInt(c.Order())
			assert.True(t, g.ScalarMult(zero).IsIdentity())
			minusOne := c.NewScalarFromBigInt(new(big.Int).Sub(c.Order(), big.NewInt(1)))
			assert.True(t, g.ScalarMult(minusOne).Add(g).IsIdentity())
		})
	}
}

func TestPointEncoding(t *testing.T) {
	for _, c := range allCurves(t) {
		t.Run(c.Name(), func(t *testing.T) {
			k, err := c.RandomScalar(rand.Reader)
			require.NoError(t, err)
			p := c.BasePoint().ScalarMult(k)

			b := p.Bytes()
			assert.Len(t, b, c.PointSize())

			p2, err := c.NewPointFromBytes(b)
			require.NoError(t, err)
			assert.True(t, p.Equal(p2))
			assert.Equal(t, b, p2.Bytes())

			id, err := c.NewPointFromBytes(c.Identity().Bytes())
			require.NoError(t, err)
			assert.True(t, id.IsIdentity())

			_, err = c.NewPointFromBytes(b[1:])
			assert.ErrorIs(t, err, ErrInvalidPointLength)
		})
	}
}

func TestScalarEncoding(t *testing.T) {
	for _, c := range allCurves(t) {
		t.Run(c.Name(), func(t *testing.T) {
			k, err := c.RandomScalar(rand.Reader)
			require.NoError(t, err)

			k2, err := c.NewScalarFromBytes(k.Bytes())
			require.NoError(t, err)
			assert.True(t, k.Equal(k2))

			_, err = c.NewScalarFromBytes(k.Bytes()[1:])
			assert.ErrorIs(t, err, ErrInvalidScalarLength)

			// All-ones is above every supported group order.
			_, err = c.NewScalarFromBytes(bytes.Repeat([]byte{0xff}, c.ScalarSize()))
			assert.ErrorIs(t, err, ErrInvalidScalar)
		})
	}
}

func TestSecp256k1Uncompressed(t *testing.T) {
	c := NewSecp256k1()
	g := c.BasePoint().Bytes()
	require.Len(t, g, 65)
	assert.Equal(t, byte(0x04), g[0])

	// x coordinate of the secp256k1 generator
	gx, _ := new(big.Int).SetString("79BE667EF9DCBBAC55A06295CE870B07029BFCDB2DCE28D959F2815B16F81798", 16)
	assert.Equal(t, gx, new(big.Int).SetBytes(g[1:33]))

	compressed := append([]byte{0x02}, g[1:33]...)
	_, err := c.NewPointFromBytes(compressed)
	assert.ErrorIs(t, err, ErrInvalidPointLength)

	offCurve := append([]byte{}, g...)
	offCurve[64] ^= 0x01
	_, err = c.NewPointFromBytes(offCurve)
	assert.ErrorIs(t, err, ErrInvalidPoint)
}

func TestEd25519NonCanonicalPoint(t *testing.T) {
	c := NewEd25519()
	b := c.Identity().Bytes()
	// Identity with the sign bit of x set: valid point, non-canonical bytes.
	b[31] |= 0x80
	_, err := c.NewPointFromBytes(b)
	assert.ErrorIs(t, err, ErrInvalidPoint)
}

// The eight points of the edwards25519 torsion subgroup E[8].
var ed25519Torsion = []struct {
	name  string
	hex   string
	order int
}{
	{"identity", "0100000000000000000000000000000000000000000000000000000000000000", 1},
	{"order 2", "ecffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff7f", 2},
	{"order 4", "0000000000000000000000000000000000000000000000000000000000000000", 4},
	{"order 4 negated", "0000000000000000000000000000000000000000000000000000000000000080", 4},
	{"order 8 a", "c7176a703d4dd84fba3c0b760d10670f2a2053fa2c39ccc64ec7fd7792ac037a", 8},
	{"order 8 a negated", "c7176a703d4dd84fba3c0b760d10670f2a2053fa2c39ccc64ec7fd7792ac03fa", 8},
	{"order 8 b", "26e8958fc2b227b045c3f489f2ef98f0d5dfac05d3c63339b13802886d53fc05", 8},
	{"order 8 b negated", "26e8958fc2b227b045c3f489f2ef98f0d5dfac05d3c63339b13802886d53fc85", 8},
}

func TestEd25519RejectsSmallOrderPoints(t *testing.T) {
	c := NewEd25519()
	for _, tc := range ed25519Torsion {
		t.Run(tc.name, func(t *testing.T) {
			b, err := hex.DecodeString(tc.hex)
			require.NoError(t, err)

			// The encoding is a valid canonical point of the full group.
			raw, err := edwards25519.NewIdentityPoint().SetBytes(b)
			require.NoError(t, err)
			require.Equal(t, b, raw.Bytes())

			p, err := c.NewPointFromBytes(b)
			if tc.order == 1 {
				require.NoError(t, err)
				assert.True(t, p.IsIdentity())
				return
			}
			assert.ErrorIs(t, err, ErrInvalidPoint)
		})
	}
}

func TestEd25519RejectsMixedOrderPoints(t *testing.T) {
	c := NewEd25519()
	x, err := c.RandomScalar(rand.Reader)
	require.NoError(t, err)
	Y := c.BasePoint().ScalarMult(x).(*Ed25519Point)

	for _, tc := range ed25519Torsion[1:] {
		t.Run(tc.name, func(t *testing.T) {
			b, err := hex.DecodeString(tc.hex)
			require.NoError(t, err)
			T, err := edwards25519.NewIdentityPoint().SetBytes(b)
			require.NoError(t, err)

			mixed := edwards25519.NewIdentityPoint().Add(Y.p, T)
			_, err = c.NewPointFromBytes(mixed.Bytes())
			assert.ErrorIs(t, err, ErrInvalidPoint)
		})
	}

	_, err = c.NewPointFromBytes(Y.Bytes())
	assert.NoError(t, err)
}

func TestMixedCurvesPanic(t *testing.T) {
	secp := NewSecp256k1()
	ed := NewEd25519()
	assert.Panics(t, func() { secp.BasePoint().Add(ed.BasePoint()) })
	assert.False(t, secp.BasePoint().Equal(ed.BasePoint()))
}
