// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sec1

import (
	"crypto/elliptic"
	"fmt"
	"math/big"
	"sort"
	"strings"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// CurveParams describes a short Weierstrass curve y^2 = x^3 + a*x + b over
// the prime field of integers modulo p.  The order and generator are only
// carried so keys can be handed to packages that need them, such as
// crypto/ecdsa; the codec itself never uses them.
//
// CurveParams values are immutable and safe for concurrent use.
type CurveParams struct {
	// Name is the canonical name of the curve, for example "P-256".
	Name string

	field *Field
	a     FieldElement
	b     FieldElement
	aZero bool

	n      *big.Int
	gx, gy *big.Int

	// ec is the crypto/elliptic implementation of the curve, if any.
	ec elliptic.Curve
}

// NewCurveParams returns the parameters for the curve y^2 = x^3 + a*x + b
// modulo the prime p.  The coefficients are reduced modulo p.  The order n,
// generator (gx, gy) and elliptic implementation ec are optional and may be
// nil.
func NewCurveParams(name string, p, a, b, n, gx, gy *big.Int, ec elliptic.Curve) (*CurveParams, error) {
	field, err := NewField(p)
	if err != nil {
		return nil, fmt.Errorf("curve %s: %w", name, err)
	}
	if a == nil || b == nil {
		return nil, fmt.Errorf("curve %s: missing coefficient", name)
	}

	c := &CurveParams{
		Name:  name,
		field: field,
		a:     field.NewElement(a),
		b:     field.NewElement(b),
		ec:    ec,
	}
	c.aZero = c.a.IsZero()

	// The discriminant 4a^3 + 27b^2 must be nonzero for the curve to be
	// nonsingular.
	four := field.NewElement(bigFour)
	twentySeven := field.NewElement(big.NewInt(27))
	disc := four.Mul(c.a.Square().Mul(c.a)).Add(twentySeven.Mul(c.b.Square()))
	if disc.IsZero() {
		return nil, fmt.Errorf("curve %s: singular curve", name)
	}

	if n != nil {
		c.n = new(big.Int).Set(n)
	}
	if gx != nil && gy != nil {
		x := field.NewElement(gx)
		y := field.NewElement(gy)
		if !c.IsOnCurve(x, y) {
			return nil, fmt.Errorf("curve %s: generator is not on the curve",
				name)
		}
		c.gx = x.BigInt()
		c.gy = y.BigInt()
	}
	return c, nil
}

// Field returns the prime field the curve is defined over.
func (c *CurveParams) Field() *Field {
	return c.field
}

// P returns a copy of the field prime.
func (c *CurveParams) P() *big.Int {
	return c.field.Prime()
}

// A returns the coefficient a.
func (c *CurveParams) A() FieldElement {
	return c.a
}

// B returns the coefficient b.
func (c *CurveParams) B() FieldElement {
	return c.b
}

// N returns a copy of the order of the generator, or nil when unknown.
func (c *CurveParams) N() *big.Int {
	if c.n == nil {
		return nil
	}
	return new(big.Int).Set(c.n)
}

// Generator returns the generator point.  It returns the point at infinity
// when the generator is unknown.
func (c *CurveParams) Generator() AffinePoint {
	if c.gx == nil {
		return Infinity(c)
	}
	return AffinePoint{
		curve:  c,
		x:      c.field.NewElement(c.gx),
		y:      c.field.NewElement(c.gy),
		finite: true,
	}
}

// ByteSize returns the size in bytes of a single serialized coordinate.
func (c *CurveParams) ByteSize() int {
	return c.field.size
}

// CompressedLen returns the length of a compressed SEC1 point.
func (c *CurveParams) CompressedLen() int {
	return 1 + c.field.size
}

// UncompressedLen returns the length of an uncompressed SEC1 point.
func (c *CurveParams) UncompressedLen() int {
	return 1 + 2*c.field.size
}

// Elliptic returns the crypto/elliptic implementation of the curve, or nil
// when there is none.
func (c *CurveParams) Elliptic() elliptic.Curve {
	return c.ec
}

// String returns the curve name.
func (c *CurveParams) String() string {
	return c.Name
}

// rhs returns x^3 + a*x + b.
func (c *CurveParams) rhs(x FieldElement) FieldElement {
	r := x.Square().Mul(x)
	if !c.aZero {
		r = r.Add(c.a.Mul(x))
	}
	return r.Add(c.b)
}

// IsOnCurve returns whether or not the affine coordinates satisfy the curve
// equation y^2 = x^3 + a*x + b.  Coordinates from a different field are
// never on the curve.
func (c *CurveParams) IsOnCurve(x, y FieldElement) bool {
	if x.f != c.field || y.f != c.field {
		return false
	}
	return y.Square().Equals(c.rhs(x))
}

// DecompressY attempts to calculate the y coordinate for the given x
// coordinate such that the result pair is a point on the curve.  The odd
// parameter selects which of the two roots is returned.
//
// The second return value is false when there is no y coordinate for x, in
// which case the returned element is zero.
func (c *CurveParams) DecompressY(x FieldElement, odd bool) (FieldElement, bool) {
	if x.f != c.field {
		return c.field.Zero(), false
	}
	y, ok := c.field.Sqrt(c.rhs(x))
	if !ok {
		return c.field.Zero(), false
	}
	if y.IsOdd() != odd {
		y = y.Neg()
	}

	// Only possible when y = 0 and an odd root was requested.
	if y.IsOdd() != odd {
		return c.field.Zero(), false
	}
	return y, true
}

// fromElliptic builds the parameters for one of the curves with a
// crypto/elliptic implementation.  All NIST curves have a = -3.
func fromElliptic(name string, ec elliptic.Curve, a *big.Int) *CurveParams {
	params := ec.Params()
	if a == nil {
		a = new(big.Int).Sub(params.P, bigThree)
	}
	c, err := NewCurveParams(name, params.P, a, params.B, params.N,
		params.Gx, params.Gy, ec)
	if err != nil {
		panic(err)
	}
	return c
}

var (
	p224      = fromElliptic("P-224", elliptic.P224(), nil)
	p256      = fromElliptic("P-256", elliptic.P256(), nil)
	p384      = fromElliptic("P-384", elliptic.P384(), nil)
	p521      = fromElliptic("P-521", elliptic.P521(), nil)
	s256Curve = fromElliptic("secp256k1", secp256k1.S256(), new(big.Int))

	// curveAliases maps lower case curve names and their SEC2 and X9.62
	// aliases to the parameters.
	curveAliases = map[string]*CurveParams{
		"p-224":      p224,
		"p224":       p224,
		"secp224r1":  p224,
		"p-256":      p256,
		"p256":       p256,
		"secp256r1":  p256,
		"prime256v1": p256,
		"p-384":      p384,
		"p384":       p384,
		"secp384r1":  p384,
		"p-521":      p521,
		"p521":       p521,
		"secp521r1":  p521,
		"secp256k1":  s256Curve,
	}
)

// P224 returns the parameters for NIST P-224 (secp224r1).  Its prime is
// congruent to 1 mod 4, so square roots use Tonelli-Shanks.
func P224() *CurveParams {
	return p224
}

// P256 returns the parameters for NIST P-256 (secp256r1, prime256v1).
func P256() *CurveParams {
	return p256
}

// P384 returns the parameters for NIST P-384 (secp384r1).
func P384() *CurveParams {
	return p384
}

// P521 returns the parameters for NIST P-521 (secp521r1).  Coordinates are
// serialized as 66 bytes.
func P521() *CurveParams {
	return p521
}

// Secp256k1 returns the parameters for the secp256k1 Koblitz curve.
func Secp256k1() *CurveParams {
	return s256Curve
}

// Curves returns all registered curves ordered by name.
func Curves() []*CurveParams {
	curves := []*CurveParams{p224, p256, p384, p521, s256Curve}
	sort.Slice(curves, func(i, j int) bool {
		return curves[i].Name < curves[j].Name
	})
	return curves
}

// CurveByName returns the registered curve with the passed name.  Lookups
// are case insensitive and accept the common SEC2 and X9.62 aliases.
func CurveByName(name string) (*CurveParams, error) {
	c, ok := curveAliases[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		str := fmt.Sprintf("unknown curve %q", name)
		return nil, makeError(ErrUnknownCurve, str)
	}
	return c, nil
}

// curveForElliptic returns the registered curve matching the passed
// crypto/elliptic curve.
func curveForElliptic(ec elliptic.Curve) (*CurveParams, error) {
	if ec == nil {
		return nil, makeError(ErrUnknownCurve, "nil curve")
	}
	params := ec.Params()
	for _, c := range Curves() {
		if c.ec == ec {
			return c, nil
		}
		cp := c.ec.Params()
		if cp.P.Cmp(params.P) == 0 && cp.B.Cmp(params.B) == 0 &&
			cp.Gx.Cmp(params.Gx) == 0 && cp.Gy.Cmp(params.Gy) == 0 {
			return c, nil
		}
	}
	str := fmt.Sprintf("unsupported curve %q", params.Name)
	return nil, makeError(ErrUnknownCurve, str)
}
