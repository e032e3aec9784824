// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sec1

import (
	"crypto/elliptic"
	"errors"
	"math/big"
	"testing"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// TestCurveByName ensures curves are found by their canonical names and
// aliases regardless of case.
func TestCurveByName(t *testing.T) {
	tests := []struct {
		name string
		want *CurveParams
		err  error
	}{
		{"P-256", P256(), nil},
		{"p256", P256(), nil},
		{"secp256r1", P256(), nil},
		{"prime256v1", P256(), nil},
		{"  PRIME256V1 ", P256(), nil},
		{"P-224", P224(), nil},
		{"secp224r1", P224(), nil},
		{"P-384", P384(), nil},
		{"secp384r1", P384(), nil},
		{"P-521", P521(), nil},
		{"secp521r1", P521(), nil},
		{"secp256k1", Secp256k1(), nil},
		{"SECP256K1", Secp256k1(), nil},
		{"ed25519", nil, ErrUnknownCurve},
		{"", nil, ErrUnknownCurve},
	}

	for _, test := range tests {
		c, err := CurveByName(test.name)
		if !errors.Is(err, test.err) {
			t.Errorf("%q: mismatched error -- got %v, want %v", test.name, err,
				test.err)
			continue
		}
		if c != test.want {
			t.Errorf("%q: unexpected curve -- got %v, want %v", test.name, c,
				test.want)
		}
	}
}

// TestCurveSizes ensures the coordinate and encoding sizes of every
// registered curve.
func TestCurveSizes(t *testing.T) {
	tests := []struct {
		curve           *CurveParams
		byteSize        int
		compressedLen   int
		uncompressedLen int
	}{
		{P224(), 28, 29, 57},
		{P256(), 32, 33, 65},
		{P384(), 48, 49, 97},
		{P521(), 66, 67, 133},
		{Secp256k1(), 32, 33, 65},
	}

	for _, test := range tests {
		c := test.curve
		if c.ByteSize() != test.byteSize {
			t.Errorf("%s: unexpected byte size -- got %d, want %d", c,
				c.ByteSize(), test.byteSize)
		}
		if c.CompressedLen() != test.compressedLen {
			t.Errorf("%s: unexpected compressed length -- got %d, want %d", c,
				c.CompressedLen(), test.compressedLen)
		}
		if c.UncompressedLen() != test.uncompressedLen {
			t.Errorf("%s: unexpected uncompressed length -- got %d, want %d",
				c, c.UncompressedLen(), test.uncompressedLen)
		}
	}
}

// TestCurves ensures every registered curve is returned in name order with a
// generator on the curve.
func TestCurves(t *testing.T) {
	wantNames := []string{"P-224", "P-256", "P-384", "P-521", "secp256k1"}
	curves := Curves()
	if len(curves) != len(wantNames) {
		t.Fatalf("unexpected number of curves -- got %d, want %d",
			len(curves), len(wantNames))
	}
	for i, c := range curves {
		if c.Name != wantNames[i] {
			t.Errorf("curve %d: unexpected name -- got %s, want %s", i, c.Name,
				wantNames[i])
			continue
		}
		g := c.Generator()
		if g.IsInfinity() {
			t.Errorf("%s: missing generator", c)
			continue
		}
		if !c.IsOnCurve(g.X(), g.Y()) {
			t.Errorf("%s: generator is not on the curve", c)
		}
		if c.N() == nil || c.Elliptic() == nil {
			t.Errorf("%s: missing order or elliptic implementation", c)
		}
	}

	// Mutating the returned slice must not affect the registry.
	curves[0] = nil
	if Curves()[0] == nil {
		t.Fatal("registry was modified through the returned slice")
	}
}

// TestCurveCoefficients ensures the a coefficient of the NIST curves is -3
// and of secp256k1 is 0.
func TestCurveCoefficients(t *testing.T) {
	for _, c := range []*CurveParams{P224(), P256(), P384(), P521()} {
		minusThree := c.Field().NewElement(big.NewInt(-3))
		if !c.A().Equals(minusThree) {
			t.Errorf("%s: unexpected a -- got %v, want p-3", c, c.A())
		}
		if c.B().BigInt().Cmp(c.Elliptic().Params().B) != 0 {
			t.Errorf("%s: unexpected b -- got %v", c, c.B())
		}
	}

	if !Secp256k1().A().IsZero() {
		t.Errorf("secp256k1: unexpected a -- got %v, want 0", Secp256k1().A())
	}
	if Secp256k1().B().BigInt().Int64() != 7 {
		t.Errorf("secp256k1: unexpected b -- got %v, want 7", Secp256k1().B())
	}
}

// TestNewCurveParams ensures invalid curve parameters are rejected and a
// custom curve over a small field works.
func TestNewCurveParams(t *testing.T) {
	tests := []struct {
		name    string
		p, a, b int64
		gx, gy  int64
		valid   bool
	}{{
		name:  "even modulus",
		p:     24,
		a:     1,
		b:     1,
		valid: false,
	}, {
		name:  "singular a = b = 0",
		p:     23,
		a:     0,
		b:     0,
		valid: false,
	}, {
		// 4*(-3)^3 + 27*2^2 = -108 + 108 = 0
		name:  "singular a = -3, b = 2",
		p:     23,
		a:     -3,
		b:     2,
		valid: false,
	}, {
		name:  "generator off the curve",
		p:     23,
		a:     1,
		b:     1,
		gx:    0,
		gy:    2,
		valid: false,
	}, {
		// 1^2 = 0^3 + 0 + 1
		name:  "y^2 = x^3 + x + 1 mod 23",
		p:     23,
		a:     1,
		b:     1,
		gx:    0,
		gy:    1,
		valid: true,
	}}

	for _, test := range tests {
		c, err := NewCurveParams(test.name, big.NewInt(test.p),
			big.NewInt(test.a), big.NewInt(test.b), nil, big.NewInt(test.gx),
			big.NewInt(test.gy), nil)
		if (err == nil) != test.valid {
			t.Errorf("%s: unexpected result -- got err %v, want valid %v",
				test.name, err, test.valid)
			continue
		}
		if !test.valid {
			continue
		}
		if c.N() != nil || c.Elliptic() != nil {
			t.Errorf("%s: unexpected order or elliptic implementation",
				test.name)
		}
		if c.ByteSize() != 1 {
			t.Errorf("%s: unexpected byte size %d", test.name, c.ByteSize())
		}
	}

	if _, err := NewCurveParams("no b", big.NewInt(23), big.NewInt(1), nil,
		nil, nil, nil, nil); err == nil {
		t.Error("missing coefficient was accepted")
	}

	// A curve without a generator reports the point at infinity.
	c, err := NewCurveParams("no generator", big.NewInt(23), big.NewInt(1),
		big.NewInt(1), nil, nil, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !c.Generator().IsInfinity() {
		t.Errorf("unexpected generator %v", c.Generator())
	}
}

// TestSmallCurveCodec exhaustively round trips every point of a small curve
// through both encodings.
func TestSmallCurveCodec(t *testing.T) {
	c, err := NewCurveParams("toy", big.NewInt(23), big.NewInt(1),
		big.NewInt(1), nil, nil, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f := c.Field()
	var points int
	for xi := int64(0); xi < 23; xi++ {
		for yi := int64(0); yi < 23; yi++ {
			x := f.NewElement(big.NewInt(xi))
			y := f.NewElement(big.NewInt(yi))
			p, err := NewAffinePoint(c, x, y)
			if (err == nil) != c.IsOnCurve(x, y) {
				t.Fatalf("(%d, %d): unexpected result %v", xi, yi, err)
			}
			if err != nil {
				if !errors.Is(err, ErrNotOnCurve) {
					t.Fatalf("(%d, %d): unexpected error %v", xi, yi, err)
				}
				continue
			}
			points++

			for _, compressed := range []bool{true, false} {
				enc := p.Encode(compressed)
				got, err := c.DecodeSEC1(enc.Bytes())
				if err != nil {
					t.Fatalf("(%d, %d): failed to decode %v: %v", xi, yi,
						enc, err)
				}
				if !got.IsEqual(p) {
					t.Fatalf("(%d, %d): round trip mismatch -- got %v", xi,
						yi, got)
				}
			}
		}
	}

	// y^2 = x^3 + x + 1 over F_23 has 28 points including infinity.
	if points != 27 {
		t.Errorf("unexpected number of finite points -- got %d, want 27",
			points)
	}
}

// TestCurveForElliptic ensures crypto/elliptic curves map to the registered
// parameters.
func TestCurveForElliptic(t *testing.T) {
	tests := []struct {
		name string
		ec   elliptic.Curve
		want *CurveParams
	}{
		{"P-224", elliptic.P224(), P224()},
		{"P-256", elliptic.P256(), P256()},
		{"P-384", elliptic.P384(), P384()},
		{"P-521", elliptic.P521(), P521()},
		{"secp256k1", secp256k1.S256(), Secp256k1()},
		{"P-256 generic params", elliptic.P256().Params(), P256()},
	}

	for _, test := range tests {
		c, err := curveForElliptic(test.ec)
		if err != nil {
			t.Errorf("%s: unexpected error: %v", test.name, err)
			continue
		}
		if c != test.want {
			t.Errorf("%s: unexpected curve -- got %v, want %v", test.name, c,
				test.want)
		}
	}

	custom := &elliptic.CurveParams{
		Name: "custom",
		P:    big.NewInt(23),
		N:    big.NewInt(28),
		B:    big.NewInt(1),
		Gx:   big.NewInt(0),
		Gy:   big.NewInt(1),
	}
	if _, err := curveForElliptic(custom); !errors.Is(err, ErrUnknownCurve) {
		t.Errorf("custom curve: mismatched error -- got %v, want %v", err,
			ErrUnknownCurve)
	}
	if _, err := curveForElliptic(nil); !errors.Is(err, ErrUnknownCurve) {
		t.Errorf("nil curve: mismatched error -- got %v, want %v", err,
			ErrUnknownCurve)
	}
}
