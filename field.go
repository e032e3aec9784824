// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sec1

import (
	"encoding/hex"
	"fmt"
	"math/big"
)

var (
	bigOne   = big.NewInt(1)
	bigTwo   = big.NewInt(2)
	bigThree = big.NewInt(3)
	bigFour  = big.NewInt(4)
)

// sqrtMethod identifies the algorithm used to compute modular square roots in
// a given field.  It depends only on the field prime.
type sqrtMethod int

const (
	// sqrtExponent computes roots as a^((p+1)/4), which is only valid when
	// p ≡ 3 (mod 4).  All of P-256, P-384, P-521 and secp256k1 qualify.
	sqrtExponent sqrtMethod = iota

	// sqrtTonelliShanks is the general method used for every other odd
	// prime, notably P-224 where p ≡ 1 (mod 4).
	sqrtTonelliShanks
)

// String returns the name of the square root method.
func (m sqrtMethod) String() string {
	switch m {
	case sqrtExponent:
		return "exponentiation"
	case sqrtTonelliShanks:
		return "Tonelli-Shanks"
	}
	return fmt.Sprintf("unknown square root method (%d)", int(m))
}

// Field is the prime field of integers modulo an odd prime p.  A Field is
// immutable once created and may be shared between goroutines.
type Field struct {
	p    *big.Int
	size int

	method sqrtMethod

	// qPlus1Div4 is (p+1)/4 and is only set for sqrtExponent.
	qPlus1Div4 *big.Int

	// Tonelli-Shanks parameters: p-1 = tsQ * 2^tsS with tsQ odd and tsZ a
	// quadratic non-residue.
	tsQ *big.Int
	tsS int
	tsZ *big.Int
}

// NewField returns the field of integers modulo the passed odd prime.  The
// fixed serialization width of the field elements is the minimum number of
// bytes needed to hold p.
func NewField(p *big.Int) (*Field, error) {
	if p == nil || p.Cmp(bigThree) < 0 || p.Bit(0) == 0 {
		return nil, fmt.Errorf("field modulus must be an odd prime >= 3")
	}
	if !p.ProbablyPrime(20) {
		return nil, fmt.Errorf("field modulus %x is not prime", p)
	}

	f := &Field{
		p:    new(big.Int).Set(p),
		size: (p.BitLen() + 7) / 8,
	}

	if new(big.Int).Mod(p, bigFour).Cmp(bigThree) == 0 {
		f.method = sqrtExponent
		f.qPlus1Div4 = new(big.Int).Add(p, bigOne)
		f.qPlus1Div4.Rsh(f.qPlus1Div4, 2)
		return f, nil
	}

	f.method = sqrtTonelliShanks
	pMinus1 := new(big.Int).Sub(p, bigOne)
	f.tsS = int(pMinus1.TrailingZeroBits())
	f.tsQ = new(big.Int).Rsh(pMinus1, uint(f.tsS))
	z := new(big.Int).Set(bigTwo)
	for big.Jacobi(z, p) != -1 {
		z.Add(z, bigOne)
	}
	f.tsZ = z
	return f, nil
}

// Prime returns a copy of the field modulus.
func (f *Field) Prime() *big.Int {
	return new(big.Int).Set(f.p)
}

// Size returns the number of bytes in the fixed-width big-endian
// serialization of an element of the field.
func (f *Field) Size() int {
	return f.size
}

// Zero returns the additive identity of the field.
func (f *Field) Zero() FieldElement {
	return FieldElement{f: f, n: new(big.Int)}
}

// One returns the multiplicative identity of the field.
func (f *Field) One() FieldElement {
	return FieldElement{f: f, n: big.NewInt(1)}
}

// NewElement returns the field element congruent to v modulo p.  The passed
// value is not modified.
func (f *Field) NewElement(v *big.Int) FieldElement {
	return FieldElement{f: f, n: new(big.Int).Mod(v, f.p)}
}

// SetBytes interprets b as a big-endian integer and returns it as a field
// element.  The second return value is false when b is not exactly Size
// bytes or encodes a value that is not less than p, since neither is a
// canonical encoding of a field element.
func (f *Field) SetBytes(b []byte) (FieldElement, bool) {
	if len(b) != f.size {
		return FieldElement{}, false
	}
	n := new(big.Int).SetBytes(b)
	if n.Cmp(f.p) >= 0 {
		return FieldElement{}, false
	}
	return FieldElement{f: f, n: n}, true
}

// Sqrt returns a square root of a along with true when a is a quadratic
// residue.  When a has no square root the returned element is zero and the
// second return value is false.  Which of the two roots is returned is
// unspecified; callers select by parity.
func (f *Field) Sqrt(a FieldElement) (FieldElement, bool) {
	f.mustOwn(a)
	if a.n.Sign() == 0 {
		return f.Zero(), true
	}

	var r *big.Int
	switch f.method {
	case sqrtExponent:
		r = new(big.Int).Exp(a.n, f.qPlus1Div4, f.p)
	case sqrtTonelliShanks:
		r = f.tonelliShanks(a.n)
	}
	if r == nil {
		return f.Zero(), false
	}

	// Both methods produce garbage rather than failing for a non-residue
	// input, so the result is always checked.
	check := new(big.Int).Mul(r, r)
	check.Mod(check, f.p)
	if check.Cmp(a.n) != 0 {
		return f.Zero(), false
	}
	return FieldElement{f: f, n: r}, true
}

// tonelliShanks returns a candidate square root of the nonzero value a, or
// nil when the iteration proves that a is a non-residue.
func (f *Field) tonelliShanks(a *big.Int) *big.Int {
	p := f.p
	m := f.tsS
	c := new(big.Int).Exp(f.tsZ, f.tsQ, p)
	t := new(big.Int).Exp(a, f.tsQ, p)
	exp := new(big.Int).Add(f.tsQ, bigOne)
	exp.Rsh(exp, 1)
	r := new(big.Int).Exp(a, exp, p)

	t2 := new(big.Int)
	for t.Cmp(bigOne) != 0 {
		// Find the least i, 0 < i < m, such that t^(2^i) = 1.
		i := 0
		t2.Set(t)
		for t2.Cmp(bigOne) != 0 {
			t2.Mul(t2, t2).Mod(t2, p)
			i++
			if i == m {
				return nil
			}
		}

		b := new(big.Int).Set(c)
		for j := 0; j < m-i-1; j++ {
			b.Mul(b, b).Mod(b, p)
		}
		m = i
		c.Mul(b, b).Mod(c, p)
		t.Mul(t, c).Mod(t, p)
		r.Mul(r, b).Mod(r, p)
	}
	return r
}

func (f *Field) mustOwn(a FieldElement) {
	if a.f != f {
		panic("sec1: field element belongs to a different field")
	}
}

// FieldElement is an integer modulo the prime of the Field it was created
// from.  Field elements are immutable values: every arithmetic method returns
// a new element and leaves its operands untouched.
//
// Elements are obtained from a Field.  The zero value, which is what
// AffinePoint.Coordinates returns for the point at infinity, belongs to no
// field: it reports zero, even, empty bytes and prints as "<nil>", and it
// must not be used in arithmetic.
type FieldElement struct {
	f *Field
	n *big.Int
}

// Field returns the field the element belongs to.
func (e FieldElement) Field() *Field {
	return e.f
}

// Add returns e + o.
func (e FieldElement) Add(o FieldElement) FieldElement {
	e.f.mustOwn(o)
	n := new(big.Int).Add(e.n, o.n)
	if n.Cmp(e.f.p) >= 0 {
		n.Sub(n, e.f.p)
	}
	return FieldElement{f: e.f, n: n}
}

// Sub returns e - o.
func (e FieldElement) Sub(o FieldElement) FieldElement {
	e.f.mustOwn(o)
	n := new(big.Int).Sub(e.n, o.n)
	if n.Sign() < 0 {
		n.Add(n, e.f.p)
	}
	return FieldElement{f: e.f, n: n}
}

// Mul returns e * o.
func (e FieldElement) Mul(o FieldElement) FieldElement {
	e.f.mustOwn(o)
	n := new(big.Int).Mul(e.n, o.n)
	return FieldElement{f: e.f, n: n.Mod(n, e.f.p)}
}

// Square returns e^2.
func (e FieldElement) Square() FieldElement {
	return e.Mul(e)
}

// Neg returns -e.
func (e FieldElement) Neg() FieldElement {
	if e.n.Sign() == 0 {
		return e
	}
	return FieldElement{f: e.f, n: new(big.Int).Sub(e.f.p, e.n)}
}

// Exp returns e^k for a non-negative exponent k.
func (e FieldElement) Exp(k *big.Int) FieldElement {
	return FieldElement{f: e.f, n: new(big.Int).Exp(e.n, k, e.f.p)}
}

// Equals returns whether or not the two field elements are the same value in
// the same field.
func (e FieldElement) Equals(o FieldElement) bool {
	return e.f == o.f && e.n.Cmp(o.n) == 0
}

// IsZero returns whether or not the field element is zero.
func (e FieldElement) IsZero() bool {
	return e.n == nil || e.n.Sign() == 0
}

// IsOdd returns whether or not the least significant bit of the canonical
// representation is set.
func (e FieldElement) IsOdd() bool {
	return e.n != nil && e.n.Bit(0) == 1
}

// Bytes returns the element as a big-endian byte slice zero padded to the
// field size.  The zero value returns nil.
func (e FieldElement) Bytes() []byte {
	if e.f == nil {
		return nil
	}
	return e.n.FillBytes(make([]byte, e.f.size))
}

// PutBytes writes the big-endian encoding of the element into b, which must
// be exactly the field size.
func (e FieldElement) PutBytes(b []byte) {
	if len(b) != e.f.size {
		panic(fmt.Sprintf("sec1: PutBytes needs %d bytes, got %d",
			e.f.size, len(b)))
	}
	e.n.FillBytes(b)
}

// BigInt returns a copy of the canonical value of the element.
func (e FieldElement) BigInt() *big.Int {
	if e.n == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(e.n)
}

// String returns the element as a fixed-width hex string.
func (e FieldElement) String() string {
	if e.f == nil {
		return "<nil>"
	}
	return hex.EncodeToString(e.Bytes())
}
