// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sec1

import (
	"fmt"
)

// DecodeSEC1 parses a SEC1 serialized point for the curve, verifying that it
// is valid.  It supports the identity, compressed and uncompressed formats.
//
// Malformed input, including coordinates that are not less than the field
// prime, fails with ErrInvalidEncoding.  Well formed coordinates that do not
// describe a point on the curve fail with ErrNotOnCurve.  The identity
// encoding decodes to the point at infinity.
func (c *CurveParams) DecodeSEC1(b []byte) (AffinePoint, error) {
	p, err := c.decodeSEC1(b)
	if err != nil {
		log.Debugf("Rejected %s point %x: %v", c.Name, b, err)
		return AffinePoint{}, err
	}
	return p, nil
}

func (c *CurveParams) decodeSEC1(b []byte) (AffinePoint, error) {
	form, err := checkEncoding(c, b)
	if err != nil {
		return AffinePoint{}, err
	}

	size := c.field.size
	switch form {
	case FormIdentity:
		return Infinity(c), nil

	case FormCompressed:
		// format is 0x2 | solution, <X coordinate>
		// solution determines which solution of the curve we use.
		x, err := c.decodeCoord("x", b[1:])
		if err != nil {
			return AffinePoint{}, err
		}
		odd := b[0] == TagCompressedOdd
		y, ok := c.DecompressY(x, odd)
		if !ok {
			str := fmt.Sprintf("invalid %s point: x coordinate %v is not "+
				"on the curve", c.Name, x)
			return AffinePoint{}, makeError(ErrNotOnCurve, str)
		}
		return AffinePoint{curve: c, x: x, y: y, finite: true}, nil

	default:
		x, err := c.decodeCoord("x", b[1:1+size])
		if err != nil {
			return AffinePoint{}, err
		}
		y, err := c.decodeCoord("y", b[1+size:])
		if err != nil {
			return AffinePoint{}, err
		}
		if !c.IsOnCurve(x, y) {
			str := fmt.Sprintf("invalid %s point: (%v, %v) is not on the "+
				"curve", c.Name, x, y)
			return AffinePoint{}, makeError(ErrNotOnCurve, str)
		}
		return AffinePoint{curve: c, x: x, y: y, finite: true}, nil
	}
}

// decodeCoord parses a fixed-width big-endian coordinate, rejecting values
// that are not less than the field prime.
func (c *CurveParams) decodeCoord(name string, b []byte) (FieldElement, error) {
	v, ok := c.field.SetBytes(b)
	if !ok {
		str := fmt.Sprintf("invalid %s point: %s coordinate %x is not less "+
			"than the field prime", c.Name, name, b)
		return FieldElement{}, makeError(ErrInvalidEncoding, str)
	}
	return v, nil
}

// Encode serializes the point in SEC1 format.  The point at infinity always
// serializes to the single byte 0x00 regardless of the compressed flag.
// Finite points serialize to 0x02 or 0x03 (even or odd y) followed by x when
// compressed, and to 0x04 followed by x and y otherwise.  Coordinates are
// zero padded to the field size.
func (p AffinePoint) Encode(compressed bool) EncodedPoint {
	if !p.finite {
		return EncodedPoint{form: FormIdentity, b: []byte{TagIdentity}}
	}

	size := p.curve.field.size
	if compressed {
		b := make([]byte, 1+size)
		b[0] = TagCompressedEven
		if p.y.IsOdd() {
			b[0] = TagCompressedOdd
		}
		p.x.PutBytes(b[1:])
		return EncodedPoint{form: FormCompressed, b: b}
	}

	b := make([]byte, 1+2*size)
	b[0] = TagUncompressed
	p.x.PutBytes(b[1 : 1+size])
	p.y.PutBytes(b[1+size:])
	return EncodedPoint{form: FormUncompressed, b: b}
}
