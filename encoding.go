// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sec1

import (
	"encoding/hex"
	"fmt"
)

// These constants are the tag bytes that start each SEC1 point encoding.
const (
	TagIdentity       byte = 0x00 // point at infinity
	TagCompressedEven byte = 0x02 // even y + x coord
	TagCompressedOdd  byte = 0x03 // odd y + x coord
	TagUncompressed   byte = 0x04 // x coord + y coord
)

// PointForm identifies which of the SEC1 point encodings a serialized point
// uses.
type PointForm int

// These constants define the supported point forms.
const (
	FormIdentity PointForm = iota
	FormCompressed
	FormUncompressed
)

var pointFormStrings = map[PointForm]string{
	FormIdentity:     "identity",
	FormCompressed:   "compressed",
	FormUncompressed: "uncompressed",
}

// String returns the PointForm in human-readable form.
func (f PointForm) String() string {
	if s, ok := pointFormStrings[f]; ok {
		return s
	}
	return fmt.Sprintf("Unknown PointForm (%d)", int(f))
}

// EncodedPoint is a serialized SEC1 point whose tag byte and length have been
// checked.  It says nothing about whether the coordinates describe a point on
// the curve; use DecodeSEC1 for that.
type EncodedPoint struct {
	form PointForm
	b    []byte
}

// Form returns the encoding form.
func (e EncodedPoint) Form() PointForm {
	return e.form
}

// Tag returns the leading tag byte.
func (e EncodedPoint) Tag() byte {
	return tagOf(e.b)
}

// IsIdentity returns whether or not this is the encoding of the point at
// infinity.
func (e EncodedPoint) IsIdentity() bool {
	return e.form == FormIdentity
}

// IsCompressed returns whether or not this is a compressed encoding.
func (e EncodedPoint) IsCompressed() bool {
	return e.form == FormCompressed
}

// Len returns the length of the encoding in bytes.
func (e EncodedPoint) Len() int {
	return len(e.b)
}

// Bytes returns a copy of the serialized point.
func (e EncodedPoint) Bytes() []byte {
	b := make([]byte, len(e.b))
	copy(b, e.b)
	return b
}

// XBytes returns a copy of the serialized x coordinate.  It returns nil for
// the identity encoding.
func (e EncodedPoint) XBytes() []byte {
	switch e.form {
	case FormCompressed:
		return append([]byte(nil), e.b[1:]...)
	case FormUncompressed:
		size := (len(e.b) - 1) / 2
		return append([]byte(nil), e.b[1:1+size]...)
	}
	return nil
}

// YBytes returns a copy of the serialized y coordinate.  It returns nil for
// every form except uncompressed.
func (e EncodedPoint) YBytes() []byte {
	if e.form != FormUncompressed {
		return nil
	}
	size := (len(e.b) - 1) / 2
	return append([]byte(nil), e.b[1+size:]...)
}

// String returns the serialized point as hex.
func (e EncodedPoint) String() string {
	return hex.EncodeToString(e.b)
}

// DecodeIdentity parses the SEC1 encoding of the point at infinity, which is
// the single byte 0x00.  It only checks syntax: the result is never usable as
// a public key.
func DecodeIdentity(b []byte) (EncodedPoint, error) {
	if len(b) != 1 || b[0] != TagIdentity {
		str := fmt.Sprintf("malformed identity encoding: got %d bytes "+
			"starting with %#x, want the single byte 0x00", len(b), tagOf(b))
		return EncodedPoint{}, makeError(ErrInvalidEncoding, str)
	}
	return EncodedPoint{form: FormIdentity, b: []byte{TagIdentity}}, nil
}

// ParseEncodedPoint checks that b is a syntactically valid SEC1 encoding for
// the curve, meaning a known tag byte followed by the number of bytes that
// tag requires, and wraps a copy of it.  No field arithmetic is performed.
func ParseEncodedPoint(c *CurveParams, b []byte) (EncodedPoint, error) {
	form, err := checkEncoding(c, b)
	if err != nil {
		return EncodedPoint{}, err
	}
	return EncodedPoint{form: form, b: append([]byte(nil), b...)}, nil
}

// IsCompressedPubKey returns true the passed serialized public key has been
// encoded in compressed format for the curve, and false otherwise.
func IsCompressedPubKey(c *CurveParams, b []byte) bool {
	return len(b) == c.CompressedLen() &&
		(b[0] == TagCompressedEven || b[0] == TagCompressedOdd)
}

// checkEncoding returns the form declared by the tag byte of b after making
// sure the length matches it.
func checkEncoding(c *CurveParams, b []byte) (PointForm, error) {
	if len(b) == 0 {
		return 0, makeError(ErrInvalidEncoding, "empty point encoding")
	}

	var form PointForm
	var wantLen int
	switch b[0] {
	case TagIdentity:
		form, wantLen = FormIdentity, 1
	case TagCompressedEven, TagCompressedOdd:
		form, wantLen = FormCompressed, c.CompressedLen()
	case TagUncompressed:
		form, wantLen = FormUncompressed, c.UncompressedLen()
	default:
		str := fmt.Sprintf("invalid point format tag %#x", b[0])
		return 0, makeError(ErrInvalidEncoding, str)
	}

	if len(b) != wantLen {
		str := fmt.Sprintf("malformed %s %s point: got %d bytes, want %d",
			c.Name, form, len(b), wantLen)
		return 0, makeError(ErrInvalidEncoding, str)
	}
	return form, nil
}

func tagOf(b []byte) byte {
	if len(b) == 0 {
		return 0
	}
	return b[0]
}
