// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sec1

import (
	"crypto/ecdsa"
	"fmt"
	"math/big"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"golang.org/x/crypto/ripemd160"
)

// PublicKey is a finite point on a curve that is usable as a public key.  The
// point at infinity is never a public key because it has no affine
// coordinates.
type PublicKey struct {
	point AffinePoint
}

// ToPublicKey returns the public key for the passed point.  It fails with
// ErrNotAPublicKey for the point at infinity.  Curve membership needs no
// check since every finite AffinePoint is already on its curve.
func ToPublicKey(p AffinePoint) (*PublicKey, error) {
	if !p.finite || p.curve == nil {
		return nil, makeError(ErrNotAPublicKey, "the point at infinity is "+
			"not a valid public key")
	}
	return &PublicKey{point: p}, nil
}

// ParsePubKey parses a SEC1 serialized public key for the curve, verifying
// that it is valid.  It supports compressed and uncompressed formats.  The
// identity encoding is rejected with ErrNotAPublicKey.
func ParsePubKey(c *CurveParams, serialized []byte) (*PublicKey, error) {
	p, err := c.DecodeSEC1(serialized)
	if err != nil {
		return nil, err
	}
	return ToPublicKey(p)
}

// PubKeyFromECDSA converts a crypto/ecdsa public key on one of the
// registered curves.  The coordinates are validated exactly as a decoded
// uncompressed point would be.
func PubKeyFromECDSA(key *ecdsa.PublicKey) (*PublicKey, error) {
	if key == nil || key.X == nil || key.Y == nil {
		return nil, makeError(ErrNotAPublicKey, "missing public key "+
			"coordinates")
	}
	c, err := curveForElliptic(key.Curve)
	if err != nil {
		return nil, err
	}
	p := c.P()
	for _, v := range []*big.Int{key.X, key.Y} {
		if v.Sign() < 0 || v.Cmp(p) >= 0 {
			str := fmt.Sprintf("coordinate %x is out of range for %s", v,
				c.Name)
			return nil, makeError(ErrInvalidEncoding, str)
		}
	}
	point, err := NewAffinePoint(c, c.field.NewElement(key.X),
		c.field.NewElement(key.Y))
	if err != nil {
		return nil, err
	}
	return ToPublicKey(point)
}

// Curve returns the curve the key is on.
func (k *PublicKey) Curve() *CurveParams {
	return k.point.curve
}

// Point returns the underlying affine point.
func (k *PublicKey) Point() AffinePoint {
	return k.point
}

// X returns a copy of the x coordinate of the public key.
func (k *PublicKey) X() *big.Int {
	return k.point.x.BigInt()
}

// Y returns a copy of the y coordinate of the public key.
func (k *PublicKey) Y() *big.Int {
	return k.point.y.BigInt()
}

// SerializeCompressed serializes a public key in the compressed format of
// 1 + ByteSize bytes.
func (k *PublicKey) SerializeCompressed() []byte {
	return k.point.Encode(true).b
}

// SerializeUncompressed serializes a public key in the uncompressed format
// of 1 + 2*ByteSize bytes.
func (k *PublicKey) SerializeUncompressed() []byte {
	return k.point.Encode(false).b
}

// IsEqual compares this public key instance to the one passed, returning true
// if both public keys are equivalent.  A nil key is never equal.
func (k *PublicKey) IsEqual(otherPubKey *PublicKey) bool {
	if otherPubKey == nil {
		return false
	}
	return k.point.IsEqual(otherPubKey.point)
}

// ToECDSA returns the public key as a *ecdsa.PublicKey.  It returns nil when
// the curve has no crypto/elliptic implementation.
func (k *PublicKey) ToECDSA() *ecdsa.PublicKey {
	ec := k.point.curve.ec
	if ec == nil {
		return nil
	}
	return &ecdsa.PublicKey{Curve: ec, X: k.X(), Y: k.Y()}
}

// Hash160 returns RIPEMD160(SHA256(b)) where b is the compressed
// serialization of the key.
func (k *PublicKey) Hash160() []byte {
	rmd := ripemd160.New()
	rmd.Write(chainhash.HashB(k.SerializeCompressed()))
	return rmd.Sum(nil)
}

// Fingerprint returns the first four bytes of the Hash160 of the key, which
// is how BIP32 identifies parent keys.
func (k *PublicKey) Fingerprint() [4]byte {
	var fp [4]byte
	copy(fp[:], k.Hash160())
	return fp
}

// String returns the compressed serialization of the key as hex.
func (k *PublicKey) String() string {
	return k.point.Encode(true).String()
}
