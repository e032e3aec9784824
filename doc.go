// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package sec1 implements parsing, serialization and validation of elliptic curve
points in the SEC1 format for short Weierstrass curves y^2 = x^3 + a*x + b.

See https://www.secg.org/sec1-v2.pdf section 2.3.3 for details on the encoding.
NIST P-256 is the primary target, and parameters for P-224, P-384, P-521 and
secp256k1 are provided as well.

An overview of the features provided by this package are as follows:

  - Parses the identity, compressed and uncompressed point formats
  - Serializes points in the compressed and uncompressed formats
  - Rejects coordinates that are not on the curve, including compressed x
    coordinates with no corresponding y
  - Keeps the point at infinity distinct from finite points and refuses to
    treat it as a public key
  - FieldElement type for working modulo an arbitrary curve prime
  - Point decompression from a given x coordinate, using a closed form square
    root when p ≡ 3 (mod 4) and Tonelli-Shanks otherwise
  - Conversion of public keys to and from crypto/ecdsa
  - HASH160 and BIP32-style fingerprints of public keys

# Errors

Every failure is reported as an Error whose underlying ErrorKind identifies
the reason, so callers can test for it with errors.Is:

  - ErrInvalidEncoding: unknown tag byte, wrong length for the tag, or a
    coordinate that is not less than the field prime
  - ErrNotOnCurve: well formed coordinates that are not on the curve
  - ErrNotAPublicKey: the point at infinity where a public key is required

Decoding never substitutes a default point for invalid input.

# Concurrency

All types are immutable once constructed and every function is safe for
concurrent use.

Logging is disabled by default.  Callers that use btclog can enable it with
UseLogger.
*/
package sec1
