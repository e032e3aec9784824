// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sec1

import (
	"fmt"
)

// AffinePoint is either the point at infinity or a finite point (x, y) that
// satisfies the equation of its curve.  Finite points can only be obtained
// through NewAffinePoint, DecodeSEC1 or the curve generator, all of which
// check curve membership, so every finite AffinePoint is on its curve.
//
// The zero value is the point at infinity with no associated curve.
type AffinePoint struct {
	curve  *CurveParams
	x, y   FieldElement
	finite bool
}

// Infinity returns the point at infinity, the identity of the group of
// points on the curve.
func Infinity(c *CurveParams) AffinePoint {
	return AffinePoint{curve: c}
}

// NewAffinePoint returns the finite point with the passed coordinates.  An
// error of kind ErrNotOnCurve is returned when the coordinates do not satisfy
// the curve equation and ErrCurveMismatch when they are elements of a
// different field.
func NewAffinePoint(c *CurveParams, x, y FieldElement) (AffinePoint, error) {
	if x.f != c.field || y.f != c.field {
		str := fmt.Sprintf("coordinates are not elements of the %s field",
			c.Name)
		return AffinePoint{}, makeError(ErrCurveMismatch, str)
	}
	if !c.IsOnCurve(x, y) {
		str := fmt.Sprintf("point (%v, %v) is not on the %s curve", x, y,
			c.Name)
		return AffinePoint{}, makeError(ErrNotOnCurve, str)
	}
	return AffinePoint{curve: c, x: x, y: y, finite: true}, nil
}

// Curve returns the curve the point belongs to.  It is nil only for the zero
// value.
func (p AffinePoint) Curve() *CurveParams {
	return p.curve
}

// IsInfinity returns whether or not the point is the point at infinity.
func (p AffinePoint) IsInfinity() bool {
	return !p.finite
}

// Coordinates returns the affine coordinates of a finite point.  The final
// return value is false for the point at infinity, which has none.
func (p AffinePoint) Coordinates() (x, y FieldElement, ok bool) {
	if !p.finite {
		return FieldElement{}, FieldElement{}, false
	}
	return p.x, p.y, true
}

// X returns the x coordinate.  It must not be called on the point at
// infinity.
func (p AffinePoint) X() FieldElement {
	if !p.finite {
		panic("sec1: x coordinate of the point at infinity")
	}
	return p.x
}

// Y returns the y coordinate.  It must not be called on the point at
// infinity.
func (p AffinePoint) Y() FieldElement {
	if !p.finite {
		panic("sec1: y coordinate of the point at infinity")
	}
	return p.y
}

// IsEqual returns whether or not the two points are the same.  Two points at
// infinity are equal unless both carry a curve and the curves differ.
func (p AffinePoint) IsEqual(other AffinePoint) bool {
	if p.finite != other.finite {
		return false
	}
	if !p.finite {
		return p.curve == nil || other.curve == nil || p.curve == other.curve
	}
	return p.curve == other.curve && p.x.Equals(other.x) && p.y.Equals(other.y)
}

// String returns the point in a human-readable form.
func (p AffinePoint) String() string {
	if !p.finite {
		return "infinity"
	}
	return fmt.Sprintf("(%v, %v)", p.x, p.y)
}
