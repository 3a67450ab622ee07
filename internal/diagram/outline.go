// Package diagram draws cross-section outlines of shapes from their
// nominal dimensions. Fillets, toes and corner radii are ignored.
package diagram

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/goaisc/internal/shape"
)

// DoubleAngleGap is the back-to-back spacing drawn between the two legs
// of a double angle, in inches.
const DoubleAngleGap = 0.375

// circleSegments is the number of edges used for round sections.
const circleSegments = 48

// Point is a 2D coordinate in inches.
type Point struct {
	X float64
	Y float64
}

// Ring is a closed polygon. The last point connects back to the first.
// Outer rings run counter-clockwise, holes clockwise.
type Ring []Point

// Outline is the cross-section of one shape. The section's bottom sits on
// y = 0. Points inside an odd number of rings are solid.
type Outline struct {
	Label  string
	Family shape.Family
	Rings  []Ring
}

// DimensionError reports a record whose dimensions cannot form a section.
type DimensionError struct {
	Label  string
	Reason string
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("cannot draw %s: %s", e.Label, e.Reason)
}

// OutlineOf builds the outline of rec.
func OutlineOf(rec shape.Record) (Outline, error) {
	d := dims{rec: rec}
	o := Outline{Label: rec.Ident().Label, Family: rec.Family()}

	switch rec.Family() {
	case shape.FamilyWideFlange, shape.FamilyMiscBeam, shape.FamilyStructuralBeam, shape.FamilyHPile:
		o.Rings = iShape(d.get(shape.DLower), d.get(shape.Bf), d.get(shape.Tw), d.get(shape.Tf))
		d.check(d.get(shape.Tw) < d.get(shape.Bf), "web is wider than the flange")
		d.check(2*d.get(shape.Tf) < d.get(shape.DLower), "flanges are deeper than the section")
	case shape.FamilyCeeChannel:
		o.Rings = channel(d.get(shape.DLower), d.get(shape.Bf), d.get(shape.Tw), d.get(shape.Tf))
		d.check(d.get(shape.Tw) < d.get(shape.Bf), "web is wider than the flange")
		d.check(2*d.get(shape.Tf) < d.get(shape.DLower), "flanges are deeper than the section")
	case shape.FamilyAngle:
		o.Rings = []Ring{angle(0, d.get(shape.DLower), d.get(shape.BLower), d.get(shape.TLower), false)}
		d.check(d.get(shape.TLower) < math.Min(d.get(shape.DLower), d.get(shape.BLower)), "legs are thinner than they are long")
	case shape.FamilyDoubleAngle:
		long, short, t := d.get(shape.DLower), d.get(shape.BLower), d.get(shape.TLower)
		o.Rings = []Ring{
			angle(-DoubleAngleGap/2, long, short, t, true),
			angle(DoubleAngleGap/2, long, short, t, false),
		}
		d.check(t < math.Min(long, short), "legs are thinner than they are long")
	case shape.FamilyWideFlangeTee, shape.FamilyMiscTee, shape.FamilyStructuralTee:
		o.Rings = []Ring{tee(d.get(shape.DLower), d.get(shape.Bf), d.get(shape.Tw), d.get(shape.Tf))}
		d.check(d.get(shape.Tw) < d.get(shape.Bf), "stem is wider than the flange")
		d.check(d.get(shape.Tf) < d.get(shape.DLower), "flange is deeper than the section")
	case shape.FamilyHollowStructuralSection:
		h, b, t := d.get(shape.Ht), d.get(shape.BUpper), d.get(shape.Tdes)
		o.Rings = []Ring{rect(-b/2, 0, b/2, h), rect(-b/2+t, t, b/2-t, h-t).reversed()}
		d.check(2*t < math.Min(h, b), "walls meet")
	case shape.FamilyRoundHollowStructuralSection, shape.FamilyPipe:
		od, t := d.get(shape.OD), d.get(shape.Tdes)
		center := Point{Y: od / 2}
		o.Rings = []Ring{circle(center, od/2), circle(center, od/2-t).reversed()}
		d.check(2*t < od, "walls meet")
	default:
		return Outline{}, &DimensionError{Label: o.Label, Reason: fmt.Sprintf("no outline for %s", rec.Family())}
	}

	if d.err != nil {
		return Outline{}, d.err
	}
	return o, nil
}

// dims reads positive dimensions from a record, keeping the first failure.
type dims struct {
	rec shape.Record
	err error
}

func (d *dims) get(p shape.Property) float64 {
	f, ok := shape.Lookup(d.rec, p)
	switch {
	case !ok || !f.Set:
		d.fail(fmt.Sprintf("%s is missing", p.Display()))
		return 0
	case f.Float <= 0:
		d.fail(fmt.Sprintf("%s must be positive, got %g", p.Display(), f.Float))
		return 0
	}
	return f.Float
}

func (d *dims) check(ok bool, reason string) {
	if !ok {
		d.fail(reason)
	}
}

func (d *dims) fail(reason string) {
	if d.err == nil {
		d.err = &DimensionError{Label: d.rec.Ident().Label, Reason: reason}
	}
}

func iShape(depth, bf, tw, tf float64) []Ring {
	x, w := bf/2, tw/2
	return []Ring{{
		{-x, 0}, {x, 0}, {x, tf}, {w, tf}, {w, depth - tf}, {x, depth - tf},
		{x, depth}, {-x, depth}, {-x, depth - tf}, {-w, depth - tf}, {-w, tf}, {-x, tf},
	}}
}

// channel opens to +x with the back of the web on x = 0.
func channel(depth, bf, tw, tf float64) []Ring {
	return []Ring{{
		{0, 0}, {bf, 0}, {bf, tf}, {tw, tf}, {tw, depth - tf}, {bf, depth - tf}, {bf, depth}, {0, depth},
	}}
}

// angle draws the long leg vertical with its back on x = x0. Mirrored
// angles extend towards -x.
func angle(x0, long, short, t float64, mirrored bool) Ring {
	r := Ring{{0, 0}, {short, 0}, {short, t}, {t, t}, {t, long}, {0, long}}
	for i := range r {
		if mirrored {
			r[i].X = -r[i].X
		}
		r[i].X += x0
	}
	if mirrored {
		return r.reversed()
	}
	return r
}

// tee has the flange on top and the stem down to y = 0.
func tee(depth, bf, tw, tf float64) Ring {
	x, w := bf/2, tw/2
	return Ring{
		{-w, 0}, {w, 0}, {w, depth - tf}, {x, depth - tf}, {x, depth}, {-x, depth}, {-x, depth - tf}, {-w, depth - tf},
	}
}

func rect(x0, y0, x1, y1 float64) Ring {
	return Ring{{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1}}
}

func circle(c Point, r float64) Ring {
	ring := make(Ring, circleSegments)
	for i := range ring {
		a := 2 * math.Pi * float64(i) / circleSegments
		ring[i] = Point{X: c.X + r*math.Cos(a), Y: c.Y + r*math.Sin(a)}
	}
	return ring
}

func (r Ring) reversed() Ring {
	out := make(Ring, len(r))
	for i, p := range r {
		out[len(r)-1-i] = p
	}
	return out
}

// Area returns the signed area of the ring, positive when counter-clockwise.
func (r Ring) Area() float64 {
	var sum float64
	for i, p := range r {
		q := r[(i+1)%len(r)]
		sum += p.X*q.Y - q.X*p.Y
	}
	return sum / 2
}

// Area returns the solid area of the outline.
func (o Outline) Area() float64 {
	var sum float64
	for _, r := range o.Rings {
		sum += r.Area()
	}
	return sum
}

// Bounds returns the lower-left and upper-right corners of the outline.
func (o Outline) Bounds() (lo, hi Point) {
	lo = Point{math.Inf(1), math.Inf(1)}
	hi = Point{math.Inf(-1), math.Inf(-1)}
	for _, r := range o.Rings {
		for _, p := range r {
			lo.X, lo.Y = math.Min(lo.X, p.X), math.Min(lo.Y, p.Y)
			hi.X, hi.Y = math.Max(hi.X, p.X), math.Max(hi.Y, p.Y)
		}
	}
	return lo, hi
}

// Contains reports whether p lies in the solid part of the outline.
func (o Outline) Contains(p Point) bool {
	inside := false
	for _, r := range o.Rings {
		for i, a := range r {
			b := r[(i+1)%len(r)]
			if (a.Y > p.Y) != (b.Y > p.Y) {
				x := a.X + (p.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
				if p.X < x {
					inside = !inside
				}
			}
		}
	}
	return inside
}
