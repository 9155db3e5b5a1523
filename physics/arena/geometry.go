package arena

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/ironrift/physics"
)

// primitive is a collider reduced to a swept segment with radius, or an axis aligned box
type primitive struct {
	box      bool
	a, b     mgl64.Vec3 // Segment endpoints
	radius   float64
	min, max mgl64.Vec3 // Box bounds
}

// primitiveOf builds the contact primitive for a collider on a body
// Balls sweep from their previous position so fast bullets do not tunnel
func primitiveOf(desc physics.ColliderDesc, b *body) primitive {
	switch desc.Shape {
	case physics.ShapeCapsuleY:
		up := mgl64.Vec3{0, desc.HalfHeight, 0}
		return primitive{a: b.pos.Sub(up), b: b.pos.Add(up), radius: desc.Radius}
	case physics.ShapeCuboid:
		return primitive{box: true, min: b.pos.Sub(desc.HalfExtents), max: b.pos.Add(desc.HalfExtents)}
	default:
		return primitive{a: b.prev, b: b.pos, radius: desc.Radius}
	}
}

// gap returns surface separation, negative when overlapping
func gap(p, q primitive) float64 {
	switch {
	case p.box && q.box:
		return boxBoxDist(p.min, p.max, q.min, q.max)
	case p.box:
		return segBoxDist(q.a, q.b, p.min, p.max) - q.radius
	case q.box:
		return segBoxDist(p.a, p.b, q.min, q.max) - p.radius
	default:
		return segSegDist(p.a, p.b, q.a, q.b) - p.radius - q.radius
	}
}

func pointBoxDist(p, min, max mgl64.Vec3) float64 {
	var d mgl64.Vec3
	for i := 0; i < 3; i++ {
		switch {
		case p[i] < min[i]:
			d[i] = min[i] - p[i]
		case p[i] > max[i]:
			d[i] = p[i] - max[i]
		}
	}
	return d.Len()
}

// segBoxDist minimizes the convex point-box distance along the segment by ternary search
func segBoxDist(a, b, min, max mgl64.Vec3) float64 {
	ab := b.Sub(a)
	if ab.Len() < 1e-12 {
		return pointBoxDist(a, min, max)
	}
	at := func(t float64) float64 {
		return pointBoxDist(a.Add(ab.Mul(t)), min, max)
	}
	lo, hi := 0.0, 1.0
	for i := 0; i < 60; i++ {
		m1 := lo + (hi-lo)/3
		m2 := hi - (hi-lo)/3
		if at(m1) <= at(m2) {
			hi = m2
		} else {
			lo = m1
		}
	}
	return math.Min(at((lo+hi)/2), math.Min(at(0), at(1)))
}

func boxBoxDist(minA, maxA, minB, maxB mgl64.Vec3) float64 {
	var d mgl64.Vec3
	overlap := math.Inf(1)
	separated := false
	for i := 0; i < 3; i++ {
		g := math.Max(minA[i]-maxB[i], minB[i]-maxA[i])
		if g > 0 {
			d[i] = g
			separated = true
		} else {
			overlap = math.Min(overlap, -g)
		}
	}
	if separated {
		return d.Len()
	}
	return -overlap
}

// segSegDist returns the closest distance between segments p1q1 and p2q2
func segSegDist(p1, q1, p2, q2 mgl64.Vec3) float64 {
	const eps = 1e-12
	d1 := q1.Sub(p1)
	d2 := q2.Sub(p2)
	r := p1.Sub(p2)
	a := d1.Dot(d1)
	e := d2.Dot(d2)
	f := d2.Dot(r)

	var s, t float64
	switch {
	case a <= eps && e <= eps:
		return r.Len()
	case a <= eps:
		t = clamp01(f / e)
	default:
		c := d1.Dot(r)
		if e <= eps {
			s = clamp01(-c / a)
		} else {
			b := d1.Dot(d2)
			denom := a*e - b*b
			if denom > eps {
				s = clamp01((b*f - c*e) / denom)
			}
			t = (b*s + f) / e
			if t < 0 {
				t = 0
				s = clamp01(-c / a)
			} else if t > 1 {
				t = 1
				s = clamp01((b - c) / a)
			}
		}
	}

	c1 := p1.Add(d1.Mul(s))
	c2 := p2.Add(d2.Mul(t))
	return c1.Sub(c2).Len()
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
