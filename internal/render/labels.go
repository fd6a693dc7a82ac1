package render

import (
	"math"

	"github.com/handiism/triangle-solver/internal/model"
)

// LabelKind classifies figure labels.
type LabelKind int

const (
	LabelVertex LabelKind = iota
	LabelAngle
	LabelSegment
	LabelUnknown
)

// Label is a piece of text anchored at a point in construction coordinates.
type Label struct {
	Text string
	Pos  model.Point
	Kind LabelKind
}

// Offsets relative to the baseline length AB.
const (
	vertexLabelOffset  = 0.06
	segmentLabelOffset = 0.035
	minAngleRadius     = 0.08
	maxAngleRadius     = 0.3
	angleRadiusFactor  = 0.03
)

// VertexLabels returns the labels A, B, C and M. The outer vertices are
// pushed away from the centroid and M is placed inside the triangle AMC.
func VertexLabels(c model.Construction) []Label {
	ab := model.Distance(c.A, c.B)
	centroid := c.Centroid()

	labels := make([]Label, 0, 4)
	for _, v := range []struct {
		text string
		p    model.Point
	}{{"A", c.A}, {"B", c.B}, {"C", c.C}} {
		dir := v.p.Sub(centroid).Unit()
		labels = append(labels, Label{Text: v.text, Pos: v.p.Add(dir.Scale(vertexLabelOffset * ab)), Kind: LabelVertex})
	}

	labels = append(labels, Label{Text: "M", Pos: angleAnchor(c.M, c.A, c.C, ab), Kind: LabelVertex})
	return labels
}

// Annotations returns the verbose labels: the six known or intermediate
// angles, the unknown x and the three cevian segments.
func Annotations(c model.Construction) []Label {
	ab := model.Distance(c.A, c.B)

	angles := []struct {
		text         string
		vertex, p, q model.Point
		kind         LabelKind
	}{
		{"a1", c.A, c.B, c.M, LabelAngle},
		{"a2", c.A, c.M, c.C, LabelAngle},
		{"b1", c.B, c.A, c.M, LabelAngle},
		{"b2", c.B, c.M, c.C, LabelAngle},
		{"g1", c.C, c.A, c.M, LabelAngle},
		{"g2", c.C, c.M, c.B, LabelAngle},
		{"x", c.M, c.B, c.C, LabelUnknown},
	}

	labels := make([]Label, 0, len(angles)+3)
	for _, a := range angles {
		labels = append(labels, Label{
			Text: a.text,
			Pos:  angleAnchor(a.vertex, a.p, a.q, ab),
			Kind: a.kind,
		})
	}

	centroid := c.Centroid()
	for _, s := range []struct {
		text string
		p, q model.Point
	}{{"s1", c.A, c.M}, {"s2", c.B, c.M}, {"s3", c.C, c.M}} {
		labels = append(labels, Label{
			Text: s.text,
			Pos:  segmentAnchor(s.p, s.q, centroid, ab),
			Kind: LabelSegment,
		})
	}
	return labels
}

// angleAnchor places a label on the bisector of the angle p-vertex-q. Narrow
// angles push the label further out so it fits between the rays. The label
// stays within 60% of the bisector's run to the side pq, so it always lies
// inside the triangle vertex-p-q.
func angleAnchor(vertex, p, q model.Point, ab float64) model.Point {
	u := p.Sub(vertex)
	w := q.Sub(vertex)
	theta := math.Abs(math.Atan2(u.X*w.Y-u.Y*w.X, dot(u, w)))

	r := minAngleRadius
	if half := math.Sin(theta / 2); half > 0 {
		r = angleRadiusFactor / half
	}
	r = math.Max(minAngleRadius, math.Min(maxAngleRadius, r)) * ab

	// angle bisector length
	if lu, lw := u.Len(), w.Len(); lu+lw > 0 {
		run := 2 * lu * lw * math.Cos(theta/2) / (lu + lw)
		r = math.Min(r, 0.6*run)
	}

	return vertex.Add(bisector(vertex, p, q).Scale(r))
}

// segmentAnchor places a label next to the midpoint of pq, on the side away
// from ref.
func segmentAnchor(p, q, ref model.Point, ab float64) model.Point {
	mid := p.Add(q).Scale(0.5)
	d := q.Sub(p).Unit()
	normal := model.Point{X: -d.Y, Y: d.X}
	if dot(normal, ref.Sub(mid)) > 0 {
		normal = normal.Scale(-1)
	}
	return mid.Add(normal.Scale(segmentLabelOffset * ab))
}

// bisector returns the unit direction halving the angle p-vertex-q.
func bisector(vertex, p, q model.Point) model.Point {
	b := p.Sub(vertex).Unit().Add(q.Sub(vertex).Unit())
	if b.Len() < 1e-12 {
		// straight angle: use the left normal of vertex→p
		u := p.Sub(vertex).Unit()
		return model.Point{X: -u.Y, Y: u.X}
	}
	return b.Unit()
}

func dot(p, q model.Point) float64 {
	return p.X*q.X + p.Y*q.Y
}
