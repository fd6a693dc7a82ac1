package solver

import (
	"math"

	"github.com/handiism/triangle-solver/internal/model"
)

// minSine is the smallest sine magnitude accepted in a denominator.
// sin(π) evaluates to about 1.2e-16 in floating point, so an exact zero test
// would never fire for 180°.
const minSine = 1e-9

// Solution is the result of solving an angle set, with the intermediate
// values of the computation.
type Solution struct {
	// X is the unknown angle BMC in degrees.
	X float64

	// Z is the ratio (sin a1 / sin b1)·(sin b2 / sin a2).
	Z float64

	// V is the angle at C in radians.
	V float64

	// Gamma2 is the angle BCM in radians.
	Gamma2 float64
}

// Gamma2Deg returns Gamma2 in degrees.
func (s Solution) Gamma2Deg() float64 {
	return model.RadToDeg(s.Gamma2)
}

// Solve returns the unknown angle x, in degrees, for the given angle set.
func Solve(set model.AngleSet) (float64, error) {
	sol, err := Analyze(set)
	if err != nil {
		return 0, err
	}
	return sol.X, nil
}

// Analyze solves the angle set and returns the intermediate values.
//
// The cevians split ABC into triangles sharing M. Applying the law of sines
// around M gives sin γ1 / sin γ2 = z with γ1 + γ2 = v, which rearranges to
// tan γ2 = z·sin v / (1 + z·cos v). atan2 keeps γ2 in the right quadrant when
// 1 + z·cos v is negative.
func Analyze(set model.AngleSet) (Solution, error) {
	const op = "solve"
	if err := checkFinite(op, set); err != nil {
		return Solution{}, err
	}

	a1, a2 := set.RadA1(), set.RadA2()
	b1, b2 := set.RadB1(), set.RadB2()

	sinA2, sinB1 := math.Sin(a2), math.Sin(b1)
	if err := checkSine(op, "sin(a2)", sinA2); err != nil {
		return Solution{}, err
	}
	if err := checkSine(op, "sin(b1)", sinB1); err != nil {
		return Solution{}, err
	}

	z := math.Sin(a1) / sinB1 * math.Sin(b2) / sinA2
	v := residual(a1, a2, b1, b2)
	c1 := z * math.Sin(v)
	c2 := z * math.Cos(v)

	gamma2 := math.Atan2(c1, 1+c2)
	x := math.Pi - (b2 + gamma2)

	return Solution{
		X:      model.RadToDeg(x),
		Z:      z,
		V:      v,
		Gamma2: gamma2,
	}, nil
}

// DerivePoints returns the vertices of the construction with a unit baseline AB.
func DerivePoints(set model.AngleSet) (model.Construction, error) {
	return DerivePointsScaled(set, 1)
}

// DerivePointsScaled returns the vertices of the construction with the
// baseline AB of length ab. A sits at the origin and B on the positive x axis.
func DerivePointsScaled(set model.AngleSet, ab float64) (model.Construction, error) {
	const op = "derive points"
	if err := checkFinite(op, set); err != nil {
		return model.Construction{}, err
	}
	if math.IsNaN(ab) || math.IsInf(ab, 0) || ab <= 0 {
		return model.Construction{}, &DomainError{Op: op, Term: "AB", Value: ab}
	}

	a1, a2 := set.RadA1(), set.RadA2()
	b1, b2 := set.RadB1(), set.RadB2()

	a := a1 + a2
	b := b1 + b2
	v := residual(a1, a2, b1, b2)

	sinV := math.Sin(v)
	if err := checkSine(op, "sin(v)", sinV); err != nil {
		return model.Construction{}, err
	}
	sinAMB := math.Sin(math.Pi - (a1 + b1))
	if err := checkSine(op, "sin(π-(a1+b1))", sinAMB); err != nil {
		return model.Construction{}, err
	}

	// law of sines in ABC and in ABM
	ac := ab * math.Sin(b) / sinV
	am := ab * math.Sin(b1) / sinAMB

	return model.Construction{
		A: model.Point{X: 0, Y: 0},
		B: model.Point{X: ab, Y: 0},
		C: model.Polar(ac, a),
		M: model.Polar(am, a1),
	}, nil
}

func residual(a1, a2, b1, b2 float64) float64 {
	return math.Pi - (a1 + a2 + b1 + b2)
}

func checkFinite(op string, set model.AngleSet) error {
	named := []struct {
		term  string
		value float64
	}{
		{"a1", set.A1}, {"a2", set.A2}, {"b1", set.B1}, {"b2", set.B2},
	}
	for _, n := range named {
		if math.IsNaN(n.value) || math.IsInf(n.value, 0) {
			return &DomainError{Op: op, Term: n.term, Value: n.value}
		}
	}
	return nil
}

func checkSine(op, term string, value float64) error {
	if math.Abs(value) < minSine {
		return &DomainError{Op: op, Term: term, Value: value}
	}
	return nil
}
