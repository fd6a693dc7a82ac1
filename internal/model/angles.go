package model

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Default angles of the classic construction, in degrees.
const (
	DefaultA1 = 10.0
	DefaultA2 = 30.0
	DefaultB1 = 20.0
	DefaultB2 = 20.0
)

// AngleSet is the set of four known angles defining the construction.
//
// All angles are stored in degrees. Use the Rad* accessors to obtain radians
// for trigonometric computations. An AngleSet is a plain value and is never
// mutated after construction, so it can be shared between goroutines.
//
// Example:
//
//	set := NewAngleSet(10, 30, 20, 20)
//	fmt.Println(set.RadA1()) // 0.17453292519943295
type AngleSet struct {
	// A1 is the angle BAM at vertex A, between the baseline and the cevian AM.
	A1 float64 `json:"a1" yaml:"a1"`

	// A2 is the angle MAC at vertex A, between the cevian AM and the side AC.
	A2 float64 `json:"a2" yaml:"a2"`

	// B1 is the angle ABM at vertex B, between the baseline and the cevian BM.
	B1 float64 `json:"b1" yaml:"b1"`

	// B2 is the angle MBC at vertex B, between the cevian BM and the side BC.
	B2 float64 `json:"b2" yaml:"b2"`
}

// NewAngleSet creates an AngleSet from four angles given in degrees.
func NewAngleSet(a1, a2, b1, b2 float64) AngleSet {
	return AngleSet{A1: a1, A2: a2, B1: b1, B2: b2}
}

// DefaultAngleSet returns the angle set (10°, 30°, 20°, 20°).
func DefaultAngleSet() AngleSet {
	return NewAngleSet(DefaultA1, DefaultA2, DefaultB1, DefaultB2)
}

// Sum returns a1+a2+b1+b2 in degrees.
func (s AngleSet) Sum() float64 {
	return s.A1 + s.A2 + s.B1 + s.B2
}

// Residual returns the angle at C, 180° minus the sum of the four angles.
func (s AngleSet) Residual() float64 {
	return 180 - s.Sum()
}

// Mirror returns the set reflected across the perpendicular bisector of AB,
// which exchanges the roles of A and B.
func (s AngleSet) Mirror() AngleSet {
	return NewAngleSet(s.B1, s.B2, s.A1, s.A2)
}

// RadA1, RadA2, RadB1 and RadB2 return the angles in radians.
func (s AngleSet) RadA1() float64 { return DegToRad(s.A1) }
func (s AngleSet) RadA2() float64 { return DegToRad(s.A2) }
func (s AngleSet) RadB1() float64 { return DegToRad(s.B1) }
func (s AngleSet) RadB2() float64 { return DegToRad(s.B2) }

// Validate checks that every angle lies strictly between 0° and 180° and
// that the four angles leave a strictly positive angle at C.
func (s AngleSet) Validate() error {
	named := []struct {
		name  string
		value float64
	}{
		{"a1", s.A1}, {"a2", s.A2}, {"b1", s.B1}, {"b2", s.B2},
	}
	for _, a := range named {
		if math.IsNaN(a.value) || math.IsInf(a.value, 0) {
			return fmt.Errorf("angle %s is not a finite number", a.name)
		}
		if a.value <= 0 || a.value >= 180 {
			return fmt.Errorf("angle %s = %g must be in (0, 180)", a.name, a.value)
		}
	}
	if sum := s.Sum(); sum >= 180 {
		return fmt.Errorf("angle sum a1+a2+b1+b2 = %g must be less than 180", sum)
	}
	return nil
}

// String formats the set as "(a1=10°, a2=30°, b1=20°, b2=20°)".
func (s AngleSet) String() string {
	return fmt.Sprintf("(a1=%s°, a2=%s°, b1=%s°, b2=%s°)",
		formatAngle(s.A1), formatAngle(s.A2), formatAngle(s.B1), formatAngle(s.B2))
}

// Format replaces the placeholders {a1}, {a2}, {b1} and {b2} in format with
// the angle values.
func (s AngleSet) Format(format string) string {
	r := strings.NewReplacer(
		"{a1}", formatAngle(s.A1),
		"{a2}", formatAngle(s.A2),
		"{b1}", formatAngle(s.B1),
		"{b2}", formatAngle(s.B2),
	)
	return r.Replace(format)
}

// ParseAngleSet parses four angles separated by commas and/or whitespace,
// for example "10, 30, 20, 20" or "10 30 20 20".
func ParseAngleSet(text string) (AngleSet, error) {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == ';' || r == ' ' || r == '\t'
	})
	if len(fields) != 4 {
		return AngleSet{}, fmt.Errorf("expected 4 angles, got %d", len(fields))
	}

	var values [4]float64
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return AngleSet{}, fmt.Errorf("invalid angle %q: %w", f, err)
		}
		values[i] = v
	}

	return NewAngleSet(values[0], values[1], values[2], values[3]), nil
}

// DegToRad converts degrees to radians.
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// RadToDeg converts radians to degrees.
func RadToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}

// formatAngle prints whole angles without a fractional part.
func formatAngle(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
