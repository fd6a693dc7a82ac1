package dto

import (
	"fmt"

	"github.com/handiism/triangle-solver/internal/model"
)

// JSONProblem represents one problem in a JSON or YAML batch input.
type JSONProblem struct {
	Name string   `json:"name" yaml:"name"`
	A1   *float64 `json:"a1" yaml:"a1"`
	A2   *float64 `json:"a2" yaml:"a2"`
	B1   *float64 `json:"b1" yaml:"b1"`
	B2   *float64 `json:"b2" yaml:"b2"`
}

// JSONProblemList is the object form of a batch input.
type JSONProblemList struct {
	Problems []JSONProblem `json:"problems" yaml:"problems"`
}

// ToProblem converts JSONProblem to a model.Problem. Every angle must be present.
func (jp *JSONProblem) ToProblem(index int) (model.Problem, error) {
	missing := ""
	switch {
	case jp.A1 == nil:
		missing = "a1"
	case jp.A2 == nil:
		missing = "a2"
	case jp.B1 == nil:
		missing = "b1"
	case jp.B2 == nil:
		missing = "b2"
	}
	if missing != "" {
		return model.Problem{}, fmt.Errorf("problem %d: missing angle %s", index, missing)
	}

	angles := model.NewAngleSet(*jp.A1, *jp.A2, *jp.B1, *jp.B2)
	return model.NewProblem(index, jp.Name, angles), nil
}
