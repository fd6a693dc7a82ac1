package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Problem is one angle set to solve, as read from a batch input.
type Problem struct {
	// Index is the 1-based position in the input.
	Index int

	// Name identifies the problem in reports. Defaults to "problem N".
	Name string

	// Angles is the set to solve.
	Angles AngleSet
}

// NewProblem creates a Problem, naming it after its index when name is empty.
func NewProblem(index int, name string, angles AngleSet) Problem {
	name = strings.TrimSpace(name)
	if name == "" {
		name = fmt.Sprintf("problem %d", index)
	}
	return Problem{Index: index, Name: name, Angles: angles}
}

// FileName expands a file name format. In addition to the AngleSet
// placeholders it supports {index} (zero-padded to 3 digits) and {name}.
func (p Problem) FileName(format string) string {
	index := strconv.Itoa(p.Index)
	if len(index) < 3 {
		index = strings.Repeat("0", 3-len(index)) + index
	}
	r := strings.NewReplacer("{index}", index, "{name}", p.Name)
	return p.Angles.Format(r.Replace(format))
}
