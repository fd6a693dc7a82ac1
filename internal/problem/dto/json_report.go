package dto

import (
	"time"

	"github.com/handiism/triangle-solver/internal/model"
)

// JSONReport is the report written after a batch run.
type JSONReport struct {
	GeneratedAt time.Time    `json:"generated_at"`
	Total       int          `json:"total"`
	Solved      int          `json:"solved"`
	Failed      int          `json:"failed"`
	Results     []JSONResult `json:"results"`
}

// JSONResult is the outcome of one problem.
type JSONResult struct {
	Index  int                 `json:"index"`
	Name   string              `json:"name"`
	Angles model.AngleSet      `json:"angles"`
	X      *float64            `json:"x,omitempty"`
	Points *model.Construction `json:"points,omitempty"`
	Figure string              `json:"figure,omitempty"`
	Error  string              `json:"error,omitempty"`
}

// NewJSONReport builds a report from results, counting failures.
func NewJSONReport(results []JSONResult, now time.Time) *JSONReport {
	report := &JSONReport{
		GeneratedAt: now.UTC(),
		Total:       len(results),
		Results:     results,
	}
	for _, r := range results {
		if r.Error != "" {
			report.Failed++
		} else {
			report.Solved++
		}
	}
	return report
}
