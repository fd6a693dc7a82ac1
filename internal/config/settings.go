package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/handiism/triangle-solver/internal/model"
	"github.com/handiism/triangle-solver/internal/problem"
	"github.com/handiism/triangle-solver/internal/render"
	"gopkg.in/yaml.v3"
)

// Settings holds all configuration options.
type Settings struct {
	// Problem
	A1 float64 `json:"a1" yaml:"a1"`
	A2 float64 `json:"a2" yaml:"a2"`
	B1 float64 `json:"b1" yaml:"b1"`
	B2 float64 `json:"b2" yaml:"b2"`

	// Figure settings
	FigurePath        string  `json:"figure_path" yaml:"figure_path"`
	FigureWidth       int     `json:"figure_width" yaml:"figure_width"`
	FigureHeight      int     `json:"figure_height" yaml:"figure_height"`
	FigureMargin      float64 `json:"figure_margin" yaml:"figure_margin"`
	FigureSupersample int     `json:"figure_supersample" yaml:"figure_supersample"`
	LineWidth         float64 `json:"line_width" yaml:"line_width"`
	Annotate          bool    `json:"annotate" yaml:"annotate"`
	ShowSolution      bool    `json:"show_solution" yaml:"show_solution"`
	JPEGQuality       int     `json:"jpeg_quality" yaml:"jpeg_quality"`

	// Batch settings
	InputFormat          string `json:"input_format" yaml:"input_format"`
	MaxConcurrentSolves  int    `json:"max_concurrent_solves" yaml:"max_concurrent_solves"`
	OutputDir            string `json:"output_dir" yaml:"output_dir"`
	RenderBatchFigures   bool   `json:"render_batch_figures" yaml:"render_batch_figures"`
	FigureFileNameFormat string `json:"figure_file_name_format" yaml:"figure_file_name_format"`
	ReportPath           string `json:"report_path" yaml:"report_path"`
	StopOnError          bool   `json:"stop_on_error" yaml:"stop_on_error"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	opts := render.DefaultOptions()
	return &Settings{
		A1: model.DefaultA1,
		A2: model.DefaultA2,
		B1: model.DefaultB1,
		B2: model.DefaultB2,

		FigurePath:        "",
		FigureWidth:       opts.Width,
		FigureHeight:      opts.Height,
		FigureMargin:      opts.Margin,
		FigureSupersample: opts.Supersample,
		LineWidth:         opts.LineWidth,
		Annotate:          false,
		ShowSolution:      true,
		JPEGQuality:       90,

		InputFormat:          "auto",
		MaxConcurrentSolves:  4,
		OutputDir:            "figures",
		RenderBatchFigures:   false,
		FigureFileNameFormat: "triangle-{index}-{a1}-{a2}-{b1}-{b2}.png",
		ReportPath:           "",
		StopOnError:          false,
	}
}

// Load reads settings from a JSON or YAML file.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if isYAML(path) {
		err = yaml.Unmarshal(data, settings)
	} else {
		err = json.Unmarshal(data, settings)
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return settings, nil
}

// Save writes settings to a JSON or YAML file.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	var (
		data []byte
		err  error
	)
	if isYAML(path) {
		data, err = yaml.Marshal(s)
	} else {
		data, err = json.MarshalIndent(s, "", "  ")
	}
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Validate checks settings that would otherwise fail deep inside a run.
func (s *Settings) Validate() error {
	if s.MaxConcurrentSolves < 1 {
		return fmt.Errorf("max_concurrent_solves must be at least 1, got %d", s.MaxConcurrentSolves)
	}
	if s.JPEGQuality < 1 || s.JPEGQuality > 100 {
		return fmt.Errorf("jpeg_quality must be in 1..100, got %d", s.JPEGQuality)
	}
	if _, err := problem.ParseFormat(s.InputFormat); err != nil {
		return err
	}
	if err := s.ToRenderOptions().Validate(); err != nil {
		return err
	}
	return nil
}

// ToAngleSet converts settings to the configured AngleSet.
func (s *Settings) ToAngleSet() model.AngleSet {
	return model.NewAngleSet(s.A1, s.A2, s.B1, s.B2)
}

// SetAngleSet stores set as the configured problem.
func (s *Settings) SetAngleSet(set model.AngleSet) {
	s.A1, s.A2, s.B1, s.B2 = set.A1, set.A2, set.B1, set.B2
}

// ToRenderOptions converts settings to render.Options.
func (s *Settings) ToRenderOptions() render.Options {
	opts := render.DefaultOptions()
	opts.Width = s.FigureWidth
	opts.Height = s.FigureHeight
	opts.Margin = s.FigureMargin
	opts.Supersample = s.FigureSupersample
	opts.LineWidth = s.LineWidth
	opts.Annotate = s.Annotate
	opts.JPEGQuality = s.JPEGQuality
	return opts
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
