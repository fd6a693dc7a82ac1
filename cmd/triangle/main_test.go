package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/handiism/triangle-solver/internal/config"
)

func TestRunSingle(t *testing.T) {
	settings := config.DefaultSettings()
	settings.FigurePath = filepath.Join(t.TempDir(), "triangle.png")

	if code := runSingle(context.Background(), settings, true); code != 0 {
		t.Fatalf("runSingle() = %d, want 0", code)
	}
	if _, err := os.Stat(settings.FigurePath); err != nil {
		t.Errorf("figure: %v", err)
	}
}

func TestRunSingle_ExitCodes(t *testing.T) {
	cancelled, cancel := context.WithCancel(context.Background())
	cancel()

	tests := []struct {
		name   string
		ctx    context.Context
		modify func(*config.Settings)
		want   int
	}{
		{"invalid angles", context.Background(), func(s *config.Settings) { s.A1 = 170 }, 1},
		{"interrupted save", cancelled, func(s *config.Settings) {}, 130},
		{"bad extension", context.Background(), func(s *config.Settings) { s.FigurePath += ".gif" }, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := config.DefaultSettings()
			settings.FigurePath = filepath.Join(t.TempDir(), "triangle.png")
			tt.modify(settings)
			if code := runSingle(tt.ctx, settings, false); code != tt.want {
				t.Errorf("runSingle() = %d, want %d", code, tt.want)
			}
		})
	}
}

func TestRunBatch_InputFormat(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "problems.txt")
	if err := os.WriteFile(input, []byte("- {a1: 10, a2: 30, b1: 20, b2: 20}\n"), 0644); err != nil {
		t.Fatal(err)
	}

	settings := config.DefaultSettings()
	settings.InputFormat = "yaml"
	settings.ReportPath = filepath.Join(dir, "report.json")
	if code := runBatch(context.Background(), settings, input, false); code != 0 {
		t.Fatalf("runBatch(yaml) = %d, want 0", code)
	}
	if _, err := os.Stat(settings.ReportPath); err != nil {
		t.Errorf("report: %v", err)
	}

	settings = config.DefaultSettings()
	settings.InputFormat = "text"
	if code := runBatch(context.Background(), settings, input, false); code != 1 {
		t.Errorf("runBatch(text) = %d, want 1", code)
	}
}
