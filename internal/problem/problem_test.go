package problem

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/handiism/triangle-solver/internal/model"
	"github.com/handiism/triangle-solver/internal/problem/dto"
)

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Format
	}{
		{"json array", `[{"a1": 10}]`, FormatJSON},
		{"json object", "  \n{\"problems\": []}", FormatJSON},
		{"yaml list", "# comment\n- a1: 10\n  a2: 30\n", FormatYAML},
		{"yaml object", "problems:\n  - a1: 10\n", FormatYAML},
		{"text", "# header\n10 30 20 20\n", FormatText},
		{"negative text", "-10 30 20 20\n", FormatText},
		{"empty", "", FormatText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectFormat([]byte(tt.input)); got != tt.want {
				t.Errorf("DetectFormat() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParser_Text(t *testing.T) {
	input := `# a1 a2 b1 b2
10 30 20 20

15, 25, 35, 45
  # indented comment
1.5;2.5;3.5;4.5
`
	problems, err := NewParser().Parse([]byte(input))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	want := []model.AngleSet{
		model.NewAngleSet(10, 30, 20, 20),
		model.NewAngleSet(15, 25, 35, 45),
		model.NewAngleSet(1.5, 2.5, 3.5, 4.5),
	}
	if len(problems) != len(want) {
		t.Fatalf("got %d problems, want %d", len(problems), len(want))
	}
	for i, p := range problems {
		if p.Angles != want[i] {
			t.Errorf("problem %d angles = %v, want %v", i, p.Angles, want[i])
		}
		if p.Index != i+1 {
			t.Errorf("problem %d index = %d", i, p.Index)
		}
	}
	if problems[1].Name != "problem 2" {
		t.Errorf("default name = %q, want %q", problems[1].Name, "problem 2")
	}
}

func TestParser_TextBadLine(t *testing.T) {
	_, err := NewParser().Parse([]byte("10 30 20 20\n\n10 30 oops 20\n"))
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "line 3") {
		t.Errorf("error %q should name line 3", err)
	}
}

func TestParser_JSON(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantCount int
		wantName  string
		wantErr   bool
	}{
		{
			name:      "array",
			input:     `[{"name": "classic", "a1": 10, "a2": 30, "b1": 20, "b2": 20}, {"a1": 1, "a2": 2, "b1": 3, "b2": 4}]`,
			wantCount: 2,
			wantName:  "classic",
		},
		{
			name:      "object",
			input:     `{"problems": [{"name": "only", "a1": 10, "a2": 30, "b1": 20, "b2": 20}]}`,
			wantCount: 1,
			wantName:  "only",
		},
		{
			name:    "missing angle",
			input:   `[{"a1": 10, "a2": 30, "b2": 20}]`,
			wantErr: true,
		},
		{
			name:    "malformed",
			input:   `[{"a1": 10,`,
			wantErr: true,
		},
		{
			name:    "empty array",
			input:   `[]`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			problems, err := NewParser().Parse([]byte(tt.input))
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error but got %d problems", len(problems))
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(problems) != tt.wantCount {
				t.Fatalf("got %d problems, want %d", len(problems), tt.wantCount)
			}
			if problems[0].Name != tt.wantName {
				t.Errorf("name = %q, want %q", problems[0].Name, tt.wantName)
			}
			if problems[0].Angles != model.DefaultAngleSet() {
				t.Errorf("angles = %v", problems[0].Angles)
			}
		})
	}
}

func TestParser_YAML(t *testing.T) {
	inputs := map[string]string{
		"list": `
- name: classic
  a1: 10
  a2: 30
  b1: 20
  b2: 20
- {a1: 1, a2: 2, b1: 3, b2: 4}
`,
		"object": `
problems:
  - name: classic
    a1: 10
    a2: 30
    b1: 20
    b2: 20
  - {a1: 1, a2: 2, b1: 3, b2: 4}
`,
	}

	for name, input := range inputs {
		t.Run(name, func(t *testing.T) {
			problems, err := NewParser().Parse([]byte(input))
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if len(problems) != 2 {
				t.Fatalf("got %d problems, want 2", len(problems))
			}
			if problems[0].Name != "classic" || problems[0].Angles != model.DefaultAngleSet() {
				t.Errorf("first problem = %+v", problems[0])
			}
			if problems[1].Angles != model.NewAngleSet(1, 2, 3, 4) || problems[1].Index != 2 {
				t.Errorf("second problem = %+v", problems[1])
			}
		})
	}
}

func TestParser_Empty(t *testing.T) {
	for _, input := range []string{"", "# nothing\n\n"} {
		if _, err := NewParser().Parse([]byte(input)); !errors.Is(err, ErrNoProblems) {
			t.Errorf("Parse(%q) error = %v, want ErrNoProblems", input, err)
		}
	}
}

func TestParser_ParseAsForcesFormat(t *testing.T) {
	// a text line parsed as JSON fails instead of being detected
	if _, err := NewParser().ParseAs([]byte("10 30 20 20"), FormatJSON); err == nil {
		t.Error("expected JSON error")
	}

	f, err := ParseFormat("YML")
	if err != nil || f != FormatYAML {
		t.Errorf("ParseFormat(YML) = %v, %v", f, err)
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("expected error for xml")
	}
}

func TestNewJSONReport(t *testing.T) {
	x := 140.0
	results := []dto.JSONResult{
		{Index: 1, Name: "ok", Angles: model.DefaultAngleSet(), X: &x},
		{Index: 2, Name: "bad", Error: "solve: degenerate input angle"},
	}
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.FixedZone("X", 3600))

	report := dto.NewJSONReport(results, now)
	if report.Total != 2 || report.Solved != 1 || report.Failed != 1 {
		t.Errorf("counts = %d/%d/%d", report.Total, report.Solved, report.Failed)
	}
	if report.GeneratedAt.Location() != time.UTC {
		t.Error("GeneratedAt should be UTC")
	}
}
