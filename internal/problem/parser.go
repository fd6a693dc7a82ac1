package problem

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/handiism/triangle-solver/internal/model"
	"github.com/handiism/triangle-solver/internal/problem/dto"
	"gopkg.in/yaml.v3"
)

// ErrNoProblems is returned when an input contains no problems.
var ErrNoProblems = errors.New("no problems found in input")

// Format is a batch input encoding.
type Format int

const (
	FormatAuto Format = iota
	FormatText
	FormatJSON
	FormatYAML
)

// ParseFormat converts "auto", "text", "json" or "yaml" to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "auto":
		return FormatAuto, nil
	case "text", "txt":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return FormatAuto, fmt.Errorf("unknown input format %q", name)
	}
}

// Parser converts batch input into problems.
//
// Example usage:
//
//	parser := NewParser()
//	problems, err := parser.Parse(data)
//
// Use ParseAs to force a format instead of detecting it.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse detects the input format and parses the problems.
func (p *Parser) Parse(data []byte) ([]model.Problem, error) {
	return p.ParseAs(data, FormatAuto)
}

// ParseAs parses data in the given format.
//
// Returns ErrNoProblems if the input holds no problems, or an error naming
// the offending line or problem.
func (p *Parser) ParseAs(data []byte, format Format) ([]model.Problem, error) {
	if format == FormatAuto {
		format = DetectFormat(data)
	}

	var (
		problems []model.Problem
		err      error
	)
	switch format {
	case FormatJSON:
		problems, err = p.parseJSON(data)
	case FormatYAML:
		problems, err = p.parseYAML(data)
	default:
		problems, err = p.parseText(data)
	}
	if err != nil {
		return nil, err
	}
	if len(problems) == 0 {
		return nil, ErrNoProblems
	}
	return problems, nil
}

// DetectFormat guesses the format from the first significant line: JSON if
// it opens an array or object, YAML if it is a list item or a key, text
// otherwise.
func DetectFormat(data []byte) Format {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && (trimmed[0] == '[' || trimmed[0] == '{') {
		return FormatJSON
	}

	scanner := bufio.NewScanner(bytes.NewReader(trimmed))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasPrefix(line, "-") && !startsWithNumber(line) {
			return FormatYAML
		}
		if strings.Contains(line, ":") {
			return FormatYAML
		}
		return FormatText
	}
	return FormatText
}

func (p *Parser) parseText(data []byte) ([]model.Problem, error) {
	var problems []model.Problem

	scanner := bufio.NewScanner(bytes.NewReader(data))
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		angles, err := model.ParseAngleSet(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		problems = append(problems, model.NewProblem(len(problems)+1, "", angles))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return problems, nil
}

func (p *Parser) parseJSON(data []byte) ([]model.Problem, error) {
	trimmed := bytes.TrimSpace(data)

	var items []dto.JSONProblem
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var list dto.JSONProblemList
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return nil, fmt.Errorf("failed to parse problem JSON: %w", err)
		}
		items = list.Problems
	} else if err := json.Unmarshal(trimmed, &items); err != nil {
		return nil, fmt.Errorf("failed to parse problem JSON: %w", err)
	}

	return toProblems(items)
}

func (p *Parser) parseYAML(data []byte) ([]model.Problem, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("failed to parse problem YAML: %w", err)
	}

	var items []dto.JSONProblem
	if len(node.Content) > 0 && node.Content[0].Kind == yaml.MappingNode {
		var list dto.JSONProblemList
		if err := node.Decode(&list); err != nil {
			return nil, fmt.Errorf("failed to parse problem YAML: %w", err)
		}
		items = list.Problems
	} else if err := node.Decode(&items); err != nil {
		return nil, fmt.Errorf("failed to parse problem YAML: %w", err)
	}

	return toProblems(items)
}

func toProblems(items []dto.JSONProblem) ([]model.Problem, error) {
	problems := make([]model.Problem, 0, len(items))
	for i := range items {
		p, err := items[i].ToProblem(i + 1)
		if err != nil {
			return nil, err
		}
		problems = append(problems, p)
	}
	return problems, nil
}

func startsWithNumber(line string) bool {
	rest := strings.TrimPrefix(line, "-")
	return rest != "" && (rest[0] == '.' || (rest[0] >= '0' && rest[0] <= '9'))
}
