package batch

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/handiism/triangle-solver/internal/config"
	ioutils "github.com/handiism/triangle-solver/internal/io"
	"github.com/handiism/triangle-solver/internal/model"
	"github.com/handiism/triangle-solver/internal/problem"
	"github.com/handiism/triangle-solver/internal/problem/dto"
	"github.com/handiism/triangle-solver/internal/render"
	"github.com/handiism/triangle-solver/internal/solver"
	"golang.org/x/sync/errgroup"
)

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// ProgressEvent represents a batch progress update.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel
}

// Result is the outcome of one problem.
type Result struct {
	Problem      model.Problem
	X            float64
	Construction model.Construction
	FigurePath   string
	Err          error
}

// Solved reports whether the problem was solved.
func (r Result) Solved() bool {
	return r.Err == nil
}

// Manager coordinates batch solving.
type Manager struct {
	settings *config.Settings
	parser   *problem.Parser
	renderer *render.Renderer

	problems []model.Problem
	results  []Result
	solved   int32
	failed   int32

	now        func() time.Time
	onProgress func(ProgressEvent)
	mu         sync.RWMutex
}

// NewManager creates a new batch Manager.
func NewManager(settings *config.Settings, onProgress func(ProgressEvent)) *Manager {
	return &Manager{
		settings:   settings,
		parser:     problem.NewParser(),
		renderer:   render.NewRenderer(settings.ToRenderOptions()),
		now:        time.Now,
		onProgress: onProgress,
	}
}

// Initialize parses the problems from input in settings.InputFormat,
// detecting the format when it is "auto".
func (m *Manager) Initialize(ctx context.Context, input []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := m.settings.Validate(); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}

	format, err := problem.ParseFormat(m.settings.InputFormat)
	if err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}
	problems, err := m.parser.ParseAs(input, format)
	if err != nil {
		return err
	}

	m.mu.Lock()
	m.problems = problems
	m.results = make([]Result, len(problems))
	m.mu.Unlock()
	atomic.StoreInt32(&m.solved, 0)
	atomic.StoreInt32(&m.failed, 0)

	m.progress(ProgressEvent{Message: fmt.Sprintf("Loaded %d problem(s)", len(problems)), Level: LevelInfo})
	return nil
}

// Run solves all initialized problems.
//
// A failing problem only aborts the run when settings.StopOnError is set.
// Cancelling ctx stops the remaining problems and returns the context error.
func (m *Manager) Run(ctx context.Context) error {
	m.mu.RLock()
	problems := m.problems
	m.mu.RUnlock()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(m.settings.MaxConcurrentSolves)

	for i, p := range problems {
		if gctx.Err() != nil {
			break
		}
		i, p := i, p
		g.Go(func() error {
			result := m.solveProblem(gctx, p)

			m.mu.Lock()
			m.results[i] = result
			m.mu.Unlock()

			if result.Err != nil {
				atomic.AddInt32(&m.failed, 1)
				m.progress(ProgressEvent{Message: fmt.Sprintf("%s %s: %v", p.Name, p.Angles, result.Err), Level: LevelError})
				if m.settings.StopOnError {
					return fmt.Errorf("%s: %w", p.Name, result.Err)
				}
				return nil
			}

			atomic.AddInt32(&m.solved, 1)
			m.progress(ProgressEvent{Message: fmt.Sprintf("%s %s: x = %.4f° %s", p.Name, p.Angles, result.X, result.Construction), Level: LevelVerbose})
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	solved, failed := m.GetProgress()
	if failed == 0 {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Solved %d problem(s)", solved), Level: LevelSuccess})
	} else {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Solved %d problem(s), %d failed", solved, failed), Level: LevelWarning})
	}
	return nil
}

// GetProgress returns the number of problems solved and failed so far.
func (m *Manager) GetProgress() (solved, failed int32) {
	return atomic.LoadInt32(&m.solved), atomic.LoadInt32(&m.failed)
}

// Total returns the number of initialized problems.
func (m *Manager) Total() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.problems)
}

// Results returns a copy of the results in input order.
func (m *Manager) Results() []Result {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Result, len(m.results))
	copy(out, m.results)
	return out
}

// Report builds the JSON report of the results so far.
func (m *Manager) Report() *dto.JSONReport {
	results := m.Results()
	items := make([]dto.JSONResult, 0, len(results))
	for _, r := range results {
		if r.Problem.Index == 0 {
			// never run
			continue
		}
		item := dto.JSONResult{
			Index:  r.Problem.Index,
			Name:   r.Problem.Name,
			Angles: r.Problem.Angles,
			Figure: r.FigurePath,
		}
		if r.Err != nil {
			item.Error = r.Err.Error()
		} else {
			x := r.X
			points := r.Construction
			item.X = &x
			item.Points = &points
		}
		items = append(items, item)
	}
	return dto.NewJSONReport(items, m.now())
}

// WriteReport writes the JSON report to path.
func (m *Manager) WriteReport(ctx context.Context, path string) error {
	data, err := json.MarshalIndent(m.Report(), "", "  ")
	if err != nil {
		return err
	}
	if err := ioutils.WriteFile(ctx, path, data); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	m.progress(ProgressEvent{Message: fmt.Sprintf("Wrote report %s", path), Level: LevelInfo})
	return nil
}

func (m *Manager) solveProblem(ctx context.Context, p model.Problem) Result {
	result := Result{Problem: p}

	if err := p.Angles.Validate(); err != nil {
		result.Err = err
		return result
	}

	x, err := solver.Solve(p.Angles)
	if err != nil {
		result.Err = err
		return result
	}
	result.X = x

	c, err := solver.DerivePoints(p.Angles)
	if err != nil {
		result.Err = err
		return result
	}
	result.Construction = c

	if m.settings.RenderBatchFigures {
		name := ioutils.SanitizeFileName(p.FileName(m.settings.FigureFileNameFormat))
		if filepath.Ext(name) == "" {
			name += ioutils.FormatPNG.Extension()
		}
		path := filepath.Join(m.settings.OutputDir, name)

		var solution *float64
		if m.settings.ShowSolution {
			solution = &x
		}
		if err := m.renderer.Save(ctx, c, solution, path); err != nil {
			// the angle is still valid without its figure
			m.progress(ProgressEvent{Message: fmt.Sprintf("Error rendering %s: %v", p.Name, err), Level: LevelWarning})
		} else {
			result.FigurePath = path
			m.progress(ProgressEvent{Message: fmt.Sprintf("Saved figure %s", path), Level: LevelVerbose})
		}
	}

	return result
}

func (m *Manager) progress(event ProgressEvent) {
	if m.onProgress != nil {
		m.onProgress(event)
	}
}
