package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/handiism/triangle-solver/internal/batch"
	"github.com/handiism/triangle-solver/internal/config"
	"github.com/handiism/triangle-solver/internal/problem"
	"github.com/handiism/triangle-solver/internal/render"
	"github.com/handiism/triangle-solver/internal/solver"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Command line flags
	var (
		a1Flag       = flag.Float64("a1", 0, "Angle a1 (BAM) in degrees (default 10)")
		a2Flag       = flag.Float64("a2", 0, "Angle a2 (MAC) in degrees (default 30)")
		b1Flag       = flag.Float64("b1", 0, "Angle b1 (ABM) in degrees (default 20)")
		b2Flag       = flag.Float64("b2", 0, "Angle b2 (MBC) in degrees (default 20)")
		configFlag   = flag.String("config", "", "Path to config file (JSON or YAML)")
		plotFlag     = flag.String("plot", "", "Save a figure of the construction to this .png or .jpg file")
		annotateFlag = flag.Bool("annotate", false, "Name the angles and segments in the figure")
		widthFlag    = flag.Int("width", 0, "Figure width in pixels")
		heightFlag   = flag.Int("height", 0, "Figure height in pixels")
		pointsFlag   = flag.Bool("points", false, "Print the construction points")
		batchFlag    = flag.String("batch", "", "Solve every problem in this file (text, JSON or YAML; - for stdin)")
		formatFlag   = flag.String("format", "", "Batch input format: auto, text, json or yaml")
		outputFlag   = flag.String("output", "", "Directory for batch figures (enables batch figures)")
		reportFlag   = flag.String("report", "", "Write a JSON report of the batch run to this file")
		verboseFlag  = flag.Bool("verbose", false, "Show verbose output")
	)

	flag.Parse()

	// Load config
	settings := config.DefaultSettings()
	if *configFlag != "" {
		var err error
		settings, err = config.Load(*configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			return 1
		}
	}

	// Apply flags
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "a1":
			settings.A1 = *a1Flag
		case "a2":
			settings.A2 = *a2Flag
		case "b1":
			settings.B1 = *b1Flag
		case "b2":
			settings.B2 = *b2Flag
		}
	})
	if *plotFlag != "" {
		settings.FigurePath = *plotFlag
	}
	if *annotateFlag {
		settings.Annotate = true
	}
	if *widthFlag > 0 {
		settings.FigureWidth = *widthFlag
	}
	if *heightFlag > 0 {
		settings.FigureHeight = *heightFlag
	}
	if *outputFlag != "" {
		settings.OutputDir = *outputFlag
		settings.RenderBatchFigures = true
	}
	if *reportFlag != "" {
		settings.ReportPath = *reportFlag
	}
	if *formatFlag != "" {
		if _, err := problem.ParseFormat(*formatFlag); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		settings.InputFormat = *formatFlag
	}

	// Handle interrupts
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Println("\nInterrupted, cancelling...")
		cancel()
	}()

	if *batchFlag != "" {
		return runBatch(ctx, settings, *batchFlag, *verboseFlag)
	}
	return runSingle(ctx, settings, *pointsFlag)
}

func runSingle(ctx context.Context, settings *config.Settings, printPoints bool) int {
	set := settings.ToAngleSet()
	if err := set.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid angles %s: %v\n", set, err)
		return 1
	}

	x, err := solver.Solve(set)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error solving %s: %v\n", set, err)
		return 1
	}
	fmt.Printf("x = %.10g°\n", x)

	if !printPoints && settings.FigurePath == "" {
		return 0
	}

	c, err := solver.DerivePoints(set)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error deriving points for %s: %v\n", set, err)
		return 1
	}

	if printPoints {
		fmt.Printf("A = %s\nB = %s\nC = %s\nM = %s\n", c.A, c.B, c.C, c.M)
	}

	if settings.FigurePath != "" {
		var solution *float64
		if settings.ShowSolution {
			solution = &x
		}
		renderer := render.NewRenderer(settings.ToRenderOptions())
		if err := renderer.Save(ctx, c, solution, settings.FigurePath); err != nil {
			if ctx.Err() != nil {
				fmt.Println("\nCancelled.")
				return 130
			}
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		fmt.Printf("Saved figure to %s\n", settings.FigurePath)
	}
	return 0
}

func runBatch(ctx context.Context, settings *config.Settings, inputPath string, verbose bool) int {
	input, err := readInput(inputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", inputPath, err)
		return 1
	}

	// Create manager with progress callback
	manager := batch.NewManager(settings, func(event batch.ProgressEvent) {
		if event.Level == batch.LevelVerbose && !verbose {
			return
		}

		prefix := ""
		switch event.Level {
		case batch.LevelError:
			prefix = "✗ "
		case batch.LevelWarning:
			prefix = "! "
		case batch.LevelSuccess:
			prefix = "✓ "
		case batch.LevelInfo:
			prefix = "› "
		default:
			prefix = "  "
		}

		fmt.Println(prefix + event.Message)
	})

	if err := manager.Initialize(ctx, input); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing: %v\n", err)
		return 1
	}

	if err := manager.Run(ctx); err != nil {
		if ctx.Err() != nil {
			fmt.Println("\nBatch cancelled.")
			return 130
		}
		fmt.Fprintf(os.Stderr, "Error during batch: %v\n", err)
		return 1
	}

	if settings.ReportPath != "" {
		if err := manager.WriteReport(ctx, settings.ReportPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
	}

	for _, r := range manager.Results() {
		if r.Solved() {
			fmt.Printf("%-12s %s  x = %.6f°\n", r.Problem.Name, r.Problem.Angles, r.X)
		}
	}

	if _, failed := manager.GetProgress(); failed > 0 {
		return 1
	}
	return 0
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}
