// Package batch solves many angle sets in one run.
//
// # Manager
//
// The Manager coordinates the whole process:
//
//  1. Parse the input into problems
//  2. Solve every problem concurrently
//  3. Derive the construction points
//  4. Render one figure per problem (optional)
//  5. Write a JSON report (optional)
//
// # Basic Usage
//
//	manager := batch.NewManager(settings, func(event batch.ProgressEvent) {
//	    fmt.Println(event.Message)
//	})
//
//	if err := manager.Initialize(ctx, input); err != nil {
//	    log.Fatal(err)
//	}
//
//	if err := manager.Run(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
//	err := manager.WriteReport(ctx, "report.json")
//
// # Concurrency
//
// Problems are solved in parallel, at most settings.MaxConcurrentSolves at
// a time. A problem that fails is reported and recorded in its Result; the
// others carry on unless settings.StopOnError is set.
//
// # Progress Tracking
//
// Progress is reported via a callback function that receives ProgressEvent:
//
//	type ProgressEvent struct {
//	    Message string
//	    Level   ProgressLevel // Info, Verbose, Warning, Error, Success
//	}
package batch
