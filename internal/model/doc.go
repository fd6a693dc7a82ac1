// Package model defines the core data structures used throughout
// the triangle solver.
//
// # AngleSet
//
// AngleSet holds the four known angles of the construction, in degrees:
//
//	set := model.NewAngleSet(10, 30, 20, 20)
//	if err := set.Validate(); err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(set.Sum()) // 80
//
// The angles are measured at the two ends of the baseline AB:
//   - A1 is the angle BAM, A2 is the angle MAC
//   - B1 is the angle ABM, B2 is the angle MBC
//
// # Construction
//
// Construction holds the four vertices A, B, C and the interior point M
// derived from an AngleSet. It is produced by the solver and consumed by
// the renderer:
//
//	c := model.Construction{A: a, B: b, C: c, M: m}
//	fmt.Println(c.AngleAt(c.M, c.B, c.C)) // the angle BMC in degrees
//
// # File Naming
//
// AngleSet.Format expands the placeholders {a1}, {a2}, {b1} and {b2}:
//
//	name := set.Format("triangle-{a1}-{a2}-{b1}-{b2}.png")
//	// "triangle-10-30-20-20.png"
package model
