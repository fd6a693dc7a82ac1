// Package solver computes the unknown angle of the construction and the
// vertices used to draw it.
//
// # Solving
//
//	x, err := solver.Solve(model.DefaultAngleSet())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("x = %.2f°\n", x) // x = 140.00°
//
// Analyze returns the same result together with its intermediate values.
//
// # Points
//
//	c, err := solver.DerivePoints(model.DefaultAngleSet())
//	// c.A = (0, 0), c.B = (1, 0), c.C ≈ (0.5, 0.4195), c.M ≈ (0.6736, 0.1188)
//
// # Errors
//
// Both operations return a *DomainError when an input angle is not finite or
// when a sine in a denominator vanishes. Use errors.Is(err, ErrDomain) or
// errors.As to detect it. NaN or infinite results are never returned.
package solver
