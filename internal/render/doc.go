// Package render draws the construction: the triangle ABC, the interior
// point M and the cevians joining M to the three vertices.
//
// # Basic Usage
//
//	c, _ := solver.DerivePoints(set)
//	x, _ := solver.Solve(set)
//
//	r := render.NewRenderer(render.DefaultOptions())
//	img, err := r.Render(ctx, c, &x)
//
//	// or straight to a file, PNG or JPEG by extension
//	err = r.Save(ctx, c, &x, "triangle.png")
//
// # Annotation
//
// With Options.Annotate set, the figure also names the angles a1, a2, b1,
// b2, g1, g2 and x and the segments s1, s2, s3. Label anchors are derived
// from the points themselves (angle labels sit on the bisector of the angle
// they name), so annotation works for any angle set.
//
// # Quality
//
// Lines are drawn at Options.Supersample times the output size and scaled
// down with a Catmull-Rom kernel. Text is drawn after scaling.
package render
