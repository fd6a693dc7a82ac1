// Package problem parses batch inputs into the angle sets to solve.
//
// Three input formats are accepted:
//
//  1. Plain text, one problem per line: four angles separated by commas
//     or whitespace. Blank lines and lines starting with # are skipped.
//  2. JSON, either an array of problems or an object with a "problems" array.
//  3. YAML with the same shape as the JSON format.
//
// # Parsing
//
//	parser := problem.NewParser()
//	problems, err := parser.Parse([]byte("10 30 20 20\n15,25,35,45\n"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, p := range problems {
//	    fmt.Println(p.Name, p.Angles)
//	}
//
// A JSON problem looks like:
//
//	{"name": "classic", "a1": 10, "a2": 30, "b1": 20, "b2": 20}
//
// All four angles are required. The dto package holds the wire types for
// problems and for the report written after a batch run.
package problem
