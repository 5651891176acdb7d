// SPDX-License-Identifier: MIT
package detector_test

import (
	"fmt"

	"github.com/katalvlaran/localcomm/builder"
	"github.com/katalvlaran/localcomm/detector"
)

// ExampleNew runs every algorithm from the same seed of a barbell graph.
func ExampleNew() {
	g, err := builder.BuildGraph(nil, nil, builder.Barbell(5))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, kind := range detector.Kinds() {
		d, err := detector.New(kind, detector.DefaultSettings())
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		c, err := d.Detect(g, "a0")
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Printf("%-15s %v\n", d.Name(), c.Members())
	}
	// Output:
	// neighborhood    [a0 a1 a2 a3 a4]
	// bridgebounding  [a0 a1 a2 a3 a4]
	// bagrow          [a0 a1 a2 a3 a4]
	// clauset         [a0 a1 a2 a3 a4]
	// lwp             [a0 a1 a2 a3 a4]
}
