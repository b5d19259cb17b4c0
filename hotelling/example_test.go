// SPDX-License-Identifier: MIT

package hotelling_test

import (
	"fmt"

	"github.com/katalvlaran/lvstat/dataset"
	"github.com/katalvlaran/lvstat/hotelling"
)

// ExampleTwoSample compares sepal length and width of two iris species.
func ExampleTwoSample() {
	ir, err := dataset.LoadIris()
	if err != nil {
		fmt.Println(err)
		return
	}
	versicolor, _ := ir.Select(dataset.Versicolor, dataset.SepalLength, dataset.SepalWidth)
	virginica, _ := ir.Select(dataset.Virginica, dataset.SepalLength, dataset.SepalWidth)

	res, err := hotelling.TwoSample(versicolor, virginica)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("F = %.4f on (%d, %d) df\n", res.Statistic, res.DF1, res.DF2)
	fmt.Printf("p = %.3g, reject at 5%%: %v\n", res.PValue, res.Reject(0.05))
	// Output:
	// F = 15.8266 on (2, 97) df
	// p = 1.13e-06, reject at 5%: true
}

func ExampleTwoSampleRows_identical() {
	x := [][]float64{{1, 2}, {2, 1}, {3, 5}, {4, 3}}
	res, _ := hotelling.TwoSampleRows(x, x)
	fmt.Println(res)
	// Output:
	// Test statistic: 0.0
	// Degrees of freedom: 2 and 5
	// p-value: 1.0
}
