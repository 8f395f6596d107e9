package quantity_test

import (
	"fmt"

	"unitful/quantity"
)

func Example() {
	gravity, _ := quantity.Parse("9.81m/s2")
	fmt.Println(gravity)

	speed, _ := quantity.Parse("130km/h")
	out, _ := quantity.Format(speed, ".1m/s")
	fmt.Println(out)

	ratio, _ := quantity.Parse("3km/m")
	fmt.Println(ratio)
	// Output:
	// 9.81[L/T2]
	// 36.1m/s
	// 3000
}
