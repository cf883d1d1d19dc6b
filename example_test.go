package secondorder_test

import (
	"fmt"
	"log"
	"math"

	secondorder "github.com/tphakala/go-second-order"
	"github.com/tphakala/go-second-order/quatutil"
)

func ExampleScalar() {
	s, err := secondorder.NewScalar(secondorder.GetPresetParams(secondorder.PresetCritical), 0)
	if err != nil {
		log.Fatal(err)
	}

	var y float64
	for range 300 {
		y = s.Update(1.0/60, 10)
	}
	fmt.Printf("%.3f\n", y)
	// Output: 10.000
}

func ExampleAngle() {
	a, err := secondorder.NewAngle(secondorder.GetPresetParams(secondorder.PresetCritical), math.Pi-0.1)
	if err != nil {
		log.Fatal(err)
	}

	// The target sits just across the seam; the system goes through π
	// rather than all the way around.
	for range 300 {
		a.Update(1.0/60, -math.Pi+0.1)
	}
	fmt.Printf("%.3f\n", a.Value())
	// Output: 3.242
}

func ExampleQuaternion() {
	s, err := secondorder.NewQuaternion(secondorder.GetPresetParams(secondorder.PresetCritical), quatutil.Identity())
	if err != nil {
		log.Fatal(err)
	}

	target := quatutil.FromAxisAngle(secondorder.Vec3{Z: 1}, math.Pi/2)
	var q secondorder.Quat
	for range 300 {
		q = s.Update(1.0/60, target)
	}
	fmt.Printf("%.3f rad\n", quatutil.Angle(quatutil.Identity(), q))
	// Output: 1.571 rad
}

func ExampleVector() {
	v, err := secondorder.NewVector(secondorder.GetPresetParams(secondorder.PresetCritical), []float64{0, 0})
	if err != nil {
		log.Fatal(err)
	}

	for range 300 {
		v.Update(1.0/60, []float64{1, -1})
	}
	fmt.Printf("%.3f %.3f\n", v.Values()[0], v.Values()[1])
	// Output: 1.000 -1.000
}
