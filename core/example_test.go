package core_test

import (
	"fmt"

	"github.com/huangsam/magarea/core"
	"github.com/huangsam/magarea/schema"
)

func ExampleMagAreaRel() {
	m := core.NewMagAreaRel()
	if err := m.SetRake(90); err != nil {
		panic(err)
	}
	mag, _ := m.MedianMag(500)
	sigma, _ := m.MagStdDev()
	fmt.Printf("%.3f %.3f\n", mag, sigma)
	fmt.Println(m.Description())
	// Output:
	// 6.730 0.121
	// Thingbaijam et al.(2017) for shallow reverse-faulting events
}

func ExampleMagAreaRel_undefinedRake() {
	m := core.NewMagAreaRel()
	_, ok := m.MedianMag(500)
	fmt.Println(ok)
	fmt.Println(m.Description())
	// Output:
	// false
	// Thingbaijam et al.(2017) for not available events
}

func ExampleTMG2017() {
	rel := core.TMG2017{}
	ev := schema.Event{Rake: schema.NewRake(90), Regime: schema.InterfaceRegime}
	area, _ := rel.MedianArea(9, ev)
	fmt.Printf("%.0f\n", area)

	_, ok := rel.MedianArea(9, ev.WithRake(schema.UndefinedRake()))
	fmt.Println(ok)
	// Output:
	// 177419
	// false
}

func ExampleClassify() {
	for _, rake := range []float64{0, 45, 90, -90, 180} {
		mech, _ := core.Classify(schema.Event{Rake: schema.NewRake(rake), Regime: schema.CrustalRegime})
		fmt.Println(rake, mech)
	}
	// Output:
	// 0 strike-slip
	// 45 strike-slip
	// 90 reverse
	// -90 normal
	// 180 strike-slip
}
