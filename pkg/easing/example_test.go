package easing_test

import (
	"fmt"

	"github.com/go-drift/motion/pkg/animation"
	"github.com/go-drift/motion/pkg/easing"
)

// This example shows how a curve replaces straight-line interpolation on a
// value animator.
func ExampleCurve_Glide() {
	fall := animation.NewValueAnimator(nil, 0, 100)
	easing.BounceEaseOut.Glide(1000, fall)

	for _, f := range []float64{0, 0.25, 0.5, 1} {
		fmt.Printf("%.2f -> %.2f\n", f, fall.ValueAt(f))
	}

	// Output:
	// 0.00 -> 0.00
	// 0.25 -> 47.27
	// 0.50 -> 76.56
	// 1.00 -> 100.00
}

// This example shows how observers see the raw (time, value, start, delta,
// duration) sample behind every evaluation.
func ExampleMethod_AddObserver() {
	m := easing.Linear.Method(1000)
	m.AddObserver(easing.ObserverFunc(func(t, v, b, c, d float64) {
		fmt.Printf("t=%.0f v=%.0f b=%.0f c=%.0f d=%.0f\n", t, v, b, c, d)
	}))

	m.Evaluate(0.5, 20, 60)

	// Output:
	// t=500 v=40 b=20 c=40 d=1000
}

func ExampleParseCurve() {
	c, err := easing.ParseCurve("quint-ease-out")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(c)

	_, err = easing.ParseCurve("wobbly")
	fmt.Println(err)

	// Output:
	// QUINT_EASE_OUT
	// unknown curve "wobbly"
}
