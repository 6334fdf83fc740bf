package technique

import (
	"time"

	"github.com/go-drift/motion/pkg/easing"
	"github.com/go-drift/motion/pkg/view"
)

// hingeDuration replaces the configured duration for Hinge.
const hingeDuration = 1300 * time.Millisecond

// recipe builds a run's timelines. Geometry is read when the run starts and
// uses integer pixel arithmetic.
type recipe func(a *SimpleAnimator, g view.Geometry)

func f(v int) float64 { return float64(v) }

type pivot struct{ x, y float64 }

// bottomCenter is the middle of the content's bottom edge.
func bottomCenter(g view.Geometry) pivot {
	return pivot{
		x: f((g.Width-g.Padding.Left-g.Padding.Right)/2 + g.Padding.Left),
		y: f(g.Height - g.Padding.Bottom),
	}
}

func bottomLeft(g view.Geometry) pivot {
	return pivot{x: f(g.Padding.Left), y: f(g.Height - g.Padding.Bottom)}
}

func bottomRight(g view.Geometry) pivot {
	return pivot{x: f(g.Width - g.Padding.Right), y: f(g.Height - g.Padding.Bottom)}
}

// pin holds the pivot in place for the whole run.
func (a *SimpleAnimator) pin(p pivot, keyframes int) {
	xs := make([]float64, keyframes)
	ys := make([]float64, keyframes)
	for i := range xs {
		xs[i], ys[i] = p.x, p.y
	}
	a.play(view.PivotX, xs...)
	a.play(view.PivotY, ys...)
}

var recipes = [techniqueCount]recipe{
	Flash: func(a *SimpleAnimator, _ view.Geometry) {
		a.play(view.Alpha, 1, 0, 1, 0, 1)
	},
	Pulse: func(a *SimpleAnimator, _ view.Geometry) {
		a.play(view.ScaleY, 1, 1.1, 1)
		a.play(view.ScaleX, 1, 1.1, 1)
	},
	RubberBand: func(a *SimpleAnimator, _ view.Geometry) {
		a.play(view.ScaleX, 1, 1.25, 0.75, 1.15, 1)
		a.play(view.ScaleY, 1, 0.75, 1.25, 0.85, 1)
	},
	Shake: func(a *SimpleAnimator, _ view.Geometry) {
		a.play(view.TranslationX, 0, 25, -25, 25, -25, 15, -15, 6, -6, 0)
	},
	Swing: func(a *SimpleAnimator, _ view.Geometry) {
		a.play(view.Rotation, 0, 10, -10, 6, -6, 3, -3, 0)
	},
	Wobble: func(a *SimpleAnimator, g view.Geometry) {
		one := f(g.Width) / 100
		a.play(view.TranslationX, 0*one, -25*one, 20*one, -15*one, 10*one, -5*one, 0*one, 0)
		a.play(view.Rotation, 0, -5, 3, -3, 2, -1, 0)
	},
	Bounce: func(a *SimpleAnimator, _ view.Geometry) {
		a.play(view.TranslationY, 0, 0, -30, 0, -15, 0, 0)
	},
	Tada: func(a *SimpleAnimator, _ view.Geometry) {
		a.play(view.ScaleX, 1, 0.9, 0.9, 1.1, 1.1, 1.1, 1.1, 1.1, 1.1, 1)
		a.play(view.ScaleY, 1, 0.9, 0.9, 1.1, 1.1, 1.1, 1.1, 1.1, 1.1, 1)
		a.play(view.Rotation, 0, -3, -3, 3, -3, 3, -3, 3, -3, 0)
	},
	StandUp: func(a *SimpleAnimator, g view.Geometry) {
		a.pin(bottomCenter(g), 5)
		a.play(view.RotationX, 55, -30, 15, -15, 0)
	},
	Wave: func(a *SimpleAnimator, g view.Geometry) {
		a.play(view.Rotation, 12, -12, 3, -3, 0)
		a.pin(bottomCenter(g), 5)
	},

	Hinge: func(a *SimpleAnimator, g view.Geometry) {
		easing.SineEaseInOut.Glide(float64(hingeDuration/time.Millisecond),
			a.play(view.Rotation, 0, 80, 60, 80, 60, 60))
		a.play(view.TranslationY, 0, 0, 0, 0, 0, 700)
		a.play(view.Alpha, 1, 1, 1, 1, 1, 0)
		a.pin(pivot{x: f(g.Padding.Left), y: f(g.Padding.Top)}, 6)
		a.duration = hingeDuration
	},
	RollIn: func(a *SimpleAnimator, g view.Geometry) {
		a.play(view.Alpha, 0, 1)
		a.play(view.TranslationX, f(-(g.Width-g.Padding.Left-g.Padding.Right)), 0)
		a.play(view.Rotation, -120, 0)
	},
	RollOut: func(a *SimpleAnimator, g view.Geometry) {
		a.play(view.Alpha, 1, 0)
		a.play(view.TranslationX, 0, f(g.Width))
		a.play(view.Rotation, 0, 120)
	},
	Landing: func(a *SimpleAnimator, _ view.Geometry) {
		ms := a.millis()
		easing.QuintEaseOut.Glide(ms, a.play(view.ScaleX, 1.5, 1))
		easing.QuintEaseOut.Glide(ms, a.play(view.ScaleY, 1.5, 1))
		easing.QuintEaseOut.Glide(ms, a.play(view.Alpha, 0, 1))
	},
	TakingOff: func(a *SimpleAnimator, _ view.Geometry) {
		ms := a.millis()
		easing.QuintEaseOut.Glide(ms, a.play(view.ScaleX, 1, 1.5))
		easing.QuintEaseOut.Glide(ms, a.play(view.ScaleY, 1, 1.5))
		easing.QuintEaseOut.Glide(ms, a.play(view.Alpha, 1, 0))
	},
	DropOut: func(a *SimpleAnimator, g view.Geometry) {
		distance := g.Top + g.Height
		a.play(view.Alpha, 0, 1)
		easing.BounceEaseOut.Glide(a.millis(), a.play(view.TranslationY, f(-distance), 0))
	},

	BounceIn: func(a *SimpleAnimator, _ view.Geometry) {
		a.play(view.Alpha, 0, 1, 1, 1)
		a.play(view.ScaleX, 0.3, 1.05, 0.9, 1)
		a.play(view.ScaleY, 0.3, 1.05, 0.9, 1)
	},
	BounceInDown: func(a *SimpleAnimator, g view.Geometry) {
		a.play(view.Alpha, 0, 1, 1, 1)
		a.play(view.TranslationY, f(-g.Height), 30, -10, 0)
	},
	BounceInLeft: func(a *SimpleAnimator, g view.Geometry) {
		a.play(view.TranslationX, f(-g.Width), 30, -10, 0)
		a.play(view.Alpha, 0, 1, 1, 1)
	},
	BounceInRight: func(a *SimpleAnimator, g view.Geometry) {
		a.play(view.TranslationX, f(g.MeasuredWidth+g.Width), -30, 10, 0)
		a.play(view.Alpha, 0, 1, 1, 1)
	},
	BounceInUp: func(a *SimpleAnimator, g view.Geometry) {
		a.play(view.TranslationY, f(g.MeasuredHeight), -30, 10, 0)
		a.play(view.Alpha, 0, 1, 1, 1)
	},

	FadeIn: func(a *SimpleAnimator, _ view.Geometry) {
		a.play(view.Alpha, 0, 1)
	},
	FadeInUp: func(a *SimpleAnimator, g view.Geometry) {
		a.play(view.Alpha, 0, 1)
		a.play(view.TranslationY, f(g.Height/4), 0)
	},
	FadeInDown: func(a *SimpleAnimator, g view.Geometry) {
		a.play(view.Alpha, 0, 1)
		a.play(view.TranslationY, f(-g.Height/4), 0)
	},
	FadeInLeft: func(a *SimpleAnimator, g view.Geometry) {
		a.play(view.Alpha, 0, 1)
		a.play(view.TranslationX, f(-g.Width/4), 0)
	},
	FadeInRight: func(a *SimpleAnimator, g view.Geometry) {
		a.play(view.Alpha, 0, 1)
		a.play(view.TranslationX, f(g.Width/4), 0)
	},
	FadeOut: func(a *SimpleAnimator, _ view.Geometry) {
		a.play(view.Alpha, 1, 0)
	},
	FadeOutDown: func(a *SimpleAnimator, g view.Geometry) {
		a.play(view.Alpha, 1, 0)
		a.play(view.TranslationY, 0, f(g.Height/4))
	},
	FadeOutLeft: func(a *SimpleAnimator, g view.Geometry) {
		a.play(view.Alpha, 1, 0)
		a.play(view.TranslationX, 0, f(-g.Width/4))
	},
	FadeOutRight: func(a *SimpleAnimator, g view.Geometry) {
		a.play(view.Alpha, 1, 0)
		a.play(view.TranslationX, 0, f(g.Width/4))
	},
	FadeOutUp: func(a *SimpleAnimator, g view.Geometry) {
		a.play(view.Alpha, 1, 0)
		a.play(view.TranslationY, 0, f(-g.Height/4))
	},

	FlipInX: func(a *SimpleAnimator, _ view.Geometry) {
		a.play(view.RotationX, 90, -15, 15, 0)
		a.play(view.Alpha, 0.25, 0.5, 0.75, 1)
	},
	FlipOutX: func(a *SimpleAnimator, _ view.Geometry) {
		a.play(view.RotationX, 0, 90)
		a.play(view.Alpha, 1, 0)
	},
	FlipInY: func(a *SimpleAnimator, _ view.Geometry) {
		a.play(view.RotationY, 90, -15, 15, 0)
		a.play(view.Alpha, 0.25, 0.5, 0.75, 1)
	},
	FlipOutY: func(a *SimpleAnimator, _ view.Geometry) {
		a.play(view.RotationY, 0, 90)
		a.play(view.Alpha, 1, 0)
	},

	Rotate: func(a *SimpleAnimator, _ view.Geometry) {
		a.play(view.Rotation, 360, 0)
	},
	RotateIn: func(a *SimpleAnimator, _ view.Geometry) {
		a.play(view.Rotation, -200, 0)
		a.play(view.Alpha, 0, 1)
	},
	RotateInDownLeft: func(a *SimpleAnimator, g view.Geometry) {
		a.play(view.Rotation, -90, 0)
		a.play(view.Alpha, 0, 1)
		a.pin(bottomLeft(g), 2)
	},
	RotateInDownRight: func(a *SimpleAnimator, g view.Geometry) {
		a.play(view.Rotation, 90, 0)
		a.play(view.Alpha, 0, 1)
		a.pin(bottomRight(g), 2)
	},
	// RotateInUpLeft pivots on the bottom-left corner with the same sign as
	// RotateInDownRight. The asymmetry with its siblings is long-standing
	// behavior and kept as is.
	RotateInUpLeft: func(a *SimpleAnimator, g view.Geometry) {
		a.play(view.Rotation, 90, 0)
		a.play(view.Alpha, 0, 1)
		a.pin(bottomLeft(g), 2)
	},
	RotateInUpRight: func(a *SimpleAnimator, g view.Geometry) {
		a.play(view.Rotation, -90, 0)
		a.play(view.Alpha, 0, 1)
		a.pin(bottomRight(g), 2)
	},
	RotateOut: func(a *SimpleAnimator, _ view.Geometry) {
		a.play(view.Alpha, 1, 0)
		a.play(view.Rotation, 0, 200)
	},
	RotateOutDownLeft: func(a *SimpleAnimator, g view.Geometry) {
		a.play(view.Alpha, 1, 0)
		a.play(view.Rotation, 0, 90)
		a.pin(bottomLeft(g), 2)
	},
	RotateOutDownRight: func(a *SimpleAnimator, g view.Geometry) {
		a.play(view.Alpha, 1, 0)
		a.play(view.Rotation, 0, -90)
		a.pin(bottomRight(g), 2)
	},
	RotateOutUpLeft: func(a *SimpleAnimator, g view.Geometry) {
		a.play(view.Alpha, 1, 0)
		a.play(view.Rotation, 0, -90)
		a.pin(bottomLeft(g), 2)
	},
	RotateOutUpRight: func(a *SimpleAnimator, g view.Geometry) {
		a.play(view.Alpha, 1, 0)
		a.play(view.Rotation, 0, 90)
		a.pin(bottomRight(g), 2)
	},

	SlideInLeft: func(a *SimpleAnimator, g view.Geometry) {
		distance := a.parent().Width - g.Left
		a.play(view.Alpha, 0, 1)
		a.play(view.TranslationX, f(-distance), 0)
	},
	SlideInRight: func(a *SimpleAnimator, g view.Geometry) {
		distance := a.parent().Width - g.Left
		a.play(view.Alpha, 0, 1)
		a.play(view.TranslationX, f(distance), 0)
	},
	SlideInUp: func(a *SimpleAnimator, g view.Geometry) {
		distance := a.parent().Height - g.Top
		a.play(view.Alpha, 0, 1)
		a.play(view.TranslationY, f(distance), 0)
	},
	SlideInDown: func(a *SimpleAnimator, g view.Geometry) {
		distance := g.Top + g.Height
		a.play(view.Alpha, 0, 1)
		a.play(view.TranslationY, f(-distance), 0)
	},
	SlideOutLeft: func(a *SimpleAnimator, g view.Geometry) {
		a.play(view.Alpha, 1, 0)
		a.play(view.TranslationX, 0, f(-g.Right))
	},
	SlideOutRight: func(a *SimpleAnimator, g view.Geometry) {
		distance := a.parent().Width - g.Left
		a.play(view.Alpha, 1, 0)
		a.play(view.TranslationX, 0, f(distance))
	},
	SlideOutUp: func(a *SimpleAnimator, g view.Geometry) {
		a.play(view.Alpha, 1, 0)
		a.play(view.TranslationY, 0, f(-g.Bottom))
	},
	SlideOutDown: func(a *SimpleAnimator, g view.Geometry) {
		distance := a.parent().Height - g.Top
		a.play(view.Alpha, 1, 0)
		a.play(view.TranslationY, 0, f(distance))
	},

	ZoomIn: func(a *SimpleAnimator, _ view.Geometry) {
		a.play(view.ScaleX, 0.45, 1)
		a.play(view.ScaleY, 0.45, 1)
		a.play(view.Alpha, 0, 1)
	},
	ZoomInDown: func(a *SimpleAnimator, g view.Geometry) {
		a.play(view.ScaleX, 0.1, 0.475, 1)
		a.play(view.ScaleY, 0.1, 0.475, 1)
		a.play(view.TranslationY, f(-g.Bottom), 60, 0)
		a.play(view.Alpha, 0, 1, 1)
	},
	// ZoomInLeft and ZoomInRight share one recipe.
	ZoomInLeft:  zoomInSideways,
	ZoomInRight: zoomInSideways,
	ZoomInUp: func(a *SimpleAnimator, g view.Geometry) {
		distance := a.parent().Height - g.Top
		a.play(view.Alpha, 0, 1, 1)
		a.play(view.ScaleX, 0.1, 0.475, 1)
		a.play(view.ScaleY, 0.1, 0.475, 1)
		a.play(view.TranslationY, f(distance), -60, 0)
	},
	ZoomOut: func(a *SimpleAnimator, _ view.Geometry) {
		a.play(view.Alpha, 1, 0, 0)
		a.play(view.ScaleX, 1, 0.3, 0)
		a.play(view.ScaleY, 1, 0.3, 0)
	},
	ZoomOutDown: func(a *SimpleAnimator, g view.Geometry) {
		distance := a.parent().Height - g.Top
		a.zoomOut()
		a.play(view.TranslationY, 0, -60, f(distance))
	},
	ZoomOutLeft: func(a *SimpleAnimator, g view.Geometry) {
		a.zoomOut()
		a.play(view.TranslationX, 0, 42, f(-g.Right))
	},
	ZoomOutRight: func(a *SimpleAnimator, _ view.Geometry) {
		p := a.parent()
		a.zoomOut()
		a.play(view.TranslationX, 0, -42, f(p.Width-p.Left))
	},
	ZoomOutUp: func(a *SimpleAnimator, g view.Geometry) {
		a.zoomOut()
		a.play(view.TranslationY, 0, 60, f(-g.Bottom))
	},
}

func zoomInSideways(a *SimpleAnimator, g view.Geometry) {
	a.play(view.ScaleX, 0.1, 0.475, 1)
	a.play(view.ScaleY, 0.1, 0.475, 1)
	a.play(view.TranslationX, f(g.Width+g.Padding.Right), -48, 0)
	a.play(view.Alpha, 0, 1, 1)
}

// zoomOut fades and shrinks toward a tenth of the original size.
func (a *SimpleAnimator) zoomOut() {
	a.play(view.Alpha, 1, 1, 0)
	a.play(view.ScaleX, 1, 0.475, 0.1)
	a.play(view.ScaleY, 1, 0.475, 0.1)
}
