// Package technique provides a catalog of named composite view animations.
//
// Each [Technique] is a recipe that reads the target's geometry when the run
// starts and plays a handful of property timelines together:
//
//	technique.Bounce.PlayOn(node)
//
//	ctrl := technique.FadeIn.Composer().
//		Duration(2500 * time.Millisecond).
//		Delay(time.Second).
//		HideOnFinished().
//		PlayOn(node)
//	defer ctrl.Stop(true)
//
// A [Composer] is an immutable value; every method returns an updated copy,
// so a configured composer can be shared and played many times. Each play
// creates a fresh single-use [SimpleAnimator] and returns a [Controller] for
// it.
//
// Runs are driven by the animation package's tickers and must be started and
// stopped from the goroutine that calls [animation.StepTickers]. Overlapping
// runs on one target are not coordinated.
package technique

import (
	"fmt"

	"github.com/go-drift/motion/pkg/easing"
	"github.com/go-drift/motion/pkg/errors"
	"github.com/go-drift/motion/pkg/view"
)

// Technique identifies a composite animation.
type Technique int

const (
	// Attention
	Flash Technique = iota
	Pulse
	RubberBand
	Shake
	Swing
	Wobble
	Bounce
	Tada
	StandUp
	Wave

	// Special
	Hinge
	RollIn
	RollOut
	Landing
	TakingOff
	DropOut

	// Bounce
	BounceIn
	BounceInDown
	BounceInLeft
	BounceInRight
	BounceInUp

	// Fade
	FadeIn
	FadeInUp
	FadeInDown
	FadeInLeft
	FadeInRight
	FadeOut
	FadeOutDown
	FadeOutLeft
	FadeOutRight
	FadeOutUp

	// Flip
	FlipInX
	FlipOutX
	FlipInY
	FlipOutY

	// Rotate
	Rotate
	RotateIn
	RotateInDownLeft
	RotateInDownRight
	RotateInUpLeft
	RotateInUpRight
	RotateOut
	RotateOutDownLeft
	RotateOutDownRight
	RotateOutUpLeft
	RotateOutUpRight

	// Slide
	SlideInLeft
	SlideInRight
	SlideInUp
	SlideInDown
	SlideOutLeft
	SlideOutRight
	SlideOutUp
	SlideOutDown

	// Zoom
	ZoomIn
	ZoomInDown
	ZoomInLeft
	ZoomInRight
	ZoomInUp
	ZoomOut
	ZoomOutDown
	ZoomOutLeft
	ZoomOutRight
	ZoomOutUp

	techniqueCount
)

var techniqueNames = [techniqueCount]string{
	Flash:              "FLASH",
	Pulse:              "PULSE",
	RubberBand:         "RUBBER_BAND",
	Shake:              "SHAKE",
	Swing:              "SWING",
	Wobble:             "WOBBLE",
	Bounce:             "BOUNCE",
	Tada:               "TADA",
	StandUp:            "STAND_UP",
	Wave:               "WAVE",
	Hinge:              "HINGE",
	RollIn:             "ROLL_IN",
	RollOut:            "ROLL_OUT",
	Landing:            "LANDING",
	TakingOff:          "TAKING_OFF",
	DropOut:            "DROP_OUT",
	BounceIn:           "BOUNCE_IN",
	BounceInDown:       "BOUNCE_IN_DOWN",
	BounceInLeft:       "BOUNCE_IN_LEFT",
	BounceInRight:      "BOUNCE_IN_RIGHT",
	BounceInUp:         "BOUNCE_IN_UP",
	FadeIn:             "FADE_IN",
	FadeInUp:           "FADE_IN_UP",
	FadeInDown:         "FADE_IN_DOWN",
	FadeInLeft:         "FADE_IN_LEFT",
	FadeInRight:        "FADE_IN_RIGHT",
	FadeOut:            "FADE_OUT",
	FadeOutDown:        "FADE_OUT_DOWN",
	FadeOutLeft:        "FADE_OUT_LEFT",
	FadeOutRight:       "FADE_OUT_RIGHT",
	FadeOutUp:          "FADE_OUT_UP",
	FlipInX:            "FLIP_IN_X",
	FlipOutX:           "FLIP_OUT_X",
	FlipInY:            "FLIP_IN_Y",
	FlipOutY:           "FLIP_OUT_Y",
	Rotate:             "ROTATE",
	RotateIn:           "ROTATE_IN",
	RotateInDownLeft:   "ROTATE_IN_DOWN_LEFT",
	RotateInDownRight:  "ROTATE_IN_DOWN_RIGHT",
	RotateInUpLeft:     "ROTATE_IN_UP_LEFT",
	RotateInUpRight:    "ROTATE_IN_UP_RIGHT",
	RotateOut:          "ROTATE_OUT",
	RotateOutDownLeft:  "ROTATE_OUT_DOWN_LEFT",
	RotateOutDownRight: "ROTATE_OUT_DOWN_RIGHT",
	RotateOutUpLeft:    "ROTATE_OUT_UP_LEFT",
	RotateOutUpRight:   "ROTATE_OUT_UP_RIGHT",
	SlideInLeft:        "SLIDE_IN_LEFT",
	SlideInRight:       "SLIDE_IN_RIGHT",
	SlideInUp:          "SLIDE_IN_UP",
	SlideInDown:        "SLIDE_IN_DOWN",
	SlideOutLeft:       "SLIDE_OUT_LEFT",
	SlideOutRight:      "SLIDE_OUT_RIGHT",
	SlideOutUp:         "SLIDE_OUT_UP",
	SlideOutDown:       "SLIDE_OUT_DOWN",
	ZoomIn:             "ZOOM_IN",
	ZoomInDown:         "ZOOM_IN_DOWN",
	ZoomInLeft:         "ZOOM_IN_LEFT",
	ZoomInRight:        "ZOOM_IN_RIGHT",
	ZoomInUp:           "ZOOM_IN_UP",
	ZoomOut:            "ZOOM_OUT",
	ZoomOutDown:        "ZOOM_OUT_DOWN",
	ZoomOutLeft:        "ZOOM_OUT_LEFT",
	ZoomOutRight:       "ZOOM_OUT_RIGHT",
	ZoomOutUp:          "ZOOM_OUT_UP",
}

// Family is the catalog section a technique is listed under. It has no
// effect on behavior.
type Family int

const (
	Attention Family = iota
	Special
	BounceFamily
	Fade
	Flip
	RotateFamily
	Slide
	Zoom
)

func (f Family) String() string {
	switch f {
	case Attention:
		return "attention"
	case Special:
		return "special"
	case BounceFamily:
		return "bounce"
	case Fade:
		return "fade"
	case Flip:
		return "flip"
	case RotateFamily:
		return "rotate"
	case Slide:
		return "slide"
	case Zoom:
		return "zoom"
	default:
		return fmt.Sprintf("Family(%d)", int(f))
	}
}

// Family returns the catalog section of t.
func (t Technique) Family() Family {
	switch {
	case t <= Wave:
		return Attention
	case t <= DropOut:
		return Special
	case t <= BounceInUp:
		return BounceFamily
	case t <= FadeOutUp:
		return Fade
	case t <= FlipOutY:
		return Flip
	case t <= RotateOutUpRight:
		return RotateFamily
	case t <= SlideOutDown:
		return Slide
	default:
		return Zoom
	}
}

// All returns every technique in catalog order.
func All() []Technique {
	out := make([]Technique, techniqueCount)
	for i := range out {
		out[i] = Technique(i)
	}
	return out
}

// Valid reports whether t names a known technique.
func (t Technique) Valid() bool {
	return t >= 0 && t < techniqueCount
}

// String returns the constant-style name, e.g. "SLIDE_IN_LEFT".
func (t Technique) String() string {
	if t.Valid() {
		return techniqueNames[t]
	}
	return fmt.Sprintf("Technique(%d)", int(t))
}

// ParseTechnique resolves a technique name in constant, kebab or Go
// identifier form, case-insensitively.
func ParseTechnique(name string) (Technique, error) {
	key := easing.NormalizeName(name)
	for i, n := range techniqueNames {
		if easing.NormalizeName(n) == key {
			return Technique(i), nil
		}
	}
	return 0, &errors.ParseError{What: "technique", Name: name}
}

// Composer returns a composer with [DefaultOptions].
func (t Technique) Composer() Composer {
	return Composer{technique: t, opts: DefaultOptions()}
}

// Animator returns a fresh run configured with [DefaultOptions].
func (t Technique) Animator() *SimpleAnimator {
	return NewSimpleAnimator(t, DefaultOptions())
}

// PlayOn plays t on target with the default options.
func (t Technique) PlayOn(target view.View) Controller {
	return t.Composer().PlayOn(target)
}
