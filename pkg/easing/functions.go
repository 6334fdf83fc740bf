package easing

import "math"

// DefaultOvershoot is the back-ease overshoot that produces roughly a 10%
// overshoot.
const DefaultOvershoot = 1.70158

// Func is a Penner easing function: t is elapsed time, b the start value,
// c the change (end - start) and d the total duration.
type Func func(t, b, c, d float64) float64

func backEaseIn(s float64) Func {
	return func(t, b, c, d float64) float64 {
		t /= d
		return c*t*t*((s+1)*t-s) + b
	}
}

// backEaseInOut is the Penner in-out form. Older easing tables evaluate the
// back-ease-out formula under this name, so their samples will not match.
func backEaseInOut(s float64) Func {
	s *= 1.525
	return func(t, b, c, d float64) float64 {
		t /= d / 2
		if t < 1 {
			return c/2*(t*t*((s+1)*t-s)) + b
		}
		t -= 2
		return c/2*(t*t*((s+1)*t+s)+2) + b
	}
}

func backEaseOut(s float64) Func {
	return func(t, b, c, d float64) float64 {
		t = t/d - 1
		return c*(t*t*((s+1)*t+s)+1) + b
	}
}

// bounceEaseIn plays out backwards in time.
func bounceEaseIn(out Func) Func {
	return func(t, b, c, d float64) float64 {
		return c - out(d-t, 0, c, d) + b
	}
}

func bounceEaseInOut(in, out Func) Func {
	return func(t, b, c, d float64) float64 {
		if t < d/2 {
			return in(t*2, 0, c, d)*.5 + b
		}
		return out(t*2-d, 0, c, d)*.5 + c*.5 + b
	}
}

func bounceEaseOut(t, b, c, d float64) float64 {
	t /= d
	switch {
	case t < 1/2.75:
		return c*(7.5625*t*t) + b
	case t < 2/2.75:
		t -= 1.5 / 2.75
		return c*(7.5625*t*t+.75) + b
	case t < 2.5/2.75:
		t -= 2.25 / 2.75
		return c*(7.5625*t*t+.9375) + b
	default:
		t -= 2.625 / 2.75
		return c*(7.5625*t*t+.984375) + b
	}
}

func circEaseIn(t, b, c, d float64) float64 {
	t /= d
	return -c*(math.Sqrt(1-t*t)-1) + b
}

func circEaseInOut(t, b, c, d float64) float64 {
	t /= d / 2
	if t < 1 {
		return -c/2*(math.Sqrt(1-t*t)-1) + b
	}
	t -= 2
	return c/2*(math.Sqrt(1-t*t)+1) + b
}

func circEaseOut(t, b, c, d float64) float64 {
	t = t/d - 1
	return c*math.Sqrt(1-t*t) + b
}

// The elastic and exponential curves pin their endpoints explicitly; the
// closed forms only approach them.

func elasticEaseIn(t, b, c, d float64) float64 {
	if t == 0 {
		return b
	}
	t /= d
	if t == 1 {
		return b + c
	}
	p := d * .3
	a := c
	s := p / 4
	t--
	return -(a * math.Pow(2, 10*t) * math.Sin((t*d-s)*(2*math.Pi)/p)) + b
}

func elasticEaseInOut(t, b, c, d float64) float64 {
	if t == 0 {
		return b
	}
	t /= d / 2
	if t == 2 {
		return b + c
	}
	p := d * (.3 * 1.5)
	a := c
	s := p / 4
	if t < 1 {
		t--
		return -.5*(a*math.Pow(2, 10*t)*math.Sin((t*d-s)*(2*math.Pi)/p)) + b
	}
	t--
	return a*math.Pow(2, -10*t)*math.Sin((t*d-s)*(2*math.Pi)/p)*.5 + c + b
}

func elasticEaseOut(t, b, c, d float64) float64 {
	if t == 0 {
		return b
	}
	t /= d
	if t == 1 {
		return b + c
	}
	p := d * .3
	a := c
	s := p / 4
	return a*math.Pow(2, -10*t)*math.Sin((t*d-s)*(2*math.Pi)/p) + c + b
}

func expoEaseIn(t, b, c, d float64) float64 {
	if t == 0 {
		return b
	}
	return c*math.Pow(2, 10*(t/d-1)) + b
}

func expoEaseInOut(t, b, c, d float64) float64 {
	if t == 0 {
		return b
	}
	if t == d {
		return b + c
	}
	t /= d / 2
	if t < 1 {
		return c/2*math.Pow(2, 10*(t-1)) + b
	}
	t--
	return c/2*(-math.Pow(2, -10*t)+2) + b
}

func expoEaseOut(t, b, c, d float64) float64 {
	if t == d {
		return b + c
	}
	return c*(-math.Pow(2, -10*t/d)+1) + b
}

func linear(t, b, c, d float64) float64 {
	return c*t/d + b
}

func quadEaseIn(t, b, c, d float64) float64 {
	t /= d
	return c*t*t + b
}

func quadEaseInOut(t, b, c, d float64) float64 {
	t /= d / 2
	if t < 1 {
		return c/2*t*t + b
	}
	t--
	return -c/2*(t*(t-2)-1) + b
}

func quadEaseOut(t, b, c, d float64) float64 {
	t /= d
	return -c*t*(t-2) + b
}

func quintEaseIn(t, b, c, d float64) float64 {
	t /= d
	return c*t*t*t*t*t + b
}

func quintEaseInOut(t, b, c, d float64) float64 {
	t /= d / 2
	if t < 1 {
		return c/2*t*t*t*t*t + b
	}
	t -= 2
	return c/2*(t*t*t*t*t+2) + b
}

func quintEaseOut(t, b, c, d float64) float64 {
	t = t/d - 1
	return c*(t*t*t*t*t+1) + b
}

func sineEaseIn(t, b, c, d float64) float64 {
	return -c*math.Cos(t/d*(math.Pi/2)) + c + b
}

func sineEaseInOut(t, b, c, d float64) float64 {
	return -c/2*(math.Cos(math.Pi*t/d)-1) + b
}

func sineEaseOut(t, b, c, d float64) float64 {
	return c*math.Sin(t/d*(math.Pi/2)) + b
}
