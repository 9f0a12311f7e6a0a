package core

import "fmt"

// Color is an RGB radiance triple. Channels are not clamped; light can accumulate beyond
// the displayable range and is clamped only by the pixel writer.
type Color struct {
	R, G, B float64
}

// Black is the absence of light
var Black = Color{}

// NewColor creates a new Color
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// Add returns the channel-wise sum of the color and all others
func (c Color) Add(others ...Color) Color {
	for _, o := range others {
		c.R += o.R
		c.G += o.G
		c.B += o.B
	}
	return c
}

// Scale returns the color multiplied by a scalar
func (c Color) Scale(k float64) Color {
	return Color{c.R * k, c.G * k, c.B * k}
}

// ScaleBy returns the color multiplied channel-wise by the factor
func (c Color) ScaleBy(f Factor) Color {
	return Color{c.R * f.R, c.G * f.G, c.B * f.B}
}

// Reduce returns the color divided by n
func (c Color) Reduce(n int) Color {
	if n <= 1 {
		return c
	}
	return c.Scale(1.0 / float64(n))
}

// Equals reports whether two colors are equal within tolerance
func (c Color) Equals(other Color) bool {
	return IsZero(c.R-other.R) && IsZero(c.G-other.G) && IsZero(c.B-other.B)
}

func (c Color) String() string {
	return fmt.Sprintf("rgb(%g, %g, %g)", c.R, c.G, c.B)
}

// Factor is a per-channel coefficient triple used for material coefficients and attenuation
type Factor struct {
	R, G, B float64
}

// Zero and One factors
var (
	FactorZero = Factor{}
	FactorOne  = Factor{1, 1, 1}
)

// NewFactor creates a per-channel factor
func NewFactor(r, g, b float64) Factor {
	return Factor{R: r, G: g, B: b}
}

// Uniform creates a factor with the same value on every channel
func Uniform(k float64) Factor {
	return Factor{k, k, k}
}

// Mul returns the channel-wise product of two factors
func (f Factor) Mul(other Factor) Factor {
	return Factor{f.R * other.R, f.G * other.G, f.B * other.B}
}

// Scale returns the factor multiplied by a scalar
func (f Factor) Scale(k float64) Factor {
	return Factor{f.R * k, f.G * k, f.B * k}
}

// LowerThan reports whether every channel is below k
func (f Factor) LowerThan(k float64) bool {
	return f.R < k && f.G < k && f.B < k
}

// IsZero reports whether every channel is within tolerance of zero
func (f Factor) IsZero() bool {
	return IsZero(f.R) && IsZero(f.G) && IsZero(f.B)
}
