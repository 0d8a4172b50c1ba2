package engine

import (
	"fmt"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// WheelPoint is the dual cartesian/polar position of a color-wheel control.
// (X, Y) are offsets from the wheel center; Hue is in [0,360) degrees with 0
// at the top of the wheel, and Saturation is in [0,100].
type WheelPoint struct {
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Hue        float64 `json:"hue"`
	Saturation float64 `json:"saturation"`
}

// CartesianToPolar converts a wheel-relative (x, y) position into hue and
// saturation. Hue 0 points straight up and increases clockwise; saturation is
// the distance from the center as a percentage of the radius, capped at 100.
func CartesianToPolar(x, y, radius float64) (hue, saturation float64) {
	distance := math.Sqrt(x*x + y*y)
	angle := math.Atan2(y, x) * 180 / math.Pi
	hue = math.Mod(angle+90+360, 360)
	saturation = math.Min(distance/radius*100, 100)
	return hue, saturation
}

// PolarToCartesian converts hue and saturation back into a wheel-relative
// (x, y) position. For saturation <= 100 this inverts CartesianToPolar within
// floating tolerance.
func PolarToCartesian(hue, saturation, radius float64) (x, y float64) {
	angle := (hue - 90) * math.Pi / 180
	distance := saturation / 100 * radius
	return distance * math.Cos(angle), distance * math.Sin(angle)
}

// WheelPointAt builds a WheelPoint from a cartesian position, filling in the
// polar fields.
func WheelPointAt(x, y, radius float64) WheelPoint {
	h, s := CartesianToPolar(x, y, radius)
	return WheelPoint{X: x, Y: y, Hue: h, Saturation: s}
}

// SwatchHex returns the "#RRGGBB" color shown under a wheel handle at the
// given hue and saturation, at 50% lightness.
func SwatchHex(hue, saturation float64) string {
	c := colorful.Hsl(math.Mod(hue+360, 360), clamp01(saturation/100), 0.5).Clamped()
	r, g, b := c.RGB255()
	return fmt.Sprintf("#%02X%02X%02X", r, g, b)
}
