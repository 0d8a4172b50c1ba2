package engine

// ToneRange identifies one of the three luminance buckets used by color
// grading and histogram analysis.
type ToneRange int

const (
	ToneShadows ToneRange = iota
	ToneMidtones
	ToneHighlights
)

// String returns the lowercase name of the tone range.
func (r ToneRange) String() string {
	switch r {
	case ToneShadows:
		return "shadows"
	case ToneMidtones:
		return "midtones"
	case ToneHighlights:
		return "highlights"
	default:
		return "unknown"
	}
}

// Tone-range boundaries on normalized luminance.
const (
	shadowCeiling  = 0.33
	highlightFloor = 0.67
)

// Luminance returns Rec.601 luma for normalized [0,1] channels.
func Luminance(r, g, b float64) float64 {
	return 0.299*r + 0.587*g + 0.114*b
}

// ClassifyTone buckets a normalized luminance value into a tone range.
// The thresholds are hard cuts with no blending, so adjacent pixels that
// straddle a boundary receive different grading. That banding matches the
// reference behavior and is intentional.
func ClassifyTone(luminance float64) ToneRange {
	switch {
	case luminance < shadowCeiling:
		return ToneShadows
	case luminance < highlightFloor:
		return ToneMidtones
	default:
		return ToneHighlights
	}
}
