package style

// Effect selects the visual treatment applied to caption text.
type Effect string

const (
	EffectNone    Effect = "none"
	EffectShadow  Effect = "shadow"
	EffectOutline Effect = "outline"
)

// horizontal text alignment within the caption box
type Align string

const (
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
	AlignRight  Align = "right"
)

// Position is the caption box center as percentages of the frame
// dimensions, so one style renders correctly at any resolution.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Options is the flat set of caption rendering parameters.
//
// FontSize is a percentage of frame height; MaxWidth a percentage of
// frame width; Padding a percentage of the computed font size.
// BorderRadius and effect offsets are in frame pixels.
type Options struct {
	ForegroundColor   string  `json:"foregroundColor"`
	ForegroundOpacity float64 `json:"foregroundColorOpacity"`
	BackgroundColor   string  `json:"backgroundColor"`
	BackgroundOpacity float64 `json:"backgroundOpacity"`

	FontFamily string  `json:"fontFamily"`
	FontSize   float64 `json:"fontSize"`
	FontWeight int     `json:"fontWeight"`

	Padding      float64 `json:"padding"`
	BorderRadius float64 `json:"borderRadius"`
	MaxWidth     float64 `json:"maxWidth"`

	Position Position `json:"position"`
	Align    Align    `json:"textAlign"`

	Effect Effect `json:"effect"`

	ShadowColor   string  `json:"shadowColor"`
	ShadowBlur    float64 `json:"shadowBlur"`
	ShadowOffsetX float64 `json:"shadowOffsetX"`
	ShadowOffsetY float64 `json:"shadowOffsetY"`

	StrokeColor string  `json:"strokeColor"`
	StrokeWidth float64 `json:"strokeWidth"`
}

// Default returns the baseline caption look: white text on a dark
// rounded box, lower third, centered.
func Default() Options {
	return Options{
		ForegroundColor:   "#ffffff",
		ForegroundOpacity: 1.0,
		BackgroundColor:   "#000000",
		BackgroundOpacity: 0.6,
		FontFamily:        "sans",
		FontSize:          5.0,
		FontWeight:        700,
		Padding:           40.0,
		BorderRadius:      8.0,
		MaxWidth:          80.0,
		Position:          Position{X: 50, Y: 85},
		Align:             AlignCenter,
		Effect:            EffectNone,
		ShadowColor:       "#000000",
		ShadowBlur:        4.0,
		ShadowOffsetX:     2.0,
		ShadowOffsetY:     2.0,
		StrokeColor:       "#000000",
		StrokeWidth:       2.0,
	}
}
