package models

// BackgroundType selects between a solid color and a two-color gradient.
type BackgroundType string

const (
	BackgroundSolid    BackgroundType = "solid"
	BackgroundGradient BackgroundType = "gradient"
)

// AppSettings holds presentation state. It plays no part in streak or
// reward computation.
type AppSettings struct {
	DarkMode        bool           `json:"dark_mode"`
	BackgroundType  BackgroundType `json:"background_type"`
	BackgroundColor string         `json:"background_color"`
	GradientColors  []string       `json:"gradient_colors,omitempty"`
}
