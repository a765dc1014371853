package entity

const (
	MinScale = 1
	MaxScale = 2
)

// Settings are the user preferences the host restores on start.
type Settings struct {
	Scale      int    `json:"scale"`
	Theme      string `json:"theme"`
	SoundState int    `json:"sound_state"`
}

func (that Settings) IsValidScale() bool {
	return that.Scale >= MinScale && that.Scale <= MaxScale
}

// Color is an RGB triple.
type Color struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// Theme is a named palette used by the asset collaborator to recolor sprites.
type Theme struct {
	ID                int64  `json:"id"`
	Name              string `json:"name"`
	BackgroundColor   Color  `json:"background_color"`
	NonClickableColor Color  `json:"non_clickable_color"`
	ClickableColor    Color  `json:"clickable_color"`
	TextColor         Color  `json:"text_color"`
	HoveredColor      Color  `json:"hovered_color"`
	InterfaceColor    Color  `json:"interface_color"`
}

// Colors returns the palette in the fixed order the sprite recoloring expects.
func (that Theme) Colors() [6]Color {
	return [6]Color{
		that.BackgroundColor,
		that.NonClickableColor,
		that.ClickableColor,
		that.TextColor,
		that.HoveredColor,
		that.InterfaceColor,
	}
}
