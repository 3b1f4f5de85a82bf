package colors

// Color is an RGBA8 color, laid out the way the vertex color attribute expects it.
type Color [4]uint8

var (
	White       = Color{255, 255, 255, 255}
	Red         = Color{255, 0, 0, 255}
	Green       = Color{0, 255, 0, 255}
	Blue        = Color{0, 0, 255, 255}
	Black       = Color{0, 0, 0, 255}
	Magenta     = Color{255, 0, 255, 255}
	Cyan        = Color{0, 255, 255, 255}
	Yellow      = Color{255, 255, 0, 255}
	Gray        = Color{128, 128, 128, 255}
	LightGray   = Color{170, 175, 180, 255}
	DarkGray    = Color{20, 25, 30, 255}
	Transparent = Color{}
)

func RGBA(r, g, b, a uint8) Color { return Color{r, g, b, a} }

func (c Color) WithAlpha(a uint8) Color {
	c[3] = a
	return c
}

// Floats returns the color normalized to [0,1], e.g. for a target clear.
func (c Color) Floats() (r, g, b, a float32) {
	return float32(c[0]) / 255, float32(c[1]) / 255, float32(c[2]) / 255, float32(c[3]) / 255
}
