package core

import "fmt"

// Color is a 24-bit RGB foreground/background color for a screen cell.
// The top byte is a validity flag so the zero value means "terminal default".
type Color uint32

// ColorDefault leaves the terminal's own color untouched.
const ColorDefault Color = 0

const colorSet = 1 << 24

// NewColor builds a Color from 8-bit channels.
func NewColor(r, g, b uint8) Color {
	return Color(colorSet | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// FromRGB builds a Color from a packed 0xRRGGBB value, as produced by the
// texture generator and frame buffer.
func FromRGB(rgb uint32) Color {
	return Color(colorSet | rgb&0xFFFFFF)
}

// IsSet reports whether the color carries an explicit RGB value.
func (c Color) IsSet() bool {
	return c&colorSet != 0
}

// RGB returns the 8-bit channels. All zero for ColorDefault.
func (c Color) RGB() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// Hex returns the "#rrggbb" form lipgloss understands.
func (c Color) Hex() string {
	r, g, b := c.RGB()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// Darken halves each channel, dimming content drawn behind overlay boxes.
func (c Color) Darken() Color {
	if !c.IsSet() {
		return c
	}
	r, g, b := c.RGB()
	return NewColor(r/2, g/2, b/2)
}

// Predefined colors for HUD and menu elements.
var (
	ColorWhite  = NewColor(0xEE, 0xEE, 0xEE)
	ColorGray   = NewColor(0x88, 0x88, 0x88)
	ColorRed    = NewColor(0xCC, 0x33, 0x33)
	ColorGreen  = NewColor(0x33, 0xCC, 0x55)
	ColorYellow = NewColor(0xE6, 0xC8, 0x4A)
	ColorBlue   = NewColor(0x44, 0x66, 0xDD)
	ColorOrange = NewColor(0xE6, 0x8A, 0x2E)
)
