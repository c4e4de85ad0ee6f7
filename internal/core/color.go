package core

// Color represents a foreground color for a screen cell.
// Values map to ANSI 256-color codes in the platform renderer.
type Color uint8

// Palette used by the renderer. The platform owns the actual escape codes.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorWhite
	ColorBrightRed
	ColorBrightWhite
	ColorPurple   // snake body (#8A2BE2 on the start page)
	ColorLavender // snake head (#A855F7)
	ColorCoral    // food (#FF4D4D)
	ColorCharcoal // board background (#111111 on the start page, dimmed dots here)
	ColorGray     // HUD secondary text
)
