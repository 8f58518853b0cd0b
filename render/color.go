package render

import "github.com/gdamore/tcell/v2"

// RGB stores explicit 8-bit color channels, decoupled from tcell
type RGB struct {
	R, G, B uint8
}

// Palette
var (
	RGBBlack     = RGB{0, 0, 0}
	RGBLoose     = RGB{200, 200, 200}
	RGBAnchor    = RGB{90, 160, 255}
	RGBJoined    = RGB{80, 220, 120}
	RGBLocked    = RGB{255, 210, 60}
	RGBHeld      = RGB{255, 120, 200}
	RGBSlot      = RGB{60, 200, 220}
	RGBSlotFull  = RGB{120, 120, 140}
	RGBSnapPoint = RGB{90, 90, 110}
	RGBHeader    = RGB{230, 230, 230}
	RGBComplete  = RGB{255, 90, 255}
)

// Blend performs alpha blending: result = src*alpha + dst*(1-alpha)
func (dst RGB) Blend(src RGB, alpha float64) RGB {
	if alpha <= 0 {
		return dst
	}
	if alpha >= 1 {
		return src
	}
	inv := 1.0 - alpha
	return RGB{
		R: uint8(float64(src.R)*alpha + float64(dst.R)*inv),
		G: uint8(float64(src.G)*alpha + float64(dst.G)*inv),
		B: uint8(float64(src.B)*alpha + float64(dst.B)*inv),
	}
}

// Color converts to a tcell true color
func (c RGB) Color() tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Style returns a default-background style with c as foreground
func (c RGB) Style() tcell.Style {
	return tcell.StyleDefault.Foreground(c.Color())
}
