// Package render draws a top-down terminal view of the assembly table through tcell
package render

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/quad-snap/core"
	"github.com/lixenwraith/quad-snap/engine"
	"github.com/lixenwraith/quad-snap/identity"
	"github.com/lixenwraith/quad-snap/parameter"
	"github.com/lixenwraith/quad-snap/vmath"
)

// Glyphs
const (
	glyphSnapPoint = '·'
	glyphSlot      = '□'
	glyphSlotFull  = '■'
	glyphUnknown   = '?'
)

// statusMetrics are shown on the bottom line in this order
var statusMetrics = []struct {
	label string
	name  string
}{
	{"joins", "snap.joins"},
	{"rejects", "snap.rejects"},
	{"merges", "merge.count"},
	{"locks", "place.locks"},
	{"events", "event.pending"},
}

// HUD carries host state shown in the header
type HUD struct {
	Paused  bool
	Guided  bool
	Muted   bool
	Clients int
}

// Viewer projects the world's X/Z plane onto the screen
type Viewer struct {
	screen tcell.Screen

	// World bounds mapped to the map area
	MinX, MaxX float64
	MinZ, MaxZ float64
}

// NewViewer creates a viewer covering the default table and wall
func NewViewer(screen tcell.Screen) *Viewer {
	return &Viewer{
		screen: screen,
		MinX:   -2, MaxX: 2,
		MinZ: -0.5, MaxZ: 2.5,
	}
}

// Project maps a world position to a screen cell inside the map area
func (v *Viewer) Project(p vmath.Vec3F) (x, y int) {
	width, height := v.screen.Size()
	mapH := height - 2
	if width < 1 || mapH < 1 {
		return 0, 1
	}
	fx := (p.X - v.MinX) / (v.MaxX - v.MinX)
	fz := (p.Z - v.MinZ) / (v.MaxZ - v.MinZ)
	x = clamp(int(fx*float64(width-1)+0.5), 0, width-1)
	y = 1 + clamp(int(fz*float64(mapH-1)+0.5), 0, mapH-1)
	return x, y
}

// Draw renders one frame; callers hold the world lock
func (v *Viewer) Draw(w *engine.World, hud HUD) {
	v.screen.Clear()
	v.drawHeader(w, hud)
	v.drawSlots(w)
	v.drawSnapPoints(w)
	v.drawPieces(w)
	v.drawStatus(w)
	v.screen.Show()
}

func (v *Viewer) drawHeader(w *engine.World, hud HUD) {
	reg := w.Resources.Registry
	var b strings.Builder
	fmt.Fprintf(&b, "quad-snap  frame %d  locked %d/%d", w.FrameNumber(), reg.Completed(), reg.Total())
	if reg.Fired() {
		b.WriteString("  COMPLETE")
	}
	if hud.Guided {
		b.WriteString("  [guide]")
	}
	if hud.Paused {
		b.WriteString("  [paused]")
	}
	if hud.Muted {
		b.WriteString("  [muted]")
	}
	if hud.Clients > 0 {
		fmt.Fprintf(&b, "  feed:%d", hud.Clients)
	}

	style := RGBHeader.Style()
	if reg.Fired() {
		style = RGBComplete.Style().Bold(true)
	}
	v.text(0, 0, b.String(), style)
}

func (v *Viewer) drawSlots(w *engine.World) {
	cs := w.Components
	reg := w.Resources.Registry
	for _, e := range cs.Collider.All() {
		if cs.TagOf(e) != parameter.EndSnapPointTag {
			continue
		}
		x, y := v.Project(w.WorldPosition(e))
		if reg.Occupied(e) {
			v.screen.SetContent(x, y, glyphSlotFull, nil, RGBSlotFull.Style())
			continue
		}
		v.screen.SetContent(x, y, glyphSlot, nil, RGBSlot.Style())
	}
}

func (v *Viewer) drawSnapPoints(w *engine.World) {
	cs := w.Components
	for _, e := range cs.Collider.All() {
		if cs.TagOf(e) != parameter.SnapPointTag {
			continue
		}
		if c, _ := cs.Collider.Get(e); !c.Enabled {
			continue
		}
		x, y := v.Project(w.WorldPosition(e))
		v.screen.SetContent(x, y, glyphSnapPoint, nil, RGBSnapPoint.Style())
	}
}

// drawPieces draws loose pieces first so anchors stay visible on top of their group
func (v *Viewer) drawPieces(w *engine.World) {
	cs := w.Components
	var anchors []core.Entity
	for _, e := range cs.Piece.All() {
		if cs.Assembly.Has(e) {
			anchors = append(anchors, e)
			continue
		}
		v.drawPiece(w, e)
	}
	for _, e := range anchors {
		v.drawPiece(w, e)
	}
}

func (v *Viewer) drawPiece(w *engine.World, e core.Entity) {
	cs := w.Components
	glyph := PieceGlyph(cs.NameOf(e))

	style := RGBLoose.Style()
	if p, _ := cs.Piece.Get(e); p.Joined {
		style = RGBJoined.Style()
	}
	if a, ok := cs.Assembly.Get(e); ok {
		glyph = unicode.ToUpper(glyph)
		style = RGBAnchor.Style().Bold(true)
		if a.Locked {
			style = RGBLocked.Style().Bold(true)
		}
	}
	if l, ok := cs.Locker.Get(e); ok && l.Pinned() {
		style = RGBHeld.Style().Reverse(true)
	}

	x, y := v.Project(w.WorldPosition(e))
	v.screen.SetContent(x, y, glyph, nil, style)
}

func (v *Viewer) drawStatus(w *engine.World) {
	_, height := v.screen.Size()
	st := w.Resources.Status
	parts := make([]string, 0, len(statusMetrics))
	for _, m := range statusMetrics {
		parts = append(parts, fmt.Sprintf("%s %d", m.label, st.Value(m.name)))
	}
	v.text(0, height-1, strings.Join(parts, "  "), RGBSnapPoint.Blend(RGBHeader, 0.5).Style())
}

func (v *Viewer) text(x, y int, s string, style tcell.Style) {
	width, _ := v.screen.Size()
	for _, r := range s {
		if x >= width {
			return
		}
		v.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

// PieceGlyph returns the lowercase letter of a piece name, '?' when it has none
func PieceGlyph(name string) rune {
	letter := identity.LetterKey(name)
	if letter == "" {
		return glyphUnknown
	}
	return []rune(letter)[0]
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
