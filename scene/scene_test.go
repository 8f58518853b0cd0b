package scene

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lixenwraith/quad-snap/engine"
	"github.com/lixenwraith/quad-snap/event"
	"github.com/lixenwraith/quad-snap/parameter"
	"github.com/lixenwraith/quad-snap/vmath"
)

const smallScene = `
snap_distance: 0.01
merge_threshold: 2
constrained_letters: [L]
effect: fx
fixtures:
  - name: wall
    position: {x: 0, y: 1.5, z: 2}
pieces:
  - name: logo-l-middle[0]
    position: {x: 1, y: 0.5, z: 0}
    grab: true
    locker: true
    letter: N
    snap_points:
      - {name: "snap-top", offset: {x: 0, y: 0.1, z: 0}}
      - {name: "snap-bottom", offset: {x: 0, y: -0.1, z: 0}, radius: 0.05}
  - name: logo-l-top[0]
    position: {x: 1.2, y: 0.3, z: 0.5}
    grab: true
    helper: true
slots:
  - name: end-logo-n-middle[0]
    parent: wall
    position: {x: 0.5, y: 0, z: -0.1}
`

func mustLoad(t *testing.T, src string) *Document {
	t.Helper()
	doc, err := Load([]byte(src))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return doc
}

func TestLoadParsesDocument(t *testing.T) {
	doc := mustLoad(t, smallScene)

	if len(doc.Pieces) != 2 || len(doc.Slots) != 1 || len(doc.Fixtures) != 1 {
		t.Fatalf("Unexpected counts: %d pieces, %d slots, %d fixtures", len(doc.Pieces), len(doc.Slots), len(doc.Fixtures))
	}
	if doc.SnapDistance == nil || *doc.SnapDistance != 0.01 {
		t.Errorf("snap_distance not parsed: %v", doc.SnapDistance)
	}
	if doc.EndSnapDistance != nil {
		t.Error("Absent override should stay nil")
	}
	if got := doc.Pieces[0].SnapPoints[1].Radius; got != 0.05 {
		t.Errorf("Expected point radius 0.05, got %v", got)
	}
	if doc.Anchors() != 1 {
		t.Errorf("Expected 1 anchor, got %d", doc.Anchors())
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"no pieces", `fixtures: [{name: wall}]`, "no pieces"},
		{"unnamed piece", `pieces: [{position: {x: 0, y: 0, z: 0}}]`, "without a name"},
		{"duplicate", `
pieces: [{name: a}]
slots: [{name: a}]`, "already used"},
		{"slot parent", `
pieces: [{name: a}]
slots: [{name: s, parent: wall}]`, "not a fixture"},
		{"fixture order", `
fixtures: [{name: child, parent: wall}, {name: wall}]
pieces: [{name: a}]`, "not an earlier fixture"},
		{"override on non-middle", `pieces: [{name: logo-i-top, letter: x}]`, "not a middle piece"},
		{"negative total", `
total_required: -1
pieces: [{name: a}]`, "negative"},
		{"merge threshold", `
merge_threshold: 0
pieces: [{name: a}]`, "must be positive"},
		{"zero snap distance", `
snap_distance: 0
pieces: [{name: a}]`, "snap_distance 0.000 must be positive"},
		{"negative end snap distance", `
end_snap_distance: -0.02
pieces: [{name: a}]`, "end_snap_distance"},
		{"negative search radius", `
anchor_search_radius: -1
pieces: [{name: a}]`, "anchor_search_radius"},
		{"negative piece radius", `pieces: [{name: a, radius: -0.1}]`, "radius -0.100 is negative"},
		{"negative point radius", `pieces: [{name: a, snap_points: [{name: p, radius: -1}]}]`, "snap point"},
		{"negative slot radius", `
pieces: [{name: a}]
slots: [{name: s, radius: -0.03}]`, "slot \"s\" radius"},
		{"unnamed point", `pieces: [{name: a, snap_points: [{offset: {x: 0, y: 0, z: 0}}]}]`, "unnamed snap point"},
		{"effect collides", `
effect: a
pieces: [{name: a}]`, "collides"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load([]byte(tt.src))
			if err == nil {
				t.Fatal("Expected error")
			}
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("Expected ErrInvalid, got %v", err)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Expected %q in %q", tt.want, err.Error())
			}
		})
	}
}

func TestLoadSyntaxError(t *testing.T) {
	_, err := Load([]byte("pieces: [unclosed"))
	if err == nil || errors.Is(err, ErrInvalid) {
		t.Fatalf("Expected a parse error, got %v", err)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.yaml")
	if err := os.WriteFile(path, []byte(smallScene), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(path); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	_, err := LoadFile(filepath.Join(dir, "missing.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected ErrNotExist, got %v", err)
	}
}

func TestBuildWiresComponents(t *testing.T) {
	w := engine.NewWorld()
	layout, err := Build(w, mustLoad(t, smallScene))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	cs := w.Components

	anchor := layout.Lookup("logo-l-middle[0]")
	if anchor == 0 || len(layout.Anchors) != 1 || layout.Anchors[0] != anchor {
		t.Fatalf("Anchor not registered: %v", layout.Anchors)
	}
	body, _ := cs.Body.Get(anchor)
	if !body.Kinematic || body.UseGravity {
		t.Error("Anchor should default to kinematic without gravity")
	}
	asm, ok := cs.Assembly.Get(anchor)
	if !ok || asm.LetterOverride != "n" {
		t.Errorf("Expected lowercase letter override, got %+v", asm)
	}
	if !cs.Locker.Has(anchor) || !cs.Interaction.Has(anchor) {
		t.Error("Anchor missing grab or locker")
	}

	points := w.Children(anchor)
	if len(points) != 2 {
		t.Fatalf("Expected 2 snap points, got %d", len(points))
	}
	for _, p := range points {
		if cs.TagOf(p) != parameter.SnapPointTag {
			t.Errorf("%s not tagged", cs.NameOf(p))
		}
		c, _ := cs.Collider.Get(p)
		if !c.IsTrigger || !c.Enabled {
			t.Errorf("%s should be an enabled trigger", cs.NameOf(p))
		}
		want := parameter.DefaultSnapPointRadius
		if cs.NameOf(p) == "snap-bottom" {
			want = 0.05
		}
		if c.Radius != want {
			t.Errorf("%s radius %v, want %v", cs.NameOf(p), c.Radius, want)
		}
	}
	if got := w.WorldPosition(points[0]); vmath.V3FDist(got, vmath.V3F(1, 0.6, 0)) > 1e-9 {
		t.Errorf("snap-top at %v", got)
	}

	top := layout.Lookup("logo-l-top[0]")
	tb, _ := cs.Body.Get(top)
	if tb.Kinematic || !tb.UseGravity {
		t.Error("Loose piece should be dynamic")
	}
	if cs.Locker.Has(top) {
		t.Error("Locker added without locker: true")
	}
	helpers := w.Children(top)
	if len(helpers) != 1 || cs.NameOf(helpers[0]) != parameter.HelperColliderName {
		t.Fatalf("Expected helper collider child, got %v", helpers)
	}
	hc, _ := cs.Collider.Get(helpers[0])
	if hc.IsTrigger || hc.Radius != parameter.DefaultColliderRadius*parameter.HelperColliderScale {
		t.Errorf("Unexpected helper collider %+v", hc)
	}

	slot := layout.Lookup("end-logo-n-middle[0]")
	if cs.TagOf(slot) != parameter.EndSnapPointTag || w.Parent(slot) != layout.Lookup("wall") {
		t.Error("Slot not tagged or not parented to the wall")
	}
	if got := w.WorldPosition(slot); vmath.V3FDist(got, vmath.V3F(0.5, 1.5, 1.9)) > 1e-9 {
		t.Errorf("Slot at %v", got)
	}

	if layout.Effect == 0 || !cs.Effect.Has(layout.Effect) {
		t.Fatal("Effect not built")
	}
	if w.Resources.Completion == nil || w.Resources.Completion.Effect != layout.Effect {
		t.Error("Completion not pointed at the effect")
	}
}

func TestBuildAppliesConfig(t *testing.T) {
	w := engine.NewWorld()
	if _, err := Build(w, mustLoad(t, smallScene)); err != nil {
		t.Fatal(err)
	}
	cfg := w.Resources.Config
	if cfg.SnapDistance != 0.01 || cfg.MergeThreshold != 2 {
		t.Errorf("Overrides not applied: %+v", cfg)
	}
	if cfg.EndSnapDistance != parameter.EndSnapDistance {
		t.Error("Absent override changed the default")
	}
	if !cfg.IsConstrained("l") || cfg.IsConstrained("n") {
		t.Errorf("Constrained letters %v", cfg.ConstrainedLetters)
	}
	// total_required omitted: one anchor
	if got := w.Resources.Registry.Total(); got != 1 {
		t.Errorf("Expected total 1, got %d", got)
	}
}

func TestBuildKeepsCompletionCallback(t *testing.T) {
	w := engine.NewWorld()
	called := false
	w.Resources.Completion = &engine.CompletionResource{OnComplete: func() { called = true }}

	if _, err := Build(w, mustLoad(t, smallScene)); err != nil {
		t.Fatal(err)
	}
	w.Resources.Completion.OnComplete()
	if !called {
		t.Error("OnComplete replaced")
	}
}

func TestReload(t *testing.T) {
	w := engine.NewWorld()
	doc := mustLoad(t, smallScene)
	if _, err := Build(w, doc); err != nil {
		t.Fatal(err)
	}
	w.Resources.Config.EndSnapDistance = 1
	w.Resources.Registry.RecordLock()
	before := w.EntityCount()

	layout, err := Reload(w, doc)
	if err != nil {
		t.Fatalf("Reload: %v", err)
	}
	if w.EntityCount() != before {
		t.Errorf("Expected %d entities after reload, got %d", before, w.EntityCount())
	}
	if w.Resources.Config.EndSnapDistance != parameter.EndSnapDistance {
		t.Error("Runtime tunable survived reload")
	}
	if w.Resources.Registry.Completed() != 0 {
		t.Error("Registry not reset")
	}
	if !w.Alive(layout.Lookup("logo-l-top[0]")) {
		t.Error("Rebuilt piece not alive")
	}

	events := w.Resources.Events.Consume()
	if len(events) != 1 || events[0].Type != event.EventSessionReset {
		t.Errorf("Expected one session reset, got %v", events)
	}
}
