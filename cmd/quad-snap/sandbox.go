package main

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/quad-snap/core"
	"github.com/lixenwraith/quad-snap/engine"
	"github.com/lixenwraith/quad-snap/parameter"
	"github.com/lixenwraith/quad-snap/render"
)

// runHeadless steps until completion or the tick limit and prints a summary
func runHeadless(a *app, ticks int) int {
	w := a.world
	reg := w.Resources.Registry

	start := time.Now()
	n := 0
	for ; n < ticks && !reg.Fired(); n++ {
		w.Step(parameter.PhysicsTickInterval)
	}

	st := w.Resources.Status
	fmt.Printf("ticks %d (%.1fs game, %s wall)\n", n, float64(n)*parameter.PhysicsTickInterval.Seconds(), time.Since(start).Round(time.Millisecond))
	fmt.Printf("joins %d  rejects %d  merges %d  locks %d  locked %d/%d\n",
		st.Value("snap.joins"), st.Value("snap.rejects"), st.Value("merge.count"),
		st.Value("place.locks"), reg.Completed(), reg.Total())

	if !reg.Fired() {
		fmt.Println("incomplete")
		return 2
	}
	fmt.Println("complete")
	return 0
}

// runTerminal runs the interactive viewer until q, Escape or Ctrl-C
func runTerminal(a *app) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	core.SetCrashHandler(crashed(screen.Fini))
	defer core.SetCrashHandler(nil)

	viewer := render.NewViewer(screen)
	loop := engine.NewLoop(a.world, engine.NewTimeProvider(), parameter.PhysicsTickInterval)
	loop.Start(nil)
	defer loop.Stop()

	eventChan := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	core.Go(func() { forwardEvents(screen, eventChan, done) })

	frameTicker := time.NewTicker(parameter.FrameUpdateInterval)
	defer frameTicker.Stop()

	draw := func() {
		a.world.RunSafe(func() {
			viewer.Draw(a.world, render.HUD{
				Paused:  loop.IsPaused(),
				Guided:  a.systems.Guide.Enabled(),
				Muted:   a.audio.IsMuted(),
				Clients: a.clients(),
			})
		})
	}

	for {
		select {
		case ev := <-eventChan:
			if !a.handleInput(ev, loop, screen) {
				return nil
			}
			draw()
		case <-frameTicker.C:
			draw()
		}
	}
}

// forwardEvents pumps screen events into out until the screen finalizes or done closes
func forwardEvents(screen tcell.Screen, out chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case out <- ev:
		case <-done:
			return
		}
	}
}

// handleInput applies one terminal event; false quits
func (a *app) handleInput(ev tcell.Event, loop *engine.Loop, screen tcell.Screen) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() != tcell.KeyRune {
			return true
		}
		switch ev.Rune() {
		case 'q':
			return false
		case 'p', ' ':
			loop.SetPaused(!loop.IsPaused())
		case 'r':
			a.world.RunSafe(a.reset)
		case 'g':
			a.world.RunSafe(func() {
				a.systems.Guide.SetEnabled(!a.systems.Guide.Enabled())
			})
		case 'm':
			a.audio.ToggleMute()
		case 's':
			// Single step while paused
			if loop.IsPaused() {
				a.world.Step(parameter.PhysicsTickInterval)
			}
		}
	case *tcell.EventResize:
		screen.Sync()
	}
	return true
}
