package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"runtime/debug"
	"time"

	"github.com/lixenwraith/quad-snap/asset"
	"github.com/lixenwraith/quad-snap/audio"
	"github.com/lixenwraith/quad-snap/core"
	"github.com/lixenwraith/quad-snap/engine"
	"github.com/lixenwraith/quad-snap/network"
	"github.com/lixenwraith/quad-snap/scene"
	"github.com/lixenwraith/quad-snap/system"
)

var (
	sceneFlag    = flag.String("scene", "", "Scene YAML file (default: embedded six-letter table)")
	listenFlag   = flag.String("listen", "", "Serve the websocket observer feed on this address, e.g. :8080")
	headlessFlag = flag.Bool("headless", false, "Run without a terminal until completion or -ticks")
	ticksFlag    = flag.Int("ticks", 20000, "Tick limit in headless mode")
	guideFlag    = flag.Bool("guide", true, "Start with the scripted hand enabled")
	muteFlag     = flag.Bool("mute", false, "Disable audio cues")
	logFlag      = flag.String("log", "", "Log file (default: discarded in terminal mode, stderr when headless)")
)

// app bundles everything the sandbox front ends share
type app struct {
	world   *engine.World
	doc     *scene.Document
	systems *system.Set
	audio   *audio.Engine
	hub     *network.Hub
}

func main() {
	flag.Parse()
	os.Exit(run())
}

// run returns the process exit code so deferred cleanup always happens
func run() int {
	if err := setupLog(*logFlag, *headlessFlag); err != nil {
		fmt.Fprintf(os.Stderr, "log: %v\n", err)
		return 1
	}

	doc, err := loadScene(*sceneFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "scene: %v\n", err)
		return 1
	}

	a := newApp(doc)
	if _, err := scene.Build(a.world, doc); err != nil {
		fmt.Fprintf(os.Stderr, "scene: %v\n", err)
		return 1
	}

	if !*headlessFlag && !*muteFlag {
		a.startAudio()
		defer a.audio.Stop()
	}

	if *listenFlag != "" {
		srv := a.serveFeed(*listenFlag)
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()
			a.hub.Close()
			if err := srv.Shutdown(ctx); err != nil {
				log.Printf("[feed] shutdown: %v", err)
			}
		}()
	}

	if *headlessFlag {
		return runHeadless(a, *ticksFlag)
	}

	if err := runTerminal(a); err != nil {
		fmt.Fprintf(os.Stderr, "terminal: %v\n", err)
		return 1
	}
	return 0
}

func setupLog(path string, headless bool) error {
	log.SetFlags(log.Ltime | log.Lmicroseconds)
	switch {
	case path != "":
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open %s: %w", path, err)
		}
		log.SetOutput(f)
	case !headless:
		// Keep the tcell screen clean
		log.SetOutput(io.Discard)
	}
	return nil
}

func loadScene(path string) (*scene.Document, error) {
	if path == "" {
		return scene.Load([]byte(asset.DefaultScene))
	}
	return scene.LoadFile(path)
}

func newApp(doc *scene.Document) *app {
	w := engine.NewWorld()
	a := &app{
		world: w,
		doc:   doc,
		audio: audio.NewEngine(),
	}
	w.Resources.Completion = &engine.CompletionResource{
		OnComplete: func() {
			log.Printf("[quad-snap] all %d assemblies locked at frame %d", w.Resources.Registry.Total(), w.FrameNumber())
		},
	}
	a.systems = system.Install(w, *guideFlag)
	return a
}

func (a *app) startAudio() {
	if err := a.audio.Start(); err != nil {
		log.Printf("[audio] start failed: %v (continuing without audio)", err)
		return
	}
	a.world.Resources.Audio = &engine.AudioResource{Player: a.audio}
}

func (a *app) serveFeed(addr string) *http.Server {
	a.hub = network.NewHub(network.HubConfig{Logger: log.Default()})
	a.world.RegisterHandler(network.NewFeed(a.hub))

	srv := &http.Server{
		Addr:              addr,
		Handler:           network.Mux(a.hub),
		ReadHeaderTimeout: 5 * time.Second,
	}
	core.Go(func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("[feed] server stopped: %v", err)
		}
	})
	log.Printf("[feed] serving session %s on %s", a.hub.Session(), addr)
	return srv
}

// reset rebuilds the scene in place; callers hold the world lock
func (a *app) reset() {
	if _, err := scene.Reload(a.world, a.doc); err != nil {
		log.Printf("[quad-snap] reset failed: %v", err)
	}
}

func (a *app) clients() int {
	if a.hub == nil {
		return 0
	}
	return a.hub.ClientCount()
}

// crashed restores the terminal through fini and prints the panic
func crashed(fini func()) func(any) {
	return func(r any) {
		if fini != nil {
			fini()
		}
		fmt.Fprintf(os.Stderr, "\r\n\x1b[31mQUAD-SNAP CRASHED: %v\x1b[0m\r\n", r)
		fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
		os.Exit(1)
	}
}
