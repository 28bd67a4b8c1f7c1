// Command powertype runs the effects engine inside a small demo editor.
// Typing feeds document-change events through the coordinator; deletions
// explode, streaks charge the combo meter, and XP persists across runs.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/gdamore/tcell/v2"

	"github.com/lowrez/powertype/audio"
	"github.com/lowrez/powertype/config"
	"github.com/lowrez/powertype/engine"
	"github.com/lowrez/powertype/events"
	"github.com/lowrez/powertype/render"
	"github.com/lowrez/powertype/service"
	"github.com/lowrez/powertype/status"
	"github.com/lowrez/powertype/storage"
)

const frameInterval = 33 * time.Millisecond

// hostConfig covers the demo host choices that are not engine settings
type hostConfig struct {
	Storage   string `env:"POWERTYPE_STORAGE" envDefault:"auto"`
	DBPath    string `env:"POWERTYPE_DB" envDefault:"powertype.db"`
	RedisAddr string `env:"POWERTYPE_REDIS"`
	Mute      bool   `env:"POWERTYPE_MUTE" envDefault:"false"`
}

var (
	storageFlag = flag.String("storage", "", "Progress store: auto, memory, sqlite, redis")
	dbFlag      = flag.String("db", "", "SQLite database path")
	redisFlag   = flag.String("redis", "", "Redis address (host:port)")
	muteFlag    = flag.Bool("mute", false, "Disable audio output")
)

func main() {
	flag.Parse()

	host := hostConfig{}
	if err := env.Parse(&host); err != nil {
		log.Printf("host env: %v", err)
	}
	if *storageFlag != "" {
		host.Storage = *storageFlag
	}
	if *dbFlag != "" {
		host.DBPath = *dbFlag
	}
	if *redisFlag != "" {
		host.RedisAddr = *redisFlag
	}
	if *muteFlag {
		host.Mute = true
	}

	settings, err := config.FromEnv()
	if err != nil {
		log.Printf("settings: %v (using defaults)", err)
	}

	store := openStore(host)
	defer store.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	// Restore the terminal before the stack trace hits stderr
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\npowertype crashed: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	if err := run(screen, store, settings, host.Mute); err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "powertype: %v\n", err)
		os.Exit(1)
	}
}

// openStore picks the progress backend: explicit selection wins, auto
// tries redis then sqlite then memory. All writes go through the async
// wrapper so persistence never blocks the engine loop
func openStore(host hostConfig) storage.Store {
	open := func(kind string) storage.Store {
		switch kind {
		case "redis":
			if host.RedisAddr == "" {
				log.Printf("storage: redis selected but no address configured")
				return nil
			}
			s, err := storage.OpenRedis(host.RedisAddr)
			if err != nil {
				log.Printf("storage: redis %s: %v", host.RedisAddr, err)
				return nil
			}
			return s
		case "sqlite":
			s, err := storage.OpenSQLite(host.DBPath)
			if err != nil {
				log.Printf("storage: sqlite %s: %v", host.DBPath, err)
				return nil
			}
			return s
		case "memory":
			return storage.NewMemoryStore()
		}
		log.Printf("storage: unknown backend %q", kind)
		return nil
	}

	var inner storage.Store
	switch host.Storage {
	case "auto", "":
		if host.RedisAddr != "" {
			inner = open("redis")
		}
		if inner == nil {
			inner = open("sqlite")
		}
	default:
		inner = open(host.Storage)
	}
	if inner == nil {
		log.Printf("storage: falling back to in-memory store, progress will not persist")
		inner = storage.NewMemoryStore()
	}
	return storage.NewAsync(inner)
}

func run(screen tcell.Screen, store storage.Store, settings config.Settings, mute bool) error {
	loop := engine.NewLoop()
	loop.Start()
	defer loop.Stop()

	registry := status.NewRegistry()
	dispatcher := events.NewDispatcher()
	coordinator := engine.NewCoordinator(
		engine.SystemClock{},
		engine.NewLoopScheduler(loop),
		store,
		settings,
		dispatcher,
		registry,
	)

	renderer := render.NewRenderer(screen, registry, coordinator.Settings(), time.Now().UnixNano())
	audioService := audio.NewService()

	hub := service.NewHub()
	if err := hub.Register(audioService); err != nil {
		return err
	}
	if err := hub.Register(renderer); err != nil {
		return err
	}
	if err := hub.InitAll(mute); err != nil {
		return fmt.Errorf("init services: %w", err)
	}
	if err := hub.StartAll(); err != nil {
		return fmt.Errorf("start services: %w", err)
	}
	defer hub.StopAll()

	dispatcher.Register(renderer)
	dispatcher.Register(audioService)

	buffer := newEditor()
	queue := events.NewQueue()
	quit := make(chan struct{})

	// Input goroutine: translate terminal input into engine events.
	// The queue hands them to the loop goroutine, which owns all state
	go func() {
		for {
			switch ev := screen.PollEvent().(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
					close(quit)
					return
				}
				for _, engineEvent := range buffer.handleKey(ev) {
					queue.Push(engineEvent)
				}
			case *tcell.EventResize:
				screen.Sync()
			case nil:
				return
			}
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-quit:
			return nil
		case <-ticker.C:
			// Dropped posts mean a skipped frame, never a stall
			loop.Post(func() {
				for _, ev := range queue.Consume() {
					coordinator.HandleEvent(ev)
				}

				now := time.Now()
				screen.Clear()
				ox, oy := renderer.Offset(now)
				buffer.draw(screen, ox, oy)
				renderer.Frame(now)
				screen.Show()
			})
		}
	}
}
