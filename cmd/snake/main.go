package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"snake/internal/app"
	"snake/internal/display"
	"snake/internal/domain"
	"snake/internal/ui/graphics"
	"snake/internal/ui/graphics/screens"
)

var (
	themeFlag = flag.String("theme", string(display.ThemeDark), "Start theme: dark or light")
	seedFlag  = flag.Int64("seed", 0, "Food RNG seed (0 uses the clock)")
	debugFlag = flag.Bool("debug", false, "Show tick diagnostics")
)

func main() {
	log.SetFlags(log.Ltime | log.Lshortfile)
	flag.Parse()

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("Food seed %d", seed)

	application, err := app.NewApp(domain.DefaultGameConfig(),
		app.WithTheme(display.ThemeName(*themeFlag)),
		app.WithSeed(seed),
	)
	if err != nil {
		log.Fatalf("Failed to create app: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	engine := graphics.NewEngine(application.Viewport(), *debugFlag)
	engine.SetFrame(application.Frame())

	game := screens.NewGameScreen(engine)
	engine.RegisterScreens(game, screens.NewGameOverScreen(engine, game))

	if err := application.Start(ctx); err != nil {
		log.Fatalf("Failed to start app: %v", err)
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Println("Shutting down...")
		application.Stop()
		cancel()
		os.Exit(0)
	}()

	go handleAppEvents(application, engine)
	go handleUIEvents(application, engine)

	if err := engine.Run(); err != nil {
		log.Fatalf("UI error: %v", err)
	}

	application.Stop()
}

func handleAppEvents(application *app.App, engine *graphics.Engine) {
	for event := range application.Events() {
		switch event.Type {
		case app.AppEventStateUpdated, app.AppEventThemeChanged:
			engine.SetFrame(application.Frame())

		case app.AppEventViewportChanged:
			if vp, ok := event.Payload.(display.Viewport); ok {
				engine.SetViewport(vp)
			}
			engine.SetFrame(application.Frame())

		case app.AppEventSpeedChanged:
			log.Printf("Speed changed: %v", event.Payload)

		case app.AppEventGameOver:
			if payload, ok := event.Payload.(app.GameOverPayload); ok {
				log.Printf("Game over: %s, score %d", payload.Outcome, payload.Score)
			}
			engine.SetFrame(application.Frame())
		}
	}
}

func handleUIEvents(application *app.App, engine *graphics.Engine) {
	for event := range engine.Events() {
		input, ok := event.ToInput()
		if !ok {
			log.Printf("Ignoring malformed UI event %d", event.Type)
			continue
		}

		select {
		case application.Input() <- input:
		default:
			log.Println("Input channel full, dropping input")
		}
	}
}
