package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"snake/internal/app"
	"snake/internal/display"
	"snake/internal/domain"
	"snake/internal/ui/terminal"

	"github.com/gdamore/tcell/v2"
)

var (
	themeFlag = flag.String("theme", string(display.ThemeDark), "Start theme: dark or light")
	seedFlag  = flag.Int64("seed", 0, "Food RNG seed (0 uses the clock)")
	debugFlag = flag.Bool("debug", false, "Write a log file under ./logs")
)

func main() {
	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "snake-term: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	application, err := app.NewApp(domain.DefaultGameConfig(),
		app.WithTheme(display.ThemeName(*themeFlag)),
		app.WithSeed(seed),
	)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("problem creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init problem: %w", err)
	}
	defer screen.Fini()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := application.Start(ctx); err != nil {
		return err
	}
	defer application.Stop()

	return terminal.NewRunner(screen, application).Run(ctx)
}
