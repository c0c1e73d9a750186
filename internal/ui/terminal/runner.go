package terminal

import (
	"context"
	"errors"
	"log"

	"snake/internal/app"
	"snake/internal/ui/types"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"
)

var ErrQuit = errors.New("quit requested")

type Runner struct {
	screen tcell.Screen
	view   *View
	app    *app.App
}

func NewRunner(screen tcell.Screen, application *app.App) *Runner {
	return &Runner{
		screen: screen,
		view:   NewView(screen),
		app:    application,
	}
}

// Run draws frames and feeds key presses to the app until the user quits
// or ctx is cancelled. The screen is finalized on return.
func (r *Runner) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	events := make(chan tcell.Event, 100)

	g.Go(func() error {
		for {
			ev := r.screen.PollEvent()
			if ev == nil {
				return nil
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return nil
			}
		}
	})

	g.Go(func() error {
		<-ctx.Done()
		// Unblocks PollEvent.
		r.screen.Fini()
		return nil
	})

	g.Go(func() error {
		r.view.Draw(r.app.Frame())
		for {
			select {
			case <-ctx.Done():
				return nil

			case ev := <-events:
				if err := r.handleTerminalEvent(ev); err != nil {
					return err
				}

			case event := <-r.app.Events():
				r.handleAppEvent(event)
			}
		}
	})

	err := g.Wait()
	if errors.Is(err, ErrQuit) {
		return nil
	}
	return err
}

func (r *Runner) handleTerminalEvent(ev tcell.Event) error {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return r.dispatch(Translate(ev))

	case *tcell.EventResize:
		r.screen.Sync()
		r.view.Draw(r.app.Frame())
	}
	return nil
}

// dispatch forwards a key intent to the app's input loop. Quit also ends
// the runner.
func (r *Runner) dispatch(event types.UIEvent) error {
	if event.Type == types.UIEventToggleFullscreen {
		w, h := r.view.ScreenSize(r.app.Viewport().CellSize())
		event.Payload = types.FullscreenData{ScreenWidth: w, ScreenHeight: h}
	}

	input, ok := event.ToInput()
	if !ok {
		return nil
	}

	select {
	case r.app.Input() <- input:
	default:
		log.Println("TERM: input channel full, dropping input")
	}

	if input.Type == app.InputQuit {
		log.Println("TERM: quit")
		return ErrQuit
	}
	return nil
}

func (r *Runner) handleAppEvent(event app.AppEvent) {
	switch event.Type {
	case app.AppEventGameOver:
		if payload, ok := event.Payload.(app.GameOverPayload); ok {
			log.Printf("TERM: game over: %s, score %d", payload.Outcome, payload.Score)
		}
	case app.AppEventSpeedChanged:
		return
	}
	r.view.Draw(r.app.Frame())
}
