package graphics

import (
	"log"
	"sync"

	"snake/internal/app"
	"snake/internal/display"
	"snake/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
)

type Engine struct {
	width  int
	height int
	debug  bool

	currentScreen types.ScreenType
	screenMap     map[types.ScreenType]types.Screen

	frame           app.Frame
	viewport        display.Viewport
	viewportChanged bool
	quitting        bool

	dataMu sync.RWMutex

	eventCh chan types.UIEvent
}

// NewEngine opens the window at the app's starting viewport.
func NewEngine(vp display.Viewport, debug bool) *Engine {
	types.InitFonts()

	e := &Engine{
		width:         vp.Width,
		height:        vp.Height,
		debug:         debug,
		viewport:      vp,
		currentScreen: types.ScreenGame,
		screenMap:     make(map[types.ScreenType]types.Screen),
		eventCh:       make(chan types.UIEvent, 100),
	}

	return e
}

func (e *Engine) RegisterScreens(game types.Screen, gameOver types.Screen) {
	e.screenMap[types.ScreenGame] = game
	e.screenMap[types.ScreenGameOver] = gameOver
}

func (e *Engine) Run() error {
	ebiten.SetWindowSize(e.width, e.height)
	ebiten.SetWindowTitle("Snake")

	return ebiten.RunGame(e)
}

func (e *Engine) Update() error {
	if e.quitting {
		return ebiten.Termination
	}

	e.applyViewport()

	if e.Frame().Over() && e.currentScreen == types.ScreenGame {
		e.SetScreen(types.ScreenGameOver)
	}

	screen := e.screenMap[e.currentScreen]
	if screen == nil {
		return nil
	}
	event := screen.Update()

	e.handleEvent(event)

	return nil
}

func (e *Engine) Draw(screen *ebiten.Image) {
	currentScreen := e.screenMap[e.currentScreen]
	if currentScreen == nil {
		return
	}

	currentScreen.Draw(screen)
}

// Layout pins the logical canvas to the viewport; ebiten scales it to the
// window or monitor.
func (e *Engine) Layout(outsideWidth, outsideHeight int) (int, int) {
	return e.Size()
}

func (e *Engine) Size() (int, int) {
	e.dataMu.RLock()
	defer e.dataMu.RUnlock()
	if e.frame.Viewport.Width <= 0 || e.frame.Viewport.Height <= 0 {
		return e.width, e.height
	}
	return e.frame.Viewport.Width, e.frame.Viewport.Height
}

func (e *Engine) Frame() app.Frame {
	e.dataMu.RLock()
	defer e.dataMu.RUnlock()
	return e.frame
}

func (e *Engine) Debug() bool {
	return e.debug
}

func (e *Engine) Events() <-chan types.UIEvent {
	return e.eventCh
}

func (e *Engine) SetScreen(screen types.ScreenType) {
	if e.currentScreen != screen {
		if s := e.screenMap[e.currentScreen]; s != nil {
			s.OnExit()
		}
		e.currentScreen = screen
		if s := e.screenMap[e.currentScreen]; s != nil {
			s.OnEnter()
		}
	}
}

func (e *Engine) SetFrame(frame app.Frame) {
	e.dataMu.Lock()
	e.frame = frame
	e.dataMu.Unlock()
}

// SetViewport schedules a window change for the next Update, which runs on
// the main thread.
func (e *Engine) SetViewport(vp display.Viewport) {
	e.dataMu.Lock()
	e.viewport = vp
	e.viewportChanged = true
	e.dataMu.Unlock()
}

func (e *Engine) applyViewport() {
	e.dataMu.Lock()
	if !e.viewportChanged {
		e.dataMu.Unlock()
		return
	}
	vp := e.viewport
	e.viewportChanged = false
	e.dataMu.Unlock()

	ebiten.SetFullscreen(vp.Fullscreen)
	if !vp.Fullscreen {
		ebiten.SetWindowSize(vp.Width, vp.Height)
	}
}

func (e *Engine) handleEvent(event types.UIEvent) {
	switch event.Type {
	case types.UIEventNone:
		return

	case types.UIEventToggleFullscreen:
		w, h := ebiten.Monitor().Size()
		event.Payload = types.FullscreenData{ScreenWidth: w, ScreenHeight: h}
		e.send(event)

	case types.UIEventQuit:
		e.quitting = true
		select {
		case e.eventCh <- event:
		default:
		}

	default:
		e.send(event)
	}
}

func (e *Engine) send(event types.UIEvent) {
	select {
	case e.eventCh <- event:
	default:
		log.Println("Event channel full, dropping event")
	}
}
