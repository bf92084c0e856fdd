package ebitenview

import (
	"context"
	"errors"
	"image/color"
	"log"
	"sync"
	"time"

	"evacplanner/internal/adapter/metrics/inmemory"
	"evacplanner/internal/adapter/view"
	"evacplanner/internal/app/session"
	"evacplanner/internal/domain/grid"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	calculateLabel = "Calculate"
	glyphW         = 6
	glyphH         = 16
)

type MetricsSource interface {
	Snapshot() inmemory.Snapshot
}

type Options struct {
	CellSize       int
	Title          string
	RequestTimeout time.Duration
	Metrics        MetricsSource
	Logger         *log.Logger
}

// Game draws one session and feeds it pointer and keyboard input. Path
// requests run off the update loop and are bounded by RequestTimeout.
type Game struct {
	session *session.Session
	control *session.Control
	layout  view.Layout
	router  view.Router
	metrics MetricsSource
	logger  *log.Logger
	title   string
	timeout time.Duration

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func New(s *session.Session, opts Options) *Game {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = 10 * time.Second
	}
	ctx, cancel := context.WithCancel(context.Background())
	g := &Game{
		session: s,
		control: session.NewControl(calculateLabel),
		layout:  view.NewLayout(s.Bounds(), opts.CellSize),
		metrics: opts.Metrics,
		logger:  opts.Logger,
		title:   opts.Title,
		timeout: opts.RequestTimeout,
		ctx:     ctx,
		cancel:  cancel,
	}
	g.router = view.Router{Layout: g.layout, Target: s, Compute: g.computePath, Logger: opts.Logger}
	return g
}

// Run opens the window and blocks until it is closed.
func (g *Game) Run() error {
	w, h := g.layout.ScreenSize()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(g.title)
	defer g.Close()
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

// Close cancels in-flight path requests and waits for them to return.
func (g *Game) Close() {
	g.cancel()
	g.wg.Wait()
}

func (g *Game) computePath() {
	if g.control.Busy() {
		return
	}
	g.wg.Add(1)
	go func() {
		defer g.wg.Done()
		ctx, cancel := context.WithTimeout(g.ctx, g.timeout)
		defer cancel()
		if err := g.session.ComputePath(ctx, g.control); err != nil {
			g.logger.Printf("[view] compute path: %v", err)
		}
	}()
}

func (g *Game) Update() error {
	x, y := ebiten.CursorPosition()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.router.Press(view.PointerPrimary, x, y)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		g.router.Press(view.PointerSecondary, x, y)
	}

	for i, key := range []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5} {
		if inpututil.IsKeyJustPressed(key) {
			g.router.SelectHazardIndex(i)
		}
	}
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyP), inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		g.router.Shortcut(view.ShortcutCompute)
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		g.router.Shortcut(view.ShortcutClearPath)
	case inpututil.IsKeyJustPressed(ebiten.KeyX):
		g.router.Shortcut(view.ShortcutClearAll)
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		g.router.Shortcut(view.ShortcutDismiss)
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(view.ColorBackground)
	g.drawToolbar(screen)
	g.drawGrid(screen)
	g.drawStatus(screen)
}

func (g *Game) Layout(_, _ int) (int, int) {
	return g.layout.ScreenSize()
}

func (g *Game) drawToolbar(screen *ebiten.Image) {
	selected := g.session.SelectedHazardType()
	for _, b := range g.layout.Buttons {
		r := b.Rect
		fill := view.ColorButton
		label := b.Label
		switch b.ID {
		case view.ButtonCalculate:
			label = g.control.Label()
			if g.control.Busy() {
				fill = view.ColorButtonBusy
			}
		case view.ButtonSwatch:
			fill = view.HazardColor(b.Hazard)
			label = ""
		}
		fillRect(screen, r, fill)
		if b.ID == view.ButtonSwatch && b.Hazard == selected {
			strokeRect(screen, r, 2, view.ColorSelected)
		}
		if label != "" {
			ebitenutil.DebugPrintAt(screen, view.ASCII(label), r.X+(r.W-len(label)*glyphW)/2, r.Y+(r.H-glyphH)/2)
		}
	}
}

func (g *Game) drawGrid(screen *ebiten.Image) {
	frame := g.session.Frame()
	for _, cell := range frame.Cells {
		r := g.layout.CellRect(cell.Pos)
		fillRect(screen, r, view.CellColor(cell))
		strokeRect(screen, r, 1, view.ColorGridLine)
		if cell.Category != grid.CategoryEmpty {
			ebitenutil.DebugPrintAt(screen, string(cell.Mark), r.X+(r.W-glyphW)/2, r.Y+(r.H-glyphH)/2)
		}
	}
}

func (g *Game) drawStatus(screen *ebiten.Image) {
	x, y := g.layout.StatusOrigin()
	w, _ := g.layout.ScreenSize()
	if n, ok := g.session.Notice(); ok {
		fillRect(screen, view.Rect{X: x, Y: y, W: w, H: view.StatusHeight / 2}, view.SeverityColor(n.Severity))
		ebitenutil.DebugPrintAt(screen, view.ASCII(n.Message), x+6, y+3)
	}
	var m inmemory.Snapshot
	if g.metrics != nil {
		m = g.metrics.Snapshot()
	}
	ebitenutil.DebugPrintAt(screen, view.StatusLine(g.session.Snapshot(), m), x+6, y+view.StatusHeight/2+3)
}

func fillRect(dst *ebiten.Image, r view.Rect, c color.Color) {
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
}

func strokeRect(dst *ebiten.Image, r view.Rect, width float32, c color.Color) {
	vector.StrokeRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), width, c, false)
}
