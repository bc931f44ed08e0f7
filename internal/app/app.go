//go:build ebiten

package app

import (
	"log/slog"

	"lifeboard/internal/core"
	"lifeboard/internal/logging"
	"lifeboard/internal/render"
	"lifeboard/internal/sim"
	"lifeboard/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var keyActions = []struct {
	keys   []ebiten.Key
	action ui.Action
}{
	{[]ebiten.Key{ebiten.KeyQ, ebiten.KeyEscape}, ui.ActionQuit},
	{[]ebiten.Key{ebiten.KeySpace}, ui.ActionStartStop},
	{[]ebiten.Key{ebiten.KeyN}, ui.ActionStep},
	{[]ebiten.Key{ebiten.KeyR}, ui.ActionRandom},
	{[]ebiten.Key{ebiten.KeyC}, ui.ActionClear},
	{[]ebiten.Key{ebiten.KeyG}, ui.ActionToggleGrid},
}

// Game adapts a session to the ebiten.Game interface.
type Game struct {
	session *sim.Session
	step    *core.FixedStep
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	log     *slog.Logger

	scale         int
	size          core.Size
	width, height int
}

// New constructs a Game for the provided session.
func New(session *sim.Session, scale int, logger *slog.Logger) *Game {
	if logger == nil {
		logger = logging.Discard()
	}
	size := session.Size()
	painter := render.NewGridPainter(size.Rows, size.Cols)
	w, h := WindowSize(size, scale, ui.PanelWidth)
	return &Game{
		session: session,
		step:    core.NewFixedStep(session.Delay()),
		painter: painter,
		overlay: ui.NewOverlay(painter, size, scale),
		hud:     ui.NewHUD(session, ui.PanelWidth),
		log:     logger,
		scale:   scale,
		size:    size,
		width:   w,
		height:  h,
	}
}

// Update handles input and advances the simulation when the delay elapsed.
func (g *Game) Update() error {
	boardWidth := g.size.Cols * g.scale

	for _, ka := range keyActions {
		for _, k := range ka.keys {
			if inpututil.IsKeyJustPressed(k) {
				if err := g.dispatch(ka.action); err != nil {
					return err
				}
			}
		}
	}

	if err := g.dispatch(g.hud.Update(boardWidth)); err != nil {
		return err
	}

	g.overlay.Update()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		if i, k, ok := render.CellAt(mx, my, g.scale, g.size.Rows, g.size.Cols); ok && !g.hud.Contains(mx) {
			g.session.Toggle(i, k)
		}
	}

	return g.advance()
}

// advance ticks the session once the delay has elapsed.
func (g *Game) advance() error {
	g.step.SetInterval(g.session.Delay())
	if g.step.ShouldStep() {
		g.session.Tick()
	}
	return nil
}

func (g *Game) dispatch(a ui.Action) error {
	switch a {
	case ui.ActionNone:
		return nil
	case ui.ActionQuit:
		return ebiten.Termination
	case ui.ActionToggleGrid:
		g.overlay.ToggleGrid()
	case ui.ActionStartStop:
		ui.Apply(a, g.session)
		if g.session.Running() {
			// The first generation after Start is produced on this frame.
			g.step.Reset()
		}
	default:
		ui.Apply(a, g.session)
	}
	g.log.Debug("action", "action", a.String(), "generation", g.session.Generation())
	return nil
}

// Draw renders the board, overlay and HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(render.DeadColor)
	g.painter.Blit(screen, g.session.Grid(), render.AliveColor, render.DeadColor, g.scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.size.Cols*g.scale, g.height)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
