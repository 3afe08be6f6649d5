package main

import (
	"fmt"
	"image/color"
	"log"
	"strings"

	"github.com/deitrix/brickfall/cell"
	"github.com/deitrix/brickfall/config"
	"github.com/deitrix/brickfall/engine"
	"github.com/deitrix/brickfall/piece"
	"github.com/deitrix/brickfall/sprite"
	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
)

const (
	// cellSize is the size of each cell in pixels
	cellSize = 32
	// wallThickness is the thickness of the walls on the left and right sides of the board.
	wallThickness = 1
	// floorThickness is the thickness of the floor at the bottom of the board.
	floorThickness = 1
	// panelWidth is the width, in cells, of the side panels
	panelWidth = 6
)

// bindings maps keys to actions. When several are held, the first match wins.
var bindings = []struct {
	key    ebiten.Key
	action engine.Action
}{
	{ebiten.KeyUp, engine.ActionRotate},
	{ebiten.KeyDown, engine.ActionDrop},
	{ebiten.KeySpace, engine.ActionDrop},
	{ebiten.KeyLeft, engine.ActionLeft},
	{ebiten.KeyRight, engine.ActionRight},
}

// decodeInput turns the held keys into a single action sample.
func decodeInput(pressed func(ebiten.Key) bool) engine.Action {
	for _, b := range bindings {
		if pressed(b.key) {
			return b.action
		}
	}
	return engine.ActionNone
}

type Game struct {
	// Config is the configuration every new game starts from
	Config engine.Config
	// Loop drives the current game
	Loop *engine.Loop
	// Differ tracks what has been painted so that only changed cells are repainted. The
	// screen is not cleared between frames.
	Differ engine.Differ
	// ID tags the current game in the log
	ID uuid.UUID
	// ShowDebug is a flag that indicates whether debug information should be shown
	ShowDebug bool
	// ReportedOver is set once the end of the current game has been logged
	ReportedOver bool
	// ScreenWidth is the width of the screen in pixels
	ScreenWidth int
	// ScreenHeight is the height of the screen in pixels
	ScreenHeight int
}

func NewGame(cfg engine.Config) *Game {
	g := &Game{Config: cfg}
	g.start()
	return g
}

func (g *Game) start() {
	g.ID = uuid.New()
	g.ReportedOver = false
	state := engine.New(g.Config)
	clock := engine.NewClock(g.Config.ClockPeriod)
	if g.Loop == nil {
		g.Loop = engine.NewLoop(state, clock)
	} else {
		g.Loop.Reset(state, clock)
	}
	g.Differ.Invalidate()
	log.Printf("game %s started (seed %d)", g.ID, g.Config.Seed)
}

func (g *Game) Reset() {
	log.Printf("game %s reset at score %d", g.ID, g.Loop.State().Score())
	g.Config.Seed++
	g.start()
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset()
		return nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyI) {
		g.ShowDebug = !g.ShowDebug
		g.Differ.Invalidate()
		return nil
	}

	g.Loop.Step(decodeInput(ebiten.IsKeyPressed))

	if s := g.Loop.State(); s.GameOver() && !g.ReportedOver {
		g.ReportedOver = true
		log.Printf("game %s over: score %d, lines %d", g.ID, s.Score(), s.LinesCleared())
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	frame := g.Differ.Next(g.Loop.State())
	if frame.Full {
		screen.Fill(cell.Empty.NRGBA())
		g.drawWalls(screen, frame.Width, frame.Height)
	}
	for _, c := range frame.Changes {
		x := (panelWidth + wallThickness + c.Col) * cellSize
		y := c.Row * cellSize
		if c.Occupied {
			drawCell(screen, sprite.Cell, x, y, cellSize, cellSize, cell.Locked, 255)
		} else {
			drawCell(screen, sprite.Blank, x, y, cellSize, cellSize, cell.Empty, 255)
		}
	}
	if frame.QueueChanged {
		g.drawQueue(screen, frame.Upcoming, frame.Width)
	}
	if frame.ScoreChanged || frame.StatusChanged || g.ShowDebug {
		g.drawInfo(screen, frame)
	}
}

func (g *Game) Layout(_, _ int) (screenWidth, screenHeight int) {
	g.ScreenWidth = (2*panelWidth + g.Config.Width + 2*wallThickness) * cellSize
	g.ScreenHeight = max((g.Config.Height+floorThickness)*cellSize, cellSize+3*g.Config.QueueSize*cellSize)
	return g.ScreenWidth, g.ScreenHeight
}

func (g *Game) drawWalls(screen *ebiten.Image, width, height int) {
	for y := 0; y < height+floorThickness; y++ {
		for x := 0; x < width+2*wallThickness; x++ {
			if x < wallThickness || x >= width+wallThickness || y >= height {
				drawCell(screen, sprite.Cell, (panelWidth+x)*cellSize, y*cellSize, cellSize, cellSize, cell.Wall, 255)
			}
		}
	}
}

func (g *Game) drawQueue(screen *ebiten.Image, upcoming []piece.Kind, boardWidth int) {
	left := (panelWidth + boardWidth + 2*wallThickness) * cellSize
	drawCell(screen, sprite.Blank, left, 0, panelWidth*cellSize, g.ScreenHeight, cell.Empty, 255)
	for i, k := range upcoming {
		p := piece.Piece{Kind: k}.Shape().TrimSpace()
		xoff := left + 3*cellSize - p.Width*cellSize/2
		yoff := 2*cellSize + i*(3*cellSize) - p.Height*cellSize/2
		renderShape(screen, p, xoff, yoff, cell.ForKind(k))
	}
}

func (g *Game) drawInfo(screen *ebiten.Image, frame engine.Frame) {
	drawCell(screen, sprite.Blank, 0, 0, panelWidth*cellSize, g.ScreenHeight, cell.Empty, 255)
	drawText(screen, sprite.Regular, "Score", 24, 12, g.ScreenHeight-96, color.White)
	drawText(screen, sprite.Regular, fmt.Sprintf("%d", frame.Score), 24, 100, g.ScreenHeight-96, color.White)
	drawText(screen, sprite.Regular, "Lines", 24, 12, g.ScreenHeight-48, color.White)
	drawText(screen, sprite.Regular, fmt.Sprintf("%d", frame.LinesCleared), 24, 100, g.ScreenHeight-48, color.White)
	if frame.GameOver {
		drawText(screen, sprite.Regular, "GAME OVER", 28, 12, 48, color.NRGBA{R: 0xf0, A: 0xff})
		drawText(screen, sprite.Regular, "Press R to restart", 16, 12, 80, color.White)
	}
	g.drawDebug(screen, frame)
}

func (g *Game) drawDebug(screen *ebiten.Image, frame engine.Frame) {
	if !g.ShowDebug {
		return
	}
	clock := g.Loop.Clock()
	lines := []string{
		fmt.Sprintf("FPS: %0.2f", ebiten.ActualFPS()),
		fmt.Sprintf("TPS: %0.2f", ebiten.ActualTPS()),
		fmt.Sprintf("Phase: %s", frame.Phase),
		fmt.Sprintf("Clock: %d/%d", clock.Current(), clock.Period()),
		fmt.Sprintf("Stopped: %t", clock.Stopped()),
		fmt.Sprintf("Repainted: %d", len(frame.Changes)),
		fmt.Sprintf("Seed: %d", g.Config.Seed),
	}
	if frame.Spawned {
		lines = append(lines,
			fmt.Sprintf("Piece: %s", frame.FallingKind),
			fmt.Sprintf("At: %d,%d", frame.FallingX, frame.FallingY),
		)
	}
	drawText(screen, sprite.Monospace, strings.Join(lines, "\n"), 12, 12, 128, color.White)
}

var fontFaceCache = make(map[*opentype.Font]map[float64]font.Face)

func drawText(img *ebiten.Image, f *opentype.Font, t string, size float64, x, y int, c color.Color) {
	if _, ok := fontFaceCache[f]; !ok {
		fontFaceCache[f] = make(map[float64]font.Face)
	}
	if _, ok := fontFaceCache[f][size]; !ok {
		var err error
		fontFaceCache[f][size], err = opentype.NewFace(f, &opentype.FaceOptions{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingNone,
		})
		if err != nil {
			log.Fatalf("failed to create face: %v", err)
		}
	}
	text.Draw(img, t, fontFaceCache[f][size], x, y, c)
}

func renderShape(screen *ebiten.Image, s piece.Shape, xoff, yoff int, tint cell.Tint) {
	s.Cells(func(x, y int) bool {
		drawCell(screen, sprite.Cell, x*cellSize+xoff, y*cellSize+yoff, cellSize, cellSize, tint, 255)
		return true
	})
}

func drawCell(screen *ebiten.Image, img *ebiten.Image, x, y, width, height int, tint cell.Tint, opacity uint8) {
	var op ebiten.DrawImageOptions
	op.ColorScale.ScaleWithColor(tint.NRGBA())
	op.ColorScale.ScaleAlpha(float32(opacity) / 255)
	op.GeoM.Scale(float64(width)/float64(img.Bounds().Dx()), float64(height)/float64(img.Bounds().Dy()))
	op.GeoM.Translate(float64(x), float64(y))
	screen.DrawImage(img, &op)
}

func main() {
	log.SetFlags(0)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if err := sprite.Load(); err != nil {
		log.Fatalf("failed to load sprites: %v", err)
	}

	ebiten.SetWindowTitle("brickfall")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(60)
	ebiten.SetScreenClearedEveryFrame(false)
	g := NewGame(cfg)
	w, h := g.Layout(0, 0)
	ebiten.SetWindowSize(w, h)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatalf("failed to run game: %v", err)
	}
}
