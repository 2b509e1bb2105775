package main

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/whiskerking/platformer/ecs"
	"github.com/whiskerking/platformer/ecs/component"
	"github.com/whiskerking/platformer/ecs/entity"
	"github.com/whiskerking/platformer/ecs/system"
	"github.com/whiskerking/platformer/physics"
	"github.com/whiskerking/platformer/prefabs"
)

const (
	baseWidth  = 1280
	baseHeight = 720

	// side-view projection: world X/Y onto the screen, meters to pixels
	pixelsPerMeter = 40.0
)

type Game struct {
	frames int

	world  *ecs.World
	player ecs.Entity
	pw     *physics.World

	paused  bool
	debug   bool
	watcher *prefabs.Watcher
}

func NewGame(arenaName, scenarioName string, debug bool) (*Game, error) {
	playerSpec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}
	arenaSpec, err := prefabs.LoadArenaSpec(arenaName)
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}

	pw := physics.NewWorld()
	spawn, err := entity.BuildArena(pw, arenaSpec)
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}

	w := ecs.NewWorld()

	if scenarioName != "" {
		src, err := prefabs.LoadScript(scenarioName)
		if err != nil {
			return nil, fmt.Errorf("game: %w", err)
		}
		scenario, err := system.NewScenarioSystem(scenarioName, src)
		if err != nil {
			return nil, fmt.Errorf("game: %w", err)
		}
		w.AddSystem(scenario)
	} else {
		w.AddSystem(system.NewInputSystem())
	}
	w.AddSystem(system.NewInputBufferSystem())
	w.AddSystem(system.NewPlayerControllerSystem())
	w.AddSystem(system.NewAttackSystem())
	w.AddSystem(system.NewTTLSystem())
	w.AddSystem(system.NewRespawnSystem())

	player, err := entity.NewPlayer(w, pw, playerSpec, spawn)
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}

	g := &Game{
		world:  w,
		player: player,
		pw:     pw,
		debug:  debug,
	}

	// live tuning: only works when running next to the prefabs directory
	if watcher, err := prefabs.NewWatcher("prefabs"); err == nil {
		g.watcher = watcher
	} else {
		log.Printf("prefab watcher disabled: %v", err)
	}

	return g, nil
}

func (g *Game) Update() error {
	g.frames++

	g.drainWatcher()

	if g.paused {
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			g.paused = false
		}
		return nil
	}

	g.world.Update()

	if buf, ok := ecs.Get(g.world, g.player, component.InputBufferComponent.Kind()); ok {
		if buf.Consume(component.InputPause, g.world.Now()) {
			g.paused = true
		}
	}

	return nil
}

func (g *Game) drainWatcher() {
	if g.watcher == nil {
		return
	}
	reload := false
	for {
		select {
		case _, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			reload = true
		case err := <-g.watcher.Errors:
			if err != nil {
				log.Printf("prefab watcher: %v", err)
			}
		default:
			if reload {
				g.reloadTuning()
			}
			return
		}
	}
}

func (g *Game) reloadTuning() {
	spec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		log.Printf("tuning reload rejected: %v", err)
		return
	}
	if pl, ok := ecs.Get(g.world, g.player, component.PlayerComponent.Kind()); ok {
		*pl = spec.Tuning()
		log.Printf("tuning reloaded from player.yaml")
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	// side view: world origin at screen center, ground line near the bottom
	toScreen := func(x, y float64) (float32, float32) {
		return float32(baseWidth/2 + x*pixelsPerMeter), float32(baseHeight - 120 - y*pixelsPerMeter)
	}

	for _, b := range g.pw.Boxes() {
		sx, sy := toScreen(b.Min.X, b.Max.Y)
		w := float32((b.Max.X - b.Min.X) * pixelsPerMeter)
		h := float32((b.Max.Y - b.Min.Y) * pixelsPerMeter)
		vector.DrawFilledRect(screen, sx, sy, w, h, colornames.Darkslategray, false)
	}

	body, _ := ecs.Get(g.world, g.player, component.BodyComponent.Kind())
	motion, _ := ecs.Get(g.world, g.player, component.MotionComponent.Kind())
	if body != nil && body.Mover != nil {
		pos := body.Mover.Position()
		height := body.Mover.Height()
		radius := 0.4
		if c, ok := body.Mover.(*physics.Capsule); ok {
			radius = c.Radius()
		}
		sx, sy := toScreen(pos.X-radius, pos.Y+height)
		vector.DrawFilledRect(screen, sx, sy, float32(2*radius*pixelsPerMeter), float32(height*pixelsPerMeter), colornames.Crimson, false)
	}

	ecs.ForEach(g.world, component.AttackSwipeComponent.Kind(), func(_ ecs.Entity, s *component.AttackSwipe) {
		sx, sy := toScreen(s.Origin.X+s.Direction.X, s.Origin.Y+1)
		vector.DrawFilledCircle(screen, sx, sy, 8, colornames.Gold, false)
	})

	ebitenutil.DebugPrint(screen, fmt.Sprintf("Frames: %d    FPS: %.2f", g.frames, ebiten.ActualFPS()))
	if g.paused {
		ebitenutil.DebugPrintAt(screen, "PAUSED (esc to resume)", baseWidth/2-80, 20)
	}
	if g.debug && motion != nil {
		buf, _ := ecs.Get(g.world, g.player, component.InputBufferComponent.Kind())
		rep, _ := ecs.Get(g.world, g.player, component.BounceReportComponent.Kind())
		now := g.world.Now()
		msg := fmt.Sprintf(
			"state: %s\nvel: (%.2f, %.2f, %.2f)\ngrounded: %t  doubleJump: %t\nbuffered jumps: %d  latency: %.0fms\nbounced recently: %t",
			motion.StateName(),
			motion.Velocity.X, motion.Velocity.Y, motion.Velocity.Z,
			motion.Grounded, motion.CanDoubleJump && !motion.HasUsedDoubleJump,
			buf.Count(component.InputJump, now),
			buf.AverageLatency()*1000,
			rep.BouncedRecently(now, 0.5),
		)
		ebitenutil.DebugPrintAt(screen, msg, 0, 20)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return baseWidth, baseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
