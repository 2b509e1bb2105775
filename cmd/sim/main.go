// Command sim runs a scenario script against the simulation without a
// window, logging the player trajectory. Useful for tuning passes and for
// checking that a movement change still clears the demo course.
package main

import (
	"flag"
	"log"

	"github.com/whiskerking/platformer/ecs"
	"github.com/whiskerking/platformer/ecs/component"
	"github.com/whiskerking/platformer/ecs/entity"
	"github.com/whiskerking/platformer/ecs/system"
	"github.com/whiskerking/platformer/physics"
	"github.com/whiskerking/platformer/prefabs"
)

func main() {
	arenaName := flag.String("arena", "arena", "arena spec in prefabs/ (basename, .yaml optional)")
	scenarioName := flag.String("scenario", "demo.tengo", "scenario script in prefabs/scripts/")
	ticks := flag.Int("ticks", 600, "number of fixed steps to simulate")
	every := flag.Int("every", 15, "log the player every N ticks")
	flag.Parse()

	playerSpec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		log.Fatal(err)
	}
	arenaSpec, err := prefabs.LoadArenaSpec(*arenaName)
	if err != nil {
		log.Fatal(err)
	}
	src, err := prefabs.LoadScript(*scenarioName)
	if err != nil {
		log.Fatal(err)
	}

	pw := physics.NewWorld()
	spawn, err := entity.BuildArena(pw, arenaSpec)
	if err != nil {
		log.Fatal(err)
	}

	w := ecs.NewWorld()

	scenario, err := system.NewScenarioSystem(*scenarioName, src)
	if err != nil {
		log.Fatal(err)
	}
	w.AddSystem(scenario)
	w.AddSystem(system.NewInputBufferSystem())
	w.AddSystem(system.NewPlayerControllerSystem())
	w.AddSystem(system.NewAttackSystem())
	w.AddSystem(system.NewTTLSystem())
	w.AddSystem(system.NewRespawnSystem())

	player, err := entity.NewPlayer(w, pw, playerSpec, spawn)
	if err != nil {
		log.Fatal(err)
	}

	for i := 0; i < *ticks; i++ {
		w.Update()
		if *every > 0 && w.Tick()%uint64(*every) == 0 {
			logPlayer(w, player)
		}
	}
	logPlayer(w, player)

	if buf, ok := ecs.Get(w, player, component.InputBufferComponent.Kind()); ok {
		log.Printf("average consume latency: %.1fms", buf.AverageLatency()*1000)
	}
}

func logPlayer(w *ecs.World, player ecs.Entity) {
	m, okM := ecs.Get(w, player, component.MotionComponent.Kind())
	tr, okT := ecs.Get(w, player, component.TransformComponent.Kind())
	if !okM || !okT {
		return
	}
	log.Printf("tick %4d  %-5s  pos (%6.2f, %6.2f, %6.2f)  vel (%6.2f, %6.2f, %6.2f)",
		w.Tick(), m.StateName(),
		tr.Position.X, tr.Position.Y, tr.Position.Z,
		m.Velocity.X, m.Velocity.Y, m.Velocity.Z)
}
