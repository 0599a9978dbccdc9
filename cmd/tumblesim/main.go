// Command tumblesim is a headless demo driver for the simulation core:
// it loads a YAML fixture, steps the world on a fixed tick, and prints
// each ball's state and bounce energy to the console. It subscribes
// log handlers to the world's switch, goal, jump and item events, but
// the loop only calls sim.StepAll, which dispatches none of them, so
// those handlers do not fire. It performs no
// rendering and reads no input device — there is nothing in a
// collision/motion core for either to drive — so unlike a typical game
// loop this is a plain time.Ticker rather than a windowed application.
package main

import (
	"flag"
	"os"
	"time"

	"github.com/tumbleworld/core/fixture"
	"github.com/tumbleworld/core/math32"
	"github.com/tumbleworld/core/sim"
	"github.com/tumbleworld/core/util/logger"
	"github.com/tumbleworld/core/world"
)

var log = logger.New("TUMBLESIM", logger.Default)

func main() {
	fixturePath := flag.String("fixture", "", "path to a YAML world fixture")
	dt := flag.Float64("dt", 1.0/60.0, "seconds per tick")
	steps := flag.Int("steps", 300, "number of ticks to run (0 = run until interrupted)")
	gy := flag.Float64("gravity", -9.8, "gravity Y component")
	flag.Parse()

	log.SetLevel(logger.DEBUG)

	if *fixturePath == "" {
		log.Fatal("a -fixture path is required")
	}

	data, err := os.ReadFile(*fixturePath)
	if err != nil {
		log.Fatal("reading fixture: %v", err)
	}

	w, err := fixture.Load(data)
	if err != nil {
		log.Fatal("loading fixture: %v", err)
	}
	log.Info("loaded fixture with %d balls, %d bodies", len(w.Balls), len(w.Bodies))

	g := math32.Vector3{X: 0, Y: float32(*gy), Z: 0}
	rest := make([]int, len(w.Balls))

	tick := time.NewTicker(time.Duration(*dt * float64(time.Second)))
	defer tick.Stop()

	subscribe(w)

	n := 0
	for range tick.C {
		energies := sim.StepAll(w, g, float32(*dt), rest)
		for i, e := range energies {
			u := &w.Balls[i]
			log.Debug("ball %d at %v moving %v", i, u.P, u.V)
			if e > 0 {
				log.Debug("ball %d bounced with energy %.3f", i, e)
			}
		}
		n++
		if *steps > 0 && n >= *steps {
			break
		}
	}
}

func subscribe(w *world.World) {
	w.Subscribe(world.EventSwitch, func(name string, ev interface{}) {
		data := ev.(world.SwitchEventData)
		log.Info("switch %d toggled", data.SwitchIndex)
	})
	w.Subscribe(world.EventGoal, func(name string, ev interface{}) {
		data := ev.(world.GoalEventData)
		log.Info("ball %d reached goal %d", data.BallIndex, data.GoalIndex)
	})
	w.Subscribe(world.EventJump, func(name string, ev interface{}) {
		data := ev.(world.JumpEventData)
		log.Info("ball %d jumped via %d to %v", data.BallIndex, data.JumpIndex, data.Dest)
	})
	w.Subscribe(world.EventItem, func(name string, ev interface{}) {
		data := ev.(world.ItemEventData)
		log.Info("ball %d picked up item %d", data.BallIndex, data.ItemIndex)
		w.Items[data.ItemIndex].T = world.ItemNone
	})
}
