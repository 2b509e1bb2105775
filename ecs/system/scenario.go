package system

import (
	"fmt"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"

	"github.com/whiskerking/platformer/ecs"
	"github.com/whiskerking/platformer/ecs/component"
)

// scenarioDispatchScript calls the scenario's update function with the
// engine bindings and the script-owned state map.
const scenarioDispatchScript = `
update(__engine, __state)
`

// ScenarioSystem drives the player from a compiled tengo scenario instead
// of a human: each tick the script's update(engine, state) runs before the
// buffer system samples the Input component, so scripted presses flow
// through the exact same buffering path as real ones.
type ScenarioSystem struct {
	scriptPath string
	compiled   *tengo.Compiled
	stateData  *tengo.Map
	failed     bool
}

// NewScenarioSystem compiles a scenario from prefabs/scripts.
func NewScenarioSystem(scriptPath string, source []byte) (*ScenarioSystem, error) {
	if strings.TrimSpace(scriptPath) == "" {
		return nil, fmt.Errorf("scenario: empty script path")
	}

	src := string(source) + "\n" + scenarioDispatchScript
	script := tengo.NewScript([]byte(src))
	_ = script.Add("__engine", map[string]any{})
	_ = script.Add("__state", map[string]any{})

	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("scenario: compile %s: %w", scriptPath, err)
	}

	return &ScenarioSystem{
		scriptPath: scriptPath,
		compiled:   compiled,
		stateData:  &tengo.Map{Value: map[string]tengo.Object{}},
	}, nil
}

func (s *ScenarioSystem) Update(w *ecs.World) {
	if s == nil || s.compiled == nil || s.failed || w == nil {
		return
	}

	player, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	in, ok := ecs.Get(w, player, component.InputComponent.Kind())
	if !ok {
		return
	}

	// the script is the raw input source: start from a clean tick
	*in = component.Input{}

	engine := s.buildEngine(w, player, in)
	if err := s.compiled.Set("__engine", engine); err != nil {
		s.fail(err)
		return
	}
	if err := s.compiled.Set("__state", s.stateData); err != nil {
		s.fail(err)
		return
	}
	if err := s.compiled.Run(); err != nil {
		s.fail(err)
	}
}

func (s *ScenarioSystem) fail(err error) {
	// report once, then go inert rather than spamming every tick
	fmt.Printf("scenario: %s: %v\n", s.scriptPath, err)
	s.failed = true
}

func (s *ScenarioSystem) buildEngine(w *ecs.World, player ecs.Entity, in *component.Input) *tengo.ImmutableMap {
	argErr := func(fn string) error {
		return fmt.Errorf("scenario %s: %s: bad arguments", s.scriptPath, fn)
	}
	num := func(o tengo.Object) (float64, bool) {
		switch v := o.(type) {
		case *tengo.Int:
			return float64(v.Value), true
		case *tengo.Float:
			return v.Value, true
		}
		return 0, false
	}

	funcs := map[string]tengo.Object{
		"tick": &tengo.UserFunction{Name: "tick", Value: func(args ...tengo.Object) (tengo.Object, error) {
			return &tengo.Int{Value: int64(w.Tick())}, nil
		}},
		"now": &tengo.UserFunction{Name: "now", Value: func(args ...tengo.Object) (tengo.Object, error) {
			return &tengo.Float{Value: w.Now()}, nil
		}},
		"move": &tengo.UserFunction{Name: "move", Value: func(args ...tengo.Object) (tengo.Object, error) {
			if len(args) != 2 {
				return nil, argErr("move")
			}
			x, okX := num(args[0])
			z, okZ := num(args[1])
			if !okX || !okZ {
				return nil, argErr("move")
			}
			in.Move.X = x
			in.Move.Y = z
			return tengo.UndefinedValue, nil
		}},
		"hold_jump": &tengo.UserFunction{Name: "hold_jump", Value: func(args ...tengo.Object) (tengo.Object, error) {
			in.Jump = true
			return tengo.UndefinedValue, nil
		}},
		"press": &tengo.UserFunction{Name: "press", Value: func(args ...tengo.Object) (tengo.Object, error) {
			if len(args) != 1 {
				return nil, argErr("press")
			}
			name, ok := tengo.ToString(args[0])
			if !ok {
				return nil, argErr("press")
			}
			switch name {
			case "jump":
				in.JumpPressed = true
			case "slide":
				in.SlidePressed = true
			case "attack":
				in.AttackPressed = true
			case "pause":
				in.PausePressed = true
			case "restart":
				in.RestartPressed = true
			default:
				return nil, fmt.Errorf("scenario %s: press: unknown input %q", s.scriptPath, name)
			}
			return tengo.UndefinedValue, nil
		}},
		"grounded": &tengo.UserFunction{Name: "grounded", Value: func(args ...tengo.Object) (tengo.Object, error) {
			if m, ok := ecs.Get(w, player, component.MotionComponent.Kind()); ok && m.Grounded {
				return tengo.TrueValue, nil
			}
			return tengo.FalseValue, nil
		}},
		"state": &tengo.UserFunction{Name: "state", Value: func(args ...tengo.Object) (tengo.Object, error) {
			m, _ := ecs.Get(w, player, component.MotionComponent.Kind())
			return &tengo.String{Value: m.StateName()}, nil
		}},
		"velocity": &tengo.UserFunction{Name: "velocity", Value: func(args ...tengo.Object) (tengo.Object, error) {
			m, ok := ecs.Get(w, player, component.MotionComponent.Kind())
			if !ok {
				return tengo.UndefinedValue, nil
			}
			return vecObject(m.Velocity.X, m.Velocity.Y, m.Velocity.Z), nil
		}},
		"position": &tengo.UserFunction{Name: "position", Value: func(args ...tengo.Object) (tengo.Object, error) {
			tr, ok := ecs.Get(w, player, component.TransformComponent.Kind())
			if !ok {
				return tengo.UndefinedValue, nil
			}
			return vecObject(tr.Position.X, tr.Position.Y, tr.Position.Z), nil
		}},
	}

	return &tengo.ImmutableMap{Value: funcs}
}

func vecObject(x, y, z float64) tengo.Object {
	return &tengo.ImmutableMap{Value: map[string]tengo.Object{
		"x": &tengo.Float{Value: x},
		"y": &tengo.Float{Value: y},
		"z": &tengo.Float{Value: z},
	}}
}
