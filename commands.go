package turtle

import (
	"fmt"
	"image/color"
	"slices"
	"strings"

	"golang.org/x/text/cases"
)

// command is one canonical turtle operation callable by name.
type command struct {
	usage string
	run   func(t *Turtle, args []any) error
}

// aliases maps alternative spellings to canonical command names.
// Keys and values are case-folded.
var aliases = map[string]string{
	"goto":        "moveto",
	"setpos":      "moveto",
	"setposition": "moveto",
	"f":           "forward",
	"fd":          "forward",
	"b":           "back",
	"bk":          "back",
	"backward":    "back",
	"lt":          "left",
	"rt":          "right",
	"pd":          "pendown",
	"down":        "pendown",
	"pu":          "penup",
	"up":          "penup",
	"jmp":         "jump",
	"seth":        "setheading",
	"clearpaths":  "clearsegments",
}

var commands = map[string]command{
	"moveto": {"x y", func(t *Turtle, args []any) error {
		x, y, err := twoFloats(args)
		if err != nil {
			return err
		}
		t.MoveTo(x, y)
		return nil
	}},
	"forward": {"distance", oneFloat((*Turtle).Forward)},
	"back":    {"distance", oneFloat((*Turtle).Back)},
	"left":    {"[degrees=90]", turn((*Turtle).Left)},
	"right":   {"[degrees=90]", turn((*Turtle).Right)},
	"penup":   {"", noArgs((*Turtle).PenUp)},
	"pendown": {"", noArgs((*Turtle).PenDown)},
	"jump": {"x y", func(t *Turtle, args []any) error {
		x, y, err := twoFloats(args)
		if err != nil {
			return err
		}
		t.Jump(x, y)
		return nil
	}},
	"setheading":   {"radians", oneFloat((*Turtle).SetHeading)},
	"setx":         {"x", oneFloat((*Turtle).SetX)},
	"sety":         {"y", oneFloat((*Turtle).SetY)},
	"setlinewidth": {"width", oneFloat((*Turtle).SetLineWidth)},
	"setcolor": {"color", func(t *Turtle, args []any) error {
		if len(args) != 1 {
			return errArgCount(len(args))
		}
		switch v := args[0].(type) {
		case string:
			c, err := ParseColor(v)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrBadArgs, err)
			}
			t.SetColor(c)
		case color.Color:
			t.SetColor(FromColor(v))
		default:
			return fmt.Errorf("%w: color must be a string or color.Color, got %T", ErrBadArgs, v)
		}
		return nil
	}},
	"save":          {"", noArgs((*Turtle).Save)},
	"restore":       {"", noArgs((*Turtle).Restore)},
	"clearsegments": {"", noArgs((*Turtle).ClearSegments)},
	"stroke":        {"", noArgs((*Turtle).Stroke)},
	"fill":          {"", noArgs((*Turtle).Fill)},
	"home":          {"", noArgs((*Turtle).Home)},
	"circle": {"radius [extent=360] [steps]", func(t *Turtle, args []any) error {
		if len(args) < 1 || len(args) > 3 {
			return errArgCount(len(args))
		}
		v, err := floats(args)
		if err != nil {
			return err
		}
		extent := 360.0
		if len(v) > 1 && v[1] != 0 {
			extent = v[1]
		}
		steps := 0
		if len(v) > 2 {
			steps = int(v[2])
		}
		t.ArcSteps(v[0], extent, steps)
		return nil
	}},
	"clear": {"[x y width height]", func(t *Turtle, args []any) error {
		switch len(args) {
		case 0:
			t.Clear()
		case 4:
			v, err := floats(args)
			if err != nil {
				return err
			}
			t.ClearRect(v[0], v[1], v[2], v[3])
		default:
			return errArgCount(len(args))
		}
		return nil
	}},
}

// Exec runs the command called name with args. Names are matched without
// regard to case, and aliases such as "fd", "lt" or "goto" resolve to the
// same operation as their canonical name.
//
// Numeric arguments may be any Go integer or float type. setcolor takes a
// color string or a color.Color.
//
// Exec returns ErrUnknownCommand for names it does not know and ErrBadArgs
// for arguments that do not fit.
func (t *Turtle) Exec(name string, args ...any) error {
	canon, ok := Canonical(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCommand, name)
	}
	cmd := commands[canon]
	if err := cmd.run(t, args); err != nil {
		return fmt.Errorf("turtle: %s: %w", strings.TrimSpace(canon+" "+cmd.usage), err)
	}
	return nil
}

// Canonical resolves name, or one of its aliases, to the canonical command
// name. ok is false if name is unknown.
func Canonical(name string) (canon string, ok bool) {
	// A Caser keeps state, so each call gets its own.
	key := cases.Fold().String(strings.TrimSpace(name))
	if a, found := aliases[key]; found {
		key = a
	}
	if _, found := commands[key]; !found {
		return "", false
	}
	return key, true
}

// Commands returns the canonical command names in sorted order.
func Commands() []string {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Aliases returns the alternative names of the canonical command, sorted.
func Aliases(canon string) []string {
	var out []string
	for alias, target := range aliases {
		if target == canon {
			out = append(out, alias)
		}
	}
	slices.Sort(out)
	return out
}

func noArgs(fn func(*Turtle) *Turtle) func(*Turtle, []any) error {
	return func(t *Turtle, args []any) error {
		if len(args) != 0 {
			return errArgCount(len(args))
		}
		fn(t)
		return nil
	}
}

func oneFloat(fn func(*Turtle, float64) *Turtle) func(*Turtle, []any) error {
	return func(t *Turtle, args []any) error {
		if len(args) != 1 {
			return errArgCount(len(args))
		}
		v, err := floats(args)
		if err != nil {
			return err
		}
		fn(t, v[0])
		return nil
	}
}

// turn is like oneFloat with a default of 90 degrees.
func turn(fn func(*Turtle, float64) *Turtle) func(*Turtle, []any) error {
	return func(t *Turtle, args []any) error {
		if len(args) == 0 {
			fn(t, 90)
			return nil
		}
		return oneFloat(fn)(t, args)
	}
}

func twoFloats(args []any) (float64, float64, error) {
	if len(args) != 2 {
		return 0, 0, errArgCount(len(args))
	}
	v, err := floats(args)
	if err != nil {
		return 0, 0, err
	}
	return v[0], v[1], nil
}

func floats(args []any) ([]float64, error) {
	out := make([]float64, len(args))
	for i, a := range args {
		f, ok := toFloat(a)
		if !ok {
			return nil, fmt.Errorf("%w: argument %d must be a number, got %T", ErrBadArgs, i+1, a)
		}
		out[i] = f
	}
	return out, nil
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}

func errArgCount(n int) error {
	return fmt.Errorf("%w: got %d arguments", ErrBadArgs, n)
}
