package main

import (
	"math"

	"github.com/gogpu/turtle"
	"github.com/gogpu/turtle/anim"
)

// drawing sets up a turtle. It returns a step function for animated
// drawings, or nil if setup already drew everything.
type drawing struct {
	name  string
	desc  string
	setup func(t *turtle.Turtle) anim.StepFunc
}

var drawings = []drawing{
	{"line", "a single 100px line from the center", drawLine},
	{"spiral", "hue-rotating quarter arcs growing over 200 frames", drawSpiral},
	{"star", "a filled five-pointed star", drawStar},
	{"tree", "a recursive fractal tree", drawTree},
	{"flower", "36 petals, one per frame", drawFlower},
}

func lookupDrawing(name string) (drawing, bool) {
	for _, d := range drawings {
		if d.name == name {
			return d, true
		}
	}
	return drawing{}, false
}

func drawLine(t *turtle.Turtle) anim.StepFunc {
	t.Forward(100).Stroke()
	return nil
}

func drawSpiral(t *turtle.Turtle) anim.StepFunc {
	t.SetColor(turtle.Hex("#99df66"))
	return func(i int) bool {
		t.Clear().
			PenDown().
			TransformColor(func(c turtle.Color) turtle.Color { return c.Rotate(2) }).
			SetLineWidth(float64(2 + i%2)).
			Arc(float64(i), 90).
			PenUp().
			Stroke()
		return i < 200
	}
}

func drawStar(t *turtle.Turtle) anim.StepFunc {
	w, h := t.Size()
	size := math.Min(w, h) * 0.8

	// Start at the left tip so the star is centered.
	t.Jump(-size/2, -size*0.16).
		SetColor(turtle.Hex("#e6b422")).
		SetLineWidth(3).
		SetHeading(0)
	for i := 0; i < 5; i++ {
		t.Forward(size).Right(144)
	}
	t.Stroke().Fill()
	return nil
}

func drawTree(t *turtle.Turtle) anim.StepFunc {
	_, h := t.Size()
	trunk := h * 0.28

	t.PenUp().MoveTo(0, h*0.45).SetHeading(-math.Pi / 2)
	branch(t, trunk, 9)
	t.Stroke()
	return nil
}

var (
	bark = turtle.Hex("#6b4226")
	leaf = turtle.Hex("#3fa34d")
)

func branch(t *turtle.Turtle, length float64, depth int) {
	if depth == 0 {
		return
	}
	// One segment per branch so each keeps its own width and color.
	t.PenUp().PenDown().
		SetLineWidth(float64(depth)).
		SetColor(leaf.Mix(bark, float64(depth)/9)).
		Forward(length)

	t.Save().Left(25)
	branch(t, length*0.72, depth-1)
	t.Restore()

	t.Save().Right(25)
	branch(t, length*0.72, depth-1)
	t.Restore()
}

func drawFlower(t *turtle.Turtle) anim.StepFunc {
	w, h := t.Size()
	r := math.Min(w, h) * 0.4

	t.SetColor(turtle.Hex("#e0457b")).SetLineWidth(2)
	return func(i int) bool {
		t.PenUp().PenDown().
			TransformColor(func(c turtle.Color) turtle.Color { return c.Rotate(10) }).
			Arc(r, 60).Right(120).
			Arc(r, 60).Right(120).
			Right(10)
		return i < 35
	}
}
