package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/turtle"
	"github.com/gogpu/turtle/anim"
	"github.com/gogpu/turtle/recording"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestListShowsEveryDrawing(t *testing.T) {
	out, err := execute(t, "list")
	if err != nil {
		t.Fatalf("list error = %v", err)
	}
	for _, d := range drawings {
		if !strings.Contains(out, d.name) {
			t.Errorf("list output missing %q:\n%s", d.name, out)
		}
	}
}

func TestRenderFormats(t *testing.T) {
	tests := []struct {
		format string
		magic  string
	}{
		{"png", "\x89PNG"},
		{"svg", "<?xml"},
		{"pdf", "%PDF"},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "out."+tt.format)
			out, err := execute(t, "render", "line", "--format", tt.format, "--out", path, "--width", "200", "--height", "200")
			if err != nil {
				t.Fatalf("render error = %v", err)
			}
			if !strings.Contains(out, "wrote "+path) {
				t.Errorf("output = %q", out)
			}
			data, err := os.ReadFile(path)
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.HasPrefix(data, []byte(tt.magic)) {
				t.Errorf("file starts with %q, want %q", data[:min(len(data), 8)], tt.magic)
			}
		})
	}
}

func TestRenderAnimatedWithStepCap(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spiral.svg")
	out, err := execute(t, "render", "spiral", "-f", "svg", "-o", path, "--max-steps", "10", "--progress")
	if err != nil {
		t.Fatalf("render error = %v", err)
	}
	if !strings.Contains(out, "level=WARN") || !strings.Contains(out, "bailed") {
		t.Errorf("expected a bailed warning, got:\n%s", out)
	}
	// Ten frames: the initial segment plus one per frame after the first.
	if !strings.Contains(out, "10 segments") {
		t.Errorf("output = %q, want 10 segments", out)
	}
}

func TestRenderErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := execute(t, "render", "nope", "-o", filepath.Join(dir, "x.png")); err == nil {
		t.Error("unknown drawing: error = nil")
	}
	_, err := execute(t, "render", "line", "-f", "gif", "-o", filepath.Join(dir, "x.gif"))
	if !errors.Is(err, recording.ErrUnknownBackend) {
		t.Errorf("unknown format: error = %v, want ErrUnknownBackend", err)
	}
	if _, err := execute(t, "render"); err == nil {
		t.Error("missing drawing argument: error = nil")
	}
}

func TestDrawingsProduceStrokes(t *testing.T) {
	for _, d := range drawings {
		t.Run(d.name, func(t *testing.T) {
			rec := recording.NewRecorder(300, 300)
			tt, err := turtle.New(rec)
			if err != nil {
				t.Fatal(err)
			}
			if step := d.setup(tt); step != nil {
				res, err := anim.Run(context.Background(), tt, step, anim.WithAutoStroke(), anim.WithMaxSteps(1000))
				if err != nil {
					t.Fatal(err)
				}
				if res.Bailed {
					t.Errorf("%s did not finish within 1000 frames", d.name)
				}
			}

			strokes := 0
			for _, cmd := range rec.Commands() {
				if cmd.Type() == recording.CmdStroke {
					strokes++
				}
			}
			if strokes == 0 {
				t.Errorf("%s recorded no strokes", d.name)
			}
			if tt.StackDepth() != 0 {
				t.Errorf("%s left %d saved states", d.name, tt.StackDepth())
			}
		})
	}
}

func TestTreeSegmentsKeepTheirStyle(t *testing.T) {
	tt, err := turtle.New(recording.NewRecorder(300, 300))
	if err != nil {
		t.Fatal(err)
	}
	drawTree(tt)

	segs := tt.Segments()
	// The initial segment, then one per branch: 2^9 - 1.
	if len(segs) != 1+511 {
		t.Fatalf("SegmentCount() = %d, want 512", len(segs))
	}
	if segs[1].LineWidth() != 9 || segs[len(segs)-1].LineWidth() != 1 {
		t.Errorf("widths = %v ... %v, want 9 ... 1", segs[1].LineWidth(), segs[len(segs)-1].LineWidth())
	}
}
