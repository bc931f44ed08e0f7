package term

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"lifeboard/internal/core"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestFrameDrawsBoard(t *testing.T) {
	g := core.NewGrid(2, 3)
	g.Set(0, 1, 1)
	g.Set(1, 2, 1)

	var buf bytes.Buffer
	r := NewRenderer(&buf, false)
	params := []core.Parameter{
		{Label: "Generation", Value: "4"},
		{Label: "Population", Value: "2"},
	}
	if err := r.Frame(g, params); err != nil {
		t.Fatalf("Frame: %v", err)
	}

	want := "Generation: 4 | Population: 2\n" +
		"  ██  \n" +
		"    ██\n"
	if got := buf.String(); got != want {
		t.Fatalf("frame mismatch:\n%q\nwant\n%q", got, want)
	}
}

func TestFrameClearsScreen(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, true)
	if err := r.Frame(core.NewGrid(1, 1), nil); err != nil {
		t.Fatalf("Frame: %v", err)
	}
	if !strings.HasPrefix(buf.String(), clearScreen) {
		t.Fatalf("frame should start with the clear sequence, got %q", buf.String())
	}
}

func TestFrameWrapsWriteErrors(t *testing.T) {
	r := NewRenderer(failingWriter{}, false)
	err := r.Frame(core.NewGrid(1, 1), nil)
	if err == nil || !strings.Contains(err.Error(), "[Frame] failed to write frame") {
		t.Fatalf("expected wrapped write error, got %v", err)
	}
}
