package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/paper-flight/internal/core"
)

func TestRenderScreenPlain(t *testing.T) {
	s := core.NewScreen(5, 2)
	s.DrawText(0, 0, "hello")
	s.DrawText(0, 1, "ab")

	got := RenderScreen(s)
	want := "hello\nab   "
	if got != want {
		t.Errorf("RenderScreen = %q, want %q", got, want)
	}
}

func TestRenderScreenColoredRuns(t *testing.T) {
	s := core.NewScreen(6, 1)
	s.DrawTextColored(0, 0, "abc", core.RGB(255, 0, 0))
	s.SetCell(4, 0, core.Cell{Ch: '$', FG: core.RGB(255, 215, 0), BG: core.RGB(0, 0, 80)})

	got := RenderScreen(s)
	for _, part := range []string{"abc", "$"} {
		if !strings.Contains(got, part) {
			t.Errorf("RenderScreen = %q, missing %q", got, part)
		}
	}
	if strings.Count(got, "\n") != 0 {
		t.Error("single row should not contain newlines")
	}
}
