package tui

import (
	"regexp"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-match3/internal/core"
)

var sgr = regexp.MustCompile("\x1b\\[[0-9;]*m")

func TestRenderScreenKeepsText(t *testing.T) {
	screen := core.NewScreen(12, 2)
	screen.DrawText(0, 0, "Score: 100")
	screen.SetColored(3, 1, '●', core.ColorBrightRed)
	screen.SetColored(4, 1, '▲', core.ColorBrightGreen)

	out := RenderScreen(screen)
	lines := strings.Split(sgr.ReplaceAllString(out, ""), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0] != "Score: 100  " {
		t.Errorf("unexpected first line %q", lines[0])
	}
	if lines[1] != "   ●▲       " {
		t.Errorf("unexpected second line %q", lines[1])
	}
}
