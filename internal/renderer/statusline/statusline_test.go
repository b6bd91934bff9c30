package statusline

import (
	"strings"
	"testing"

	"github.com/dshills/gridsketch/internal/renderer/backend"
	"github.com/dshills/gridsketch/internal/renderer/core"
	"github.com/dshills/gridsketch/internal/tool"
)

func TestRenderStatusBar(t *testing.T) {
	b := backend.NewNullBackend(50, 2)
	s := New()
	s.Resize(50)
	s.SetTool(tool.Rectangle)
	s.SetDrawing("single", "auto")
	s.SetPointer(3, 4, true)
	s.SetGrid(80, 24)
	s.SetHistory(true, false)
	s.Render(b, 1)

	want := " RECTANGLE  single         3,4  80x24  100%  undo"
	if got := b.Row(1); got != want {
		t.Errorf("row =\n%q\nwant\n%q", got, want)
	}
	if b.Row(0) != "" {
		t.Errorf("row 0 touched: %q", b.Row(0))
	}
}

func TestDrawingFollowsTool(t *testing.T) {
	tests := []struct {
		tool tool.Kind
		want string
	}{
		{tool.Rectangle, "double"},
		{tool.Diamond, "double"},
		{tool.Line, "horizontal"},
		{tool.Arrow, "horizontal"},
		{tool.Select, ""},
		{tool.Eraser, ""},
	}
	for _, tt := range tests {
		t.Run(tt.tool.String(), func(t *testing.T) {
			s := New()
			s.SetTool(tt.tool)
			s.SetDrawing("double", "horizontal")
			if got := s.formatDrawing(); got != tt.want {
				t.Errorf("formatDrawing = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderMessage(t *testing.T) {
	b := backend.NewNullBackend(60, 1)
	s := New()
	s.Resize(60)
	s.SetMessage("unknown tool", MessageWarning)
	s.Render(b, 0)

	row := b.Row(0)
	if !strings.HasPrefix(row, " SELECT    unknown tool") {
		t.Errorf("row = %q", row)
	}
	if !strings.HasSuffix(row, "100%") {
		t.Errorf("row lost the zoom: %q", row)
	}
	if got := b.GetCell(11, 0).Style.Foreground; got != core.MustHex("#dcdcaa") {
		t.Errorf("message color = %v", got)
	}

	s.ClearMessage()
	s.Render(b, 0)
	if strings.Contains(b.Row(0), "unknown") {
		t.Errorf("message still shown: %q", b.Row(0))
	}
}

func TestRenderTruncatesMessage(t *testing.T) {
	b := backend.NewNullBackend(30, 1)
	s := New()
	s.Resize(30)
	s.SetZoom(2)
	s.SetMessage(strings.Repeat("x", 40), MessageInfo)
	s.Render(b, 0)

	row := b.Row(0)
	if !strings.HasSuffix(row, "200%") {
		t.Errorf("right side overwritten: %q", row)
	}
	if !strings.Contains(row, "x...") {
		t.Errorf("message not truncated: %q", row)
	}
}

func TestRenderZeroWidth(t *testing.T) {
	b := backend.NewNullBackend(10, 1)
	New().Render(b, 0)
	if b.Row(0) != "" {
		t.Errorf("row = %q", b.Row(0))
	}
}
