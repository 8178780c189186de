package main

import (
	"strings"
	"testing"
)

func TestRenderTextRowsCentersContent(t *testing.T) {
	rows := renderTextRows("abc\n", 11, 3, white)
	if len(rows) != 3 {
		t.Fatalf("len(rows) = %d, want 3", len(rows))
	}
	want := "    " + TrueColorFg(white) + "abc" + AnsiReset()
	if rows[1] != want {
		t.Errorf("rows[1] = %q, want %q", rows[1], want)
	}
	if rows[0] != "" || rows[2] != "" {
		t.Errorf("padding rows = %q, %q, want empty", rows[0], rows[2])
	}
}

func TestRenderTextRowsSkipsSpaceRuns(t *testing.T) {
	rows := renderTextRows("a b\n", 3, 1, white)
	// Two separate colored runs, the gap stays an uncolored space.
	if got := strings.Count(rows[0], "\x1b[38;2;"); got != 2 {
		t.Errorf("colored runs = %d, want 2 (%q)", got, rows[0])
	}
}

func TestRenderTextRowsCropsOversizedFrame(t *testing.T) {
	rows := renderTextRows("abcdefgh\nsecond\nthird\n", 4, 2, white)
	if len(rows) != 2 {
		t.Fatalf("len(rows) = %d, want 2", len(rows))
	}
	if strings.Contains(rows[0], "efgh") {
		t.Errorf("row 0 not cropped to width: %q", rows[0])
	}
}

func TestRenderColorRowsBatchesSameColorRuns(t *testing.T) {
	data := buildCFrame(t, 4, 1, [][4]byte{
		{'a', 255, 0, 0}, {'b', 255, 0, 0}, {'c', 0, 0, 255}, {0, 0, 0, 0},
	})
	cf, err := parseCFrame(data)
	if err != nil {
		t.Fatalf("parseCFrame: %v", err)
	}
	rows := renderColorRows(cf, 4, 1)
	row := rows[0]
	if got := strings.Count(row, "\x1b[38;2;"); got != 2 {
		t.Errorf("SGR sequences = %d, want 2 (one per color run): %q", got, row)
	}
	if !strings.Contains(row, TrueColorFg(rgb{255, 0, 0})+"ab") {
		t.Errorf("red run not batched: %q", row)
	}
	if !strings.Contains(row, TrueColorFg(rgb{0, 0, 255})+"c") {
		t.Errorf("blue run missing: %q", row)
	}
	if !strings.HasSuffix(row, AnsiReset()) {
		t.Errorf("row should end with a reset: %q", row)
	}
}

func TestRenderColorRowsEmptyCellsStaySpaces(t *testing.T) {
	data := buildCFrame(t, 3, 1, [][4]byte{
		{0, 0, 0, 0}, {'x', 1, 2, 3}, {0, 0, 0, 0},
	})
	cf, err := parseCFrame(data)
	if err != nil {
		t.Fatalf("parseCFrame: %v", err)
	}
	rows := renderColorRows(cf, 3, 1)
	if !strings.HasPrefix(rows[0], " "+TrueColorFg(rgb{1, 2, 3})) {
		t.Errorf("leading empty cell should be a plain space: %q", rows[0])
	}
}

func TestStatusLineContent(t *testing.T) {
	st := newPlaybackState(3, 10, true)
	st.index = 1
	line := statusLine(st, true, 200)
	for _, want := range []string{"frame 2/3", "playing", "10 fps", "loop", "color:on"} {
		if !strings.Contains(line, want) {
			t.Errorf("status line missing %q: %q", want, line)
		}
	}

	st.playing = false
	st.loop = false
	line = statusLine(st, false, 200)
	for _, want := range []string{"paused", "once", "color:off"} {
		if !strings.Contains(line, want) {
			t.Errorf("status line missing %q: %q", want, line)
		}
	}
}

func TestTruncateToWidth(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"hello", 10, "hello"},
		{"hello", 5, "hello"},
		{"hello", 3, "hel"},
		{"[←/→] step", 6, "[←/→] "},
	}
	for _, tt := range tests {
		if got := truncateToWidth(tt.in, tt.width); got != tt.want {
			t.Errorf("truncateToWidth(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}

func TestRenderScreenDegenerateSizes(t *testing.T) {
	f := frame{text: "x\n"}
	st := newPlaybackState(1, 10, true)
	if got := renderScreen(f, st, 0, 0, white, false); got != "" {
		t.Errorf("zero size render = %q, want empty", got)
	}
	if got := renderScreen(f, st, 10, 1, white, false); got != "" {
		t.Errorf("status-line-only height render = %q, want empty", got)
	}
}

func TestRenderScreenReservesStatusRow(t *testing.T) {
	f := frame{text: "x\n"}
	st := newPlaybackState(1, 10, true)
	out := renderScreen(f, st, 20, 5, white, false)
	if got := strings.Count(out, "\n"); got != 4 {
		t.Errorf("rendered rows = %d newlines, want 4 for a 5-row terminal", got)
	}
}
