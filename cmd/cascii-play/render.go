package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

// renderScreen draws one frame centered in a width x height terminal, with the
// bottom row reserved for the status line. The result is a plain string with
// embedded SGR sequences; the TUI runtime owns cursor movement and diffing.
func renderScreen(f frame, st playbackState, width, height int, fallback rgb, hasColor bool) string {
	if width <= 0 || height <= 1 {
		return ""
	}
	drawable := height - 1

	var rows []string
	if f.color != nil {
		rows = renderColorRows(f.color, width, drawable)
	} else {
		rows = renderTextRows(f.text, width, drawable, fallback)
	}

	return strings.Join(rows, "\n") + "\n" + statusLine(st, hasColor, width)
}

// renderColorRows lays out a .cframe, batching consecutive same-color visible
// cells under a single SGR sequence per run.
func renderColorRows(cf *cframe, width, drawable int) []string {
	drawW := min(cf.width, width)
	drawH := min(cf.height, drawable)
	xOff := (width - drawW) / 2
	yOff := (drawable - drawH) / 2

	rows := make([]string, drawable)
	for row := 0; row < drawH; row++ {
		var b strings.Builder
		b.WriteString(strings.Repeat(" ", xOff))
		colored := false
		col := 0
		for col < drawW {
			if cf.skip(row, col) {
				b.WriteByte(' ')
				col++
				continue
			}
			run := cf.cellAt(row, col)
			runColor := rgb{run.r, run.g, run.b}
			b.WriteString(TrueColorFg(runColor))
			colored = true
			for col < drawW && !cf.skip(row, col) {
				cell := cf.cellAt(row, col)
				if (rgb{cell.r, cell.g, cell.b}) != runColor {
					break
				}
				b.WriteByte(cell.ch)
				col++
			}
		}
		if colored {
			b.WriteString(AnsiReset())
		}
		rows[yOff+row] = b.String()
	}
	return rows
}

// renderTextRows lays out a plain-text frame, drawing non-space runs in the
// fallback color.
func renderTextRows(text string, width, drawable int, fallback rgb) []string {
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	frameW := 0
	for _, line := range lines {
		if len(line) > frameW {
			frameW = len(line)
		}
	}
	drawW := min(frameW, width)
	drawH := min(len(lines), drawable)
	xOff := (width - drawW) / 2
	yOff := (drawable - drawH) / 2

	rows := make([]string, drawable)
	for row := 0; row < drawH; row++ {
		line := lines[row]
		if len(line) > drawW {
			line = line[:drawW]
		}
		var b strings.Builder
		b.WriteString(strings.Repeat(" ", xOff))
		colored := false
		col := 0
		for col < len(line) {
			if line[col] == ' ' {
				b.WriteByte(' ')
				col++
				continue
			}
			start := col
			for col < len(line) && line[col] != ' ' {
				col++
			}
			b.WriteString(TrueColorFg(fallback))
			b.WriteString(line[start:col])
			colored = true
		}
		if colored {
			b.WriteString(AnsiReset())
		}
		rows[yOff+row] = b.String()
	}
	return rows
}

// statusLine summarizes playback state and the key bindings, truncated to the
// terminal width.
func statusLine(st playbackState, hasColor bool, width int) string {
	playing := "paused"
	if st.playing {
		playing = "playing"
	}
	mode := "once"
	if st.loop {
		mode = "loop"
	}
	colorTag := "off"
	if hasColor {
		colorTag = "on"
	}
	status := fmt.Sprintf(
		"frame %d/%d | %s | %d fps | %s | color:%s | [space] play/pause [←/→] step [+/-] fps [l] loop [q] quit",
		st.index+1, st.frames, playing, st.fps, mode, colorTag,
	)
	return statusStyle.Render(truncateToWidth(status, width))
}

// truncateToWidth keeps at most width runes of input.
func truncateToWidth(input string, width int) string {
	runes := []rune(input)
	if len(runes) <= width {
		return input
	}
	return string(runes[:width])
}
