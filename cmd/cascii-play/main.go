package main

import (
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"
)

// defaultFPS is the initial playback rate when --fps is not given.
const defaultFPS = 24

func main() {
	log.SetFlags(0)

	fps := pflag.Int("fps", defaultFPS, "initial playback frames per second (min 1)")
	once := pflag.Bool("once", false, "play through once and freeze on the last frame")
	colorSpec := pflag.String("color", "white", "foreground color for plain-text frames (#rrggbb or a color name)")
	pflag.Usage = printUsage
	pflag.Parse()

	dir := "."
	switch args := pflag.Args(); len(args) {
	case 0:
	case 1:
		dir = args[0]
	default:
		printUsage()
		os.Exit(1)
	}

	fallback, ok := ParseColor(*colorSpec)
	if !ok {
		log.Fatalf("Invalid --color value %q (want #rrggbb or a color name)", *colorSpec)
	}

	// Every load failure surfaces here, before any terminal mode change.
	frames, err := loadFrames(dir)
	if err != nil {
		log.Fatalf("Failed to load frames: %v", err)
	}

	model := newPlayerModel(frames, *fps, !*once, fallback)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		// The program has already left the alternate screen and raw mode.
		log.Fatalf("Playback failed: %v", err)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `Usage: cascii-play [directory] [options]

Plays pre-rendered character-art frames (*.cframe or frame_*.txt) from a
directory in the terminal. A .cframe file takes precedence over a .txt file
with the same base name.

Options:
  --fps N        Initial playback frames per second (default %d, min 1)
  --once         Play through once and freeze on the last frame
  --color SPEC   Foreground color for plain-text frames (default white)

Keys:
  space          Play / pause
  left / right   Step one frame
  home / end     Jump to first / last frame
  + / -          Faster / slower (1 fps per press)
  l              Toggle looping
  q, esc         Quit
`, defaultFPS)
}
