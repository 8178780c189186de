package main

import (
	"fmt"
	"strconv"
	"strings"
)

// rgb is a 24-bit terminal color.
type rgb struct {
	r, g, b uint8
}

var white = rgb{255, 255, 255}

// TrueColorFg returns an ANSI escape sequence for 24-bit foreground color
func TrueColorFg(c rgb) string {
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm", c.r, c.g, c.b)
}

// AnsiReset returns the ANSI reset escape sequence
func AnsiReset() string {
	return "\x1b[0m"
}

// namedColors maps the color names --color accepts to hex values.
var namedColors = map[string]string{
	"black":   "#000000",
	"blue":    "#0000ff",
	"cyan":    "#00ffff",
	"gray":    "#808080",
	"green":   "#008000",
	"grey":    "#808080",
	"lime":    "#00ff00",
	"magenta": "#ff00ff",
	"maroon":  "#800000",
	"navy":    "#000080",
	"olive":   "#808000",
	"orange":  "#ffa500",
	"purple":  "#800080",
	"red":     "#ff0000",
	"silver":  "#c0c0c0",
	"teal":    "#008080",
	"white":   "#ffffff",
	"yellow":  "#ffff00",
}

// ParseColor resolves a color spec: a name from namedColors or a #rrggbb /
// #rgb hex value.
func ParseColor(spec string) (rgb, bool) {
	s := strings.ToLower(strings.TrimSpace(spec))
	if hex, ok := namedColors[s]; ok {
		s = hex
	}
	if !strings.HasPrefix(s, "#") {
		return rgb{}, false
	}
	s = s[1:]
	if len(s) == 3 {
		// #rgb -> #rrggbb
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return rgb{}, false
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return rgb{}, false
	}
	return rgb{uint8(v >> 16), uint8(v >> 8), uint8(v)}, true
}
