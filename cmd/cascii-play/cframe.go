package main

import (
	"encoding/binary"
	"fmt"
	"strings"
)

// The .cframe binary layout: "CFRM" magic, a version byte (0x01), little-endian
// uint16 width and height, then width*height cells in row-major order at 4
// bytes each: character, red, green, blue. A zero character byte marks an
// empty (transparent) cell.

const (
	cframeMagic   = "CFRM"
	cframeVersion = 0x01
	cframeHeader  = 4 + 1 + 2 + 2
	cellSize      = 4
)

type cframeCell struct {
	ch      byte
	r, g, b uint8
}

type cframe struct {
	width  int
	height int
	cells  []cframeCell
}

// parseCFrame decodes a .cframe payload. Short payloads, trailing garbage,
// unknown versions and zero dimensions are all errors.
func parseCFrame(data []byte) (*cframe, error) {
	if len(data) < cframeHeader {
		return nil, fmt.Errorf("truncated header: %d bytes", len(data))
	}
	if string(data[:4]) != cframeMagic {
		return nil, fmt.Errorf("bad magic %q", data[:4])
	}
	if data[4] != cframeVersion {
		return nil, fmt.Errorf("unsupported version %d", data[4])
	}
	width := int(binary.LittleEndian.Uint16(data[5:7]))
	height := int(binary.LittleEndian.Uint16(data[7:9]))
	if width == 0 || height == 0 {
		return nil, fmt.Errorf("empty frame dimensions %dx%d", width, height)
	}

	body := data[cframeHeader:]
	want := width * height * cellSize
	if len(body) != want {
		return nil, fmt.Errorf("cell payload is %d bytes, want %d for %dx%d", len(body), want, width, height)
	}

	cells := make([]cframeCell, width*height)
	for i := range cells {
		off := i * cellSize
		cells[i] = cframeCell{
			ch: body[off],
			r:  body[off+1],
			g:  body[off+2],
			b:  body[off+3],
		}
	}
	return &cframe{width: width, height: height, cells: cells}, nil
}

func (c *cframe) cellAt(row, col int) cframeCell {
	return c.cells[row*c.width+col]
}

// skip reports whether the cell at row,col draws nothing.
func (c *cframe) skip(row, col int) bool {
	ch := c.cellAt(row, col).ch
	return ch == 0 || ch == ' '
}

// text projects the frame to plain text, empty cells becoming spaces. Used as
// the monochrome fallback and by the loader when a .cframe stands alone.
func (c *cframe) text() string {
	var b strings.Builder
	b.Grow((c.width + 1) * c.height)
	for row := 0; row < c.height; row++ {
		for col := 0; col < c.width; col++ {
			ch := c.cellAt(row, col).ch
			if ch == 0 {
				ch = ' '
			}
			b.WriteByte(ch)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
