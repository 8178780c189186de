package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// errNoFrames is returned when a readable directory holds nothing playable.
var errNoFrames = errors.New("no frame files found (expected *.cframe or frame_*.txt)")

// frame is one playable frame: a plain-text body, plus per-character color
// when the frame came from (or had a sidecar) .cframe file.
type frame struct {
	name  string
	text  string
	color *cframe
}

// frameSource is one logical frame after grouping a directory listing by
// stem: at most one .cframe and one .txt candidate per stem, the .cframe
// winning when both exist.
type frameSource struct {
	stem       string
	cframePath string
	txtPath    string
}

// loadFrames enumerates dir and loads every recognized frame, ordered by the
// numeric index in the file stem and then by stem. Any unreadable file or
// malformed .cframe is fatal; there is no partial playback.
func loadFrames(dir string) ([]frame, error) {
	sources, err := resolveFrameSources(dir)
	if err != nil {
		return nil, err
	}

	frames := make([]frame, 0, len(sources))
	for _, src := range sources {
		f, err := loadFrame(src)
		if err != nil {
			return nil, err
		}
		frames = append(frames, f)
	}
	return frames, nil
}

// resolveFrameSources lists dir, groups candidates by stem, applies the
// .cframe-over-.txt preference and sorts explicitly so the result does not
// depend on filesystem iteration order.
func resolveFrameSources(dir string) ([]frameSource, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading frame directory %s: %w", dir, err)
	}

	byStem := map[string]*frameSource{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		ext := strings.ToLower(filepath.Ext(name))
		stem := strings.TrimSuffix(name, filepath.Ext(name))

		var isCFrame bool
		switch {
		case ext == ".cframe":
			isCFrame = true
		case ext == ".txt" && strings.HasPrefix(name, "frame_"):
		default:
			continue
		}

		src := byStem[stem]
		if src == nil {
			src = &frameSource{stem: stem}
			byStem[stem] = src
		}
		if isCFrame {
			src.cframePath = filepath.Join(dir, name)
		} else {
			src.txtPath = filepath.Join(dir, name)
		}
	}

	if len(byStem) == 0 {
		return nil, fmt.Errorf("%s: %w", dir, errNoFrames)
	}

	sources := make([]frameSource, 0, len(byStem))
	for _, src := range byStem {
		sources = append(sources, *src)
	}
	sort.Slice(sources, func(i, j int) bool {
		a, aok := stemIndex(sources[i].stem)
		b, bok := stemIndex(sources[j].stem)
		if aok != bok {
			return aok // numbered frames before unnumbered ones
		}
		if aok && a != b {
			return a < b
		}
		return sources[i].stem < sources[j].stem
	})
	return sources, nil
}

// stemIndex extracts the trailing decimal run of a file stem, so frame_2
// sorts before frame_10 even without zero padding.
func stemIndex(stem string) (int, bool) {
	end := len(stem)
	start := end
	for start > 0 && stem[start-1] >= '0' && stem[start-1] <= '9' {
		start--
	}
	if start == end {
		return 0, false
	}
	// cap the run so absurdly long digit strings cannot overflow
	if end-start > 9 {
		start = end - 9
	}
	n := 0
	for _, c := range stem[start:end] {
		n = n*10 + int(c-'0')
	}
	return n, true
}

func loadFrame(src frameSource) (frame, error) {
	if src.cframePath != "" {
		data, err := os.ReadFile(src.cframePath)
		if err != nil {
			return frame{}, fmt.Errorf("reading %s: %w", src.cframePath, err)
		}
		cf, err := parseCFrame(data)
		if err != nil {
			return frame{}, fmt.Errorf("parsing %s: %w", src.cframePath, err)
		}
		return frame{name: src.stem, text: cf.text(), color: cf}, nil
	}

	data, err := os.ReadFile(src.txtPath)
	if err != nil {
		return frame{}, fmt.Errorf("reading %s: %w", src.txtPath, err)
	}
	text := string(data)
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	return frame{name: src.stem, text: text}, nil
}

// anyColor reports whether at least one frame carries per-character color,
// which the status line surfaces as color:on.
func anyColor(frames []frame) bool {
	for _, f := range frames {
		if f.color != nil {
			return true
		}
	}
	return false
}
