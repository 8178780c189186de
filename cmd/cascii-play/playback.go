package main

import "time"

// playbackState holds everything the player mutates during a session.
// All transitions are value-in, value-out so they can be tested without a
// terminal attached.
type playbackState struct {
	index   int
	frames  int
	playing bool
	fps     int
	loop    bool
}

// fpsStep is how much +/- change the frame rate per keypress.
const fpsStep = 1

func newPlaybackState(frames, fps int, loop bool) playbackState {
	if fps < 1 {
		fps = 1
	}
	return playbackState{
		frames:  frames,
		playing: true,
		fps:     fps,
		loop:    loop,
	}
}

// interval returns the time between automatic frame advances.
func (s playbackState) interval() time.Duration {
	return time.Second / time.Duration(s.fps)
}

func (s playbackState) lastIndex() int {
	return s.frames - 1
}

// tick advances the frame index by one on the playback timer. Past the end it
// wraps when looping, otherwise it parks on the last frame and pauses.
func (s playbackState) tick() playbackState {
	if !s.playing {
		return s
	}
	if s.index < s.lastIndex() {
		s.index++
		return s
	}
	if s.loop {
		s.index = 0
		return s
	}
	s.index = s.lastIndex()
	s.playing = false
	return s
}

// stepForward moves one frame right regardless of play/pause.
func (s playbackState) stepForward() playbackState {
	if s.index < s.lastIndex() {
		s.index++
	} else if s.loop {
		s.index = 0
	}
	return s
}

// stepBackward moves one frame left regardless of play/pause.
func (s playbackState) stepBackward() playbackState {
	if s.index > 0 {
		s.index--
	} else if s.loop {
		s.index = s.lastIndex()
	}
	return s
}

func (s playbackState) togglePlaying() playbackState {
	s.playing = !s.playing
	return s
}

func (s playbackState) seekStart() playbackState {
	s.index = 0
	return s
}

func (s playbackState) seekEnd() playbackState {
	s.index = s.lastIndex()
	return s
}

func (s playbackState) fasterFPS() playbackState {
	s.fps += fpsStep
	return s
}

func (s playbackState) slowerFPS() playbackState {
	s.fps -= fpsStep
	if s.fps < 1 {
		s.fps = 1
	}
	return s
}

// toggleLoop flips loop mode. Turning looping off while already parked on the
// last frame pauses, since the next tick could only clamp there anyway.
func (s playbackState) toggleLoop() playbackState {
	s.loop = !s.loop
	if !s.loop && s.index == s.lastIndex() {
		s.playing = false
	}
	return s
}
