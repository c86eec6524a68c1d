package main

import (
	"fmt"
	"log"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	tones "github.com/decker502/cafe/internal/audio"
	"github.com/decker502/cafe/pkg/game"
)

const sampleRate = beep.SampleRate(44100)

// soundPlayer 终端版音效，用 beep 实时合成提示音
type soundPlayer struct {
	mu          sync.Mutex
	initialized bool
	muted       bool
}

func newSoundPlayer(muted bool) *soundPlayer {
	return &soundPlayer{muted: muted}
}

// Initialize 打开扬声器，失败时游戏继续静音运行
func (p *soundPlayer) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	p.initialized = true
	return nil
}

// Close 关闭扬声器
func (p *soundPlayer) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		speaker.Clear()
		speaker.Close()
		p.initialized = false
	}
}

// ToggleMute 切换静音，返回切换后是否有声
func (p *soundPlayer) ToggleMute() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = !p.muted
	return !p.muted
}

// Enabled 是否会发声
func (p *soundPlayer) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized && !p.muted
}

// PlayEvent 播放模拟事件对应的提示音
func (p *soundPlayer) PlayEvent(ev game.Event) {
	p.PlayCue(game.CueForEvent(ev.Type))
}

// PlayCue 播放提示音
func (p *soundPlayer) PlayCue(cue tones.Cue) {
	if !p.Enabled() {
		return
	}
	t, ok := tones.ToneFor(cue)
	if !ok {
		return
	}
	s, err := toneStreamer(t, sampleRate)
	if err != nil {
		log.Printf("[Sound] Failed to build %s: %v", cue, err)
		return
	}
	speaker.Play(s)
}

// toneStreamer 把音符序列拼接为 beep 流
func toneStreamer(t tones.Tone, rate beep.SampleRate) (beep.Streamer, error) {
	parts := make([]beep.Streamer, 0, len(t.Notes))
	for _, n := range t.Notes {
		if n.DurationMs < 0 {
			return nil, fmt.Errorf("negative note duration: %d", n.DurationMs)
		}
		samples := rate.N(time.Duration(n.DurationMs) * time.Millisecond)
		if n.FreqHz <= 0 {
			parts = append(parts, generators.Silence(samples))
			continue
		}
		sine, err := generators.SineTone(rate, n.FreqHz)
		if err != nil {
			return nil, fmt.Errorf("note %.0fHz: %w", n.FreqHz, err)
		}
		parts = append(parts, beep.Take(samples, sine))
	}
	return newVolume(beep.Seq(parts...), t.Volume*0.5), nil
}

// newVolume math.Log2(0) 为 -Inf，音量为 0 时直接静音
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
