package audio

import (
	"fmt"
	"io"
	"math"
)

// Note 单个音符；FreqHz 为 0 表示静音
type Note struct {
	FreqHz     float64
	DurationMs int
}

// Tone 一段由若干音符顺序组成的提示音
type Tone struct {
	Notes  []Note
	Volume float64 // 0.0 ~ 1.0，0 按 1.0 处理
}

// Duration 返回提示音总时长（毫秒）
func (t Tone) Duration() int {
	total := 0
	for _, n := range t.Notes {
		total += n.DurationMs
	}
	return total
}

// ToneDecoder 合成后的 16-bit 小端立体声 PCM 流
// 实现 io.ReadSeeker，可直接交给 Ebitengine 的 audio.Player
type ToneDecoder struct {
	data       []byte
	sampleRate int64
	offset     int64
}

const (
	toneChannels    = 2
	bytesPerFrame   = 2 * toneChannels
	attackMs        = 4.0
	releaseFraction = 0.35
	toneAmplitude   = 0.45 * math.MaxInt16
)

// SynthesizeTone 按采样率合成正弦波提示音
// 每个音符有短促的起音和线性衰减，避免爆音
func SynthesizeTone(t Tone, sampleRate int) (*ToneDecoder, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("invalid sample rate: %d", sampleRate)
	}
	volume := t.Volume
	if volume <= 0 || volume > 1 {
		volume = 1
	}

	frames := 0
	for _, n := range t.Notes {
		if n.DurationMs < 0 {
			return nil, fmt.Errorf("negative note duration: %d", n.DurationMs)
		}
		frames += n.DurationMs * sampleRate / 1000
	}

	data := make([]byte, 0, frames*bytesPerFrame)
	for _, n := range t.Notes {
		count := n.DurationMs * sampleRate / 1000
		attack := int(attackMs * float64(sampleRate) / 1000)
		release := int(float64(count) * releaseFraction)

		for i := 0; i < count; i++ {
			var v int16
			if n.FreqHz > 0 {
				env := 1.0
				if attack > 0 && i < attack {
					env = float64(i) / float64(attack)
				}
				if release > 0 && i >= count-release {
					env *= float64(count-i) / float64(release)
				}
				phase := 2 * math.Pi * n.FreqHz * float64(i) / float64(sampleRate)
				v = int16(math.Sin(phase) * env * volume * toneAmplitude)
			}
			// 左右声道相同
			data = append(data, byte(v), byte(v>>8), byte(v), byte(v>>8))
		}
	}

	return &ToneDecoder{
		data:       data,
		sampleRate: int64(sampleRate),
	}, nil
}

// Read reads PCM data into p.
func (d *ToneDecoder) Read(p []byte) (n int, err error) {
	if d.offset >= int64(len(d.data)) {
		return 0, io.EOF
	}

	n = copy(p, d.data[d.offset:])
	d.offset += int64(n)
	return n, nil
}

// Seek sets the offset for the next Read.
func (d *ToneDecoder) Seek(offset int64, whence int) (int64, error) {
	var newOffset int64

	switch whence {
	case io.SeekStart:
		newOffset = offset
	case io.SeekCurrent:
		newOffset = d.offset + offset
	case io.SeekEnd:
		newOffset = int64(len(d.data)) + offset
	default:
		return 0, fmt.Errorf("invalid whence: %d", whence)
	}

	if newOffset < 0 {
		return 0, fmt.Errorf("negative position: %d", newOffset)
	}

	d.offset = newOffset
	return newOffset, nil
}

// Length returns the total length of the PCM data in bytes.
func (d *ToneDecoder) Length() int64 {
	return int64(len(d.data))
}

// SampleRate returns the sample rate in Hz.
func (d *ToneDecoder) SampleRate() int64 {
	return d.sampleRate
}

// Channels returns the number of channels (always stereo).
func (d *ToneDecoder) Channels() int {
	return toneChannels
}
