package audio

import (
	"io"
	"testing"
)

func TestSynthesizeToneLength(t *testing.T) {
	tone := Tone{Notes: []Note{{440, 100}, {0, 50}}}
	d, err := SynthesizeTone(tone, 48000)
	if err != nil {
		t.Fatalf("SynthesizeTone error: %v", err)
	}

	// 150ms * 48000Hz * 2 声道 * 2 字节
	want := int64(150 * 48 * 4)
	if d.Length() != want {
		t.Errorf("Length: got %d, want %d", d.Length(), want)
	}
	if d.SampleRate() != 48000 || d.Channels() != 2 {
		t.Errorf("format: rate=%d channels=%d", d.SampleRate(), d.Channels())
	}
	if tone.Duration() != 150 {
		t.Errorf("Duration: got %d, want 150", tone.Duration())
	}
}

// TestSynthesizeToneSilence 测试静音音符输出全零，且起音从零开始
func TestSynthesizeToneSilence(t *testing.T) {
	d, err := SynthesizeTone(Tone{Notes: []Note{{0, 10}}}, 8000)
	if err != nil {
		t.Fatal(err)
	}
	data, _ := io.ReadAll(d)
	for i, b := range data {
		if b != 0 {
			t.Fatalf("byte %d of silent note is %d", i, b)
		}
	}

	d, _ = SynthesizeTone(Tone{Notes: []Note{{440, 10}}}, 8000)
	data, _ = io.ReadAll(d)
	if data[0] != 0 || data[1] != 0 {
		t.Error("first sample should be zero (attack starts from silence)")
	}
	var nonZero bool
	for _, b := range data {
		if b != 0 {
			nonZero = true
			break
		}
	}
	if !nonZero {
		t.Error("audible note produced only silence")
	}
}

func TestSynthesizeToneErrors(t *testing.T) {
	if _, err := SynthesizeTone(Tone{}, 0); err == nil {
		t.Error("expected error for zero sample rate")
	}
	if _, err := SynthesizeTone(Tone{Notes: []Note{{440, -1}}}, 48000); err == nil {
		t.Error("expected error for negative duration")
	}
}

func TestToneDecoderSeek(t *testing.T) {
	d, _ := SynthesizeTone(Tone{Notes: []Note{{440, 10}}}, 8000)
	first, _ := io.ReadAll(d)

	if _, err := d.Read(make([]byte, 4)); err != io.EOF {
		t.Errorf("Read at end: got %v, want EOF", err)
	}

	pos, err := d.Seek(0, io.SeekStart)
	if err != nil || pos != 0 {
		t.Fatalf("Seek start: pos=%d err=%v", pos, err)
	}
	again, _ := io.ReadAll(d)
	if len(again) != len(first) {
		t.Errorf("re-read length: got %d, want %d", len(again), len(first))
	}

	if pos, _ := d.Seek(-4, io.SeekEnd); pos != d.Length()-4 {
		t.Errorf("Seek end: got %d", pos)
	}
	if _, err := d.Seek(-1, io.SeekStart); err == nil {
		t.Error("expected error for negative position")
	}
	if _, err := d.Seek(0, 42); err == nil {
		t.Error("expected error for invalid whence")
	}
}

// TestAllCuesHaveTones 测试每个提示音都有可合成的音色
func TestAllCuesHaveTones(t *testing.T) {
	for _, c := range Cues() {
		tone, ok := ToneFor(c)
		if !ok {
			t.Errorf("cue %s has no tone", c)
			continue
		}
		if tone.Duration() <= 0 {
			t.Errorf("cue %s has empty tone", c)
		}
		if _, err := SynthesizeTone(tone, 44100); err != nil {
			t.Errorf("cue %s: %v", c, err)
		}
	}
	if _, ok := ToneFor(CueNone); ok {
		t.Error("CueNone should have no tone")
	}
}
