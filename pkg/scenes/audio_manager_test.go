package scenes

import (
	"testing"

	tones "github.com/decker502/cafe/internal/audio"
	"github.com/decker502/cafe/pkg/game"
)

// TestAudioManagerWithoutContext 测试没有音频上下文时播放被忽略
func TestAudioManagerWithoutContext(t *testing.T) {
	am := NewAudioManager(nil, game.NewSettingsManager(nil))

	if am.PlayCue(tones.CueServe) {
		t.Error("PlayCue should fail without audio context")
	}
	if am.PlayEvent(game.Event{Type: game.EventCustomersSwept}) {
		t.Error("PlayEvent should fail for events without a cue")
	}
	am.PreloadSounds()
	if len(am.soundPlayers) != 0 {
		t.Errorf("no players should be cached without context, got %d", len(am.soundPlayers))
	}
}

func TestAudioManagerToggleSound(t *testing.T) {
	sm := game.NewSettingsManager(nil)
	am := NewAudioManager(nil, sm)

	if am.ToggleSound() {
		t.Error("first toggle should disable sound")
	}
	if sm.GetSettings().SoundEnabled {
		t.Error("settings should reflect disabled sound")
	}
	if !am.ToggleSound() {
		t.Error("second toggle should enable sound")
	}

	// 没有 SettingsManager 时只在内存中切换
	bare := NewAudioManager(nil, nil)
	if bare.ToggleSound() {
		t.Error("bare manager: first toggle should disable sound")
	}
	if bare.SoundEnabled() {
		t.Error("bare manager should be muted")
	}
}

func TestAudioManagerVolume(t *testing.T) {
	sm := game.NewSettingsManager(nil)
	am := NewAudioManager(nil, sm)

	if am.GetSoundVolume() != 0.6 {
		t.Errorf("default volume: got %.2f, want 0.6", am.GetSoundVolume())
	}
	am.SetSoundVolume(1.5)
	if am.GetSoundVolume() != 1.0 {
		t.Errorf("volume should clamp to 1.0, got %.2f", am.GetSoundVolume())
	}
	if NewAudioManager(nil, nil).GetSoundVolume() != 0.6 {
		t.Error("volume without settings should use the default")
	}
}
