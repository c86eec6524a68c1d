package scenes

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"

	tones "github.com/decker502/cafe/internal/audio"
	"github.com/decker502/cafe/pkg/game"
)

// AudioManager 音频管理器
// 职责：
//   - 统一管理游戏中所有提示音的播放
//   - 从 SettingsManager 读取音效开关与音量
//   - 提示音在首次播放时合成并缓存播放器
type AudioManager struct {
	context         *audio.Context
	settingsManager *game.SettingsManager            // 可为 nil，使用默认音量
	soundPlayers    map[tones.Cue]*audio.Player // 播放器缓存
	muted           bool                        // 没有 SettingsManager 时的开关
}

// NewAudioManager 创建新的音频管理器
//
// 参数：
//   - ctx: Ebitengine 音频上下文，为 nil 时所有播放都被忽略
//   - sm: SettingsManager 实例（用于读取音量设置，可为 nil）
func NewAudioManager(ctx *audio.Context, sm *game.SettingsManager) *AudioManager {
	return &AudioManager{
		context:         ctx,
		settingsManager: sm,
		soundPlayers:    make(map[tones.Cue]*audio.Player),
	}
}

// PlayEvent 播放事件对应的提示音
func (am *AudioManager) PlayEvent(ev game.Event) bool {
	return am.PlayCue(game.CueForEvent(ev.Type))
}

// PlayCue 播放提示音
// 音效关闭、没有音频上下文或提示音无音色时返回 false
func (am *AudioManager) PlayCue(cue tones.Cue) bool {
	if !am.SoundEnabled() {
		return false
	}

	player := am.getSoundPlayer(cue)
	if player == nil {
		return false
	}

	player.SetVolume(am.getSoundVolume())
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind cue %s: %v", cue, err)
	}
	player.Play()
	return true
}

// ToggleSound 切换音效开关，返回新的状态
// 打开时播放一次提示音作为反馈
func (am *AudioManager) ToggleSound() bool {
	var enabled bool
	if am.settingsManager != nil {
		enabled = am.settingsManager.ToggleSound()
	} else {
		am.muted = !am.muted
		enabled = !am.muted
	}
	if enabled {
		am.PlayCue(tones.CueToggle)
	}
	log.Printf("[AudioManager] Sound enabled: %v", enabled)
	return enabled
}

// SetSoundVolume 设置音效音量，立即应用到缓存的播放器
func (am *AudioManager) SetSoundVolume(volume float64) {
	if am.settingsManager != nil {
		am.settingsManager.SetSoundVolume(volume)
	}
	volume = am.getSoundVolume()
	for _, player := range am.soundPlayers {
		player.SetVolume(volume)
	}
}

// GetSoundVolume 获取当前音效音量
func (am *AudioManager) GetSoundVolume() float64 {
	return am.getSoundVolume()
}

// PreloadSounds 预合成所有提示音，避免首次播放时的延迟
func (am *AudioManager) PreloadSounds() {
	for _, cue := range tones.Cues() {
		am.getSoundPlayer(cue)
	}
	log.Printf("[AudioManager] Preloaded %d sounds", len(am.soundPlayers))
}

// getSoundPlayer 获取或合成提示音播放器
func (am *AudioManager) getSoundPlayer(cue tones.Cue) *audio.Player {
	if player, exists := am.soundPlayers[cue]; exists {
		return player
	}
	if am.context == nil {
		return nil
	}

	tone, ok := tones.ToneFor(cue)
	if !ok {
		return nil
	}
	stream, err := tones.SynthesizeTone(tone, am.context.SampleRate())
	if err != nil {
		log.Printf("[AudioManager] Warning: Failed to synthesize cue %s: %v", cue, err)
		return nil
	}
	player, err := am.context.NewPlayer(stream)
	if err != nil {
		log.Printf("[AudioManager] Warning: Failed to create player for cue %s: %v", cue, err)
		return nil
	}

	am.soundPlayers[cue] = player
	return player
}

// SoundEnabled 返回音效是否开启
func (am *AudioManager) SoundEnabled() bool {
	if am.settingsManager == nil {
		return !am.muted
	}
	return am.settingsManager.GetSettings().SoundEnabled
}

// getSoundVolume 获取音效音量设置
func (am *AudioManager) getSoundVolume() float64 {
	if am.settingsManager != nil {
		return am.settingsManager.GetSettings().SoundVolume
	}
	return game.DefaultSettings().SoundVolume
}
