package scenes

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/decker502/cafe/pkg/config"
	"github.com/decker502/cafe/pkg/engine"
	"github.com/decker502/cafe/pkg/game"
	"github.com/decker502/cafe/pkg/systems"
	"github.com/decker502/cafe/pkg/utils"
)

const (
	// toastDuration 金额提示显示时长（秒）
	toastDuration = 1.5
	// pointerDeadZone 触摸操作时指针与玩家距离小于此值的轴不移动
	pointerDeadZone = 6.0
)

// toast 短暂显示的金额变化提示
type toast struct {
	text      string
	remaining float64
	positive  bool
}

// CafeScene 咖啡馆主场景
// 负责把键盘/触摸输入交给 engine.Cafe，推进模拟，播放事件音效并绘制画面
type CafeScene struct {
	cafe         *engine.Cafe
	sceneManager *SceneManager
	audioManager *AudioManager
	statsManager *game.StatsManager

	input    utils.InputSource
	keyboard *utils.KeyboardAdapter
	face     text.Face

	toasts   []toast
	recorded bool // 本局结果是否已记入统计
}

// NewCafeScene 创建咖啡馆场景
//
// 参数:
//   - cafe: 一局游戏
//   - sm: 场景管理器（R 键重新开始时使用），可为 nil
//   - am: 音频管理器，可为 nil
//   - stats: 统计管理器，可为 nil
func NewCafeScene(cafe *engine.Cafe, sm *SceneManager, am *AudioManager, stats *game.StatsManager) *CafeScene {
	if am != nil {
		am.PreloadSounds()
	}
	return &CafeScene{
		cafe:         cafe,
		sceneManager: sm,
		audioManager: am,
		statsManager: stats,
		input:        utils.EbitenInput{},
		keyboard:     utils.NewKeyboardAdapter(nil),
		face:         text.NewGoXFace(basicfont.Face7x13),
	}
}

// Update 更新场景
func (s *CafeScene) Update(deltaTime float64) {
	s.handleInput()

	// 暂停时 R 重新开始
	if s.cafe.Paused() && s.input.IsKeyJustPressed(ebiten.KeyR) && s.sceneManager != nil {
		s.sceneManager.Restart()
		return
	}

	s.cafe.Step(deltaTime)

	for _, ev := range s.cafe.DrainEvents() {
		if s.audioManager != nil {
			s.audioManager.PlayEvent(ev)
		}
		switch ev.Type {
		case game.EventOrderCompleted:
			s.pushToast(fmt.Sprintf("+$%d", ev.Amount), true)
		case game.EventCustomerLeft:
			if ev.Amount > 0 {
				s.pushToast(fmt.Sprintf("-$%d", ev.Amount), false)
			} else {
				s.pushToast("Customer left", false)
			}
		}
	}

	s.updateToasts(deltaTime)
}

// handleInput 把本帧的按键变化转交给模拟
func (s *CafeScene) handleInput() {
	var extra map[systems.Key]bool
	if utils.IsMobile() {
		extra = s.pointerInput()
	}

	for _, tr := range s.keyboard.Poll(s.input, extra) {
		switch {
		case tr.Key == systems.KeySound && tr.Pressed:
			if s.audioManager != nil {
				s.audioManager.ToggleSound()
			}
		case tr.Key == systems.KeyPause && tr.Pressed:
			s.cafe.Press(tr.Key)
			// 暂停会松开所有方向，适配器同步清空，恢复后重新按下才移动
			s.keyboard.Reset()
		case tr.Pressed:
			s.cafe.Press(tr.Key)
		default:
			s.cafe.Release(tr.Key)
		}
	}
}

// pointerInput 触摸操作：按住屏幕时朝指针方向移动，点击玩家附近触发交互
func (s *CafeScene) pointerInput() map[systems.Key]bool {
	snap := s.cafe.Snapshot()
	px, py := config.PlayfieldToScreen(snap.Player.X, snap.Player.Y)

	if tapped, x, y := utils.IsJustTouchedOrClicked(); tapped {
		dx, dy := float64(x)-px, float64(y)-py
		if dx*dx+dy*dy <= config.TokenRadius*config.TokenRadius*2.25 {
			s.cafe.Press(systems.KeyAction)
			return nil
		}
	}

	pressed, x, y := utils.GetPointerState()
	if !pressed {
		return nil
	}
	return utils.PointerDirections(px, py, float64(x), float64(y), pointerDeadZone)
}

func (s *CafeScene) pushToast(msg string, positive bool) {
	s.toasts = append(s.toasts, toast{text: msg, remaining: toastDuration, positive: positive})
}

func (s *CafeScene) updateToasts(deltaTime float64) {
	kept := s.toasts[:0]
	for _, t := range s.toasts {
		t.remaining -= deltaTime
		if t.remaining > 0 {
			kept = append(kept, t)
		}
	}
	s.toasts = kept
}

// SaveOnExit 记录本局结果并保存统计，只记录一次
func (s *CafeScene) SaveOnExit() bool {
	if s.recorded || s.statsManager == nil {
		return true
	}
	s.recorded = true

	s.statsManager.RecordRun(s.cafe.Stats(), s.cafe.Money(), s.cafe.Clock().Now())
	if err := s.statsManager.Save(); err != nil {
		log.Printf("[CafeScene] Warning: Failed to save stats: %v", err)
		return false
	}
	return true
}

// bestMoney 历史最高金钱，包括本局
func (s *CafeScene) bestMoney() int {
	best := s.cafe.Money()
	if s.statsManager != nil && s.statsManager.BestMoney() > best {
		best = s.statsManager.BestMoney()
	}
	return best
}
