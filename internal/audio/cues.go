package audio

// Cue 游戏内提示音
type Cue int

const (
	CueNone Cue = iota
	CueArrive
	CuePickup
	CueServe
	CueOrderComplete
	CueWalkout
	CueToggle
)

func (c Cue) String() string {
	switch c {
	case CueArrive:
		return "arrive"
	case CuePickup:
		return "pickup"
	case CueServe:
		return "serve"
	case CueOrderComplete:
		return "order_complete"
	case CueWalkout:
		return "walkout"
	case CueToggle:
		return "toggle"
	default:
		return "none"
	}
}

var cueTones = map[Cue]Tone{
	CueArrive:        {Notes: []Note{{523, 70}, {0, 20}, {659, 70}}, Volume: 0.5},
	CuePickup:        {Notes: []Note{{660, 60}}, Volume: 0.6},
	CueServe:         {Notes: []Note{{880, 80}}, Volume: 0.7},
	CueOrderComplete: {Notes: []Note{{660, 90}, {880, 90}, {1320, 140}}, Volume: 0.8},
	CueWalkout:       {Notes: []Note{{330, 120}, {220, 180}}, Volume: 0.7},
	CueToggle:        {Notes: []Note{{440, 40}}, Volume: 0.4},
}

// Cues 返回所有有音色的提示音，用于预加载
func Cues() []Cue {
	return []Cue{CueArrive, CuePickup, CueServe, CueOrderComplete, CueWalkout, CueToggle}
}

// ToneFor 返回提示音的音色定义
func ToneFor(c Cue) (Tone, bool) {
	t, ok := cueTones[c]
	return t, ok
}
