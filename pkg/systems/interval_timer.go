package systems

// intervalTimer 固定周期计时器
// 累加 deltaTime，每满一个周期触发一次；一帧跨越多个周期时触发多次，不累积漂移
type intervalTimer struct {
	interval float64 // 周期（秒）
	elapsed  float64 // 当前周期已过时间（秒）
}

func newIntervalTimer(intervalMs int) intervalTimer {
	return intervalTimer{interval: float64(intervalMs) / 1000.0}
}

// advance 推进计时器，返回本次触发的次数
func (t *intervalTimer) advance(deltaTime float64) int {
	if deltaTime <= 0 || t.interval <= 0 {
		return 0
	}
	t.elapsed += deltaTime
	fires := 0
	for t.elapsed >= t.interval {
		t.elapsed -= t.interval
		fires++
	}
	return fires
}

func (t *intervalTimer) reset() {
	t.elapsed = 0
}
