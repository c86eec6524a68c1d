// Package clock 抽象时间来源，便于测试中使用确定性时间
package clock

import "time"

// Clock abstracts time for deterministic tests.
type Clock interface {
	Now() time.Time
}

// RealClock 使用系统时钟
type RealClock struct{}

// Now returns the current time using the system clock.
func (RealClock) Now() time.Time {
	return time.Now()
}

// FakeClock 手动推进的时钟，用于测试和无头模拟
type FakeClock struct {
	now time.Time
}

// NewFakeClock 创建从 start 开始的假时钟
func NewFakeClock(start time.Time) *FakeClock {
	return &FakeClock{now: start}
}

// Now 返回当前假时间
func (f *FakeClock) Now() time.Time {
	return f.now
}

// Advance 推进假时间
func (f *FakeClock) Advance(d time.Duration) {
	f.now = f.now.Add(d)
}
