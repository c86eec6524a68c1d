package utils

import (
	"math"
	"testing"
)

// TestEaseOutCubic 测试三次方缓出函数
func TestEaseOutCubic(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"起点", 0.0, 0.0},
		{"终点", 1.0, 1.0},
		{"中点", 0.5, 0.875}, // 1 - (1-0.5)^3 = 1 - 0.125 = 0.875
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := EaseOutCubic(tt.input)
			if math.Abs(result-tt.expected) > 0.001 {
				t.Errorf("EaseOutCubic(%v) = %v, 期望 %v", tt.input, result, tt.expected)
			}
		})
	}
}

// TestEaseInQuad 测试二次方缓入函数
func TestEaseInQuad(t *testing.T) {
	if got := EaseInQuad(0.5); math.Abs(got-0.25) > 0.001 {
		t.Errorf("EaseInQuad(0.5) = %v, 期望 0.25", got)
	}
	if EaseInQuad(0) != 0 || EaseInQuad(1) != 1 {
		t.Error("EaseInQuad 端点错误")
	}
}

func TestClamp01AndLerp(t *testing.T) {
	if Clamp01(-0.5) != 0 || Clamp01(1.5) != 1 || Clamp01(0.3) != 0.3 {
		t.Error("Clamp01 结果错误")
	}
	if got := Lerp(8, 0, 0.25); got != 6 {
		t.Errorf("Lerp(8, 0, 0.25) = %v, 期望 6", got)
	}
}

// TestFadeAlpha 测试淡出透明度
func TestFadeAlpha(t *testing.T) {
	tests := []struct {
		name      string
		remaining float64
		fade      float64
		expected  float64
	}{
		{"淡出前", 1.2, 0.5, 1},
		{"淡出一半", 0.25, 0.5, 0.25},
		{"已结束", 0, 0.5, 0},
		{"无淡出", 0.1, 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FadeAlpha(tt.remaining, tt.fade); math.Abs(got-tt.expected) > 0.001 {
				t.Errorf("FadeAlpha(%v, %v) = %v, 期望 %v", tt.remaining, tt.fade, got, tt.expected)
			}
		})
	}
}
