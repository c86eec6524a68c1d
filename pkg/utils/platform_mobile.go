//go:build mobile

package utils

// IsMobile 移动端编译时始终启用触摸操作
func IsMobile() bool {
	return true
}
