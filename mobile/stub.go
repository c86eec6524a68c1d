//go:build !mobile

// stub.go - 非移动端构建时的占位文件
//
// 普通构建（go build ./...、go test ./...）只编译此文件，
// 真正的 ebitenmobile 入口在 mobile.go 中，需要 -tags mobile。
package mobile

// Dummy 与 mobile.go 中的导出保持一致，使包在两种构建下都可引用
func Dummy() {}
