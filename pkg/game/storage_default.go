//go:build !android

package game

// ensureStorageDir gdata 在非 Android 平台上会自动创建存储目录
func ensureStorageDir() error {
	return nil
}
