package game

import (
	"log"

	"github.com/quasilyte/gdata/v2"
)

// AppName gdata 存储使用的应用名
const AppName = "cozy_corner_cafe"

// OpenStorage 打开跨平台存储
// 失败时返回 nil，调用方进入降级模式（设置与统计只保存在内存中）
func OpenStorage(appName string) *gdata.Manager {
	if err := ensureStorageDir(); err != nil {
		log.Printf("[Storage] Warning: %v", err)
	}

	manager, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		log.Printf("[Storage] Warning: gdata unavailable: %v (persistence disabled)", err)
		return nil
	}
	return manager
}
