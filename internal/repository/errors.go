package repository

import "errors"

// 通用的存储库错误
var (
	// ErrNotFound 表示请求的文档未找到（两种标识符解释都没有命中）
	ErrNotFound = errors.New("repository: document not found")
)
