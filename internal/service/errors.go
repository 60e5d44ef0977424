package service

import "errors"

var (
	// ErrMissingFields 表示创建/更新请求缺少必填的标题或描述
	ErrMissingFields = errors.New("title and description are required")
	// ErrEmptyID 表示请求没有携带活动 ID
	ErrEmptyID = errors.New("activity id is required")
	// ErrActivityNotFound 表示两种标识符解释都没有命中任何文档
	ErrActivityNotFound = errors.New("activity not found")
)
