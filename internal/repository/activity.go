package repository

import (
	"context"

	"github.com/ttguo7/kid-activity-platform/internal/domain"
)

// ActivityRepository 定义了活动文档的存储和检索操作。
// 实现方负责每次调用内的连接获取和释放（本项目的约定是一次操作一个连接）。
type ActivityRepository interface {
	// FindAll 返回集合中的全部文档，category 非空时按分类精确过滤。
	// 顺序是存储层的自然顺序，不做任何排序承诺。
	FindAll(ctx context.Context, category string) ([]domain.Document, error)

	// FindByID 按标识符查找文档。
	// 先把 id 当作原生 ObjectID 解释，失败或未命中时退回字符串字面值匹配。
	// 两种解释都没有命中时返回 ErrNotFound。
	FindByID(ctx context.Context, id string) (*domain.Document, error)

	// Insert 插入一个新文档，返回新标识符的字符串形式。
	Insert(ctx context.Context, doc domain.Document) (string, error)

	// Replace 用 doc 中的可编辑字段整体覆盖指定文档（不含 createdAt）。
	// 未命中时返回 ErrNotFound。
	Replace(ctx context.Context, id string, doc domain.Document) error

	// Delete 硬删除指定文档。未命中时返回 ErrNotFound。
	Delete(ctx context.Context, id string) error

	// UpdateImagesByTitle 按标题替换单个文档的 images 字段，维护脚本专用。
	// 未命中时返回 ErrNotFound。
	UpdateImagesByTitle(ctx context.Context, title string, images []string) error

	// FindTitles 返回 titles 中已经存在于集合里的标题，用于种子数据去重。
	FindTitles(ctx context.Context, titles []string) ([]string, error)

	// InsertMany 批量插入文档，按插入顺序返回新标识符。
	InsertMany(ctx context.Context, docs []domain.Document) ([]string, error)
}
