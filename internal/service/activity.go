package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ttguo7/kid-activity-platform/internal/domain"
	"github.com/ttguo7/kid-activity-platform/internal/repository"
)

// ActivityService 负责活动相关的业务逻辑：
// 入参校验、缺省字段填充、时间戳、种子数据去重。
type ActivityService struct {
	repo repository.ActivityRepository
	now  func() time.Time // 可注入，便于测试
}

// NewActivityService 创建 ActivityService 实例。
func NewActivityService(repo repository.ActivityRepository) *ActivityService {
	if repo == nil {
		panic("ActivityRepository cannot be nil for ActivityService")
	}
	return &ActivityService{repo: repo, now: time.Now}
}

// SeedResult 汇报一次批量种子操作的结果
type SeedResult struct {
	Added   int      `json:"added"`
	Skipped int      `json:"skipped"`
	IDs     []string `json:"ids"`
}

// List 返回全部活动（category 非空时精确过滤），每个文档都经过格式化。
func (s *ActivityService) List(ctx context.Context, category string) ([]domain.Activity, error) {
	docs, err := s.repo.FindAll(ctx, category)
	if err != nil {
		logrus.WithError(err).Error("Failed to fetch activities from store")
		return nil, fmt.Errorf("fetch activities: %w", err)
	}

	activities := make([]domain.Activity, 0, len(docs))
	for _, doc := range docs {
		activities = append(activities, domain.FormatDocument(doc))
	}
	return activities, nil
}

// Get 按标识符返回单个活动。
func (s *ActivityService) Get(ctx context.Context, id string) (*domain.Activity, error) {
	if id == "" {
		return nil, ErrEmptyID
	}

	doc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrActivityNotFound
		}
		logrus.WithError(err).WithField("activity_id", id).Error("Failed to fetch activity from store")
		return nil, fmt.Errorf("fetch activity: %w", err)
	}

	activity := domain.FormatDocument(*doc)
	return &activity, nil
}

// Create 在校验通过后插入新文档并返回新标识符。
// 校验失败不触碰存储层。
func (s *ActivityService) Create(ctx context.Context, input domain.ActivityInput) (string, error) {
	if input.Title == "" || input.Description == "" {
		return "", ErrMissingFields
	}

	doc := s.buildDocument(input)
	doc.CreatedAt = s.now()

	id, err := s.repo.Insert(ctx, doc)
	if err != nil {
		logrus.WithError(err).Error("Failed to insert activity")
		return "", fmt.Errorf("create activity: %w", err)
	}

	logrus.WithFields(logrus.Fields{"activity_id": id, "title": input.Title}).Info("Activity created")
	return id, nil
}

// Update 整体覆盖可编辑字段：调用方省略的字段会被重置为默认值，而不是保持原值。
// createdAt 不受影响，updatedAt 刷新。
func (s *ActivityService) Update(ctx context.Context, id string, input domain.ActivityInput) error {
	if id == "" {
		return ErrEmptyID
	}
	if input.Title == "" || input.Description == "" {
		return ErrMissingFields
	}

	doc := s.buildDocument(input)
	doc.UpdatedAt = s.now()

	if err := s.repo.Replace(ctx, id, doc); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrActivityNotFound
		}
		logrus.WithError(err).WithField("activity_id", id).Error("Failed to update activity")
		return fmt.Errorf("update activity: %w", err)
	}

	logrus.WithField("activity_id", id).Info("Activity updated")
	return nil
}

// Delete 硬删除指定活动。
func (s *ActivityService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrEmptyID
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrActivityNotFound
		}
		logrus.WithError(err).WithField("activity_id", id).Error("Failed to delete activity")
		return fmt.Errorf("delete activity: %w", err)
	}

	logrus.WithField("activity_id", id).Info("Activity deleted")
	return nil
}

// SetImages 按标题替换活动的图片列表，顺序原样保留。供维护 CLI 使用。
func (s *ActivityService) SetImages(ctx context.Context, title string, images []string) error {
	if title == "" {
		return ErrMissingFields
	}

	if err := s.repo.UpdateImagesByTitle(ctx, title, images); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrActivityNotFound
		}
		logrus.WithError(err).WithField("title", title).Error("Failed to update activity images")
		return fmt.Errorf("update activity images: %w", err)
	}

	logrus.WithFields(logrus.Fields{"title": title, "images": len(images)}).Info("Activity images updated")
	return nil
}

// SeedExamples 幂等地写入内置示例活动：按标题去重，只插入不存在的条目。
func (s *ActivityService) SeedExamples(ctx context.Context) (*SeedResult, error) {
	seeds := SeedActivities()
	titles := make([]string, 0, len(seeds))
	for _, seed := range seeds {
		titles = append(titles, seed.Title)
	}

	existing, err := s.repo.FindTitles(ctx, titles)
	if err != nil {
		logrus.WithError(err).Error("Failed to check existing seed titles")
		return nil, fmt.Errorf("check existing activities: %w", err)
	}

	existingSet := make(map[string]struct{}, len(existing))
	for _, title := range existing {
		existingSet[title] = struct{}{}
	}

	now := s.now()
	fresh := make([]domain.Document, 0, len(seeds))
	for _, seed := range seeds {
		if _, ok := existingSet[seed.Title]; ok {
			continue
		}
		seed.CreatedAt = now
		fresh = append(fresh, seed)
	}

	if len(fresh) == 0 {
		return &SeedResult{Added: 0, Skipped: len(seeds), IDs: []string{}}, nil
	}

	ids, err := s.repo.InsertMany(ctx, fresh)
	if err != nil {
		logrus.WithError(err).Error("Failed to insert seed activities")
		return nil, fmt.Errorf("insert seed activities: %w", err)
	}

	result := &SeedResult{
		Added:   len(ids),
		Skipped: len(seeds) - len(fresh),
		IDs:     ids,
	}
	logrus.WithFields(logrus.Fields{"added": result.Added, "skipped": result.Skipped}).Info("Seed activities applied")
	return result, nil
}

// buildDocument 按和 Formatter 一致的规则填充缺省字段。
// date 的例外：创建/更新时缺省为当天，而不是空串。
func (s *ActivityService) buildDocument(input domain.ActivityInput) domain.Document {
	doc := domain.Document{
		Title:       input.Title,
		Description: input.Description,
		Date:        input.Date,
		Location:    input.Location,
		AgeRange:    input.AgeRange,
		Price:       input.Price,
		Images:      input.Images,
		Category:    input.Category,
		Status:      domain.StatusActive,
	}
	if doc.Date == "" {
		doc.Date = s.now().Format("2006-01-02")
	}
	if doc.Images == nil {
		doc.Images = []string{}
	}
	return doc
}
