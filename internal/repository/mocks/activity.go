// Package mocks 提供 repository 接口的 testify Mock 实现，只在测试中使用。
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/ttguo7/kid-activity-platform/internal/domain"
)

// ActivityRepository 是 repository.ActivityRepository 的 Mock 实现
type ActivityRepository struct {
	mock.Mock
}

func (m *ActivityRepository) FindAll(ctx context.Context, category string) ([]domain.Document, error) {
	args := m.Called(ctx, category)
	if docs := args.Get(0); docs != nil {
		return docs.([]domain.Document), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ActivityRepository) FindByID(ctx context.Context, id string) (*domain.Document, error) {
	args := m.Called(ctx, id)
	if doc := args.Get(0); doc != nil {
		return doc.(*domain.Document), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ActivityRepository) Insert(ctx context.Context, doc domain.Document) (string, error) {
	args := m.Called(ctx, doc)
	return args.String(0), args.Error(1)
}

func (m *ActivityRepository) Replace(ctx context.Context, id string, doc domain.Document) error {
	args := m.Called(ctx, id, doc)
	return args.Error(0)
}

func (m *ActivityRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *ActivityRepository) UpdateImagesByTitle(ctx context.Context, title string, images []string) error {
	args := m.Called(ctx, title, images)
	return args.Error(0)
}

func (m *ActivityRepository) FindTitles(ctx context.Context, titles []string) ([]string, error) {
	args := m.Called(ctx, titles)
	if titles := args.Get(0); titles != nil {
		return titles.([]string), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ActivityRepository) InsertMany(ctx context.Context, docs []domain.Document) ([]string, error) {
	args := m.Called(ctx, docs)
	if ids := args.Get(0); ids != nil {
		return ids.([]string), args.Error(1)
	}
	return nil, args.Error(1)
}
