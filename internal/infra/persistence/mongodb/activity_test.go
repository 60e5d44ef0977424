package mongodb

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ttguo7/kid-activity-platform/internal/domain"
	"github.com/ttguo7/kid-activity-platform/internal/repository"
)

func TestIDFilters_HexString(t *testing.T) {
	oid := primitive.NewObjectID()
	filters := idFilters(oid.Hex())

	// 合法的十六进制先按 ObjectID 查，再退回字符串字面值
	require.Len(t, filters, 2)
	assert.Equal(t, bson.M{"_id": oid}, filters[0])
	assert.Equal(t, bson.M{"_id": oid.Hex()}, filters[1])
}

func TestIDFilters_NonHexString(t *testing.T) {
	filters := idFilters("seed-activity-1")

	require.Len(t, filters, 1)
	assert.Equal(t, bson.M{"_id": "seed-activity-1"}, filters[0])
}

// --- 集成测试：需要真实的 MongoDB，设置 MONGODB_TEST_URI 后运行 ---

func testRepo(t *testing.T) *MongoActivityRepository {
	t.Helper()
	uri := os.Getenv("MONGODB_TEST_URI")
	if uri == "" {
		t.Skip("MONGODB_TEST_URI not set, skipping integration test")
	}

	dbName := "kid_activity_test"
	repo := NewMongoActivityRepository(uri, dbName, 10*time.Second)

	// 每个测试用干净的集合
	ctx := context.Background()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	require.NoError(t, err)
	require.NoError(t, client.Database(dbName).Collection(collectionName).Drop(ctx))
	require.NoError(t, client.Disconnect(ctx))

	return repo
}

func TestIntegration_InsertAndFindByID(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	id, err := repo.Insert(ctx, domain.Document{
		Title:       "Test",
		Description: "D",
		Images:      []string{},
		Status:      domain.StatusActive,
		CreatedAt:   time.Now(),
	})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	doc, err := repo.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Test", doc.Title)
	assert.Equal(t, "D", doc.Description)
}

func TestIntegration_FindByID_LiteralStringID(t *testing.T) {
	// 种子脚本可能用字符串 _id 写入，字面值匹配必须能找到
	repo := testRepo(t)
	ctx := context.Background()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(os.Getenv("MONGODB_TEST_URI")))
	require.NoError(t, err)
	defer client.Disconnect(ctx)
	_, err = client.Database("kid_activity_test").Collection(collectionName).
		InsertOne(ctx, bson.M{"_id": "seed-1", "title": "Seeded", "description": "D"})
	require.NoError(t, err)

	doc, err := repo.FindByID(ctx, "seed-1")
	require.NoError(t, err)
	assert.Equal(t, "Seeded", doc.Title)
	assert.Equal(t, "seed-1", domain.FormatID(doc.ID))
}

func TestIntegration_ReplaceDoesNotTouchCreatedAt(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	created := time.Date(2025, 7, 4, 12, 0, 0, 0, time.UTC)
	id, err := repo.Insert(ctx, domain.Document{Title: "Old", Description: "Old", CreatedAt: created})
	require.NoError(t, err)

	err = repo.Replace(ctx, id, domain.Document{
		Title:       "New",
		Description: "New",
		Images:      []string{},
		Status:      domain.StatusActive,
		UpdatedAt:   time.Now(),
	})
	require.NoError(t, err)

	doc, err := repo.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "New", doc.Title)
	assert.WithinDuration(t, created, doc.CreatedAt, time.Second)
	assert.False(t, doc.UpdatedAt.IsZero())
}

func TestIntegration_DeleteTwice(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	id, err := repo.Insert(ctx, domain.Document{Title: "T", Description: "D"})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, id))
	assert.ErrorIs(t, repo.Delete(ctx, id), repository.ErrNotFound)
}

func TestIntegration_FindAllCategoryFilter(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	docs := []domain.Document{
		{Title: "一", Description: "D", Category: "艺术文化"},
		{Title: "二", Description: "D", Category: "户外运动"},
		{Title: "三", Description: "D", Category: "节日庆典"},
	}
	_, err := repo.InsertMany(ctx, docs)
	require.NoError(t, err)

	matched, err := repo.FindAll(ctx, "艺术文化")
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, "一", matched[0].Title)

	all, err := repo.FindAll(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestIntegration_FindTitles(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	_, err := repo.InsertMany(ctx, []domain.Document{
		{Title: "已存在", Description: "D"},
	})
	require.NoError(t, err)

	existing, err := repo.FindTitles(ctx, []string{"已存在", "不存在"})
	require.NoError(t, err)
	assert.Equal(t, []string{"已存在"}, existing)
}
