package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ttguo7/kid-activity-platform/internal/domain"
	"github.com/ttguo7/kid-activity-platform/internal/repository"
)

const collectionName = "activities"

// MongoActivityRepository 基于 MongoDB 实现 repository.ActivityRepository。
// 每次操作独立建立连接并在退出时断开，不做连接池共享。
type MongoActivityRepository struct {
	uri      string
	database string
	timeout  time.Duration
}

// NewMongoActivityRepository 创建 MongoActivityRepository 实例。
func NewMongoActivityRepository(uri, database string, timeout time.Duration) *MongoActivityRepository {
	if uri == "" {
		panic("mongodb uri cannot be empty for MongoActivityRepository")
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &MongoActivityRepository{uri: uri, database: database, timeout: timeout}
}

// withCollection 建立连接、执行 fn、保证断开连接（包括错误路径）。
func (r *MongoActivityRepository) withCollection(ctx context.Context, fn func(ctx context.Context, coll *mongo.Collection) error) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(r.uri))
	if err != nil {
		return fmt.Errorf("connect mongodb: %w", err)
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	return fn(ctx, client.Database(r.database).Collection(collectionName))
}

// idFilters 返回候选的 _id 过滤条件，按优先级排列：
// 能解析成 ObjectID 就先按 ObjectID 查，之后总是再按字符串字面值查一次，
// 覆盖种子脚本用非原生标识符写入的文档。
func idFilters(id string) []bson.M {
	filters := make([]bson.M, 0, 2)
	if oid, err := primitive.ObjectIDFromHex(id); err == nil {
		filters = append(filters, bson.M{"_id": oid})
	}
	filters = append(filters, bson.M{"_id": id})
	return filters
}

func (r *MongoActivityRepository) FindAll(ctx context.Context, category string) ([]domain.Document, error) {
	filter := bson.M{}
	if category != "" {
		filter["category"] = category
	}

	var docs []domain.Document
	err := r.withCollection(ctx, func(ctx context.Context, coll *mongo.Collection) error {
		cursor, err := coll.Find(ctx, filter)
		if err != nil {
			return fmt.Errorf("find activities: %w", err)
		}
		defer cursor.Close(ctx)
		if err := cursor.All(ctx, &docs); err != nil {
			return fmt.Errorf("decode activities: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return docs, nil
}

func (r *MongoActivityRepository) FindByID(ctx context.Context, id string) (*domain.Document, error) {
	var doc *domain.Document
	err := r.withCollection(ctx, func(ctx context.Context, coll *mongo.Collection) error {
		for _, filter := range idFilters(id) {
			var found domain.Document
			err := coll.FindOne(ctx, filter).Decode(&found)
			if err == nil {
				doc = &found
				return nil
			}
			if !errors.Is(err, mongo.ErrNoDocuments) {
				return fmt.Errorf("find activity: %w", err)
			}
		}
		return repository.ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return doc, nil
}

func (r *MongoActivityRepository) Insert(ctx context.Context, doc domain.Document) (string, error) {
	var id string
	err := r.withCollection(ctx, func(ctx context.Context, coll *mongo.Collection) error {
		result, err := coll.InsertOne(ctx, doc)
		if err != nil {
			return fmt.Errorf("insert activity: %w", err)
		}
		id = domain.FormatID(result.InsertedID)
		return nil
	})
	if err != nil {
		return "", err
	}
	return id, nil
}

func (r *MongoActivityRepository) Replace(ctx context.Context, id string, doc domain.Document) error {
	// 显式列出可编辑字段做 $set，整体覆盖但不碰 _id 和 createdAt
	update := bson.M{"$set": bson.M{
		"title":       doc.Title,
		"description": doc.Description,
		"date":        doc.Date,
		"location":    doc.Location,
		"ageRange":    doc.AgeRange,
		"price":       doc.Price,
		"images":      doc.Images,
		"category":    doc.Category,
		"status":      doc.Status,
		"updatedAt":   doc.UpdatedAt,
	}}

	return r.withCollection(ctx, func(ctx context.Context, coll *mongo.Collection) error {
		for _, filter := range idFilters(id) {
			result, err := coll.UpdateOne(ctx, filter, update)
			if err != nil {
				return fmt.Errorf("update activity: %w", err)
			}
			if result.MatchedCount > 0 {
				return nil
			}
		}
		return repository.ErrNotFound
	})
}

func (r *MongoActivityRepository) Delete(ctx context.Context, id string) error {
	return r.withCollection(ctx, func(ctx context.Context, coll *mongo.Collection) error {
		for _, filter := range idFilters(id) {
			result, err := coll.DeleteOne(ctx, filter)
			if err != nil {
				return fmt.Errorf("delete activity: %w", err)
			}
			if result.DeletedCount > 0 {
				return nil
			}
		}
		return repository.ErrNotFound
	})
}

func (r *MongoActivityRepository) UpdateImagesByTitle(ctx context.Context, title string, images []string) error {
	if images == nil {
		images = []string{}
	}
	return r.withCollection(ctx, func(ctx context.Context, coll *mongo.Collection) error {
		result, err := coll.UpdateOne(ctx,
			bson.M{"title": title},
			bson.M{"$set": bson.M{"images": images, "updatedAt": time.Now()}})
		if err != nil {
			return fmt.Errorf("update activity images: %w", err)
		}
		if result.MatchedCount == 0 {
			return repository.ErrNotFound
		}
		return nil
	})
}

func (r *MongoActivityRepository) FindTitles(ctx context.Context, titles []string) ([]string, error) {
	existing := make([]string, 0, len(titles))
	err := r.withCollection(ctx, func(ctx context.Context, coll *mongo.Collection) error {
		cursor, err := coll.Find(ctx,
			bson.M{"title": bson.M{"$in": titles}},
			options.Find().SetProjection(bson.M{"title": 1}))
		if err != nil {
			return fmt.Errorf("find titles: %w", err)
		}
		defer cursor.Close(ctx)

		var docs []struct {
			Title string `bson:"title"`
		}
		if err := cursor.All(ctx, &docs); err != nil {
			return fmt.Errorf("decode titles: %w", err)
		}
		for _, d := range docs {
			existing = append(existing, d.Title)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return existing, nil
}

func (r *MongoActivityRepository) InsertMany(ctx context.Context, docs []domain.Document) ([]string, error) {
	var ids []string
	err := r.withCollection(ctx, func(ctx context.Context, coll *mongo.Collection) error {
		payload := make([]interface{}, 0, len(docs))
		for _, doc := range docs {
			payload = append(payload, doc)
		}
		result, err := coll.InsertMany(ctx, payload)
		if err != nil {
			return fmt.Errorf("insert activities: %w", err)
		}
		ids = make([]string, 0, len(result.InsertedIDs))
		for _, insertedID := range result.InsertedIDs {
			ids = append(ids, domain.FormatID(insertedID))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ids, nil
}
