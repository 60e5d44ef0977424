package domain

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StatusActive 是活动的默认状态，核心逻辑只定义了这一种状态
const StatusActive = "active"

// Activity 是对外输出的活动结构，所有字段保证存在（缺失字段由 FormatDocument 填充默认值）
type Activity struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Date        string   `json:"date"`
	Location    string   `json:"location"`
	AgeRange    string   `json:"ageRange"`
	Price       float64  `json:"price"`
	Images      []string `json:"images"`
	Category    string   `json:"category"`
	Status      string   `json:"status"`
}

// Document 是存储在 activities 集合中的原始文档。
// _id 可能是 ObjectID，也可能是种子脚本写入的字符串，所以用 any 承载。
type Document struct {
	ID          any       `bson:"_id,omitempty"`
	Title       string    `bson:"title"`
	Description string    `bson:"description"`
	Date        string    `bson:"date"`
	Location    string    `bson:"location"`
	AgeRange    string    `bson:"ageRange"`
	Price       float64   `bson:"price"`
	Images      []string  `bson:"images"`
	Category    string    `bson:"category"`
	Status      string    `bson:"status"`
	CreatedAt   time.Time `bson:"createdAt,omitempty"`
	UpdatedAt   time.Time `bson:"updatedAt,omitempty"`
}

// ActivityInput 是创建/更新活动的请求体。除 Title 和 Description 外都是可选字段。
type ActivityInput struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Date        string   `json:"date"`
	Location    string   `json:"location"`
	AgeRange    string   `json:"ageRange"`
	Price       float64  `json:"price"`
	Images      []string `json:"images"`
	Category    string   `json:"category"`
}

// FormatID 把存储层的原生标识符转成对外的字符串形式
func FormatID(id any) string {
	switch v := id.(type) {
	case primitive.ObjectID:
		return v.Hex()
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

// FormatDocument 把原始文档映射为稳定的输出结构。
// 纯函数：不做校验，缺失字段一律填默认值，images 永远不为 nil。
func FormatDocument(doc Document) Activity {
	activity := Activity{
		ID:          FormatID(doc.ID),
		Title:       doc.Title,
		Description: doc.Description,
		Date:        doc.Date,
		Location:    doc.Location,
		AgeRange:    doc.AgeRange,
		Price:       doc.Price,
		Images:      doc.Images,
		Category:    doc.Category,
		Status:      doc.Status,
	}
	if activity.Images == nil {
		activity.Images = []string{}
	}
	if activity.Status == "" {
		activity.Status = StatusActive
	}
	return activity
}
