package docstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// documentRecord 所有集合共用一张documents表，集合名+JSON负载
type documentRecord struct {
	ID         string `gorm:"primaryKey;type:varchar(36)"`
	Collection string `gorm:"index:idx_documents_collection;type:varchar(64)"`
	Data       datatypes.JSON
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (documentRecord) TableName() string {
	return "documents"
}

// AutoMigrate 建表，启动时由database包调用
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&documentRecord{})
}

// GormStore 基于 gorm + JSON 列的 Store 实现
type GormStore struct {
	DB *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{DB: db}
}

func (s *GormStore) Get(collection, id string) (Document, error) {
	var rec documentRecord
	err := s.DB.Where("collection = ? AND id = ?", collection, id).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return recordToDocument(&rec)
}

func (s *GormStore) Query(collection string, filter map[string]any) ([]Document, error) {
	return s.query(collection, filter, "")
}

func (s *GormStore) QueryOrdered(collection string, filter map[string]any, orderField string) ([]Document, error) {
	return s.query(collection, filter, orderField)
}

func (s *GormStore) query(collection string, filter map[string]any, orderField string) ([]Document, error) {
	tx := s.DB.Where("collection = ?", collection)
	for field, value := range filter {
		tx = tx.Where(datatypes.JSONQuery("data").Equals(value, field))
	}
	if orderField != "" {
		tx = tx.Order(fmt.Sprintf("CAST(JSON_EXTRACT(data, '$.%s') AS DECIMAL) ASC", orderField))
	}

	var recs []documentRecord
	if err := tx.Find(&recs).Error; err != nil {
		return nil, err
	}

	docs := make([]Document, 0, len(recs))
	for i := range recs {
		doc, err := recordToDocument(&recs[i])
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

func (s *GormStore) Create(collection string, fields Document) (string, error) {
	payload := fields.Clone()
	delete(payload, "id")

	data, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	rec := documentRecord{
		ID:         uuid.New().String(),
		Collection: collection,
		Data:       data,
	}
	if err := s.DB.Create(&rec).Error; err != nil {
		return "", err
	}
	return rec.ID, nil
}

// Update 读-改-写合并部分字段。与Firestore的update语义一致：文档不存在时报错
func (s *GormStore) Update(collection, id string, partial Document) error {
	var rec documentRecord
	err := s.DB.Where("collection = ? AND id = ?", collection, id).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	current := Document{}
	if len(rec.Data) > 0 {
		if err := json.Unmarshal(rec.Data, &current); err != nil {
			return err
		}
	}
	for k, v := range partial {
		if k == "id" {
			continue
		}
		current[k] = v
	}

	data, err := json.Marshal(current)
	if err != nil {
		return err
	}
	return s.DB.Model(&documentRecord{}).
		Where("collection = ? AND id = ?", collection, id).
		Update("data", datatypes.JSON(data)).
		Error
}

func (s *GormStore) Delete(collection, id string) error {
	return s.DB.Where("collection = ? AND id = ?", collection, id).Delete(&documentRecord{}).Error
}

func recordToDocument(rec *documentRecord) (Document, error) {
	doc := Document{}
	if len(rec.Data) > 0 {
		if err := json.Unmarshal(rec.Data, &doc); err != nil {
			return nil, err
		}
	}
	doc["id"] = rec.ID
	return doc, nil
}
