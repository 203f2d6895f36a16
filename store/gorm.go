package store

import (
	"context"
	"errors"
	"time"

	"wardrobeapi/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormKV stores each key as a row of the documents table.
type GormKV struct {
	db *gorm.DB
}

func NewGormKV(db *gorm.DB) *GormKV {
	return &GormKV{db: db}
}

func (g *GormKV) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var doc models.Document
	err := g.db.WithContext(ctx).Where("name = ?", key).First(&doc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return []byte(doc.Value), true, nil
}

func (g *GormKV) Set(ctx context.Context, key string, value []byte) error {
	doc := models.Document{Name: key, Value: string(value), UpdatedAt: time.Now()}
	return g.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&doc).Error
}

func (g *GormKV) Delete(ctx context.Context, key string) error {
	return g.db.WithContext(ctx).Where("name = ?", key).Delete(&models.Document{}).Error
}
