package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"wardrobeapi/models"

	"github.com/sirupsen/logrus"
)

const (
	ClosetKey = "outfit-planner-closet"
	PlanKey   = "outfit-planner-plan"
)

// KV is the byte level backend behind Store. Get reports a missing key with
// found=false and a nil error.
type KV interface {
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// Store keeps the wardrobe and the latest weekly plan as two JSON documents.
// There is no versioning: the last write wins.
type Store struct {
	kv KV
}

func New(kv KV) *Store {
	return &Store{kv: kv}
}

func (s *Store) SaveCloset(ctx context.Context, items []models.ClothingItem) error {
	if items == nil {
		items = []models.ClothingItem{}
	}
	return s.put(ctx, ClosetKey, items)
}

// GetCloset returns the saved wardrobe, or an empty list when nothing readable is stored.
func (s *Store) GetCloset(ctx context.Context) ([]models.ClothingItem, error) {
	items := []models.ClothingItem{}
	found, err := s.load(ctx, ClosetKey, &items)
	if err != nil {
		return nil, err
	}
	if !found || items == nil {
		return []models.ClothingItem{}, nil
	}
	return items, nil
}

func (s *Store) SavePlan(ctx context.Context, plan *models.WeeklyPlan) error {
	if plan == nil {
		return s.kv.Delete(ctx, PlanKey)
	}
	return s.put(ctx, PlanKey, plan)
}

// GetPlan returns the latest plan, nil when none is stored or it cannot be read.
func (s *Store) GetPlan(ctx context.Context) (*models.WeeklyPlan, error) {
	var plan *models.WeeklyPlan
	found, err := s.load(ctx, PlanKey, &plan)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return plan, nil
}

func (s *Store) ClearAll(ctx context.Context) error {
	return errors.Join(
		s.kv.Delete(ctx, ClosetKey),
		s.kv.Delete(ctx, PlanKey),
	)
}

func (s *Store) put(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := s.kv.Set(ctx, key, data); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// load decodes key into v. Corrupt data is logged and reported as not found.
func (s *Store) load(ctx context.Context, key string, v any) (bool, error) {
	data, found, err := s.kv.Get(ctx, key)
	if err != nil {
		return false, fmt.Errorf("load %s: %w", key, err)
	}
	if !found || len(data) == 0 {
		return false, nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		logrus.WithError(err).WithField("key", key).Warn("ignoring unreadable stored document")
		return false, nil
	}
	return true, nil
}
