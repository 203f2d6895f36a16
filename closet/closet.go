package closet

import (
	"context"
	"errors"
	"fmt"

	"wardrobeapi/models"
	"wardrobeapi/store"

	"github.com/sirupsen/logrus"
)

var (
	ErrItemNotFound    = errors.New("clothing item not found")
	ErrInvalidCategory = errors.New("invalid category")
)

type Classifier interface {
	Classify(ctx context.Context, images []string) ([]models.ClothingItem, error)
}

type Planner interface {
	Plan(ctx context.Context, items []models.ClothingItem, prefs models.Preferences) (*models.WeeklyPlan, error)
}

// Service runs the wardrobe and plan views over the persistent store. Every
// method loads the current state, edits it and writes it back.
type Service struct {
	Store      *store.Store
	Classifier Classifier
	Planner    Planner
}

func NewService(s *store.Store, classifier Classifier, planner Planner) *Service {
	return &Service{Store: s, Classifier: classifier, Planner: planner}
}

func (s *Service) Items(ctx context.Context) ([]models.ClothingItem, error) {
	return s.Store.GetCloset(ctx)
}

// Upload classifies one batch of photos and appends the result to the
// wardrobe. Nothing is saved when classification fails.
func (s *Service) Upload(ctx context.Context, images []string) ([]models.ClothingItem, error) {
	classified, err := s.Classifier.Classify(ctx, images)
	if err != nil {
		return nil, err
	}
	for i := range classified {
		classified[i].Category = InferCategory(classified[i])
	}

	items, err := s.Store.GetCloset(ctx)
	if err != nil {
		return nil, err
	}
	items = append(items, classified...)
	if err := s.Store.SaveCloset(ctx, items); err != nil {
		return nil, err
	}
	logrus.WithFields(logrus.Fields{
		"added": len(classified),
		"total": len(items),
	}).Info("wardrobe updated")
	return classified, nil
}

func (s *Service) Remove(ctx context.Context, id string) error {
	items, err := s.Store.GetCloset(ctx)
	if err != nil {
		return err
	}
	kept := make([]models.ClothingItem, 0, len(items))
	for _, item := range items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	if len(kept) == len(items) {
		return fmt.Errorf("%w: %s", ErrItemNotFound, id)
	}
	return s.Store.SaveCloset(ctx, kept)
}

func (s *Service) Recategorize(ctx context.Context, id string, category models.Category) (*models.ClothingItem, error) {
	if !category.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCategory, category)
	}
	items, err := s.Store.GetCloset(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ID != id {
			continue
		}
		items[i].Category = category
		if err := s.Store.SaveCloset(ctx, items); err != nil {
			return nil, err
		}
		updated := items[i]
		return &updated, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrItemNotFound, id)
}

// Clear drops the wardrobe together with the saved plan.
func (s *Service) Clear(ctx context.Context) error {
	return s.Store.ClearAll(ctx)
}
