package closet

import (
	"context"

	"wardrobeapi/models"
)

// ResolvedDay is an OutfitDay with its ids looked up in the wardrobe. A slot
// whose id no longer exists stays nil.
type ResolvedDay struct {
	Day    models.DayOfWeek
	Top    *models.ClothingItem
	Bottom *models.ClothingItem
	Outer  *models.ClothingItem
	Reason string
}

func CanGenerate(n int) bool {
	return models.CheckWardrobeSize(n) == nil
}

func Resolve(plan *models.WeeklyPlan, items []models.ClothingItem) []ResolvedDay {
	if plan == nil {
		return nil
	}
	days := make([]ResolvedDay, 0, len(plan.Days))
	for _, day := range plan.Days {
		days = append(days, ResolvedDay{
			Day:    day.Day,
			Top:    findItem(items, day.TopID),
			Bottom: findItem(items, day.BottomID),
			Outer:  findItem(items, day.OuterID),
			Reason: day.Reason,
		})
	}
	return days
}

func findItem(items []models.ClothingItem, id string) *models.ClothingItem {
	if id == "" {
		return nil
	}
	for i := range items {
		if items[i].ID == id {
			item := items[i]
			return &item
		}
	}
	return nil
}

// PlanView is what the plan page shows: the saved plan against the current
// wardrobe and whether a new one may be requested.
type PlanView struct {
	Days        []ResolvedDay
	HasPlan     bool
	CanGenerate bool
	ItemCount   int
}

func (s *Service) Plan(ctx context.Context) (*PlanView, error) {
	items, err := s.Store.GetCloset(ctx)
	if err != nil {
		return nil, err
	}
	plan, err := s.Store.GetPlan(ctx)
	if err != nil {
		return nil, err
	}
	return &PlanView{
		Days:        Resolve(plan, items),
		HasPlan:     plan != nil,
		CanGenerate: CanGenerate(len(items)),
		ItemCount:   len(items),
	}, nil
}

// GeneratePlan replaces the saved plan with a fresh one for the whole wardrobe.
func (s *Service) GeneratePlan(ctx context.Context, prefs models.Preferences) (*PlanView, error) {
	items, err := s.Store.GetCloset(ctx)
	if err != nil {
		return nil, err
	}
	if err := models.CheckWardrobeSize(len(items)); err != nil {
		return nil, err
	}
	plan, err := s.Planner.Plan(ctx, items, prefs)
	if err != nil {
		return nil, err
	}
	if err := s.Store.SavePlan(ctx, plan); err != nil {
		return nil, err
	}
	return &PlanView{
		Days:        Resolve(plan, items),
		HasPlan:     true,
		CanGenerate: true,
		ItemCount:   len(items),
	}, nil
}
