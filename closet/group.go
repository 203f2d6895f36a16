package closet

import "wardrobeapi/models"

type Bucket struct {
	Category models.Category
	Items    []models.ClothingItem
}

// Group buckets items by category in display order, keeping the wardrobe
// order inside each bucket. Empty buckets are left out; items without a known
// category land in unknown.
func Group(items []models.ClothingItem) []Bucket {
	byCategory := map[models.Category][]models.ClothingItem{}
	for _, item := range items {
		category := item.Category
		if !category.Valid() {
			category = models.CategoryUnknown
		}
		byCategory[category] = append(byCategory[category], item)
	}

	buckets := make([]Bucket, 0, len(byCategory))
	for _, category := range models.Categories {
		if len(byCategory[category]) == 0 {
			continue
		}
		buckets = append(buckets, Bucket{Category: category, Items: byCategory[category]})
	}
	return buckets
}
