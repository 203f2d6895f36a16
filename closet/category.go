package closet

import (
	"wardrobeapi/languageutil"
	"wardrobeapi/models"
)

// Rule assigns Category to items Match accepts. Rules are tried in order.
type Rule struct {
	Name     string
	Category models.Category
	Match    func(item models.ClothingItem, notes Notes) bool
}

// Notes is the case folded free text of an item.
type Notes struct {
	Text string
}

func newNotes(text string) Notes {
	return Notes{Text: languageutil.Fold(text)}
}

// Mentions reports whether any keyword occurs anywhere in the notes.
// "rainboots" mentions "boot", and so does "bootleg".
func (n Notes) Mentions(keywords ...string) bool {
	for _, keyword := range keywords {
		if languageutil.HasFragment(n.Text, keyword) {
			return true
		}
	}
	return false
}

// Short English words such as "hat", "cap" or "bag" are left out: as
// fragments they hit "chatty", "cap-sleeve" and "baggy".
var (
	footwearKeywords  = []string{"boot", "shoe", "sneaker", "loafer", "sandal", "靴", "鞋"}
	accessoryKeywords = []string{"handbag", "backpack", "tote", "beanie", "scarf", "scarves", "accessor", "包", "帽", "围巾", "配饰"}
	outerwearKeywords = []string{"coat", "jacket", "parka", "外套", "大衣", "羽绒服"}
)

// CategoryRules is the ordered heuristic used when an item enters the closet.
// The first matching rule wins; the last one always matches.
var CategoryRules = []Rule{
	{
		Name:     "footwear-notes",
		Category: models.CategoryShoes,
		Match: func(_ models.ClothingItem, notes Notes) bool {
			return notes.Mentions(footwearKeywords...)
		},
	},
	{
		Name:     "accessory-notes",
		Category: models.CategoryAccessory,
		Match: func(_ models.ClothingItem, notes Notes) bool {
			return notes.Mentions(accessoryKeywords...)
		},
	},
	{
		Name:     "outer-layer",
		Category: models.CategoryOuterwear,
		Match: func(item models.ClothingItem, notes Notes) bool {
			return item.Secondary == models.SecondaryOuter || notes.Mentions(outerwearKeywords...)
		},
	},
	{
		Name:     "bottom",
		Category: models.CategoryBottom,
		Match: func(item models.ClothingItem, _ Notes) bool {
			return item.Primary == models.PrimaryBottom
		},
	},
	{
		Name:     "top",
		Category: models.CategoryTop,
		Match: func(item models.ClothingItem, _ Notes) bool {
			return item.Primary == models.PrimaryTop
		},
	},
	{
		Name:     "fallback",
		Category: models.CategoryUnknown,
		Match: func(models.ClothingItem, Notes) bool {
			return true
		},
	},
}

func InferCategory(item models.ClothingItem) models.Category {
	notes := newNotes(item.Notes)
	for _, rule := range CategoryRules {
		if rule.Match(item, notes) {
			return rule.Category
		}
	}
	return models.CategoryUnknown
}
