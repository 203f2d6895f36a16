package closet

import (
	"testing"

	"wardrobeapi/models"

	"github.com/stretchr/testify/assert"
)

func TestInferCategory(t *testing.T) {
	cases := []struct {
		name string
		item models.ClothingItem
		want models.Category
	}{
		{"boots in notes", models.ClothingItem{Primary: models.PrimaryBottom, Notes: "Leather Boots"}, models.CategoryShoes},
		{"chinese shoes", models.ClothingItem{Primary: models.PrimaryTop, Notes: "白色运动鞋"}, models.CategoryShoes},
		{"bag", models.ClothingItem{Primary: models.PrimaryTop, Notes: "canvas tote bag"}, models.CategoryAccessory},
		{"scarf chinese", models.ClothingItem{Primary: models.PrimaryTop, Notes: "羊毛围巾"}, models.CategoryAccessory},
		{"shoes beat accessory", models.ClothingItem{Notes: "shoe bag"}, models.CategoryShoes},
		{"outer secondary", models.ClothingItem{Primary: models.PrimaryTop, Secondary: models.SecondaryOuter}, models.CategoryOuterwear},
		{"coat notes", models.ClothingItem{Primary: models.PrimaryTop, Secondary: models.SecondaryInner, Notes: "wool coat"}, models.CategoryOuterwear},
		{"down jacket chinese", models.ClothingItem{Primary: models.PrimaryTop, Notes: "黑色羽绒服"}, models.CategoryOuterwear},
		{"accessory beats outer", models.ClothingItem{Secondary: models.SecondaryOuter, Notes: "knit beanie"}, models.CategoryAccessory},
		{"bottom", models.ClothingItem{Primary: models.PrimaryBottom, Secondary: models.SecondaryUnknown}, models.CategoryBottom},
		{"top", models.ClothingItem{Primary: models.PrimaryTop, Notes: "striped shirt"}, models.CategoryTop},
		{"substring inside a word", models.ClothingItem{Primary: models.PrimaryTop, Notes: "chatty bootleg print"}, models.CategoryShoes},
		{"rainboots", models.ClothingItem{Primary: models.PrimaryTop, Secondary: models.SecondaryInner, Notes: "rainboots"}, models.CategoryShoes},
		{"snowboots", models.ClothingItem{Primary: models.PrimaryTop, Secondary: models.SecondaryInner, Notes: "SnowBoots"}, models.CategoryShoes},
		{"downjacket", models.ClothingItem{Primary: models.PrimaryTop, Secondary: models.SecondaryInner, Notes: "downjacket"}, models.CategoryOuterwear},
		{"raincoat", models.ClothingItem{Primary: models.PrimaryTop, Notes: "yellow raincoat"}, models.CategoryOuterwear},
		{"handbag compound", models.ClothingItem{Primary: models.PrimaryTop, Notes: "leather handbags"}, models.CategoryAccessory},
		{"cap sleeve stays top", models.ClothingItem{Primary: models.PrimaryTop, Secondary: models.SecondaryInner, Notes: "black cap-sleeve blouse"}, models.CategoryTop},
		{"baggy stays bottom", models.ClothingItem{Primary: models.PrimaryBottom, Notes: "baggy jeans"}, models.CategoryBottom},
		{"unknown", models.ClothingItem{Primary: "dress"}, models.CategoryUnknown},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, InferCategory(tc.item))
			assert.Equal(t, tc.want, InferCategory(tc.item), "same input, same category")
		})
	}
}

func TestCategoryRulesEndWithFallback(t *testing.T) {
	last := CategoryRules[len(CategoryRules)-1]
	assert.Equal(t, models.CategoryUnknown, last.Category)
	assert.True(t, last.Match(models.ClothingItem{}, Notes{}))
}

func TestGroup(t *testing.T) {
	items := []models.ClothingItem{
		{ID: "1", Category: models.CategoryTop},
		{ID: "2", Category: models.CategoryShoes},
		{ID: "3"},
		{ID: "4", Category: models.CategoryTop},
		{ID: "5", Category: "hats"},
		{ID: "6", Category: models.CategoryOuterwear},
	}
	buckets := Group(items)

	var order []models.Category
	for _, b := range buckets {
		order = append(order, b.Category)
	}
	assert.Equal(t, []models.Category{models.CategoryOuterwear, models.CategoryTop, models.CategoryShoes, models.CategoryUnknown}, order)
	assert.Equal(t, "1", buckets[1].Items[0].ID)
	assert.Equal(t, "4", buckets[1].Items[1].ID)
	assert.Len(t, buckets[3].Items, 2)
	assert.Empty(t, Group(nil))
}
