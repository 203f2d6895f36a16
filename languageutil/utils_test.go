package languageutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFold(t *testing.T) {
	assert.Equal(t, "black leather-boots", Fold("Black LEATHER-Boots"))
	assert.Equal(t, "羽绒服", Fold("羽绒服"))
}

func TestHasFragment(t *testing.T) {
	assert.True(t, HasFragment("黑色羽绒服", "羽绒服"))
	assert.True(t, HasFragment("Wool COAT", "coat"))
	assert.True(t, HasFragment("RainBoots", "boot"))
	assert.True(t, HasFragment("chatty print", "hat"))
	assert.False(t, HasFragment("衬衫", "外套"))
}
