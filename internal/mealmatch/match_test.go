package mealmatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var spinachDalRice = Recipe{Name: "Spinach Dal Rice", Ingredients: []string{"Rice", "Dal", "Spinach"}}

func TestSuggestPartialMatch(t *testing.T) {
	got := Suggest([]string{"Rice", "Dal"}, []Recipe{spinachDalRice})

	assert.Empty(t, got.Cookable)
	require.Len(t, got.Almost, 1)
	assert.Equal(t, "Spinach Dal Rice", got.Almost[0].Recipe.Name)
	assert.Equal(t, []string{"Rice", "Dal"}, got.Almost[0].Available)
	assert.Equal(t, []string{"Spinach"}, got.Almost[0].Missing)
}

func TestSuggestFullMatch(t *testing.T) {
	got := Suggest([]string{"Rice", "Dal", "Spinach"}, []Recipe{spinachDalRice})

	require.Len(t, got.Cookable, 1)
	assert.Equal(t, "Spinach Dal Rice", got.Cookable[0].Name)
	assert.Empty(t, got.Almost)
}

func TestSuggestEmptyInventory(t *testing.T) {
	got := Suggest(nil, DefaultCatalog())

	assert.Empty(t, got.Cookable)
	assert.Empty(t, got.Almost)
}

func TestSuggestCaseInsensitiveAndTrimmed(t *testing.T) {
	got := Suggest([]string{"  rice ", "DAL", "spinach"}, []Recipe{spinachDalRice})

	require.Len(t, got.Cookable, 1)
}

func TestSuggestExcludesUnmatched(t *testing.T) {
	got := Suggest([]string{"Oats"}, []Recipe{spinachDalRice})

	assert.Empty(t, got.Cookable)
	assert.Empty(t, got.Almost)
}

func TestSuggestKeepsCatalogOrder(t *testing.T) {
	got := Suggest([]string{"Rice", "Dal", "Onions"}, DefaultCatalog())

	var cookable []string
	for _, r := range got.Cookable {
		cookable = append(cookable, r.Name)
	}
	assert.Equal(t, []string{"Plain Rice", "Onion Dal"}, cookable)

	var almost []string
	for _, p := range got.Almost {
		almost = append(almost, p.Recipe.Name)
	}
	assert.Equal(t, []string{"Spinach Dal Rice", "Tomato Onion Curry", "Quick Lunch"}, almost)
}

func TestSuggestRecipeWithoutIngredients(t *testing.T) {
	water := Recipe{Name: "Water"}

	got := Suggest(nil, []Recipe{water})

	require.Len(t, got.Cookable, 1)
	assert.Equal(t, "Water", got.Cookable[0].Name)
}

func TestSuggestIsDeterministic(t *testing.T) {
	inventory := []string{"Rice", "Milk", "Onions"}
	assert.Equal(t, Suggest(inventory, DefaultCatalog()), Suggest(inventory, DefaultCatalog()))
}

func TestMissingNutrients(t *testing.T) {
	missing := MissingNutrients([]string{"eggs", "Spinach"}, EssentialNutrients)
	assert.Equal(t, []string{"Calcium", "Fiber"}, missing)

	assert.Equal(t, []string{"Calcium", "Fiber", "Iron", "Protein"}, MissingNutrients(nil, EssentialNutrients))
}

func TestHealthScore(t *testing.T) {
	assert.Equal(t, 0, HealthScore(nil))
	assert.Equal(t, 20, HealthScore([]string{"Rice", "rice", "Dal"}))

	many := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l"}
	assert.Equal(t, 100, HealthScore(many))
}
