// Package mealmatch classifies recipes against an ingredient inventory.
//
// Everything here is pure: the same inventory and catalog always produce the
// same suggestions, and nothing performs I/O.
package mealmatch

import "strings"

type Recipe struct {
	Name        string   `json:"name"`
	Ingredients []string `json:"ingredients"`
	Nutrients   []string `json:"nutrients"`
	Time        string   `json:"time"`
	Steps       []string `json:"steps,omitempty"`
	Image       string   `json:"image,omitempty"`
	VideoURL    string   `json:"videoUrl,omitempty"`
}

// Partial is a recipe with at least one but not all ingredients on hand.
// Available and Missing keep the recipe's ingredient order and spelling.
type Partial struct {
	Recipe    Recipe   `json:"recipe"`
	Available []string `json:"available"`
	Missing   []string `json:"missing"`
}

type Suggestions struct {
	Cookable []Recipe  `json:"cookable"`
	Almost   []Partial `json:"almost"`
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func inventorySet(inventory []string) map[string]struct{} {
	set := make(map[string]struct{}, len(inventory))
	for _, name := range inventory {
		key := normalize(name)
		if key == "" {
			continue
		}
		set[key] = struct{}{}
	}
	return set
}

// Suggest splits catalog into cookable and almost-cookable recipes, both in
// catalog order. Recipes with no matching ingredient are left out. A recipe
// without ingredients needs nothing and is always cookable.
func Suggest(inventory []string, catalog []Recipe) Suggestions {
	have := inventorySet(inventory)

	result := Suggestions{
		Cookable: []Recipe{},
		Almost:   []Partial{},
	}
	for _, recipe := range catalog {
		var available, missing []string
		for _, ingredient := range recipe.Ingredients {
			if _, ok := have[normalize(ingredient)]; ok {
				available = append(available, ingredient)
			} else {
				missing = append(missing, ingredient)
			}
		}

		switch {
		case len(missing) == 0:
			result.Cookable = append(result.Cookable, recipe)
		case len(available) > 0:
			result.Almost = append(result.Almost, Partial{
				Recipe:    recipe,
				Available: available,
				Missing:   missing,
			})
		}
	}

	return result
}
