package mealmatch

import "sort"

// EssentialNutrients maps a nutrient group to foods that cover it.
var EssentialNutrients = map[string][]string{
	"Protein": {"Green Gram", "Lentils", "Eggs"},
	"Iron":    {"Spinach", "Drumstick Leaves", "Jaggery"},
	"Calcium": {"Ragi", "Milk", "Curd"},
	"Fiber":   {"Vegetables", "Whole Grains"},
}

// MissingNutrients returns the groups in essentials with no food present in
// available, sorted by name.
func MissingNutrients(available []string, essentials map[string][]string) []string {
	have := inventorySet(available)

	missing := []string{}
	for nutrient, foods := range essentials {
		covered := false
		for _, food := range foods {
			if _, ok := have[normalize(food)]; ok {
				covered = true
				break
			}
		}
		if !covered {
			missing = append(missing, nutrient)
		}
	}

	sort.Strings(missing)
	return missing
}

// HealthScore rewards diversity: 10 points per distinct item, capped at 100.
func HealthScore(available []string) int {
	score := len(inventorySet(available)) * 10
	if score > 100 {
		return 100
	}
	return score
}

func DefaultCatalog() []Recipe {
	return []Recipe{
		{
			Name:        "Spinach Dal Rice",
			Time:        "30 mins",
			Nutrients:   []string{"High Protein"},
			Ingredients: []string{"Rice", "Dal", "Spinach"},
		},
		{
			Name:        "Tomato Onion Curry",
			Time:        "20 mins",
			Nutrients:   []string{"Vitamin C Rich"},
			Ingredients: []string{"Tomatoes", "Onions"},
		},
		{
			Name:        "Plain Rice",
			Time:        "15 mins",
			Nutrients:   []string{"Basic Carbs"},
			Ingredients: []string{"Rice"},
		},
		{
			Name:        "Onion Dal",
			Time:        "25 mins",
			Nutrients:   []string{"Protein", "Fiber"},
			Ingredients: []string{"Onions", "Dal"},
		},
		{
			Name:        "Family Breakfast",
			Time:        "20 mins",
			Nutrients:   []string{"High Fiber", "Protein Rich"},
			Ingredients: []string{"Oats", "Milk", "Banana", "Honey"},
		},
		{
			Name:        "Quick Lunch",
			Time:        "30 mins",
			Nutrients:   []string{"Complete Protein", "Iron Rich"},
			Ingredients: []string{"Rice", "Dal", "Vegetables", "Spices"},
		},
		{
			Name:        "Healthy Dinner",
			Time:        "40 mins",
			Nutrients:   []string{"Balanced Meal", "Probiotics"},
			Ingredients: []string{"Chapati", "Sabzi", "Curd", "Pickle"},
		},
	}
}
