package service

import (
	"time"

	"github.com/KannamTejaswi311/NutriTrack/internal/dto"
	"github.com/KannamTejaswi311/NutriTrack/internal/mealmatch"
)

type mealService struct {
	catalog []mealmatch.Recipe
	now     func() time.Time
}

func newMealService(opts Options) Meal {
	return &mealService{
		catalog: opts.Catalog,
		now:     opts.Now,
	}
}

func (s *mealService) Catalog() []mealmatch.Recipe {
	catalog := make([]mealmatch.Recipe, len(s.catalog))
	copy(catalog, s.catalog)
	return catalog
}

func (s *mealService) Suggest(input dto.SuggestMealsRequest) (*dto.SuggestMealsResponse, error) {
	if input.Inventory == nil && input.Items == nil {
		return nil, newValidationError("inventory", ErrEmptyInventory.Error())
	}

	names := make([]string, 0, len(input.Inventory)+len(input.Items))
	names = append(names, input.Inventory...)
	names = append(names, mealmatch.InventoryNames(input.Items)...)

	suggestions := mealmatch.Suggest(names, s.catalog)

	return &dto.SuggestMealsResponse{
		Cookable:         suggestions.Cookable,
		Almost:           suggestions.Almost,
		MissingNutrients: mealmatch.MissingNutrients(names, mealmatch.EssentialNutrients),
		HealthScore:      mealmatch.HealthScore(names),
		Expiring:         mealmatch.ExpiringItems(input.Items, s.now()),
	}, nil
}
