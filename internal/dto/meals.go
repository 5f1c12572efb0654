package dto

import "github.com/KannamTejaswi311/NutriTrack/internal/mealmatch"

// SuggestMealsRequest accepts either plain ingredient names or full
// inventory items. Names from both are matched together.
type SuggestMealsRequest struct {
	Inventory []string                  `json:"inventory"`
	Items     []mealmatch.InventoryItem `json:"items"`
}

type SuggestMealsResponse struct {
	Cookable         []mealmatch.Recipe        `json:"cookable"`
	Almost           []mealmatch.Partial       `json:"almost"`
	MissingNutrients []string                  `json:"missingNutrients"`
	HealthScore      int                       `json:"healthScore"`
	Expiring         []mealmatch.InventoryItem `json:"expiring"`
}
