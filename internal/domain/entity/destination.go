package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// BudgetTier names one of the three daily budget estimates of a destination.
type BudgetTier string

const (
	BudgetTierBudget   BudgetTier = "budget"
	BudgetTierModerate BudgetTier = "moderate"
	BudgetTierLuxury   BudgetTier = "luxury"
)

// DailyBudget is the three-tier daily cost estimate of a destination.
type DailyBudget struct {
	Budget   float64 `json:"budget"`
	Moderate float64 `json:"moderate"`
	Luxury   float64 `json:"luxury"`
}

// TierFor returns the most comfortable tier whose estimate does not exceed
// amount. ok is false when even the cheapest tier is above amount.
func (b DailyBudget) TierFor(amount float64) (tier BudgetTier, ok bool) {
	switch {
	case b.Luxury > 0 && b.Luxury <= amount:
		return BudgetTierLuxury, true
	case b.Moderate > 0 && b.Moderate <= amount:
		return BudgetTierModerate, true
	case b.Budget <= amount:
		return BudgetTierBudget, true
	default:
		return "", false
	}
}

// Destination is read-mostly catalog reference data.
type Destination struct {
	ID                      uuid.UUID   `json:"id"`
	Name                    string      `json:"name"`
	Country                 string      `json:"country"`
	City                    string      `json:"city,omitempty"`
	Region                  string      `json:"region,omitempty"`
	Location                *orb.Point  `json:"location,omitempty"`
	Description             string      `json:"description,omitempty"`
	BestTimeToVisit         string      `json:"best_time_to_visit,omitempty"`
	AverageTemperatureRange string      `json:"average_temperature_range,omitempty"`
	PopularActivities       []string    `json:"popular_activities"`
	EstimatedDailyBudget    DailyBudget `json:"estimated_daily_budget"`
	Tags                    []string    `json:"tags"`
	IsPopular               bool        `json:"is_popular"`
	PopularityScore         int         `json:"popularity_score"`
	CreatedAt               time.Time   `json:"created_at"`
	UpdatedAt               time.Time   `json:"updated_at"`
}

// DestinationFilter narrows catalog queries. Zero values mean "no filter".
type DestinationFilter struct {
	MaxDailyBudget *float64
	TravelStyle    TravelStyle
	Limit          int
}

// SuggestionSource tells where a suggestion came from.
type SuggestionSource string

const (
	SuggestionSourceCatalog SuggestionSource = "catalog"
	SuggestionSourceAI      SuggestionSource = "ai"
)

// DestinationSuggestion is one entry of a suggestion response.
type DestinationSuggestion struct {
	Destination *Destination     `json:"destination"`
	BudgetTier  BudgetTier       `json:"budget_tier,omitempty"`
	Source      SuggestionSource `json:"source"`
	Reason      string           `json:"reason,omitempty"`
}
