package impl

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"columbus/internal/domain/entity"
)

// itineraryPromptVersion is stored in the generation metadata of every
// itinerary so documents can be traced back to the prompt that produced them.
const itineraryPromptVersion = "itinerary-v1"

const itinerarySystemPrompt = "You are an expert travel planner. You answer with a single JSON object " +
	"and no other text."

const itineraryDocumentSchema = `{
  "title": "Trip title",
  "destination": "%[1]s",
  "overview": "Brief overview of the trip",
  "total_estimated_cost": %[2]s,
  "days": [
    {
      "day_number": 1,
      "date": "YYYY-MM-DD or Day 1",
      "title": "Day title",
      "activities": [
        {
          "time": "09:00",
          "activity": "Activity name",
          "location": "Location name",
          "description": "Detailed description",
          "estimated_cost": 50,
          "duration_minutes": 120
        }
      ],
      "meals": {
        "breakfast": {"name": "Restaurant", "location": "Address", "estimated_cost": 15},
        "lunch": {"name": "Restaurant", "location": "Address", "estimated_cost": 20},
        "dinner": {"name": "Restaurant", "location": "Address", "estimated_cost": 35}
      },
      "transportation": "Transportation details for the day",
      "daily_cost": 200
    }
  ],
  "tips": ["Tip 1", "Tip 2"],
  "emergency_contacts": {"police": "number", "ambulance": "number"},
  "packing_list": ["Item 1", "Item 2"]
}`

// tripProfile is the merged view of a generation request and the caller's
// stored preferences. Request fields always win.
type tripProfile struct {
	Destination         string   `json:"destination"`
	DurationDays        int      `json:"duration_days"`
	Budget              float64  `json:"budget"`
	BudgetCurrency      string   `json:"budget_currency"`
	TravelStyle         string   `json:"travel_style"`
	StartDate           string   `json:"start_date,omitempty"`
	Activities          []string `json:"activities,omitempty"`
	AccommodationType   string   `json:"accommodation_type,omitempty"`
	FoodPreference      string   `json:"food_preference,omitempty"`
	BudgetPreference    string   `json:"budget_preference,omitempty"`
	DietaryRestrictions string   `json:"dietary_restrictions,omitempty"`
	AccessibilityNeeds  string   `json:"accessibility_needs,omitempty"`
}

func mergeTripProfile(req *validGenerateRequest, stored *entity.UserPreferences) *tripProfile {
	profile := &tripProfile{
		Destination:    req.destination,
		DurationDays:   req.durationDays,
		Budget:         req.budget,
		BudgetCurrency: req.currency,
		TravelStyle:    string(req.travelStyle),
	}
	if req.startDate != nil {
		profile.StartDate = req.startDate.Format(dateLayout)
	}

	if stored != nil {
		profile.Activities = stored.ActivityPreferences
		profile.AccommodationType = stored.AccommodationPreference
		profile.FoodPreference = stored.FoodPreference
		profile.BudgetPreference = stored.BudgetPreference
		profile.DietaryRestrictions = stored.DietaryRestrictions
		profile.AccessibilityNeeds = stored.AccessibilityNeeds
	}

	if overrides := req.preferences; overrides != nil {
		if len(overrides.Activities) > 0 {
			profile.Activities = overrides.Activities
		}
		if overrides.AccommodationType != "" {
			profile.AccommodationType = overrides.AccommodationType
		}
		if overrides.DietaryRestrictions != "" {
			profile.DietaryRestrictions = overrides.DietaryRestrictions
		}
	}

	return profile
}

func buildItineraryPrompt(profile *tripProfile) string {
	preferences, _ := json.MarshalIndent(map[string]any{
		"activities":           profile.Activities,
		"accommodation_type":   profile.AccommodationType,
		"food_preference":      profile.FoodPreference,
		"budget_preference":    profile.BudgetPreference,
		"dietary_restrictions": profile.DietaryRestrictions,
		"accessibility_needs":  profile.AccessibilityNeeds,
	}, "", "  ")

	var b strings.Builder
	fmt.Fprintf(&b, "Create a detailed %d-day itinerary for %s.\n\n", profile.DurationDays, profile.Destination)
	b.WriteString("Trip Details:\n")
	fmt.Fprintf(&b, "- Destination: %s\n", profile.Destination)
	fmt.Fprintf(&b, "- Duration: %d days\n", profile.DurationDays)
	fmt.Fprintf(&b, "- Total Budget: %s %s\n", formatAmount(profile.Budget), profile.BudgetCurrency)
	fmt.Fprintf(&b, "- Travel Style: %s\n", profile.TravelStyle)
	if profile.StartDate != "" {
		fmt.Fprintf(&b, "- Start Date: %s\n", profile.StartDate)
	}
	b.WriteString("\nUser Preferences:\n")
	b.Write(preferences)
	b.WriteString("\n\nInclude for every day: activities with times and locations, restaurant recommendations ")
	b.WriteString("for breakfast, lunch and dinner, transportation between locations and estimated costs. ")
	b.WriteString("Add practical tips, emergency contacts and a packing list.\n\n")
	fmt.Fprintf(&b, "The days array must contain exactly %d entries numbered from 1.\n", profile.DurationDays)
	b.WriteString("Format the response as JSON with this schema:\n")
	fmt.Fprintf(&b, itineraryDocumentSchema, profile.Destination, formatAmount(profile.Budget))
	b.WriteString("\n\nEnsure the itinerary is realistic, well-paced, and fits within the budget.")

	return b.String()
}

func formatAmount(v float64) string {
	return strings.TrimSuffix(strings.TrimRight(fmt.Sprintf("%.2f", v), "0"), ".")
}

// stripCodeFences removes a Markdown code fence wrapped around a provider
// reply, keeping only the fenced body.
func stripCodeFences(text string) []byte {
	trimmed := strings.TrimSpace(text)

	start := strings.Index(trimmed, "```")
	if start < 0 {
		return []byte(trimmed)
	}

	body := trimmed[start+3:]
	// Drop the language tag on the opening fence line.
	if nl := strings.IndexByte(body, '\n'); nl >= 0 && !strings.ContainsAny(body[:nl], "{[") {
		body = body[nl+1:]
	}
	if end := strings.Index(body, "```"); end >= 0 {
		body = body[:end]
	}

	return bytes.TrimSpace([]byte(body))
}

// fallbackItineraryTitle names itineraries whose document carries no title.
func fallbackItineraryTitle(durationDays int, destination string) string {
	return fmt.Sprintf("%d-Day Trip to %s", durationDays, destination)
}
