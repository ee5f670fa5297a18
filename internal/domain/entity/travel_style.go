package entity

import "slices"

// TravelStyle is the recognized set of trip styles.
type TravelStyle string

const (
	TravelStyleAdventure  TravelStyle = "adventure"
	TravelStyleCultural   TravelStyle = "cultural"
	TravelStyleRelaxation TravelStyle = "relaxation"
	TravelStyleLuxury     TravelStyle = "luxury"
	TravelStyleBudget     TravelStyle = "budget"
	TravelStyleFamily     TravelStyle = "family"
	TravelStyleRomantic   TravelStyle = "romantic"
	TravelStyleFoodie     TravelStyle = "foodie"
)

// TravelStyles lists every recognized style in a stable order.
var TravelStyles = []TravelStyle{
	TravelStyleAdventure,
	TravelStyleCultural,
	TravelStyleRelaxation,
	TravelStyleLuxury,
	TravelStyleBudget,
	TravelStyleFamily,
	TravelStyleRomantic,
	TravelStyleFoodie,
}

// IsValid reports whether the style is recognized.
func (s TravelStyle) IsValid() bool {
	return slices.Contains(TravelStyles, s)
}

func (s TravelStyle) String() string {
	return string(s)
}
