package entity

// TravelMode is a directions travel mode.
type TravelMode string

const (
	TravelModeDriving   TravelMode = "driving"
	TravelModeWalking   TravelMode = "walking"
	TravelModeBicycling TravelMode = "bicycling"
	TravelModeTransit   TravelMode = "transit"
)

// IsValid reports whether the mode is supported.
func (m TravelMode) IsValid() bool {
	switch m {
	case TravelModeDriving, TravelModeWalking, TravelModeBicycling, TravelModeTransit:
		return true
	default:
		return false
	}
}

// TransportationGuidance is the normalized directions response.
type TransportationGuidance struct {
	Origin      string       `json:"origin"`
	Destination string       `json:"destination"`
	Mode        TravelMode   `json:"mode"`
	Routes      []RouteGuide `json:"routes"`
}

// RouteGuide is one alternative route.
type RouteGuide struct {
	Summary         string      `json:"summary"`
	DistanceMeters  int         `json:"distance_meters"`
	DistanceText    string      `json:"distance_text"`
	DurationSeconds int64       `json:"duration_seconds"`
	DurationText    string      `json:"duration_text"`
	StraightLineKm  float64     `json:"straight_line_km"`
	Fare            *Fare       `json:"fare,omitempty"`
	Steps           []RouteStep `json:"steps"`
}

// Fare is the total transit fare of a route.
type Fare struct {
	Currency string  `json:"currency"`
	Value    float64 `json:"value"`
	Text     string  `json:"text"`
}

// RouteStep is one instruction of a route.
type RouteStep struct {
	Instruction     string         `json:"instruction"`
	TravelMode      string         `json:"travel_mode"`
	DistanceMeters  int            `json:"distance_meters"`
	DurationSeconds int64          `json:"duration_seconds"`
	Transit         *TransitDetail `json:"transit,omitempty"`
}

// TransitDetail describes the public transport leg of a step.
type TransitDetail struct {
	Line          string `json:"line"`
	Vehicle       string `json:"vehicle"`
	DepartureStop string `json:"departure_stop"`
	ArrivalStop   string `json:"arrival_stop"`
	NumStops      int    `json:"num_stops"`
}
