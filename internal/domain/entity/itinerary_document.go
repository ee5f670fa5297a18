package entity

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const documentDateLayout = "2006-01-02"

// ErrInvalidItineraryDocument is returned when a document is not a JSON object with a days array.
var ErrInvalidItineraryDocument = errors.New("itinerary document must be a JSON object with a days array")

// ItineraryDocument is the typed view of the generated itinerary document.
// Only the fields the system reads are typed; the raw document is stored verbatim.
type ItineraryDocument struct {
	Title              string          `json:"title"`
	Destination        string          `json:"destination"`
	Overview           string          `json:"overview"`
	TotalEstimatedCost json.RawMessage `json:"total_estimated_cost,omitempty"`
	Days               []DocumentDay   `json:"days"`
	Tips               json.RawMessage `json:"tips,omitempty"`
	EmergencyContacts  json.RawMessage `json:"emergency_contacts,omitempty"`
	PackingList        json.RawMessage `json:"packing_list,omitempty"`
}

// DocumentDay is one entry of the document's days array.
type DocumentDay struct {
	DayNumber      int             `json:"day_number"`
	Date           string          `json:"date,omitempty"`
	Title          string          `json:"title"`
	Activities     json.RawMessage `json:"activities,omitempty"`
	Meals          json.RawMessage `json:"meals,omitempty"`
	Transportation json.RawMessage `json:"transportation,omitempty"`
	DailyCost      json.RawMessage `json:"daily_cost,omitempty"`
}

// ParseItineraryDocument decodes raw into a document, requiring a JSON object
// that carries a days array.
func ParseItineraryDocument(raw []byte) (*ItineraryDocument, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, ErrInvalidItineraryDocument
	}

	var top map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &top); err != nil {
		return nil, errors.Wrap(ErrInvalidItineraryDocument, err.Error())
	}
	days, ok := top["days"]
	if !ok || len(bytes.TrimSpace(days)) == 0 || bytes.TrimSpace(days)[0] != '[' {
		return nil, ErrInvalidItineraryDocument
	}

	var doc ItineraryDocument
	if err := json.Unmarshal(trimmed, &doc); err != nil {
		return nil, errors.Wrap(ErrInvalidItineraryDocument, err.Error())
	}

	return &doc, nil
}

// DeriveDays builds the normalized day rows for itineraryID. Days without a
// day number are numbered by position; when the document has no dates and
// startDate is known, dates are filled from it.
func (d *ItineraryDocument) DeriveDays(itineraryID uuid.UUID, startDate *time.Time) []*ItineraryDay {
	days := make([]*ItineraryDay, 0, len(d.Days))
	seen := make(map[int]struct{}, len(d.Days))

	for idx, src := range d.Days {
		number := src.DayNumber
		if number <= 0 {
			number = idx + 1
		}
		if _, dup := seen[number]; dup {
			continue
		}
		seen[number] = struct{}{}

		day := &ItineraryDay{
			ID:             uuid.New(),
			ItineraryID:    itineraryID,
			DayNumber:      number,
			Title:          src.Title,
			Activities:     src.Activities,
			Meals:          src.Meals,
			Transportation: src.Transportation,
			DailyCost:      src.DailyCost,
		}

		if parsed, err := time.Parse(documentDateLayout, src.Date); err == nil {
			day.Date = &parsed
		} else if startDate != nil {
			date := startDate.AddDate(0, 0, number-1)
			day.Date = &date
		}

		days = append(days, day)
	}

	return days
}
