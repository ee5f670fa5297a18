package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseItineraryDocument(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"object with days", `{"title":"Kyoto","days":[]}`, false},
		{"leading whitespace", "  \n{\"days\":[{\"day_number\":1}]}", false},
		{"missing days", `{"title":"Kyoto"}`, true},
		{"days not an array", `{"days":{"1":{}}}`, true},
		{"days null", `{"days":null}`, true},
		{"array document", `[{"days":[]}]`, true},
		{"empty", ``, true},
		{"truncated", `{"days":[`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := ParseItineraryDocument([]byte(tt.raw))
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidItineraryDocument))

				return
			}
			require.NoError(t, err)
			assert.NotNil(t, doc)
		})
	}
}

func TestItineraryDocument_DeriveDays(t *testing.T) {
	itineraryID := uuid.New()
	start := time.Date(2026, 11, 3, 0, 0, 0, 0, time.UTC)

	doc, err := ParseItineraryDocument([]byte(`{"days":[
		{"day_number":1,"title":"Arrival","activities":[{"name":"Fushimi Inari"}]},
		{"title":"Temples","date":"2026-12-01"},
		{"day_number":1,"title":"Duplicate"}
	]}`))
	require.NoError(t, err)

	days := doc.DeriveDays(itineraryID, &start)

	require.Len(t, days, 2)
	assert.Equal(t, 1, days[0].DayNumber)
	assert.Equal(t, "Arrival", days[0].Title)
	assert.Equal(t, itineraryID, days[0].ItineraryID)
	assert.JSONEq(t, `[{"name":"Fushimi Inari"}]`, string(days[0].Activities))
	require.NotNil(t, days[0].Date)
	assert.True(t, start.Equal(*days[0].Date))

	// Position numbering, explicit date wins over the start date
	assert.Equal(t, 2, days[1].DayNumber)
	require.NotNil(t, days[1].Date)
	assert.Equal(t, "2026-12-01", days[1].Date.Format("2006-01-02"))
}

func TestItineraryDocument_DeriveDaysWithoutStartDate(t *testing.T) {
	doc := &ItineraryDocument{Days: []DocumentDay{{DayNumber: 3, Title: "Nara"}}}

	days := doc.DeriveDays(uuid.New(), nil)

	require.Len(t, days, 1)
	assert.Nil(t, days[0].Date)
	assert.Equal(t, 3, days[0].DayNumber)
}

func TestItineraryStatus_CanTransitionTo(t *testing.T) {
	assert.True(t, ItineraryStatusDraft.CanTransitionTo(ItineraryStatusActive))
	assert.True(t, ItineraryStatusActive.CanTransitionTo(ItineraryStatusCompleted))
	assert.True(t, ItineraryStatusCompleted.CanTransitionTo(ItineraryStatusArchived))
	assert.True(t, ItineraryStatusArchived.CanTransitionTo(ItineraryStatusArchived))

	assert.False(t, ItineraryStatusDraft.CanTransitionTo(ItineraryStatusCompleted))
	assert.False(t, ItineraryStatusArchived.CanTransitionTo(ItineraryStatusActive))
	assert.False(t, ItineraryStatus("paused").IsValid())
}

func TestRolesFromGroups(t *testing.T) {
	roles := RolesFromGroups([]string{"support", "admins", "traveler", "support"})

	assert.Equal(t, Roles{RoleTraveler, RoleSupport}, roles)
	assert.Equal(t, []string{"traveler", "support"}, roles.ToStrings())
	assert.True(t, Identity{Roles: roles}.HasRole(RoleSupport))
	assert.False(t, Identity{Roles: RolesFromGroups(nil)}.HasRole(RoleSupport))
}
