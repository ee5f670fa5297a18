package maps

import (
	"context"
	"net/http"
	"testing"
	"time"

	"columbus/config"
	"columbus/internal/domain/entity"
	"columbus/internal/infra/secrets"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gmaps "googlemaps.github.io/maps"
)

type fakeDirectionsAPI struct {
	routes  []gmaps.Route
	err     error
	request *gmaps.DirectionsRequest
}

func (f *fakeDirectionsAPI) Directions(_ context.Context, r *gmaps.DirectionsRequest) ([]gmaps.Route, []gmaps.GeocodedWaypoint, error) {
	f.request = r

	return f.routes, nil, f.err
}

func createTestDirectionsService(t *testing.T, api *fakeDirectionsAPI) *directionsService {
	t.Helper()

	cfg := &config.Config{Maps: &config.MapsConfig{Timeout: time.Second, APIKey: config.SecretRef{Value: "maps-key"}}}
	svc := NewDirectionsService(cfg, secrets.NewResolver(cfg)).(*directionsService)
	svc.newClient = func(apiKey string, _ *http.Client) (directionsAPI, error) {
		assert.Equal(t, "maps-key", apiKey)

		return api, nil
	}

	return svc
}

func transitRoute() gmaps.Route {
	return gmaps.Route{
		Summary: "Yamanote Line",
		Fare:    &gmaps.Fare{Currency: "JPY", Value: 200, Text: "¥200"},
		Legs: []*gmaps.Leg{{
			Distance:      gmaps.Distance{HumanReadable: "7.4 km", Meters: 7400},
			Duration:      25 * time.Minute,
			StartLocation: gmaps.LatLng{Lat: 35.6812, Lng: 139.7671},
			EndLocation:   gmaps.LatLng{Lat: 35.6580, Lng: 139.7016},
			Steps: []*gmaps.Step{
				{
					HTMLInstructions: "Walk to <b>Tokyo Station</b>",
					Distance:         gmaps.Distance{Meters: 300},
					Duration:         4 * time.Minute,
					TravelMode:       "WALKING",
				},
				{
					HTMLInstructions: "Train towards Shinagawa",
					Distance:         gmaps.Distance{Meters: 7100},
					Duration:         21 * time.Minute,
					TravelMode:       "TRANSIT",
					TransitDetails: &gmaps.TransitDetails{
						DepartureStop: gmaps.TransitStop{Name: "Tokyo"},
						ArrivalStop:   gmaps.TransitStop{Name: "Shibuya"},
						NumStops:      9,
						Line: gmaps.TransitLine{
							Name:      "JR Yamanote Line",
							ShortName: "JY",
							Vehicle:   gmaps.TransitLineVehicle{Name: "Train"},
						},
					},
				},
			},
		}},
	}
}

func TestDirections_ReshapesRoutes(t *testing.T) {
	api := &fakeDirectionsAPI{routes: []gmaps.Route{transitRoute()}}
	svc := createTestDirectionsService(t, api)

	guidance, err := svc.Directions(context.Background(), "Tokyo Station", "Shibuya", entity.TravelModeTransit)
	require.NoError(t, err)

	assert.Equal(t, gmaps.TravelModeTransit, api.request.Mode)
	require.Len(t, guidance.Routes, 1)
	route := guidance.Routes[0]
	assert.Equal(t, "Yamanote Line", route.Summary)
	assert.Equal(t, 7400, route.DistanceMeters)
	assert.Equal(t, "7.4 km", route.DistanceText)
	assert.Equal(t, int64(1500), route.DurationSeconds)
	assert.Equal(t, "25m0s", route.DurationText)
	assert.InDelta(t, 6.4, route.StraightLineKm, 0.3)
	require.NotNil(t, route.Fare)
	assert.Equal(t, "JPY", route.Fare.Currency)

	require.Len(t, route.Steps, 2)
	assert.Equal(t, "Walk to Tokyo Station", route.Steps[0].Instruction)
	assert.Equal(t, "walking", route.Steps[0].TravelMode)
	assert.Nil(t, route.Steps[0].Transit)
	require.NotNil(t, route.Steps[1].Transit)
	assert.Equal(t, "JY", route.Steps[1].Transit.Line)
	assert.Equal(t, "Train", route.Steps[1].Transit.Vehicle)
	assert.Equal(t, 9, route.Steps[1].Transit.NumStops)
}

func TestDirections_ZeroResultsIsEmpty(t *testing.T) {
	svc := createTestDirectionsService(t, &fakeDirectionsAPI{err: errors.New("maps: ZERO_RESULTS - ")})

	guidance, err := svc.Directions(context.Background(), "Atlantis", "Shibuya", entity.TravelModeDriving)
	require.NoError(t, err)
	assert.Empty(t, guidance.Routes)
}

func TestDirections_ProviderFailure(t *testing.T) {
	svc := createTestDirectionsService(t, &fakeDirectionsAPI{err: errors.New("maps: REQUEST_DENIED - invalid key")})

	_, err := svc.Directions(context.Background(), "A", "B", entity.TravelModeWalking)
	assert.ErrorContains(t, err, "REQUEST_DENIED")
}

func TestDirections_ClientSetupFailureIsRetried(t *testing.T) {
	api := &fakeDirectionsAPI{routes: []gmaps.Route{transitRoute()}}
	svc := createTestDirectionsService(t, api)

	attempts := 0
	svc.newClient = func(string, *http.Client) (directionsAPI, error) {
		attempts++
		if attempts == 1 {
			return nil, errors.New("transient")
		}

		return api, nil
	}

	_, err := svc.Directions(context.Background(), "Tokyo Station", "Shibuya", entity.TravelModeTransit)
	require.ErrorContains(t, err, "transient")

	guidance, err := svc.Directions(context.Background(), "Tokyo Station", "Shibuya", entity.TravelModeTransit)
	require.NoError(t, err)
	assert.Len(t, guidance.Routes, 1)

	_, err = svc.Directions(context.Background(), "Tokyo Station", "Shibuya", entity.TravelModeTransit)
	require.NoError(t, err)
	assert.Equal(t, 2, attempts)
}

func TestPlainText(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "Head north", want: "Head north"},
		{in: "Turn <b>left</b> onto <b>Main St</b>", want: "Turn left onto Main St"},
		{in: `Continue<div style="font-size:0.9em">Destination will be on the right</div>`, want: "Continue Destination will be on the right"},
		{in: "Caf&eacute; <b>&amp;</b> bar", want: "Café & bar"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, plainText(tt.in))
	}
}
