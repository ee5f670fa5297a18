// Package maps adapts the Google Maps Directions API to the DirectionsService port.
package maps

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"time"

	"columbus/config"
	"columbus/internal/domain/entity"
	"columbus/internal/domain/service"
	"columbus/internal/infra/secrets"
	"columbus/internal/util"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/pkg/errors"
	"golang.org/x/net/html"
	gmaps "googlemaps.github.io/maps"
)

const providerName = "google_maps"

type directionsAPI interface {
	Directions(ctx context.Context, r *gmaps.DirectionsRequest) ([]gmaps.Route, []gmaps.GeocodedWaypoint, error)
}

var newDirectionsAPI = func(apiKey string, httpClient *http.Client) (directionsAPI, error) {
	return gmaps.NewClient(gmaps.WithAPIKey(apiKey), gmaps.WithHTTPClient(httpClient))
}

type directionsService struct {
	cfg     *config.MapsConfig
	secrets *secrets.Resolver

	// mu guards api, which is only set after a successful setup
	mu        sync.Mutex
	api       directionsAPI
	newClient func(apiKey string, httpClient *http.Client) (directionsAPI, error)
}

// NewDirectionsService is the constructor for the Google directions adapter.
func NewDirectionsService(cfg *config.Config, resolver *secrets.Resolver) service.DirectionsService {
	return &directionsService{
		cfg:       cfg.Maps,
		secrets:   resolver,
		newClient: newDirectionsAPI,
	}
}

func (s *directionsService) Name() string {
	return providerName
}

func (s *directionsService) client(ctx context.Context) (directionsAPI, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.api != nil {
		return s.api, nil
	}

	apiKey, err := s.secrets.Resolve(context.WithoutCancel(ctx), s.cfg.APIKey)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve maps api key")
	}
	api, err := s.newClient(apiKey, &http.Client{Timeout: s.cfg.Timeout})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create maps client")
	}
	s.api = api

	return api, nil
}

func (s *directionsService) Directions(ctx context.Context, origin, destination string, mode entity.TravelMode) (*entity.TransportationGuidance, error) {
	api, err := s.client(ctx)
	if err != nil {
		return nil, err
	}

	routes, _, err := api.Directions(ctx, &gmaps.DirectionsRequest{
		Origin:       origin,
		Destination:  destination,
		Mode:         gmaps.Mode(mode),
		Alternatives: true,
	})
	if err != nil {
		// The client reports ZERO_RESULTS as an error; surface it as an empty route list.
		if strings.Contains(err.Error(), "ZERO_RESULTS") || strings.Contains(err.Error(), "NOT_FOUND") {
			return toGuidance(origin, destination, mode, nil), nil
		}

		return nil, errors.Wrap(err, "directions request failed")
	}

	return toGuidance(origin, destination, mode, routes), nil
}

func toGuidance(origin, destination string, mode entity.TravelMode, routes []gmaps.Route) *entity.TransportationGuidance {
	guidance := &entity.TransportationGuidance{
		Origin:      origin,
		Destination: destination,
		Mode:        mode,
		Routes:      make([]entity.RouteGuide, 0, len(routes)),
	}
	for i := range routes {
		guidance.Routes = append(guidance.Routes, toRouteGuide(&routes[i]))
	}

	return guidance
}

func toRouteGuide(route *gmaps.Route) entity.RouteGuide {
	guide := entity.RouteGuide{
		Summary: route.Summary,
		Steps:   []entity.RouteStep{},
	}

	var total time.Duration
	for _, leg := range route.Legs {
		if leg == nil {
			continue
		}
		guide.DistanceMeters += leg.Meters
		total += leg.Duration
		for _, step := range leg.Steps {
			if step != nil {
				guide.Steps = append(guide.Steps, toRouteStep(step))
			}
		}
	}
	guide.DurationSeconds = int64(total.Seconds())
	guide.DurationText = util.FormatDuration(total)
	guide.DistanceText = util.FormatDistance(guide.DistanceMeters)
	if len(route.Legs) == 1 && route.Legs[0] != nil && route.Legs[0].HumanReadable != "" {
		guide.DistanceText = route.Legs[0].HumanReadable
	}

	if n := len(route.Legs); n > 0 && route.Legs[0] != nil && route.Legs[n-1] != nil {
		start := orb.Point{route.Legs[0].StartLocation.Lng, route.Legs[0].StartLocation.Lat}
		end := orb.Point{route.Legs[n-1].EndLocation.Lng, route.Legs[n-1].EndLocation.Lat}
		guide.StraightLineKm = roundTo(geo.DistanceHaversine(start, end)/1000, 1)
	}

	if route.Fare != nil {
		guide.Fare = &entity.Fare{
			Currency: route.Fare.Currency,
			Value:    route.Fare.Value,
			Text:     route.Fare.Text,
		}
	}

	return guide
}

func toRouteStep(step *gmaps.Step) entity.RouteStep {
	routeStep := entity.RouteStep{
		Instruction:     plainText(step.HTMLInstructions),
		TravelMode:      strings.ToLower(step.TravelMode),
		DistanceMeters:  step.Meters,
		DurationSeconds: int64(step.Duration.Seconds()),
	}

	if td := step.TransitDetails; td != nil {
		line := td.Line.ShortName
		if line == "" {
			line = td.Line.Name
		}
		routeStep.Transit = &entity.TransitDetail{
			Line:          line,
			Vehicle:       td.Line.Vehicle.Name,
			DepartureStop: td.DepartureStop.Name,
			ArrivalStop:   td.ArrivalStop.Name,
			NumStops:      int(td.NumStops),
		}
	}

	return routeStep
}

// plainText drops the markup Google puts into step instructions.
func plainText(fragment string) string {
	if !strings.Contains(fragment, "<") {
		return fragment
	}

	tokenizer := html.NewTokenizer(strings.NewReader(fragment))
	var b strings.Builder
	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			return strings.Join(strings.Fields(b.String()), " ")
		case html.TextToken:
			b.Write(tokenizer.Text())
		case html.StartTagToken, html.SelfClosingTagToken:
			// Block-level tags separate sentences; inline ones join words.
			if name, _ := tokenizer.TagName(); string(name) == "div" {
				b.WriteString(" ")
			}
		}
	}
}

func roundTo(v float64, decimals int) float64 {
	p := 1.0
	for range decimals {
		p *= 10
	}

	return float64(int64(v*p+0.5)) / p
}
