package metrics

import (
	"context"
	"time"

	"columbus/internal/domain/entity"
	"columbus/internal/domain/service"
)

type instrumentedTextGenerator struct {
	next service.TextGenerator
}

// InstrumentTextGenerator counts and times every call made through next.
func InstrumentTextGenerator(next service.TextGenerator) service.TextGenerator {
	return &instrumentedTextGenerator{next: next}
}

func (g *instrumentedTextGenerator) Generate(ctx context.Context, req *service.GenerationRequest) (*service.GenerationResult, error) {
	start := time.Now()
	result, err := g.next.Generate(ctx, req)
	ObserveProviderCall(g.next.Name(), err, time.Since(start))

	return result, err
}

func (g *instrumentedTextGenerator) Name() string {
	return g.next.Name()
}

type instrumentedDirections struct {
	next service.DirectionsService
}

// InstrumentDirections counts and times every call made through next.
func InstrumentDirections(next service.DirectionsService) service.DirectionsService {
	return &instrumentedDirections{next: next}
}

func (d *instrumentedDirections) Directions(ctx context.Context, origin, destination string, mode entity.TravelMode) (*entity.TransportationGuidance, error) {
	start := time.Now()
	guidance, err := d.next.Directions(ctx, origin, destination, mode)
	ObserveProviderCall(d.next.Name(), err, time.Since(start))

	return guidance, err
}

func (d *instrumentedDirections) Name() string {
	return d.next.Name()
}
