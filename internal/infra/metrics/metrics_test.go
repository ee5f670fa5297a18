package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"columbus/internal/domain/entity"
	"columbus/internal/domain/service"
	mockSvc "columbus/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveHTTPRequest(t *testing.T) {
	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/itinerary/:id", "200"))

	ObserveHTTPRequest("GET", "/itinerary/:id", 200, 15*time.Millisecond)

	after := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/itinerary/:id", "200"))
	assert.Equal(t, before+1, after)
}

func TestInstrumentTextGenerator(t *testing.T) {
	ctx := context.Background()
	gen := mockSvc.NewMockTextGenerator(t)
	gen.EXPECT().Name().Return("test-llm")

	req := &service.GenerationRequest{System: "s"}
	gen.EXPECT().Generate(ctx, req).Return(&service.GenerationResult{Text: "ok"}, nil).Once()
	gen.EXPECT().Generate(ctx, req).Return(nil, errors.New("timeout")).Once()

	instrumented := InstrumentTextGenerator(gen)

	okBefore := testutil.ToFloat64(providerCallsTotal.WithLabelValues("test-llm", OutcomeSuccess))
	errBefore := testutil.ToFloat64(providerCallsTotal.WithLabelValues("test-llm", OutcomeError))

	result, err := instrumented.Generate(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, "ok", result.Text)

	_, err = instrumented.Generate(ctx, req)
	assert.Error(t, err)

	assert.Equal(t, okBefore+1, testutil.ToFloat64(providerCallsTotal.WithLabelValues("test-llm", OutcomeSuccess)))
	assert.Equal(t, errBefore+1, testutil.ToFloat64(providerCallsTotal.WithLabelValues("test-llm", OutcomeError)))
	assert.Equal(t, "test-llm", instrumented.Name())
}

func TestInstrumentDirections(t *testing.T) {
	ctx := context.Background()
	dirs := mockSvc.NewMockDirectionsService(t)
	dirs.EXPECT().Name().Return("test-maps")

	guidance := &entity.TransportationGuidance{Origin: "a", Destination: "b", Mode: entity.TravelModeTransit}
	dirs.EXPECT().Directions(ctx, "a", "b", entity.TravelModeTransit).Return(guidance, nil)

	before := testutil.ToFloat64(providerCallsTotal.WithLabelValues("test-maps", OutcomeSuccess))

	got, err := InstrumentDirections(dirs).Directions(ctx, "a", "b", entity.TravelModeTransit)
	require.NoError(t, err)
	assert.Same(t, guidance, got)
	assert.Equal(t, before+1, testutil.ToFloat64(providerCallsTotal.WithLabelValues("test-maps", OutcomeSuccess)))
}

func TestHandler_ExposesCollectors(t *testing.T) {
	IncItinerariesGenerated()

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "columbus_itineraries_generated_total"))
}
