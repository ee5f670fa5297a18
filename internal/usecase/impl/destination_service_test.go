package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"columbus/config"
	"columbus/internal/domain/entity"
	domainerrors "columbus/internal/domain/errors"
	"columbus/internal/domain/service"
	mockRepo "columbus/internal/mocks/repository"
	mockSvc "columbus/internal/mocks/service"
	"columbus/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type destinationServiceFixtures struct {
	service         *destinationService
	destinationRepo *mockRepo.MockDestinationRepository
	generator       *mockSvc.MockTextGenerator
	config          *config.Config
}

func createTestDestinationService(t *testing.T) destinationServiceFixtures {
	f := destinationServiceFixtures{
		destinationRepo: mockRepo.NewMockDestinationRepository(t),
		generator:       mockSvc.NewMockTextGenerator(t),
		config:          &config.Config{Destinations: &config.DestinationsConfig{MinCatalogResults: 2}},
	}
	f.service = NewDestinationService(DestinationServiceParams{
		DestinationRepo: f.destinationRepo,
		Generator:       f.generator,
		Config:          f.config,
		Logger:          slog.New(slog.NewTextHandler(io.Discard, nil)),
	}).(*destinationService)

	return f
}

func catalogDestination(name string, budget entity.DailyBudget) *entity.Destination {
	return &entity.Destination{
		ID:                   uuid.New(),
		Name:                 name,
		EstimatedDailyBudget: budget,
		Tags:                 []string{"cultural"},
	}
}

func TestDestinationService_Suggest_CatalogOnly(t *testing.T) {
	fx := createTestDestinationService(t)
	ctx := context.Background()
	budget := 150.0

	kyoto := catalogDestination("Kyoto", entity.DailyBudget{Budget: 60, Moderate: 150, Luxury: 400})
	lisbon := catalogDestination("Lisbon", entity.DailyBudget{Budget: 50, Moderate: 120, Luxury: 140})
	zurich := catalogDestination("Zurich", entity.DailyBudget{Budget: 180, Moderate: 300, Luxury: 600})

	fx.destinationRepo.EXPECT().
		Search(ctx, entity.DestinationFilter{MaxDailyBudget: &budget, TravelStyle: entity.TravelStyleCultural, Limit: defaultSuggestionLimit}).
		Return([]*entity.Destination{kyoto, lisbon, zurich}, nil)

	suggestions, err := fx.service.Suggest(ctx, &usecase.SuggestDestinationsInput{Budget: &budget, TravelStyle: "Cultural"})

	require.NoError(t, err)
	require.Len(t, suggestions, 2)
	assert.Equal(t, "Kyoto", suggestions[0].Destination.Name)
	assert.Equal(t, entity.BudgetTierModerate, suggestions[0].BudgetTier)
	assert.Equal(t, entity.SuggestionSourceCatalog, suggestions[0].Source)
	assert.Equal(t, "Lisbon", suggestions[1].Destination.Name)
	assert.Equal(t, entity.BudgetTierLuxury, suggestions[1].BudgetTier)
}

func TestDestinationService_Suggest_NoSupplementWhenDisabled(t *testing.T) {
	fx := createTestDestinationService(t)
	ctx := context.Background()

	fx.destinationRepo.EXPECT().Search(ctx, entity.DestinationFilter{Limit: 5}).Return(nil, nil)

	suggestions, err := fx.service.Suggest(ctx, &usecase.SuggestDestinationsInput{Limit: 5})

	require.NoError(t, err)
	assert.Empty(t, suggestions)
}

func TestDestinationService_Suggest_Validation(t *testing.T) {
	fx := createTestDestinationService(t)
	negative := -1.0

	_, err := fx.service.Suggest(context.Background(), &usecase.SuggestDestinationsInput{
		Budget:      &negative,
		TravelStyle: "party",
		Limit:       21,
	})

	require.True(t, errors.Is(err, domainerrors.ErrValidation))
	assert.Equal(t, "invalid query parameters: budget, travelStyle, limit", domainerrors.AsAppError(err).Message())
}

func TestDestinationService_Suggest_AISupplement(t *testing.T) {
	fx := createTestDestinationService(t)
	fx.config.Destinations.AISupplement = true
	ctx := context.Background()
	budget := 100.0

	fx.destinationRepo.EXPECT().Search(ctx, mock.Anything).Return([]*entity.Destination{
		catalogDestination("Kyoto", entity.DailyBudget{Budget: 60, Moderate: 150, Luxury: 400}),
	}, nil)

	reply := "```json\n[" +
		`{"name":"kyoto","country":"Japan"},` +
		`{"name":"Hanoi","country":"Vietnam","estimated_daily_budget":{"budget":30,"moderate":70,"luxury":200},"reason":"Street food"},` +
		`{"name":"Oslo","country":"Norway","estimated_daily_budget":{"budget":150,"moderate":250,"luxury":500}},` +
		`{"name":"Penang","country":"Malaysia","estimated_daily_budget":{"budget":25,"moderate":60,"luxury":150}}` +
		"]\n```"
	fx.generator.EXPECT().
		Generate(ctx, mock.MatchedBy(func(req *service.GenerationRequest) bool {
			prompt := req.Messages[0].Content

			return strings.Contains(prompt, "Suggest 2 travel destinations") &&
				strings.Contains(prompt, "Do not suggest: Kyoto") &&
				strings.Contains(prompt, "at most 100 USD")
		})).
		Return(&service.GenerationResult{Text: reply}, nil)

	suggestions, err := fx.service.Suggest(ctx, &usecase.SuggestDestinationsInput{Budget: &budget, Limit: 3})

	require.NoError(t, err)
	require.Len(t, suggestions, 3)
	assert.Equal(t, entity.SuggestionSourceCatalog, suggestions[0].Source)
	assert.Equal(t, "Hanoi", suggestions[1].Destination.Name)
	assert.Equal(t, entity.SuggestionSourceAI, suggestions[1].Source)
	assert.Equal(t, entity.BudgetTierModerate, suggestions[1].BudgetTier)
	assert.Equal(t, "Street food", suggestions[1].Reason)
	assert.Equal(t, "Penang", suggestions[2].Destination.Name)
}

func TestDestinationService_Suggest_SupplementFailureKeepsCatalog(t *testing.T) {
	tests := []struct {
		name   string
		result *service.GenerationResult
		err    error
	}{
		{"provider error", nil, errors.New("overloaded")},
		{"reply is not an array", &service.GenerationResult{Text: `{"destinations":[]}`}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestDestinationService(t)
			fx.config.Destinations.AISupplement = true
			ctx := context.Background()

			fx.destinationRepo.EXPECT().Search(ctx, mock.Anything).Return([]*entity.Destination{
				catalogDestination("Kyoto", entity.DailyBudget{Budget: 60}),
			}, nil)
			fx.generator.EXPECT().Generate(ctx, mock.Anything).Return(tt.result, tt.err)
			fx.generator.EXPECT().Name().Return("anthropic").Maybe()

			suggestions, err := fx.service.Suggest(ctx, &usecase.SuggestDestinationsInput{})

			require.NoError(t, err)
			require.Len(t, suggestions, 1)
			assert.Equal(t, "Kyoto", suggestions[0].Destination.Name)
		})
	}
}
