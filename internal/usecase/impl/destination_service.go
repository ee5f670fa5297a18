package impl

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"columbus/config"
	deliverycontext "columbus/internal/delivery/context"
	"columbus/internal/domain/entity"
	domainerrors "columbus/internal/domain/errors"
	"columbus/internal/domain/repository"
	"columbus/internal/domain/service"
	"columbus/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultSuggestionLimit = 10
	maxSuggestionLimit     = 20
	suggestionMaxTokens    = 2000
)

const destinationSystemPrompt = "You are an expert travel advisor. You answer with a single JSON array " +
	"and no other text."

type destinationService struct {
	destinationRepo repository.DestinationRepository
	generator       service.TextGenerator
	config          *config.Config
	logger          *slog.Logger
}

// DestinationServiceParams holds dependencies for DestinationService, injected by Fx.
type DestinationServiceParams struct {
	fx.In

	DestinationRepo repository.DestinationRepository
	Generator       service.TextGenerator
	Config          *config.Config
	Logger          *slog.Logger
}

// NewDestinationService creates a new destination service instance
func NewDestinationService(params DestinationServiceParams) usecase.DestinationUsecase {
	return &destinationService{
		destinationRepo: params.DestinationRepo,
		generator:       params.Generator,
		config:          params.Config,
		logger:          params.Logger,
	}
}

func (srv *destinationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Suggest returns catalog destinations matching the filters. When the catalog
// is sparse and the supplement is enabled, the generator fills the gap.
func (srv *destinationService) Suggest(ctx context.Context, input *usecase.SuggestDestinationsInput) ([]*entity.DestinationSuggestion, error) {
	filter, err := destinationFilter(input)
	if err != nil {
		return nil, err
	}

	catalog, err := srv.destinationRepo.Search(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search destinations")
	}

	suggestions := make([]*entity.DestinationSuggestion, 0, filter.Limit)
	for _, destination := range catalog {
		suggestion, ok := suggestionFor(destination, filter.MaxDailyBudget, entity.SuggestionSourceCatalog, "")
		if ok {
			suggestions = append(suggestions, suggestion)
		}
	}

	if srv.shouldSupplement(len(suggestions)) {
		suggestions = append(suggestions, srv.supplement(ctx, filter, suggestions)...)
	}

	return suggestions, nil
}

func destinationFilter(input *usecase.SuggestDestinationsInput) (entity.DestinationFilter, error) {
	var invalid []string

	filter := entity.DestinationFilter{
		MaxDailyBudget: input.Budget,
		TravelStyle:    entity.TravelStyle(strings.ToLower(strings.TrimSpace(input.TravelStyle))),
		Limit:          input.Limit,
	}

	if filter.MaxDailyBudget != nil && *filter.MaxDailyBudget < 0 {
		invalid = append(invalid, "budget")
	}
	if filter.TravelStyle != "" && !filter.TravelStyle.IsValid() {
		invalid = append(invalid, "travelStyle")
	}
	if filter.Limit == 0 {
		filter.Limit = defaultSuggestionLimit
	} else if filter.Limit < 1 || filter.Limit > maxSuggestionLimit {
		invalid = append(invalid, "limit")
	}

	if len(invalid) > 0 {
		return filter, domainerrors.NewValidationError("invalid query parameters", invalid...)
	}

	return filter, nil
}

// suggestionFor tags destination with the tier affordable at maxDailyBudget.
// ok is false when even the cheapest tier is above it.
func suggestionFor(destination *entity.Destination, maxDailyBudget *float64, source entity.SuggestionSource, reason string) (*entity.DestinationSuggestion, bool) {
	suggestion := &entity.DestinationSuggestion{
		Destination: destination,
		Source:      source,
		Reason:      reason,
	}

	if maxDailyBudget != nil {
		tier, ok := destination.EstimatedDailyBudget.TierFor(*maxDailyBudget)
		if !ok {
			return nil, false
		}
		suggestion.BudgetTier = tier
	}

	return suggestion, true
}

func (srv *destinationService) shouldSupplement(found int) bool {
	cfg := srv.config.Destinations

	return cfg != nil && cfg.AISupplement && found < cfg.MinCatalogResults
}

// aiDestination is one element of the supplement reply.
type aiDestination struct {
	Name                 string             `json:"name"`
	Country              string             `json:"country"`
	City                 string             `json:"city"`
	Region               string             `json:"region"`
	Description          string             `json:"description"`
	BestTimeToVisit      string             `json:"best_time_to_visit"`
	PopularActivities    []string           `json:"popular_activities"`
	EstimatedDailyBudget entity.DailyBudget `json:"estimated_daily_budget"`
	Reason               string             `json:"reason"`
}

// supplement asks the generator for the missing suggestions. Failures only
// cost the supplement; the catalog results are still returned.
func (srv *destinationService) supplement(ctx context.Context, filter entity.DestinationFilter, existing []*entity.DestinationSuggestion) []*entity.DestinationSuggestion {
	missing := filter.Limit - len(existing)
	if missing <= 0 {
		return nil
	}

	known := make(map[string]struct{}, len(existing))
	names := make([]string, 0, len(existing))
	for _, s := range existing {
		known[strings.ToLower(s.Destination.Name)] = struct{}{}
		names = append(names, s.Destination.Name)
	}

	result, err := srv.generator.Generate(ctx, &service.GenerationRequest{
		System:    destinationSystemPrompt,
		Messages:  []service.GenerationMessage{{Role: string(entity.ChatRoleUser), Content: buildDestinationPrompt(filter, missing, names)}},
		MaxTokens: suggestionMaxTokens,
	})
	if err != nil {
		srv.log(ctx).Warn("Destination supplement failed", slog.String("provider", srv.generator.Name()), slog.Any("error", err))

		return nil
	}

	var proposed []aiDestination
	if err := json.Unmarshal(stripCodeFences(result.Text), &proposed); err != nil {
		srv.log(ctx).Warn("Destination supplement reply is not a JSON array", slog.Any("error", err))

		return nil
	}

	supplements := make([]*entity.DestinationSuggestion, 0, missing)
	for _, p := range proposed {
		name := strings.TrimSpace(p.Name)
		if name == "" {
			continue
		}
		if _, dup := known[strings.ToLower(name)]; dup {
			continue
		}

		destination := &entity.Destination{
			Name:                 name,
			Country:              p.Country,
			City:                 p.City,
			Region:               p.Region,
			Description:          p.Description,
			BestTimeToVisit:      p.BestTimeToVisit,
			PopularActivities:    p.PopularActivities,
			EstimatedDailyBudget: p.EstimatedDailyBudget,
			Tags:                 []string{},
		}
		if destination.PopularActivities == nil {
			destination.PopularActivities = []string{}
		}
		if filter.TravelStyle != "" {
			destination.Tags = append(destination.Tags, filter.TravelStyle.String())
		}

		suggestion, ok := suggestionFor(destination, filter.MaxDailyBudget, entity.SuggestionSourceAI, p.Reason)
		if !ok {
			continue
		}

		known[strings.ToLower(name)] = struct{}{}
		supplements = append(supplements, suggestion)
		if len(supplements) == missing {
			break
		}
	}

	srv.log(ctx).Info("Destination suggestions supplemented",
		slog.Int("catalog", len(existing)),
		slog.Int("supplemented", len(supplements)),
	)

	return supplements
}

func buildDestinationPrompt(filter entity.DestinationFilter, count int, exclude []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Suggest %d travel destinations.\n", count)
	if filter.TravelStyle != "" {
		fmt.Fprintf(&b, "- Travel Style: %s\n", filter.TravelStyle)
	}
	if filter.MaxDailyBudget != nil {
		fmt.Fprintf(&b, "- Daily Budget: at most %s USD per person\n", formatAmount(*filter.MaxDailyBudget))
	}
	if len(exclude) > 0 {
		fmt.Fprintf(&b, "- Do not suggest: %s\n", strings.Join(exclude, ", "))
	}
	b.WriteString("\nFormat the response as a JSON array whose elements follow this schema:\n")
	b.WriteString(`{"name": "Kyoto", "country": "Japan", "city": "Kyoto", "region": "Kansai", ` +
		`"description": "Short description", "best_time_to_visit": "March to May", ` +
		`"popular_activities": ["Activity"], ` +
		`"estimated_daily_budget": {"budget": 60, "moderate": 150, "luxury": 400}, ` +
		`"reason": "Why it fits the request"}`)

	return b.String()
}
