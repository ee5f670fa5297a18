package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"columbus/config"
	deliverycontext "columbus/internal/delivery/context"
	"columbus/internal/domain/entity"
	domainerrors "columbus/internal/domain/errors"
	"columbus/internal/domain/repository"
	"columbus/internal/domain/service"
	"columbus/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	dateLayout      = "2006-01-02"
	minTripDays     = 1
	maxTripDays     = 30
	defaultCurrency = "USD"
)

type itineraryService struct {
	txManager       repository.TransactionManager
	itineraryRepo   repository.ItineraryRepository
	preferenceRepo  repository.PreferenceRepository
	destinationRepo repository.DestinationRepository
	generator       service.TextGenerator
	idempotency     service.IdempotencyStore
	archive         service.ArchiveStore
	publisher       service.EventPublisher
	qrcode          service.QRCodeService
	config          *config.Config
	logger          *slog.Logger
	now             func() time.Time
}

// ItineraryServiceParams holds dependencies for ItineraryService, injected by Fx.
type ItineraryServiceParams struct {
	fx.In

	TxManager       repository.TransactionManager
	ItineraryRepo   repository.ItineraryRepository
	PreferenceRepo  repository.PreferenceRepository
	DestinationRepo repository.DestinationRepository
	Generator       service.TextGenerator
	Idempotency     service.IdempotencyStore
	Archive         service.ArchiveStore
	Publisher       service.EventPublisher
	QRCode          service.QRCodeService
	Config          *config.Config
	Logger          *slog.Logger
}

// NewItineraryService creates a new itinerary service instance
func NewItineraryService(params ItineraryServiceParams) usecase.ItineraryUsecase {
	return &itineraryService{
		txManager:       params.TxManager,
		itineraryRepo:   params.ItineraryRepo,
		preferenceRepo:  params.PreferenceRepo,
		destinationRepo: params.DestinationRepo,
		generator:       params.Generator,
		idempotency:     params.Idempotency,
		archive:         params.Archive,
		publisher:       params.Publisher,
		qrcode:          params.QRCode,
		config:          params.Config,
		logger:          params.Logger,
		now:             time.Now,
	}
}

func (srv *itineraryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// validGenerateRequest is a GenerateItineraryInput after normalization.
type validGenerateRequest struct {
	destination  string
	durationDays int
	budget       float64
	currency     string
	travelStyle  entity.TravelStyle
	startDate    *time.Time
	preferences  *usecase.TripPreferences
}

func validateGenerateInput(input *usecase.GenerateItineraryInput) (*validGenerateRequest, error) {
	var invalid []string

	req := &validGenerateRequest{
		destination:  strings.TrimSpace(input.Destination),
		durationDays: input.DurationDays,
		budget:       input.Budget,
		currency:     strings.ToUpper(strings.TrimSpace(input.BudgetCurrency)),
		travelStyle:  entity.TravelStyle(strings.ToLower(strings.TrimSpace(input.TravelStyle))),
		preferences:  input.Preferences,
	}

	if req.destination == "" {
		invalid = append(invalid, "destination")
	}
	if req.durationDays < minTripDays || req.durationDays > maxTripDays {
		invalid = append(invalid, "durationDays")
	}
	if req.budget < 0 {
		invalid = append(invalid, "budget")
	}
	if req.currency == "" {
		req.currency = defaultCurrency
	} else if len(req.currency) != 3 {
		invalid = append(invalid, "budgetCurrency")
	}
	if !req.travelStyle.IsValid() {
		invalid = append(invalid, "travelStyle")
	}
	if input.StartDate != "" {
		start, err := time.Parse(dateLayout, input.StartDate)
		if err != nil {
			invalid = append(invalid, "startDate")
		} else {
			req.startDate = &start
		}
	}

	if len(invalid) > 0 {
		return nil, domainerrors.NewValidationError("invalid or missing fields", invalid...)
	}

	return req, nil
}

// Generate creates a draft itinerary from a text generator reply.
func (srv *itineraryService) Generate(ctx context.Context, identity entity.Identity, input *usecase.GenerateItineraryInput) (*usecase.GenerateItineraryOutput, error) {
	req, err := validateGenerateInput(input)
	if err != nil {
		return nil, err
	}

	if replay := srv.replayIdempotent(ctx, identity, input.IdempotencyKey); replay != nil {
		return replay, nil
	}

	profile := mergeTripProfile(req, srv.storedPreferences(ctx, identity.UserID))

	started := srv.now()
	result, err := srv.generator.Generate(ctx, &service.GenerationRequest{
		System:    itinerarySystemPrompt,
		Messages:  []service.GenerationMessage{{Role: string(entity.ChatRoleUser), Content: buildItineraryPrompt(profile)}},
		MaxTokens: srv.config.Anthropic.MaxTokens,
	})
	if err != nil {
		return nil, domainerrors.NewGenerationError(srv.generator.Name(), err)
	}
	elapsed := srv.now().Sub(started)

	raw := stripCodeFences(result.Text)
	doc, err := entity.ParseItineraryDocument(raw)
	if err != nil {
		return nil, domainerrors.NewGenerationError(srv.generator.Name(), err)
	}

	itinerary := srv.newDraftItinerary(ctx, identity, req, doc, raw, result, elapsed)
	days := doc.DeriveDays(itinerary.ID, itinerary.StartDate)
	if len(days) != req.durationDays {
		// duration_days keeps the requested trip length; the day rows follow the document.
		srv.log(ctx).Warn("Generated itinerary day count differs from requested duration",
			slog.Int("requestedDays", req.durationDays),
			slog.Int("generatedDays", len(days)),
		)
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		itineraryRepo := repoFactory.NewItineraryRepository()

		if err := itineraryRepo.Create(ctx, itinerary); err != nil {
			return errors.Wrap(err, "failed to create itinerary")
		}
		if err := itineraryRepo.ReplaceDays(ctx, itinerary.ID, days); err != nil {
			return errors.Wrap(err, "failed to store itinerary days")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to save generated itinerary")
	}

	srv.log(ctx).Info("Itinerary generated",
		slog.String("itineraryID", itinerary.ID.String()),
		slog.Int("days", len(days)),
		slog.Duration("elapsed", elapsed),
	)

	srv.rememberIdempotent(ctx, identity, input.IdempotencyKey, itinerary.ID)
	srv.archiveGeneration(ctx, itinerary.ID, result)
	srv.publish(ctx, service.EventItineraryGenerated, itinerary)

	return &usecase.GenerateItineraryOutput{
		ItineraryID: itinerary.ID,
		Itinerary:   itinerary.ItineraryData,
		CreatedAt:   itinerary.CreatedAt,
	}, nil
}

func (srv *itineraryService) newDraftItinerary(
	ctx context.Context,
	identity entity.Identity,
	req *validGenerateRequest,
	doc *entity.ItineraryDocument,
	raw []byte,
	result *service.GenerationResult,
	elapsed time.Duration,
) *entity.Itinerary {
	title := strings.TrimSpace(doc.Title)
	if title == "" {
		title = fallbackItineraryTitle(req.durationDays, req.destination)
	}

	budget := req.budget
	itinerary := &entity.Itinerary{
		ID:              uuid.New(),
		UserID:          identity.UserID,
		Title:           title,
		DestinationName: req.destination,
		StartDate:       req.startDate,
		DurationDays:    req.durationDays,
		BudgetTotal:     &budget,
		BudgetCurrency:  req.currency,
		TravelStyle:     req.travelStyle,
		Status:          entity.ItineraryStatusDraft,
		ItineraryData:   raw,
		AIModelVersion:  result.Model,
		GenerationMetadata: &entity.GenerationMetadata{
			Model:         result.Model,
			GenerationMs:  elapsed.Milliseconds(),
			InputTokens:   result.InputTokens,
			OutputTokens:  result.OutputTokens,
			PromptVersion: itineraryPromptVersion,
		},
	}
	if req.startDate != nil {
		end := req.startDate.AddDate(0, 0, req.durationDays-1)
		itinerary.EndDate = &end
	}

	destination, err := srv.destinationRepo.FindByName(ctx, req.destination)
	switch {
	case err == nil:
		itinerary.DestinationID = &destination.ID
	case !errors.Is(err, repository.ErrDestinationNotFound):
		srv.log(ctx).Warn("Failed to link catalog destination", slog.Any("error", err))
	}

	return itinerary
}

func (srv *itineraryService) storedPreferences(ctx context.Context, userID uuid.UUID) *entity.UserPreferences {
	prefs, err := srv.preferenceRepo.FindByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, repository.ErrPreferencesNotFound) {
			srv.log(ctx).Warn("Failed to load stored preferences", slog.Any("error", err))
		}

		return nil
	}

	return prefs
}

func (srv *itineraryService) replayIdempotent(ctx context.Context, identity entity.Identity, key string) *usecase.GenerateItineraryOutput {
	if key == "" {
		return nil
	}

	itineraryID, err := srv.idempotency.Lookup(ctx, identity.UserID, key)
	if err != nil {
		if !errors.Is(err, service.ErrCacheMiss) {
			srv.log(ctx).Warn("Idempotency lookup failed", slog.Any("error", err))
		}

		return nil
	}

	itinerary, err := srv.itineraryRepo.FindByID(ctx, itineraryID)
	if err != nil || !itinerary.IsOwnedBy(identity.UserID) {
		return nil
	}

	srv.log(ctx).Info("Replaying idempotent generation", slog.String("itineraryID", itineraryID.String()))

	return &usecase.GenerateItineraryOutput{
		ItineraryID: itinerary.ID,
		Itinerary:   itinerary.ItineraryData,
		CreatedAt:   itinerary.CreatedAt,
	}
}

func (srv *itineraryService) rememberIdempotent(ctx context.Context, identity entity.Identity, key string, itineraryID uuid.UUID) {
	if key == "" {
		return
	}
	if _, err := srv.idempotency.Remember(ctx, identity.UserID, key, itineraryID); err != nil {
		srv.log(ctx).Warn("Failed to remember idempotency key", slog.Any("error", err))
	}
}

func (srv *itineraryService) archiveGeneration(ctx context.Context, itineraryID uuid.UUID, result *service.GenerationResult) {
	body := result.Raw
	if len(body) == 0 {
		body = []byte(result.Text)
	}
	if err := srv.archive.Put(ctx, itineraryID.String()+".json", body, "application/json"); err != nil {
		srv.log(ctx).Warn("Failed to archive generation", slog.Any("error", err))
	}
}

func (srv *itineraryService) publish(ctx context.Context, eventType string, itinerary *entity.Itinerary) {
	event := &service.ItineraryEvent{
		RequestID:   deliverycontext.GetRequestIDFromContext(ctx),
		EventType:   eventType,
		ItineraryID: itinerary.ID.String(),
		UserID:      itinerary.UserID.String(),
		OccurredAt:  srv.now().UTC(),
	}
	if err := srv.publisher.PublishItineraryEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish itinerary event",
			slog.String("eventType", eventType),
			slog.Any("error", err),
		)
	}
}

// loadVisible returns the itinerary when the caller owns it or it is public.
// Anything else is reported as not found so existence is not disclosed.
func (srv *itineraryService) loadVisible(ctx context.Context, identity entity.Identity, itineraryID uuid.UUID) (*entity.Itinerary, error) {
	itinerary, err := srv.itineraryRepo.FindByID(ctx, itineraryID)
	if err != nil {
		if errors.Is(err, repository.ErrItineraryNotFound) {
			return nil, domainerrors.ErrItineraryNotFound
		}

		return nil, errors.Wrap(err, "failed to find itinerary")
	}

	if !itinerary.IsVisibleTo(identity.UserID) {
		return nil, domainerrors.ErrItineraryNotFound
	}

	return itinerary, nil
}

// Get returns an itinerary and counts views by anyone but the owner.
func (srv *itineraryService) Get(ctx context.Context, identity entity.Identity, itineraryID uuid.UUID) (*entity.Itinerary, error) {
	itinerary, err := srv.loadVisible(ctx, identity, itineraryID)
	if err != nil {
		return nil, err
	}

	if !itinerary.IsOwnedBy(identity.UserID) {
		if err := srv.itineraryRepo.IncrementViewCount(ctx, itinerary.ID); err != nil {
			srv.log(ctx).Warn("Failed to increment view count", slog.Any("error", err))
		} else {
			itinerary.ViewCount++
		}
	}

	return itinerary, nil
}

// ListDays returns the derived day rows of a visible itinerary.
func (srv *itineraryService) ListDays(ctx context.Context, identity entity.Identity, itineraryID uuid.UUID) ([]*entity.ItineraryDay, error) {
	itinerary, err := srv.loadVisible(ctx, identity, itineraryID)
	if err != nil {
		return nil, err
	}

	days, err := srv.itineraryRepo.ListDays(ctx, itinerary.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list itinerary days")
	}

	return days, nil
}

// ShareQRCode renders a PNG pointing at the shared itinerary page.
func (srv *itineraryService) ShareQRCode(ctx context.Context, identity entity.Identity, itineraryID uuid.UUID) ([]byte, error) {
	itinerary, err := srv.loadVisible(ctx, identity, itineraryID)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrcode.GenerateItineraryQR(itinerary.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate itinerary QR code")
	}

	return png, nil
}
