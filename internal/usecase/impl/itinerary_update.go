package impl

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"slices"
	"strings"
	"time"

	"columbus/internal/domain/entity"
	domainerrors "columbus/internal/domain/errors"
	"columbus/internal/domain/repository"
	"columbus/internal/domain/service"
	"columbus/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const maxTitleLength = 255

// updatableItineraryFields is the whitelist of PUT /itinerary/{id}.
var updatableItineraryFields = []string{"title", "start_date", "end_date", "status", "itinerary_data", "is_public"}

// buildItineraryPatch decodes the whitelisted fields. Unknown fields are
// dropped unless rejectUnknown is set.
func buildItineraryPatch(fields map[string]json.RawMessage, rejectUnknown bool) (*entity.ItineraryPatch, []string, error) {
	var (
		patch   entity.ItineraryPatch
		invalid []string
		unknown []string
	)

	for name, raw := range fields {
		if !slices.Contains(updatableItineraryFields, name) {
			unknown = append(unknown, name)

			continue
		}
		if isJSONNull(raw) {
			invalid = append(invalid, name)

			continue
		}

		switch name {
		case "title":
			var title string
			if err := json.Unmarshal(raw, &title); err != nil || strings.TrimSpace(title) == "" || len(title) > maxTitleLength {
				invalid = append(invalid, name)

				continue
			}
			title = strings.TrimSpace(title)
			patch.Title = &title
		case "start_date", "end_date":
			date, ok := decodeDate(raw)
			if !ok {
				invalid = append(invalid, name)

				continue
			}
			if name == "start_date" {
				patch.StartDate = date
			} else {
				patch.EndDate = date
			}
		case "status":
			var status entity.ItineraryStatus
			if err := json.Unmarshal(raw, &status); err != nil || !status.IsValid() {
				invalid = append(invalid, name)

				continue
			}
			patch.Status = &status
		case "itinerary_data":
			if _, err := entity.ParseItineraryDocument(raw); err != nil {
				invalid = append(invalid, name)

				continue
			}
			patch.ItineraryData = compactJSON(raw)
		case "is_public":
			var public bool
			if err := json.Unmarshal(raw, &public); err != nil {
				invalid = append(invalid, name)

				continue
			}
			patch.IsPublic = &public
		}
	}

	slices.Sort(unknown)
	slices.Sort(invalid)

	if rejectUnknown && len(unknown) > 0 {
		return nil, unknown, domainerrors.NewValidationError("unknown fields", unknown...)
	}
	if len(invalid) > 0 {
		return nil, unknown, domainerrors.NewValidationError("invalid fields", invalid...)
	}
	if patch.IsEmpty() {
		return nil, unknown, domainerrors.NewValidationError("no updatable fields")
	}

	return &patch, unknown, nil
}

func decodeDate(raw json.RawMessage) (*time.Time, bool) {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, false
	}
	date, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil, false
	}

	return &date, true
}

func isJSONNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

func compactJSON(raw json.RawMessage) json.RawMessage {
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return raw
	}

	return buf.Bytes()
}

// applyItineraryPatch mutates itinerary and reports whether the derived day
// rows must be rebuilt.
func (srv *itineraryService) applyItineraryPatch(itinerary *entity.Itinerary, patch *entity.ItineraryPatch) (bool, error) {
	rebuildDays := false

	if patch.Title != nil {
		itinerary.Title = *patch.Title
	}
	if patch.IsPublic != nil {
		itinerary.IsPublic = *patch.IsPublic
	}

	if patch.Status != nil {
		next := *patch.Status
		if srv.config.Itinerary.EnforceStatusTransitions && !itinerary.Status.CanTransitionTo(next) {
			return false, domainerrors.NewValidationError(
				"status cannot move from "+string(itinerary.Status)+" to "+string(next), "status")
		}
		if next == entity.ItineraryStatusCompleted && itinerary.Status != entity.ItineraryStatusCompleted {
			completedAt := srv.now().UTC()
			itinerary.CompletedAt = &completedAt
		}
		if next == entity.ItineraryStatusDraft || next == entity.ItineraryStatusActive {
			itinerary.CompletedAt = nil
		}
		itinerary.Status = next
	}

	if patch.StartDate != nil {
		itinerary.StartDate = patch.StartDate
		rebuildDays = true
	}
	if patch.EndDate != nil {
		itinerary.EndDate = patch.EndDate
	}
	if itinerary.StartDate != nil && itinerary.EndDate != nil {
		if itinerary.EndDate.Before(*itinerary.StartDate) {
			return false, domainerrors.NewValidationError("end_date must not be before start_date", "end_date")
		}
		itinerary.DurationDays = int(itinerary.EndDate.Sub(*itinerary.StartDate).Hours()/24) + 1
	}

	if patch.ItineraryData != nil {
		itinerary.ItineraryData = patch.ItineraryData
		rebuildDays = true
	}

	return rebuildDays, nil
}

// Update applies a whitelisted patch to an itinerary owned by the caller.
// The row is locked for the duration of the transaction so concurrent patches
// never write back stale columns. Document and day rows are written together.
func (srv *itineraryService) Update(ctx context.Context, identity entity.Identity, itineraryID uuid.UUID, input *usecase.UpdateItineraryInput) (*usecase.UpdateItineraryOutput, error) {
	patch, ignored, err := buildItineraryPatch(input.Fields, srv.config.Itinerary.RejectUnknownFields)
	if err != nil {
		return nil, err
	}
	if len(ignored) > 0 {
		srv.log(ctx).Debug("Ignoring non-updatable itinerary fields", slog.Any("fields", ignored))
	}

	var updated *entity.Itinerary

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		itineraryRepo := repoFactory.NewItineraryRepository()

		itinerary, err := itineraryRepo.FindByIDForUpdate(ctx, itineraryID)
		if err != nil {
			if errors.Is(err, repository.ErrItineraryNotFound) {
				return domainerrors.ErrItineraryNotFound
			}

			return errors.Wrap(err, "failed to find itinerary")
		}

		if !itinerary.IsOwnedBy(identity.UserID) {
			return domainerrors.ErrForbidden.WithMessage("You do not own this itinerary")
		}

		rebuildDays, err := srv.applyItineraryPatch(itinerary, patch)
		if err != nil {
			return err
		}

		if err := itineraryRepo.Update(ctx, itinerary); err != nil {
			return errors.Wrap(err, "failed to update itinerary")
		}

		if rebuildDays {
			// A patched document was validated above; only a legacy stored
			// document can fail here, and its rows are then left as they are.
			if doc, err := entity.ParseItineraryDocument(itinerary.ItineraryData); err == nil {
				if err := itineraryRepo.ReplaceDays(ctx, itinerary.ID, doc.DeriveDays(itinerary.ID, itinerary.StartDate)); err != nil {
					return errors.Wrap(err, "failed to rebuild itinerary days")
				}
			}
		}

		updated = itinerary

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update itinerary")
	}

	srv.publish(ctx, service.EventItineraryUpdated, updated)

	return &usecase.UpdateItineraryOutput{
		ItineraryID: updated.ID,
		UpdatedAt:   updated.UpdatedAt,
	}, nil
}
