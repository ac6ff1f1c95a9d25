package service

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"github.com/wb-go/wbf/ginext"

	"barkday/internal/dto"
	"barkday/internal/model"
	"barkday/internal/repo"
	"barkday/pkg/normalize"
	"barkday/pkg/validator"
)

type Service interface {
	Health(ctx *ginext.Context)
	CreateGuestbookEntry(ctx *ginext.Context)
	ListGuestbookEntries(ctx *ginext.Context)
	DeleteGuestbookEntry(ctx *ginext.Context)
	CreateRSVP(ctx *ginext.Context)
	ListRSVPs(ctx *ginext.Context)
}

type service struct {
	repo repo.Repository
	log  *zerolog.Logger
}

func NewService(repo repo.Repository, logger *zerolog.Logger) Service {
	return &service{
		repo: repo,
		log:  logger,
	}
}

func (s *service) Health(ctx *ginext.Context) {
	dto.SuccessResponse(ctx)
}

func (s *service) CreateGuestbookEntry(ctx *ginext.Context) {
	var req dto.CreateGuestbookRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		s.log.Error().Err(err).Msg("failed to parse guestbook request")
		dto.BadResponseError(ctx, dto.FieldIncorrect, "Invalid JSON format")
		return
	}

	// Length bounds apply to the raw input; normalization runs afterwards.
	if verr := validator.Validate(ctx, req); verr != nil {
		dto.BadResponseError(ctx, dto.FieldIncorrect, fmt.Sprintf("%v", verr))
		return
	}

	entry := &model.GuestbookEntry{
		CreatedAt: nowISO(),
		Name:      normalize.Normalize(req.Name),
		Message:   normalize.Normalize(req.Message),
	}

	id, err := s.repo.InsertGuestbookEntry(ctx.Request.Context(), entry)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to insert guestbook entry")
		dto.InternalServerError(ctx)
		return
	}

	s.log.Info().Int64("entry_id", id).Msg("guestbook entry created")
	dto.SuccessIDResponse(ctx, id)
}

func (s *service) ListGuestbookEntries(ctx *ginext.Context) {
	limit := clampLimit(ctx.Query("limit"), 100, 500)

	entries, err := s.repo.ListGuestbookEntries(ctx.Request.Context(), limit)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to list guestbook entries")
		dto.InternalServerError(ctx)
		return
	}

	dto.SuccessItemsResponse(ctx, entries)
}

func (s *service) DeleteGuestbookEntry(ctx *ginext.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		dto.BadResponseError(ctx, dto.FieldIncorrect, "Invalid entry ID")
		return
	}

	if err := s.repo.DeleteGuestbookEntry(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			dto.NotFoundError(ctx)
			return
		}
		s.log.Error().Err(err).Msg("failed to delete guestbook entry")
		dto.InternalServerError(ctx)
		return
	}

	s.log.Info().Int64("entry_id", id).Msg("guestbook entry deleted")
	dto.SuccessResponse(ctx)
}

func (s *service) CreateRSVP(ctx *ginext.Context) {
	var req dto.CreateRSVPRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		s.log.Error().Err(err).Msg("failed to parse rsvp request")
		dto.BadResponseError(ctx, dto.FieldIncorrect, "Invalid JSON format")
		return
	}

	if verr := validator.Validate(ctx, req); verr != nil {
		dto.BadResponseError(ctx, dto.FieldIncorrect, fmt.Sprintf("%v", verr))
		return
	}

	// The closed set is lowercase-exact, checked after normalization.
	attend := normalize.Normalize(req.Attend)
	switch attend {
	case "yes", "maybe", "no":
	default:
		dto.BadResponseError(ctx, dto.FieldIncorrect, "attend must be yes/maybe/no")
		return
	}

	resp := &model.RSVPResponse{
		CreatedAt: nowISO(),
		Name:      normalize.Normalize(req.Name),
		Contact:   normalize.Normalize(req.Contact),
		Attend:    attend,
		People:    req.People,
		Memo:      normalize.Normalize(req.Memo),
	}

	id, err := s.repo.InsertRSVP(ctx.Request.Context(), resp)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to insert rsvp")
		dto.InternalServerError(ctx)
		return
	}

	s.log.Info().Int64("rsvp_id", id).Str("attend", attend).Msg("rsvp created")
	dto.SuccessIDResponse(ctx, id)
}

func (s *service) ListRSVPs(ctx *ginext.Context) {
	limit := clampLimit(ctx.Query("limit"), 300, 1000)

	responses, err := s.repo.ListRSVPs(ctx.Request.Context(), limit)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to list rsvps")
		dto.InternalServerError(ctx)
		return
	}

	dto.SuccessItemsResponse(ctx, responses)
}

func nowISO() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}

// clampLimit falls back to def for absent, non-numeric or zero input and
// clamps the result into [1, max].
func clampLimit(raw string, def, max int) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n == 0 {
		n = def
	}
	if n < 1 {
		n = 1
	}
	if n > max {
		n = max
	}
	return n
}
