package httpapi

import (
	"context"
	"fmt"
	"io"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"

	"github.com/riskibarqy/fantasy-waterpolo/internal/platform/logging"
	"github.com/riskibarqy/fantasy-waterpolo/internal/usecase"
)

const maxRequestBodyBytes = 1 << 20

type Handler struct {
	playerService        *usecase.PlayerService
	playerStatsService   *usecase.PlayerStatsService
	teamService          *usecase.TeamService
	matchDayService      *usecase.MatchDayService
	rosterHistoryService *usecase.RosterHistoryService
	rosterResolver       *usecase.RosterResolver
	scoringService       *usecase.ScoringService
	logger               *logging.Logger
	validator            *validator.Validate
}

type Services struct {
	Players       *usecase.PlayerService
	PlayerStats   *usecase.PlayerStatsService
	Teams         *usecase.TeamService
	MatchDays     *usecase.MatchDayService
	RosterHistory *usecase.RosterHistoryService
	Resolver      *usecase.RosterResolver
	Scoring       *usecase.ScoringService
}

func NewHandler(services Services, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		playerService:        services.Players,
		playerStatsService:   services.PlayerStats,
		teamService:          services.Teams,
		matchDayService:      services.MatchDays,
		rosterHistoryService: services.RosterHistory,
		rosterResolver:       services.Resolver,
		scoringService:       services.Scoring,
		logger:               logger,
		validator:            validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

// decodeAndValidate reads a JSON body into dst, rejecting unknown fields, and
// runs struct validation on the result.
func (h *Handler) decodeAndValidate(ctx context.Context, r *http.Request, dst any) error {
	decoder := sonic.ConfigDefault.NewDecoder(io.LimitReader(r.Body, maxRequestBodyBytes))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}
	return h.validateRequest(ctx, dst)
}
