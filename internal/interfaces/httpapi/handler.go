package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/riskibarqy/match-analyst/internal/platform/logging"
	"github.com/riskibarqy/match-analyst/internal/usecase"
)

type Handler struct {
	analysisService *usecase.AnalysisService
	reportService   *usecase.ReportService
	lookupService   *usecase.LookupService
	archiveService  *usecase.ArchiveService
	reloadService   *usecase.ReloadService
	logger          *logging.Logger
	validator       *validator.Validate
}

// NewHandler wires the use cases behind the HTTP routes. archiveService may
// be nil when no archive database is configured.
func NewHandler(
	analysisService *usecase.AnalysisService,
	reportService *usecase.ReportService,
	lookupService *usecase.LookupService,
	archiveService *usecase.ArchiveService,
	reloadService *usecase.ReloadService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		analysisService: analysisService,
		reportService:   reportService,
		lookupService:   lookupService,
		archiveService:  archiveService,
		reloadService:   reloadService,
		logger:          logger,
		validator:       validator.New(),
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

// queryInt reads an optional integer query parameter. Missing means 0.
func queryInt(r *http.Request, key string) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return 0, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", usecase.ErrInvalidInput, key)
	}
	return value, nil
}
