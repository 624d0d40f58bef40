package httpapi

import (
	"fmt"
	"io"
	"net/http"

	sonic "github.com/bytedance/sonic"

	"github.com/riskibarqy/match-analyst/internal/usecase"
)

const maxInternalBodyBytes = 64 << 10

type archiveImportRequest struct {
	BasePath string `json:"basePath" validate:"max=512"`
}

func (h *Handler) ReloadMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ReloadMatches")
	defer span.End()

	count, err := h.reloadService.Reload(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "reload matches failed", "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, reloadDTO{Records: count})
}

func (h *Handler) ImportArchive(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ImportArchive")
	defer span.End()

	if h.archiveService == nil {
		writeError(ctx, w, fmt.Errorf("%w: match archive is not configured", usecase.ErrDependencyUnavailable))
		return
	}

	var req archiveImportRequest
	body, err := io.ReadAll(io.LimitReader(r.Body, maxInternalBodyBytes))
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: read request body: %v", usecase.ErrInvalidInput, err))
		return
	}
	if len(body) > 0 {
		if err := sonic.Unmarshal(body, &req); err != nil {
			writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload", usecase.ErrInvalidInput))
			return
		}
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	run, err := h.archiveService.Import(ctx, req.BasePath)
	if err != nil {
		h.logger.ErrorContext(ctx, "archive import failed", "base_path", req.BasePath, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, archiveRunToDTO(run))
}

func (h *Handler) GetLatestArchiveRun(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLatestArchiveRun")
	defer span.End()

	if h.archiveService == nil {
		writeError(ctx, w, fmt.Errorf("%w: match archive is not configured", usecase.ErrDependencyUnavailable))
		return
	}

	run, err := h.archiveService.LatestRun(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, archiveRunToDTO(run))
}
