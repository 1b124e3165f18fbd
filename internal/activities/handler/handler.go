// Package handler exposes the activity registry over HTTP.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"mergington/internal/activities/models"
	dErrors "mergington/pkg/domain-errors"
	"mergington/pkg/platform/httputil"
	"mergington/pkg/requestcontext"
)

// Service defines the interface for registry operations.
type Service interface {
	List(ctx context.Context) (map[string]*models.Activity, error)
	Signup(ctx context.Context, activity, email string) (*models.SignupResult, error)
}

// Handler handles activity-related endpoints.
type Handler struct {
	logger     *slog.Logger
	activities Service
}

// New creates a new activities Handler.
func New(activities Service, logger *slog.Logger) *Handler {
	return &Handler{
		logger:     logger,
		activities: activities,
	}
}

// Register registers the activity routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/activities", h.handleListActivities)
	r.Post("/activities/{activity}/signup", h.handleSignup)
}

// handleListActivities returns the full registry as a JSON object keyed by
// activity name.
func (h *Handler) handleListActivities(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	activities, err := h.activities.List(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list activities",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, activities)
}

// handleSignup registers the email query parameter for the activity named in
// the path. The email is opaque; only the activity's existence and roster
// uniqueness are checked.
func (h *Handler) handleSignup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// chi leaves percent-encoding in place for routed params.
	activity, err := url.PathUnescape(chi.URLParam(r, "activity"))
	if err != nil {
		h.logger.WarnContext(ctx, "malformed activity name in path",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid activity name"))
		return
	}
	email := r.URL.Query().Get("email")

	result, err := h.activities.Signup(ctx, activity, email)
	if err != nil {
		h.logger.WarnContext(ctx, "signup request failed",
			"request_id", requestcontext.RequestID(ctx),
			"activity", activity,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, SignupResponse{Message: result.Message})
}
