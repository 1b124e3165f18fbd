// Package service implements the activity registry's two operations: listing
// the catalog and signing a student up for an activity.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"mergington/internal/activities/metrics"
	"mergington/internal/activities/models"
	"mergington/internal/activities/store"
	"mergington/internal/activities/tracer"
	pkgerrors "mergington/pkg/domain-errors"
)

// Store defines the persistence interface for the activity registry.
// Error Contract:
// - AddParticipant returns store.ErrNotFound for unknown activities and
//   store.ErrAlreadyRegistered for duplicate roster entries
// - Other methods return nil on success or wrapped errors on failure
type Store interface {
	List(ctx context.Context) (map[string]*models.Activity, error)
	AddParticipant(ctx context.Context, activity, email string) (*models.Activity, error)
}

type Option func(*Service)

// Service exposes the registry operations with logging, metrics, and tracing.
// Emails are opaque strings: no format validation, no empty-string rejection.
// Capacity (max_participants) is descriptive and never gates a signup.
type Service struct {
	store   Store
	logger  *slog.Logger
	metrics *metrics.Metrics
	tracer  tracer.Tracer
}

func NewService(store Store, logger *slog.Logger, opts ...Option) *Service {
	svc := &Service{
		store:  store,
		logger: logger,
		tracer: tracer.NewNoop(),
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

// WithMetrics sets the metrics instance for the service.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithTracer sets the tracer used for registry spans.
func WithTracer(t tracer.Tracer) Option {
	return func(s *Service) {
		if t != nil {
			s.tracer = t
		}
	}
}

// List returns a snapshot of the full registry. Callers receive copies and
// cannot mutate registry state; all mutation goes through Signup.
func (s *Service) List(ctx context.Context) (activities map[string]*models.Activity, err error) {
	ctx, span := s.tracer.Start(ctx, tracer.SpanList)
	defer func() { span.End(err) }()

	activities, err = s.store.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(err, pkgerrors.CodeInternal, "failed to list activities")
	}

	span.SetAttributes(tracer.Int64(tracer.AttrActivityCount, int64(len(activities))))
	if s.metrics != nil {
		s.metrics.ListRequests.Inc()
	}
	return activities, nil
}

// Signup registers email for the named activity. The activity name must match
// an existing key exactly; the email must not already be on that roster.
func (s *Service) Signup(ctx context.Context, activity, email string) (result *models.SignupResult, err error) {
	start := time.Now()
	ctx, span := s.tracer.Start(ctx, tracer.SpanSignup,
		tracer.String(tracer.AttrActivity, activity),
	)
	defer func() {
		span.End(err)
		if s.metrics != nil {
			s.metrics.ObserveSignupLatency(time.Since(start).Seconds())
		}
	}()

	updated, err := s.store.AddParticipant(ctx, activity, email)
	if err != nil {
		return nil, s.signupFailure(ctx, activity, email, err)
	}

	span.SetAttributes(tracer.Int64(tracer.AttrParticipantCount, int64(len(updated.Participants))))
	if s.metrics != nil {
		s.metrics.SignupsTotal.WithLabelValues(activity).Inc()
		s.metrics.ParticipantsTotal.Inc()
	}
	s.logger.InfoContext(ctx, "participant signed up",
		"activity", activity,
		"email", email,
		"participants", len(updated.Participants),
	)

	return &models.SignupResult{
		Activity:     activity,
		Email:        email,
		Message:      fmt.Sprintf("%s signed up for %s", email, activity),
		Participants: len(updated.Participants),
	}, nil
}

// signupFailure translates store errors into domain errors and records the
// rejection. The duplicate message must keep the "already signed up" wording;
// clients match on it.
func (s *Service) signupFailure(ctx context.Context, activity, email string, err error) error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		s.recordFailure(ctx, "not_found", activity, email)
		return pkgerrors.New(pkgerrors.CodeNotFound, "Activity not found")
	case errors.Is(err, store.ErrAlreadyRegistered):
		s.recordFailure(ctx, "already_registered", activity, email)
		return pkgerrors.New(pkgerrors.CodeAlreadyRegistered, fmt.Sprintf("%s already signed up", email))
	default:
		s.logger.ErrorContext(ctx, "signup failed",
			"activity", activity,
			"email", email,
			"error", err,
		)
		return pkgerrors.Wrap(err, pkgerrors.CodeInternal, "signup failed")
	}
}

func (s *Service) recordFailure(ctx context.Context, reason, activity, email string) {
	if s.metrics != nil {
		s.metrics.SignupFailures.WithLabelValues(reason).Inc()
	}
	s.logger.WarnContext(ctx, "signup rejected",
		"reason", reason,
		"activity", activity,
		"email", email,
	)
}
