package waitlist

import (
	"context"
	"log/slog"
	"regexp"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"github.com/venskie03/fokus/pkg/apperror"
	"github.com/venskie03/fokus/pkg/logger"
	"github.com/venskie03/fokus/pkg/metrics"
	"github.com/venskie03/fokus/pkg/pgutils"
	"github.com/venskie03/fokus/pkg/tracing"
)

// emailPattern accepts local@domain.tld with no whitespace or extra @
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var (
	ErrEmailRequired = apperror.NewBadRequest("Email is required")
	ErrEmailInvalid  = apperror.NewBadRequest("Invalid email format")
	ErrEmailExists   = apperror.NewConflict("Email already exists in waiting list")
)

// Store persists waitlist entries
type Store interface {
	Insert(ctx context.Context, email string) (*Entry, error)
}

// Service provides business logic for the waitlist
type Service struct {
	store Store
	log   *slog.Logger
}

// NewService creates a new waitlist service
func NewService(repo *Repository, log *slog.Logger) *Service {
	return newService(repo, log)
}

func newService(store Store, log *slog.Logger) *Service {
	return &Service{
		store: store,
		log:   log.With(logger.Scope("waitlist.svc")),
	}
}

// ValidateEmail checks a raw email before it reaches the store
func ValidateEmail(email string) error {
	if email == "" {
		return ErrEmailRequired
	}
	if !emailPattern.MatchString(email) {
		return ErrEmailInvalid
	}
	return nil
}

// Join validates email, lowercases it and stores it.
// Invalid input never reaches the store.
func (s *Service) Join(ctx context.Context, email string) (*Entry, error) {
	if err := ValidateEmail(email); err != nil {
		metrics.WaitlistSignups.WithLabelValues(metrics.ResultInvalid).Inc()
		return nil, err
	}

	ctx, span := tracing.Start(ctx, "waitlist.join")
	defer span.End()

	entry, err := s.store.Insert(ctx, strings.ToLower(email))
	if err != nil {
		if pgutils.IsUniqueViolation(err) {
			metrics.WaitlistSignups.WithLabelValues(metrics.ResultDuplicate).Inc()
			span.SetAttributes(attribute.Bool("fokus.waitlist.duplicate", true))
			s.log.Info("waitlist email already registered",
				slog.String("constraint", pgutils.ConstraintName(err)),
			)
			return nil, ErrEmailExists
		}
		metrics.WaitlistSignups.WithLabelValues(metrics.ResultError).Inc()
		tracing.RecordError(span, err)
		s.log.Error("failed to add waitlist entry", logger.Error(err))
		return nil, apperror.ErrDatabase.WithInternal(err)
	}

	metrics.WaitlistSignups.WithLabelValues(metrics.ResultSuccess).Inc()
	s.log.Info("waitlist entry added", slog.String("id", entry.ID.String()))
	return entry, nil
}
