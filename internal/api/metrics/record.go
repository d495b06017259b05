package metrics

import (
	"errors"

	"github.com/minusd/favorite-places/internal/core/domain"
)

// RecordAuth classifies err and increments AuthAttemptsTotal. A rejected
// field is also counted in SuspiciousInputTotal.
func RecordAuth(operation string, err error) {
	AuthAttemptsTotal.WithLabelValues(operation, Outcome(err)).Inc()
	RecordSuspicious(operation, err)
}

// RecordSuspicious counts err in SuspiciousInputTotal when it names a field.
func RecordSuspicious(operation string, err error) {
	var fe *domain.FieldError
	if errors.As(err, &fe) {
		SuspiciousInputTotal.WithLabelValues(operation, fe.Field).Inc()
	}
}

// Outcome maps an authentication error to its metric label.
func Outcome(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, domain.ErrInvalidInput):
		return "invalid_input"
	case errors.Is(err, domain.ErrDuplicateUser):
		return "duplicate_user"
	case errors.Is(err, domain.ErrAuthenticationFailed):
		return "auth_failed"
	default:
		return "error"
	}
}
