package ports

import "github.com/alejandrodnm/betplay/internal/domain"

// OutcomeSource draws the result of a finished match. Production uses a
// uniform draw; tests inject a deterministic source.
type OutcomeSource interface {
	Draw() domain.Outcome
}
