package ports

import (
	"context"

	"github.com/alejandrodnm/betplay/internal/domain"
)

// Notifier publica el estado de la simulación tras cada tick.
type Notifier interface {
	Notify(ctx context.Context, events []domain.SportsEvent, profile domain.UserProfile) error
}
