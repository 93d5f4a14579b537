package notify

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/alejandrodnm/betplay/internal/domain"
	"github.com/olekukonko/tablewriter"
	"golang.org/x/time/rate"
)

// Console implementa ports.Notifier.
//
// The simulator ticks every second; re-rendering the board that often is just
// noise, so output is throttled through a rate limiter.
type Console struct {
	out     io.Writer
	table   bool
	limiter *rate.Limiter
}

// NewConsole crea un notificador que escribe a stdout, limitado a un render
// cada pocos segundos.
func NewConsole(table bool) *Console {
	return &Console{
		out:     os.Stdout,
		table:   table,
		limiter: rate.NewLimiter(rate.Every(5*time.Second), 1),
	}
}

// NewConsoleWriter crea un notificador sin throttle, para tests.
func NewConsoleWriter(w io.Writer, table bool) *Console {
	return &Console{out: w, table: table, limiter: rate.NewLimiter(rate.Inf, 1)}
}

// Notify imprime el estado en el modo configurado. Los ticks que caen dentro
// de la ventana de throttle se descartan en silencio.
func (c *Console) Notify(_ context.Context, events []domain.SportsEvent, prof domain.UserProfile) error {
	if !c.limiter.Allow() {
		return nil
	}

	if c.table {
		c.printFull(events, prof)
	} else {
		c.printCompact(events, prof)
	}
	return nil
}

// printCompact imprime lo esencial en una línea.
func (c *Console) printCompact(events []domain.SportsEvent, prof domain.UserProfile) {
	now := time.Now().Format("15:04:05")
	up, live, fin := countByStatus(events)
	placed, won, lost := countBets(prof.BetsHistory)

	var sb strings.Builder
	fmt.Fprintf(&sb, "[%s] %d events → up:%d live:%d fin:%d | pts:%d x%.2f | bets:%d (W%d/L%d)",
		now, len(events), up, live, fin,
		prof.TotalPoints, prof.EffectiveMultiplier(),
		placed+won+lost, won, lost)

	for _, m := range prof.Missions {
		if m.IsCompleted() && !m.Claimed {
			fmt.Fprintf(&sb, " | mission ready: %s", m.Title)
		}
	}

	fmt.Fprintln(c.out, sb.String())
}

// printFull imprime el tablón de eventos y el resumen del perfil.
func (c *Console) printFull(events []domain.SportsEvent, prof domain.UserProfile) {
	now := time.Now()
	up, live, fin := countByStatus(events)

	fmt.Fprintf(c.out, "\n[%s] %d events — up:%d live:%d fin:%d\n",
		now.Format("15:04:05"), len(events), up, live, fin)

	table := tablewriter.NewWriter(c.out)
	table.Header("#", "Event", "Start", "Status", "H/D/A", "Result")

	for i, e := range events {
		startLabel := e.StartDate.Format("15:04")
		if e.Status == domain.StatusUpcoming {
			startLabel = fmt.Sprintf("%s (in %s)", startLabel, e.TimeToStart(now).Round(time.Minute))
		}

		result := "-"
		if e.ResolvedOutcome != nil {
			result = string(*e.ResolvedOutcome)
		}

		table.Append(
			fmt.Sprintf("%d", i+1),
			truncate(e.Title, 28),
			startLabel,
			string(e.Status),
			fmt.Sprintf("%.1f/%.1f/%.1f", e.Odds.HomeWin, e.Odds.Draw, e.Odds.AwayWin),
			result,
		)
	}
	table.Render()

	c.printProfile(prof)
}

// printProfile imprime balance, multiplicador y misiones.
func (c *Console) printProfile(prof domain.UserProfile) {
	fmt.Fprintf(c.out, "\n  %s — %d pts | multiplier x%.2f (base %.1f + bonus %.2f)\n",
		prof.DisplayName, prof.TotalPoints,
		prof.EffectiveMultiplier(), prof.BaseMultiplier, prof.CurrentMultiplierBonus)

	if len(prof.BetsHistory) > 0 {
		placed, won, lost := countBets(prof.BetsHistory)
		fmt.Fprintf(c.out, "  Bets: %d open, %d won, %d lost\n", placed, won, lost)
	}

	for _, m := range prof.Missions {
		mark := " "
		switch {
		case m.Claimed:
			mark = "x"
		case m.IsCompleted():
			mark = "!"
		}
		fmt.Fprintf(c.out, "  [%s] %s (%d/%d) +%dpts +x%.2f\n",
			mark, m.Title, m.ProgressCount, m.GoalCount, m.RewardPoints, m.RewardMultiplier)
	}
	fmt.Fprintln(c.out)
}

// --- helpers ---

func countByStatus(events []domain.SportsEvent) (up, live, fin int) {
	for _, e := range events {
		switch e.Status {
		case domain.StatusUpcoming:
			up++
		case domain.StatusOngoing:
			live++
		case domain.StatusFinished:
			fin++
		}
	}
	return
}

func countBets(bets []domain.Bet) (placed, won, lost int) {
	for _, b := range bets {
		switch b.Status {
		case domain.BetPlaced:
			placed++
		case domain.BetWon:
			won++
		case domain.BetLost:
			lost++
		}
	}
	return
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
