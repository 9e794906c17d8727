package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/utakatalp/bowling-league/internal/league"
)

// ErrStoreUnavailable marks a Game Store failure, as opposed to an empty
// ranking.
var ErrStoreUnavailable = errors.New("game store unavailable")

type GameStore interface {
	Snapshot(ctx context.Context) (league.Dataset, error)
}

type StandingsService struct {
	store GameStore
}

func NewStandingsService(store GameStore) *StandingsService {
	return &StandingsService{store: store}
}

func (s *StandingsService) load(ctx context.Context) (league.Dataset, error) {
	d, err := s.store.Snapshot(ctx)
	if err != nil {
		return league.Dataset{}, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	if err := d.Validate(); err != nil {
		return league.Dataset{}, fmt.Errorf("validating snapshot: %w", err)
	}
	return d, nil
}

// Standings computes the rankings as of the week named by rawWeek.
func (s *StandingsService) Standings(ctx context.Context, rawWeek string) (*league.Standings, error) {
	d, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	week, err := league.ParseWeek(rawWeek, d.LatestWeek())
	if err != nil {
		return nil, err
	}
	st := league.Compute(d, week)
	slog.Info("Computed standings", "week", week, "has_games", st.HasGames, "teams", len(st.Teams), "players", len(st.Players))
	return st, nil
}

// LatestStandings computes the rankings as of the latest recorded week.
func (s *StandingsService) LatestStandings(ctx context.Context) (*league.Standings, error) {
	d, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return league.Compute(d, max(d.LatestWeek(), 1)), nil
}

// SearchPlayers returns the latest player rankings whose names fuzzily
// match query, closest first.
func (s *StandingsService) SearchPlayers(ctx context.Context, query string) ([]league.PlayerRanking, error) {
	st, err := s.LatestStandings(ctx)
	if err != nil {
		return nil, err
	}
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}

	names := make([]string, len(st.Players))
	for i, p := range st.Players {
		names[i] = p.Name
	}
	ranks := fuzzy.RankFindFold(query, names)
	sort.Slice(ranks, func(i, j int) bool {
		if ranks[i].Distance != ranks[j].Distance {
			return ranks[i].Distance < ranks[j].Distance
		}
		return ranks[i].OriginalIndex < ranks[j].OriginalIndex
	})

	found := make([]league.PlayerRanking, 0, len(ranks))
	for _, r := range ranks {
		found = append(found, st.Players[r.OriginalIndex])
	}
	return found, nil
}

// StandingsReport renders the latest team standings as a Telegram Markdown
// message. Names are escaped so they cannot break the markup.
func (s *StandingsService) StandingsReport(ctx context.Context) (string, error) {
	st, err := s.LatestStandings(ctx)
	if err != nil {
		return "", fmt.Errorf("error computing standings: %w", err)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("🎳 *Standings after week %d*\n\n", st.Week))
	if !st.HasGames {
		sb.WriteString("No games recorded yet.\n")
		return sb.String(), nil
	}
	for i, t := range st.Teams {
		sb.WriteString(fmt.Sprintf("%d. *%s* %s pts", i+1, escape(t.TeamName), formatPoints(t.TotalPoints)))
		if t.CurrentWeekPoints > 0 {
			sb.WriteString(fmt.Sprintf(" (+%s)", formatPoints(t.CurrentWeekPoints)))
		}
		sb.WriteString(fmt.Sprintf("\n   Victories: %d  Peterson: %d  Prize: $%s\n", t.Victories, t.PetersonPoints, t.PrizeMoney))
	}

	if len(st.Players) > 0 {
		top := st.Players[0]
		sb.WriteString(fmt.Sprintf("\nTop average: *%s* (%s) %.1f\n", escape(top.Name), escape(top.TeamName), top.Average))
	}
	return sb.String(), nil
}

func escape(name string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeMarkdown, name)
}

func formatPoints(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}
