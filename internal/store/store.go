package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/utakatalp/bowling-league/internal/league"
)

// ErrScheduleExists is returned when a season schedule is saved twice.
var ErrScheduleExists = errors.New("schedule already exists")

// Postgres is the Game Store backed by a Postgres database.
type Postgres struct {
	DB *sql.DB
}

// NewPostgres opens a Postgres connection using the given connection string.
func NewPostgres(ctx context.Context, connStr string) (*Postgres, error) {
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	// verify early
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}
	return &Postgres{DB: db}, nil
}

func (s *Postgres) Close() error {
	return s.DB.Close()
}

// Migrate creates the necessary tables if they do not exist.
func (s *Postgres) Migrate(ctx context.Context) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS teams (
		    id   SERIAL PRIMARY KEY,
		    name TEXT NOT NULL UNIQUE
		);`,
		`CREATE TABLE IF NOT EXISTS players (
		    id      SERIAL PRIMARY KEY,
		    name    TEXT NOT NULL,
		    team_id INT  NOT NULL REFERENCES teams(id)
		);`,
		`CREATE TABLE IF NOT EXISTS matchups (
		    id       SERIAL PRIMARY KEY,
		    week_id  INT NOT NULL,
		    team1_id INT NOT NULL REFERENCES teams(id),
		    team2_id INT NOT NULL REFERENCES teams(id)
		);`,
		`CREATE TABLE IF NOT EXISTS games (
		    player_id       INT     NOT NULL REFERENCES players(id),
		    team_id         INT     NOT NULL REFERENCES teams(id),
		    matchup_id      INT     NOT NULL REFERENCES matchups(id),
		    lineup_position INT     NOT NULL CHECK (lineup_position BETWEEN 1 AND 5),
		    game_number     INT     NOT NULL CHECK (game_number BETWEEN 1 AND 3),
		    game_score      INT     CHECK (game_score BETWEEN 0 AND 300),
		    is_absent       BOOLEAN NOT NULL DEFAULT FALSE,
		    PRIMARY KEY (player_id, matchup_id, game_number)
		);`,
	}
	for _, q := range queries {
		if _, err := s.DB.ExecContext(ctx, q); err != nil {
			return fmt.Errorf("migrating: %w", err)
		}
	}
	return nil
}

func (s *Postgres) InsertTeams(ctx context.Context, teams []league.Team) error {
	const q = `
    INSERT INTO teams (id, name)
    VALUES ($1, $2)
    ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name
    `
	for _, t := range teams {
		if _, err := s.DB.ExecContext(ctx, q, t.ID, t.Name); err != nil {
			return fmt.Errorf("inserting team %d (%s): %w", t.ID, t.Name, err)
		}
	}
	return nil
}

func (s *Postgres) InsertPlayers(ctx context.Context, players []league.Player) error {
	const q = `
    INSERT INTO players (id, name, team_id)
    VALUES ($1, $2, $3)
    ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, team_id = EXCLUDED.team_id
    `
	for _, p := range players {
		if _, err := s.DB.ExecContext(ctx, q, p.ID, p.Name, p.TeamID); err != nil {
			return fmt.Errorf("inserting player %d (%s): %w", p.ID, p.Name, err)
		}
	}
	return nil
}

// SaveSchedule persists matchups in one transaction and fills in their ids.
// It refuses to run when any matchup is already stored.
func (s *Postgres) SaveSchedule(ctx context.Context, matchups []league.Matchup) error {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin SaveSchedule tx: %w", err)
	}
	defer tx.Rollback()

	// serialize concurrent schedulers on the table
	if _, err := tx.ExecContext(ctx, `LOCK TABLE matchups IN SHARE ROW EXCLUSIVE MODE`); err != nil {
		return fmt.Errorf("locking matchups: %w", err)
	}
	var existing int
	if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM matchups`).Scan(&existing); err != nil {
		return fmt.Errorf("counting matchups: %w", err)
	}
	if existing > 0 {
		return fmt.Errorf("%w: %d matchups stored", ErrScheduleExists, existing)
	}

	const q = `
INSERT INTO matchups (week_id, team1_id, team2_id)
VALUES ($1, $2, $3)
RETURNING id
`
	for i := range matchups {
		m := &matchups[i]
		if err := tx.QueryRowContext(ctx, q, m.WeekID, m.Team1ID, m.Team2ID).Scan(&m.ID); err != nil {
			return fmt.Errorf("saving matchup week %d %d v %d: %w", m.WeekID, m.Team1ID, m.Team2ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit SaveSchedule tx: %w", err)
	}
	return nil
}

// SaveGame records or corrects one game.
func (s *Postgres) SaveGame(ctx context.Context, g league.Game) error {
	const q = `
INSERT INTO games (player_id, team_id, matchup_id, lineup_position, game_number, game_score, is_absent)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (player_id, matchup_id, game_number)
DO UPDATE SET game_score = EXCLUDED.game_score, is_absent = EXCLUDED.is_absent,
              lineup_position = EXCLUDED.lineup_position
`
	var score sql.NullInt64
	if g.Score != nil {
		score = sql.NullInt64{Int64: int64(*g.Score), Valid: true}
	}
	_, err := s.DB.ExecContext(ctx, q,
		g.PlayerID, g.TeamID, g.MatchupID, g.LineupPosition, g.GameNumber, score, g.Absent)
	if err != nil {
		return fmt.Errorf("saving game %d for player %d in matchup %d: %w", g.GameNumber, g.PlayerID, g.MatchupID, err)
	}
	return nil
}

// Snapshot loads every team, player and game.
func (s *Postgres) Snapshot(ctx context.Context) (league.Dataset, error) {
	var d league.Dataset
	var err error
	if d.Teams, err = s.teams(ctx); err != nil {
		return league.Dataset{}, err
	}
	if d.Players, err = s.players(ctx); err != nil {
		return league.Dataset{}, err
	}
	if d.Games, err = s.games(ctx); err != nil {
		return league.Dataset{}, err
	}
	return d, nil
}

func (s *Postgres) teams(ctx context.Context) ([]league.Team, error) {
	rows, err := s.DB.QueryContext(ctx, `SELECT id, name FROM teams ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("querying teams: %w", err)
	}
	defer rows.Close()

	var teams []league.Team
	for rows.Next() {
		var t league.Team
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, fmt.Errorf("scanning team row: %w", err)
		}
		teams = append(teams, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating teams rows: %w", err)
	}
	return teams, nil
}

func (s *Postgres) players(ctx context.Context) ([]league.Player, error) {
	rows, err := s.DB.QueryContext(ctx, `SELECT id, name, team_id FROM players ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("querying players: %w", err)
	}
	defer rows.Close()

	var players []league.Player
	for rows.Next() {
		var p league.Player
		if err := rows.Scan(&p.ID, &p.Name, &p.TeamID); err != nil {
			return nil, fmt.Errorf("scanning player row: %w", err)
		}
		players = append(players, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating players rows: %w", err)
	}
	return players, nil
}

func (s *Postgres) games(ctx context.Context) ([]league.Game, error) {
	const q = `
SELECT g.player_id, g.team_id, g.matchup_id, m.week_id, m.team1_id, m.team2_id,
       g.lineup_position, g.game_number, g.game_score, g.is_absent
FROM games g
JOIN matchups m ON m.id = g.matchup_id
ORDER BY m.week_id, g.matchup_id, g.team_id, g.lineup_position, g.game_number
`
	rows, err := s.DB.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("querying games: %w", err)
	}
	defer rows.Close()

	var games []league.Game
	for rows.Next() {
		var g league.Game
		var score sql.NullInt64
		if err := rows.Scan(
			&g.PlayerID,
			&g.TeamID,
			&g.MatchupID,
			&g.WeekID,
			&g.Team1ID,
			&g.Team2ID,
			&g.LineupPosition,
			&g.GameNumber,
			&score,
			&g.Absent,
		); err != nil {
			return nil, fmt.Errorf("scanning game row: %w", err)
		}
		if score.Valid {
			v := int(score.Int64)
			g.Score = &v
		}
		games = append(games, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating games rows: %w", err)
	}
	return games, nil
}

func (s *Postgres) DeleteAll(ctx context.Context) error {
	for _, table := range []string{"games", "matchups", "players", "teams"} {
		if _, err := s.DB.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("deleting all %s: %w", table, err)
		}
	}
	return nil
}
