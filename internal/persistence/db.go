// Package persistence provides SQLite-based storage for game results and
// per-turn statistics rows.
package persistence

import (
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/tmthydvnprt/monosim/internal/game"
)

// DB wraps a SQLite connection for simulation output.
type DB struct {
	conn *sqlx.DB
}

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS games (
		game_id TEXT PRIMARY KEY,
		number INTEGER NOT NULL,
		seed INTEGER NOT NULL,
		players INTEGER NOT NULL,
		rounds INTEGER NOT NULL,
		hit_round_limit INTEGER NOT NULL,
		winner INTEGER NOT NULL,
		winner_net_worth REAL NOT NULL,
		elapsed_ms INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS standings (
		game_id TEXT NOT NULL,
		rank INTEGER NOT NULL,
		player_id INTEGER NOT NULL,
		cash REAL NOT NULL,
		debt REAL NOT NULL,
		net_worth REAL NOT NULL,
		properties INTEGER NOT NULL,
		houses INTEGER NOT NULL,
		hotels INTEGER NOT NULL,
		bankrupt INTEGER NOT NULL,
		PRIMARY KEY (game_id, player_id)
	);

	CREATE TABLE IF NOT EXISTS turns (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		game_id TEXT NOT NULL,
		round INTEGER NOT NULL,
		bank_balance REAL NOT NULL,
		pool_balance REAL NOT NULL,
		total_money REAL NOT NULL,
		open_properties INTEGER NOT NULL,
		player_id INTEGER NOT NULL,
		cash REAL NOT NULL,
		property_count INTEGER NOT NULL,
		net_worth REAL NOT NULL,
		houses INTEGER NOT NULL,
		hotels INTEGER NOT NULL,
		cards_held INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_turns_game ON turns(game_id, round);
	CREATE INDEX IF NOT EXISTS idx_standings_game ON standings(game_id);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// SaveResult writes one game's summary, standings, and turn rows in a
// single transaction.
func (db *DB) SaveResult(res *game.Result) error {
	tx, err := db.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	hitLimit := 0
	if res.HitRoundLimit {
		hitLimit = 1
	}
	_, err = tx.Exec(`INSERT INTO games
		(game_id, number, seed, players, rounds, hit_round_limit, winner, winner_net_worth, elapsed_ms)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		res.GameID, res.Number, res.Seed, len(res.Ranking), res.Rounds,
		hitLimit, res.Winner.PlayerID, res.Winner.NetWorth, res.Elapsed.Milliseconds(),
	)
	if err != nil {
		return fmt.Errorf("insert game %s: %w", res.GameID, err)
	}

	for rank, s := range res.Ranking {
		bankrupt := 0
		if s.Bankrupt {
			bankrupt = 1
		}
		_, err := tx.Exec(`INSERT INTO standings
			(game_id, rank, player_id, cash, debt, net_worth, properties, houses, hotels, bankrupt)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			res.GameID, rank+1, s.PlayerID, s.Cash, s.Debt, s.NetWorth,
			s.Properties, s.Houses, s.Hotels, bankrupt,
		)
		if err != nil {
			return fmt.Errorf("insert standing %s/%d: %w", res.GameID, s.PlayerID, err)
		}
	}

	if len(res.Records) > 0 {
		stmt, err := tx.Preparex(`INSERT INTO turns
			(game_id, round, bank_balance, pool_balance, total_money, open_properties,
			 player_id, cash, property_count, net_worth, houses, hotels, cards_held)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for _, r := range res.Records {
			_, err := stmt.Exec(
				r.GameID, r.Round, r.BankBalance, r.PoolBalance, r.TotalMoney,
				r.OpenProperties, r.PlayerID, r.Cash, r.PropertyCount,
				r.NetWorth, r.Houses, r.Hotels, r.CardsHeld,
			)
			if err != nil {
				return fmt.Errorf("insert turn row: %w", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	slog.Debug("result saved", "game", res.Number, "id", res.GameID, "turn_rows", len(res.Records))
	return nil
}

// GameCount returns how many game summaries are stored.
func (db *DB) GameCount() (int, error) {
	var n int
	err := db.conn.Get(&n, "SELECT COUNT(*) FROM games")
	return n, err
}

// WinCounts returns wins per player id across all stored games.
func (db *DB) WinCounts() (map[int]int, error) {
	rows, err := db.conn.Queryx("SELECT winner, COUNT(*) FROM games GROUP BY winner")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[int]int)
	for rows.Next() {
		var winner, n int
		if err := rows.Scan(&winner, &n); err != nil {
			return nil, err
		}
		counts[winner] = n
	}
	return counts, rows.Err()
}

// TurnRows loads all recorded turn rows for one game, in emission order.
func (db *DB) TurnRows(gameID string) ([]game.TurnRecord, error) {
	var out []game.TurnRecord
	err := db.conn.Select(&out, `SELECT
		game_id, round, bank_balance, pool_balance, total_money, open_properties,
		player_id, cash, property_count, net_worth, houses, hotels, cards_held
		FROM turns WHERE game_id = ? ORDER BY id`, gameID)
	return out, err
}
