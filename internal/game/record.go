package game

import "time"

// TurnRecord is one statistics row, emitted once per player-turn when
// recording is enabled. Field tags match the persistence schema.
type TurnRecord struct {
	GameID         string  `db:"game_id"`
	Round          int     `db:"round"`
	BankBalance    float64 `db:"bank_balance"`
	PoolBalance    float64 `db:"pool_balance"`
	TotalMoney     float64 `db:"total_money"`
	OpenProperties int     `db:"open_properties"`
	PlayerID       int     `db:"player_id"`
	Cash           float64 `db:"cash"`
	PropertyCount  int     `db:"property_count"`
	NetWorth       float64 `db:"net_worth"`
	Houses         int     `db:"houses"`
	Hotels         int     `db:"hotels"`
	CardsHeld      int     `db:"cards_held"`
}

// record appends a turn row for p, including the whole-game money view at
// the end of the turn.
func (g *Game) record(p *Player) {
	if !g.recording {
		return
	}
	g.Records = append(g.Records, TurnRecord{
		GameID:         g.ID.String(),
		Round:          g.Round,
		BankBalance:    g.Bank.Balance,
		PoolBalance:    g.FreeParking.Balance,
		TotalMoney:     g.board.TotalMoney(),
		OpenProperties: len(g.Unowned),
		PlayerID:       p.ID,
		Cash:           p.Cash,
		PropertyCount:  len(p.Properties),
		NetWorth:       p.NetWorth(),
		Houses:         p.Houses(),
		Hotels:         p.Hotels(),
		CardsHeld:      len(p.Cards),
	})
}

// Summary is a player's final standing.
type Summary struct {
	PlayerID   int     `db:"player_id"`
	Cash       float64 `db:"cash"`
	Debt       float64 `db:"debt"`
	NetWorth   float64 `db:"net_worth"`
	Properties int     `db:"properties"`
	Houses     int     `db:"houses"`
	Hotels     int     `db:"hotels"`
	Bankrupt   bool    `db:"bankrupt"`
}

// Result is the outcome of a completed game.
type Result struct {
	GameID        string
	Number        int
	Seed          int64
	Rounds        int
	HitRoundLimit bool // round ceiling reached with >1 player standing
	Winner        Summary
	Ranking       []Summary // descending net worth, winner first
	Elapsed       time.Duration
	Records       []TurnRecord
}

func (g *Game) result(elapsed time.Duration) *Result {
	res := &Result{
		GameID:        g.ID.String(),
		Number:        g.Number,
		Seed:          g.Seed,
		Rounds:        g.Round,
		HitRoundLimit: len(g.Players) > 1,
		Elapsed:       elapsed,
		Records:       g.Records,
	}
	for _, p := range g.Ranking() {
		res.Ranking = append(res.Ranking, Summary{
			PlayerID:   p.ID,
			Cash:       p.Cash,
			Debt:       p.Debt,
			NetWorth:   p.NetWorth(),
			Properties: len(p.Properties),
			Houses:     p.Houses(),
			Hotels:     p.Hotels(),
			Bankrupt:   p.Bankrupt(),
		})
	}
	res.Winner = res.Ranking[0]
	return res
}
