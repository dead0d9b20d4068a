package game

import (
	"log/slog"
	"slices"
)

// auction sells the unowned property at loc to the highest surviving
// bidder. Bidding runs in elimination rounds: each bidder produces a
// heuristic bid; bidding under the current high eliminates the bidder,
// bidding at or above it raises the high. With no eligible bidders the
// property simply stays in the pool.
func (g *Game) auction(loc int) {
	def, ok := g.board.Property(loc)
	if !ok {
		return
	}
	bidders := slices.Clone(g.Players)
	if len(bidders) == 0 {
		return
	}

	high := 0.0
	var highBidder *Player

	// Each pass eliminates every bidder under the running high, so the
	// field shrinks to one within len(bidders) rounds.
	for round := 0; len(bidders) > 1 && round < len(g.Players); round++ {
		survivors := bidders[:0]
		for _, p := range bidders {
			bid := p.bid(def.Price, 0, p.Cash, g.rng)
			if bid >= high {
				high = bid
				highBidder = p
				survivors = append(survivors, p)
				slog.Debug("auction bid", "game", g.Number, "player", p.ID, "space", def.Name, "bid", bid)
			} else {
				slog.Debug("auction out", "game", g.Number, "player", p.ID, "space", def.Name, "bid", bid, "high", high)
			}
		}
		bidders = survivors
	}

	winner := highBidder
	if len(bidders) == 1 {
		winner = bidders[0]
	}
	if winner == nil {
		return
	}
	slog.Debug("auction won", "game", g.Number, "player", winner.ID, "space", def.Name, "price", high)
	g.buyProperty(winner, loc, high)
}
