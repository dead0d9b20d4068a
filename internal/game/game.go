package game

import (
	"fmt"
	"log/slog"
	"slices"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/tmthydvnprt/monosim/internal/board"
	"github.com/tmthydvnprt/monosim/internal/economy"
	"github.com/tmthydvnprt/monosim/internal/entropy"
)

// Options configure a single game instance.
type Options struct {
	Players   int
	Seed      int64 // 0 draws a crypto-random seed
	MaxRounds int
	Record    bool // emit one TurnRecord per player-turn
	Number    int  // game number within a batch, for logging
	Board     *board.Config

	// Rand overrides the seeded source; used by tests to script rolls.
	Rand entropy.Source
}

// Game owns the canonical arenas for players, properties, decks, and the
// two money pools, and runs the round loop. A game is single-threaded;
// independent games may run concurrently.
type Game struct {
	ID     uuid.UUID
	Number int
	Seed   int64

	Players    []*Player // active rotation, in turn order
	Bankrupted []*Player // eliminated, in elimination order
	Unowned    map[int]*Property

	Chance      *Deck
	Chest       *Deck
	Bank        *economy.Pool
	FreeParking *economy.Pool

	Round   int
	Records []TurnRecord

	board     *board.Config
	rng       entropy.Source
	recording bool
	maxRounds int
}

// New assembles a game: fresh property instances from the templates,
// shuffled decks, a capitalized bank, and staked players.
func New(opts Options) (*Game, error) {
	if opts.Board == nil {
		return nil, fmt.Errorf("game: board config required")
	}
	if opts.Players < 2 {
		return nil, fmt.Errorf("game: need at least 2 players, got %d", opts.Players)
	}
	if opts.MaxRounds <= 0 {
		return nil, fmt.Errorf("game: max rounds must be positive, got %d", opts.MaxRounds)
	}

	rng := opts.Rand
	seed := opts.Seed
	if rng == nil {
		seeded := entropy.New(opts.Seed)
		seed = seeded.Seed()
		rng = seeded
	}

	cfg := opts.Board
	g := &Game{
		ID:          uuid.New(),
		Number:      opts.Number,
		Seed:        seed,
		Unowned:     make(map[int]*Property, len(cfg.Properties)),
		Chance:      NewDeck("Chance", cfg.Chance, rng),
		Chest:       NewDeck("Community Chest", cfg.CommunityChest, rng),
		Bank:        economy.NewBank(cfg.TotalMoney()),
		FreeParking: economy.NewFreeParking(),
		board:       cfg,
		rng:         rng,
		recording:   opts.Record,
		maxRounds:   opts.MaxRounds,
	}

	for _, def := range cfg.Properties {
		g.Unowned[def.Loc] = NewProperty(def, cfg.Space(def.Loc).Kind().Category())
	}

	for i := 0; i < opts.Players; i++ {
		p := newPlayer(i, rng)
		g.Bank.Pay(cfg.StartingCash, p)
		g.Players = append(g.Players, p)
	}

	return g, nil
}

// Run plays rounds until one player remains or the round ceiling is hit,
// then returns the final standings.
func (g *Game) Run() *Result {
	start := time.Now()
	slog.Info("game starting", "game", g.Number, "id", g.ID, "seed", g.Seed, "players", len(g.Players))

	for len(g.Players) > 1 && g.Round < g.maxRounds {
		g.Round++
		slog.Debug("round", "game", g.Number, "round", g.Round)

		// Iterate a snapshot: bankruptcies remove players from the live
		// rotation mid-round, and removed players are skipped here.
		active := slices.Clone(g.Players)
		for _, p := range active {
			if p.Bankrupt() {
				continue
			}
			g.takeTurn(p)

			// After every individual turn, all surviving players get a
			// development opportunity.
			for _, dev := range slices.Clone(g.Players) {
				g.develop(dev)
			}
		}
	}

	res := g.result(time.Since(start))
	if res.HitRoundLimit {
		slog.Info("game ended at round ceiling", "game", g.Number, "rounds", g.Round, "winner", res.Winner.PlayerID)
	} else {
		slog.Info("game ended by elimination", "game", g.Number, "rounds", g.Round, "winner", res.Winner.PlayerID)
	}
	return res
}

// Ranking returns every player, active and bankrupted, sorted descending
// by net worth.
func (g *Game) Ranking() []*Player {
	all := make([]*Player, 0, len(g.Players)+len(g.Bankrupted))
	all = append(all, g.Players...)
	all = append(all, g.Bankrupted...)
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].NetWorth() > all[j].NetWorth()
	})
	return all
}

// others returns the active players other than p, in turn order.
func (g *Game) others(p *Player) []*Player {
	out := make([]*Player, 0, len(g.Players)-1)
	for _, o := range g.Players {
		if o != p {
			out = append(out, o)
		}
	}
	return out
}

// ownerOf returns the active player holding loc, or nil.
func (g *Game) ownerOf(loc int) *Player {
	for _, p := range g.Players {
		if p.Owns(loc) {
			return p
		}
	}
	return nil
}

// takeProperty removes the property at loc from the unowned pool. A
// purchasable space that is neither pooled nor owned means the ownership
// bookkeeping is broken; that is unrecoverable, so it aborts.
func (g *Game) takeProperty(loc int) *Property {
	prop, ok := g.Unowned[loc]
	if !ok {
		if g.ownerOf(loc) == nil {
			panic(fmt.Sprintf("game %d: property %d neither pooled nor owned", g.Number, loc))
		}
		return nil
	}
	delete(g.Unowned, loc)
	return prop
}

// deckFor returns the deck a card originated from.
func (g *Game) deckFor(c *Card) *Deck {
	if c.Deck == g.Chance.Name {
		return g.Chance
	}
	return g.Chest
}

// rollDice rolls two dice and reports the sum and whether they match.
func (g *Game) rollDice() (sum int, doubles bool) {
	d1, d2 := g.rng.Die(), g.rng.Die()
	return d1 + d2, d1 == d2
}
