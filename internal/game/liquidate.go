package game

import (
	"log/slog"

	"github.com/tmthydvnprt/monosim/internal/board"
	"github.com/tmthydvnprt/monosim/internal/economy"
)

// charge moves amount from p to the counterparty, liquidating assets when
// cash falls short. A shortfall that survives liquidation pays out the
// remaining cash, records the rest as debt, and eliminates the player.
// This is the only payment path that can trigger bankruptcy.
func (g *Game) charge(p *Player, amount float64, to economy.Party) {
	if p.Cash >= amount {
		p.Pay(amount, to)
		return
	}

	g.liquidate(p, amount)
	if p.Cash >= amount {
		p.Pay(amount, to)
		return
	}

	remainder := amount - p.Cash
	p.Pay(p.Cash, to)
	p.Debt = remainder
	slog.Debug("payment shortfall", "game", g.Number, "player", p.ID, "owed", amount, "unpaid", remainder)
	g.eliminate(p)
}

// liquidate raises cash toward need, in fixed order: mortgage the
// lowest-value eligible properties, then sell hotels, then sell houses.
// Properties inside monopolies are protected from forced mortgage, so
// developed groups are sacrificed last.
func (g *Game) liquidate(p *Player, need float64) {
	if p.Cash >= need {
		return
	}
	protected := g.monopolyGroups(p)

	// Mortgage undeveloped, unprotected properties, cheapest first.
	for p.Cash < need {
		var pick *Property
		for _, prop := range p.Properties {
			if prop.Mortgaged || prop.Developed() || protected[prop.Group] {
				continue
			}
			if pick == nil || prop.Value() < pick.Value() {
				pick = prop
			}
		}
		if pick == nil {
			break
		}
		pick.Mortgaged = true
		p.Add(pick.Mortgage, g.Bank)
		slog.Debug("mortgaged", "game", g.Number, "player", p.ID, "space", pick.Name, "raised", pick.Mortgage)
	}

	// Sell hotels one at a time, at build cost. A sold hotel does not
	// revert to houses; the lot goes bare.
	for _, prop := range p.Properties {
		if p.Cash >= need {
			return
		}
		if prop.Hotels > 0 {
			prop.Hotels = 0
			p.Add(prop.Cost, g.Bank)
			slog.Debug("sold hotel", "game", g.Number, "player", p.ID, "space", prop.Name, "raised", prop.Cost)
		}
	}

	// Sell houses one at a time, in property order.
	for sold := true; sold && p.Cash < need; {
		sold = false
		for _, prop := range p.Properties {
			if p.Cash >= need {
				return
			}
			if prop.Houses > 0 {
				prop.Houses--
				p.Add(prop.Cost, g.Bank)
				sold = true
				slog.Debug("sold house", "game", g.Number, "player", p.ID, "space", prop.Name, "raised", prop.Cost)
			}
		}
	}
}

// monopolyGroups returns the color groups p fully owns with no member
// mortgaged.
func (g *Game) monopolyGroups(p *Player) map[string]bool {
	owned := make(map[string]bool)
	for _, prop := range p.Properties {
		if prop.Category() != board.CategoryStreet {
			continue
		}
		if p.ownedInGroup(prop.Group) == g.board.GroupSize(prop.Group) {
			owned[prop.Group] = true
		}
	}
	return owned
}

// eliminate removes a bankrupt player from the rotation. Holdings are
// reset to their pristine state and returned to the unowned pool; kept
// cards cycle back into their origin decks.
func (g *Game) eliminate(p *Player) {
	for i, o := range g.Players {
		if o == p {
			g.Players = append(g.Players[:i], g.Players[i+1:]...)
			break
		}
	}
	g.Bankrupted = append(g.Bankrupted, p)

	for _, prop := range p.Properties {
		prop.Mortgaged = false
		prop.Houses = 0
		prop.Hotels = 0
		g.Unowned[prop.Loc] = prop
	}
	p.Properties = nil

	for _, card := range p.Cards {
		g.deckFor(card).Return(card)
	}
	p.Cards = nil

	slog.Info("player bankrupt", "game", g.Number, "player", p.ID, "round", g.Round, "debt", p.Debt)
}
