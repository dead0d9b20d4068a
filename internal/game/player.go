package game

import (
	"github.com/tmthydvnprt/monosim/internal/economy"
	"github.com/tmthydvnprt/monosim/internal/entropy"
)

// Player holds one agent's mutable state plus its decision heuristics.
// All orchestration (movement, rent, liquidation) lives on Game; the
// player only knows its own holdings and preferences.
type Player struct {
	ID       int
	Position int
	Cash     float64
	Debt     float64 // unpaid remainder after liquidation; >0 marks bankruptcy

	// Properties in acquisition order; the order is the house-sale
	// tie-break during liquidation.
	Properties []*Property
	Cards      []*Card

	// Jail state. JustVisiting distinguishes a stroll past the jail
	// space from confinement; JailAttempts counts failed doubles tries.
	JustVisiting bool
	JailAttempts int

	// RiskTolerance scales the affordability heuristic for building.
	RiskTolerance float64

	Turns int
}

// newPlayer creates a player with no cash; the game banks the starting
// stake so the money supply stays accounted for.
func newPlayer(id int, rng entropy.Source) *Player {
	return &Player{
		ID:            id,
		JustVisiting:  true,
		RiskTolerance: rng.Normal(0.75, 0.1),
	}
}

// Bankrupt reports whether the player has been eliminated. Debt is only
// ever recorded after liquidation fails, so this never misfires mid-turn.
func (p *Player) Bankrupt() bool { return p.Debt > 0 }

// NetWorth is cash minus debt plus the appraised value of all holdings.
func (p *Player) NetWorth() float64 {
	worth := p.Cash - p.Debt
	for _, prop := range p.Properties {
		worth += prop.Value()
	}
	return worth
}

// Houses counts standing houses across all holdings.
func (p *Player) Houses() int {
	n := 0
	for _, prop := range p.Properties {
		n += prop.Houses
	}
	return n
}

// Hotels counts standing hotels across all holdings.
func (p *Player) Hotels() int {
	n := 0
	for _, prop := range p.Properties {
		n += prop.Hotels
	}
	return n
}

// Owns reports whether the player holds the property at loc.
func (p *Player) Owns(loc int) bool { return p.Holding(loc) != nil }

// Holding returns the player's property at loc, or nil.
func (p *Player) Holding(loc int) *Property {
	for _, prop := range p.Properties {
		if prop.Loc == loc {
			return prop
		}
	}
	return nil
}

// ownedInGroup counts the player's unmortgaged holdings in a group. It
// drives both rent multipliers and monopoly detection.
func (p *Player) ownedInGroup(group string) int {
	n := 0
	for _, prop := range p.Properties {
		if prop.Group == group && !prop.Mortgaged {
			n++
		}
	}
	return n
}

// Add credits the player, debiting from when non-nil. Part of the
// economy.Party contract.
func (p *Player) Add(amount float64, from economy.Party) {
	p.Cash += amount
	if from != nil {
		from.Pay(amount, nil)
	}
}

// Pay is the blind debit primitive of the economy.Party contract: it
// assumes the cash is there. Payments that may need liquidation go
// through Game.charge instead.
func (p *Player) Pay(amount float64, to economy.Party) {
	p.Cash -= amount
	if to != nil {
		to.Add(amount, nil)
	}
}

// bid produces an auction bid: a normal draw centered on the asking price
// with half-price spread, clamped to [minBid, maxBid].
func (p *Player) bid(price, minBid, maxBid float64, rng entropy.Source) float64 {
	b := rng.Normal(price, 0.5*price)
	if b < minBid {
		b = minBid
	}
	if b > maxBid {
		b = maxBid
	}
	return b
}

// paysJailFee decides between paying the jail fee and attempting doubles.
func (p *Player) paysJailFee(rng entropy.Source) bool {
	return rng.Float() > 0.5
}

// liquidatesToBuy decides between raising cash for a purchase and sending
// the property straight to auction.
func (p *Player) liquidatesToBuy(rng entropy.Source) bool {
	return rng.Float() > 0.5
}

// affords is the building affordability heuristic: spend only when the
// cost is a tolerable fraction of cash on hand.
func (p *Player) affords(cost float64) bool {
	return cost < p.RiskTolerance*p.Cash
}
