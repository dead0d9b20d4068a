// Package game implements the per-turn economic state machine: movement,
// rent, development, liquidation, bankruptcy, auctions, and the round loop
// that drives heuristic players to a winner.
package game

import "github.com/tmthydvnprt/monosim/internal/board"

// Property is a game-local mutable instance of a board.PropertyDef. A
// property lives in the game's unowned pool or in exactly one player's
// holdings; transfers move the pointer, never copy.
type Property struct {
	Name     string
	Group    string
	Loc      int
	Price    float64
	Rents    []float64
	Mortgage float64
	Cost     float64

	Mortgaged bool
	Houses    int
	Hotels    int

	category board.Category
}

// NewProperty instantiates a mutable property from its board template.
func NewProperty(def board.PropertyDef, cat board.Category) *Property {
	return &Property{
		Name:     def.Name,
		Group:    def.Group,
		Loc:      def.Loc,
		Price:    def.Price,
		Rents:    def.Rents,
		Mortgage: def.Mortgage,
		Cost:     def.Cost,
		category: cat,
	}
}

// Category returns the rent/appraisal category fixed at creation.
func (p *Property) Category() board.Category { return p.category }

// Level is the development level: 0–4 houses, or hotelLevel for a hotel.
func (p *Property) Level() int {
	if p.Hotels > 0 {
		return hotelLevel
	}
	return p.Houses
}

const hotelLevel = 5

// Value appraises the property for net-worth and liquidation purposes:
// mortgage value plus one build cost per standing increment.
func (p *Property) Value() float64 {
	if p.category == board.CategoryStreet {
		return p.Mortgage + p.Cost*float64(p.Houses+p.Hotels)
	}
	return p.Mortgage
}

// Developed reports whether any buildings stand on the property.
func (p *Property) Developed() bool { return p.Houses > 0 || p.Hotels > 0 }

// Rent computes the rent owed by a visitor. ownedInGroup is how many
// unmortgaged properties of this property's group the owner holds,
// groupSize the group's full membership, and diceSum a fresh roll used
// only by utilities. A mortgaged property charges nothing; callers skip it
// before rolling.
func (p *Property) Rent(ownedInGroup, groupSize, diceSum int) float64 {
	switch p.category {
	case board.CategoryUtility:
		return float64(diceSum) * p.Rents[ownedInGroup-1]
	case board.CategoryRailroad:
		return p.Rents[ownedInGroup-1]
	case board.CategoryStreet:
		if ownedInGroup == groupSize {
			switch {
			case p.Hotels > 0:
				return p.Rents[hotelLevel]
			case p.Houses > 0:
				return p.Rents[p.Houses]
			default:
				// Full color group, undeveloped: base rent doubles.
				return 2 * p.Rents[0]
			}
		}
		return p.Rents[0]
	default:
		return 0
	}
}
