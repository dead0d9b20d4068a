package game

import "log/slog"

// develop gives one player a development pass: for every monopoly, the
// members sitting at the group's minimum level may add one increment each
// (a house, or the hotel conversion after four houses), bank-paid up
// front. Building strictly at the minimum keeps development even across
// the group.
func (g *Game) develop(p *Player) {
	monopolies := g.monopolyGroups(p)
	if len(monopolies) == 0 {
		return
	}

	// ColorGroups gives a deterministic board-order walk; map iteration
	// would break seeded reproducibility.
	for _, group := range g.board.ColorGroups() {
		if !monopolies[group] {
			continue
		}

		members := make([]*Property, 0, g.board.GroupSize(group))
		minLevel := hotelLevel
		for _, loc := range g.board.GroupLocs(group) {
			prop := p.Holding(loc)
			members = append(members, prop)
			if prop.Level() < minLevel {
				minLevel = prop.Level()
			}
		}
		if minLevel >= hotelLevel {
			continue // fully built out
		}

		for _, prop := range members {
			if prop.Level() != minLevel || !p.affords(prop.Cost) {
				continue
			}
			g.charge(p, prop.Cost, g.Bank)
			if p.Bankrupt() {
				// The build charge wiped the player out; the holdings are
				// already reset and pooled, so nothing may be built on.
				return
			}
			switch {
			case prop.Houses < g.board.MaxHouses && prop.Hotels == 0:
				prop.Houses++
				slog.Debug("built house", "game", g.Number, "player", p.ID, "space", prop.Name, "houses", prop.Houses)
			case prop.Hotels == 0:
				// Fifth increment: the four houses convert to a hotel.
				prop.Houses = 0
				prop.Hotels = 1
				slog.Debug("built hotel", "game", g.Number, "player", p.ID, "space", prop.Name)
			}
		}
	}
}
