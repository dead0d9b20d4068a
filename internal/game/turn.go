package game

import (
	"log/slog"

	"github.com/tmthydvnprt/monosim/internal/board"
)

// takeTurn runs one player's complete turn: jail resolution, rolling with
// the doubles rule, movement, and space resolution. Emits a turn record
// when recording is enabled.
func (g *Game) takeTurn(p *Player) {
	p.Turns++

	sum := 0
	doubles := false
	rolled := false

	if p.Position == g.board.Jail() && !p.JustVisiting {
		sum, doubles, rolled = g.resolveJail(p)
		if !p.JustVisiting || p.Bankrupt() {
			// Still confined (or broke trying): no movement this turn.
			g.record(p)
			return
		}
	}

	if !rolled {
		sum, doubles = g.rollDice()
	}
	rolls := 1
	for doubles && rolls < g.board.MaxDoubles {
		slog.Debug("doubles, rolling again", "game", g.Number, "player", p.ID, "roll", sum)
		sum, doubles = g.rollDice()
		rolls++
	}

	if doubles && rolls == g.board.MaxDoubles {
		// Third consecutive doubles: straight to jail, no movement credit.
		slog.Debug("three doubles, going to jail", "game", g.Number, "player", p.ID)
		g.sendToJail(p)
	} else {
		g.advance(p, (p.Position+sum)%g.board.Size())
	}

	g.record(p)
}

// advance moves a player forward to loc, crediting the Go bonus when the
// move wraps the board or lands exactly on Go, then resolves the space.
func (g *Game) advance(p *Player, loc int) {
	if loc < p.Position || loc == 0 {
		g.Bank.Pay(g.board.GoBonus, p)
		slog.Debug("passed go", "game", g.Number, "player", p.ID, "bonus", g.board.GoBonus)
	}
	p.Position = loc
	p.JustVisiting = true
	g.resolveSpace(p)
}

// moveBack moves a player backward without any Go credit, then resolves.
func (g *Game) moveBack(p *Player, spaces int) {
	size := g.board.Size()
	p.Position = (p.Position - spaces%size + size) % size
	p.JustVisiting = true
	g.resolveSpace(p)
}

// sendToJail confines a player: direct transfer, no Go credit, no
// resolution of the jail space.
func (g *Game) sendToJail(p *Player) {
	p.Position = g.board.Jail()
	p.JustVisiting = false
}

// resolveSpace dispatches on the kind of the space the player occupies.
func (g *Game) resolveSpace(p *Player) {
	space := g.board.Space(p.Position)
	slog.Debug("landed", "game", g.Number, "player", p.ID, "space", space.Name)

	switch space.Kind() {
	case board.KindGo, board.KindJail:
		// Go bonus was credited on entry; jail is a no-op for visitors.

	case board.KindGoToJail:
		g.sendToJail(p)

	case board.KindIncomeTax:
		tax := g.board.IncomeTaxRate * p.NetWorth()
		if tax > g.board.IncomeTaxCap {
			tax = g.board.IncomeTaxCap
		}
		if tax > 0 {
			g.charge(p, tax, g.FreeParking)
		}

	case board.KindLuxuryTax:
		g.charge(p, g.board.LuxuryTax, g.FreeParking)

	case board.KindFreeParking:
		kitty := g.FreeParking.Balance
		if kitty > 0 {
			g.FreeParking.Pay(kitty, p)
			slog.Debug("collected free parking", "game", g.Number, "player", p.ID, "kitty", kitty)
		}

	case board.KindChance:
		g.applyCard(p, g.Chance.Draw())

	case board.KindChest:
		g.applyCard(p, g.Chest.Draw())

	default:
		g.resolveProperty(p)
	}
}

// resolveProperty handles landing on a purchasable space: pay rent to its
// owner, or buy it, or trigger an auction.
func (g *Game) resolveProperty(p *Player) {
	loc := p.Position
	if p.Owns(loc) {
		return
	}

	if owner := g.ownerOf(loc); owner != nil {
		prop := owner.Holding(loc)
		if prop.Mortgaged {
			return
		}
		dice := 0
		if prop.Category() == board.CategoryUtility {
			dice, _ = g.rollDice()
		}
		rent := prop.Rent(owner.ownedInGroup(prop.Group), g.board.GroupSize(prop.Group), dice)
		slog.Debug("paying rent", "game", g.Number, "player", p.ID, "owner", owner.ID, "space", prop.Name, "rent", rent)
		g.charge(p, rent, owner)
		return
	}

	def, ok := g.board.Property(loc)
	if !ok {
		panic("game: purchasable space without a property definition")
	}
	if p.Cash > def.Price {
		g.buyProperty(p, loc, def.Price)
		return
	}

	// Cannot afford it outright: either raise the cash or let everyone
	// bid on it.
	if p.liquidatesToBuy(g.rng) {
		g.liquidate(p, def.Price)
		if p.Cash > def.Price {
			g.buyProperty(p, loc, def.Price)
			return
		}
	}
	g.auction(loc)
}

// buyProperty transfers the pooled property at loc to p at the given
// price, paid to the bank.
func (g *Game) buyProperty(p *Player, loc int, price float64) {
	prop := g.takeProperty(loc)
	if prop == nil {
		return
	}
	g.charge(p, price, g.Bank)
	p.Properties = append(p.Properties, prop)
	slog.Debug("bought property", "game", g.Number, "player", p.ID, "space", prop.Name, "price", price)
}

// applyCard interprets a drawn card's effect against the drawing player.
func (g *Game) applyCard(p *Player, c *Card) {
	slog.Debug("drew card", "game", g.Number, "player", p.ID, "deck", c.Deck, "card", c.Text)

	switch c.Effect.Kind {
	case board.EffectAdvance:
		g.advance(p, c.Effect.Target)

	case board.EffectNearest:
		g.advanceToNearest(p, c.Effect.Class)

	case board.EffectBack:
		g.moveBack(p, c.Effect.Spaces)

	case board.EffectCollect:
		g.Bank.Pay(c.Effect.Amount, p)

	case board.EffectPay:
		g.charge(p, c.Effect.Amount, g.FreeParking)

	case board.EffectCollectEach:
		for _, o := range g.others(p) {
			g.charge(o, c.Effect.Amount, p)
		}

	case board.EffectPayEach:
		for _, o := range g.others(p) {
			g.charge(p, c.Effect.Amount, o)
			if p.Bankrupt() {
				break
			}
		}

	case board.EffectRepairs:
		bill := c.Effect.Amount*float64(p.Houses()) + c.Effect.PerHotel*float64(p.Hotels())
		if bill > 0 {
			g.charge(p, bill, g.FreeParking)
		}

	case board.EffectGoToJail:
		g.sendToJail(p)

	case board.EffectKeep:
		p.Cards = append(p.Cards, c)
	}
}

// advanceToNearest moves forward to the first space of the given group,
// wrapping past Go if necessary.
func (g *Game) advanceToNearest(p *Player, group string) {
	size := g.board.Size()
	for i := 1; i <= size; i++ {
		loc := (p.Position + i) % size
		if g.board.Space(loc).Group == group {
			g.advance(p, loc)
			return
		}
	}
}

// resolveJail runs the jail-release priority: a kept card, then pay or
// roll, then liquidation for the fee. Returns the release roll when the
// player got out by doubles, so the turn can use it for movement.
func (g *Game) resolveJail(p *Player) (sum int, doubles bool, rolled bool) {
	// A kept jail-release card is consumed first and cycles back into
	// its origin deck.
	if len(p.Cards) > 0 {
		card := p.Cards[0]
		p.Cards = p.Cards[1:]
		g.deckFor(card).Return(card)
		g.releaseFromJail(p)
		slog.Debug("used jail card", "game", g.Number, "player", p.ID, "deck", card.Deck)
		return 0, false, false
	}

	if p.Cash > g.board.JailFee {
		// Forced to pay once three doubles attempts have failed.
		if p.JailAttempts >= g.board.MaxDoubles || p.paysJailFee(g.rng) {
			g.charge(p, g.board.JailFee, g.FreeParking)
			g.releaseFromJail(p)
			slog.Debug("paid jail fee", "game", g.Number, "player", p.ID, "fee", g.board.JailFee)
			return 0, false, false
		}
		sum, doubles = g.rollDice()
		if doubles {
			g.releaseFromJail(p)
			slog.Debug("rolled out of jail", "game", g.Number, "player", p.ID, "roll", sum)
			return sum, doubles, true
		}
		p.JailAttempts++
		slog.Debug("failed jail roll", "game", g.Number, "player", p.ID, "attempts", p.JailAttempts)
		return 0, false, false
	}

	g.liquidate(p, g.board.JailFee)
	if p.Cash > g.board.JailFee {
		g.charge(p, g.board.JailFee, g.FreeParking)
		g.releaseFromJail(p)
		slog.Debug("liquidated for jail fee", "game", g.Number, "player", p.ID)
	}
	return 0, false, false
}

func (g *Game) releaseFromJail(p *Player) {
	p.JustVisiting = true
	p.JailAttempts = 0
}
