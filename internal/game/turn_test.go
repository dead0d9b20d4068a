package game

import "testing"

func TestThreeDoublesGoesToJail(t *testing.T) {
	g, s := newTestGame(t, 2)
	p := g.Players[0]
	s.dice = []int{6, 6, 6, 6, 6, 6}

	g.takeTurn(p)

	if p.Position != g.board.Jail() {
		t.Fatalf("position = %d, want jail at %d", p.Position, g.board.Jail())
	}
	if p.JustVisiting {
		t.Fatalf("player should be confined, not visiting")
	}
	if len(s.dice) != 0 {
		t.Fatalf("%d dice left unrolled; want exactly three rolls", len(s.dice))
	}
	if p.Cash != 1500 {
		t.Fatalf("cash = %v, want 1500: no movement or Go credit on jail transfer", p.Cash)
	}
}

func TestTwoDoublesThenMove(t *testing.T) {
	g, s := newTestGame(t, 2)
	p := g.Players[0]
	// Two doubles then 3+4: moves by the final roll's sum only.
	s.dice = []int{6, 6, 2, 2, 3, 4}

	g.takeTurn(p)

	if p.Position != 7 {
		t.Fatalf("position = %d, want 7 (final roll sum)", p.Position)
	}
}

func TestGoCreditOnEntry(t *testing.T) {
	g, _ := newTestGame(t, 2)
	p := g.Players[0]
	p.Position = 30
	bankBefore := g.Bank.Balance

	g.advance(p, 0)

	if p.Cash != 1500+g.board.GoBonus {
		t.Fatalf("cash = %v, want single Go bonus on exact landing", p.Cash)
	}
	if g.Bank.Balance != bankBefore-g.board.GoBonus {
		t.Fatalf("bank = %v, want bonus debited from bank", g.Bank.Balance)
	}
}

func TestNoGoCreditMovingBack(t *testing.T) {
	g, _ := newTestGame(t, 2)
	p := g.Players[0]
	p.Position = 1

	// 1 - 3 wraps to 38 (Luxury Tax): tax due, but no Go credit.
	g.moveBack(p, 3)

	if p.Position != 38 {
		t.Fatalf("position = %d, want 38", p.Position)
	}
	if p.Cash != 1500-g.board.LuxuryTax {
		t.Fatalf("cash = %v, want luxury tax only, no Go bonus", p.Cash)
	}
	if g.FreeParking.Balance != g.board.LuxuryTax {
		t.Fatalf("free parking = %v, want the tax", g.FreeParking.Balance)
	}
}

func TestGoToJailSpace(t *testing.T) {
	g, _ := newTestGame(t, 2)
	p := g.Players[0]
	p.Position = 26

	g.advance(p, 30)

	if p.Position != g.board.Jail() || p.JustVisiting {
		t.Fatalf("position=%d visiting=%v, want confined in jail", p.Position, p.JustVisiting)
	}
	if p.Cash != 1500 {
		t.Fatalf("cash = %v, want no Go credit on the jail transfer", p.Cash)
	}
}

func TestJailCardHasPriority(t *testing.T) {
	g, _ := newTestGame(t, 2)
	p := g.Players[0]
	p.Position = g.board.Jail()
	p.JustVisiting = false
	p.Cash = 1500

	card := g.Chance.Draw()
	for !card.Keepable() {
		card = g.Chance.Draw()
	}
	p.Cards = append(p.Cards, card)
	before := g.Chance.Len()

	g.resolveJail(p)

	if !p.JustVisiting {
		t.Fatalf("player should be released by the kept card")
	}
	if len(p.Cards) != 0 {
		t.Fatalf("card should be consumed")
	}
	if g.Chance.Len() != before+1 {
		t.Fatalf("card should return to its origin deck")
	}
	texts := g.Chance.Texts()
	if texts[len(texts)-1] != card.Text {
		t.Fatalf("returned card should sit at the back, found %q", texts[len(texts)-1])
	}
	if p.Cash != 1500 {
		t.Fatalf("cash = %v, release by card is free", p.Cash)
	}
}

func TestJailPayFee(t *testing.T) {
	g, s := newTestGame(t, 2)
	p := g.Players[0]
	p.Position = g.board.Jail()
	p.JustVisiting = false
	s.floats = []float64{0.9} // choose to pay

	g.resolveJail(p)

	if !p.JustVisiting {
		t.Fatalf("player should be released after paying")
	}
	if p.Cash != 1500-g.board.JailFee {
		t.Fatalf("cash = %v, want fee deducted", p.Cash)
	}
	if g.FreeParking.Balance != g.board.JailFee {
		t.Fatalf("free parking = %v, want the fee", g.FreeParking.Balance)
	}
}

func TestJailRollDoublesReleases(t *testing.T) {
	g, s := newTestGame(t, 2)
	p := g.Players[0]
	p.Position = g.board.Jail()
	p.JustVisiting = false
	s.floats = []float64{0.1} // choose to roll
	s.dice = []int{4, 4}

	sum, doubles, rolled := g.resolveJail(p)

	if !p.JustVisiting || !rolled || !doubles || sum != 8 {
		t.Fatalf("got sum=%d doubles=%v rolled=%v visiting=%v, want release on doubles",
			sum, doubles, rolled, p.JustVisiting)
	}
	if p.Cash != 1500 {
		t.Fatalf("cash = %v, doubles release is free", p.Cash)
	}
}

func TestJailRollFailsThenForcedPay(t *testing.T) {
	g, s := newTestGame(t, 2)
	p := g.Players[0]
	p.Position = g.board.Jail()
	p.JustVisiting = false

	for i := 0; i < 3; i++ {
		s.floats = []float64{0.1} // try doubles
		s.dice = []int{2, 5}
		g.resolveJail(p)
		if p.JustVisiting {
			t.Fatalf("attempt %d: should remain confined", i+1)
		}
	}
	if p.JailAttempts != 3 {
		t.Fatalf("attempts = %d, want 3", p.JailAttempts)
	}

	// Fourth turn: the pay-or-roll choice is taken away.
	s.floats = []float64{0.1}
	g.resolveJail(p)
	if !p.JustVisiting {
		t.Fatalf("player should be forced to pay after three failed attempts")
	}
	if p.Cash != 1500-g.board.JailFee {
		t.Fatalf("cash = %v, want forced fee", p.Cash)
	}
	if p.JailAttempts != 0 {
		t.Fatalf("attempts should reset on release")
	}
}

func TestConfinedTurnEndsWithoutMovement(t *testing.T) {
	g, s := newTestGame(t, 2)
	p := g.Players[0]
	p.Position = g.board.Jail()
	p.JustVisiting = false
	s.floats = []float64{0.1}
	s.dice = []int{2, 5}

	g.takeTurn(p)

	if p.Position != g.board.Jail() {
		t.Fatalf("confined player must not move, at %d", p.Position)
	}
}

func TestIncomeTaxCapped(t *testing.T) {
	g, _ := newTestGame(t, 2)
	p := g.Players[0]
	p.Position = 2

	g.advance(p, 4)

	// 10% of 1500 net worth is 150, under the 200 cap.
	if p.Cash != 1500-150 {
		t.Fatalf("cash = %v, want 10%% net-worth tax of 150", p.Cash)
	}

	o := g.Players[1]
	o.Cash = 5000
	o.Position = 2
	g.advance(o, 4)
	if o.Cash != 5000-200 {
		t.Fatalf("cash = %v, want capped tax of 200", o.Cash)
	}
}

func TestFreeParkingCollectsPool(t *testing.T) {
	g, _ := newTestGame(t, 2)
	p := g.Players[0]
	g.FreeParking.Add(165, nil)
	p.Position = 18

	g.advance(p, 20)

	if p.Cash != 1500+165 {
		t.Fatalf("cash = %v, want the whole kitty", p.Cash)
	}
	if g.FreeParking.Balance != 0 {
		t.Fatalf("free parking = %v, want emptied", g.FreeParking.Balance)
	}
}

func TestAdvanceToNearestWraps(t *testing.T) {
	g, _ := newTestGame(t, 2)
	p := g.Players[0]
	p.Position = 36

	g.advanceToNearest(p, "Railroad")

	if p.Position != 5 {
		t.Fatalf("position = %d, want Reading Railroad at 5", p.Position)
	}
	// Wrapped past Go, bought the railroad at 200: 1500 + 200 - 200.
	if !p.Owns(5) {
		t.Fatalf("player should have bought the unowned railroad")
	}
	if p.Cash != 1500 {
		t.Fatalf("cash = %v, want Go credit then purchase", p.Cash)
	}
}
