package game

import "testing"

func TestRailroadRent(t *testing.T) {
	g, _ := newTestGame(t, 2)
	owner := g.Players[1]
	prop := grant(t, g, owner, 5)

	cases := []struct {
		owned int
		want  float64
	}{
		{1, 25}, {2, 50}, {3, 100}, {4, 200},
	}
	for _, c := range cases {
		got := prop.Rent(c.owned, 4, 0)
		if got != c.want {
			t.Fatalf("rent with %d railroads = %v, want %v", c.owned, got, c.want)
		}
	}
}

func TestUtilityRent(t *testing.T) {
	g, _ := newTestGame(t, 2)
	owner := g.Players[1]
	prop := grant(t, g, owner, 12)

	if got := prop.Rent(1, 2, 7); got != 28 {
		t.Fatalf("one utility, dice 7: rent = %v, want 28", got)
	}
	if got := prop.Rent(2, 2, 7); got != 70 {
		t.Fatalf("both utilities, dice 7: rent = %v, want 70", got)
	}
}

func TestStreetRentSchedule(t *testing.T) {
	g, _ := newTestGame(t, 2)
	owner := g.Players[1]
	prop := grant(t, g, owner, 1) // rents [2, 10, 30, 90, 160, 250]

	if got := prop.Rent(1, 2, 0); got != 2 {
		t.Fatalf("single site rent = %v, want base 2", got)
	}

	// Full group, undeveloped: base rent doubles.
	if got := prop.Rent(2, 2, 0); got != 4 {
		t.Fatalf("monopoly undeveloped rent = %v, want 4", got)
	}

	for houses := 1; houses <= 4; houses++ {
		prop.Houses = houses
		if got := prop.Rent(2, 2, 0); got != prop.Rents[houses] {
			t.Fatalf("%d houses: rent = %v, want %v", houses, got, prop.Rents[houses])
		}
	}

	prop.Houses = 0
	prop.Hotels = 1
	if got := prop.Rent(2, 2, 0); got != 250 {
		t.Fatalf("hotel rent = %v, want 250", got)
	}
}

func TestRentPaidToOwnerOnLanding(t *testing.T) {
	g, _ := newTestGame(t, 2)
	visitor, owner := g.Players[0], g.Players[1]
	grant(t, g, owner, 5)
	grant(t, g, owner, 15)
	visitor.Position = 5

	g.resolveProperty(visitor)

	if visitor.Cash != 1500-50 {
		t.Fatalf("visitor cash = %v, want rent 50 for two railroads", visitor.Cash)
	}
	if owner.Cash != 1500+50 {
		t.Fatalf("owner cash = %v, want rent received", owner.Cash)
	}
}

func TestMortgagedPropertyChargesNothing(t *testing.T) {
	g, _ := newTestGame(t, 2)
	visitor, owner := g.Players[0], g.Players[1]
	prop := grant(t, g, owner, 1)
	prop.Mortgaged = true
	visitor.Position = 1

	g.resolveProperty(visitor)

	if visitor.Cash != 1500 || owner.Cash != 1500 {
		t.Fatalf("cash moved on mortgaged property: visitor %v owner %v", visitor.Cash, owner.Cash)
	}
}

func TestMortgagedSiblingBreaksMonopolyRate(t *testing.T) {
	g, _ := newTestGame(t, 2)
	owner := g.Players[1]
	prop := grant(t, g, owner, 1)
	sibling := grant(t, g, owner, 3)
	sibling.Mortgaged = true

	// The group counts unmortgaged holdings only, so the double rate
	// does not apply.
	if got := prop.Rent(owner.ownedInGroup(prop.Group), g.board.GroupSize(prop.Group), 0); got != 2 {
		t.Fatalf("rent = %v, want single-site 2 with mortgaged sibling", got)
	}
}

func TestOwnLandingIsFree(t *testing.T) {
	g, _ := newTestGame(t, 2)
	p := g.Players[0]
	grant(t, g, p, 1)
	p.Position = 1

	g.resolveProperty(p)

	if p.Cash != 1500 {
		t.Fatalf("cash = %v, landing on own property must be free", p.Cash)
	}
}

func TestMissingOwnershipPanics(t *testing.T) {
	g, _ := newTestGame(t, 2)
	delete(g.Unowned, 1) // corrupt the bookkeeping

	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on property neither pooled nor owned")
		}
	}()
	g.takeProperty(1)
}
