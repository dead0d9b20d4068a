// Package economy provides the money-movement primitives shared by the
// bank, the free-parking pool, and players.
package economy

// Party is anything money can move between. Add and Pay are the only two
// transfer primitives: X.Pay(n, Y) debits X and credits Y, X.Add(n, Y)
// credits X and debits Y. Passing a nil counterparty moves money in or out
// of the named side only; callers pairing two parties must use exactly one
// non-nil counterparty per transfer or the amount moves twice.
type Party interface {
	Add(amount float64, from Party)
	Pay(amount float64, to Party)
}

// Pool is a house money pool. The bank recapitalizes itself with a full
// money supply whenever it runs dry; the free-parking pool does not, and
// additionally refuses to pay out once empty (clip-to-zero).
type Pool struct {
	Name       string
	Balance    float64
	Turnover   int     // times the balance has dropped to or below zero
	ClipToZero bool    // refuse payouts when empty
	RefillTo   float64 // amount re-injected on turnover; zero disables refill
}

// NewBank creates the bank holding the full money supply. When the bank
// runs out it re-injects a full supply and counts the turnover.
func NewBank(totalSupply float64) *Pool {
	return &Pool{Name: "Bank", Balance: totalSupply, RefillTo: totalSupply}
}

// NewFreeParking creates the empty free-parking pool. It collects taxes
// and fees, pays out its whole balance to whoever lands on it, and never
// pays money it does not hold.
func NewFreeParking() *Pool {
	return &Pool{Name: "Free Parking", ClipToZero: true}
}

// Add credits the pool, debiting from when non-nil.
func (p *Pool) Add(amount float64, from Party) {
	p.Balance += amount
	if from != nil {
		from.Pay(amount, nil)
	}
}

// Pay debits the pool, crediting to when non-nil. A clip-to-zero pool
// ignores the request once empty.
func (p *Pool) Pay(amount float64, to Party) {
	if p.ClipToZero && p.Balance <= 0 {
		return
	}
	p.Balance -= amount
	if to != nil {
		to.Add(amount, nil)
	}
	p.checkTurnover()
}

// checkTurnover counts balance exhaustion and, for refilling pools,
// re-injects a fresh supply. The injected money is visible in Turnover so
// conservation audits can account for it.
func (p *Pool) checkTurnover() {
	if p.RefillTo > 0 {
		if p.Balance < 0 {
			p.Balance += p.RefillTo
			p.Turnover++
		}
		return
	}
	if p.Balance <= 0 {
		p.Turnover++
	}
}
