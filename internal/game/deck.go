package game

import (
	"github.com/tmthydvnprt/monosim/internal/board"
	"github.com/tmthydvnprt/monosim/internal/entropy"
)

// Card is a game-local instance of a card template. The effect is data
// interpreted by the turn engine against the drawing player.
type Card struct {
	Deck   string // originating deck name, for returning kept cards
	Text   string
	Effect board.EffectDef
}

// Keepable reports whether the drawer retains the card instead of cycling
// it to the bottom of the deck.
func (c *Card) Keepable() bool { return c.Effect.Kind == board.EffectKeep }

// Deck is an ordered card queue: draw from the front, cycle to the back.
// Composition is static apart from kept jail-release cards, which return
// via Return when consumed.
type Deck struct {
	Name  string
	cards []*Card
}

// NewDeck instantiates a shuffled deck from templates.
func NewDeck(name string, defs []board.CardDef, rng entropy.Source) *Deck {
	cards := make([]*Card, len(defs))
	for i, def := range defs {
		cards[i] = &Card{Deck: name, Text: def.Text, Effect: def.Effect}
	}
	rng.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
	return &Deck{Name: name, cards: cards}
}

// Draw pops the top card. Unless the card is keepable it is pushed to the
// bottom immediately, so the deck cycles in a fixed order.
func (d *Deck) Draw() *Card {
	card := d.cards[0]
	d.cards = d.cards[1:]
	if !card.Keepable() {
		d.cards = append(d.cards, card)
	}
	return card
}

// Return pushes a previously kept card to the bottom of the deck.
func (d *Deck) Return(card *Card) {
	d.cards = append(d.cards, card)
}

// Len returns how many cards are currently in the deck.
func (d *Deck) Len() int { return len(d.cards) }

// Texts returns the card texts in current deck order.
func (d *Deck) Texts() []string {
	out := make([]string, len(d.cards))
	for i, c := range d.cards {
		out[i] = c.Text
	}
	return out
}
