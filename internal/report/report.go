// Package report renders read-only views of game state: title deeds,
// cards, player sheets, and ranking tables. Nothing here mutates core
// entities.
package report

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/tmthydvnprt/monosim/internal/board"
	"github.com/tmthydvnprt/monosim/internal/economy"
	"github.com/tmthydvnprt/monosim/internal/game"
)

// cardWidth is the inner width of the boxed renderings.
const cardWidth = 32

// Money formats a dollar amount with thousand separators.
func Money(amount float64) string {
	return "$" + humanize.Commaf(amount)
}

func box(lines []string) string {
	var b strings.Builder
	for _, l := range lines {
		if len(l) > cardWidth {
			l = l[:cardWidth]
		}
		fmt.Fprintf(&b, "|%s|\n", l)
	}
	return b.String()
}

func rule() string { return strings.Repeat("-", cardWidth) }

func center(s string) string {
	if len(s) >= cardWidth {
		return s
	}
	left := (cardWidth - len(s)) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", cardWidth-len(s)-left)
}

func pad(s string) string {
	if len(s) >= cardWidth {
		return s
	}
	return s + strings.Repeat(" ", cardWidth-len(s))
}

// Deed renders a property as a title-deed card.
func Deed(p *game.Property) string {
	lines := []string{rule(), center("Title Deed"), center(p.Group)}
	lines = append(lines, center(fmt.Sprintf("%s (%s)", p.Name, Money(p.Price))), rule())

	switch p.Category() {
	case board.CategoryStreet:
		lines = append(lines, center(fmt.Sprintf("RENT %s", Money(p.Rents[0]))))
		for n := 1; n < len(p.Rents)-1; n++ {
			lines = append(lines, pad(fmt.Sprintf(" With %d Houses %s", n, Money(p.Rents[n]))))
		}
		lines = append(lines, center(fmt.Sprintf("With Hotel %s", Money(p.Rents[len(p.Rents)-1]))))
	case board.CategoryRailroad:
		lines = append(lines, pad(fmt.Sprintf(" Rent %s", Money(p.Rents[0]))))
		for n := 1; n < len(p.Rents); n++ {
			lines = append(lines, pad(fmt.Sprintf(" If %d owned %s", n+1, Money(p.Rents[n]))))
		}
	case board.CategoryUtility:
		for n := 0; n < len(p.Rents); n++ {
			lines = append(lines, pad(fmt.Sprintf(" %d owned: %v x dice", n+1, p.Rents[n])))
		}
	}

	lines = append(lines, center(""))
	lines = append(lines, center(fmt.Sprintf("Mortgage Value %s", Money(p.Mortgage))))
	if p.Category() == board.CategoryStreet {
		lines = append(lines, center(fmt.Sprintf("Houses Cost %s each", Money(p.Cost))))
	}
	lines = append(lines, rule())
	return box(lines)
}

// CardFace renders a chance or community-chest card.
func CardFace(c *game.Card) string {
	return box([]string{rule(), center(""), center(c.Deck), center(c.Text), center(""), rule()})
}

// PoolSheet renders a money pool's balance and turnover.
func PoolSheet(p *economy.Pool) string {
	return box([]string{
		rule(),
		center(p.Name),
		rule(),
		center(fmt.Sprintf("Money: %s", Money(p.Balance))),
		center(fmt.Sprintf("Turnover: %d", p.Turnover)),
		rule(),
	})
}

// PlayerSheet renders a player's position, holdings, and cards.
func PlayerSheet(p *game.Player) string {
	lines := []string{
		rule(),
		center(fmt.Sprintf("Player %d", p.ID)),
		rule(),
		pad(fmt.Sprintf(" Position  %d", p.Position)),
		pad(fmt.Sprintf(" Turns     %d", p.Turns)),
		pad(fmt.Sprintf(" Cash      %s", Money(p.Cash))),
		pad(fmt.Sprintf(" Net Worth %s", Money(p.NetWorth()))),
		pad(" Properties"),
	}
	for _, prop := range p.Properties {
		mark := strings.Repeat("h", prop.Houses) + strings.Repeat("H", prop.Hotels)
		if prop.Mortgaged {
			mark += "*"
		}
		if mark != "" {
			mark = " (" + mark + ")"
		}
		lines = append(lines, center(prop.Name+mark))
	}
	lines = append(lines, pad(" Cards"))
	for _, c := range p.Cards {
		lines = append(lines, center(c.Text))
	}
	lines = append(lines, rule())
	return box(lines)
}

// RankingTable renders a game's final standings as an aligned table.
func RankingTable(res *game.Result) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Game %d: %d rounds", res.Number, res.Rounds)
	if res.HitRoundLimit {
		b.WriteString(" (round ceiling)")
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "%4s  %6s  %12s  %12s  %5s  %6s  %6s\n",
		"rank", "player", "cash", "net worth", "props", "houses", "hotels")
	for i, s := range res.Ranking {
		note := ""
		if s.Bankrupt {
			note = "  bankrupt"
		}
		fmt.Fprintf(&b, "%4d  %6d  %12s  %12s  %5d  %6d  %6d%s\n",
			i+1, s.PlayerID, Money(s.Cash), Money(s.NetWorth),
			s.Properties, s.Houses, s.Hotels, note)
	}
	return b.String()
}

// BatchSummary renders aggregate wins and bankruptcies across many games.
func BatchSummary(results []*game.Result) string {
	wins := make(map[int]int)
	bankruptcies := make(map[int]int)
	ceilings := 0
	players := 0
	for _, res := range results {
		wins[res.Winner.PlayerID]++
		if res.HitRoundLimit {
			ceilings++
		}
		if len(res.Ranking) > players {
			players = len(res.Ranking)
		}
		for _, s := range res.Ranking {
			if s.Bankrupt {
				bankruptcies[s.PlayerID]++
			}
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d games, %d ended at the round ceiling\n", len(results), ceilings)
	fmt.Fprintf(&b, "%6s  %4s  %9s\n", "player", "wins", "bankrupt")
	for id := 0; id < players; id++ {
		fmt.Fprintf(&b, "%6d  %4d  %9d\n", id, wins[id], bankruptcies[id])
	}
	return b.String()
}
