package report

import (
	"strings"
	"testing"

	"github.com/tmthydvnprt/monosim/internal/board"
	"github.com/tmthydvnprt/monosim/internal/economy"
	"github.com/tmthydvnprt/monosim/internal/game"
)

func TestMoneyFormatting(t *testing.T) {
	cases := []struct {
		amount float64
		want   string
	}{
		{0, "$0"},
		{60, "$60"},
		{1500, "$1,500"},
		{15140, "$15,140"},
		{187.5, "$187.5"},
	}
	for _, tc := range cases {
		if got := Money(tc.amount); got != tc.want {
			t.Fatalf("Money(%v) = %q, want %q", tc.amount, got, tc.want)
		}
	}
}

func TestStreetDeed(t *testing.T) {
	p := game.NewProperty(board.PropertyDef{
		Name:     "Boardwalk",
		Group:    "Blue",
		Loc:      39,
		Price:    400,
		Rents:    []float64{50, 200, 600, 1400, 1700, 2000},
		Mortgage: 200,
		Cost:     200,
	}, board.CategoryStreet)
	deed := Deed(p)

	for _, want := range []string{
		"Title Deed",
		"Boardwalk ($400)",
		"RENT $50",
		"With 4 Houses $1,700",
		"With Hotel $2,000",
		"Mortgage Value $200",
		"Houses Cost $200 each",
	} {
		if !strings.Contains(deed, want) {
			t.Fatalf("deed missing %q:\n%s", want, deed)
		}
	}
}

func TestRailroadDeedOmitsHouseLines(t *testing.T) {
	p := game.NewProperty(board.PropertyDef{
		Name:     "Reading Railroad",
		Group:    "Railroad",
		Loc:      5,
		Price:    200,
		Rents:    []float64{25, 50, 100, 200},
		Mortgage: 100,
	}, board.CategoryRailroad)
	deed := Deed(p)

	if !strings.Contains(deed, "If 4 owned $200") {
		t.Fatalf("deed missing ownership rent line:\n%s", deed)
	}
	if strings.Contains(deed, "Houses Cost") {
		t.Fatalf("railroad deed must not price houses:\n%s", deed)
	}
}

func TestPoolSheet(t *testing.T) {
	pool := economy.NewBank(15140)
	pool.Turnover = 2
	sheet := PoolSheet(pool)

	for _, want := range []string{"Bank", "Money: $15,140", "Turnover: 2"} {
		if !strings.Contains(sheet, want) {
			t.Fatalf("pool sheet missing %q:\n%s", want, sheet)
		}
	}
}

func TestPlayerSheetMarksDevelopment(t *testing.T) {
	p := &game.Player{ID: 2, Cash: 940, Position: 11, Turns: 14}
	street := func(name, group string) *game.Property {
		return game.NewProperty(board.PropertyDef{
			Name: name, Group: group, Mortgage: 30, Cost: 50,
			Rents: []float64{2, 10, 30, 90, 160, 250},
		}, board.CategoryStreet)
	}
	baltic := street("Baltic Avenue", "Dark Purple")
	baltic.Houses = 3
	mediterranean := street("Mediterranean Avenue", "Dark Purple")
	mediterranean.Hotels = 1
	oriental := street("Oriental Avenue", "Light Blue")
	oriental.Mortgaged = true
	p.Properties = append(p.Properties, baltic, mediterranean, oriental)
	sheet := PlayerSheet(p)

	for _, want := range []string{
		"Player 2",
		"Cash      $940",
		"Baltic Avenue (hhh)",
		"Mediterranean Avenue (H)",
		"Oriental Avenue (*)",
	} {
		if !strings.Contains(sheet, want) {
			t.Fatalf("sheet missing %q:\n%s", want, sheet)
		}
	}
}

func TestRankingTable(t *testing.T) {
	res := &game.Result{
		Number:        3,
		Rounds:        120,
		HitRoundLimit: true,
		Ranking: []game.Summary{
			{PlayerID: 1, Cash: 2500, NetWorth: 4100, Properties: 9, Houses: 6, Hotels: 2},
			{PlayerID: 0, Debt: 75, Bankrupt: true},
		},
	}
	res.Winner = res.Ranking[0]
	table := RankingTable(res)

	for _, want := range []string{
		"Game 3: 120 rounds (round ceiling)",
		"$4,100",
		"bankrupt",
	} {
		if !strings.Contains(table, want) {
			t.Fatalf("table missing %q:\n%s", want, table)
		}
	}
}

func TestBatchSummaryAggregates(t *testing.T) {
	mk := func(winner int, bankrupt int, ceiling bool) *game.Result {
		res := &game.Result{
			HitRoundLimit: ceiling,
			Ranking: []game.Summary{
				{PlayerID: winner},
				{PlayerID: bankrupt, Bankrupt: true},
			},
		}
		res.Winner = res.Ranking[0]
		return res
	}
	out := BatchSummary([]*game.Result{
		mk(0, 1, false),
		mk(0, 1, true),
		mk(1, 0, false),
	})

	if !strings.Contains(out, "3 games, 1 ended at the round ceiling") {
		t.Fatalf("summary header wrong:\n%s", out)
	}
	if !strings.Contains(out, "     0     2         1") {
		t.Fatalf("player 0 line wrong:\n%s", out)
	}
	if !strings.Contains(out, "     1     1         2") {
		t.Fatalf("player 1 line wrong:\n%s", out)
	}
}
