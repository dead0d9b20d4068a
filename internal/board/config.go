package board

import (
	_ "embed"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed board.yaml
var defaultYAML []byte

// Config holds every static table a game reads. Load it once per process
// and share it across games; nothing in here is mutated after Normalize.
type Config struct {
	StartingCash  float64 `yaml:"starting_cash"`
	GoBonus       float64 `yaml:"go_bonus"`
	JailFee       float64 `yaml:"jail_fee"`
	LuxuryTax     float64 `yaml:"luxury_tax"`
	IncomeTaxRate float64 `yaml:"income_tax_rate"`
	IncomeTaxCap  float64 `yaml:"income_tax_cap"`
	MaxDoubles    int     `yaml:"max_doubles"`
	MaxHouses     int     `yaml:"max_houses"` // per property, before hotel conversion

	Spaces         []Space        `yaml:"spaces"`
	Properties     []PropertyDef  `yaml:"properties"`
	Chance         []CardDef      `yaml:"chance"`
	CommunityChest []CardDef      `yaml:"community_chest"`
	Currency       []Denomination `yaml:"currency"`

	// Derived lookups, built by Normalize.
	jail        int
	groupLocs   map[string][]int
	colorGroups []string
	propByLoc   map[int]PropertyDef
	totalMoney  float64
}

// Load reads the board tables from path, or the embedded defaults when
// path is empty. The returned config is normalized and validated.
func Load(path string) (*Config, error) {
	raw := defaultYAML
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		raw = b
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("board.yaml: %w", err)
	}
	c.Normalize()
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("board.yaml: %w", err)
	}
	return &c, nil
}

// Normalize builds the derived lookup tables.
func (c *Config) Normalize() {
	c.groupLocs = make(map[string][]int)
	c.propByLoc = make(map[int]PropertyDef, len(c.Properties))
	c.colorGroups = nil
	seen := make(map[string]bool)
	for _, p := range c.Properties {
		c.propByLoc[p.Loc] = p
		c.groupLocs[p.Group] = append(c.groupLocs[p.Group], p.Loc)
		if p.Group != GroupRailroad && p.Group != GroupUtility && !seen[p.Group] {
			seen[p.Group] = true
			c.colorGroups = append(c.colorGroups, p.Group)
		}
	}
	for _, locs := range c.groupLocs {
		sort.Ints(locs)
	}
	c.jail = -1
	for _, s := range c.Spaces {
		if s.Kind() == KindJail {
			c.jail = s.Index
		}
	}
	c.totalMoney = 0
	for _, d := range c.Currency {
		c.totalMoney += d.Value * float64(d.Count)
	}
}

// Validate rejects tables a game cannot run on.
func (c *Config) Validate() error {
	if len(c.Spaces) == 0 {
		return fmt.Errorf("no spaces")
	}
	for i, s := range c.Spaces {
		if s.Index != i {
			return fmt.Errorf("space %q: index %d out of order (want %d)", s.Name, s.Index, i)
		}
	}
	if c.jail < 0 {
		return fmt.Errorf("no jail space")
	}
	if c.totalMoney <= 0 {
		return fmt.Errorf("currency table empty")
	}
	if c.StartingCash <= 0 || c.GoBonus <= 0 || c.JailFee <= 0 {
		return fmt.Errorf("starting_cash, go_bonus, and jail_fee must be positive")
	}
	if c.MaxDoubles <= 0 || c.MaxHouses <= 0 {
		return fmt.Errorf("max_doubles and max_houses must be positive")
	}
	for _, p := range c.Properties {
		if p.Loc < 0 || p.Loc >= len(c.Spaces) {
			return fmt.Errorf("property %q: loc %d off the board", p.Name, p.Loc)
		}
		if c.Spaces[p.Loc].Name != p.Name {
			return fmt.Errorf("property %q: space %d is named %q", p.Name, p.Loc, c.Spaces[p.Loc].Name)
		}
		var want int
		switch c.Spaces[p.Loc].Kind() {
		case KindRailroad:
			want = len(c.groupLocs[GroupRailroad])
		case KindUtility:
			want = len(c.groupLocs[GroupUtility])
		case KindStreet:
			want = c.MaxHouses + 2 // base, houses, hotel
		default:
			return fmt.Errorf("property %q: space %d is not purchasable", p.Name, p.Loc)
		}
		if len(p.Rents) != want {
			return fmt.Errorf("property %q: %d rent entries, want %d", p.Name, len(p.Rents), want)
		}
	}
	for _, deck := range [][]CardDef{c.Chance, c.CommunityChest} {
		for _, card := range deck {
			if err := validEffect(card.Effect, len(c.Spaces)); err != nil {
				return fmt.Errorf("card %q: %w", card.Text, err)
			}
		}
	}
	return nil
}

func validEffect(e EffectDef, boardSize int) error {
	switch e.Kind {
	case EffectAdvance:
		if e.Target < 0 || e.Target >= boardSize {
			return fmt.Errorf("advance target %d off the board", e.Target)
		}
	case EffectNearest:
		if e.Class != GroupRailroad && e.Class != GroupUtility {
			return fmt.Errorf("nearest class %q unknown", e.Class)
		}
	case EffectBack:
		if e.Spaces <= 0 {
			return fmt.Errorf("back requires positive spaces")
		}
	case EffectCollect, EffectPay, EffectCollectEach, EffectPayEach:
		if e.Amount <= 0 {
			return fmt.Errorf("%s requires positive amount", e.Kind)
		}
	case EffectRepairs:
		if e.Amount <= 0 || e.PerHotel <= 0 {
			return fmt.Errorf("repairs requires per-house and per-hotel amounts")
		}
	case EffectGoToJail, EffectKeep:
	default:
		return fmt.Errorf("unknown effect kind %q", e.Kind)
	}
	return nil
}

// Size returns the number of board spaces.
func (c *Config) Size() int { return len(c.Spaces) }

// Space returns the space at loc.
func (c *Config) Space(loc int) Space { return c.Spaces[loc] }

// Jail returns the jail space index.
func (c *Config) Jail() int { return c.jail }

// Property returns the template for the purchasable space at loc.
func (c *Config) Property(loc int) (PropertyDef, bool) {
	p, ok := c.propByLoc[loc]
	return p, ok
}

// GroupLocs returns the locations of every property in a group, in board
// order.
func (c *Config) GroupLocs(group string) []int { return c.groupLocs[group] }

// GroupSize returns how many properties a group contains.
func (c *Config) GroupSize(group string) int { return len(c.groupLocs[group]) }

// ColorGroups returns the street color groups in board order. Railroad and
// utility groups are excluded; they never form development monopolies.
func (c *Config) ColorGroups() []string { return c.colorGroups }

// TotalMoney returns the fixed money supply from the currency table.
func (c *Config) TotalMoney() float64 { return c.totalMoney }
