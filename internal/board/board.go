// Package board provides the static game tables: spaces, property
// definitions, card templates, and the currency table. Loaded once and
// treated as immutable; games deep-copy what they mutate.
package board

// Kind classifies a space for turn dispatch.
type Kind uint8

const (
	KindGo Kind = iota
	KindJail
	KindGoToJail
	KindFreeParking
	KindIncomeTax
	KindLuxuryTax
	KindChance
	KindChest
	KindRailroad
	KindUtility
	KindStreet
)

// Category is the coarse grouping used by rent and appraisal logic.
type Category uint8

const (
	CategoryOther Category = iota
	CategoryCard
	CategoryRailroad
	CategoryUtility
	CategoryStreet
)

// Category maps a space kind onto its rent/appraisal category.
func (k Kind) Category() Category {
	switch k {
	case KindChance, KindChest:
		return CategoryCard
	case KindRailroad:
		return CategoryRailroad
	case KindUtility:
		return CategoryUtility
	case KindStreet:
		return CategoryStreet
	default:
		return CategoryOther
	}
}

// Space is one board position.
type Space struct {
	Index int    `yaml:"index"`
	Name  string `yaml:"name"`
	Group string `yaml:"group,omitempty"`
}

// Kind derives the dispatch kind from the space name and group.
func (s Space) Kind() Kind {
	switch s.Name {
	case "Go":
		return KindGo
	case "Jail":
		return KindJail
	case "Go To Jail":
		return KindGoToJail
	case "Free Parking":
		return KindFreeParking
	case "Income Tax":
		return KindIncomeTax
	case "Luxury Tax":
		return KindLuxuryTax
	case "Chance":
		return KindChance
	case "Community Chest":
		return KindChest
	}
	switch s.Group {
	case GroupRailroad:
		return KindRailroad
	case GroupUtility:
		return KindUtility
	}
	return KindStreet
}

// Reserved group names. Color groups are free-form strings.
const (
	GroupRailroad = "Railroad"
	GroupUtility  = "Utility"
)

// PropertyDef is the immutable template a game instantiates a mutable
// property from.
type PropertyDef struct {
	Name     string    `yaml:"name"`
	Group    string    `yaml:"group"`
	Loc      int       `yaml:"loc"`
	Price    float64   `yaml:"price"`
	Rents    []float64 `yaml:"rents"`
	Mortgage float64   `yaml:"mortgage"`
	Cost     float64   `yaml:"cost,omitempty"`
}

// Effect kinds. Card effects are data interpreted by the turn engine, not
// behavior bound into the template tables.
const (
	EffectAdvance     = "advance"      // move to Target, Go credit on wrap
	EffectNearest     = "nearest"      // move forward to first Class space
	EffectBack        = "back"         // move back Spaces, no Go credit
	EffectCollect     = "collect"      // Amount from the bank
	EffectPay         = "pay"          // Amount to free parking
	EffectCollectEach = "collect_each" // Amount from every other player
	EffectPayEach     = "pay_each"     // Amount to every other player
	EffectRepairs     = "repairs"      // Amount per house, PerHotel per hotel
	EffectGoToJail    = "go_to_jail"   // straight to jail, no Go credit
	EffectKeep        = "keep"         // retained by the drawer (jail release)
)

// EffectDef is a tagged card operation with literal parameters.
type EffectDef struct {
	Kind     string  `yaml:"kind"`
	Amount   float64 `yaml:"amount,omitempty"`
	PerHotel float64 `yaml:"per_hotel,omitempty"`
	Target   int     `yaml:"target,omitempty"`
	Spaces   int     `yaml:"spaces,omitempty"`
	Class    string  `yaml:"class,omitempty"` // nearest: Railroad or Utility
}

// CardDef is an immutable card template.
type CardDef struct {
	Text   string    `yaml:"text"`
	Effect EffectDef `yaml:"effect"`
}

// Denomination is one row of the currency table; the total money supply is
// the sum of value × count over all rows.
type Denomination struct {
	Value float64 `yaml:"value"`
	Count int     `yaml:"count"`
}
