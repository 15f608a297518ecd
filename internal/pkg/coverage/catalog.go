// Package coverage is the static catalog of coverage options a customer can
// put into a quote.
package coverage

import (
	"fmt"

	"github.com/ManuelReschke/QuoteFox/internal/pkg/cart"
)

const (
	TypeProperty  = "property"
	TypeLiability = "liability"
)

// Level is one purchasable limit of an option.
type Level struct {
	ID         string  `json:"id"`
	Amount     float64 `json:"amount"`
	Deductible float64 `json:"deductible"`
	Price      float64 `json:"price"`
}

// Option is a coverage with its selectable levels.
type Option struct {
	ID          string  `json:"id"`
	Type        string  `json:"type"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Levels      []Level `json:"levels"`
}

var propertyOptions = []Option{
	{
		ID:          "dwelling",
		Type:        TypeProperty,
		Name:        "Dwelling Coverage",
		Description: "Covers damage to your home's structure, including the roof, walls, and foundation.",
		Levels: []Level{
			{ID: "dwelling-1", Amount: 150000, Deductible: 1000, Price: 520},
			{ID: "dwelling-2", Amount: 250000, Deductible: 1000, Price: 780},
			{ID: "dwelling-3", Amount: 350000, Deductible: 1000, Price: 980},
			{ID: "dwelling-4", Amount: 500000, Deductible: 1000, Price: 1250},
		},
	},
	{
		ID:          "personal-property",
		Type:        TypeProperty,
		Name:        "Personal Property",
		Description: "Covers your personal belongings inside your home like furniture, electronics, and clothing.",
		Levels: []Level{
			{ID: "personal-1", Amount: 50000, Deductible: 500, Price: 180},
			{ID: "personal-2", Amount: 75000, Deductible: 500, Price: 250},
			{ID: "personal-3", Amount: 100000, Deductible: 500, Price: 320},
			{ID: "personal-4", Amount: 150000, Deductible: 500, Price: 420},
		},
	},
	{
		ID:          "loss-of-use",
		Type:        TypeProperty,
		Name:        "Loss of Use",
		Description: "Covers additional living expenses if your home becomes uninhabitable due to a covered loss.",
		Levels: []Level{
			{ID: "loss-1", Amount: 20000, Deductible: 0, Price: 80},
			{ID: "loss-2", Amount: 30000, Deductible: 0, Price: 120},
			{ID: "loss-3", Amount: 40000, Deductible: 0, Price: 150},
			{ID: "loss-4", Amount: 60000, Deductible: 0, Price: 200},
		},
	},
	{
		ID:          "other-structures",
		Type:        TypeProperty,
		Name:        "Other Structures",
		Description: "Covers structures not attached to your home, such as garages, sheds, and fences.",
		Levels: []Level{
			{ID: "other-1", Amount: 15000, Deductible: 500, Price: 60},
			{ID: "other-2", Amount: 25000, Deductible: 500, Price: 90},
			{ID: "other-3", Amount: 35000, Deductible: 500, Price: 120},
			{ID: "other-4", Amount: 50000, Deductible: 500, Price: 180},
		},
	},
}

var liabilityOptions = []Option{
	{
		ID:          "personal-liability",
		Type:        TypeLiability,
		Name:        "Personal Liability",
		Description: "Protects you if someone is injured on your property or if you accidentally damage someone else's property.",
		Levels: []Level{
			{ID: "liability-1", Amount: 100000, Deductible: 0, Price: 100},
			{ID: "liability-2", Amount: 300000, Deductible: 0, Price: 150},
			{ID: "liability-3", Amount: 500000, Deductible: 0, Price: 200},
			{ID: "liability-4", Amount: 1000000, Deductible: 0, Price: 300},
		},
	},
	{
		ID:          "medical-payments",
		Type:        TypeLiability,
		Name:        "Medical Payments",
		Description: "Covers medical expenses for people injured on your property, regardless of fault.",
		Levels: []Level{
			{ID: "medical-1", Amount: 1000, Deductible: 0, Price: 20},
			{ID: "medical-2", Amount: 3000, Deductible: 0, Price: 40},
			{ID: "medical-3", Amount: 5000, Deductible: 0, Price: 60},
			{ID: "medical-4", Amount: 10000, Deductible: 0, Price: 100},
		},
	},
	{
		ID:          "umbrella",
		Type:        TypeLiability,
		Name:        "Umbrella Coverage",
		Description: "Additional liability coverage beyond the limits of your standard policy.",
		Levels: []Level{
			{ID: "umbrella-1", Amount: 1000000, Deductible: 0, Price: 180},
			{ID: "umbrella-2", Amount: 2000000, Deductible: 0, Price: 300},
			{ID: "umbrella-3", Amount: 3000000, Deductible: 0, Price: 400},
			{ID: "umbrella-4", Amount: 5000000, Deductible: 0, Price: 600},
		},
	},
	{
		ID:          "property-damage",
		Type:        TypeLiability,
		Name:        "Property Damage Liability",
		Description: "Covers damage you cause to other people's property.",
		Levels: []Level{
			{ID: "damage-1", Amount: 100000, Deductible: 500, Price: 120},
			{ID: "damage-2", Amount: 200000, Deductible: 500, Price: 180},
			{ID: "damage-3", Amount: 300000, Deductible: 500, Price: 240},
			{ID: "damage-4", Amount: 500000, Deductible: 500, Price: 320},
		},
	},
}

// Property returns the property options.
func Property() []Option {
	return copyOptions(propertyOptions)
}

// Liability returns the liability options.
func Liability() []Option {
	return copyOptions(liabilityOptions)
}

// All returns property options followed by liability options.
func All() []Option {
	return append(Property(), Liability()...)
}

// ByID looks up an option.
func ByID(id string) (Option, bool) {
	for _, o := range All() {
		if o.ID == id {
			return o, true
		}
	}
	return Option{}, false
}

// Level looks up one level of an option.
func (o Option) Level(levelID string) (Level, bool) {
	for _, l := range o.Levels {
		if l.ID == levelID {
			return l, true
		}
	}
	return Level{}, false
}

// Selection builds the cart entry for a chosen level. The entry is keyed by
// the option ID so that picking another level replaces the previous one.
func Selection(optionID, levelID string) (cart.CoverageSelection, error) {
	option, ok := ByID(optionID)
	if !ok {
		return cart.CoverageSelection{}, fmt.Errorf("unknown coverage option %q", optionID)
	}
	level, ok := option.Level(levelID)
	if !ok {
		return cart.CoverageSelection{}, fmt.Errorf("unknown level %q for coverage %q", levelID, optionID)
	}
	return cart.CoverageSelection{
		ID:          option.ID,
		Type:        option.Type,
		Name:        option.Name,
		Description: option.Description,
		Amount:      level.Amount,
		Deductible:  level.Deductible,
		Price:       level.Price,
	}, nil
}

// LevelFor returns the level whose terms match a cart entry, if any.
func LevelFor(sel cart.CoverageSelection) (Level, bool) {
	option, ok := ByID(sel.ID)
	if !ok {
		return Level{}, false
	}
	for _, l := range option.Levels {
		if l.Amount == sel.Amount && l.Deductible == sel.Deductible && l.Price == sel.Price {
			return l, true
		}
	}
	return Level{}, false
}

func copyOptions(in []Option) []Option {
	out := make([]Option, len(in))
	for i, o := range in {
		o.Levels = append([]Level(nil), o.Levels...)
		out[i] = o
	}
	return out
}
