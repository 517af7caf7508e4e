package goalfolio

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Category classifies a position: cash, listed equities, digital assets, or
// anything else the user wants valued (real estate share, collectibles...).
type Category int

const (
	Cash Category = iota
	Equities
	DigitalAssets
	Other
)

func (c Category) String() string {
	switch c {
	case Cash:
		return "cash"
	case Equities:
		return "equities"
	case DigitalAssets:
		return "digital"
	case Other:
		return "other"
	default:
		panic(fmt.Sprintf("unknown category %d", c))
	}
}

// ParseCategory parses a string into a Category.
func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cash":
		return Cash, nil
	case "equities", "equity":
		return Equities, nil
	case "digital", "digital-assets", "crypto":
		return DigitalAssets, nil
	case "other":
		return Other, nil
	default:
		return Cash, fmt.Errorf("unknown category %q", s)
	}
}

// Position is one recorded holding. The quantity is signed: a withdrawal or a
// sale is a new position with a negative quantity, never an in-place edit of
// an earlier one. ID, Category and DateAdded are immutable once created.
//
// For cash, Quantity holds the amount and the unit price is 1.
type Position struct {
	ID        uuid.UUID
	Category  Category
	Symbol    string // required for equities and digital assets, empty for cash
	Name      string
	Quantity  Quantity
	UnitPrice Money
	Notes     string
	DateAdded time.Time
}

// Currency returns the position's currency code.
func (p Position) Currency() string { return p.UnitPrice.Currency() }

// MarketValue is always Quantity x UnitPrice. It is recomputed on every call
// and never stored, so it cannot drift from its inputs.
func (p Position) MarketValue() Money { return p.UnitPrice.Mul(p.Quantity) }

// newPosition assembles a position with a fresh id and timestamp.
func newPosition(cat Category, symbol, name string, qty Quantity, unitPrice Money, notes string) Position {
	return Position{
		ID:        uuid.New(),
		Category:  cat,
		Symbol:    symbol,
		Name:      name,
		Quantity:  qty,
		UnitPrice: unitPrice,
		Notes:     notes,
		DateAdded: time.Now().UTC(),
	}
}
