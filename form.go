package goalfolio

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Direction tells whether a position entry adds to or reduces a holding.
// It turns the validated positive magnitude into a signed quantity.
type Direction int

const (
	Deposit Direction = iota // or buy
	Withdrawal               // or sell
)

func (d Direction) String() string {
	if d == Withdrawal {
		return "withdrawal"
	}
	return "deposit"
}

// ParseDirection parses a string into a Direction.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "deposit", "buy", "in":
		return Deposit, nil
	case "withdrawal", "withdraw", "sell", "out":
		return Withdrawal, nil
	default:
		return Deposit, fmt.Errorf("unknown direction %q", s)
	}
}

func (d Direction) sign() decimal.Decimal {
	if d == Withdrawal {
		return decimal.NewFromInt(-1)
	}
	return decimal.NewFromInt(1)
}

// PositionForm holds the raw user input for a new position, numbers still as
// strings. Validate reports all field problems at once; Position applies the
// direction sign and assembles the record. The form never mutates any store.
type PositionForm struct {
	Category  Category
	Symbol    string
	Name      string
	Currency  string
	Notes     string
	Direction Direction

	// Quantity and UnitPrice apply to equities, digital assets and other;
	// Amount applies to cash. All accept thousands separators.
	Quantity  string
	UnitPrice string
	Amount    string
}

// parseAmount parses a user-entered number, tolerating surrounding whitespace
// and thousands separators ("1,234.56" or "1_234.56").
func parseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, "_", "")
	if s == "" {
		return decimal.Decimal{}, errors.New("empty number")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid number %q: %w", s, err)
	}
	return d, nil
}

// normalizeCurrency trims and uppercases a currency or token code.
func normalizeCurrency(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// checkCurrency accepts ISO currency codes and loose 3-6 character token
// codes (BTC, USDT...). go-money validates the ISO ones; the rest only need
// the length rule.
func checkCurrency(code string) error {
	code = normalizeCurrency(code)
	if len(code) < 3 || len(code) > 6 {
		return fmt.Errorf("currency code %q must be 3 to 6 characters", code)
	}
	if money.GetCurrency(code) != nil {
		return nil
	}
	for _, r := range code {
		if (r < 'A' || r > 'Z') && (r < '0' || r > '9') {
			return fmt.Errorf("currency code %q has invalid characters", code)
		}
	}
	return nil
}

// Validate checks every field and returns all failures joined together, so a
// caller can surface them inline at once. No mutation is attempted before
// validation passes.
func (f PositionForm) Validate() error {
	var errs []error

	if strings.TrimSpace(f.Name) == "" {
		errs = append(errs, errors.New("name is required"))
	}
	if f.Category == Equities || f.Category == DigitalAssets {
		if strings.TrimSpace(f.Symbol) == "" {
			errs = append(errs, errors.New("symbol is required for "+f.Category.String()))
		}
	}
	if err := checkCurrency(f.Currency); err != nil {
		errs = append(errs, err)
	}

	switch f.Category {
	case Cash:
		a, err := parseAmount(f.Amount)
		if err != nil {
			errs = append(errs, fmt.Errorf("amount: %w", err))
		} else if !a.IsPositive() {
			errs = append(errs, errors.New("amount must be greater than 0"))
		}
	default:
		q, err := parseAmount(f.Quantity)
		if err != nil {
			errs = append(errs, fmt.Errorf("quantity: %w", err))
		} else if !q.IsPositive() {
			errs = append(errs, errors.New("quantity must be greater than 0"))
		}
		p, err := parseAmount(f.UnitPrice)
		if err != nil {
			errs = append(errs, fmt.Errorf("unit price: %w", err))
		} else if !p.IsPositive() {
			errs = append(errs, errors.New("unit price must be greater than 0"))
		}
	}
	return errors.Join(errs...)
}

// Position validates the form and constructs the position. The direction sign
// is applied to the validated positive magnitude, so a withdrawal yields a
// negative quantity. Construction is pure: inserting the position into a
// store is the caller's job.
func (f PositionForm) Position() (Position, error) {
	if err := f.Validate(); err != nil {
		return Position{}, err
	}

	currency := normalizeCurrency(f.Currency)
	name := strings.TrimSpace(f.Name)
	symbol := strings.ToUpper(strings.TrimSpace(f.Symbol))
	notes := strings.TrimSpace(f.Notes)

	if f.Category == Cash {
		amount, _ := parseAmount(f.Amount)
		qty := Q(amount.Mul(f.Direction.sign()))
		return newPosition(Cash, "", name, qty, M(1, currency), notes), nil
	}

	q, _ := parseAmount(f.Quantity)
	p, _ := parseAmount(f.UnitPrice)
	qty := Q(q.Mul(f.Direction.sign()))
	return newPosition(f.Category, symbol, name, qty, M(p, currency), notes), nil
}
