package goalfolio

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormValidate(t *testing.T) {
	valid := PositionForm{
		Category:  Equities,
		Symbol:    "AAPL",
		Name:      "Apple Inc",
		Currency:  "USD",
		Quantity:  "10",
		UnitPrice: "150",
	}

	tests := []struct {
		name     string
		mutate   func(*PositionForm)
		wantErrs []string // substrings expected in the joined error
	}{
		{"valid", func(f *PositionForm) {}, nil},
		{"missing name", func(f *PositionForm) { f.Name = " " }, []string{"name is required"}},
		{"missing symbol", func(f *PositionForm) { f.Symbol = "" }, []string{"symbol is required"}},
		{"zero quantity", func(f *PositionForm) { f.Quantity = "0" }, []string{"quantity must be greater than 0"}},
		{"negative price", func(f *PositionForm) { f.UnitPrice = "-3" }, []string{"unit price must be greater than 0"}},
		{"garbage quantity", func(f *PositionForm) { f.Quantity = "ten" }, []string{"quantity"}},
		{"bad currency", func(f *PositionForm) { f.Currency = "US" }, []string{"currency"}},
		{
			"all at once",
			func(f *PositionForm) { f.Name = ""; f.Symbol = ""; f.Quantity = "0" },
			[]string{"name is required", "symbol is required", "quantity must be greater than 0"},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			form := valid
			tc.mutate(&form)
			err := form.Validate()
			if len(tc.wantErrs) == 0 {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected an error")
			}
			for _, want := range tc.wantErrs {
				if !strings.Contains(err.Error(), want) {
					t.Errorf("error %q does not mention %q", err, want)
				}
			}
		})
	}
}

func TestFormValidateCash(t *testing.T) {
	form := PositionForm{Category: Cash, Name: "Savings", Currency: "EUR", Amount: "1,234.56"}
	if err := form.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	form.Amount = "-5"
	if err := form.Validate(); err == nil || !strings.Contains(err.Error(), "amount must be greater than 0") {
		t.Errorf("negative amount not rejected: %v", err)
	}
}

func TestFormValidateTokenCurrency(t *testing.T) {
	form := PositionForm{
		Category: DigitalAssets, Symbol: "BTC", Name: "Bitcoin",
		Currency: "USDT", Quantity: "0.5", UnitPrice: "60000",
	}
	if err := form.Validate(); err != nil {
		t.Errorf("token currency rejected: %v", err)
	}
}

func TestFormPositionAppliesDirection(t *testing.T) {
	form := PositionForm{
		Category: Equities, Symbol: "aapl", Name: "Apple Inc",
		Currency: "usd", Quantity: "10", UnitPrice: "150",
		Direction: Withdrawal,
	}
	p, err := form.Position()
	if err != nil {
		t.Fatal(err)
	}
	if !p.Quantity.Equal(Q(-10)) {
		t.Errorf("quantity = %s want -10", p.Quantity)
	}
	if p.Symbol != "AAPL" || p.Currency() != "USD" {
		t.Errorf("symbol/currency not normalized: %s %s", p.Symbol, p.Currency())
	}
	if !p.MarketValue().Equal(M(-1500, "USD")) {
		t.Errorf("market value = %s want -1500 USD", p.MarketValue())
	}
}

func TestFormPositionCash(t *testing.T) {
	form := PositionForm{Category: Cash, Name: "Savings", Currency: "EUR", Amount: "2_500"}
	p, err := form.Position()
	if err != nil {
		t.Fatal(err)
	}
	if !p.Quantity.Equal(Q(2500)) {
		t.Errorf("quantity = %s want 2500", p.Quantity)
	}
	if !p.UnitPrice.Equal(M(1, "EUR")) {
		t.Errorf("cash unit price = %s want 1 EUR", p.UnitPrice)
	}
	if !p.MarketValue().Amount().Equal(decimal.NewFromInt(2500)) {
		t.Errorf("market value = %s", p.MarketValue())
	}
}

func TestFormPositionRejectsInvalid(t *testing.T) {
	form := PositionForm{Category: Equities}
	if _, err := form.Position(); err == nil {
		t.Fatal("expected an error, no position must be constructed from an invalid form")
	}
}
