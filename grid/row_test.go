package grid

import (
	"math"
	"testing"
)

const tolerance = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < tolerance
}

func TestNewRow(t *testing.T) {
	row := NewRow(1.0, 1.0, 10000.0)
	if row.Gear != 1.0 || row.BuyPrice != 1.0 || row.BuyNumbers != 10000.0 {
		t.Fatalf("NewRow() = %+v", row)
	}

	// construction path keeps arbitrary values
	row = NewRow(0.5, 3.0, 123.0)
	if row.BuyNumbers != 123.0 {
		t.Errorf("NewRow() buy numbers = %v, want 123", row.BuyNumbers)
	}
}

func TestRow_Sell(t *testing.T) {
	row := NewRow(1.0, 1.0, 10000.0)

	cases := []struct {
		spacing     float64
		sellPrice   float64
		sellNumbers float64
	}{
		{spacing: 0.05, sellPrice: 1.05, sellNumbers: 9000.0},
		// exactly 0.10 still doubles
		{spacing: 0.10, sellPrice: 1.10, sellNumbers: 8000.0},
		{spacing: 0.15, sellPrice: 1.15, sellNumbers: 8500.0},
		{spacing: 0.30, sellPrice: 1.30, sellNumbers: 7000.0},
	}

	for _, _case := range cases {
		if got := row.SellPrice(_case.spacing); !almostEqual(got, _case.sellPrice) {
			t.Errorf("Row.SellPrice(%v) = %v, want %v", _case.spacing, got, _case.sellPrice)
		}

		if got := row.SellNumbers(_case.spacing); !almostEqual(got, _case.sellNumbers) {
			t.Errorf("Row.SellNumbers(%v) = %v, want %v", _case.spacing, got, _case.sellNumbers)
		}
	}
}

func TestRow_TriggersAndMoney(t *testing.T) {
	row := NewRow(0.95, 0.95, 11100.0)

	if got := row.BuyTriggerPrice(); !almostEqual(got, 0.955) {
		t.Errorf("Row.BuyTriggerPrice() = %v, want 0.955", got)
	}

	if got := row.SellTriggerPrice(0.05); !almostEqual(got, 0.995) {
		t.Errorf("Row.SellTriggerPrice() = %v, want 0.995", got)
	}

	if got := row.BuyMoney(); !almostEqual(got, 10545.0) {
		t.Errorf("Row.BuyMoney() = %v, want 10545", got)
	}

	// sell 1.0 * 10000
	if got := row.SellMoney(0.05); !almostEqual(got, 10000.0) {
		t.Errorf("Row.SellMoney() = %v, want 10000", got)
	}
}

func TestRow_SellPriceAboveBuyPrice(t *testing.T) {
	instrument := Instrument{StartPrice: 2.345, StartNumbers: 3000}
	for _, spacing := range []float64{0.01, 0.03, 0.05, 0.1, 0.15, 0.3} {
		for index := 0; float64(index)*spacing < 0.95; index++ {
			row := instrument.NthRow(index, spacing)
			if !(row.SellPrice(spacing) > row.BuyPrice) {
				t.Errorf("sell price %v not above buy price %v (index %d, spacing %v)",
					row.SellPrice(spacing), row.BuyPrice, index, spacing)
			}
		}
	}
}
