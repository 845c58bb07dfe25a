package grid

const (
	// TriggerOffset distance between trigger price and order price
	TriggerOffset = 0.005
	// DoubleSellThreshold spacings up to this value sell twice the spacing
	DoubleSellThreshold = 0.10
)

// Row define one gear of a ladder
type Row struct {
	Gear       float64 `json:"gear"`
	BuyPrice   float64 `json:"buy_price"`
	BuyNumbers float64 `json:"buy_numbers"`
}

// NewRow create row from raw values, no invariant is checked
func NewRow(gear, buyPrice, buyNumbers float64) Row {
	return Row{
		Gear:       gear,
		BuyPrice:   buyPrice,
		BuyNumbers: buyNumbers,
	}
}

// SellPrice price to sell the gear at, one spacing above the gear
func (r Row) SellPrice(spacing float64) float64 {
	return r.BuyPrice * (r.Gear + spacing) / r.Gear
}

// SellNumbers numbers to sell at sell price.
// Thin grids sell twice the spacing per step.
func (r Row) SellNumbers(spacing float64) float64 {
	t := spacing * 2
	if spacing > DoubleSellThreshold {
		t = spacing
	}

	return RoundToHundred(r.BuyNumbers * (1 - t))
}

// BuyTriggerPrice buy order trigger price
func (r Row) BuyTriggerPrice() float64 {
	return r.BuyPrice + TriggerOffset
}

// SellTriggerPrice sell order trigger price
func (r Row) SellTriggerPrice(spacing float64) float64 {
	return r.SellPrice(spacing) - TriggerOffset
}

// BuyMoney money spent buying the gear
func (r Row) BuyMoney() float64 {
	return r.BuyPrice * r.BuyNumbers
}

// SellMoney money received selling the gear
func (r Row) SellMoney(spacing float64) float64 {
	return r.SellPrice(spacing) * r.SellNumbers(spacing)
}
