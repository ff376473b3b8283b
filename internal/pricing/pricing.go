package pricing

import (
	"errors"

	"github.com/shopspring/decimal"

	"app/internal/domain/model"
)

var (
	// 単価が負、または数量が1未満
	ErrInvalidLineItem = errors.New("invalid line item")

	// 税率が[0,1]の外
	ErrInvalidTaxRate = errors.New("invalid tax rate")

	// 配送料が負
	ErrInvalidDeliveryFee = errors.New("invalid delivery fee")
)

// カート1行分。金額はセント単位の整数のみ。
type LineItem struct {
	ProductID      int64
	Name           string
	Tier           model.ProductTier
	UnitPriceCents int64
	Quantity       int64
}

// 注文金額の内訳（すべてセント）。
// Total = Subtotal + Tax + DeliveryFee が常に成り立つ。
type Totals struct {
	SubtotalCents    int64 `json:"subtotal_cents"`
	TaxCents         int64 `json:"tax_cents"`
	DeliveryFeeCents int64 `json:"delivery_fee_cents"`
	TotalCents       int64 `json:"total_cents"`
}

var (
	decimalZero = decimal.Zero
	decimalOne  = decimal.NewFromInt(1)
)

// 小計→税→合計を計算する純関数。
// 税は小計に対して1回だけ四捨五入（round half up）する。
// 税の課税ベースは小計のみ（配送料には掛けない）。
func ComputeTotals(items []LineItem, taxRate decimal.Decimal, deliveryFeeCents int64) (Totals, error) {
	if taxRate.LessThan(decimalZero) || taxRate.GreaterThan(decimalOne) {
		return Totals{}, ErrInvalidTaxRate
	}
	if deliveryFeeCents < 0 {
		return Totals{}, ErrInvalidDeliveryFee
	}

	var subtotal int64 = 0
	for _, it := range items {
		if it.UnitPriceCents < 0 || it.Quantity < 1 {
			return Totals{}, ErrInvalidLineItem
		}
		subtotal += it.UnitPriceCents * it.Quantity
	}

	//decimal.Round(0)は half away from zero（正の金額ではhalf upと同じ）
	tax := decimal.NewFromInt(subtotal).Mul(taxRate).Round(0).IntPart()

	return Totals{
		SubtotalCents:    subtotal,
		TaxCents:         tax,
		DeliveryFeeCents: deliveryFeeCents,
		TotalCents:       subtotal + tax + deliveryFeeCents,
	}, nil
}
