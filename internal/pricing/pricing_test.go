package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"app/internal/domain/model"
)

func taxRate(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

// Test: 小計・税・合計の不変条件
func TestComputeTotalsInvariant(t *testing.T) {
	items := []LineItem{
		{ProductID: 1, Name: "Rose Bouquet", Tier: model.TierStandard, UnitPriceCents: 2500, Quantity: 2},
		{ProductID: 2, Name: "Tulip Arrangement", Tier: model.TierDeluxe, UnitPriceCents: 4300, Quantity: 1},
	}

	totals, err := ComputeTotals(items, taxRate("0.14975"), 900)
	assert.NoError(t, err)

	assert.Equal(t, int64(9300), totals.SubtotalCents)
	assert.Equal(t, totals.SubtotalCents+totals.TaxCents+totals.DeliveryFeeCents, totals.TotalCents)
}

// Test: 仕様の計算例（2000×3, 14.975%, 配送1000）
func TestComputeTotalsQuebecExample(t *testing.T) {
	items := []LineItem{
		{ProductID: 1, Name: "Peony Bouquet", UnitPriceCents: 2000, Quantity: 3},
	}

	totals, err := ComputeTotals(items, taxRate("0.14975"), 1000)
	assert.NoError(t, err)

	assert.Equal(t, int64(6000), totals.SubtotalCents)
	//6000 × 0.14975 = 898.5 → half upで899
	assert.Equal(t, int64(899), totals.TaxCents)
	assert.Equal(t, int64(1000), totals.DeliveryFeeCents)
	assert.Equal(t, int64(7899), totals.TotalCents)
}

// Test: 明細の順序を変えても結果は同じ
func TestComputeTotalsCommutative(t *testing.T) {
	a := []LineItem{
		{ProductID: 1, UnitPriceCents: 1200, Quantity: 1},
		{ProductID: 2, UnitPriceCents: 800, Quantity: 4},
		{ProductID: 3, UnitPriceCents: 9999, Quantity: 2},
	}
	b := []LineItem{a[2], a[0], a[1]}

	ta, err := ComputeTotals(a, taxRate("0.14975"), 700)
	assert.NoError(t, err)
	tb, err := ComputeTotals(b, taxRate("0.14975"), 700)
	assert.NoError(t, err)

	assert.Equal(t, ta, tb)
}

// Test: 数量0はInvalidLineItem
func TestComputeTotalsZeroQuantity(t *testing.T) {
	items := []LineItem{
		{ProductID: 1, UnitPriceCents: 2000, Quantity: 0},
	}

	_, err := ComputeTotals(items, taxRate("0.14975"), 0)
	assert.ErrorIs(t, err, ErrInvalidLineItem)
}

// Test: 負の単価はInvalidLineItem
func TestComputeTotalsNegativePrice(t *testing.T) {
	items := []LineItem{
		{ProductID: 1, UnitPriceCents: -1, Quantity: 1},
	}

	_, err := ComputeTotals(items, taxRate("0.14975"), 0)
	assert.ErrorIs(t, err, ErrInvalidLineItem)
}

// Test: 負の配送料は専用のエラー
func TestComputeTotalsNegativeDeliveryFee(t *testing.T) {
	items := []LineItem{
		{ProductID: 1, UnitPriceCents: 2000, Quantity: 1},
	}

	_, err := ComputeTotals(items, taxRate("0.14975"), -100)
	assert.ErrorIs(t, err, ErrInvalidDeliveryFee)
}

// Test: 税率の範囲チェック
func TestComputeTotalsInvalidTaxRate(t *testing.T) {
	items := []LineItem{
		{ProductID: 1, UnitPriceCents: 2000, Quantity: 1},
	}

	_, err := ComputeTotals(items, taxRate("1.01"), 0)
	assert.ErrorIs(t, err, ErrInvalidTaxRate)

	_, err = ComputeTotals(items, taxRate("-0.01"), 0)
	assert.ErrorIs(t, err, ErrInvalidTaxRate)
}

// Test: 空の明細は小計0、税0
func TestComputeTotalsEmptyItems(t *testing.T) {
	totals, err := ComputeTotals(nil, taxRate("0.14975"), 500)
	assert.NoError(t, err)

	assert.Equal(t, int64(0), totals.SubtotalCents)
	assert.Equal(t, int64(0), totals.TaxCents)
	assert.Equal(t, int64(500), totals.TotalCents)
}

// Test: 税率0なら税は0
func TestComputeTotalsZeroTaxRate(t *testing.T) {
	items := []LineItem{
		{ProductID: 1, UnitPriceCents: 3333, Quantity: 3},
	}

	totals, err := ComputeTotals(items, decimal.Zero, 0)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), totals.TaxCents)
	assert.Equal(t, int64(9999), totals.TotalCents)
}
