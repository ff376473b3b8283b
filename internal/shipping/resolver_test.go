package shipping

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Test: 大文字小文字・空白の違いは正規化で吸収される
func TestResolveFeeNormalization(t *testing.T) {
	a, err := ResolveFee("h2x2c9")
	assert.NoError(t, err)
	b, err := ResolveFee("H2X 2C9")
	assert.NoError(t, err)
	c, err := ResolveFee("H2X2C9")
	assert.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Equal(t, b, c)
	assert.Equal(t, "H2X 2C9", a.Code)
}

// Test: 完全一致はプレフィックス一致より優先
func TestResolveFeeExactBeatsPartial(t *testing.T) {
	//H3G 2A9は完全一致の個別料金、H3GはFSA料金で値が違う
	exact, err := ResolveFee("H3G 2A9")
	assert.NoError(t, err)
	assert.Equal(t, MatchExact, exact.Match)
	assert.Equal(t, feeTable["H3G 2A9"], exact.FeeCents)

	partial, err := ResolveFee("H3G 9Z9")
	assert.NoError(t, err)
	assert.Equal(t, MatchPartial, partial.Match)
	assert.Equal(t, feeTable["H3G"], partial.FeeCents)

	assert.NotEqual(t, exact.FeeCents, partial.FeeCents)
}

// Test: 未知のプレフィックスはNotServiceable
func TestResolveFeeUnknownPrefix(t *testing.T) {
	_, err := ResolveFee("Z9Z 9Z9")
	ns, ok := AsNotServiceable(err)
	assert.True(t, ok)
	assert.Equal(t, "Z9Z 9Z9", ns.Code)
}

// Test: 3文字未満はプレフィックス一致を試みず失敗
func TestResolveFeeTooShort(t *testing.T) {
	_, err := ResolveFee("H2")
	ns, ok := AsNotServiceable(err)
	assert.True(t, ok)
	assert.Equal(t, "H2", ns.Code)

	_, err = ResolveFee("")
	_, ok = AsNotServiceable(err)
	assert.True(t, ok)
}

// Test: 真ん中の空白や複数空白も除去される
func TestResolveFeeWhitespaceVariants(t *testing.T) {
	a, err := ResolveFee("  h3g   2a9  ")
	assert.NoError(t, err)
	assert.Equal(t, "H3G 2A9", a.Code)
	assert.Equal(t, MatchExact, a.Match)
}

// Test: 同じ入力は常に同じ結果（純関数）
func TestResolveFeeDeterministic(t *testing.T) {
	first, err := ResolveFee("H7A 1B2")
	assert.NoError(t, err)

	for i := 0; i < 10; i++ {
		again, err := ResolveFee("H7A 1B2")
		assert.NoError(t, err)
		assert.Equal(t, first, again)
	}
}
