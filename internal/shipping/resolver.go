package shipping

import (
	"fmt"
	"strings"
)

// テーブルに載っていない郵便番号
type NotServiceableError struct {
	//表示用に整形済みのコード
	Code string
}

func (e *NotServiceableError) Error() string {
	return fmt.Sprintf("postal code %q is not serviceable", e.Code)
}

func AsNotServiceable(err error) (*NotServiceableError, bool) {
	ns, ok := err.(*NotServiceableError)
	return ns, ok
}

type MatchType string

const (
	MatchExact   MatchType = "exact"
	MatchPartial MatchType = "partial"
)

// 配送料の見積もり結果
type FeeQuote struct {
	FeeCents int64     `json:"fee_cents"`
	Match    MatchType `json:"match"`
	//正規化済みの郵便番号（「A1A 1A1」形式）
	Code string `json:"code"`
}

// 郵便番号から配送料を引く純関数。
// 正規化（空白除去・大文字化）→ 完全一致 → FSAプレフィックス一致の順。
// 3文字未満はプレフィックス一致を試みず即NotServiceable。
func ResolveFee(rawPostalCode string) (FeeQuote, error) {
	normalized := normalize(rawPostalCode)
	formatted := format(normalized)

	if fee, ok := feeTable[formatted]; ok {
		return FeeQuote{FeeCents: fee, Match: MatchExact, Code: formatted}, nil
	}

	if len(normalized) >= 3 {
		prefix := normalized[:3]
		//キー自体が3文字プレフィックスの項目だけが対象（mapの直接参照なので一意）
		if fee, ok := feeTable[prefix]; ok {
			return FeeQuote{FeeCents: fee, Match: MatchPartial, Code: formatted}, nil
		}
	}

	return FeeQuote{}, &NotServiceableError{Code: formatted}
}

// 空白をすべて除き、大文字にする
func normalize(s string) string {
	return strings.ToUpper(strings.Join(strings.Fields(s), ""))
}

// 6文字なら「AAA BBB」に整形。それ以外は正規化したまま返す。
func format(normalized string) string {
	if len(normalized) == 6 {
		return normalized[:3] + " " + normalized[3:]
	}
	return normalized
}
