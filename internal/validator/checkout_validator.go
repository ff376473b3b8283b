package validator

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"app/internal/domain/model"
)

// フィールド名→エラーメッセージ。全違反をまとめて返す（fail-fastしない）。
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	return "validation failed: " + strings.Join(keys, ", ")
}

func AsFieldErrors(err error) (FieldErrors, bool) {
	var fe FieldErrors
	ok := errors.As(err, &fe)
	return fe, ok
}

// チェックアウト時の検証入力。methodで必須フィールドが切り替わる。
type CheckoutInput struct {
	Method model.FulfillmentMethod

	RecipientName  string
	RecipientPhone string
	RecipientEmail string

	//method == delivery のとき必須
	Street     string
	City       string
	Province   string
	PostalCode string

	//method == pickup のとき必須
	PickupShopID int64

	//配送または受け取りの日時枠
	SlotAt time.Time
}

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	//カナダ郵便番号（A1A 1A1、空白は任意）
	postalPattern = regexp.MustCompile(`^[A-Za-z]\d[A-Za-z] ?\d[A-Za-z]\d$`)

	phoneSeparators = regexp.MustCompile(`[\s\-().+]`)
)

// ValidateCheckout は注文作成のゲート。違反したフィールドを全部集めて返す。
// 問題なければnil。
func ValidateCheckout(in CheckoutInput, now time.Time) FieldErrors {
	errs := FieldErrors{}

	//方法に関係なく必須
	if strings.TrimSpace(in.RecipientName) == "" {
		errs["recipient_name"] = "recipient name is required"
	}
	if !isPhoneLike(in.RecipientPhone) {
		errs["recipient_phone"] = "phone must contain at least 10 digits"
	}
	if !emailPattern.MatchString(strings.TrimSpace(in.RecipientEmail)) {
		errs["recipient_email"] = "invalid email address"
	}

	switch in.Method {
	case model.MethodDelivery:
		if strings.TrimSpace(in.Street) == "" {
			errs["street"] = "street is required for delivery"
		}
		if strings.TrimSpace(in.City) == "" {
			errs["city"] = "city is required for delivery"
		}
		if strings.TrimSpace(in.Province) == "" {
			errs["province"] = "province is required for delivery"
		}
		postal := strings.TrimSpace(in.PostalCode)
		if postal == "" {
			errs["postal_code"] = "postal code is required for delivery"
		} else if !postalPattern.MatchString(postal) {
			errs["postal_code"] = "invalid postal code"
		}
		if !in.SlotAt.After(now) {
			errs["slot_at"] = "delivery date must be in the future"
		}

	case model.MethodPickup:
		if in.PickupShopID <= 0 {
			errs["pickup_shop_id"] = "pickup location is required"
		}
		if !in.SlotAt.After(now) {
			errs["slot_at"] = "pickup date must be in the future"
		}

	default:
		errs["method"] = "method must be delivery or pickup"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// 区切り記号を除いて数字が10桁以上あるか
func isPhoneLike(s string) bool {
	cleaned := phoneSeparators.ReplaceAllString(s, "")
	if len(cleaned) < 10 {
		return false
	}
	for _, r := range cleaned {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
