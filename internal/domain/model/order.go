package model

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusConfirmed OrderStatus = "CONFIRMED"
	OrderStatusPreparing OrderStatus = "PREPARING"
	OrderStatusReady     OrderStatus = "READY"
	OrderStatusDelivered OrderStatus = "DELIVERED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

// 配送方法
type FulfillmentMethod string

const (
	MethodDelivery FulfillmentMethod = "delivery"
	MethodPickup   FulfillmentMethod = "pickup"
)

// ステータス遷移表。終端（DELIVERED / CANCELLED）からは出られない。
// CANCELLEDは終端以外のどこからでも入れる。
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:   {OrderStatusConfirmed, OrderStatusCancelled},
	OrderStatusConfirmed: {OrderStatusPreparing, OrderStatusCancelled},
	OrderStatusPreparing: {OrderStatusReady, OrderStatusCancelled},
	OrderStatusReady:     {OrderStatusDelivered, OrderStatusCancelled},
	OrderStatusDelivered: {},
	OrderStatusCancelled: {},
}

// sからnextへの遷移が許されるか
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

func ParseOrderStatus(s string) (OrderStatus, bool) {
	switch OrderStatus(s) {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusPreparing,
		OrderStatusReady, OrderStatusDelivered, OrderStatusCancelled:
		return OrderStatus(s), true
	default:
		return "", false
	}
}

type Order struct {
	ID          int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderNumber string `gorm:"type:varchar(36);not null;uniqueIndex" json:"order_number"`
	UserID      int64  `gorm:"not null;index;uniqueIndex:uq_orders_user_idem_key" json:"user_id"`
	ShopID      int64  `gorm:"not null;index" json:"shop_id"`

	Method FulfillmentMethod `gorm:"type:varchar(20);not null" json:"method"`

	//受取人の連絡先
	RecipientName  string `gorm:"type:varchar(255);not null" json:"recipient_name"`
	RecipientPhone string `gorm:"type:varchar(30);not null" json:"recipient_phone"`
	RecipientEmail string `gorm:"type:varchar(255);not null" json:"recipient_email"`

	//配送のときだけ入る住所
	Street     string `gorm:"type:varchar(255)" json:"street,omitempty"`
	City       string `gorm:"type:varchar(255)" json:"city,omitempty"`
	Province   string `gorm:"type:varchar(100)" json:"province,omitempty"`
	PostalCode string `gorm:"type:varchar(10)" json:"postal_code,omitempty"`
	Country    string `gorm:"type:varchar(2)" json:"country,omitempty"`

	//ピックアップのときだけ入る受取店舗
	PickupShopID *int64 `gorm:"index" json:"pickup_shop_id,omitempty"`

	//配送または受け取りの日時枠
	SlotAt time.Time `gorm:"not null" json:"slot_at"`

	//金額内訳（すべてセント、Total = Subtotal + Tax + DeliveryFee）
	SubtotalCents    int64  `gorm:"not null" json:"subtotal_cents"`
	TaxCents         int64  `gorm:"not null" json:"tax_cents"`
	DeliveryFeeCents int64  `gorm:"not null" json:"delivery_fee_cents"`
	TotalCents       int64  `gorm:"not null" json:"total_cents"`
	Currency         string `gorm:"type:varchar(3);not null" json:"currency"`

	//決済側の参照ID
	StripeSessionID       string `gorm:"type:varchar(255);index" json:"-"`
	StripePaymentIntentID string `gorm:"type:varchar(255)" json:"-"`

	Status         OrderStatus `gorm:"type:varchar(20);not null;index" json:"status"`
	IdempotencyKey string      `gorm:"type:varchar(255);not null;uniqueIndex:uq_orders_user_idem_key" json:"-"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
