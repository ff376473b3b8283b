package usecase

import (
	"context"
	"net/http"
	"strings"
	"time"

	"app/internal/domain/model"
	"app/internal/pricing"
	repo "app/internal/repository"
	"app/internal/shipping"
	"app/internal/validator"

	"github.com/shopspring/decimal"
)

// 現在時刻（テストで差し替える）
type Clock interface {
	Now() time.Time
}

// 注文番号の採番
type IDGenerator interface {
	NewID() string
}

type OrderUsecase struct {
	tx       repo.TransactionManager
	shopRepo repo.ShopRepository
	idGen    IDGenerator
	clock    Clock
	taxRate  decimal.Decimal
	currency string
}

func NewOrderUsecase(
	tx repo.TransactionManager,
	shopRepo repo.ShopRepository,
	idGen IDGenerator,
	clock Clock,
	taxRate decimal.Decimal,
	currency string,
) *OrderUsecase {
	return &OrderUsecase{
		tx:       tx,
		shopRepo: shopRepo,
		idGen:    idGen,
		clock:    clock,
		taxRate:  taxRate,
		currency: currency,
	}
}

type PlaceOrderItemInput struct {
	ProductID int64  `json:"product_id"`
	Tier      string `json:"tier"`
	Quantity  int64  `json:"quantity"`
}

type DeliveryInput struct {
	Method       string    `json:"method"`
	Street       string    `json:"street"`
	City         string    `json:"city"`
	Province     string    `json:"province"`
	PostalCode   string    `json:"postal_code"`
	Country      string    `json:"country"`
	PickupShopID int64     `json:"pickup_shop_id"`
	SlotAt       time.Time `json:"slot_at"`
}

type RecipientInput struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

type PlaceOrderInput struct {
	ShopID         int64
	Items          []PlaceOrderItemInput
	Delivery       DeliveryInput
	Recipient      RecipientInput
	IdempotencyKey string
}

type OrderItemOutput struct {
	ProductID int64  `json:"product_id"`
	Name      string `json:"name"`
	Tier      string `json:"tier"`
	Price     int64  `json:"price"`
	Quantity  int64  `json:"quantity"`
}

type OrderOutput struct {
	ID          int64             `json:"id"`
	OrderNumber string            `json:"order_number"`
	UserID      int64             `json:"user_id"`
	ShopID      int64             `json:"shop_id"`
	Status      string            `json:"status"`
	Method      string            `json:"method"`
	SlotAt      time.Time         `json:"slot_at"`
	Totals      pricing.Totals    `json:"totals"`
	Currency    string            `json:"currency"`
	CreatedAt   time.Time         `json:"created_at"`
	Items       []OrderItemOutput `json:"items"`
}

// PlaceOrder は注文作成の本体。
// 検証 → 配送料解決 → 金額計算 → トランザクションで永続化、の順。
// 検証・配送料の失敗はフィールド単位でまとめて返す（部分的な注文は作らない）。
func (u *OrderUsecase) PlaceOrder(ctx context.Context, userID int64, in PlaceOrderInput) (OrderOutput, error) {
	if userID <= 0 {
		return OrderOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if in.ShopID <= 0 {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid shop_id")
	}
	if len(in.Items) == 0 {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "items required")
	}
	key := strings.TrimSpace(in.IdempotencyKey)
	if key == "" || len(key) > 255 {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid idempotency_key")
	}

	//明細の形式チェック（金額計算の前提）
	for _, it := range in.Items {
		if it.ProductID <= 0 {
			return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid product_id")
		}
		if it.Quantity < 1 {
			return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid quantity")
		}
		switch model.ProductTier(it.Tier) {
		case "", model.TierStandard, model.TierDeluxe, model.TierPremium:
		default:
			return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid tier")
		}
	}

	method := model.FulfillmentMethod(in.Delivery.Method)

	//配送/受け取りの必須フィールドを全部まとめて検証
	if errs := validator.ValidateCheckout(validator.CheckoutInput{
		Method:         method,
		RecipientName:  in.Recipient.Name,
		RecipientPhone: in.Recipient.Phone,
		RecipientEmail: in.Recipient.Email,
		Street:         in.Delivery.Street,
		City:           in.Delivery.City,
		Province:       in.Delivery.Province,
		PostalCode:     in.Delivery.PostalCode,
		PickupShopID:   in.Delivery.PickupShopID,
		SlotAt:         in.Delivery.SlotAt,
	}, u.clock.Now()); errs != nil {
		return OrderOutput{}, errs
	}

	//配送料（deliveryのときだけ）
	var feeCents int64 = 0
	if method == model.MethodDelivery {
		quote, err := shipping.ResolveFee(in.Delivery.PostalCode)
		if err != nil {
			if ns, ok := shipping.AsNotServiceable(err); ok {
				//郵便番号を変えるか受け取りに切り替えれば回復できる
				return OrderOutput{}, validator.FieldErrors{
					"postal_code": "we do not deliver to " + ns.Code,
				}
			}
			return OrderOutput{}, NewHTTPError(http.StatusInternalServerError, "fee resolution failed")
		}
		feeCents = quote.FeeCents
	}

	//受け取り店舗の存在チェック
	var pickupShopID *int64
	if method == model.MethodPickup {
		s, err := u.shopRepo.FindByID(ctx, in.Delivery.PickupShopID)
		if err == repo.ErrNotFound {
			return OrderOutput{}, validator.FieldErrors{
				"pickup_shop_id": "unknown pickup location",
			}
		}
		if err != nil {
			return OrderOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if !s.IsPickupLocation {
			return OrderOutput{}, validator.FieldErrors{
				"pickup_shop_id": "this shop does not offer pickup",
			}
		}
		id := s.ID
		pickupShopID = &id
	}

	var out OrderOutput

	//注文処理はトランザクション
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		// 同じキーなら同じ結果
		existing, found, err := r.Orders().FindByIdempotencyKey(ctx, userID, key)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if found {
			//既存注文を返す
			items, err := r.OrderItems().ListByOrderID(ctx, existing.ID)
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
			out = toOrderOutput(existing, items)
			return nil
		}

		//商品の確認と在庫減算、スナップショット作成
		now := u.clock.Now()
		orderItems := make([]model.OrderItem, 0, len(in.Items))
		lineItems := make([]pricing.LineItem, 0, len(in.Items))

		for _, it := range in.Items {
			p, err := r.Products().FindByID(ctx, it.ProductID)
			if err == repo.ErrNotFound {
				return NewHTTPError(http.StatusBadRequest, "invalid product")
			}
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
			if !p.IsActive || p.ShopID != in.ShopID {
				return NewHTTPError(http.StatusBadRequest, "invalid product")
			}

			tier := model.ProductTier(it.Tier)
			if tier == "" {
				tier = model.TierStandard
			}
			unitPrice, ok := p.PriceForTier(tier)
			if !ok {
				return NewHTTPError(http.StatusBadRequest, "invalid tier")
			}

			//在庫減算（足りないなら false）
			enough, err := r.Inventory().DecreaseStockIfEnough(ctx, it.ProductID, it.Quantity)
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
			if !enough {
				return NewHTTPError(http.StatusBadRequest, "out of stock")
			}

			orderItems = append(orderItems, model.OrderItem{
				ProductID:           it.ProductID,
				ProductNameSnapshot: p.Name,
				Tier:                tier,
				UnitPriceSnapshot:   unitPrice,
				Quantity:            it.Quantity,
				CreatedAt:           now,
			})
			lineItems = append(lineItems, pricing.LineItem{
				ProductID:      it.ProductID,
				Name:           p.Name,
				Tier:           tier,
				UnitPriceCents: unitPrice,
				Quantity:       it.Quantity,
			})
		}

		//金額計算（税は小計に対して1回だけ丸める）
		totals, err := pricing.ComputeTotals(lineItems, u.taxRate, feeCents)
		if err != nil {
			//ここに来るのはデータ不正（呼び出し側のバグ）
			return NewHTTPError(http.StatusInternalServerError, "pricing failed")
		}

		country := strings.ToUpper(strings.TrimSpace(in.Delivery.Country))
		if method == model.MethodDelivery && country == "" {
			country = "CA"
		}

		order := model.Order{
			OrderNumber:      u.idGen.NewID(),
			UserID:           userID,
			ShopID:           in.ShopID,
			Method:           method,
			RecipientName:    strings.TrimSpace(in.Recipient.Name),
			RecipientPhone:   strings.TrimSpace(in.Recipient.Phone),
			RecipientEmail:   strings.TrimSpace(in.Recipient.Email),
			Street:           strings.TrimSpace(in.Delivery.Street),
			City:             strings.TrimSpace(in.Delivery.City),
			Province:         strings.TrimSpace(in.Delivery.Province),
			PostalCode:       strings.TrimSpace(in.Delivery.PostalCode),
			Country:          country,
			PickupShopID:     pickupShopID,
			SlotAt:           in.Delivery.SlotAt,
			SubtotalCents:    totals.SubtotalCents,
			TaxCents:         totals.TaxCents,
			DeliveryFeeCents: totals.DeliveryFeeCents,
			TotalCents:       totals.TotalCents,
			Currency:         u.currency,
			Status:           model.OrderStatusPending,
			IdempotencyKey:   key,
			CreatedAt:        now,
			UpdatedAt:        now,
		}

		orderID, err := r.Orders().Create(ctx, order)
		if err != nil {
			//競合（同時で同じキーが入った等）はもう一回検索して同じ結果を返す
			ex2, found2, err2 := r.Orders().FindByIdempotencyKey(ctx, userID, key)
			if err2 == nil && found2 {
				items2, err3 := r.OrderItems().ListByOrderID(ctx, ex2.ID)
				if err3 != nil {
					return NewHTTPError(http.StatusInternalServerError, "db error")
				}
				out = toOrderOutput(ex2, items2)
				return nil
			}
			return NewHTTPError(http.StatusBadRequest, "idempotency conflict")
		}

		//注文明細一括作成
		if err := r.OrderItems().CreateBulk(ctx, orderID, orderItems); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		order.ID = orderID
		out = toOrderOutput(order, orderItems)
		return nil
	})

	if err != nil {
		return OrderOutput{}, err
	}
	return out, nil
}

func (u *OrderUsecase) ListMyOrders(ctx context.Context, userID int64) ([]OrderOutput, error) {
	if userID <= 0 {
		return []OrderOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	//ページングはまず固定で取る
	var outs []OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		orders, _, err := r.Orders().ListByUserID(ctx, userID, 1, 50)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		outs = make([]OrderOutput, 0, len(orders))
		for _, o := range orders {
			items, err := r.OrderItems().ListByOrderID(ctx, o.ID)
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
			outs = append(outs, toOrderOutput(o, items))
		}
		return nil
	})

	if err != nil {
		return []OrderOutput{}, err
	}
	return outs, nil
}

func (u *OrderUsecase) GetMyOrderDetail(ctx context.Context, userID int64, orderID int64) (OrderOutput, error) {
	if userID <= 0 {
		return OrderOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if orderID <= 0 {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var out OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByID(ctx, orderID)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if o.UserID != userID {
			//他人の注文は「存在しない扱い」にする
			return NewHTTPError(http.StatusNotFound, "not found")
		}

		items, err := r.OrderItems().ListByOrderID(ctx, orderID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		out = toOrderOutput(o, items)
		return nil
	})

	if err != nil {
		return OrderOutput{}, err
	}
	return out, nil
}

type UpdateOrderStatusInput struct {
	Status string
}

// IdPのroleクレーム。フルフィルメントの操作はスタッフ側の権限。
func isStaffRole(role string) bool {
	return role == "STAFF" || role == "ADMIN"
}

// ステータス更新（遷移表でガード、CANCELLEDなら準備前に限り在庫戻し）。
// スタッフは任意の注文を遷移できる。顧客にできるのは自分の注文のキャンセルだけ。
func (u *OrderUsecase) UpdateStatus(ctx context.Context, userID int64, role string, orderID int64, in UpdateOrderStatusInput) error {
	if userID <= 0 {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if orderID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	newStatus, ok := model.ParseOrderStatus(strings.TrimSpace(in.Status))
	if !ok {
		return NewHTTPError(http.StatusBadRequest, "invalid status")
	}

	staff := isStaffRole(role)

	return u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByID(ctx, orderID)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		if !staff {
			//他人の注文は「存在しない扱い」にする
			if o.UserID != userID {
				return NewHTTPError(http.StatusNotFound, "not found")
			}
			//支払い確定（CONFIRMED）はwebhook経由のみ。進行系の遷移もスタッフ専用。
			if newStatus != model.OrderStatusCancelled {
				return NewHTTPError(http.StatusForbidden, "staff only")
			}
		}

		// すでに同じなら何もしない（200）
		if o.Status == newStatus {
			return nil
		}
		if !o.Status.CanTransitionTo(newStatus) {
			return NewHTTPError(http.StatusConflict, "illegal status transition")
		}

		// 準備に入る前のキャンセルだけ在庫戻し
		if newStatus == model.OrderStatusCancelled &&
			(o.Status == model.OrderStatusPending || o.Status == model.OrderStatusConfirmed) {
			items, err := r.OrderItems().ListByOrderID(ctx, orderID)
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
			for _, it := range items {
				if err := r.Inventory().IncreaseStock(ctx, it.ProductID, it.Quantity); err != nil {
					return NewHTTPError(http.StatusInternalServerError, "db error")
				}
			}
		}

		if err := r.Orders().UpdateStatus(ctx, orderID, newStatus); err != nil {
			if err == repo.ErrNotFound {
				return NewHTTPError(http.StatusNotFound, "not found")
			}
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		return nil
	})
}

func toOrderOutput(o model.Order, items []model.OrderItem) OrderOutput {
	outItems := make([]OrderItemOutput, 0, len(items))
	for _, it := range items {
		outItems = append(outItems, OrderItemOutput{
			ProductID: it.ProductID,
			Name:      it.ProductNameSnapshot,
			Tier:      string(it.Tier),
			Price:     it.UnitPriceSnapshot,
			Quantity:  it.Quantity,
		})
	}

	return OrderOutput{
		ID:          o.ID,
		OrderNumber: o.OrderNumber,
		UserID:      o.UserID,
		ShopID:      o.ShopID,
		Status:      string(o.Status),
		Method:      string(o.Method),
		SlotAt:      o.SlotAt,
		Totals: pricing.Totals{
			SubtotalCents:    o.SubtotalCents,
			TaxCents:         o.TaxCents,
			DeliveryFeeCents: o.DeliveryFeeCents,
			TotalCents:       o.TotalCents,
		},
		Currency:  o.Currency,
		CreatedAt: o.CreatedAt,
		Items:     outItems,
	}
}
