package usecase

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

func newWebhookUsecaseForTest(orders *OrderRepoMock) (*WebhookUsecase, *TxManagerMock) {
	tx := &TxManagerMock{Repos: &TxReposMock{orders: orders}}
	uc := NewWebhookUsecase(tx)
	return uc, tx
}

// Test: 決済完了でPENDING→CONFIRMED、payment intentも保存
func TestHandlePaymentCompleted(t *testing.T) {
	orders := new(OrderRepoMock)
	uc, tx := newWebhookUsecaseForTest(orders)
	tx.On("WithinTx", mock.Anything).Return(nil)

	orders.On("FindByStripeSessionID", mock.Anything, "cs_test_1").Return(model.Order{
		ID:     42,
		Status: model.OrderStatusPending,
	}, nil)
	orders.On("SetStripePaymentIntentID", mock.Anything, int64(42), "pi_test_1").Return(nil)
	orders.On("UpdateStatus", mock.Anything, int64(42), model.OrderStatusConfirmed).Return(nil)

	err := uc.HandlePaymentCompleted(context.Background(), "cs_test_1", "pi_test_1")
	assert.NoError(t, err)

	orders.AssertExpectations(t)
}

// Test: 再配信（すでにCONFIRMED）は何もしない
func TestHandlePaymentCompletedReplay(t *testing.T) {
	orders := new(OrderRepoMock)
	uc, tx := newWebhookUsecaseForTest(orders)
	tx.On("WithinTx", mock.Anything).Return(nil)

	orders.On("FindByStripeSessionID", mock.Anything, "cs_test_1").Return(model.Order{
		ID:                    42,
		Status:                model.OrderStatusConfirmed,
		StripePaymentIntentID: "pi_test_1",
	}, nil)

	err := uc.HandlePaymentCompleted(context.Background(), "cs_test_1", "pi_test_1")
	assert.NoError(t, err)

	orders.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	orders.AssertNotCalled(t, "SetStripePaymentIntentID", mock.Anything, mock.Anything, mock.Anything)
}

// Test: 知らないセッションIDは200（リトライ無意味）
func TestHandlePaymentCompletedUnknownSession(t *testing.T) {
	orders := new(OrderRepoMock)
	uc, tx := newWebhookUsecaseForTest(orders)
	tx.On("WithinTx", mock.Anything).Return(nil)

	orders.On("FindByStripeSessionID", mock.Anything, "cs_unknown").
		Return(model.Order{}, repo.ErrNotFound)

	err := uc.HandlePaymentCompleted(context.Background(), "cs_unknown", "pi_x")
	assert.NoError(t, err)

	orders.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

// Test: session id空は400
func TestHandlePaymentCompletedMissingSession(t *testing.T) {
	orders := new(OrderRepoMock)
	uc, _ := newWebhookUsecaseForTest(orders)

	err := uc.HandlePaymentCompleted(context.Background(), "", "pi_x")
	he, ok := AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Status)
}

// Test: キャンセル済み注文への遅延配信も何もしない
func TestHandlePaymentCompletedCancelledOrder(t *testing.T) {
	orders := new(OrderRepoMock)
	uc, tx := newWebhookUsecaseForTest(orders)
	tx.On("WithinTx", mock.Anything).Return(nil)

	orders.On("FindByStripeSessionID", mock.Anything, "cs_test_1").Return(model.Order{
		ID:     42,
		Status: model.OrderStatusCancelled,
	}, nil)

	err := uc.HandlePaymentCompleted(context.Background(), "cs_test_1", "pi_test_1")
	assert.NoError(t, err)

	orders.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}
