package order

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepository_Orders(t *testing.T) {
	ctx := context.Background()

	t.Run("CreateAndGet", func(t *testing.T) {
		repo := NewMemoryRepository()

		uid := uint(1)
		o, err := repo.CreateOrder(ctx, CreateOrderParams{
			UserID:          &uid,
			TotalAmount:     1050,
			Status:          StatusPending,
			ShippingAddress: "12 Estate Road, Coorg",
			PaymentMethod:   MethodCOD,
		})
		require.NoError(t, err)
		assert.Equal(t, uint(1), o.ID)
		assert.False(t, o.CreatedAt.IsZero())

		got, err := repo.GetOrder(ctx, o.ID)
		assert.NoError(t, err)
		if assert.NotNil(t, got) {
			assert.Equal(t, 1050.0, got.TotalAmount)
			assert.Equal(t, StatusPending, got.Status)
		}
	})

	t.Run("Get_NotFound", func(t *testing.T) {
		repo := NewMemoryRepository()

		o, err := repo.GetOrder(ctx, 42)
		assert.NoError(t, err)
		assert.Nil(t, o)
	})

	t.Run("AddItem_UnknownOrder", func(t *testing.T) {
		repo := NewMemoryRepository()

		_, err := repo.AddOrderItem(ctx, AddOrderItemParams{OrderID: 42, ProductID: 1, Quantity: 1})
		assert.ErrorIs(t, err, ErrOrderNotFound)
	})

	t.Run("ItemsScopedToOrder", func(t *testing.T) {
		repo := NewMemoryRepository()

		a, err := repo.CreateOrder(ctx, CreateOrderParams{Status: StatusPending, PaymentMethod: MethodCOD})
		require.NoError(t, err)
		b, err := repo.CreateOrder(ctx, CreateOrderParams{Status: StatusPending, PaymentMethod: MethodCOD})
		require.NoError(t, err)

		_, err = repo.AddOrderItem(ctx, AddOrderItemParams{OrderID: a.ID, ProductID: 1, Quantity: 2, Price: 350, TotalPrice: 700})
		require.NoError(t, err)
		_, err = repo.AddOrderItem(ctx, AddOrderItemParams{OrderID: b.ID, ProductID: 2, Quantity: 1, Price: 480, TotalPrice: 480})
		require.NoError(t, err)
		_, err = repo.AddOrderItem(ctx, AddOrderItemParams{OrderID: a.ID, ProductID: 3, Quantity: 1, Price: 390, TotalPrice: 390})
		require.NoError(t, err)

		items, err := repo.GetOrderItems(ctx, a.ID)
		assert.NoError(t, err)
		if assert.Len(t, items, 2) {
			assert.Equal(t, uint(1), items[0].ProductID)
			assert.Equal(t, uint(3), items[1].ProductID)
		}
	})

	t.Run("ListUserOrders", func(t *testing.T) {
		repo := NewMemoryRepository()

		uid := uint(1)
		other := uint(2)
		_, err := repo.CreateOrder(ctx, CreateOrderParams{UserID: &uid, Status: StatusPending, PaymentMethod: MethodCOD})
		require.NoError(t, err)
		_, err = repo.CreateOrder(ctx, CreateOrderParams{UserID: &other, Status: StatusPending, PaymentMethod: MethodCOD})
		require.NoError(t, err)
		_, err = repo.CreateOrder(ctx, CreateOrderParams{Status: StatusPending, PaymentMethod: MethodCOD})
		require.NoError(t, err)

		orders, err := repo.ListUserOrders(ctx, uid)
		assert.NoError(t, err)
		assert.Len(t, orders, 1)
	})

	t.Run("UpdateStatus", func(t *testing.T) {
		repo := NewMemoryRepository()

		o, err := repo.CreateOrder(ctx, CreateOrderParams{Status: StatusPending, PaymentMethod: MethodCard})
		require.NoError(t, err)

		require.NoError(t, repo.UpdateStatus(ctx, o.ID, StatusPaid))

		got, err := repo.GetOrder(ctx, o.ID)
		assert.NoError(t, err)
		assert.Equal(t, StatusPaid, got.Status)
	})

	t.Run("UpdateStatus_NotFound", func(t *testing.T) {
		repo := NewMemoryRepository()

		assert.ErrorIs(t, repo.UpdateStatus(ctx, 42, StatusPaid), ErrOrderNotFound)
	})

	t.Run("SetPaymentIntent", func(t *testing.T) {
		repo := NewMemoryRepository()

		o, err := repo.CreateOrder(ctx, CreateOrderParams{Status: StatusPending, PaymentMethod: MethodCard})
		require.NoError(t, err)
		assert.Nil(t, o.PaymentIntentID)

		require.NoError(t, repo.SetPaymentIntent(ctx, o.ID, "order_abc"))

		got, err := repo.GetOrder(ctx, o.ID)
		assert.NoError(t, err)
		if assert.NotNil(t, got.PaymentIntentID) {
			assert.Equal(t, "order_abc", *got.PaymentIntentID)
		}

		// Re-issuing replaces the recorded intent.
		require.NoError(t, repo.SetPaymentIntent(ctx, o.ID, "order_def"))
		got, err = repo.GetOrder(ctx, o.ID)
		assert.NoError(t, err)
		assert.Equal(t, "order_def", *got.PaymentIntentID)
	})

	t.Run("SetPaymentIntent_NotFound", func(t *testing.T) {
		repo := NewMemoryRepository()

		assert.ErrorIs(t, repo.SetPaymentIntent(ctx, 42, "order_abc"), ErrOrderNotFound)
	})
}
