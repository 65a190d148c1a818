package order

import (
	"context"
	"fmt"

	"whitepepper-be/internal/cart"
	"whitepepper-be/internal/catalog"
	"whitepepper-be/internal/logger"
	"whitepepper-be/internal/payment"

	"go.uber.org/zap"
)

type CheckoutInput struct {
	Owner           cart.Owner
	ShippingAddress string
	PaymentMethod   string
}

type ConfirmPaymentInput struct {
	OrderID   uint
	IntentID  string
	PaymentID string
	Signature string
	Owner     cart.Owner
}

// Service orchestrates checkout: it is the only writer of orders and the only
// caller of the payment gateway.
type Service interface {
	Checkout(ctx context.Context, input CheckoutInput) (*OrderWithItems, error)
	CreatePaymentIntent(ctx context.Context, orderID uint) (*payment.Intent, error)
	ConfirmPayment(ctx context.Context, input ConfirmPaymentInput) error
	GetOrder(ctx context.Context, id uint) (*OrderWithItems, error)
	ListUserOrders(ctx context.Context, userID uint) ([]Order, error)
}

type service struct {
	repo     Repository
	carts    cart.Service
	gateway  payment.Gateway
	currency string
}

func NewService(repo Repository, carts cart.Service, gateway payment.Gateway, currency string) Service {
	return &service{
		repo:     repo,
		carts:    carts,
		gateway:  gateway,
		currency: currency,
	}
}

func validMethod(method string) bool {
	switch method {
	case MethodCOD, MethodCard, MethodUPI:
		return true
	}
	return false
}

// Checkout snapshots the owner's cart into an order. Line prices are frozen
// at the effective price of the moment; the shipping rule is applied once,
// here, via cart.ComputeTotals. Cash-on-delivery clears the cart immediately;
// any other method leaves it untouched until a verified payment arrives.
func (s *service) Checkout(ctx context.Context, input CheckoutInput) (*OrderWithItems, error) {
	if err := input.Owner.Validate(); err != nil {
		return nil, err
	}
	if !validMethod(input.PaymentMethod) {
		return nil, ErrInvalidPaymentMethod
	}

	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Checkout"),
		zap.String("owner", input.Owner.Key()),
		zap.String("payment_method", input.PaymentMethod),
	)

	items, err := s.carts.GetCart(ctx, input.Owner)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrCartEmpty
	}

	// Build and validate every line before creating the order record. The
	// stores have no transaction primitive, so all-or-nothing is engineered
	// by failing before the first write.
	lines := make([]AddOrderItemParams, 0, len(items))
	for _, item := range items {
		if item.Quantity <= 0 {
			return nil, fmt.Errorf("cart item %d: %w", item.ID, cart.ErrInvalidQuantity)
		}
		price := catalog.EffectivePrice(item.Product)
		lines = append(lines, AddOrderItemParams{
			ProductID:  item.ProductID,
			Quantity:   item.Quantity,
			Price:      price,
			TotalPrice: price * float64(item.Quantity),
		})
	}

	totals := cart.ComputeTotals(items)

	o, err := s.repo.CreateOrder(ctx, CreateOrderParams{
		UserID:          input.Owner.UserID,
		TotalAmount:     totals.Total,
		Status:          StatusPending,
		ShippingAddress: input.ShippingAddress,
		PaymentMethod:   input.PaymentMethod,
	})
	if err != nil {
		log.Error("failed to create order", zap.Error(err))
		return nil, err
	}

	result := &OrderWithItems{Order: *o}
	for i := range lines {
		lines[i].OrderID = o.ID
		item, err := s.repo.AddOrderItem(ctx, lines[i])
		if err != nil {
			log.Error("failed to add order item",
				zap.Uint("order_id", o.ID),
				zap.Uint("product_id", lines[i].ProductID),
				zap.Error(err),
			)
			return nil, err
		}
		result.Items = append(result.Items, *item)
	}

	if input.PaymentMethod == MethodCOD {
		if err := s.carts.ClearCart(ctx, input.Owner); err != nil {
			log.Error("failed to clear cart after checkout", zap.Error(err))
			return nil, err
		}
	}

	log.Info("order created",
		zap.Uint("order_id", o.ID),
		zap.Float64("total", totals.Total),
		zap.Int("items", len(result.Items)),
	)

	return result, nil
}

// CreatePaymentIntent registers the order with the gateway so the client SDK
// can collect payment against the returned intent id. The intent id is
// recorded on the order; ConfirmPayment only accepts a callback carrying it.
// Re-issuing an intent for a still-pending order replaces the recorded id,
// so only the latest intent can pay the order.
func (s *service) CreatePaymentIntent(ctx context.Context, orderID uint) (*payment.Intent, error) {
	o, err := s.repo.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, ErrOrderNotFound
	}
	if o.Status == StatusPaid {
		return nil, ErrOrderAlreadyPaid
	}

	intent, err := s.gateway.CreateIntent(ctx, payment.IntentRequest{
		Amount:   o.TotalAmount,
		Currency: s.currency,
		Receipt:  fmt.Sprintf("receipt_order_%d", o.ID),
		OrderID:  o.ID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create payment intent: %w", err)
	}

	if err := s.repo.SetPaymentIntent(ctx, o.ID, intent.ID); err != nil {
		logger.FromCtx(ctx).Error("failed to record payment intent",
			zap.Uint("order_id", o.ID),
			zap.String("intent_id", intent.ID),
			zap.Error(err),
		)
		return nil, err
	}
	return intent, nil
}

// ConfirmPayment applies a gateway success callback. The callback must carry
// the intent id recorded on the order, so a signature minted for one order's
// intent can never confirm another order. The signature must then verify
// before anything is trusted; a failed check leaves the order pending and the
// cart untouched so the user may retry. A duplicate callback for an
// already-paid order is a no-op.
func (s *service) ConfirmPayment(ctx context.Context, input ConfirmPaymentInput) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "ConfirmPayment"),
		zap.Uint("order_id", input.OrderID),
	)

	o, err := s.repo.GetOrder(ctx, input.OrderID)
	if err != nil {
		return err
	}
	if o == nil {
		return ErrOrderNotFound
	}
	if o.Status == StatusPaid {
		log.Info("duplicate payment confirmation ignored")
		return nil
	}

	if o.PaymentIntentID == nil || *o.PaymentIntentID != input.IntentID {
		log.Warn("payment confirmation for unrecognized intent",
			zap.String("intent_id", input.IntentID),
		)
		return ErrPaymentMismatch
	}

	if err := s.gateway.VerifySignature(input.IntentID, input.PaymentID, input.Signature); err != nil {
		log.Warn("payment signature verification failed", zap.Error(err))
		return err
	}

	if err := s.repo.UpdateStatus(ctx, o.ID, StatusPaid); err != nil {
		return err
	}

	if input.Owner.Validate() == nil {
		if err := s.carts.ClearCart(ctx, input.Owner); err != nil {
			log.Error("failed to clear cart after payment", zap.Error(err))
			return err
		}
	}

	log.Info("order marked paid")
	return nil
}

func (s *service) GetOrder(ctx context.Context, id uint) (*OrderWithItems, error) {
	o, err := s.repo.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, ErrOrderNotFound
	}

	items, err := s.repo.GetOrderItems(ctx, id)
	if err != nil {
		return nil, err
	}
	return &OrderWithItems{Order: *o, Items: items}, nil
}

func (s *service) ListUserOrders(ctx context.Context, userID uint) ([]Order, error) {
	return s.repo.ListUserOrders(ctx, userID)
}
