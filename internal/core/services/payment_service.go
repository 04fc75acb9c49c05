package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/sazonapp/pos_backend/internal/apperrors"
	"github.com/sazonapp/pos_backend/internal/core/domain"
	portsrepo "github.com/sazonapp/pos_backend/internal/core/ports/repositories"
	portssvc "github.com/sazonapp/pos_backend/internal/core/ports/services"
	"github.com/sazonapp/pos_backend/internal/dto"
	"github.com/sazonapp/pos_backend/internal/utils/wompi"
	"github.com/shopspring/decimal"
)

const errCashWithoutSessionMsg = "Debes tener una caja abierta para recibir pagos en efectivo."

// paymentService implements the PaymentSvcFacade interface
type paymentService struct {
	BaseService
	orderRepo    portsrepo.OrderRepositoryFacade
	paymentRepo  portsrepo.PaymentRepositoryFacade
	cashboxSvc   portssvc.CashboxSvcFacade
	orderSvc     portssvc.OrderSvcFacade
	eventsSecret string
}

// NewPaymentService creates a new payment service with the provided dependencies
func NewPaymentService(
	orderRepo portsrepo.OrderRepositoryFacade,
	paymentRepo portsrepo.PaymentRepositoryFacade,
	cashboxSvc portssvc.CashboxSvcFacade,
	orderSvc portssvc.OrderSvcFacade,
	eventsSecret string,
) portssvc.PaymentSvcFacade {
	return &paymentService{
		orderRepo:    orderRepo,
		paymentRepo:  paymentRepo,
		cashboxSvc:   cashboxSvc,
		orderSvc:     orderSvc,
		eventsSecret: eventsSecret,
	}
}

var _ portssvc.PaymentSvcFacade = (*paymentService)(nil)

// ProcessOrderPayment settles an order at the counter.
func (s *paymentService) ProcessOrderPayment(ctx context.Context, user *domain.User, orderID string, req dto.PayOrderRequest) (*domain.Order, *domain.Payment, error) {
	restaurantID, err := s.RequireRestaurant(user)
	if err != nil {
		return nil, nil, err
	}
	if err := s.RequirePermission(ctx, user, domain.PermProcessPayments); err != nil {
		return nil, nil, err
	}

	method := domain.PaymentMethod(req.Method)
	if !method.IsValid() || method == domain.PaymentWompi {
		return nil, nil, fmt.Errorf("%w: unsupported payment method", apperrors.ErrValidation)
	}

	order, err := s.orderRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		return nil, nil, err
	}
	if order.RestaurantID != restaurantID {
		return nil, nil, apperrors.ErrNotFound
	}
	if order.PaidAt != nil {
		return nil, nil, fmt.Errorf("%w: order already paid", apperrors.ErrConflict)
	}
	if !order.Status.IsPayable() {
		return nil, nil, fmt.Errorf("%w: order in status %s cannot be paid", apperrors.ErrConflict, order.Status)
	}

	payment := domain.Payment{
		PaymentID: uuid.NewString(),
		OrderID:   orderID,
		Method:    method,
		Amount:    order.Total,
		CreatedAt: time.Now(),
		CreatedBy: user.UserID,
	}

	// Cash goes into the till: the cashier needs an open session, and the SALE
	// movement lands in its ledger atomically with the settlement.
	if method == domain.PaymentCash {
		session, err := s.cashboxSvc.GetOpenSessionForUser(ctx, user.UserID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, errCashWithoutSessionMsg)
			}
			return nil, nil, err
		}
		payment.CashboxSessionID = &session.SessionID
	}

	settled, err := s.orderSvc.MarkOrderPaid(ctx, orderID, payment)
	if err != nil {
		return nil, nil, err
	}

	s.LogInfo(ctx, "Order payment processed",
		slog.String("order_id", orderID),
		slog.String("method", string(method)),
		slog.String("amount", payment.Amount.String()))
	return settled, &payment, nil
}

// VerifyEventSignature checks the webhook HMAC signature for the event.
func (s *paymentService) VerifyEventSignature(event dto.WompiEvent, timestamp string, signature string) bool {
	if s.eventsSecret == "" || signature == "" {
		return false
	}
	return wompi.VerifySignature(event.SignedFields(), timestamp, signature, s.eventsSecret)
}

// ProcessGatewayEvent applies a verified gateway webhook event.
func (s *paymentService) ProcessGatewayEvent(ctx context.Context, event dto.WompiEvent) error {
	txn := event.Data.Transaction

	orderID, err := wompi.ParseReference(txn.Reference)
	if err != nil {
		s.LogError(ctx, err, "Rejected gateway event with malformed reference",
			slog.String("reference", txn.Reference))
		return fmt.Errorf("%w: malformed payment reference", apperrors.ErrValidation)
	}

	// Gateway retries redeliver the same transaction; an already recorded
	// transaction ID means the event was applied before.
	if txn.ID != "" {
		if _, err := s.paymentRepo.FindPaymentByGatewayTransactionID(ctx, txn.ID); err == nil {
			s.LogInfo(ctx, "Skipping already processed gateway event",
				slog.String("transaction_id", txn.ID))
			return nil
		} else if !errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
	}

	switch domain.GatewayStatus(txn.Status) {
	case domain.GatewayApproved:
		amount := decimal.NewFromInt(txn.AmountInCents).Div(decimal.NewFromInt(100))
		payment := domain.Payment{
			PaymentID:            uuid.NewString(),
			OrderID:              orderID,
			Method:               domain.PaymentWompi,
			Amount:               amount,
			GatewayReference:     txn.Reference,
			GatewayTransactionID: txn.ID,
			CreatedAt:            time.Now(),
			CreatedBy:            "wompi",
		}
		if _, err := s.orderSvc.MarkOrderPaid(ctx, orderID, payment); err != nil {
			return err
		}
	case domain.GatewayDeclined, domain.GatewayError:
		if err := s.orderSvc.MarkOrderFailed(ctx, orderID, domain.OrderPaymentFailed); err != nil {
			return err
		}
	case domain.GatewayVoided:
		if err := s.orderSvc.MarkOrderFailed(ctx, orderID, domain.OrderCancelled); err != nil {
			return err
		}
	default:
		s.LogInfo(ctx, "Ignoring gateway event with unknown status",
			slog.String("status", txn.Status),
			slog.String("order_id", orderID))
	}
	return nil
}
