package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sazonapp/pos_backend/internal/apperrors"
	"github.com/sazonapp/pos_backend/internal/core/domain"
	portsrepo "github.com/sazonapp/pos_backend/internal/core/ports/repositories"
	"github.com/sazonapp/pos_backend/internal/models"
	"github.com/sazonapp/pos_backend/internal/utils/mapping"
)

type PgxPaymentRepository struct {
	db *pgxpool.Pool
}

func newPgxPaymentRepository(db *pgxpool.Pool) portsrepo.PaymentRepositoryFacade {
	return &PgxPaymentRepository{db: db}
}

// Ensure PgxPaymentRepository implements portsrepo.PaymentRepositoryFacade
var _ portsrepo.PaymentRepositoryFacade = (*PgxPaymentRepository)(nil)

const paymentColumns = `payment_id, order_id, method, amount, cashbox_session_id,
	gateway_reference, gateway_transaction_id, created_at, created_by`

func scanPayment(row pgx.Row) (models.Payment, error) {
	var m models.Payment
	err := row.Scan(
		&m.PaymentID,
		&m.OrderID,
		&m.Method,
		&m.Amount,
		&m.CashboxSessionID,
		&m.GatewayReference,
		&m.GatewayTransactionID,
		&m.CreatedAt,
		&m.CreatedBy,
	)
	return m, err
}

func (r *PgxPaymentRepository) FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	query := fmt.Sprintf(`SELECT %s FROM payments WHERE payment_id = $1;`, paymentColumns)
	m, err := scanPayment(r.db.QueryRow(ctx, query, paymentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find payment %s: %w", paymentID, err)
	}
	d := mapping.ToDomainPayment(m)
	return &d, nil
}

func (r *PgxPaymentRepository) FindPaymentByGatewayTransactionID(ctx context.Context, transactionID string) (*domain.Payment, error) {
	query := fmt.Sprintf(`SELECT %s FROM payments WHERE gateway_transaction_id = $1;`, paymentColumns)
	m, err := scanPayment(r.db.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find payment by gateway transaction: %w", err)
	}
	d := mapping.ToDomainPayment(m)
	return &d, nil
}

func (r *PgxPaymentRepository) ListPaymentsByOrder(ctx context.Context, orderID string) ([]domain.Payment, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM payments
		WHERE order_id = $1
		ORDER BY created_at;
	`, paymentColumns)
	rows, err := r.db.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to query payments: %w", err)
	}
	defer rows.Close()

	ms := []models.Payment{}
	for rows.Next() {
		m, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payment row: %w", err)
		}
		ms = append(ms, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating payment rows: %w", rows.Err())
	}
	return mapping.ToDomainPaymentSlice(ms), nil
}
