package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/hearthsure/policyadmin/internal/apperrors"
	"github.com/hearthsure/policyadmin/internal/core/domain"
	portsrepo "github.com/hearthsure/policyadmin/internal/core/ports/repositories"
	"github.com/hearthsure/policyadmin/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxPolicyRepository persists policy aggregates in PostgreSQL. The aggregate
// and its child rows are always written inside a single transaction.
type PgxPolicyRepository struct {
	pool  *pgxpool.Pool
	clock domain.Clock
}

// newPgxPolicyRepository creates a new repository for policy data.
func newPgxPolicyRepository(pool *pgxpool.Pool, clock domain.Clock) portsrepo.PolicyRepositoryFacade {
	return &PgxPolicyRepository{pool: pool, clock: clock}
}

// Ensure PgxPolicyRepository implements portsrepo.PolicyRepositoryFacade
var _ portsrepo.PolicyRepositoryFacade = (*PgxPolicyRepository)(nil)

// Helper to convert a domain snapshot to the policies row shape.
func toModelPolicy(snap domain.PolicySnapshot) models.Policy {
	m := models.Policy{
		PolicyID:        snap.ID.String(),
		Reference:       snap.Reference,
		InsuranceType:   string(snap.InsuranceType),
		Status:          string(snap.Status),
		StartDate:       snap.StartDate,
		EndDate:         snap.EndDate,
		PremiumAmount:   snap.Premium.Amount(),
		PremiumCurrency: snap.Premium.Currency(),
		AutoRenew:       snap.AutoRenew,
		HasClaims:       snap.HasClaims,
		CreatedAt:       snap.CreatedAt,
		LastModifiedAt:  snap.LastModifiedAt,
	}
	if snap.Property != nil {
		m.AddressLine1 = snap.Property.AddressLine1
		m.AddressLine2 = snap.Property.AddressLine2
		m.AddressLine3 = snap.Property.AddressLine3
		m.Postcode = snap.Property.Postcode
	}
	return m
}

// AddPolicy inserts a newly sold policy with its policyholders and payments.
func (r *PgxPolicyRepository) AddPolicy(ctx context.Context, policy *domain.Policy) error {
	snap := policy.Snapshot()

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := insertPolicyRow(ctx, tx, toModelPolicy(snap)); err != nil {
		return err
	}
	if err := insertChildren(ctx, tx, snap); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit policy %s: %w", snap.Reference, err)
	}
	return nil
}

// SavePolicy persists state changes to an existing policy. Child rows are
// replaced wholesale; the aggregate is small and append-only so the rewrite
// is cheap and keeps ordering authoritative.
func (r *PgxPolicyRepository) SavePolicy(ctx context.Context, policy *domain.Policy) error {
	snap := policy.Snapshot()
	m := toModelPolicy(snap)

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		UPDATE policies
		SET status = $2, end_date = $3, auto_renew = $4, has_claims = $5, last_modified_at = $6
		WHERE policy_id = $1;
	`
	tag, err := tx.Exec(ctx, query,
		m.PolicyID,
		m.Status,
		m.EndDate,
		m.AutoRenew,
		m.HasClaims,
		m.LastModifiedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update policy %s: %w", m.Reference, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: policy %s", apperrors.ErrNotFound, m.Reference)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM policyholders WHERE policy_id = $1;`, m.PolicyID); err != nil {
		return fmt.Errorf("failed to clear policyholders for policy %s: %w", m.Reference, err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM payments WHERE policy_id = $1;`, m.PolicyID); err != nil {
		return fmt.Errorf("failed to clear payments for policy %s: %w", m.Reference, err)
	}
	if err := insertChildren(ctx, tx, snap); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit policy %s: %w", m.Reference, err)
	}
	return nil
}

// FindPolicyByReference retrieves a policy by its human-readable reference.
func (r *PgxPolicyRepository) FindPolicyByReference(ctx context.Context, reference string) (*domain.Policy, error) {
	return r.findPolicy(ctx, `WHERE reference = $1`, reference)
}

// FindPolicyByID retrieves a policy by its internal identifier.
func (r *PgxPolicyRepository) FindPolicyByID(ctx context.Context, policyID uuid.UUID) (*domain.Policy, error) {
	return r.findPolicy(ctx, `WHERE policy_id = $1`, policyID.String())
}

func (r *PgxPolicyRepository) findPolicy(ctx context.Context, where string, arg any) (*domain.Policy, error) {
	query := `
		SELECT policy_id, reference, insurance_type, status,
		       address_line1, address_line2, address_line3, postcode,
		       start_date, end_date, premium_amount, premium_currency,
		       auto_renew, has_claims, created_at, last_modified_at
		FROM policies ` + where + `;`

	var m models.Policy
	var line2, line3 sql.NullString

	err := r.pool.QueryRow(ctx, query, arg).Scan(
		&m.PolicyID,
		&m.Reference,
		&m.InsuranceType,
		&m.Status,
		&m.AddressLine1,
		&line2,
		&line3,
		&m.Postcode,
		&m.StartDate,
		&m.EndDate,
		&m.PremiumAmount,
		&m.PremiumCurrency,
		&m.AutoRenew,
		&m.HasClaims,
		&m.CreatedAt,
		&m.LastModifiedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: policy", apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find policy: %w", err)
	}
	m.AddressLine2 = line2.String
	m.AddressLine3 = line3.String

	holders, err := r.loadPolicyholders(ctx, m.PolicyID)
	if err != nil {
		return nil, err
	}
	payments, err := r.loadPayments(ctx, m.PolicyID)
	if err != nil {
		return nil, err
	}

	snap, err := toDomainSnapshot(m, holders, payments)
	if err != nil {
		return nil, err
	}
	return domain.RehydratePolicy(snap, r.clock), nil
}

func (r *PgxPolicyRepository) loadPolicyholders(ctx context.Context, policyID string) ([]models.Policyholder, error) {
	query := `
		SELECT policyholder_id, policy_id, position, first_name, last_name, date_of_birth
		FROM policyholders
		WHERE policy_id = $1
		ORDER BY position;
	`
	rows, err := r.pool.Query(ctx, query, policyID)
	if err != nil {
		return nil, fmt.Errorf("failed to load policyholders: %w", err)
	}
	defer rows.Close()

	var holders []models.Policyholder
	for rows.Next() {
		var ph models.Policyholder
		if err := rows.Scan(&ph.PolicyholderID, &ph.PolicyID, &ph.Position, &ph.FirstName, &ph.LastName, &ph.DateOfBirth); err != nil {
			return nil, fmt.Errorf("failed to scan policyholder: %w", err)
		}
		holders = append(holders, ph)
	}
	return holders, rows.Err()
}

func (r *PgxPolicyRepository) loadPayments(ctx context.Context, policyID string) ([]models.Payment, error) {
	query := `
		SELECT payment_id, policy_id, position, reference, method, amount
		FROM payments
		WHERE policy_id = $1
		ORDER BY position;
	`
	rows, err := r.pool.Query(ctx, query, policyID)
	if err != nil {
		return nil, fmt.Errorf("failed to load payments: %w", err)
	}
	defer rows.Close()

	var payments []models.Payment
	for rows.Next() {
		var p models.Payment
		if err := rows.Scan(&p.PaymentID, &p.PolicyID, &p.Position, &p.Reference, &p.Method, &p.Amount); err != nil {
			return nil, fmt.Errorf("failed to scan payment: %w", err)
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

func insertPolicyRow(ctx context.Context, tx pgx.Tx, m models.Policy) error {
	query := `
		INSERT INTO policies (policy_id, reference, insurance_type, status,
			address_line1, address_line2, address_line3, postcode,
			start_date, end_date, premium_amount, premium_currency,
			auto_renew, has_claims, created_at, last_modified_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);
	`
	_, err := tx.Exec(ctx, query,
		m.PolicyID,
		m.Reference,
		m.InsuranceType,
		m.Status,
		m.AddressLine1,
		nullableString(m.AddressLine2),
		nullableString(m.AddressLine3),
		m.Postcode,
		m.StartDate,
		m.EndDate,
		m.PremiumAmount,
		m.PremiumCurrency,
		m.AutoRenew,
		m.HasClaims,
		m.CreatedAt,
		m.LastModifiedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return fmt.Errorf("%w: policy with reference %s already exists", apperrors.ErrDuplicate, m.Reference)
		}
		return fmt.Errorf("failed to insert policy %s: %w", m.Reference, err)
	}
	return nil
}

func insertChildren(ctx context.Context, tx pgx.Tx, snap domain.PolicySnapshot) error {
	for i, ph := range snap.Policyholders {
		_, err := tx.Exec(ctx, `
			INSERT INTO policyholders (policyholder_id, policy_id, position, first_name, last_name, date_of_birth)
			VALUES ($1, $2, $3, $4, $5, $6);`,
			ph.ID.String(), snap.ID.String(), i, ph.FirstName, ph.LastName, ph.DateOfBirth,
		)
		if err != nil {
			return fmt.Errorf("failed to insert policyholder for policy %s: %w", snap.Reference, err)
		}
	}
	for i, p := range snap.Payments {
		_, err := tx.Exec(ctx, `
			INSERT INTO payments (payment_id, policy_id, position, reference, method, amount)
			VALUES ($1, $2, $3, $4, $5, $6);`,
			p.ID.String(), snap.ID.String(), i, p.Reference, string(p.Method), p.Amount,
		)
		if err != nil {
			return fmt.Errorf("failed to insert payment for policy %s: %w", snap.Reference, err)
		}
	}
	return nil
}

// toDomainSnapshot maps row shapes back to a domain snapshot.
func toDomainSnapshot(m models.Policy, holders []models.Policyholder, payments []models.Payment) (domain.PolicySnapshot, error) {
	policyID, err := uuid.Parse(m.PolicyID)
	if err != nil {
		return domain.PolicySnapshot{}, fmt.Errorf("invalid policy id %q: %w", m.PolicyID, err)
	}

	premium, err := domain.NewMoney(m.PremiumAmount, m.PremiumCurrency)
	if err != nil {
		return domain.PolicySnapshot{}, fmt.Errorf("invalid premium for policy %s: %w", m.Reference, err)
	}

	snap := domain.PolicySnapshot{
		ID:            policyID,
		Reference:     m.Reference,
		InsuranceType: domain.InsuranceType(m.InsuranceType),
		Status:        domain.PolicyStatus(m.Status),
		Property: &domain.Property{
			AddressLine1: m.AddressLine1,
			AddressLine2: m.AddressLine2,
			AddressLine3: m.AddressLine3,
			Postcode:     m.Postcode,
		},
		StartDate:      m.StartDate,
		EndDate:        m.EndDate,
		Premium:        premium,
		AutoRenew:      m.AutoRenew,
		HasClaims:      m.HasClaims,
		CreatedAt:      m.CreatedAt,
		LastModifiedAt: m.LastModifiedAt,
	}

	for _, ph := range holders {
		id, err := uuid.Parse(ph.PolicyholderID)
		if err != nil {
			return domain.PolicySnapshot{}, fmt.Errorf("invalid policyholder id %q: %w", ph.PolicyholderID, err)
		}
		snap.Policyholders = append(snap.Policyholders, domain.Policyholder{
			ID:          id,
			FirstName:   ph.FirstName,
			LastName:    ph.LastName,
			DateOfBirth: ph.DateOfBirth,
		})
	}
	for _, p := range payments {
		id, err := uuid.Parse(p.PaymentID)
		if err != nil {
			return domain.PolicySnapshot{}, fmt.Errorf("invalid payment id %q: %w", p.PaymentID, err)
		}
		snap.Payments = append(snap.Payments, domain.Payment{
			ID:        id,
			Reference: p.Reference,
			Method:    domain.PaymentMethod(p.Method),
			Amount:    p.Amount,
		})
	}

	return snap, nil
}

func nullableString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
