package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"subscription-automation-engine/internal/core/domain"
	"subscription-automation-engine/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// SubscriptionRepo implements ports.SubscriptionRepository.
type SubscriptionRepo struct {
	pool Pool
}

// NewSubscriptionRepo creates a new SubscriptionRepo.
func NewSubscriptionRepo(pool Pool) *SubscriptionRepo {
	return &SubscriptionRepo{pool: pool}
}

const subscriptionColumns = `id, tenant_id, plan_id, status, billing_cycle, start_date, end_date, last_payment_at, suspension_reason, created_at, updated_at`

// CreateBatch inserts one active subscription per entry in a single
// statement. The partial unique index on (tenant_id) WHERE status='active'
// rejects conflicting creates for the whole batch.
func (r *SubscriptionRepo) CreateBatch(ctx context.Context, subs []ports.NewSubscription) error {
	if len(subs) == 0 {
		return nil
	}

	tenantIDs := make([]uuid.UUID, len(subs))
	planIDs := make([]uuid.UUID, len(subs))
	cycles := make([]string, len(subs))
	starts := make([]time.Time, len(subs))
	ends := make([]time.Time, len(subs))
	for i, s := range subs {
		tenantIDs[i] = s.TenantID
		planIDs[i] = s.PlanID
		cycles[i] = string(s.BillingCycle)
		starts[i] = s.StartDate
		ends[i] = s.EndDate
	}

	query := `INSERT INTO subscriptions (id, tenant_id, plan_id, status, billing_cycle, start_date, end_date, created_at, updated_at)
		SELECT gen_random_uuid(), u.tenant_id, u.plan_id, 'active', u.billing_cycle, u.start_date, u.end_date, NOW(), NOW()
		FROM unnest($1::uuid[], $2::uuid[], $3::text[], $4::timestamptz[], $5::timestamptz[])
			AS u(tenant_id, plan_id, billing_cycle, start_date, end_date)`

	_, err := r.pool.Exec(ctx, query, tenantIDs, planIDs, cycles, starts, ends)
	if err != nil {
		return fmt.Errorf("insert subscriptions batch: %w", err)
	}
	return nil
}

// UpdatePlanBatch changes plan_id on active subscriptions only. Tenants
// without an active subscription are skipped, not failed.
func (r *SubscriptionRepo) UpdatePlanBatch(ctx context.Context, tenantIDs []uuid.UUID, planID uuid.UUID) error {
	query := `UPDATE subscriptions SET plan_id = $2, updated_at = NOW()
		WHERE tenant_id = ANY($1) AND status = 'active'`

	_, err := r.pool.Exec(ctx, query, tenantIDs, planID)
	if err != nil {
		return fmt.Errorf("update plan batch: %w", err)
	}
	return nil
}

// TransitionStatusBatch applies a compare-and-set status change. The from
// set includes the target status so re-submission is an idempotent success.
// RETURNING exposes which tenants actually hold the target status, so the
// caller never reports (or announces) a transition that did not happen.
func (r *SubscriptionRepo) TransitionStatusBatch(ctx context.Context, tenantIDs []uuid.UUID, from []domain.SubscriptionStatus, to domain.SubscriptionStatus, reason *string) ([]uuid.UUID, error) {
	fromStr := make([]string, len(from))
	for i, s := range from {
		fromStr[i] = string(s)
	}

	query := `UPDATE subscriptions
		SET status = $2, suspension_reason = $3, updated_at = NOW()
		WHERE tenant_id = ANY($1) AND status = ANY($4)
		RETURNING tenant_id`

	rows, err := r.pool.Query(ctx, query, tenantIDs, string(to), reason, fromStr)
	if err != nil {
		return nil, fmt.Errorf("transition status batch: %w", err)
	}
	defer rows.Close()

	var transitioned []uuid.UUID
	for rows.Next() {
		var tenantID uuid.UUID
		if err := rows.Scan(&tenantID); err != nil {
			return nil, fmt.Errorf("transition status batch: %w", err)
		}
		transitioned = append(transitioned, tenantID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("transition status batch: %w", err)
	}
	return transitioned, nil
}

// ExtendEndDate advances one subscription's end date, conditional on the
// prior end date so concurrent sweeps cannot double-extend.
func (r *SubscriptionRepo) ExtendEndDate(ctx context.Context, subscriptionID uuid.UUID, priorEnd, newEnd time.Time) (bool, error) {
	query := `UPDATE subscriptions SET end_date = $3, updated_at = NOW()
		WHERE id = $1 AND status = 'active' AND end_date = $2`

	tag, err := r.pool.Exec(ctx, query, subscriptionID, priorEnd, newEnd)
	if err != nil {
		return false, fmt.Errorf("extend end date: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// ActivateOnPayment flips a pending subscription to active and stamps the
// last payment time. An already-active row only gets the stamp refreshed.
func (r *SubscriptionRepo) ActivateOnPayment(ctx context.Context, tenantID uuid.UUID, paidAt time.Time) error {
	query := `UPDATE subscriptions
		SET status = 'active', last_payment_at = $2, suspension_reason = NULL, updated_at = NOW()
		WHERE tenant_id = $1 AND status = ANY('{pending,active}')`

	_, err := r.pool.Exec(ctx, query, tenantID, paidAt)
	if err != nil {
		return fmt.Errorf("activate on payment: %w", err)
	}
	return nil
}

// GetByTenant fetches the tenant's current (most recent) subscription.
func (r *SubscriptionRepo) GetByTenant(ctx context.Context, tenantID uuid.UUID) (*domain.Subscription, error) {
	query := `SELECT ` + subscriptionColumns + ` FROM subscriptions
		WHERE tenant_id = $1 ORDER BY created_at DESC LIMIT 1`

	s := &domain.Subscription{}
	err := r.pool.QueryRow(ctx, query, tenantID).Scan(
		&s.ID, &s.TenantID, &s.PlanID, &s.Status, &s.BillingCycle,
		&s.StartDate, &s.EndDate, &s.LastPaymentAt, &s.SuspensionReason,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get subscription by tenant: %w", err)
	}
	return s, nil
}

// ListDueForRenewal returns active subscriptions ending within the window,
// joined with each tenant's automation config snapshot.
func (r *SubscriptionRepo) ListDueForRenewal(ctx context.Context, now time.Time, window time.Duration) ([]ports.DueSubscription, error) {
	query := `SELECT s.id, s.tenant_id, s.plan_id, s.status, s.billing_cycle, s.start_date, s.end_date, s.last_payment_at, s.suspension_reason, s.created_at, s.updated_at,
			c.auto_renewal, c.grace_period_days, c.auto_suspend_on_failure, c.max_retry_attempts
		FROM subscriptions s
		JOIN automation_configs c ON c.tenant_id = s.tenant_id
		WHERE s.status = 'active' AND s.end_date > $1 AND s.end_date <= $2
		ORDER BY s.end_date`

	rows, err := r.pool.Query(ctx, query, now, now.Add(window))
	if err != nil {
		return nil, fmt.Errorf("list due for renewal: %w", err)
	}
	defer rows.Close()
	return scanDueSubscriptions(rows)
}

// ListExpired returns active subscriptions whose end date has passed.
func (r *SubscriptionRepo) ListExpired(ctx context.Context, now time.Time) ([]ports.DueSubscription, error) {
	query := `SELECT s.id, s.tenant_id, s.plan_id, s.status, s.billing_cycle, s.start_date, s.end_date, s.last_payment_at, s.suspension_reason, s.created_at, s.updated_at,
			c.auto_renewal, c.grace_period_days, c.auto_suspend_on_failure, c.max_retry_attempts
		FROM subscriptions s
		JOIN automation_configs c ON c.tenant_id = s.tenant_id
		WHERE s.status = 'active' AND s.end_date <= $1
		ORDER BY s.end_date`

	rows, err := r.pool.Query(ctx, query, now)
	if err != nil {
		return nil, fmt.Errorf("list expired: %w", err)
	}
	defer rows.Close()
	return scanDueSubscriptions(rows)
}

// ListExpiringOn returns active subscriptions whose end date falls inside
// the one-day window starting at dayStart.
func (r *SubscriptionRepo) ListExpiringOn(ctx context.Context, dayStart time.Time) ([]domain.Subscription, error) {
	query := `SELECT ` + subscriptionColumns + ` FROM subscriptions
		WHERE status = 'active' AND end_date >= $1 AND end_date < $2
		ORDER BY end_date`

	rows, err := r.pool.Query(ctx, query, dayStart, dayStart.AddDate(0, 0, 1))
	if err != nil {
		return nil, fmt.Errorf("list expiring on: %w", err)
	}
	defer rows.Close()

	var subs []domain.Subscription
	for rows.Next() {
		var s domain.Subscription
		if err := rows.Scan(
			&s.ID, &s.TenantID, &s.PlanID, &s.Status, &s.BillingCycle,
			&s.StartDate, &s.EndDate, &s.LastPaymentAt, &s.SuspensionReason,
			&s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan subscription: %w", err)
		}
		subs = append(subs, s)
	}
	return subs, rows.Err()
}

// CountByStatus counts subscriptions in a given status.
func (r *SubscriptionRepo) CountByStatus(ctx context.Context, status domain.SubscriptionStatus) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM subscriptions WHERE status = $1`, string(status)).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count by status: %w", err)
	}
	return n, nil
}

// CountTenants counts distinct tenants with any subscription.
func (r *SubscriptionRepo) CountTenants(ctx context.Context) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(DISTINCT tenant_id) FROM subscriptions`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count tenants: %w", err)
	}
	return n, nil
}

func scanDueSubscriptions(rows pgx.Rows) ([]ports.DueSubscription, error) {
	var due []ports.DueSubscription
	for rows.Next() {
		var d ports.DueSubscription
		if err := rows.Scan(
			&d.Subscription.ID, &d.Subscription.TenantID, &d.Subscription.PlanID,
			&d.Subscription.Status, &d.Subscription.BillingCycle,
			&d.Subscription.StartDate, &d.Subscription.EndDate,
			&d.Subscription.LastPaymentAt, &d.Subscription.SuspensionReason,
			&d.Subscription.CreatedAt, &d.Subscription.UpdatedAt,
			&d.Config.AutoRenewal, &d.Config.GracePeriodDays,
			&d.Config.AutoSuspendOnFail, &d.Config.MaxRetryAttempts,
		); err != nil {
			return nil, fmt.Errorf("scan due subscription: %w", err)
		}
		d.Config.TenantID = d.Subscription.TenantID
		due = append(due, d)
	}
	return due, rows.Err()
}
