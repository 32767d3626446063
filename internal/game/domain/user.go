package domain

import "time"

type Plan string

const (
	PlanFree Plan = "free"
	PlanPro  Plan = "pro"
)

// User mirrors the users table. Identity comes from the external provider;
// the row exists to track plan, creation quota and the daily streak.
//
// DailyCreateCount is meaningful only together with LastCreateDate: a
// stale date means the counter resets before use, which the quota update
// re-derives at write time.
type User struct {
	ID                    string
	Email                 string
	Plan                  Plan
	CurrentSubscriptionID *string
	DailyCreateCount      int
	LastCreateDate        *time.Time
	DailyStreak           int
	CreatedAt             time.Time
	UpdatedAt             time.Time
	DeletedAt             *time.Time
}

// EffectivePlan treats an active subscription reference as pro even when
// the plan column has not been flipped yet.
func (u *User) EffectivePlan() Plan {
	if u.Plan == PlanPro || u.CurrentSubscriptionID != nil {
		return PlanPro
	}

	return PlanFree
}
