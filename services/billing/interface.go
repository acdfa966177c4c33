package billing

import (
	"context"
	"errors"

	userRepo "postpilot/database/repository/user"
)

// ErrPlanRequired is returned when a feature needs an active paid plan.
var ErrPlanRequired = errors.New("an active Pro subscription is required")

// BillingService handles subscription checkout and plan gating.
type BillingService interface {
	CreateCheckoutSession(ctx context.Context, userID, successURL, cancelURL string) (string, error)
	ActivatePlan(ctx context.Context, userID, plan string) error
	RequireActivePlan(ctx context.Context, userID string) error
}

// StripeBillingService is the production implementation.
type StripeBillingService struct {
	Users      userRepo.UserRepository
	ProPriceID string
}
