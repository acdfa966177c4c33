package billing

import (
	"context"
	"fmt"
	"time"

	"postpilot/models"
	"postpilot/utils"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/checkout/session"
	"github.com/stripe/stripe-go/v76/customer"
	"go.uber.org/zap"
)

// CreateCheckoutSession starts a Stripe subscription checkout for the Pro
// plan and returns the hosted checkout URL. A Stripe customer is created
// lazily on first checkout.
func (s *StripeBillingService) CreateCheckoutSession(ctx context.Context, userID, successURL, cancelURL string) (string, error) {
	u, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("user not found: %w", err)
	}

	customerID := u.StripeCustomerID
	if customerID == "" {
		cust, err := customer.New(&stripe.CustomerParams{
			Email: stripe.String(u.Email),
			Name:  stripe.String(u.Name),
		})
		if err != nil {
			return "", fmt.Errorf("failed to create stripe customer: %w", err)
		}
		customerID = cust.ID
		fields := map[string]interface{}{
			"stripeCustomerId": customerID,
			"updatedAt":        time.Now(),
		}
		if err := s.Users.UpdateFields(ctx, userID, fields); err != nil {
			utils.GetLogger().Error("Failed to store stripe customer id", zap.String("userId", userID), zap.Error(err))
		}
	}

	params := &stripe.CheckoutSessionParams{
		Customer:   stripe.String(customerID),
		Mode:       stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		SuccessURL: stripe.String(successURL),
		CancelURL:  stripe.String(cancelURL),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(s.ProPriceID),
				Quantity: stripe.Int64(1),
			},
		},
	}
	sess, err := session.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create checkout session: %w", err)
	}
	return sess.URL, nil
}

// ActivatePlan records a plan change, typically after a completed checkout.
func (s *StripeBillingService) ActivatePlan(ctx context.Context, userID, plan string) error {
	if plan != models.PlanFree && plan != models.PlanPro {
		return fmt.Errorf("unknown plan %q", plan)
	}
	fields := map[string]interface{}{
		"plan":      plan,
		"updatedAt": time.Now(),
	}
	if err := s.Users.UpdateFields(ctx, userID, fields); err != nil {
		return fmt.Errorf("failed to update plan: %w", err)
	}
	return nil
}

// RequireActivePlan gates paid features (the posting queue, AI composer).
func (s *StripeBillingService) RequireActivePlan(ctx context.Context, userID string) error {
	u, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("user not found: %w", err)
	}
	if u.Plan != models.PlanPro {
		return ErrPlanRequired
	}
	return nil
}
