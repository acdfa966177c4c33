package models

import "time"

// Subscription plans.
const (
	PlanFree = "free"
	PlanPro  = "pro"
)

// User represents a workspace member account.
type User struct {
	ID               string    `bson:"id" json:"id"`
	Email            string    `bson:"email" json:"email"`
	Name             string    `bson:"name" json:"name"`
	Password         string    `bson:"-" json:"password,omitempty"`
	PasswordHash     string    `bson:"passwordHash" json:"-"`
	TokenHash        string    `bson:"tokenHash,omitempty" json:"-"`
	FCMToken         string    `bson:"fcmToken,omitempty" json:"-"`
	Plan             string    `bson:"plan" json:"plan"`
	StripeCustomerID string    `bson:"stripeCustomerId,omitempty" json:"-"`
	LinkedInToken    string    `bson:"linkedinToken,omitempty" json:"-"`
	LinkedInProfiles []string  `bson:"linkedinProfiles,omitempty" json:"linkedinProfiles,omitempty"`
	CreatedAt        time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time `bson:"updatedAt" json:"updatedAt"`
}

// AIContext keeps the rolling conversation state for the AI composer.
type AIContext struct {
	Turns []AITurn `json:"turns,omitempty"`
}

// AITurn is one exchange in an AI composing session.
type AITurn struct {
	Prompt string `json:"prompt"`
	Draft  string `json:"draft"`
}

// AIComposeRequest defines the payload for AI draft generation.
type AIComposeRequest struct {
	Prompt string `json:"prompt" binding:"required"`
	Tone   string `json:"tone"`
}

// AIComposeResponse carries the generated draft back to the client.
type AIComposeResponse struct {
	Draft string `json:"draft"`
}
