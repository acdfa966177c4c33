package postSvc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	userRepo "postpilot/database/repository/user"
	"postpilot/models"
)

// LinkedInPublisher posts UGC shares through the LinkedIn REST API using the
// author's stored member access token.
type LinkedInPublisher struct {
	BaseURL string
	Users   userRepo.UserRepository
	Client  *http.Client
}

// NewLinkedInPublisher constructs a publisher against the given API base.
func NewLinkedInPublisher(baseURL string, users userRepo.UserRepository) *LinkedInPublisher {
	return &LinkedInPublisher{
		BaseURL: baseURL,
		Users:   users,
		Client:  &http.Client{Timeout: 15 * time.Second},
	}
}

type ugcShareRequest struct {
	Author          string                    `json:"author"`
	LifecycleState  string                    `json:"lifecycleState"`
	SpecificContent map[string]ugcShareDetail `json:"specificContent"`
	Visibility      map[string]string         `json:"visibility"`
}

type ugcShareDetail struct {
	ShareCommentary    ugcText    `json:"shareCommentary"`
	ShareMediaCategory string     `json:"shareMediaCategory"`
	Media              []ugcMedia `json:"media,omitempty"`
}

type ugcText struct {
	Text string `json:"text"`
}

type ugcMedia struct {
	Status      string `json:"status"`
	OriginalURL string `json:"originalUrl"`
}

// Publish sends the post as a LinkedIn UGC share and returns the share id.
func (p *LinkedInPublisher) Publish(ctx context.Context, post *models.Post) (string, error) {
	author, err := p.Users.GetByID(ctx, post.AuthorID)
	if err != nil {
		return "", fmt.Errorf("failed to load author %s: %w", post.AuthorID, err)
	}
	if author.LinkedInToken == "" {
		return "", fmt.Errorf("author %s has no LinkedIn access token", post.AuthorID)
	}

	detail := ugcShareDetail{
		ShareCommentary:    ugcText{Text: post.Body},
		ShareMediaCategory: "NONE",
	}
	if post.MediaURL != "" {
		detail.ShareMediaCategory = "IMAGE"
		detail.Media = []ugcMedia{{Status: "READY", OriginalURL: post.MediaURL}}
	}
	body := ugcShareRequest{
		Author:          "urn:li:person:" + post.ProfileID,
		LifecycleState:  "PUBLISHED",
		SpecificContent: map[string]ugcShareDetail{"com.linkedin.ugc.ShareContent": detail},
		Visibility:      map[string]string{"com.linkedin.ugc.MemberNetworkVisibility": "PUBLIC"},
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("failed to encode share: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.BaseURL+"/ugcPosts", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+author.LinkedInToken)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Restli-Protocol-Version", "2.0.0")

	resp, err := p.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("linkedin request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("linkedin returned %d: %s", resp.StatusCode, string(msg))
	}

	var created struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return "", fmt.Errorf("failed to decode linkedin response: %w", err)
	}
	return created.ID, nil
}
