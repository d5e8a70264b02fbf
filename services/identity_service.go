package services

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/preorder-hq/backoffice-api/config"
)

// UserInfo represents the user information returned from the identity
// provider's /userinfo endpoint
type UserInfo struct {
	Sub   string `json:"sub"` // identity provider user ID
	Email string `json:"email"`
	Name  string `json:"name"`
}

// IdentityInterface defines the interface for identity provider lookups
type IdentityInterface interface {
	GetUserInfo(accessToken string) (*UserInfo, error)
}

// IdentityService handles interactions with the Auth0 API
type IdentityService struct {
	domain     string
	httpClient *http.Client
}

var identityServiceInstance IdentityInterface

// NewIdentityService creates a new identity service instance
func NewIdentityService(cfg *config.Config) *IdentityService {
	return &IdentityService{
		domain: cfg.Auth0Domain,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// GetIdentityService returns the identity service instance, creating one
// from the loaded configuration on first use
func GetIdentityService() IdentityInterface {
	if identityServiceInstance == nil {
		identityServiceInstance = NewIdentityService(config.GetConfig())
	}
	return identityServiceInstance
}

// SetIdentityService sets the identity service instance (primarily for testing)
func SetIdentityService(service IdentityInterface) {
	identityServiceInstance = service
}

// GetUserInfo fetches user information from the provider's /userinfo endpoint
// accessToken is the JWT access token from the Authorization header
func (s *IdentityService) GetUserInfo(accessToken string) (*UserInfo, error) {
	// Construct the userinfo endpoint URL
	// If domain already includes a protocol (for testing), use it as-is
	var url string
	if strings.HasPrefix(s.domain, "http://") || strings.HasPrefix(s.domain, "https://") {
		url = fmt.Sprintf("%s/userinfo", s.domain)
	} else {
		url = fmt.Sprintf("https://%s/userinfo", s.domain)
	}

	// Create the HTTP request
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	// Add the access token to the Authorization header
	req.Header.Add("Authorization", "Bearer "+accessToken)

	// Execute the request
	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call userinfo endpoint: %w", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			_ = closeErr
		}
	}()

	// Check for non-200 status codes
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("userinfo endpoint returned status %d: %s", resp.StatusCode, string(body))
	}

	// Parse the response
	var userInfo UserInfo
	if err := json.NewDecoder(resp.Body).Decode(&userInfo); err != nil {
		return nil, fmt.Errorf("failed to decode userinfo response: %w", err)
	}

	return &userInfo, nil
}
