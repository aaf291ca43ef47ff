package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const googleTokenInfoURL = "https://oauth2.googleapis.com/tokeninfo"

// HTTPGoogleVerifier validates a Google ID token against the tokeninfo
// endpoint. Google signs the response by serving it over TLS; the audience
// check ties the token to this application's OAuth client.
type HTTPGoogleVerifier struct {
	ClientID   string
	HTTPClient *http.Client
	BaseURL    string
}

func NewHTTPGoogleVerifier(clientID string) *HTTPGoogleVerifier {
	return &HTTPGoogleVerifier{
		ClientID:   clientID,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
		BaseURL:    googleTokenInfoURL,
	}
}

type tokenInfoResponse struct {
	Audience      string `json:"aud"`
	SubjectID     string `json:"sub"`
	Email         string `json:"email"`
	EmailVerified string `json:"email_verified"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}

func (v *HTTPGoogleVerifier) Verify(ctx context.Context, idToken string) (*GoogleIdentity, error) {
	if v.ClientID == "" {
		return nil, errors.New("google client id not configured")
	}

	endpoint := v.BaseURL
	if endpoint == "" {
		endpoint = googleTokenInfoURL
	}
	requestURL := endpoint + "?id_token=" + url.QueryEscape(idToken)

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, err
	}

	client := v.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	response, err := client.Do(request)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("token verification failed with status %d", response.StatusCode)
	}

	var info tokenInfoResponse
	if err := json.NewDecoder(response.Body).Decode(&info); err != nil {
		return nil, err
	}
	if info.Audience != v.ClientID {
		return nil, errors.New("token audience mismatch")
	}
	if info.Email == "" || info.SubjectID == "" {
		return nil, errors.New("token payload incomplete")
	}

	return &GoogleIdentity{
		SubjectID: info.SubjectID,
		Email:     info.Email,
		Name:      info.Name,
		Picture:   info.Picture,
	}, nil
}
