package web

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/reuben-idan/alx-listing-app-04/internal/model"
)

// APIError is a failure the review endpoint itself reported through its
// envelope, as opposed to a transport or decoding fault.
type APIError struct {
	Message string
}

func (e *APIError) Error() string { return e.Message }

// ReviewsClient fetches review lists from the review endpoint. It is the
// server-side counterpart of the browser fetch the review section used to do.
type ReviewsClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewReviewsClient(baseURL string) *ReviewsClient {
	return &ReviewsClient{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// List returns the reviews for a property. Envelope failures come back as
// *APIError carrying the endpoint's message ("" when it sent none).
func (c *ReviewsClient) List(ctx context.Context, propertyID string) ([]model.Review, error) {
	endpoint := fmt.Sprintf("%s/api/properties/%s/reviews", c.BaseURL, url.PathEscape(propertyID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("ReviewsClient.List: %w", err)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ReviewsClient.List: %w", err)
	}
	defer resp.Body.Close()

	var envelope model.ReviewAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("ReviewsClient.List: decode: %w", err)
	}

	if !envelope.Success {
		return nil, &APIError{Message: envelope.Message}
	}
	return envelope.Data, nil
}
