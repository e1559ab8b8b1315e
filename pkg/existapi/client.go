package existapi

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	wellnessdomain "wellness-backend/internal/wellness/domain"
)

// LookbackDays is the fixed window of recent values fetched per attribute.
const LookbackDays = 7

const bodyPreviewLimit = 512

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

type attributesResponse struct {
	Results []wellnessdomain.AttributeRecord `json:"results"`
}

// FetchAttributesWithValues retrieves the given attributes with their
// recent values in a single request.
func (c *Client) FetchAttributesWithValues(ctx context.Context, accessToken string, attributes []string) ([]wellnessdomain.AttributeRecord, error) {
	query := url.Values{}
	query.Set("days", strconv.Itoa(LookbackDays))
	query.Set("attributes", strings.Join(attributes, ","))

	body, err := c.get(ctx, "/attributes/with-values/", query, accessToken)
	if err != nil {
		return nil, err
	}

	var parsed attributesResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, &NetworkError{Err: err}
	}

	return parsed.Results, nil
}

// FetchAvailableAttributes retrieves the provider's attribute catalog
// unmodified, for the diagnostics endpoint.
func (c *Client) FetchAvailableAttributes(ctx context.Context, accessToken string) (json.RawMessage, error) {
	body, err := c.get(ctx, "/attributes/", nil, accessToken)
	if err != nil {
		return nil, err
	}
	return json.RawMessage(body), nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, accessToken string) ([]byte, error) {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		preview := string(body)
		if len(preview) > bodyPreviewLimit {
			preview = preview[:bodyPreviewLimit]
		}
		log.Printf("[ERROR] exist.io GET %s failed: status %d, body: %s", path, resp.StatusCode, preview)
		return nil, &UpstreamError{StatusCode: resp.StatusCode, Body: preview}
	}

	return body, nil
}
