package assets

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/swell-scan/swell/utility"
	"github.com/wal-g/tracelog"
)

const (
	DefaultEndpoint = "https://app.stairwell.com/v202112/assets"
	DefaultTimeout  = 30 * time.Second

	// createdMarker is present in the body of every successful creation.
	createdMarker = "create_time"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type EnvironmentID struct {
	ID string `json:"id"`
}

type CreateRequest struct {
	Label         string        `json:"label"`
	EnvironmentID EnvironmentID `json:"environment_id"`
}

type assetIdentifier struct {
	ID struct {
		ID string `json:"id"`
	} `json:"id"`
}

// Result carries the raw response body so callers can print it verbatim
// when the service refuses the request.
type Result struct {
	AssetID string
	Body    string
	Created bool
}

type Client struct {
	httpClient HTTPClient
	endpoint   string
	timeout    time.Duration
}

func NewClient(endpoint string, httpClient HTTPClient) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{httpClient: httpClient, endpoint: endpoint, timeout: DefaultTimeout}
}

// Create registers a new asset. A non-nil error means the request never
// produced a response; a refused request returns a Result with Created unset.
func (c *Client) Create(ctx context.Context, label, environmentID, apiKey string) (*Result, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	payload, err := json.Marshal(CreateRequest{Label: label, EnvironmentID: EnvironmentID{ID: environmentID}})
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode asset request")
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, errors.Wrap(err, "failed to build asset request")
	}
	request.Header.Set("Authorization", apiKey)
	request.Header.Set("Content-Type", "application/json")

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, errors.Wrap(err, "asset request failed")
	}
	body, err := utility.ReadAllAndClose(response.Body, "failed to close asset response body")
	if err != nil {
		return nil, errors.Wrap(err, "failed to read asset response")
	}
	tracelog.DebugLogger.Printf("asset endpoint answered %d: %s", response.StatusCode, utility.TruncateBody(body, 512))

	result := &Result{Body: string(body)}
	if !strings.Contains(result.Body, createdMarker) {
		return result, nil
	}

	var identifier assetIdentifier
	if err := json.Unmarshal(body, &identifier); err != nil {
		tracelog.WarningLogger.Printf("asset response is not valid JSON: %v", err)
		return result, nil
	}
	if identifier.ID.ID == "" {
		return result, nil
	}
	result.AssetID = identifier.ID.ID
	result.Created = true
	return result, nil
}
