package intake

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"sort"
	"time"

	"github.com/pkg/errors"
	"github.com/swell-scan/swell/internal/limiters"
	"github.com/swell-scan/swell/utility"
	"github.com/wal-g/tracelog"
	"golang.org/x/time/rate"
)

const (
	DefaultEndpoint         = "https://http.intake.app.stairwell.com/v2021.05/upload"
	DefaultNegotiateTimeout = 5 * time.Second
	DefaultTransferTimeout  = 20 * time.Second

	// FileFieldName is the multipart field carrying the file content.
	FileFieldName = "file"

	maxErrorBodyLength = 512
)

// HTTPClient is satisfied by *http.Client.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client speaks the two-stage intake protocol: Negotiate asks whether the
// service wants a file, Transfer posts its bytes to the returned upload URL.
// Each call carries its own deadline and is never retried.
type Client struct {
	httpClient       HTTPClient
	endpoint         string
	negotiateTimeout time.Duration
	transferTimeout  time.Duration
	limiter          *rate.Limiter
}

type Option func(*Client)

func WithHTTPClient(httpClient HTTPClient) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

func WithTimeouts(negotiate, transfer time.Duration) Option {
	return func(c *Client) {
		if negotiate > 0 {
			c.negotiateTimeout = negotiate
		}
		if transfer > 0 {
			c.transferTimeout = transfer
		}
	}
}

// WithRateLimiter throttles the transfer body; a nil limiter disables throttling.
func WithRateLimiter(limiter *rate.Limiter) Option {
	return func(c *Client) {
		c.limiter = limiter
	}
}

func NewClient(endpoint string, opts ...Option) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	client := &Client{
		httpClient:       http.DefaultClient,
		endpoint:         endpoint,
		negotiateTimeout: DefaultNegotiateTimeout,
		transferTimeout:  DefaultTransferTimeout,
	}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

func (c *Client) Negotiate(ctx context.Context, request NegotiationRequest) (*NegotiationResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, c.negotiateTimeout)
	defer cancel()

	payload, err := json.Marshal(request)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode negotiation request")
	}

	httpRequest, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, errors.Wrap(err, "failed to build negotiation request")
	}
	httpRequest.Header.Set("Content-Type", "application/json")

	body, err := c.do(httpRequest, StageNegotiate)
	if err != nil {
		return nil, err
	}

	var response NegotiationResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, errors.Wrapf(err, "failed to decode negotiation response: %s",
			utility.TruncateBody(body, maxErrorBodyLength))
	}
	return &response, nil
}

func (c *Client) Transfer(ctx context.Context, action FileAction, fileName string, content []byte) error {
	if action.UploadURL == "" {
		return errors.New("negotiation response did not provide an upload url")
	}

	ctx, cancel := context.WithTimeout(ctx, c.transferTimeout)
	defer cancel()

	form, contentType, err := encodeMultipartForm(action.Fields, fileName, content)
	if err != nil {
		return errors.Wrap(err, "failed to encode transfer form")
	}

	var formReader io.Reader = bytes.NewReader(form)
	if c.limiter != nil {
		formReader = limiters.NewReader(ctx, formReader, c.limiter)
	}

	httpRequest, err := http.NewRequestWithContext(ctx, http.MethodPost, action.UploadURL, formReader)
	if err != nil {
		return errors.Wrap(err, "failed to build transfer request")
	}
	httpRequest.ContentLength = int64(len(form))
	httpRequest.Header.Set("Content-Type", contentType)

	_, err = c.do(httpRequest, StageTransfer)
	return err
}

func (c *Client) do(request *http.Request, stage Stage) ([]byte, error) {
	tracelog.DebugLogger.Printf("%s: %s %s", stage, request.Method, request.URL.Redacted())

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, wrapRequestError(stage, err)
	}

	body, err := utility.ReadAllAndClose(response.Body, "failed to close response body")
	if err != nil {
		return nil, wrapRequestError(stage, err)
	}
	if !utility.IsSuccessfulStatus(response.StatusCode) {
		return nil, NewUnexpectedStatusError(stage, response.StatusCode, utility.TruncateBody(body, maxErrorBodyLength))
	}
	return body, nil
}

// encodeMultipartForm writes the negotiated fields sorted by name and the
// file part last, since presigned POST policies ignore fields after the file.
func encodeMultipartForm(fields map[string]string, fileName string, content []byte) ([]byte, string, error) {
	var buffer bytes.Buffer
	writer := multipart.NewWriter(&buffer)

	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if err := writer.WriteField(name, fields[name]); err != nil {
			return nil, "", err
		}
	}

	part, err := writer.CreateFormFile(FileFieldName, fileName)
	if err != nil {
		return nil, "", err
	}
	if _, err := part.Write(content); err != nil {
		return nil, "", err
	}
	if err := writer.Close(); err != nil {
		return nil, "", err
	}
	return buffer.Bytes(), writer.FormDataContentType(), nil
}
