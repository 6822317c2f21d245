package upload

import (
	"context"
	"path/filepath"

	"github.com/swell-scan/swell/internal/classify"
	"github.com/swell-scan/swell/internal/intake"
	"github.com/wal-g/tracelog"
)

//go:generate mockgen -source uploader.go -destination uploader_mock.go -package upload

// IntakeClient is the two-stage protocol as seen by the uploader.
type IntakeClient interface {
	Negotiate(ctx context.Context, request intake.NegotiationRequest) (*intake.NegotiationResponse, error)
	Transfer(ctx context.Context, action intake.FileAction, fileName string, content []byte) error
}

// Uploader sends files on behalf of a single asset.
type Uploader struct {
	assetID string
	client  IntakeClient
}

func NewUploader(assetID string, client IntakeClient) *Uploader {
	return &Uploader{assetID: assetID, client: client}
}

func (u *Uploader) AssetID() string {
	return u.assetID
}

// Upload runs both stages for path. Failures are reported in the Outcome and
// never retried.
func (u *Uploader) Upload(ctx context.Context, path string, decision classify.Decision) Outcome {
	outcome := Outcome{Path: path, Decision: decision}

	record, err := NewFileRecord(path)
	if err != nil {
		return u.fail(outcome, err)
	}
	outcome.SHA256 = record.SHA256

	response, err := u.client.Negotiate(ctx, intake.NewNegotiationRequest(u.assetID, record.Path, record.SHA256))
	if err != nil {
		return u.fail(outcome, err)
	}
	action, err := response.First()
	if err != nil {
		return u.fail(outcome, err)
	}
	outcome.Action = action.Action
	tracelog.InfoLogger.Printf("Intake API action response: %s", action.Action)

	if !action.RequiresUpload() {
		outcome.Status = StatusKnown
		return outcome
	}

	if err := u.client.Transfer(ctx, action, filepath.Base(record.Path), record.Content); err != nil {
		return u.fail(outcome, err)
	}
	tracelog.InfoLogger.Printf("Uploaded %s (%s)", record.Path, record.SHA256)
	outcome.Status = StatusUploaded
	return outcome
}

func (u *Uploader) fail(outcome Outcome, err error) Outcome {
	tracelog.ErrorLogger.Printf("Failed to upload %s: %v", outcome.Path, err)
	outcome.Status = StatusFailed
	outcome.Err = err
	return outcome
}
