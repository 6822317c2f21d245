package internal

import (
	"context"

	"github.com/swell-scan/swell/internal/classify"
	"github.com/swell-scan/swell/internal/upload"
	"github.com/swell-scan/swell/utility"
	"github.com/wal-g/tracelog"
)

//go:generate mockgen -source upload_path_handler.go -destination upload_path_handler_mock.go -package internal

type FileClassifier interface {
	Classify(ctx context.Context, path string) classify.Decision
}

type FileUploader interface {
	Upload(ctx context.Context, path string, decision classify.Decision) upload.Outcome
}

// HandleUploadPath walks root and uploads every file the classifier selects,
// one at a time. Per-file failures are recorded in the report and never stop
// the walk.
func HandleUploadPath(ctx context.Context, root string, classifier FileClassifier,
	uploader FileUploader) (*UploadReport, error) {
	report := NewUploadReport(utility.AbsolutePath(root))

	err := WalkTopDown(ctx, root, func(path string) {
		tracelog.InfoLogger.Println(path)

		decision := classifier.Classify(ctx, path)
		outcome := upload.Skipped(path, decision)
		if decision.ShouldUpload() {
			tracelog.InfoLogger.Printf("Found interesting file %s (%s)", path, decision)
			outcome = uploader.Upload(ctx, path, decision)
		}

		SwellMetrics.observe(outcome)
		report.Add(outcome)
	})
	return report, err
}
