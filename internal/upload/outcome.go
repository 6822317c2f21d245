package upload

import "github.com/swell-scan/swell/internal/classify"

type Status string

const (
	StatusUploaded Status = "uploaded"
	StatusKnown    Status = "known"
	StatusFailed   Status = "failed"
	StatusSkipped  Status = "skipped"
)

// Outcome is the per-file result of a run.
type Outcome struct {
	Path     string
	Decision classify.Decision
	SHA256   string
	Action   string
	Status   Status
	Err      error
}

func Skipped(path string, decision classify.Decision) Outcome {
	return Outcome{Path: path, Decision: decision, Status: StatusSkipped}
}

func (o Outcome) ErrorText() string {
	if o.Err == nil {
		return ""
	}
	return o.Err.Error()
}
