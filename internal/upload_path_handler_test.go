package internal_test

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swell-scan/swell/internal"
	"github.com/swell-scan/swell/internal/classify"
	"github.com/swell-scan/swell/internal/intake"
	"github.com/swell-scan/swell/internal/upload"
)

func TestHandleUploadPath_OnlySelectedFilesAreUploaded(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	root := t.TempDir()
	createFiles(t, root, "keep.sh", "ignore.txt")
	keep := filepath.Join(root, "keep.sh")
	ignore := filepath.Join(root, "ignore.txt")

	classifier := internal.NewMockFileClassifier(ctrl)
	classifier.EXPECT().Classify(gomock.Any(), keep).Return(classify.Forced)
	classifier.EXPECT().Classify(gomock.Any(), ignore).Return(classify.Blocked)

	uploader := internal.NewMockFileUploader(ctrl)
	uploader.EXPECT().
		Upload(gomock.Any(), keep, classify.Forced).
		Return(upload.Outcome{Path: keep, Decision: classify.Forced, Status: upload.StatusUploaded})

	report, err := internal.HandleUploadPath(context.Background(), root, classifier, uploader)
	require.NoError(t, err)
	assert.Len(t, report.Outcomes, 2)
	assert.Equal(t, internal.UploadSummary{Scanned: 2, Selected: 1, Uploaded: 1}, report.Summary())
}

func TestHandleUploadPath_FailureDoesNotStopWalk(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	root := t.TempDir()
	createFiles(t, root, "a.exe", filepath.Join("sub", "b.exe"))

	classifier := internal.NewMockFileClassifier(ctrl)
	classifier.EXPECT().Classify(gomock.Any(), gomock.Any()).Return(classify.Forced).Times(2)

	uploader := internal.NewMockFileUploader(ctrl)
	uploader.EXPECT().
		Upload(gomock.Any(), filepath.Join(root, "a.exe"), classify.Forced).
		Return(upload.Outcome{Status: upload.StatusFailed, Err: intake.NewTimeoutError(intake.StageNegotiate, context.DeadlineExceeded)})
	uploader.EXPECT().
		Upload(gomock.Any(), filepath.Join(root, "sub", "b.exe"), classify.Forced).
		Return(upload.Outcome{Status: upload.StatusKnown})

	report, err := internal.HandleUploadPath(context.Background(), root, classifier, uploader)
	require.NoError(t, err)
	assert.Equal(t, internal.UploadSummary{Scanned: 2, Selected: 2, Known: 1, Failed: 1}, report.Summary())
}

type intakeRecorder struct {
	mu        sync.Mutex
	negotiate []intake.NegotiationRequest
	uploaded  map[string]string
}

func newIntakeServer(t *testing.T, recorder *intakeRecorder) *httptest.Server {
	mux := http.NewServeMux()
	server := httptest.NewServer(mux)

	mux.HandleFunc("/negotiate", func(w http.ResponseWriter, r *http.Request) {
		var request intake.NegotiationRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&request))
		recorder.mu.Lock()
		recorder.negotiate = append(recorder.negotiate, request)
		recorder.mu.Unlock()

		response := intake.NegotiationResponse{FileActions: []intake.FileAction{{
			Action:    intake.ActionUpload,
			UploadURL: server.URL + "/transfer",
			Fields:    map[string]string{"key": request.Files[0].ExpectedAttributes.Identifiers[0].SHA256},
		}}}
		require.NoError(t, json.NewEncoder(w).Encode(response))
	})
	mux.HandleFunc("/transfer", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		file, header, err := r.FormFile(intake.FileFieldName)
		require.NoError(t, err)
		content, err := io.ReadAll(file)
		require.NoError(t, err)

		sum := sha256.Sum256(content)
		assert.Equal(t, r.FormValue("key"), hex.EncodeToString(sum[:]))

		recorder.mu.Lock()
		recorder.uploaded[header.Filename] = hex.EncodeToString(sum[:])
		recorder.mu.Unlock()
		w.WriteHeader(http.StatusNoContent)
	})
	return server
}

// selectedInWalkOrder lists the given names in the order the directory yields them.
func selectedInWalkOrder(t *testing.T, root string, names ...string) []string {
	dir, err := os.Open(root)
	require.NoError(t, err)
	defer dir.Close()
	entries, err := dir.Readdirnames(-1)
	require.NoError(t, err)

	selected := map[string]bool{}
	for _, name := range names {
		selected[name] = true
	}
	var ordered []string
	for _, entry := range entries {
		if selected[entry] {
			ordered = append(ordered, filepath.Join(root, entry))
		}
	}
	return ordered
}

func TestHandleUploadPath_EndToEnd(t *testing.T) {
	root := t.TempDir()
	files := map[string][]byte{
		"notes.txt": []byte("#!/bin/sh\necho not collected\n"),
		"tool.exe":  []byte("MZ not really a PE"),
		"run":       []byte("#!/bin/sh\necho collected\n"),
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(root, name), content, 0755))
	}

	recorder := &intakeRecorder{uploaded: map[string]string{}}
	server := newIntakeServer(t, recorder)
	defer server.Close()

	classifier := classify.NewClassifier(nil, classify.NewMimeProbe())
	uploader := upload.NewUploader("ASSET-E2E", intake.NewClient(server.URL+"/negotiate"))

	report, err := internal.HandleUploadPath(context.Background(), root, classifier, uploader)
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		"tool.exe": upload.Digest(files["tool.exe"]),
		"run":      upload.Digest(files["run"]),
	}, recorder.uploaded)

	require.Len(t, recorder.negotiate, 2)
	var negotiated []string
	for _, request := range recorder.negotiate {
		assert.Equal(t, "ASSET-E2E", request.Asset.ID)
		negotiated = append(negotiated, request.Files[0].FilePath)
	}
	assert.Equal(t, selectedInWalkOrder(t, root, "tool.exe", "run"), negotiated)

	assert.Equal(t, internal.UploadSummary{Scanned: 3, Selected: 2, Uploaded: 2}, report.Summary())
	for _, outcome := range report.Outcomes {
		switch filepath.Base(outcome.Path) {
		case "notes.txt":
			assert.Equal(t, classify.Blocked, outcome.Decision)
			assert.Equal(t, upload.StatusSkipped, outcome.Status)
		case "tool.exe":
			assert.Equal(t, classify.Forced, outcome.Decision)
		case "run":
			assert.Equal(t, classify.TypeMatchScript, outcome.Decision)
		}
	}
}
