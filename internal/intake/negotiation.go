package intake

import "github.com/pkg/errors"

// ActionUpload asks the client to transfer the file content.
// Any other action means the intake service already has what it needs.
const ActionUpload = "UPLOAD"

type Asset struct {
	ID string `json:"id"`
}

type Identifier struct {
	SHA256 string `json:"sha256"`
}

type ExpectedAttributes struct {
	Identifiers []Identifier `json:"identifiers"`
}

type FileRequest struct {
	FilePath           string             `json:"filePath"`
	ExpectedAttributes ExpectedAttributes `json:"expected_attributes"`
}

type NegotiationRequest struct {
	Asset Asset         `json:"asset"`
	Files []FileRequest `json:"files"`
}

func NewNegotiationRequest(assetID, filePath, sha256 string) NegotiationRequest {
	return NegotiationRequest{
		Asset: Asset{ID: assetID},
		Files: []FileRequest{
			{
				FilePath: filePath,
				ExpectedAttributes: ExpectedAttributes{
					Identifiers: []Identifier{{SHA256: sha256}},
				},
			},
		},
	}
}

type FileAction struct {
	Action    string            `json:"action"`
	Fields    map[string]string `json:"fields,omitempty"`
	UploadURL string            `json:"uploadUrl,omitempty"`
}

func (a FileAction) RequiresUpload() bool {
	return a.Action == ActionUpload
}

type NegotiationResponse struct {
	FileActions []FileAction `json:"fileActions"`
}

// First returns the action for the single file a request carries.
func (r *NegotiationResponse) First() (FileAction, error) {
	if r == nil || len(r.FileActions) == 0 {
		return FileAction{}, errors.New("negotiation response contains no file actions")
	}
	return r.FileActions[0], nil
}
