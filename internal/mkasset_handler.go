package internal

import (
	"context"
	"fmt"
	"io"

	"github.com/swell-scan/swell/internal/assets"
)

type AssetCreator interface {
	Create(ctx context.Context, label, environmentID, apiKey string) (*assets.Result, error)
}

// HandleMakeAsset prints either the new asset ID or whatever the service
// answered. Neither outcome is treated as a command failure.
func HandleMakeAsset(ctx context.Context, creator AssetCreator, label, environmentID, apiKey string,
	output io.Writer) {
	result, err := creator.Create(ctx, label, environmentID, apiKey)
	switch {
	case err != nil:
		fmt.Fprintf(output, "Error: %v\n", err)
	case result.Created:
		fmt.Fprintf(output, "Created asset ID: %s\n", result.AssetID)
	default:
		fmt.Fprintf(output, "Error: %s\n", result.Body)
	}
}
