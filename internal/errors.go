package internal

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/wal-g/tracelog"
)

// UnsetAssetIDError is returned when no asset is configured for an upload.
type UnsetAssetIDError struct {
	error
}

func NewUnsetAssetIDError() UnsetAssetIDError {
	return UnsetAssetIDError{errors.Errorf(
		"asset ID is not set: create an asset with 'swell mkasset', then pass it with --asset-id or %s",
		AssetIDSetting)}
}

func (err UnsetAssetIDError) Error() string {
	return fmt.Sprintf(tracelog.GetErrorFormatter(), err.error)
}
