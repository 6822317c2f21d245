package swell

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/swell-scan/swell/internal"
)

const (
	MakeAssetShortDescription = "Creates an asset to upload files for"
	MakeAssetUsage            = "Usage: swell mkasset --name <label> --env_id <environment id> --api_key <api key>"

	NameFlag   = "name"
	EnvIDFlag  = "env_id"
	APIKeyFlag = "api_key"
)

var (
	mkassetCmd = &cobra.Command{
		Use:   "mkasset",
		Short: MakeAssetShortDescription,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			if assetName == "" || environmentID == "" || apiKey == "" {
				fmt.Fprintln(cmd.OutOrStdout(), MakeAssetUsage)
				return
			}
			internal.HandleMakeAsset(cmd.Context(), internal.ConfigureAssetsClient(),
				assetName, environmentID, apiKey, cmd.OutOrStdout())
		},
	}
	assetName     = ""
	environmentID = ""
	apiKey        = ""
)

func init() {
	SwellCmd.AddCommand(mkassetCmd)

	mkassetCmd.Flags().StringVar(&assetName, NameFlag, "", "Label of the new asset")
	mkassetCmd.Flags().StringVar(&environmentID, EnvIDFlag, "", "Environment the asset belongs to")
	mkassetCmd.Flags().StringVar(&apiKey, APIKeyFlag, "", "API key sent as the Authorization header")
}
