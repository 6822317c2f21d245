package swell

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/swell-scan/swell/internal"
	"github.com/wal-g/tracelog"
)

const (
	UploadShortDescription = "Scans a directory and uploads executables and scripts"
	UploadUsage            = "Usage: swell upload --path <directory>"

	PathFlag   = "path"
	PrettyFlag = "pretty"
	JSONFlag   = "json"
)

var (
	uploadCmd = &cobra.Command{
		Use:   "upload",
		Short: UploadShortDescription,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			assetID, err := internal.AssertAssetIDSet()
			tracelog.ErrorLogger.FatalOnError(err)

			if uploadPath == "" {
				fmt.Fprintln(cmd.OutOrStdout(), UploadUsage)
				return
			}

			classifier, err := internal.ConfigureClassifier()
			tracelog.ErrorLogger.FatalOnError(err)
			uploader, err := internal.ConfigureUploader(assetID)
			tracelog.ErrorLogger.FatalOnError(err)

			report, err := internal.HandleUploadPath(cmd.Context(), uploadPath, classifier, uploader)
			if err != nil {
				if cmd.Context().Err() == nil {
					tracelog.ErrorLogger.FatalError(err)
				}
				tracelog.WarningLogger.Printf("Upload interrupted: %v", err)
			}
			internal.PushMetrics()

			output := cmd.OutOrStdout()
			switch {
			case jsonOutput:
				tracelog.ErrorLogger.FatalOnError(internal.WriteUploadReportAsJSON(report, output, prettyOutput))
				fmt.Fprintln(output)
			case prettyOutput:
				internal.WritePrettyUploadReport(report, output)
			default:
				internal.WriteUploadReport(report, output)
			}
		},
	}
	uploadPath   = ""
	prettyOutput = false
	jsonOutput   = false
)

func init() {
	SwellCmd.AddCommand(uploadCmd)

	uploadCmd.Flags().StringVar(&uploadPath, PathFlag, "", "Directory to scan recursively")
	uploadCmd.Flags().BoolVar(&prettyOutput, PrettyFlag, false, "Prints more readable output")
	uploadCmd.Flags().BoolVar(&jsonOutput, JSONFlag, false, "Prints output in json format")
}
