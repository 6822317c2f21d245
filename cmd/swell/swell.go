package swell

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/swell-scan/swell/internal"
)

const SwellShortDescription = "Collects executables and scripts from a host and sends them to intake"

// These variables are here only to show current version. They are set in makefile during build process
var SwellVersion = "devel"
var GitRevision = "devel"
var BuildDate = "devel"

var SwellCmd = &cobra.Command{
	Use:     "swell",
	Short:   SwellShortDescription,
	Version: SwellVersion + "\t" + GitRevision + "\t" + BuildDate,
}

// ExecuteContext adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the SwellCmd.
// Cancelling ctx aborts the request in flight and stops the walk.
func ExecuteContext(ctx context.Context) {
	if err := SwellCmd.ExecuteContext(ctx); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(internal.InitConfig, internal.Configure)

	internal.AddConfigFlags(SwellCmd)
	SwellCmd.InitDefaultVersionFlag()
	SwellCmd.AddCommand(FlagsCmd)
}
