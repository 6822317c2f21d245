package swell

import (
	"github.com/spf13/cobra"
)

// FlagsCmd represents the flags command
var FlagsCmd = &cobra.Command{
	Use:                   "flags",
	Short:                 "Display the list of available global flags for all swell commands",
	DisableFlagsInUseLine: true,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Usage()
	},
}

func init() {
	FlagsCmd.SetUsageTemplate(flagsUsageTemplate)
	FlagsCmd.SetHelpTemplate(flagsHelpTemplate)
}

const flagsHelpTemplate = `{{with (or .Long .Short)}}{{. | trimTrailingWhitespaces}}{{end}}

Usage:
{{.UseLine}}

{{.Usage}}`
const flagsUsageTemplate = `Global Flags:
{{.InheritedFlags.FlagUsages | trimTrailingWhitespaces}}
`
