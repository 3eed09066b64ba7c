package bidiguard

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagJSON          bool
	flagSARIF         bool
	flagFailOn        string
	flagNoColor       bool
	flagNoCache       bool
	flagStrict        bool
	flagNoUpdateCheck bool

	version = "0.1.0"
)

// rootCmd is the base Cobra command for the Bidiguard CLI.
var rootCmd = &cobra.Command{
	Use:           "bidiguard",
	Short:         "Find bidirectional control characters in your source tree",
	Long:          "Bidiguard scans source, config and markup files for Unicode bidirectional control and invisible formatting characters that can disguise malicious code (Trojan Source), and fails the build when it finds any.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the Bidiguard CLI. It should be called by the main package.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "emit JSON")
	rootCmd.PersistentFlags().BoolVar(&flagSARIF, "sarif", false, "emit SARIF 2.1.0")
	rootCmd.PersistentFlags().StringVar(&flagFailOn, "fail-on", "low", "fail on low|medium|high (low = any hit)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colorized output")
	rootCmd.PersistentFlags().BoolVar(&flagNoCache, "no-cache", false, "disable the clean-file scan cache")
	rootCmd.PersistentFlags().BoolVar(&flagStrict, "strict", false, "treat unreadable files as a fatal error instead of skipping")
	rootCmd.PersistentFlags().BoolVar(&flagNoUpdateCheck, "no-update-check", false, "disable update check")
}
