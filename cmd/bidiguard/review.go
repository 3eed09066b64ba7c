package bidiguard

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/bidiguard/bidiguard/internal/engine"
	"github.com/bidiguard/bidiguard/internal/report"
	"github.com/bidiguard/bidiguard/internal/tui"
	"github.com/bidiguard/bidiguard/internal/types"
)

func init() {
	var reviewPath string
	cmd := &cobra.Command{
		Use:   "review",
		Short: "Interactively review hits and manage the baseline",
		RunE: func(_ *cobra.Command, _ []string) error {
			abs, _ := filepath.Abs(reviewPath)
			cfg := buildConfig(abs)
			cfg.NoCache = true // review must see every hit
			res, err := engine.ScanWithStats(cfg)
			if err != nil {
				return fmt.Errorf("scan error: %w", err)
			}
			if len(res.Hits) == 0 {
				fmt.Println("No forbidden bidi/control characters found.")
				return nil
			}
			base, _ := report.LoadBaseline(filepath.Join(abs, baselineFile))
			save := func(accepted []types.Hit) error {
				return report.SaveBaseline(filepath.Join(abs, baselineFile), accepted)
			}
			return tui.Run(res.Hits, base, save)
		},
	}
	cmd.Flags().StringVarP(&reviewPath, "path", "p", ".", "path to scan")
	rootCmd.AddCommand(cmd)
}
