package bidiguard

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/bidiguard/bidiguard/internal/engine"
	"github.com/bidiguard/bidiguard/internal/report"
)

func init() {
	cmd := &cobra.Command{
		Use:   "baseline",
		Short: "Manage the accepted-hits baseline",
	}

	update := &cobra.Command{
		Use:   "update",
		Short: "Accept every current hit into the baseline",
		RunE: func(_ *cobra.Command, _ []string) error {
			abs, _ := filepath.Abs(flagPath)
			cfg := buildConfig(abs)
			cfg.NoCache = true // baseline must see every hit
			res, err := engine.ScanWithStats(cfg)
			if err != nil {
				return err
			}
			if err := report.SaveBaseline(filepath.Join(abs, baselineFile), res.Hits); err != nil {
				return err
			}
			fmt.Fprintf(os.Stdout, "Baseline updated (%d hits accepted).\n", len(res.Hits))
			return nil
		},
	}
	update.Flags().StringVarP(&flagPath, "path", "p", ".", "path to scan")

	rootCmd.AddCommand(cmd)
	cmd.AddCommand(update)
}
