package bidiguard

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/bidiguard/bidiguard/internal/config"
	"github.com/bidiguard/bidiguard/internal/engine"
	"github.com/bidiguard/bidiguard/internal/git"
	"github.com/bidiguard/bidiguard/internal/report"
	"github.com/bidiguard/bidiguard/internal/types"
	"github.com/bidiguard/bidiguard/internal/update"
)

const baselineFile = "bidiguard.baseline.json"

var (
	flagPath       string
	flagStaged     bool
	flagInclude    string
	flagExclude    string
	flagExtensions string
	flagMaxBytes   int64
	flagEnable     string
	flagDisable    string
	flagTable      bool
)

func init() {
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Scan files for forbidden codepoints",
		RunE:  runScan,
	}
	rootCmd.AddCommand(cmd)

	cmd.Flags().StringVarP(&flagPath, "path", "p", ".", "path to scan")
	cmd.Flags().BoolVar(&flagStaged, "staged", false, "scan staged changes instead of the working tree")
	cmd.Flags().StringVar(&flagInclude, "include", "", "comma-separated include globs")
	cmd.Flags().StringVar(&flagExclude, "exclude", "", "comma-separated exclude globs")
	cmd.Flags().StringVar(&flagExtensions, "extensions", "", "extra file extensions to scan (comma-separated)")
	cmd.Flags().Int64Var(&flagMaxBytes, "max-bytes", 0, "skip files larger than this (default 1 MiB, negative for no limit)")
	cmd.Flags().StringVar(&flagEnable, "enable", "", "only run these rules (comma-separated IDs)")
	cmd.Flags().StringVar(&flagDisable, "disable", "", "disable these rules (comma-separated IDs)")
	cmd.Flags().BoolVar(&flagTable, "table", false, "output a per-file summary table")
}

func buildConfig(root string) engine.Config {
	// CLI > local > global
	var gcfg, lcfg config.FileConfig
	if c, err := config.LoadGlobal(); err == nil {
		gcfg = c
	}
	if c, err := config.LoadLocal(root); err == nil {
		lcfg = c
	}
	if v := pickString("", lcfg.FailOn, gcfg.FailOn); v != "" && !rootCmd.PersistentFlags().Changed("fail-on") {
		flagFailOn = v
	}
	flagNoColor = pickBool(flagNoColor, lcfg.NoColor, gcfg.NoColor)
	return engine.Config{
		Root:         root,
		IncludeGlobs: pickString(flagInclude, lcfg.Include, gcfg.Include),
		ExcludeGlobs: pickString(flagExclude, lcfg.Exclude, gcfg.Exclude),
		Extensions:   pickString(flagExtensions, lcfg.Extensions, gcfg.Extensions),
		MaxBytes:     pickInt64(flagMaxBytes, lcfg.MaxBytes, gcfg.MaxBytes),
		EnableRules:  pickString(flagEnable, lcfg.Enable, gcfg.Enable),
		DisableRules: pickString(flagDisable, lcfg.Disable, gcfg.Disable),
		Staged:       flagStaged,
		NoCache:      pickBool(flagNoCache, lcfg.NoCache, gcfg.NoCache),
		Strict:       pickBool(flagStrict, lcfg.Strict, gcfg.Strict),
	}
}

func runScan(_ *cobra.Command, _ []string) error {
	abs, _ := filepath.Abs(flagPath)
	cfg := buildConfig(abs)

	if !flagJSON && !flagSARIF {
		if !flagNoUpdateCheck {
			if latest, newer, _ := update.Check(version, false); newer && latest != "" {
				fmt.Fprintf(os.Stderr, "(new version available: v%s)  run 'bidiguard update' to upgrade\n", latest)
			}
		}
		active := engine.EnabledRuleIDs(cfg.EnableRules, cfg.DisableRules)
		fmt.Fprintf(os.Stderr, "Scanning %s with %d rule(s)...\n", abs, len(active))
	}

	res, err := engine.ScanWithStats(cfg)
	if err != nil {
		return fmt.Errorf("scan error: %w", err)
	}

	baseline, _ := report.LoadBaseline(filepath.Join(abs, baselineFile))
	newHits := report.FilterNewHits(res.Hits, baseline)
	if newHits == nil {
		newHits = []types.Hit{} // no `null` in JSON
	}

	opts := report.PrintOptions{
		NoColor:      flagNoColor,
		Duration:     res.Duration,
		FilesScanned: res.FilesScanned,
		ReadErrors:   res.ReadErrors,
	}
	switch {
	case flagSARIF:
		if err := report.WriteSARIF(os.Stdout, newHits, version, git.RepoMetadata(abs)); err != nil {
			return fmt.Errorf("sarif error: %w", err)
		}
	case flagJSON:
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(newHits); err != nil {
			return err
		}
	case flagTable:
		report.PrintTable(os.Stdout, newHits, opts)
	default:
		report.PrintText(os.Stdout, newHits, opts)
	}

	if report.ShouldFail(newHits, flagFailOn) {
		fmt.Fprintf(os.Stderr, "Found %d forbidden bidi/control character(s).\n", len(newHits))
		os.Exit(1)
	}
	return nil
}
