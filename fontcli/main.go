/*
Command fontcli lists and inspects the fonts installed on a system.

	fontcli scan                   scan font directories, print a summary
	fontcli families               list CSS font families
	fontcli family "Noto Sans"     show a family and its fonts
	fontcli font ID                show a single font record
	fontcli check FILE TEXT        check which characters of TEXT a font file covers
	fontcli inspect FILE           show tables and names of a font file
	fontcli shell                  interactive mode

Font directories are the operating system's font directories plus the
directories given with --dir or in the configuration file. With --json,
results are printed as JSON.
*/
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/Sansui233/Fontscape/internal/config"
	"github.com/Sansui233/Fontscape/scan"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// tracer traces with key 'fontscape.cli'
func tracer() tracing.Trace {
	return tracing.Select("fontscape.cli")
}

// options holds the persistent command line flags.
type options struct {
	configPath string
	trace      string
	dirs       []string
	noDefaults bool
	workers    int
	json       bool
}

var opts options

// cfg is the effective configuration: config file overridden by flags.
var cfg = config.Default()

func main() {
	initDisplay()
	if err := rootCmd.Execute(); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "fontcli",
	Short:         "List and inspect installed fonts",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		cfg = c
		return setupTracing(cfg)
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "Configuration file (TOML)")
	flags.StringVar(&opts.trace, "trace", "", "Trace level [Debug|Info|Error]")
	flags.StringArrayVar(&opts.dirs, "dir", nil, "Additional font directory (repeatable)")
	flags.BoolVar(&opts.noDefaults, "no-defaults", false, "Do not scan the system font directories")
	flags.IntVar(&opts.workers, "workers", 0, "Number of font files decoded in parallel")
	flags.BoolVar(&opts.json, "json", false, "Print results as JSON")

	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(familiesCmd)
	rootCmd.AddCommand(familyCmd)
	rootCmd.AddCommand(fontCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().Bool("errors", false, "List all parse errors and warnings")
	rootCmd.AddCommand(shellCmd)
}

// loadConfig reads the configuration file and applies flags on top of it.
// Without --config, the user's config file is read if it exists.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	c := config.Default()
	path := opts.configPath
	if path == "" {
		if p, err := config.DefaultPath(); err == nil {
			if _, err := os.Stat(p); err == nil {
				path = p
			}
		}
	}
	if path != "" {
		var err error
		if c, err = config.ReadFromFile(path); err != nil {
			return nil, err
		}
		tracer().Debugf("configuration read from %s", path)
	}
	flags := cmd.Flags()
	if flags.Changed("trace") {
		c.Trace.Level = opts.trace
	}
	if flags.Changed("workers") {
		c.Workers = opts.workers
	}
	if opts.noDefaults {
		c.UseDefaultDirs = false
	}
	c.FontDirs = append(c.FontDirs, opts.dirs...)
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	return c, nil
}

// setupTracing installs trace2go tracers for all packages of this module.
func setupTracing(c *config.Config) error {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	if err := trace2go.ConfigureRoot(c.TraceConf(), "trace", trace2go.ReplaceTracers(true)); err != nil {
		return fmt.Errorf("configuring tracing: %w", err)
	}
	tracing.SetTraceSelector(trace2go.Selector())
	level := tracing.TraceLevelFromString(c.Trace.Level)
	for _, key := range config.TraceKeys {
		tracing.Select(key).SetTraceLevel(level)
	}
	tracer().Infof("trace level is %s", c.Trace.Level)
	return nil
}

// runScan scans the configured font directories.
func runScan(ctx context.Context) (*scan.Result, error) {
	dirs := cfg.Dirs(scan.DefaultFontDirs())
	if len(dirs) == 0 {
		return nil, errors.New("no font directories to scan")
	}
	s := scan.NewScanner(
		scan.WithWorkers(cfg.Workers),
		scan.WithMaxErrorSummaries(cfg.MaxErrorSummaries),
	)
	return s.ScanDirs(ctx, dirs)
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}
