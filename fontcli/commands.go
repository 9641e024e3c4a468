package main

import (
	"fmt"

	"github.com/Sansui233/Fontscape"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan font directories and print a summary",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := runScan(cmd.Context())
		if err != nil {
			return err
		}
		if opts.json {
			return writeJSON(cmd.OutOrStdout(), res.State)
		}
		printSummary(res)
		return nil
	},
}

var familiesCmd = &cobra.Command{
	Use:   "families",
	Short: "List CSS font families",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := runScan(cmd.Context())
		if err != nil {
			return err
		}
		if opts.json {
			return writeJSON(cmd.OutOrStdout(), res.State.Families())
		}
		renderTable(familyData(res.State.Families()))
		return nil
	},
}

var familyCmd = &cobra.Command{
	Use:   "family NAME",
	Short: "Show a CSS font family and its fonts",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := runScan(cmd.Context())
		if err != nil {
			return err
		}
		fam, ok := res.State.Family(args[0])
		if !ok {
			return fmt.Errorf("no font family %q", args[0])
		}
		fonts := res.State.FontsByCssFamily(fam.Name)
		if opts.json {
			return writeJSON(cmd.OutOrStdout(), struct {
				Family fontscape.CssFontFamily `json:"family"`
				Fonts  []fontscape.FontRecord  `json:"fonts"`
			}{fam, fonts})
		}
		printFamily(fam, fonts)
		return nil
	},
}

var fontCmd = &cobra.Command{
	Use:   "font ID",
	Short: "Show a font record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := runScan(cmd.Context())
		if err != nil {
			return err
		}
		rec, ok := res.State.Font(args[0])
		if !ok {
			return fmt.Errorf("no font with id %s", args[0])
		}
		if opts.json {
			return writeJSON(cmd.OutOrStdout(), rec)
		}
		renderTable(fontDetailData(rec))
		return nil
	},
}

var checkCmd = &cobra.Command{
	Use:   "check FILE TEXT",
	Short: "Check which characters of a text the faces of a font file cover",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		checks, err := checkFile(args[0], args[1])
		if err != nil {
			return err
		}
		if opts.json {
			return writeJSON(cmd.OutOrStdout(), checks)
		}
		renderTable(checkData(checks))
		return nil
	},
}

var inspectCmd = &cobra.Command{
	Use:   "inspect FILE",
	Short: "Show tables, names and parse issues of a font file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		faces, err := inspectFile(args[0])
		if err != nil {
			return err
		}
		if opts.json {
			return writeJSON(cmd.OutOrStdout(), faces)
		}
		showIssues, _ := cmd.Flags().GetBool("errors")
		for _, f := range faces {
			printInspection(f, showIssues)
		}
		return nil
	},
}

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Scan font directories and enter interactive mode",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		pterm.Info.Println("Welcome to fontscape")
		intp, err := newIntp(cmd.Context())
		if err != nil {
			return err
		}
		defer intp.repl.Close()
		pterm.Info.Println("Quit with <ctrl>D")
		intp.REPL()
		return nil
	},
}
