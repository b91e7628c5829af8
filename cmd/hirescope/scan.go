package main

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/andrei/hirescope/internal/catalog"
	"github.com/andrei/hirescope/internal/config"
)

var scanAllPDF bool

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan the jobs directory and print the catalog as JSON",
	RunE:  runScan,
}

func init() {
	scanCmd.Flags().BoolVar(&scanAllPDF, "all-pdf", false, "Count every PDF as a CV, not only *-cv.pdf")
	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	scanner := catalog.New(cfg.DataRoot)
	if scanAllPDF {
		scanner.Filter = catalog.AnyPDF
	}

	folders, err := scanner.Scan(cmd.Context())
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(folders)
}
