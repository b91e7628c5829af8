package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/andrei/hirescope/internal/candidates"
	"github.com/andrei/hirescope/internal/catalog"
	"github.com/andrei/hirescope/internal/config"
)

var mockSeed int

var mockCmd = &cobra.Command{
	Use:   "mock <job-slug>",
	Short: "Synthesize candidate records for one job folder and print them as JSON",
	Long:  `Synthesize the deterministic mock candidate records for a job folder. Output is identical across runs for the same folder contents.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runMock,
}

func init() {
	mockCmd.Flags().IntVar(&mockSeed, "seed", 1, "Ordinal assigned to the first candidate")
	rootCmd.AddCommand(mockCmd)
}

func runMock(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	scanner := catalog.New(cfg.DataRoot)
	folder, err := scanner.Find(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	if len(folder.CVFilenames) == 0 {
		return fmt.Errorf("no CV files in job folder %s", folder.Name)
	}

	records := make([]candidates.Record, 0, len(folder.CVFilenames))
	for i, filename := range folder.CVFilenames {
		records = append(records, candidates.Synthesize(filename, folder.Name, folder.Slug, mockSeed+i))
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}
