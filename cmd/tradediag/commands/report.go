package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tradediag/internal/app"
	"tradediag/internal/benchmark"
)

var reportCmd = &cobra.Command{
	Use:   "report <ledger.csv> <trades.csv>",
	Short: "Run one diagnosis from local files and print the report as JSON",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ledger, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open ledger file: %w", err)
		}
		defer ledger.Close()

		trades, err := os.Open(args[1])
		if err != nil {
			return fmt.Errorf("failed to open trades file: %w", err)
		}
		defer trades.Close()

		service := app.DiagnosisService{
			Benchmark: benchmark.NewMemo(benchmark.YahooSource{}),
			Config:    pipelineConfig(),
		}
		report, err := service.Run(cmd.Context(), ledger, trades)
		if err != nil {
			return err
		}

		out, err := json.MarshalIndent(report, "", "    ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))

		return nil
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
}
