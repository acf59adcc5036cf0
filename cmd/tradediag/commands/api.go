package commands

import (
	"github.com/spf13/cobra"

	"tradediag/api"
	"tradediag/internal/app"
	"tradediag/internal/benchmark"
)

var apiPort int

var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Serve the diagnosis HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		handler := api.ApiHandler{
			DiagnosisService: app.DiagnosisService{
				Benchmark: benchmark.NewMemo(benchmark.YahooSource{}),
				Config:    pipelineConfig(),
			},
		}
		return handler.StartApi(apiPort)
	},
}

func init() {
	apiCmd.Flags().IntVar(&apiPort, "port", 3009, "port to listen on")
	rootCmd.AddCommand(apiCmd)
}
