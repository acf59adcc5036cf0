package commands

import (
	"github.com/spf13/cobra"

	"tradediag/internal/app"
)

var (
	benchmarkSymbol   string
	cashFlowThreshold float64
)

var rootCmd = &cobra.Command{
	Use:   "tradediag",
	Short: "Risk diagnostics for futures trading account exports",
	Long: `tradediag ingests a daily account-equity ledger and a per-trade
P&L log, aligns the account against a market index, and reports Beta,
Alpha, Sharpe and max drawdown plus profit/loss leaderboards.

Examples:
  tradediag api
  tradediag report balances.csv trades.csv`,
}

// Execute is called by main.main() and runs the selected subcommand.
func Execute() error {
	return rootCmd.Execute()
}

func pipelineConfig() app.Config {
	cfg := app.DefaultConfig()
	if benchmarkSymbol != "" {
		cfg.BenchmarkSymbol = benchmarkSymbol
	}
	if cashFlowThreshold > 0 {
		cfg.CashFlowThreshold = cashFlowThreshold
	}
	return cfg
}

func init() {
	rootCmd.PersistentFlags().StringVar(&benchmarkSymbol, "symbol", "", "benchmark index symbol (default ^TWII)")
	rootCmd.PersistentFlags().Float64Var(&cashFlowThreshold, "threshold", 0, "cash-flow filter threshold (default 0.3)")
}
