package cmd

import (
	"github.com/dpetrovs/userdeck/internal/client/cli"
	"github.com/dpetrovs/userdeck/internal/client/config"
	"github.com/dpetrovs/userdeck/internal/logging"
	"github.com/spf13/cobra"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Starts the interactive client",
	Long: `Starts the interactive userdeck client. Usage:

	userdeck repl [-a origin] [-p page] [-c config.json]
`,
	// Config flags (-a, -p, -c) are parsed by the config package itself.
	Args:               cobra.ArbitraryArgs,
	FParseErrWhitelist: cobra.FParseErrWhitelist{UnknownFlags: true},
	Run: func(cmd *cobra.Command, args []string) {
		log := logging.NewZerologLogger(newLogger())
		cfg := config.LoadConfig()

		app := cli.NewApp(cfg, log)
		app.Run(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}
