package cmd

import (
	"fmt"
	"os"

	"github.com/dpetrovs/userdeck/internal/devserver"
	"github.com/spf13/cobra"
)

var (
	devserverAddr      string
	devserverUploadDir string
)

var devserverCmd = &cobra.Command{
	Use:   "devserver",
	Short: "Starts an in-memory backend for development",
	Long: `Starts an in-memory implementation of the user-management backend
contract. Data lives only for the lifetime of the process; uploaded images
are written to the upload directory and served under /uploads/.`,
	Run: func(cmd *cobra.Command, args []string) {
		log := newLogger()

		srv, err := devserver.New(devserver.Config{
			Addr:      devserverAddr,
			UploadDir: devserverUploadDir,
		}, log)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to start devserver: %v\n", err)
			os.Exit(1)
		}
		if err := srv.Start(); err != nil {
			fmt.Fprintf(os.Stderr, "devserver error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(devserverCmd)
	devserverCmd.Flags().StringVar(&devserverAddr, "addr", ":3000", "listen address")
	devserverCmd.Flags().StringVar(&devserverUploadDir, "uploads", "uploads", "directory for uploaded images")
}
