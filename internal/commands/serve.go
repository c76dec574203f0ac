package commands

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/diogo/chatkit/internal/server"
)

var addrFlag string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the demo backend",
	Long: `Run the demo backend the widget can be pointed at.

It accepts POST /api/chat with a JSON body {"message": "..."} and
returns an echo-style demo reply. The listen address comes from --addr,
then CHATKIT_ADDR (a .env file is honored), then :8080.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Missing .env is fine; env vars may come from the environment
		_ = godotenv.Load()

		addr := addrFlag
		if addr == "" {
			addr = os.Getenv("CHATKIT_ADDR")
		}

		return server.Run(addr)
	},
}

func init() {
	serveCmd.Flags().StringVar(&addrFlag, "addr", "", "Listen address (default :8080)")
}
