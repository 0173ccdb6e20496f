package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"cpu-scheduler-sim/api"
	"cpu-scheduler-sim/config"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the scheduling algorithms over HTTP.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.GetSchedulerConfig()
		if port, _ := cmd.Flags().GetInt("port"); port != 0 {
			cfg.Port = port
		}
		record, _ := cmd.Flags().GetBool("record")
		recorder := openRecorder(cfg, record, "")

		app := api.NewApp(api.NewSchedulerHandlerImpl(cfg, recorder))
		log.Println("listening on port", cfg.Port)
		return app.Listen(fmt.Sprintf(":%d", cfg.Port))
	},
}

func init() {
	serveCmd.Flags().IntP("port", "p", 0, "port to listen on (defaults to the configured value)")
	serveCmd.Flags().Bool("record", false, "record runs into the configured SQLite database")

	rootCmd.AddCommand(serveCmd)
}
