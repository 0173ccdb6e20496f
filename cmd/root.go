// Package cmd provides the command-line interface of the scheduler simulator.
package cmd

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	"cpu-scheduler-sim/config"
	"cpu-scheduler-sim/internal/recording"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "cpusched",
	Short: "Simulate classical CPU scheduling algorithms.",
	Long: `cpusched simulates FCFS, SJF, Priority, SRTF and Round Robin ` +
		`scheduling over a known set of processes and reports per-process ` +
		`timings and a Gantt chart, on the terminal or over HTTP.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. Registered exit handlers run before the process exits.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		atexit.Exit(1)
	}
	atexit.Exit(0)
}

// openRecorder returns the configured recorder and closes it on exit.
func openRecorder(cfg *config.SchedulerConfig, enabled bool, path string) recording.Recorder {
	if !enabled && !cfg.RecordingEnabled {
		return recording.Nop{}
	}
	if path == "" {
		path = cfg.RecordingPath
	}

	recorder, err := recording.NewSQLiteRecorder(path)
	if err != nil {
		log.Fatalln(err)
	}
	log.Println("recording runs to", recorder.Path())

	atexit.Register(func() {
		if err := recorder.Close(); err != nil {
			log.Println("closing recorder:", err)
		}
	})
	return recorder
}
