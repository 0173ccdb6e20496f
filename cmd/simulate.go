package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"cpu-scheduler-sim/config"
	"cpu-scheduler-sim/internal/report"
	"cpu-scheduler-sim/internal/requests"
	"cpu-scheduler-sim/internal/schedulers"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run scheduling algorithms on a CSV process file.",
	Long: "`simulate --file procs.csv --algorithm rr --quantum 2` reads " +
		"pid,arrival,burst[,priority] rows and prints the Gantt chart and " +
		"timing table of each selected algorithm.",
	RunE: func(cmd *cobra.Command, args []string) error {
		file, _ := cmd.Flags().GetString("file")
		algorithm, _ := cmd.Flags().GetString("algorithm")
		quantum, _ := cmd.Flags().GetInt("quantum")
		record, _ := cmd.Flags().GetBool("record")
		dbPath, _ := cmd.Flags().GetString("db")

		algorithms, err := selectAlgorithms(algorithm)
		if err != nil {
			return err
		}

		request, err := loadRequest(file)
		if err != nil {
			return err
		}

		cfg := config.GetSchedulerConfig()
		if quantum == 0 {
			quantum = cfg.RoundRobinTimeQuantum
		}
		recorder := openRecorder(cfg, record, dbPath)

		out := cmd.OutOrStdout()
		for _, alg := range algorithms {
			response, err := schedulers.Schedule(alg, request, quantum)
			if err != nil {
				return fmt.Errorf("%s: %w", alg, err)
			}
			if response.RunId, err = recorder.Record(response); err != nil {
				return fmt.Errorf("recording %s run: %w", alg, err)
			}
			report.Render(out, alg.Title(), response)
		}
		return nil
	},
}

func init() {
	simulateCmd.Flags().StringP("file", "f", "", "CSV file with pid,arrival,burst[,priority] rows")
	simulateCmd.Flags().StringP("algorithm", "a", "all", "fcfs, sjf, priority, srtf, rr or all")
	simulateCmd.Flags().IntP("quantum", "q", 0, "round robin time quantum (defaults to the configured value)")
	simulateCmd.Flags().Bool("record", false, "record runs into a SQLite database")
	simulateCmd.Flags().String("db", "", "SQLite database path used with --record")
	_ = simulateCmd.MarkFlagRequired("file")

	rootCmd.AddCommand(simulateCmd)
}

func selectAlgorithms(name string) ([]schedulers.Algorithm, error) {
	if name == "all" {
		return schedulers.Algorithms(), nil
	}
	alg, err := schedulers.ParseAlgorithm(name)
	if err != nil {
		return nil, err
	}
	return []schedulers.Algorithm{alg}, nil
}

func loadRequest(path string) (*requests.ScheduleRequests, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%v: error opening scheduling file", err)
	}
	defer f.Close()

	jobs, err := requests.LoadJobsCSV(f)
	if err != nil {
		return nil, err
	}

	request := &requests.ScheduleRequests{Jobs: jobs}
	if err := request.Validate(); err != nil {
		return nil, err
	}
	return request, nil
}
