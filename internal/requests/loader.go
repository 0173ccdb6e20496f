package requests

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// LoadJobsCSV reads "pid,arrival,burst[,priority]" rows. A leading header row
// is skipped.
func LoadJobsCSV(r io.Reader) ([]Job, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.Comment = '#'

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: reading CSV", err)
	}

	jobs := make([]Job, 0, len(rows))
	for i, row := range rows {
		if i == 0 && isHeader(row) {
			continue
		}
		if len(row) < 3 || len(row) > 4 {
			return nil, fmt.Errorf("%w: line %d has %d fields, want 3 or 4", ErrInvalidRequest, i+1, len(row))
		}

		values := make([]int, 4)
		for j, field := range row {
			v, err := strconv.Atoi(strings.TrimSpace(field))
			if err != nil {
				return nil, fmt.Errorf("%w: line %d field %d: %v", ErrInvalidRequest, i+1, j+1, err)
			}
			values[j] = v
		}

		jobs = append(jobs, Job{
			ProcessId:   values[0],
			ArrivalTime: values[1],
			BurstTime:   values[2],
			Priority:    values[3],
		})
	}
	return jobs, nil
}

func isHeader(row []string) bool {
	if len(row) == 0 {
		return false
	}
	_, err := strconv.Atoi(strings.TrimSpace(row[0]))
	return err != nil
}
