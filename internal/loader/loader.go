// Package loader reads process sets from files for the offline mode.
package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"cpu-scheduler/internal/requests"
)

var ErrMalformedInput = errors.New("malformed input")

// Load picks the format from the file extension: .csv, .yaml or .yml.
func Load(path string) (requests.ScheduleRequest, error) {
	f, err := os.Open(path)
	if err != nil {
		return requests.ScheduleRequest{}, fmt.Errorf("opening process file: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return LoadCSV(f)
	case ".yaml", ".yml":
		return LoadYAML(f)
	default:
		return requests.ScheduleRequest{}, fmt.Errorf("%w: unsupported file type %q", ErrMalformedInput, filepath.Ext(path))
	}
}

// LoadCSV reads rows of id,arrival,burst[,priority]. A first row that does not start with
// a number is treated as a header.
func LoadCSV(r io.Reader) (requests.ScheduleRequest, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.Comment = '#'

	rows, err := reader.ReadAll()
	if err != nil {
		return requests.ScheduleRequest{}, fmt.Errorf("%w: reading CSV: %v", ErrMalformedInput, err)
	}

	var request requests.ScheduleRequest
	for i, row := range rows {
		if i == 0 && len(row) > 0 && !isNumber(row[0]) {
			continue
		}
		if len(row) < 3 || len(row) > 4 {
			return requests.ScheduleRequest{}, fmt.Errorf("%w: line %d: expected 3 or 4 fields, got %d", ErrMalformedInput, i+1, len(row))
		}

		values := make([]int, len(row))
		for j, field := range row {
			v, err := strconv.Atoi(strings.TrimSpace(field))
			if err != nil {
				return requests.ScheduleRequest{}, fmt.Errorf("%w: line %d: field %d: %q is not an integer", ErrMalformedInput, i+1, j+1, field)
			}
			values[j] = v
		}

		job := requests.Job{
			ProcessId:   &values[0],
			ArrivalTime: values[1],
			BurstTime:   values[2],
		}
		if len(values) == 4 {
			job.Priority = &values[3]
		}
		request.Jobs = append(request.Jobs, job)
	}
	return request, nil
}

// LoadYAML reads a document with the same field names as the JSON API.
func LoadYAML(r io.Reader) (requests.ScheduleRequest, error) {
	var request requests.ScheduleRequest
	if err := yaml.NewDecoder(r).Decode(&request); err != nil {
		if errors.Is(err, io.EOF) {
			return request, nil
		}
		return requests.ScheduleRequest{}, fmt.Errorf("%w: failed to parse YAML: %v", ErrMalformedInput, err)
	}
	return request, nil
}

func isNumber(s string) bool {
	_, err := strconv.Atoi(strings.TrimSpace(s))
	return err == nil
}
