package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"cpu-scheduler/api"
	"cpu-scheduler/config"
	"cpu-scheduler/internal/loader"
	"cpu-scheduler/internal/report"
	"cpu-scheduler/internal/schedulers"
)

func main() {
	input := flag.String("input", "", "process file (.csv, .yaml) to simulate offline instead of serving HTTP")
	algorithm := flag.String("algorithm", "", "algorithm for offline mode, or \"all\"")
	quantum := flag.Int("quantum", 0, "round robin time quantum for offline mode")
	flag.Parse()

	cfg := config.GetSchedulerConfig()

	if *input != "" {
		if err := runOffline(os.Stdout, cfg, *input, *algorithm, *quantum); err != nil {
			log.Fatalln(err)
		}
		return
	}

	app := api.NewApp(cfg)
	log.Fatalln(app.Listen(fmt.Sprintf(":%d", cfg.Port)))
}

// runOffline simulates the processes in path and writes a text report to w. Flag values
// take precedence over the file; Round Robin falls back to the configured quantum.
func runOffline(w io.Writer, cfg *config.SchedulerConfig, path, algorithm string, quantum int) error {
	request, err := loader.Load(path)
	if err != nil {
		return err
	}
	if algorithm == "" {
		algorithm = request.Algorithm
	}
	if algorithm == "" {
		algorithm = "all"
	}
	if quantum == 0 {
		quantum = request.Quantum
	}
	if quantum == 0 {
		quantum = cfg.RoundRobinTimeQuantum
	}

	processes := request.Processes()
	if err := schedulers.ValidateSize(processes, cfg.MaxProcesses); err != nil {
		return err
	}
	if err := schedulers.ValidateTime(processes, cfg.MaxTime); err != nil {
		return err
	}

	if algorithm == "all" {
		results, err := schedulers.SimulateAll(processes, quantum)
		if err != nil {
			return err
		}
		for _, algorithm := range schedulers.GetAvailableAlgorithms() {
			report.Render(w, results[algorithm])
		}
		return nil
	}

	response, err := schedulers.Simulate(processes, schedulers.Algorithm(algorithm), quantum)
	if err != nil {
		return err
	}
	report.Render(w, response)
	return nil
}
