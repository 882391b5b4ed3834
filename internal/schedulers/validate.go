package schedulers

import (
	"fmt"
	"math"

	"cpu-scheduler/internal/core"
)

// Validate checks everything a strategy relies on before a run starts.
func Validate(processes []core.Process, algorithm Algorithm, quantum int) error {
	if len(processes) == 0 {
		return fmt.Errorf("%w: process list is empty", ErrInvalidInput)
	}
	if _, err := ParseAlgorithm(string(algorithm)); err != nil {
		return err
	}

	seen := make(map[int]bool, len(processes))
	for i, p := range processes {
		if p.ID <= 0 {
			return fmt.Errorf("%w: process %d: id must be positive, got %d", ErrInvalidInput, i+1, p.ID)
		}
		if seen[p.ID] {
			return fmt.Errorf("%w: process %d: duplicate id %d", ErrInvalidInput, i+1, p.ID)
		}
		seen[p.ID] = true

		if p.ArrivalTime < 0 {
			return fmt.Errorf("%w: process %d: arrival time must not be negative, got %d", ErrInvalidInput, p.ID, p.ArrivalTime)
		}
		if p.BurstTime <= 0 {
			return fmt.Errorf("%w: process %d: burst time must be positive, got %d", ErrInvalidInput, p.ID, p.BurstTime)
		}
	}
	if _, ok := horizon(processes); !ok {
		return fmt.Errorf("%w: arrival and burst times overflow the simulation clock", ErrInvalidInput)
	}

	if algorithm == AlgorithmRoundRobin && quantum <= 0 {
		return fmt.Errorf("%w: round robin requires a positive quantum, got %d", ErrInvalidInput, quantum)
	}
	return nil
}

// ValidateSize rejects process lists longer than limit. A limit of zero or less disables
// the check.
func ValidateSize(processes []core.Process, limit int) error {
	if limit > 0 && len(processes) > limit {
		return fmt.Errorf("%w: %d processes exceed the limit of %d", ErrInvalidInput, len(processes), limit)
	}
	return nil
}

// ValidateTime rejects inputs whose schedule could run past limit: the latest arrival
// plus the sum of all bursts. A limit of zero or less disables the check.
func ValidateTime(processes []core.Process, limit int) error {
	if limit <= 0 {
		return nil
	}
	if end, ok := horizon(processes); !ok || end > limit {
		return fmt.Errorf("%w: simulated time exceeds the limit of %d", ErrInvalidInput, limit)
	}
	return nil
}

// horizon bounds the end of any schedule of processes. ok is false on int overflow.
// Negative values are left to Validate.
func horizon(processes []core.Process) (end int, ok bool) {
	latest, total := 0, 0
	for _, p := range processes {
		if p.BurstTime > 0 {
			if p.BurstTime > math.MaxInt-total {
				return 0, false
			}
			total += p.BurstTime
		}
		latest = max(latest, p.ArrivalTime)
	}
	if latest > math.MaxInt-total {
		return 0, false
	}
	return latest + total, true
}
