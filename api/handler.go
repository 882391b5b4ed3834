package api

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"cpu-scheduler/config"
	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
	"cpu-scheduler/internal/schedulers"
)

const SimulationIDHeader = "X-Simulation-ID"

type SchedulerHandler interface {
	Simulate(ctx *fiber.Ctx) error
	FirstComeFirstServe(ctx *fiber.Ctx) error
	ShortestJobFirst(ctx *fiber.Ctx) error
	ShortestRemainingTimeFirst(ctx *fiber.Ctx) error
	RoundRobin(ctx *fiber.Ctx) error
	PriorityNonPreemptive(ctx *fiber.Ctx) error
	PriorityPreemptive(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
	Algorithms(ctx *fiber.Ctx) error
}

type SchedulerHandlerImpl struct {
	config *config.SchedulerConfig
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{config: config}
}

// Simulate reads the algorithm from the request body.
func (s *SchedulerHandlerImpl) Simulate(ctx *fiber.Ctx) error {
	return s.schedule(ctx, "")
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.AlgorithmFCFS)
}

func (s *SchedulerHandlerImpl) ShortestJobFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.AlgorithmSJF)
}

func (s *SchedulerHandlerImpl) ShortestRemainingTimeFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.AlgorithmSRTF)
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.AlgorithmRoundRobin)
}

func (s *SchedulerHandlerImpl) PriorityNonPreemptive(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.AlgorithmPriorityNonPreemptive)
}

func (s *SchedulerHandlerImpl) PriorityPreemptive(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.AlgorithmPriorityPreemptive)
}

// AllAlgorithms runs the request through every algorithm. Round Robin falls back to the
// configured quantum when the request has none.
func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	request, err := parseRequest(ctx)
	if err != nil {
		return err
	}

	processes := request.Processes()
	if err := s.validateLimits(processes); err != nil {
		return respondError(ctx, err)
	}

	quantum := request.Quantum
	if quantum == 0 {
		quantum = s.config.RoundRobinTimeQuantum
	}

	simulationID := newSimulationID(ctx)
	results, err := schedulers.SimulateAll(processes, quantum)
	if err != nil {
		log.Println("simulation", simulationID, "rejected:", err)
		return respondError(ctx, err)
	}
	log.Println("simulation", simulationID, "ran", len(results), "algorithms over", len(processes), "processes")

	response := responses.AllResponse{Results: make(map[string]responses.ScheduleResponse, len(results))}
	for algorithm, result := range results {
		response.Results[string(algorithm)] = result
	}
	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) Algorithms(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{"algorithms": schedulers.GetAvailableAlgorithms()})
}

func (s *SchedulerHandlerImpl) schedule(ctx *fiber.Ctx, algorithm schedulers.Algorithm) error {
	request, err := parseRequest(ctx)
	if err != nil {
		return err
	}
	if algorithm == "" {
		algorithm = schedulers.Algorithm(request.Algorithm)
	}

	processes := request.Processes()
	if err := s.validateLimits(processes); err != nil {
		return respondError(ctx, err)
	}

	simulationID := newSimulationID(ctx)
	response, err := schedulers.Simulate(processes, algorithm, request.Quantum)
	if err != nil {
		log.Println("simulation", simulationID, "rejected:", err)
		return respondError(ctx, err)
	}
	log.Printf("simulation %s: %s over %d processes, total time %d", simulationID, algorithm, len(processes), response.TotalTime)

	return ctx.JSON(response)
}

// validateLimits applies the configured caps on process count and simulated time.
func (s *SchedulerHandlerImpl) validateLimits(processes []core.Process) error {
	if err := schedulers.ValidateSize(processes, s.config.MaxProcesses); err != nil {
		return err
	}
	return schedulers.ValidateTime(processes, s.config.MaxTime)
}

func parseRequest(ctx *fiber.Ctx) (requests.ScheduleRequest, error) {
	var request requests.ScheduleRequest
	if err := ctx.BodyParser(&request); err != nil {
		return request, fiber.NewError(fiber.StatusBadRequest, "invalid request format")
	}
	return request, nil
}

func newSimulationID(ctx *fiber.Ctx) string {
	id := uuid.New().String()
	ctx.Set(SimulationIDHeader, id)
	return id
}

func respondError(ctx *fiber.Ctx, err error) error {
	if errors.Is(err, schedulers.ErrInvalidInput) {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	log.Println("can not process request:", err)
	return fiber.NewError(fiber.StatusInternalServerError, "can not process request")
}
