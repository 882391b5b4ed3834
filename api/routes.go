package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"cpu-scheduler/config"
)

// NewApp builds the fiber application with every route registered.
func NewApp(cfg *config.SchedulerConfig) *fiber.App {
	fiberConfig := fiber.Config{
		AppName:      "cpu-scheduler",
		ErrorHandler: errorHandler,
	}
	if cfg.BodyLimit > 0 {
		fiberConfig.BodyLimit = cfg.BodyLimit
	}

	app := fiber.New(fiberConfig)
	app.Use(recover.New())
	app.Use(logger.New())

	SetupRoutes(app, NewSchedulerHandlerImpl(cfg))
	return app
}

func SetupRoutes(app *fiber.App, handler SchedulerHandler) {
	app.Get("/health", func(ctx *fiber.Ctx) error {
		return ctx.SendString("OK")
	})

	api := app.Group("/api")

	v1 := api.Group("/v1")
	{
		v1.Get("/algorithms", handler.Algorithms)
		v1.Post("/simulate", handler.Simulate)
		v1.Post("/fcfs", handler.FirstComeFirstServe)
		v1.Post("/sjf", handler.ShortestJobFirst)
		v1.Post("/srtf", handler.ShortestRemainingTimeFirst)
		v1.Post("/rr", handler.RoundRobin)
		v1.Post("/priority-np", handler.PriorityNonPreemptive)
		v1.Post("/priority-p", handler.PriorityPreemptive)
		v1.Post("/all", handler.AllAlgorithms)
	}
}

func errorHandler(ctx *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "can not process request"

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
		message = fiberErr.Message
	}

	return ctx.Status(code).JSON(fiber.Map{"error": message})
}
