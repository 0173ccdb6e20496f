package api

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"cpu-scheduler-sim/config"
	"cpu-scheduler-sim/internal/core"
	"cpu-scheduler-sim/internal/recording"
	"cpu-scheduler-sim/internal/requests"
	"cpu-scheduler-sim/internal/responses"
	"cpu-scheduler-sim/internal/schedulers"
)

type SchedulerHandler interface {
	FirstComeFirstServe(ctx *fiber.Ctx) error
	ShortestJobFirst(ctx *fiber.Ctx) error
	Priority(ctx *fiber.Ctx) error
	ShortestRemainingTimeFirst(ctx *fiber.Ctx) error
	RoundRobin(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
	Algorithms(ctx *fiber.Ctx) error
	GetRun(ctx *fiber.Ctx) error
}

type SchedulerHandlerImpl struct {
	config   *config.SchedulerConfig
	recorder recording.Recorder
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig, recorder recording.Recorder) *SchedulerHandlerImpl {
	if recorder == nil {
		recorder = recording.Nop{}
	}
	return &SchedulerHandlerImpl{config: config, recorder: recorder}
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	return s.schedule(ctx, func(request *requests.ScheduleRequests) (responses.ScheduleResponse, error) {
		return schedulers.ScheduleFirstComeFirstServe(request)
	})
}

func (s *SchedulerHandlerImpl) ShortestJobFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, func(request *requests.ScheduleRequests) (responses.ScheduleResponse, error) {
		return schedulers.ScheduleShortestJobFirst(request)
	})
}

func (s *SchedulerHandlerImpl) Priority(ctx *fiber.Ctx) error {
	return s.schedule(ctx, func(request *requests.ScheduleRequests) (responses.ScheduleResponse, error) {
		return schedulers.SchedulePriority(request)
	})
}

func (s *SchedulerHandlerImpl) ShortestRemainingTimeFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, func(request *requests.ScheduleRequests) (responses.ScheduleResponse, error) {
		return schedulers.ScheduleShortestRemainingTimeFirst(request)
	})
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	return s.schedule(ctx, func(request *requests.ScheduleRequests) (responses.ScheduleResponse, error) {
		return schedulers.ScheduleRoundRobin(request, s.timeQuantum(request))
	})
}

func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	request, err := parseRequest(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request format"})
	}

	all, err := schedulers.ScheduleAll(request, s.timeQuantum(request))
	if err != nil {
		return scheduleError(ctx, err)
	}

	for i := range all {
		if all[i].RunId, err = s.recorder.Record(all[i]); err != nil {
			log.Println("recording failed:", err)
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "can not record run"})
		}
	}
	return ctx.JSON(fiber.Map{"results": all})
}

func (s *SchedulerHandlerImpl) Algorithms(ctx *fiber.Ctx) error {
	type algorithm struct {
		Name       string `json:"name"`
		Title      string `json:"title"`
		Preemptive bool   `json:"preemptive"`
	}

	algorithms := make([]algorithm, 0, len(schedulers.Algorithms()))
	for _, alg := range schedulers.Algorithms() {
		algorithms = append(algorithms, algorithm{Name: string(alg), Title: alg.Title(), Preemptive: alg.Preemptive()})
	}
	return ctx.JSON(fiber.Map{
		"algorithms":   algorithms,
		"time_quantum": s.config.RoundRobinTimeQuantum,
	})
}

func (s *SchedulerHandlerImpl) GetRun(ctx *fiber.Ctx) error {
	response, err := s.recorder.Load(ctx.Params("id"))
	switch {
	case errors.Is(err, recording.ErrRunNotFound), errors.Is(err, recording.ErrRecordingDisabled):
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case err != nil:
		log.Println("loading run failed:", err)
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "can not load run"})
	}
	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) schedule(
	ctx *fiber.Ctx,
	run func(request *requests.ScheduleRequests) (responses.ScheduleResponse, error),
) error {
	request, err := parseRequest(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request format"})
	}

	response, err := run(request)
	if err != nil {
		return scheduleError(ctx, err)
	}

	if response.RunId, err = s.recorder.Record(response); err != nil {
		log.Println("recording failed:", err)
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "can not record run"})
	}
	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) timeQuantum(request *requests.ScheduleRequests) int {
	if request.TimeQuantum > 0 {
		return request.TimeQuantum
	}
	return s.config.RoundRobinTimeQuantum
}

func parseRequest(ctx *fiber.Ctx) (*requests.ScheduleRequests, error) {
	request := new(requests.ScheduleRequests)
	if err := ctx.BodyParser(request); err != nil {
		return nil, err
	}
	return request, nil
}

func scheduleError(ctx *fiber.Ctx, err error) error {
	if errors.Is(err, requests.ErrInvalidRequest) || errors.Is(err, core.ErrInvalidQuantum) {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	log.Println("scheduling failed:", err)
	return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "can not proccess request"})
}
