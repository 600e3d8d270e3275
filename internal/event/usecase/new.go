package usecase

import (
	"event-calendar-webhook/internal/event/repository"
	"event-calendar-webhook/pkg/datemath"
	"event-calendar-webhook/pkg/log"
	"event-calendar-webhook/pkg/openrouter"
)

// implUseCase is the private implementation of event.UseCase.
type implUseCase struct {
	l         log.Logger
	extractor *Extractor
	files     repository.FileStore
	sink      repository.LogSink
	clock     *datemath.Clock
}

// New creates a new event UseCase implementation.
func New(
	l log.Logger,
	llm openrouter.IOpenRouter,
	files repository.FileStore,
	sink repository.LogSink,
	clock *datemath.Clock,
) *implUseCase {
	return &implUseCase{
		l:         l,
		extractor: NewExtractor(l, llm, clock),
		files:     files,
		sink:      sink,
		clock:     clock,
	}
}
