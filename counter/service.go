package counter

import (
	"context"
	"fmt"
	"sync"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/weegigs/wee-counter/we"
)

const tracerName = "counter-service"

type Service interface {
	Load(ctx context.Context) (Counter, error)
	Execute(ctx context.Context, command we.Command) (Counter, error)
}

func NewService(store Store) *CounterService {
	return &CounterService{
		store:    store,
		handlers: CommandHandlers(),
	}
}

// CounterService runs commands against a Store. Commands are applied one at a
// time so concurrent increments never lose an update.
type CounterService struct {
	lk       sync.Mutex
	store    Store
	handlers map[we.CommandName]CommandHandler
}

func (s *CounterService) Load(ctx context.Context) (Counter, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "load counter")
	defer span.End()

	state, err := s.store.Read(ctx)
	if err != nil {
		span.RecordError(err)
		return Counter{}, errors.Wrap(err, "failed to load counter")
	}

	span.SetAttributes(attribute.Int("counter.count", state.Count))
	return state, nil
}

func (s *CounterService) Execute(ctx context.Context, command we.Command) (Counter, error) {
	name := we.CommandNameOf(command)

	ctx, span := otel.Tracer(tracerName).Start(ctx, fmt.Sprintf("execute %s", name))
	defer span.End()

	handler := s.handlers[name]
	if handler == nil {
		return Counter{}, we.CommandNotFound(name)
	}

	s.lk.Lock()
	defer s.lk.Unlock()

	current, err := s.store.Read(ctx)
	if err != nil {
		span.RecordError(err)
		return Counter{}, errors.Wrap(err, "failed to load counter")
	}

	next, err := handler.HandleCommand(ctx, command, current)
	if err != nil {
		span.RecordError(err)
		return Counter{}, err
	}

	if err := s.store.Write(ctx, next); err != nil {
		span.RecordError(err)
		return Counter{}, errors.Wrapf(err, "failed to persist %s", name)
	}

	span.SetAttributes(attribute.Int("counter.count", next.Count))
	return next, nil
}
