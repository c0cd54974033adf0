package counter

import (
	"context"

	"github.com/pkg/errors"

	"github.com/weegigs/wee-counter/we"
)

type CommandHandler interface {
	HandleCommand(ctx context.Context, cmd we.Command, state Counter) (Counter, error)
}

type CommandHandlerFunction[C any] func(ctx context.Context, cmd C, state Counter) (Counter, error)

func (f CommandHandlerFunction[C]) HandleCommand(ctx context.Context, cmd we.Command, state Counter) (Counter, error) {
	switch command := cmd.(type) {
	case C:
		return f(ctx, command, state)
	case *C:
		if command == nil {
			return Counter{}, errors.New("nil command")
		}
		return f(ctx, *command, state)
	}

	return Counter{}, we.UnexpectedCommand(cmd)
}

func increment() CommandHandler {
	var handler CommandHandlerFunction[Increment] = func(ctx context.Context, cmd Increment, state Counter) (Counter, error) {
		if cmd.Amount <= 0 {
			return Counter{}, InvalidAmount(cmd.Amount)
		}

		return Counter{Count: state.Count + cmd.Amount}, nil
	}

	return handler
}

func CommandHandlers() map[we.CommandName]CommandHandler {
	return map[we.CommandName]CommandHandler{
		we.CommandNameOf(Increment{}): increment(),
	}
}
