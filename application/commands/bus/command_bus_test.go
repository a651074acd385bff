package bus

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubCommand struct {
	validateErr error
}

func (c stubCommand) Validate() error { return c.validateErr }

func TestCommandBus_SendDispatchesByType(t *testing.T) {
	b := NewCommandBus()
	var handled bool
	require.NoError(t, b.Register(stubCommand{}, CommandHandlerFunc(func(ctx context.Context, cmd Command) error {
		handled = true
		return nil
	})))

	require.NoError(t, b.Send(context.Background(), stubCommand{}))
	assert.True(t, handled)
}

func TestCommandBus_SendValidatesFirst(t *testing.T) {
	b := NewCommandBus()
	var handled bool
	require.NoError(t, b.Register(stubCommand{}, CommandHandlerFunc(func(ctx context.Context, cmd Command) error {
		handled = true
		return nil
	})))

	err := b.Send(context.Background(), stubCommand{validateErr: errors.New("bad payload")})
	assert.EqualError(t, err, "bad payload")
	assert.False(t, handled)
}

func TestCommandBus_SendUnregisteredType(t *testing.T) {
	b := NewCommandBus()

	err := b.Send(context.Background(), stubCommand{})
	assert.ErrorContains(t, err, "no handler registered")
}

func TestCommandBus_RegisterRejectsDuplicates(t *testing.T) {
	b := NewCommandBus()
	handler := CommandHandlerFunc(func(ctx context.Context, cmd Command) error { return nil })

	require.NoError(t, b.Register(stubCommand{}, handler))
	assert.Error(t, b.Register(stubCommand{}, handler))
}

func TestWrap_AppliesMiddlewareOutermostFirst(t *testing.T) {
	var order []string
	mw := func(name string) Middleware {
		return func(next CommandHandler) CommandHandler {
			return CommandHandlerFunc(func(ctx context.Context, cmd Command) error {
				order = append(order, name)
				return next.Handle(ctx, cmd)
			})
		}
	}
	handler := Wrap(CommandHandlerFunc(func(ctx context.Context, cmd Command) error {
		order = append(order, "handler")
		return nil
	}), mw("outer"), mw("inner"))

	require.NoError(t, handler.Handle(context.Background(), stubCommand{}))
	assert.Equal(t, []string{"outer", "inner", "handler"}, order)
}

func TestLoggingMiddleware_PassesErrorThrough(t *testing.T) {
	boom := errors.New("boom")
	handler := Wrap(CommandHandlerFunc(func(ctx context.Context, cmd Command) error {
		return boom
	}), LoggingMiddleware(zap.NewNop()))

	assert.ErrorIs(t, handler.Handle(context.Background(), stubCommand{}), boom)
}
