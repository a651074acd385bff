package bus

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubQuery struct {
	validateErr error
}

func (q stubQuery) Validate() error { return q.validateErr }

func TestQueryBus_AskReturnsHandlerResult(t *testing.T) {
	b := NewQueryBus()
	require.NoError(t, b.Register(stubQuery{}, QueryHandlerFunc(func(ctx context.Context, query Query) (interface{}, error) {
		return 42, nil
	})))

	result, err := b.Ask(context.Background(), stubQuery{})
	require.NoError(t, err)
	assert.Equal(t, 42, result)
}

func TestQueryBus_AskValidatesFirst(t *testing.T) {
	b := NewQueryBus()
	var handled bool
	require.NoError(t, b.Register(stubQuery{}, QueryHandlerFunc(func(ctx context.Context, query Query) (interface{}, error) {
		handled = true
		return nil, nil
	})))

	_, err := b.Ask(context.Background(), stubQuery{validateErr: errors.New("bad query")})
	assert.EqualError(t, err, "bad query")
	assert.False(t, handled)
}

func TestQueryBus_AskUnregisteredType(t *testing.T) {
	b := NewQueryBus()

	_, err := b.Ask(context.Background(), stubQuery{})
	assert.ErrorContains(t, err, "no handler registered")
}

func TestQueryBus_RegisterRejectsDuplicates(t *testing.T) {
	b := NewQueryBus()
	handler := QueryHandlerFunc(func(ctx context.Context, query Query) (interface{}, error) { return nil, nil })

	require.NoError(t, b.Register(stubQuery{}, handler))
	assert.Error(t, b.Register(stubQuery{}, handler))
}
