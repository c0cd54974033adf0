package counter

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

type Decrement struct {
	Amount int
}

func TestIncrementHandler(t *testing.T) {
	handler := increment()

	t.Run("adds the amount", func(t *testing.T) {
		state, err := handler.HandleCommand(context.TODO(), Increment{Amount: 3}, Counter{Count: 4})
		assert.NoError(t, err)
		assert.Equal(t, Counter{Count: 7}, state)
	})

	t.Run("rejects a negative amount", func(t *testing.T) {
		_, err := handler.HandleCommand(context.TODO(), Increment{Amount: -1}, Counter{Count: 4})
		assert.Equal(t, InvalidAmount(-1), err)
	})

	t.Run("rejects another command", func(t *testing.T) {
		_, err := handler.HandleCommand(context.TODO(), Decrement{Amount: 1}, Counter{Count: 4})
		assert.EqualError(t, err, "unexpected command counter:decrement")
	})

	t.Run("rejects a nil command pointer", func(t *testing.T) {
		var cmd *Increment
		_, err := handler.HandleCommand(context.TODO(), cmd, Counter{})
		assert.EqualError(t, err, "nil command")
	})
}
