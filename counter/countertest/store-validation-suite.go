// Package countertest holds checks shared by every counter.Store implementation.
package countertest

import (
	"context"
	"testing"

	"github.com/jaswdr/faker"
	"github.com/stretchr/testify/assert"

	"github.com/weegigs/wee-counter/counter"
)

func NewStoreValidationSuite(ctx context.Context, store counter.Store) *StoreValidationSuite {
	return &StoreValidationSuite{
		store: store,
		ctx:   ctx,
		faker: faker.New(),
	}
}

type StoreValidationSuite struct {
	store counter.Store
	ctx   context.Context
	faker faker.Faker
}

// Run expects a store that has never been written to.
func (s *StoreValidationSuite) Run(t *testing.T) {
	t.Run("reads an initial zero count", s.ReadsInitial)
	t.Run("reads back a written count", s.ReadsWritten)
	t.Run("overwrites an earlier count", s.Overwrites)
}

func (s *StoreValidationSuite) MakeTestCounter() counter.Counter {
	return counter.Counter{Count: s.faker.IntBetween(1, 1_000_000)}
}

func (s *StoreValidationSuite) ReadsInitial(t *testing.T) {
	state, err := s.store.Read(s.ctx)
	if !assert.Nil(t, err) {
		return
	}

	assert.Equal(t, 0, state.Count)
}

func (s *StoreValidationSuite) ReadsWritten(t *testing.T) {
	expected := s.MakeTestCounter()

	err := s.store.Write(s.ctx, expected)
	if !assert.Nil(t, err) {
		return
	}

	state, err := s.store.Read(s.ctx)
	if !assert.Nil(t, err) {
		return
	}

	assert.Equal(t, expected, state)
}

func (s *StoreValidationSuite) Overwrites(t *testing.T) {
	first := s.MakeTestCounter()
	second := counter.Counter{Count: first.Count + 1}

	if err := s.store.Write(s.ctx, first); !assert.Nil(t, err) {
		return
	}

	if err := s.store.Write(s.ctx, second); !assert.Nil(t, err) {
		return
	}

	state, err := s.store.Read(s.ctx)
	if !assert.Nil(t, err) {
		return
	}

	assert.Equal(t, second, state)
}
