package memory

import (
	"context"
	"testing"

	"github.com/weegigs/wee-counter/counter/countertest"
)

func TestMemoryStore(t *testing.T) {
	suite := countertest.NewStoreValidationSuite(context.Background(), NewStore())
	suite.Run(t)
}
