package we

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type TestCommand struct{}

type TestNamedCommand struct{}

func (TestNamedCommand) TypeName() string {
	return "test:named"
}

func resolvesExplicitName(t *testing.T) {
	assert.Equal(t, CommandName("test:named"), CommandNameOf(TestNamedCommand{}))
}

func resolvesImplicitName(t *testing.T) {
	assert.Equal(t, CommandName("we:test-command"), CommandNameOf(TestCommand{}))
}

func resolvesPointerName(t *testing.T) {
	assert.Equal(t, CommandName("we:test-command"), CommandNameOf(&TestCommand{}))
}

func reportsMissingCommand(t *testing.T) {
	var err error = CommandNotFound("test:missing")

	var notFound CommandNotFoundError
	assert.True(t, errors.As(err, &notFound))
	assert.Equal(t, CommandName("test:missing"), notFound.Command)
	assert.Equal(t, "unknown command: test:missing", err.Error())
}

func TestCommands(t *testing.T) {
	t.Run("resolves explicit name", resolvesExplicitName)
	t.Run("resolves implicit name", resolvesImplicitName)
	t.Run("resolves pointer name", resolvesPointerName)
	t.Run("reports missing command", reportsMissingCommand)
}
