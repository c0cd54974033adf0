package we

import "fmt"

type CommandName string

func (n CommandName) String() string {
	return string(n)
}

type Command any

func CommandNameOf(command Command) CommandName {
	return CommandName(NameOf(command))
}

func CommandNotFound(command CommandName) CommandNotFoundError {
	return CommandNotFoundError{Command: command}
}

type CommandNotFoundError struct {
	Command CommandName
}

func (e CommandNotFoundError) Error() string {
	return fmt.Sprintf("unknown command: %s", e.Command)
}

func UnexpectedCommand(command Command) error {
	return fmt.Errorf("unexpected command %s", CommandNameOf(command))
}
