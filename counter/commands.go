package counter

import "fmt"

const IncrementCmd = "counter:increment"

type Increment struct {
	Amount int
}

func (Increment) TypeName() string {
	return IncrementCmd
}

func InvalidAmount(amount int) InvalidAmountError {
	return InvalidAmountError{Amount: amount}
}

type InvalidAmountError struct {
	Amount int
}

func (e InvalidAmountError) Error() string {
	return fmt.Sprintf("increment amount must be positive, got %d", e.Amount)
}
