package counter

// Counter is the persisted click total. Count is never negative.
type Counter struct {
	Count int `json:"count"`
}

func (state Counter) Value() int {
	return state.Count
}
