package breadcrumb

// Action is a state transition understood by Reduce.
type Action interface {
	apply(state Trail) Trail
}

// NavigateTo records a visit to Path, displayed as Label.
type NavigateTo struct {
	Path  string
	Label string
}

func (a NavigateTo) apply(state Trail) Trail {
	return Update(state, a.Path, a.Label)
}

// Reset empties the trail.
type Reset struct{}

func (Reset) apply(state Trail) Trail {
	if len(state) == 0 {
		return state
	}
	return Trail{}
}

// Reduce returns the state after action. A nil action leaves state unchanged.
func Reduce(state Trail, action Action) Trail {
	if action == nil {
		return state
	}
	return action.apply(state)
}
