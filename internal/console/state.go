package console

import "context"

// State is the lifecycle of one page load
type State int

const (
	Idle State = iota
	Loading
	Loaded
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Loaded:
		return "loaded"
	case Failed:
		return "failed"
	}
	return "unknown"
}

// Page carries a view's data together with its load state. Data is set only
// when State is Loaded, Err only when it is Failed.
type Page[T any] struct {
	State State
	Data  T
	Err   error
}

// Load runs fetch and returns the resulting Loaded or Failed page. onLoading,
// when set, observes the Loading page before the fetch starts.
func Load[T any](ctx context.Context, fetch func(context.Context) (T, error), onLoading func(Page[T])) Page[T] {
	if onLoading != nil {
		onLoading(Page[T]{State: Loading})
	}
	data, err := fetch(ctx)
	if err != nil {
		return Page[T]{State: Failed, Err: err}
	}
	return Page[T]{State: Loaded, Data: data}
}
