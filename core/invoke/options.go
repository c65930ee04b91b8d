package invoke

import "github.com/leofalp/medcalc/providers/observability"

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithObserver sets the observability provider used for spans, metrics and
// logs. A nil provider keeps the dispatcher silent.
func WithObserver(observer observability.Provider) Option {
	return func(d *Dispatcher) {
		if observer != nil {
			d.observer = observer
		}
	}
}
