package resolver

// Observer receives resolution events. Implementations are called from every
// goroutine that resolves and must be safe for concurrent use.
type Observer interface {
	// Attempted is called once per constructed identifier.
	Attempted(strategy Strategy, id string, ok bool)
	Resolved(r Resolution)
	Failed(f *Failure)
}

type nopObserver struct{}

func (nopObserver) Attempted(Strategy, string, bool) {}
func (nopObserver) Resolved(Resolution)              {}
func (nopObserver) Failed(*Failure)                  {}

// Observers fans events out to several observers in order.
type Observers []Observer

func (obs Observers) Attempted(s Strategy, id string, ok bool) {
	for _, o := range obs {
		o.Attempted(s, id, ok)
	}
}

func (obs Observers) Resolved(r Resolution) {
	for _, o := range obs {
		o.Resolved(r)
	}
}

func (obs Observers) Failed(f *Failure) {
	for _, o := range obs {
		o.Failed(f)
	}
}
