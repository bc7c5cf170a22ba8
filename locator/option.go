package locator

import "log"

// Option customizes a Locator
type Option func(*Locator)

// WithWorkers enables concurrent candidate evaluation with up to count workers;
// candidates are independent against a read-only target, so evaluation order
// does not affect the outcome
func WithWorkers(count int) Option {
	return func(l *Locator) {
		if count > 0 {
			l.workers = count
		}
	}
}

// WithLogger sets a progress logger; the locator is silent by default
func WithLogger(logger *log.Logger) Option {
	return func(l *Locator) {
		l.logger = logger
	}
}
