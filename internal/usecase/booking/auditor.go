package booking

import "github.com/BellaSalonPL/salon-scheduler/internal/audit"

// Auditor is satisfied by *audit.Dispatcher; it exists so use cases can be
// exercised with a recording fake.
type Auditor interface {
	Dispatch(ev audit.Event)
}
