// internal/status/snapshot.go
package status

import "time"

type Health uint8

// ---- HEALTH CODES ----

// HealthUnknown represents the boot state, before the first cycle completes.
const HealthUnknown Health = 0

// HealthOK represents an instance whose last cycle succeeded.
const HealthOK Health = 1

// HealthError represents an instance whose last cycle failed.
const HealthError Health = 2

func (h Health) String() string {
	switch h {
	case HealthOK:
		return "ok"
	case HealthError:
		return "error"
	default:
		return "unknown"
	}
}

// Snapshot is the externally visible health of one adapter instance.
// It contains no logic and no memory of the past beyond current state.
type Snapshot struct {
	Health              Health
	LastError           string
	ConsecutiveFailures int
	LastSuccess         time.Time
}

// ObserveSuccess records a successful cycle.
// Returns true if the snapshot changed in a way worth reporting.
func (s *Snapshot) ObserveSuccess(at time.Time) bool {
	changed := s.Health != HealthOK

	s.Health = HealthOK
	s.LastError = ""
	s.ConsecutiveFailures = 0
	s.LastSuccess = at

	return changed
}

// ObserveFailure records a failed cycle with its diagnostic text.
// Returns true if the snapshot changed in a way worth reporting.
func (s *Snapshot) ObserveFailure(msg string) bool {
	changed := s.Health != HealthError || s.LastError != msg

	s.Health = HealthError
	s.LastError = msg
	s.ConsecutiveFailures++

	return changed
}
