package stats

// HealthStatus follows the draft "application/health+json" format.
type HealthStatus string

const (
	StatusPass HealthStatus = "pass"
	StatusWarn HealthStatus = "warn"
	StatusFail HealthStatus = "fail"
)

var severity = map[HealthStatus]int{
	StatusPass: 0,
	StatusWarn: 1,
	StatusFail: 2,
}

// worse returns the more severe of both statuses.
func (s HealthStatus) worse(other HealthStatus) HealthStatus {
	if severity[other] > severity[s] {
		return other
	}
	return s
}

type Check struct {
	Status        HealthStatus `json:"status"`
	ComponentType string       `json:"componentType,omitempty"`
	Observed      any          `json:"observedValue,omitempty"`
	ObservedAt    string       `json:"observedAt,omitempty"`
	Output        string       `json:"output,omitempty"`
}

type HealthResponse struct {
	Status    HealthStatus       `json:"status"`
	Version   string             `json:"version,omitempty"`
	ServiceID string             `json:"serviceId,omitempty"`
	Checks    map[string][]Check `json:"checks,omitempty"`
}

// Checker is one component reported by /health. Name is the key in
// HealthResponse.Checks.
type Checker interface {
	Name() string
	Check() Check
}
