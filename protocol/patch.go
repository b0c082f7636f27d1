package protocol

type PatchEnvelope struct {
	Sequence uint64 `json:"seq"`
	EventID  int64  `json:"eventId"`
	Type     string `json:"type"`
	Payload  any    `json:"payload"`
}

// Patch types
const (
	TypeSnapshot     = "Snapshot"
	TypeStepApplied  = "StepApplied"
	TypePhaseChanged = "PhaseChanged"
	TypeError        = "Error"
)

// StepApplied carries the result of one generator step and the state after it
type StepApplied struct {
	Outcome  string   `json:"outcome"`
	Spawned  int      `json:"spawned"`
	Snapshot Snapshot `json:"snapshot"`
}

type PhaseChanged struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type ErrorMessage struct {
	Message string `json:"message"`
}
