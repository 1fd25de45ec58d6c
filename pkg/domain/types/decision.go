package types

import "strings"

// DecisionAction is the reviewer action encoded in a decision button
type DecisionAction string

const (
	DecisionApprove DecisionAction = "approve"
	DecisionReject  DecisionAction = "reject"
)

// Decision is the parsed form of a decision button value. The wire format
// is "<action>_<creativeID>"; anything whose action token is not approve
// or reject parses into the unknown variant with the raw value preserved,
// so the dispatcher handles it explicitly instead of dropping it.
type Decision struct {
	Action     DecisionAction
	CreativeID CreativeID
	Raw        string
}

// NewDecision constructs a known decision for the given creative
func NewDecision(action DecisionAction, id CreativeID) Decision {
	return Decision{Action: action, CreativeID: id}
}

// ParseDecision parses a button value into a Decision. It is the single
// codec for the wire format: Value() of the result round-trips for known
// actions.
func ParseDecision(raw string) Decision {
	action, id, ok := strings.Cut(raw, "_")
	if !ok {
		return Decision{Raw: raw}
	}

	switch DecisionAction(action) {
	case DecisionApprove, DecisionReject:
		return Decision{
			Action:     DecisionAction(action),
			CreativeID: CreativeID(id),
			Raw:        raw,
		}
	default:
		return Decision{Raw: raw}
	}
}

// Known reports whether the decision is one of the recognized actions
func (d Decision) Known() bool {
	return d.Action == DecisionApprove || d.Action == DecisionReject
}

// Status returns the creative status the decision transitions to
func (d Decision) Status() CreativeStatus {
	switch d.Action {
	case DecisionApprove:
		return CreativeStatusApproved
	case DecisionReject:
		return CreativeStatusRejected
	default:
		return CreativeStatusPending
	}
}

// Value renders the decision in wire format
func (d Decision) Value() string {
	return string(d.Action) + "_" + string(d.CreativeID)
}
