package quote

type Status string

const (
	StatusDraft             Status = "DRAFT"
	StatusAwaitingDiagnosis Status = "AWAITING_DIAGNOSIS"
	StatusDiagnosed         Status = "DIAGNOSED"
	StatusSent              Status = "SENT"
	StatusViewed            Status = "VIEWED"
	StatusAccepted          Status = "ACCEPTED"
	StatusConverted         Status = "CONVERTED"
	StatusRejected          Status = "REJECTED"
	// StatusExpired is observed, never stored: a SENT/VIEWED quote whose link lapsed.
	StatusExpired Status = "EXPIRED"
)

// position in the lifecycle DAG; terminal branches share the highest ranks.
var statusRank = map[Status]int{
	StatusDraft:             0,
	StatusAwaitingDiagnosis: 1,
	StatusDiagnosed:         2,
	StatusSent:              3,
	StatusViewed:            4,
	StatusAccepted:          5,
	StatusConverted:         6,
	StatusRejected:          6,
	StatusExpired:           6,
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	_, ok := statusRank[s]
	return ok
}

// IsStored reports whether s may appear in persistence.
func (s Status) IsStored() bool {
	return s.IsValid() && s != StatusExpired
}

func (s Status) IsTerminal() bool {
	switch s {
	case StatusConverted, StatusRejected, StatusExpired:
		return true
	default:
		return false
	}
}

// Precedes reports whether next lies strictly after s in the lifecycle.
func (s Status) Precedes(next Status) bool {
	return statusRank[s] < statusRank[next]
}

func (s Status) in(set ...Status) bool {
	for _, candidate := range set {
		if s == candidate {
			return true
		}
	}
	return false
}

func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", newValidationError("status", "unknown status "+s)
	}
	return st, nil
}

type ApprovalMethod string

const (
	ApprovalDigital ApprovalMethod = "digital"
	ApprovalManual  ApprovalMethod = "manual"
)

func (m ApprovalMethod) IsValid() bool {
	return m == ApprovalDigital || m == ApprovalManual
}

// Action names a lifecycle operation for error reporting and events.
type Action string

const (
	ActionUpdateItems       Action = "update_items"
	ActionSendForDiagnosis  Action = "send_for_diagnosis"
	ActionAssign            Action = "assign_mechanic"
	ActionClaim             Action = "claim"
	ActionCompleteDiagnosis Action = "complete_diagnosis"
	ActionSendToCustomer    Action = "send_to_customer"
	ActionRegenerateToken   Action = "regenerate_token"
	ActionView              Action = "view"
	ActionApprove           Action = "approve"
	ActionReject            Action = "reject"
	ActionConvert           Action = "convert"
	ActionRevise            Action = "revise"
)
