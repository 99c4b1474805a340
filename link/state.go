package link

// State is one of the six states of the ASTM E1381 link state machine.
type State int

const (
	StateNeutral State = iota
	StateEstablish
	StateTransferIn
	StateTransferOut
	StateTerminate
	StateContention
)

func (s State) String() string {
	switch s {
	case StateNeutral:
		return "Neutral"
	case StateEstablish:
		return "Establish"
	case StateTransferIn:
		return "TransferIn"
	case StateTransferOut:
		return "TransferOut"
	case StateTerminate:
		return "Terminate"
	case StateContention:
		return "Contention"
	default:
		return "Unknown"
	}
}
