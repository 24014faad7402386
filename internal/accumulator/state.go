package accumulator

const (
	defaultDisplayConstant = "0"
	errorDisplayConstant   = "Error"
	phaseIdleConstant      = "idle"
	phaseEnteringConstant  = "entering_operand"
	phasePendingConstant   = "operator_pending"
	phaseErrorConstant     = "error"
)

// ErrorDisplay is the marker rendered instead of a value after a failed evaluation.
const ErrorDisplay = errorDisplayConstant

// Phase names the coarse state of the accumulator.
type Phase string

// Accumulator phases.
const (
	PhaseIdle            Phase = Phase(phaseIdleConstant)
	PhaseEnteringOperand Phase = Phase(phaseEnteringConstant)
	PhaseOperatorPending Phase = Phase(phasePendingConstant)
	PhaseError           Phase = Phase(phaseErrorConstant)
)

// State tracks an in-progress calculation.
//
// PendingOperand never holds more than one decimal point, and Operator is
// OperatorNone exactly when no binary operation is pending.
type State struct {
	PendingOperand   string
	StoredValue      float64
	Operator         Operator
	AwaitingNewEntry bool
	Display          string
	LastOperator     Operator
	LastOperand      float64
}

// NewState returns the accumulator defaults used at session start and after clear.
func NewState() State {
	return State{
		PendingOperand:   "",
		StoredValue:      0,
		Operator:         OperatorNone,
		AwaitingNewEntry: true,
		Display:          defaultDisplayConstant,
	}
}

// Phase reports the coarse state for status lines and logs.
func (state State) Phase() Phase {
	switch {
	case state.Display == errorDisplayConstant:
		return PhaseError
	case state.Operator != OperatorNone && state.AwaitingNewEntry:
		return PhaseOperatorPending
	case !state.AwaitingNewEntry && len(state.PendingOperand) > 0:
		return PhaseEnteringOperand
	default:
		return PhaseIdle
	}
}

// errorState is the reset state shown after a divide-by-zero. It differs from
// NewState only in Display, which is what Phase reports as PhaseError.
func errorState() State {
	resetState := NewState()
	resetState.Display = errorDisplayConstant
	return resetState
}
