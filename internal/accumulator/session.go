package accumulator

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	sessionStartedMessageConstant      = "calculator session started"
	sessionEventAppliedMessageConstant = "key applied"
	sessionDivideByZeroMessageConstant = "division by zero; accumulator reset"
	logFieldSessionIdentifierConstant  = "session_id"
	logFieldEventConstant              = "event"
	logFieldPhaseConstant              = "phase"
	logFieldDisplayConstant            = "display"
	logFieldEqualsModeConstant         = "equals_mode"
)

// Session owns the accumulator state for one front end. It is not safe for concurrent use.
type Session struct {
	identifier string
	state      State
	options    Options
	logger     *zap.Logger
}

// NewSession starts a session with default state. A nil logger disables logging.
func NewSession(options Options, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	if len(options.EqualsMode) == 0 {
		options.EqualsMode = EqualsModeNoop
	}

	identifier := uuid.NewString()
	session := &Session{
		identifier: identifier,
		state:      NewState(),
		options:    options,
		logger:     logger.With(zap.String(logFieldSessionIdentifierConstant, identifier)),
	}
	session.logger.Debug(sessionStartedMessageConstant, zap.String(logFieldEqualsModeConstant, string(options.EqualsMode)))
	return session
}

// Identifier returns the session identifier attached to every log entry.
func (session *Session) Identifier() string {
	return session.identifier
}

// Press applies one event and returns the new display string.
func (session *Session) Press(event Event) string {
	previousPhase := session.state.Phase()
	nextState, display := Apply(session.state, event, session.options)
	session.state = nextState

	if nextState.Phase() == PhaseError && previousPhase != PhaseError {
		session.logger.Warn(sessionDivideByZeroMessageConstant, zap.Stringer(logFieldEventConstant, event))
		return display
	}

	session.logger.Debug(
		sessionEventAppliedMessageConstant,
		zap.Stringer(logFieldEventConstant, event),
		zap.String(logFieldPhaseConstant, string(nextState.Phase())),
		zap.String(logFieldDisplayConstant, display),
	)
	return display
}

// Display returns the string currently shown.
func (session *Session) Display() string {
	return session.state.Display
}

// State returns a copy of the current accumulator state.
func (session *Session) State() State {
	return session.state
}
