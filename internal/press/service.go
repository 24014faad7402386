package press

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/temirov/tally/internal/accumulator"
	"github.com/temirov/tally/internal/keypad"
)

const (
	keysRequiredMessageConstant       = "at least one key must be provided"
	sequenceCompletedMessageConstant  = "key sequence replayed"
	logFieldKeyCountConstant          = "key_count"
	logFieldFinalDisplayConstant      = "display"
	logFieldSessionIdentifierConstant = "session_id"
)

// ErrKeysRequired indicates the key sequence was empty.
var ErrKeysRequired = errors.New(keysRequiredMessageConstant)

// ServiceDependencies enumerates collaborators required by the service.
type ServiceDependencies struct {
	Logger *zap.Logger
}

// Options configure a replay.
type Options struct {
	Keys       []accumulator.Event
	Calculator accumulator.Options
}

// Step records the display after one key.
type Step struct {
	Key     string `yaml:"key"`
	Display string `yaml:"display"`
	Phase   string `yaml:"phase"`
}

// Transcript captures the outcome of a replay.
type Transcript struct {
	SessionIdentifier string `yaml:"session"`
	EqualsMode        string `yaml:"equals_mode"`
	Steps             []Step `yaml:"steps,omitempty"`
	Display           string `yaml:"display"`
}

// Service replays key sequences through calculator sessions.
type Service struct {
	logger *zap.Logger
}

// NewService constructs a Service from the provided dependencies.
func NewService(dependencies ServiceDependencies) *Service {
	logger := dependencies.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{logger: logger}
}

// Run applies every key in order to a fresh session and returns the transcript.
func (service *Service) Run(executionContext context.Context, options Options) (Transcript, error) {
	if len(options.Keys) == 0 {
		return Transcript{}, ErrKeysRequired
	}
	if executionContext == nil {
		executionContext = context.Background()
	}

	session := accumulator.NewSession(options.Calculator, service.logger)
	transcript := Transcript{
		SessionIdentifier: session.Identifier(),
		EqualsMode:        string(options.Calculator.EqualsMode),
		Steps:             make([]Step, 0, len(options.Keys)),
	}
	if len(transcript.EqualsMode) == 0 {
		transcript.EqualsMode = string(accumulator.EqualsModeNoop)
	}

	for _, key := range options.Keys {
		if contextError := executionContext.Err(); contextError != nil {
			return Transcript{}, contextError
		}
		display := session.Press(key)
		transcript.Steps = append(transcript.Steps, Step{
			Key:     keypad.Label(key),
			Display: display,
			Phase:   string(session.State().Phase()),
		})
	}

	transcript.Display = session.Display()
	service.logger.Info(
		sequenceCompletedMessageConstant,
		zap.String(logFieldSessionIdentifierConstant, session.Identifier()),
		zap.Int(logFieldKeyCountConstant, len(options.Keys)),
		zap.String(logFieldFinalDisplayConstant, transcript.Display),
	)
	return transcript, nil
}
