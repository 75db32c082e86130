package usecases

import (
	"context"
	"strings"
	"sync"

	"project_travelSafe/internal/entities"
	apperrors "project_travelSafe/internal/errors"
	"project_travelSafe/internal/interfaces"
	"project_travelSafe/internal/logger"
)

// TurnRecorder receives usage counts for completed turns.
type TurnRecorder interface {
	Record(platform string)
	RecordSafetyHit()
}

// ChatService is the turn-handling entry point: it validates the
// history, extracts a destination, runs the safety aggregation
// best-effort alongside the model call and composes the final reply.
type ChatService struct {
	ai         interfaces.AIClient
	aggregator *SafetyAggregator
	log        logger.Logger

	// Recorder is optional; set after construction when usage
	// counting is wanted.
	Recorder TurnRecorder
}

func NewChatService(ai interfaces.AIClient, aggregator *SafetyAggregator, log logger.Logger) *ChatService {
	return &ChatService{
		ai:         ai,
		aggregator: aggregator,
		log:        log,
	}
}

// HandleTurn processes one turn. Safety failures degrade to a plain
// reply; validation and model failures abort the turn.
func (s *ChatService) HandleTurn(ctx context.Context, history []entities.Message, origin, platform string) (*entities.TurnResult, error) {
	if err := validateHistory(history); err != nil {
		return nil, err
	}

	lastMessage := history[len(history)-1].Content
	destination := ExtractDestination(lastMessage)

	var (
		report   SafetyReport
		reply    string
		modelErr error
		wg       sync.WaitGroup
	)

	// The model call and the safety aggregation are independent; run
	// them concurrently and wait for both before composing.
	wg.Add(1)
	go func() {
		defer wg.Done()
		reply, modelErr = s.ai.SendTurn(ctx, history)
	}()

	if destination != "" && s.aggregator != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			report = s.aggregator.Aggregate(ctx, destination, origin)
		}()
	}

	wg.Wait()

	if modelErr != nil {
		return nil, apperrors.AsModel(modelErr)
	}

	composed := ComposeReply(reply, destination, report.Facts)

	if s.Recorder != nil {
		s.Recorder.Record(platform)
		if composed.SafetyData != nil {
			s.Recorder.RecordSafetyHit()
		}
	}

	return &entities.TurnResult{
		ComposedReply: composed,
		Destination:   destination,
		PlaceSafety:   report.Places,
		Routes:        report.Routes,
	}, nil
}

func validateHistory(history []entities.Message) error {
	if len(history) == 0 {
		return apperrors.NewValidationError("messages must be a non-empty array")
	}
	for i, msg := range history {
		if msg.Role != entities.RoleUser && msg.Role != entities.RoleAssistant {
			return apperrors.NewValidationError("unknown role in message history")
		}
		if strings.TrimSpace(msg.Content) == "" && i == len(history)-1 {
			return apperrors.NewValidationError("last message has no content")
		}
	}
	return nil
}
