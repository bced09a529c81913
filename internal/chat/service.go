package chat

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/smarthub/restaurant-backend/internal/llm"
	"github.com/smarthub/restaurant-backend/internal/menu"
	"github.com/smarthub/restaurant-backend/internal/observability/metrics"
	"github.com/smarthub/restaurant-backend/pkg/logging"
)

// MenuSearcher supplies grounding facts for menu questions.
type MenuSearcher interface {
	Search(ctx context.Context, terms []string, limit int) ([]menu.GroundingItem, error)
	Sample(ctx context.Context, limit int) ([]menu.GroundingItem, error)
}

// ReplyKind tags how a reply was produced.
type ReplyKind string

const (
	// ReplyDirect is a canned answer; no model call was made.
	ReplyDirect ReplyKind = "direct"
	// ReplyGenerated came from the text-generation service.
	ReplyGenerated ReplyKind = "generated"
)

// Reply is the outcome of handling one message.
type Reply struct {
	Text string
	Kind ReplyKind
}

// ErrEmptyMessage is returned before classification for blank input.
var ErrEmptyMessage = errors.New("chat: message required")

const (
	// maxGroundingItems caps how many catalog rows a prompt embeds.
	maxGroundingItems = 10
	// sampleSize is the unfiltered fallback when no search terms survive.
	sampleSize = 5
)

// Service routes a chat message to a response strategy. Each call is
// stateless: one classification, at most one generation call.
type Service struct {
	llm       llm.Client
	menu      MenuSearcher
	info      RestaurantInfo
	logger    *logging.Logger
	metrics   *metrics.ChatMetrics
	maxTokens int32
}

// NewService creates the chat service with explicit collaborators.
func NewService(llmClient llm.Client, menuStore MenuSearcher, info RestaurantInfo, logger *logging.Logger) *Service {
	if logger == nil {
		logger = logging.Default()
	}
	if info.Name == "" {
		info = DefaultInfo()
	}
	return &Service{
		llm:       llmClient,
		menu:      menuStore,
		info:      info,
		logger:    logger,
		maxTokens: 256,
	}
}

// WithMetrics attaches chat metrics.
func (s *Service) WithMetrics(m *metrics.ChatMetrics) *Service {
	s.metrics = m
	return s
}

// WithMaxTokens caps generation length; prompts already ask for short
// answers, this is the hard stop.
func (s *Service) WithMaxTokens(n int32) *Service {
	if n > 0 {
		s.maxTokens = n
	}
	return s
}

// HandleMessage classifies text and returns either a canned reply or a
// generated one. The only side effect is at most one outbound model call.
func (s *Service) HandleMessage(ctx context.Context, text string) (Reply, error) {
	if strings.TrimSpace(text) == "" {
		return Reply{}, ErrEmptyMessage
	}

	intent := Classify(text)
	s.metrics.ObserveIntent(string(intent))
	s.logger.Info("chat message classified", "intent", intent)

	var prompt string
	switch intent {
	case IntentReservation:
		// Canned on purpose: a reservation question never costs a model call.
		return Reply{Text: reservationReply(s.info), Kind: ReplyDirect}, nil
	case IntentHours:
		prompt = hoursPrompt(s.info, text)
	case IntentContact:
		prompt = contactPrompt(s.info, text)
	case IntentMenu:
		prompt = s.buildMenuPrompt(ctx, text)
	default:
		prompt = generalPrompt(text)
	}

	start := time.Now()
	resp, err := s.llm.Complete(ctx, llm.Request{Prompt: prompt, MaxTokens: s.maxTokens})
	if err != nil {
		s.metrics.ObserveGeneration(generationOutcome(err), time.Since(start).Seconds())
		s.logger.Error("generation failed", "intent", intent, "error", err)
		return Reply{}, err
	}
	s.metrics.ObserveGeneration("ok", time.Since(start).Seconds())

	return Reply{Text: resp.Text, Kind: ReplyGenerated}, nil
}

// buildMenuPrompt grounds a menu question in catalog rows. A store
// failure degrades to the no-match prompt; it never fails the message.
func (s *Service) buildMenuPrompt(ctx context.Context, text string) string {
	terms := SearchTerms(text)

	var items []menu.GroundingItem
	var err error
	if len(terms) == 0 {
		// Nothing usable to search on ("menu?!"): show a small unfiltered
		// sample instead of failing.
		items, err = s.menu.Sample(ctx, sampleSize)
	} else {
		items, err = s.menu.Search(ctx, terms, maxGroundingItems)
	}
	if err != nil {
		s.logger.Error("menu grounding query failed", "error", err)
		items = nil
	}
	if len(items) > maxGroundingItems {
		items = items[:maxGroundingItems]
	}

	if len(items) == 0 {
		return menuNoMatchPrompt(s.info, text)
	}
	s.logger.Debug("menu grounding items found", "count", len(items), "terms", terms)
	return menuPrompt(s.info, text, items)
}

func generationOutcome(err error) string {
	switch {
	case errors.Is(err, llm.ErrInvalidResponse):
		return "invalid_response"
	case errors.Is(err, llm.ErrExhausted):
		return "exhausted"
	default:
		return "error"
	}
}
