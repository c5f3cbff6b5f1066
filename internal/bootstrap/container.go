package bootstrap

import (
	"context"
	"errors"
	"time"

	"expert-session-be/internal/config"
	"expert-session-be/internal/controller"
	"expert-session-be/internal/pkg/logger"
	"expert-session-be/internal/repository/memory"
	"expert-session-be/internal/service"
	"expert-session-be/internal/websocket"
	"expert-session-be/pkg/ai/matcher"
	"expert-session-be/pkg/ai/summary"
	"expert-session-be/pkg/events"
	"expert-session-be/pkg/llm"
	"expert-session-be/pkg/llm/factory"
	pktNats "expert-session-be/pkg/nats"
)

type Container struct {
	// Controllers
	ExpertController  controller.IExpertController
	SessionController controller.ISessionController
	RoleController    controller.IRoleController
	RoomController    controller.ISessionRoomController

	// Background Services (Exposed for main.go to run)
	ActivityService service.IActivityService
	SessionRoomHub  *websocket.Hub

	Logger logger.ILogger

	closers []func() error
}

func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())

	// 2. AI Provider
	llmProvider, err := NewLLMProvider(ctx, cfg, sysLogger)
	if err != nil {
		return nil, err
	}

	// 3. Event Bus
	bus := events.NewBus(events.NewLoggerAdapter(sysLogger))
	closers := []func() error{bus.Close}

	var forwarder events.Publisher
	if cfg.Nats.URL != "" {
		natsPublisher, err := pktNats.NewPublisher(ctx, cfg.Nats.URL)
		if err != nil {
			sysLogger.Warn("BOOTSTRAP", "NATS unavailable, events stay in-process", map[string]interface{}{
				"error": err.Error(),
			})
		} else {
			forwarder = natsPublisher
			closers = append(closers, func() error { natsPublisher.Close(); return nil })
		}
	}

	// 4. Repositories
	expertRepo := memory.NewExpertRepository(memory.SeedExperts())
	sessionRepo := memory.NewSessionRepository(
		time.Duration(cfg.App.SessionTTLMinutes)*time.Minute,
		memory.SeedSessions(time.Now()),
	)
	for _, msg := range memory.SeedMessages(time.Now()) {
		if err := sessionRepo.AddMessage(ctx, msg); err != nil {
			return nil, err
		}
	}

	// Session chat rooms
	roomHub := websocket.NewHub(sysLogger)

	// 5. Services
	expertMatcher := matcher.NewMatcher(llmProvider, sysLogger)
	summarizer := summary.NewSummarizer(llmProvider, sysLogger)

	expertService := service.NewExpertService(expertRepo, expertMatcher, sysLogger)
	sessionService := service.NewSessionService(sessionRepo, expertRepo, summarizer, bus, roomHub, sysLogger)
	activityService := service.NewActivityService(bus, forwarder, sysLogger)

	// 6. Controllers
	return &Container{
		ExpertController:  controller.NewExpertController(expertService),
		SessionController: controller.NewSessionController(sessionService),
		RoleController:    controller.NewRoleController(),
		RoomController:    controller.NewSessionRoomController(sessionService, roomHub, sysLogger),
		ActivityService:   activityService,
		SessionRoomHub:    roomHub,
		Logger:            sysLogger,
		closers:           closers,
	}, nil
}

// Close releases the event bus and broker connection.
func (c *Container) Close() error {
	var errs []error
	for _, closeFn := range c.closers {
		if err := closeFn(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// NewLLMProvider builds the configured backend. A missing key is not fatal:
// it yields a nil provider and every AI call takes its fallback path.
func NewLLMProvider(ctx context.Context, cfg *config.Config, log logger.ILogger) (llm.LLMProvider, error) {
	baseURL := ""
	switch cfg.Ai.LLMProvider {
	case "ollama":
		baseURL = cfg.Ai.OllamaBaseURL
	case "huggingface":
		baseURL = cfg.Ai.HuggingFaceBaseURL
	}

	provider, err := factory.NewLLMProvider(ctx, factory.ProviderConfig{
		Provider:  cfg.Ai.LLMProvider,
		Model:     cfg.Ai.LLMModel,
		BaseURL:   baseURL,
		GeminiKey: cfg.Keys.GoogleGemini,
		HFKey:     cfg.Keys.HuggingFace,
	})
	if errors.Is(err, llm.ErrMissingCredential) {
		log.Warn("BOOTSTRAP", "LLM API key not set, AI features will return fallback results", map[string]interface{}{
			"provider": cfg.Ai.LLMProvider,
		})
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	log.Info("BOOTSTRAP", "LLM provider ready", map[string]interface{}{
		"provider": cfg.Ai.LLMProvider,
		"model":    cfg.Ai.LLMModel,
	})
	return provider, nil
}
