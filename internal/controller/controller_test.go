package controller

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"expert-session-be/internal/dto"
	"expert-session-be/internal/pkg/logger"
	"expert-session-be/internal/pkg/serverutils"
	"expert-session-be/internal/repository/memory"
	"expert-session-be/internal/service"
	internalWS "expert-session-be/internal/websocket"
	"expert-session-be/pkg/ai/matcher"
	"expert-session-be/pkg/ai/summary"
	"expert-session-be/pkg/llm"
	"expert-session-be/pkg/llm/llmtest"

	fastws "github.com/fasthttp/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupApp(provider llm.LLMProvider) *fiber.App {
	app, _ := setupAppWithHub(provider)
	return app
}

// setupAppWithHub returns a hub that is not running yet.
func setupAppWithHub(provider llm.LLMProvider) (*fiber.App, *internalWS.Hub) {
	log := logger.NewNopLogger()
	expertRepo := memory.NewExpertRepository(memory.SeedExperts())
	sessionRepo := memory.NewSessionRepository(time.Hour, memory.SeedSessions(time.Now()))
	for _, m := range memory.SeedMessages(time.Now()) {
		_ = sessionRepo.AddMessage(context.Background(), m)
	}
	hub := internalWS.NewHub(log)

	expertService := service.NewExpertService(expertRepo, matcher.NewMatcher(provider, log), log)
	sessionService := service.NewSessionService(sessionRepo, expertRepo, summary.NewSummarizer(provider, log), nil, hub, log)

	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware())
	app.Use(serverutils.RoleMiddleware(""))

	api := app.Group("/api")
	NewExpertController(expertService).RegisterRoutes(api)
	NewSessionController(sessionService).RegisterRoutes(api)
	NewRoleController().RegisterRoutes(api)
	NewSessionRoomController(sessionService, hub, log).RegisterRoutes(api)
	return app, hub
}

func doRequest[T any](t *testing.T, app *fiber.App, method, path, body string, headers ...string) (int, serverutils.BaseResponse[T]) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var out serverutils.BaseResponse[T]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

func TestExpertRoutes(t *testing.T) {
	app := setupApp(&llmtest.FakeProvider{Response: "```json\n[\"e5\", \"e3\"]\n```"})

	t.Run("list with tag filter", func(t *testing.T) {
		code, res := doRequest[[]dto.ExpertResponse](t, app, "GET", "/api/expert/v1?tag=business", "")
		require.Equal(t, 200, code)
		require.Len(t, res.Data, 2)
		assert.Equal(t, "e3", res.Data[0].Id)
		assert.Equal(t, "e5", res.Data[1].Id)
	})

	t.Run("show unknown", func(t *testing.T) {
		code, res := doRequest[any](t, app, "GET", "/api/expert/v1/e42", "")
		assert.Equal(t, 404, code)
		assert.False(t, res.Success)
	})

	t.Run("match", func(t *testing.T) {
		code, res := doRequest[dto.MatchExpertsResponse](t, app, "POST", "/api/expert/v1/match", `{"query":"grow my startup online"}`)
		require.Equal(t, 200, code)
		assert.Equal(t, "ai_matched", res.Data.Mode)
		assert.Equal(t, []string{"e5", "e3"}, res.Data.MatchedIds)
		require.Len(t, res.Data.Experts, 2)
		assert.Equal(t, "Yuki Tanaka", res.Data.Experts[0].Name)
	})

	t.Run("match without body", func(t *testing.T) {
		code, res := doRequest[dto.MatchExpertsResponse](t, app, "POST", "/api/expert/v1/match", "")
		require.Equal(t, 200, code)
		assert.Equal(t, "all", res.Data.Mode)
		assert.Len(t, res.Data.Experts, 5)
	})
}

func TestSessionRoutes(t *testing.T) {
	app := setupApp(nil)

	t.Run("dashboard grouping", func(t *testing.T) {
		code, res := doRequest[dto.ListSessionsResponse](t, app, "GET", "/api/session/v1", "")
		require.Equal(t, 200, code)
		require.Len(t, res.Data.Upcoming, 1)
		require.Len(t, res.Data.Past, 1)
	})

	t.Run("book", func(t *testing.T) {
		date := time.Now().Add(72 * time.Hour).UTC().Format(time.RFC3339)
		body := `{"expert_id":"e4","date":"` + date + `","duration_minutes":90,"topic":"Calculus review"}`

		code, res := doRequest[dto.SessionResponse](t, app, "POST", "/api/session/v1", body)
		require.Equal(t, 201, code)
		assert.Equal(t, 201, res.Code)
		assert.True(t, res.Success)
		assert.Equal(t, "James Wilson", res.Data.ExpertName)
		assert.InDelta(t, 90.0, res.Data.Subtotal, 0.0001)
		assert.InDelta(t, 5.0, res.Data.ServiceFee, 0.0001)
		assert.InDelta(t, 95.0, res.Data.Price, 0.0001)

		code, list := doRequest[dto.ListSessionsResponse](t, app, "GET", "/api/session/v1", "")
		require.Equal(t, 200, code)
		assert.Len(t, list.Data.Upcoming, 2)
	})

	t.Run("book validation", func(t *testing.T) {
		code, res := doRequest[any](t, app, "POST", "/api/session/v1", `{"expert_id":"e4","duration_minutes":5}`)
		assert.Equal(t, 400, code)
		assert.Contains(t, res.Message, "DurationMinutes must be at least 15")
	})

	t.Run("sample transcript", func(t *testing.T) {
		code, res := doRequest[dto.TranscriptResponse](t, app, "GET", "/api/session/v1/transcript/sample", "")
		require.Equal(t, 200, code)
		assert.Equal(t, memory.SampleTranscript, res.Data.Transcript)
	})

	t.Run("summary without credential", func(t *testing.T) {
		code, res := doRequest[dto.SessionSummaryResponse](t, app, "POST", "/api/session/v1/s1/summary", "")
		require.Equal(t, 200, code)
		assert.Equal(t, "API Key missing.", res.Data.Summary)
		assert.NotNil(t, res.Data.ActionItems)
		assert.Empty(t, res.Data.ActionItems)
	})

	t.Run("summary for unknown session", func(t *testing.T) {
		code, _ := doRequest[any](t, app, "POST", "/api/session/v1/zzz/summary", `{"transcript":"hi"}`)
		assert.Equal(t, 404, code)
	})
}

func TestSessionMessageRoutes(t *testing.T) {
	app := setupApp(nil)

	t.Run("history", func(t *testing.T) {
		code, res := doRequest[[]dto.MessageResponse](t, app, "GET", "/api/session/v1/s1/messages", "")
		require.Equal(t, 200, code)
		require.Len(t, res.Data, 2)
		assert.Equal(t, "Hi! Ready to start?", res.Data[0].Text)
	})

	t.Run("send text as expert", func(t *testing.T) {
		code, res := doRequest[dto.MessageResponse](t, app, "POST", "/api/session/v1/s1/messages", `{"text":"Let's begin."}`, serverutils.RoleHeader, "EXPERT")
		require.Equal(t, 201, code)
		assert.Equal(t, 201, res.Code)
		assert.Equal(t, "text", res.Data.Type)
		assert.Equal(t, "EXPERT", res.Data.SenderRole)
		assert.Equal(t, "e1", res.Data.SenderId)

		_, list := doRequest[[]dto.MessageResponse](t, app, "GET", "/api/session/v1/s1/messages", "")
		require.Len(t, list.Data, 3)
		assert.Equal(t, res.Data.Id, list.Data[2].Id)
	})

	t.Run("send file", func(t *testing.T) {
		code, res := doRequest[dto.MessageResponse](t, app, "POST", "/api/session/v1/s1/messages",
			`{"type":"file","file_name":"Project_Requirements_v2.pdf","file_size":"2.4 MB"}`)
		require.Equal(t, 201, code)
		assert.Equal(t, "file", res.Data.Type)
		assert.Equal(t, "Project_Requirements_v2.pdf", res.Data.FileName)
		assert.Equal(t, "2.4 MB", res.Data.FileSize)
	})

	t.Run("file without name", func(t *testing.T) {
		code, res := doRequest[any](t, app, "POST", "/api/session/v1/s1/messages", `{"type":"file"}`)
		assert.Equal(t, 400, code)
		assert.Contains(t, res.Message, "FileName is required")
	})

	t.Run("unknown type", func(t *testing.T) {
		code, res := doRequest[any](t, app, "POST", "/api/session/v1/s1/messages", `{"type":"video","text":"x"}`)
		assert.Equal(t, 400, code)
		assert.Contains(t, res.Message, "Type must be one of")
	})

	t.Run("unknown session", func(t *testing.T) {
		code, _ := doRequest[any](t, app, "GET", "/api/session/v1/zzz/messages", "")
		assert.Equal(t, 404, code)
	})
}

func TestSessionRoomRoutes(t *testing.T) {
	t.Run("plain http needs an upgrade", func(t *testing.T) {
		app := setupApp(nil)
		code, res := doRequest[any](t, app, "GET", "/api/session/v1/s1/ws", "")
		assert.Equal(t, 426, code)
		assert.False(t, res.Success)
	})

	t.Run("unknown session", func(t *testing.T) {
		app := setupApp(nil)
		code, _ := doRequest[any](t, app, "GET", "/api/session/v1/zzz/ws", "")
		assert.Equal(t, 404, code)
	})

	t.Run("posted message reaches the room", func(t *testing.T) {
		app, hub := setupAppWithHub(nil)
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go hub.Run(ctx)

		ln, err := net.Listen("tcp", "127.0.0.1:0")
		require.NoError(t, err)
		go func() { _ = app.Listener(ln) }()
		defer func() { _ = app.ShutdownWithTimeout(time.Second) }()

		conn, _, err := fastws.DefaultDialer.Dial("ws://"+ln.Addr().String()+"/api/session/v1/s1/ws", nil)
		require.NoError(t, err)
		defer conn.Close()
		require.Eventually(t, func() bool { return hub.RoomSize("s1") == 1 }, 2*time.Second, 10*time.Millisecond)

		code, sent := doRequest[dto.MessageResponse](t, app, "POST", "/api/session/v1/s1/messages", `{"text":"hello room"}`)
		require.Equal(t, 201, code)

		require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
		_, raw, err := conn.ReadMessage()
		require.NoError(t, err)

		var frame struct {
			Type string              `json:"type"`
			Data dto.MessageResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(raw, &frame))
		assert.Equal(t, "message", frame.Type)
		assert.Equal(t, sent.Data.Id, frame.Data.Id)
		assert.Equal(t, "hello room", frame.Data.Text)
	})
}

func TestRoleRoutes(t *testing.T) {
	app := setupApp(nil)

	code, res := doRequest[dto.RoleResponse](t, app, "GET", "/api/role/v1", "")
	require.Equal(t, 200, code)
	assert.Equal(t, "CLIENT", res.Data.Role)

	_, res = doRequest[dto.RoleResponse](t, app, "POST", "/api/role/v1/toggle", "")
	assert.Equal(t, "EXPERT", res.Data.Role)

	_, res = doRequest[dto.RoleResponse](t, app, "POST", "/api/role/v1/toggle", "", serverutils.RoleHeader, "EXPERT")
	assert.Equal(t, "CLIENT", res.Data.Role)
}
