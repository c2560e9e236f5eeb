package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"rps_game/internal/config"
	"rps_game/internal/domain"
	"rps_game/internal/game"
	"rps_game/internal/http/handlers"
	"rps_game/internal/logger"
	"rps_game/internal/service"
	"rps_game/internal/ws"

	"github.com/gin-gonic/gin"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	logger.Discard()
	gin.SetMode(gin.TestMode)
	if err := service.InitJWT("routes-secret", time.Hour); err != nil {
		t.Fatalf("InitJWT: %v", err)
	}

	cfg := &config.Config{
		APIRateLimit:   1000,
		APIRateWindow:  time.Minute,
		RoundRateLimit: 1000,
	}
	sessions := service.NewSessionService(game.NewFactory(1, domain.MoveScissors))
	r := gin.New()
	RegisterRoutes(r, sessions, ws.NewHub(), cfg, "test")
	return r
}

func do(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createSession(t *testing.T, r *gin.Engine, strategy string) handlers.CreateSessionResponse {
	t.Helper()
	w := do(t, r, http.MethodPost, "/api/v1/sessions", "", map[string]string{"strategy": strategy})
	if w.Code != http.StatusCreated {
		t.Fatalf("create session: %d %s", w.Code, w.Body.String())
	}
	var resp handlers.CreateSessionResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return resp
}

func TestPlayAgainstFixedOpponent(t *testing.T) {
	r := newTestRouter(t)
	sess := createSession(t, r, "fixed")
	if sess.Strategy != "fixed" || sess.Token == "" || sess.Score.Standing != service.StandingTied {
		t.Fatalf("session = %+v", sess)
	}

	w := do(t, r, http.MethodPost, "/api/v1/rounds", sess.Token, map[string]string{"move": "rock"})
	if w.Code != http.StatusOK {
		t.Fatalf("play: %d %s", w.Code, w.Body.String())
	}
	var res service.PlayResult
	_ = json.Unmarshal(w.Body.Bytes(), &res)
	if res.Bot != domain.MoveScissors || res.Outcome != domain.OutcomeWinner {
		t.Fatalf("result = %+v", res)
	}
	if res.Score.Wins != 1 || res.Score.Standing != service.StandingPlayerAhead {
		t.Fatalf("score = %+v", res.Score)
	}

	w = do(t, r, http.MethodPost, "/api/v1/rounds", sess.Token, map[string]string{"move": "paper"})
	_ = json.Unmarshal(w.Body.Bytes(), &res)
	if res.Outcome != domain.OutcomeLoser || res.Score.Rounds != 2 || res.Score.Standing != service.StandingTied {
		t.Fatalf("second result = %+v", res)
	}

	w = do(t, r, http.MethodGet, "/api/v1/score", sess.Token, nil)
	var sc service.Score
	_ = json.Unmarshal(w.Body.Bytes(), &sc)
	if w.Code != http.StatusOK || sc.Wins != 1 || sc.Losses != 1 {
		t.Fatalf("score: %d %+v", w.Code, sc)
	}

	w = do(t, r, http.MethodPost, "/api/v1/score/reset", sess.Token, nil)
	_ = json.Unmarshal(w.Body.Bytes(), &sc)
	if w.Code != http.StatusOK || sc.Rounds != 0 {
		t.Fatalf("reset: %d %+v", w.Code, sc)
	}
}

func TestRoundErrors(t *testing.T) {
	r := newTestRouter(t)
	sess := createSession(t, r, "counter")

	cases := []struct {
		name  string
		token string
		body  any
		code  int
	}{
		{"no token", "", map[string]string{"move": "rock"}, http.StatusUnauthorized},
		{"bad move", sess.Token, map[string]string{"move": "dynamite"}, http.StatusBadRequest},
		{"missing move", sess.Token, map[string]string{}, http.StatusBadRequest},
	}
	for _, tc := range cases {
		w := do(t, r, http.MethodPost, "/api/v1/rounds", tc.token, tc.body)
		if w.Code != tc.code {
			t.Fatalf("%s: status = %d; want %d (%s)", tc.name, w.Code, tc.code, w.Body.String())
		}
	}
}

func TestCreateSessionUnknownStrategy(t *testing.T) {
	r := newTestRouter(t)
	w := do(t, r, http.MethodPost, "/api/v1/sessions", "", map[string]string{"strategy": "cheater"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d; want 400", w.Code)
	}
}

func TestCreateSessionDefaultsToRandom(t *testing.T) {
	r := newTestRouter(t)
	w := do(t, r, http.MethodPost, "/api/v1/sessions", "", nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d", w.Code)
	}
	var resp handlers.CreateSessionResponse
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Strategy != "random" {
		t.Fatalf("strategy = %s; want random", resp.Strategy)
	}
}

func TestDeleteSession(t *testing.T) {
	r := newTestRouter(t)
	sess := createSession(t, r, "random")

	if w := do(t, r, http.MethodDelete, "/api/v1/sessions", sess.Token, nil); w.Code != http.StatusNoContent {
		t.Fatalf("delete: %d", w.Code)
	}
	if w := do(t, r, http.MethodGet, "/api/v1/score", sess.Token, nil); w.Code != http.StatusNotFound {
		t.Fatalf("score after delete: %d; want 404", w.Code)
	}
}

func TestProbesAndStrategies(t *testing.T) {
	r := newTestRouter(t)

	for _, path := range []string{"/health", "/healthz", "/readyz", "/metrics", "/api/v1/strategies"} {
		if w := do(t, r, http.MethodGet, path, "", nil); w.Code != http.StatusOK {
			t.Fatalf("GET %s: %d", path, w.Code)
		}
	}
}
