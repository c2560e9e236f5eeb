package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"rps_game/internal/domain"
	"rps_game/internal/logger"

	"github.com/gorilla/websocket"
)

// ws_smoke creates a session on a running server and plays a few rounds
// over the websocket, printing every frame it receives.
func main() {
	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}
	strategy := flag.String("strategy", "counter", "opponent strategy")
	rounds := flag.Int("rounds", 5, "rounds to play")
	flag.Parse()

	// use 127.0.0.1 to prefer IPv4 (avoid resolving to [::1])
	base := "127.0.0.1:" + port

	body, _ := json.Marshal(map[string]string{"strategy": *strategy})
	res, err := http.Post("http://"+base+"/api/v1/sessions", "application/json", bytes.NewReader(body))
	if err != nil {
		logger.Fatal("create session", "error", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusCreated {
		logger.Fatal("create session", "status", res.StatusCode)
	}

	var sess struct {
		SessionID string `json:"session_id"`
		Token     string `json:"token"`
	}
	if err := json.NewDecoder(res.Body).Decode(&sess); err != nil {
		logger.Fatal("decode session", "error", err)
	}

	conn, _, err := websocket.DefaultDialer.Dial("ws://"+base+"/ws?token="+sess.Token, nil)
	if err != nil {
		logger.Fatal("dial", "error", err)
	}
	defer conn.Close()

	read := func() {
		_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
		_, msg, err := conn.ReadMessage()
		if err != nil {
			logger.Fatal("read", "error", err)
		}
		fmt.Println(string(msg))
	}

	read() // ready
	for i := 0; i < *rounds; i++ {
		move := domain.AllMoves[i%len(domain.AllMoves)]
		if err := conn.WriteJSON(map[string]string{"type": "move", "move": string(move)}); err != nil {
			logger.Fatal("write", "error", err)
		}
		read()
	}

	_ = conn.WriteJSON(map[string]string{"type": "score"})
	read()
	fmt.Println("smoke test finished for session", sess.SessionID)
}
