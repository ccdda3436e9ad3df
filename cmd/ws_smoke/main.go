package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/websocket"
)

// Smoke client for the dashboard event stream: connects with a token, then
// prints every event until the deadline. Create a task from another terminal
// to see a task.created frame arrive.
func main() {
	token := os.Getenv("TOKEN")
	if token == "" {
		log.Fatal("TOKEN not set (run cmd/seed_demo to get one)")
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}

	// 127.0.0.1 to prefer IPv4 (avoid resolving to [::1])
	url := "ws://127.0.0.1:" + port + "/ws"
	header := http.Header{"Authorization": {"Bearer " + token}}

	conn, _, err := websocket.DefaultDialer.Dial(url, header)
	if err != nil {
		log.Fatalf("dial %s: %v", url, err)
	}
	defer conn.Close()

	log.Printf("connected to %s, waiting for events", url)
	deadline := time.Now().Add(60 * time.Second)

	for time.Now().Before(deadline) {
		_ = conn.SetReadDeadline(deadline)
		_, msg, err := conn.ReadMessage()
		if err != nil {
			log.Printf("read: %v", err)
			return
		}
		log.Printf("event: %s", msg)
	}
}
