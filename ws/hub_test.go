package ws

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
)

func TestHubBroadcast(t *testing.T) {
	hub := NewHub()
	added := make(chan *websocket.Conn, 1)
	done := make(chan struct{})

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, nil)
		if err != nil {
			return
		}
		hub.Add(conn)
		added <- conn
		<-done
	}))
	defer srv.Close()
	defer close(done)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client, _, err := websocket.Dial(ctx, "ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	if err != nil {
		t.Fatal(err)
	}
	defer client.CloseNow()

	serverConn := <-added
	if hub.Count() != 1 {
		t.Fatalf("Count() = %d, want 1", hub.Count())
	}

	if err := hub.BroadcastJSON(map[string]int{"seq": 1}); err != nil {
		t.Fatal(err)
	}
	typ, msg, err := client.Read(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if typ != websocket.MessageText || string(msg) != `{"seq":1}` {
		t.Errorf("got %v %s", typ, msg)
	}

	if err := Send(ctx, serverConn, "direct"); err != nil {
		t.Fatal(err)
	}
	if _, msg, err = client.Read(ctx); err != nil || string(msg) != `"direct"` {
		t.Errorf("got %s, %v", msg, err)
	}

	hub.Remove(serverConn)
	if hub.Count() != 0 {
		t.Errorf("Count() = %d after Remove", hub.Count())
	}
}

func TestBroadcastJSONRejectsUnencodable(t *testing.T) {
	hub := NewHub()
	if err := hub.BroadcastJSON(make(chan int)); err == nil {
		t.Error("expected an encoding error")
	}
}
