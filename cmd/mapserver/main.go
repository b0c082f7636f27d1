package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"net/http"
	"os"
	"sync/atomic"
	"time"

	"github.com/coder/websocket"

	"crypthack/config"
	"crypthack/data"
	"crypthack/protocol"
	"crypthack/web/views"
	"crypthack/ws"
)

func main() {
	seed := flag.Int64("seed", time.Now().UnixNano(), "generator seed")
	tickMillis := flag.Int("tick", config.ServerTickMillis, "milliseconds between generator steps")
	themeID := flag.String("theme", "meadow", "tile theme")
	templateDir := flag.String("templates", "", "directory of extra JSON templates")
	flag.Parse()

	if *tickMillis < 1 {
		log.Fatalf("tick must be at least 1ms, got %d", *tickMillis)
	}

	templates, err := data.LoadDefaultTemplates()
	if err != nil {
		log.Fatal(err)
	}
	if *templateDir != "" {
		if err := templates.LoadTemplatesFromDirectory(*templateDir); err != nil {
			log.Fatal(err)
		}
	}
	theme, ok := templates.GetTheme(*themeID)
	if !ok {
		log.Fatalf("unknown theme %q, have %v", *themeID, templates.ThemeIDs())
	}

	state, err := NewMapState(templates, theme, *seed)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("generating %s with seed %d", theme.Name, *seed)

	hub := ws.NewHub()
	var sequence uint64

	broadcastEvent := func(eventType string, payload any) {
		seq := atomic.AddUint64(&sequence, 1)
		if err := hub.BroadcastJSON(protocol.PatchEnvelope{
			Sequence: seq,
			EventID:  int64(seq),
			Type:     eventType,
			Payload:  payload,
		}); err != nil {
			log.Printf("broadcast %s: %v", eventType, err)
		}
	}
	publishStep := func(step protocol.StepApplied, changes []protocol.PhaseChanged) {
		broadcastEvent(protocol.TypeStepApplied, step)
		for _, change := range changes {
			log.Printf("phase %s -> %s", change.From, change.To)
			broadcastEvent(protocol.TypePhaseChanged, change)
		}
	}

	go func() {
		ticker := time.NewTicker(time.Duration(*tickMillis) * time.Millisecond)
		defer ticker.Stop()
		for range ticker.C {
			if step, changes, ok := state.Advance(); ok {
				publishStep(step, changes)
			}
		}
	}()

	mux := http.NewServeMux()

	mux.HandleFunc("/stream", func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{InsecureSkipVerify: true})
		if err != nil {
			return
		}
		hub.Add(conn)

		hello := protocol.PatchEnvelope{
			Sequence: atomic.LoadUint64(&sequence),
			Type:     protocol.TypeSnapshot,
			Payload:  state.Snapshot(),
		}
		_ = ws.Send(context.Background(), conn, hello)

		go func(c *websocket.Conn) {
			defer hub.Remove(c)
			defer c.Close(websocket.StatusNormalClosure, "")
			for {
				_, msg, err := c.Read(context.Background())
				if err != nil {
					return
				}
				var env protocol.IntentEnvelope
				if err := json.Unmarshal(msg, &env); err != nil {
					continue
				}
				switch env.Type {
				case protocol.IntentRegenerate:
					var req protocol.RequestRegenerate
					if len(env.Payload) > 0 {
						if err := json.Unmarshal(env.Payload, &req); err != nil {
							continue
						}
					}
					s, err := state.Regenerate(req.Seed)
					if err != nil {
						_ = ws.Send(context.Background(), c, protocol.PatchEnvelope{
							Type:    protocol.TypeError,
							Payload: protocol.ErrorMessage{Message: err.Error()},
						})
						continue
					}
					log.Printf("regenerating with seed %d", s.Seed)
					broadcastEvent(protocol.TypeSnapshot, s)
				case protocol.IntentSetPaused:
					var req protocol.RequestSetPaused
					if err := json.Unmarshal(env.Payload, &req); err != nil {
						continue
					}
					broadcastEvent(protocol.TypeSnapshot, state.SetPaused(req.Paused))
				case protocol.IntentStep:
					if step, changes, ok := state.Step(); ok {
						publishStep(step, changes)
					}
				}
			}
		}(conn)
	})

	mux.HandleFunc("/snapshot.json", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(state.Snapshot()); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		if err := views.IndexPage(state.Snapshot()).Render(r.Context(), w); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = config.DefaultPort
	}
	log.Printf("listening on :%s", port)
	log.Fatal(http.ListenAndServe(":"+port, mux))
}
