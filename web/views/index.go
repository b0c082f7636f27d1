package views

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"crypthack/protocol"
)

const cellSize = 12

// IndexPage renders the live map viewer seeded with s
func IndexPage(s protocol.Snapshot) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		initial, err := json.Marshal(s)
		if err != nil {
			return err
		}

		title := fmt.Sprintf("CryptHack map server - seed %d", s.Seed)
		_, err = fmt.Fprintf(w, indexTemplate,
			templ.EscapeString(title),
			templ.EscapeString(title),
			s.Grid.Width*cellSize, s.Grid.Length*cellSize,
			templ.EscapeString(string(initial)),
			cellSize,
		)
		return err
	})
}

const indexTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>%s</title>
<style>
body { background: #111; color: #ddd; font-family: monospace; margin: 16px; }
canvas { background: #000; border: 1px solid #444; image-rendering: pixelated; }
button { font-family: monospace; margin-right: 4px; }
#status { margin: 8px 0; white-space: pre; }
</style>
</head>
<body>
<h1>%s</h1>
<div>
<button id="down">layer -</button>
<button id="up">layer +</button>
<button id="pause">pause</button>
<button id="step">step</button>
<button id="regen">regenerate</button>
</div>
<div id="status"></div>
<canvas id="map" width="%d" height="%d" data-snapshot="%s"></canvas>
<script>
(function () {
  const cell = %d;
  const canvas = document.getElementById("map");
  const ctx = canvas.getContext("2d");
  const status = document.getElementById("status");
  let state = JSON.parse(canvas.dataset.snapshot);
  let layer = 0;
  let follow = true;

  const proto = location.protocol === "https:" ? "wss://" : "ws://";
  const socket = new WebSocket(proto + location.host + "/stream");

  function send(type, payload) {
    if (socket.readyState === WebSocket.OPEN) {
      socket.send(JSON.stringify({ type: type, payload: payload || {} }));
    }
  }

  function cellXY(p) {
    return [p.x * cell, (state.grid.length - 1 - p.z) * cell];
  }

  function draw() {
    ctx.fillStyle = "#000";
    ctx.fillRect(0, 0, canvas.width, canvas.height);
    const palette = state.palette || {};

    for (const room of state.rooms) {
      if (layer < room.min.y || layer > room.max.y) continue;
      const [x0, y1] = cellXY({ x: room.min.x, z: room.min.z });
      const [x1, y0] = cellXY({ x: room.max.x, z: room.max.z });
      ctx.fillStyle = palette[room.floor] || "#505050";
      ctx.fillRect(x0, y0, x1 - x0 + cell, y1 - y0 + cell);
      ctx.strokeStyle = "#e6e6e6";
      ctx.strokeRect(x0 + 0.5, y0 + 0.5, x1 - x0 + cell - 1, y1 - y0 + cell - 1);
    }

    for (const exit of state.exits) {
      ctx.fillStyle = exit.to < 0 ? "#8c5a2a" : "#b0b0b0";
      for (const point of exit.path) {
        if (point.position.y !== layer) continue;
        const [x, y] = cellXY(point.position);
        ctx.fillRect(x + 2, y + 2, cell - 4, cell - 4);
      }
    }

    ctx.fillStyle = "#d04040";
    for (const entrance of state.entrances) {
      if (entrance.position.y !== layer) continue;
      const [x, y] = cellXY(entrance.position);
      ctx.fillRect(x + cell / 3, y + cell / 3, cell / 3, cell / 3);
    }

    for (const actor of state.actors) {
      if (actor.position.y !== layer) continue;
      const [x, y] = cellXY(actor.position);
      ctx.fillStyle = actor.color || "#ffd23c";
      ctx.beginPath();
      ctx.arc(x + cell / 2, y + cell / 2, cell / 2 - 1, 0, 2 * Math.PI);
      ctx.fill();
    }

    status.textContent =
      state.phase + "  attempt " + state.attempts + "/" + state.maxAttempts +
      "  rooms " + state.rooms.length + "  exits " + state.exits.length +
      "  entrances " + state.entrances.length + "  restarts " + state.restarts +
      "\nlayer " + layer + "/" + (state.grid.height - 1) +
      "  surfaces " + state.surfaceCount + (state.paused ? "  PAUSED" : "");
  }

  function apply(next) {
    state = next;
    if (follow && state.actors.length > 0) {
      layer = state.actors[0].position.y;
    } else if (follow && state.rooms.length > 0 && state.phase !== "Playing") {
      layer = state.rooms[0].min.y;
    }
    draw();
  }

  socket.onmessage = function (event) {
    const env = JSON.parse(event.data);
    switch (env.type) {
      case "Snapshot":
        apply(env.payload);
        break;
      case "StepApplied":
        apply(env.payload.snapshot);
        break;
      case "PhaseChanged":
        if (env.payload.to === "StartMapGen") follow = true;
        break;
      case "Error":
        status.textContent = env.payload.message;
        break;
    }
  };

  function shift(delta) {
    follow = false;
    layer = Math.max(0, Math.min(state.grid.height - 1, layer + delta));
    draw();
  }

  document.getElementById("down").onclick = function () { shift(-1); };
  document.getElementById("up").onclick = function () { shift(1); };
  document.getElementById("pause").onclick = function () { send("RequestSetPaused", { paused: !state.paused }); };
  document.getElementById("step").onclick = function () { send("RequestStep"); };
  document.getElementById("regen").onclick = function () { follow = true; send("RequestRegenerate"); };

  apply(state);
})();
</script>
</body>
</html>
`
