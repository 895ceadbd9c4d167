package net

import "net/http"

// viewerHTML renders the pages sent over /ws onto a canvas per page.
const viewerHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>TacNotepad</title>
<style>
body { margin: 0; font-family: sans-serif; background: #333; color: #eee; }
nav button { margin: 4px; }
canvas { background: #fff; display: block; margin: 0 auto; }
</style>
</head>
<body>
<nav id="tabs"></nav>
<canvas id="board" width="1024" height="768"></canvas>
<script>
const pages = {};
let current = 1;
const board = document.getElementById("board");
const ctx = board.getContext("2d");

function draw() {
  ctx.clearRect(0, 0, board.width, board.height);
  ctx.lineCap = "round";
  ctx.lineJoin = "round";
  for (const p of pages[current] || []) {
    if (p.points.length < 2) continue;
    ctx.strokeStyle = p.color;
    ctx.lineWidth = p.width;
    ctx.beginPath();
    ctx.moveTo(p.points[0].X, p.points[0].Y);
    for (const pt of p.points.slice(1)) ctx.lineTo(pt.X, pt.Y);
    ctx.stroke();
  }
}

function tabs() {
  const nav = document.getElementById("tabs");
  nav.innerHTML = "";
  for (const n of Object.keys(pages).sort()) {
    const b = document.createElement("button");
    b.textContent = "Page " + n;
    b.disabled = Number(n) === current;
    b.onclick = () => { current = Number(n); tabs(); draw(); };
    nav.appendChild(b);
  }
}

const ws = new WebSocket("ws://" + location.host + "/ws");
ws.onmessage = (ev) => {
  const msg = JSON.parse(ev.data);
  if (msg.type !== "page") return;
  pages[msg.page] = msg.paths;
  tabs();
  if (msg.page === current) draw();
};
</script>
</body>
</html>
`

func (m *Mirror) serveViewer(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(viewerHTML))
}
