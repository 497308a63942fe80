package server

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"log"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/scatterlab/go-wavefront-tracer/pkg/renderer"
	"github.com/scatterlab/go-wavefront-tracer/pkg/scene"
)

// Server streams progressive render updates to browser clients.
type Server struct {
	port     int
	upgrader websocket.Upgrader
}

// NewServer creates a new web server
func NewServer(port int) *Server {
	return &Server{
		port: port,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

// RenderRequest is the first message a client sends on the render socket.
type RenderRequest struct {
	Width      int   `json:"width"`
	Height     int   `json:"height"`
	MaxSamples int   `json:"maxSamples"` // samples per pixel (passes)
	MaxBounces int   `json:"maxBounces"`
	Seed       int64 `json:"seed"`
}

// ProgressUpdate is one streamed message: a per-pass frame, the final
// completion marker, or an error.
type ProgressUpdate struct {
	Type        string `json:"type"` // "pass", "complete", "error"
	PassNumber  int    `json:"passNumber,omitempty"`
	TotalPasses int    `json:"totalPasses,omitempty"`
	Rays        int64  `json:"rays,omitempty"`
	ElapsedMs   int64  `json:"elapsedMs,omitempty"`
	ImageData   string `json:"imageData,omitempty"` // base64 encoded PNG
	Error       string `json:"error,omitempty"`
}

// Handler returns the server's routes, separate from Start for tests.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/", http.FileServer(http.Dir("static/")))
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/render", s.handleRender)
	return mux
}

// Start starts the web server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, `{"status":"ok"}`)
}

// handleRender upgrades to a websocket, reads one RenderRequest and streams
// a ProgressUpdate per pass until the render completes.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("Websocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	var req RenderRequest
	if err := conn.ReadJSON(&req); err != nil {
		s.sendError(conn, fmt.Sprintf("invalid render request: %v", err))
		return
	}
	cfg, err := configFromRequest(req)
	if err != nil {
		s.sendError(conn, err.Error())
		return
	}

	rend := renderer.NewRenderer(scene.NewDefaultScene(), cfg)
	writeErr := error(nil)
	img := rend.RenderProgressive(func(img *image.RGBA, stats renderer.PassStats) {
		if writeErr != nil {
			return
		}
		data, err := encodePNG(img)
		if err != nil {
			writeErr = err
			return
		}
		writeErr = conn.WriteJSON(ProgressUpdate{
			Type:        "pass",
			PassNumber:  stats.Pass,
			TotalPasses: stats.TotalPasses,
			Rays:        stats.Rays,
			ElapsedMs:   stats.ElapsedMs,
			ImageData:   data,
		})
	})
	if writeErr != nil {
		log.Printf("Render stream aborted: %v", writeErr)
		return
	}

	data, err := encodePNG(img)
	if err != nil {
		s.sendError(conn, err.Error())
		return
	}
	if err := conn.WriteJSON(ProgressUpdate{
		Type:        "complete",
		TotalPasses: cfg.SamplesPerPixel,
		ImageData:   data,
	}); err != nil {
		log.Printf("Failed to send completion: %v", err)
	}
}

func (s *Server) sendError(conn *websocket.Conn, msg string) {
	if err := conn.WriteJSON(ProgressUpdate{Type: "error", Error: msg}); err != nil {
		log.Printf("Failed to send error %q: %v", msg, err)
	}
}

// configFromRequest validates a request and fills in defaults.
func configFromRequest(req RenderRequest) (renderer.Config, error) {
	cfg := renderer.Config{
		Width:           req.Width,
		Height:          req.Height,
		SamplesPerPixel: req.MaxSamples,
		MaxBounces:      req.MaxBounces,
		Seed:            req.Seed,
	}
	if cfg.Width <= 0 {
		cfg.Width = 400
	}
	if cfg.Height <= 0 {
		cfg.Height = 225
	}
	if cfg.Width > 1920 || cfg.Height > 1080 {
		return cfg, fmt.Errorf("image size %dx%d exceeds 1920x1080", cfg.Width, cfg.Height)
	}
	if cfg.SamplesPerPixel <= 0 {
		cfg.SamplesPerPixel = 16
	}
	if cfg.MaxBounces <= 0 {
		cfg.MaxBounces = 8
	}
	return cfg, nil
}

func encodePNG(img *image.RGBA) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("encoding frame: %w", err)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
