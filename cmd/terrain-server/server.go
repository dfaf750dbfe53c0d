package main

import (
	"encoding/json"
	"errors"
	"io/fs"
	"net/http"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/twpayne/go-terrain"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// A Server feeds grids, contour sets and statistics to a browser-side
// renderer. It does no rendering itself.
type Server struct {
	service           *terrain.Service
	scheme            terrain.ColorScheme
	defaultLevelCount int
	log               *zap.Logger
}

// A contourRequest is one message from the renderer.
type contourRequest struct {
	Map    string `json:"map"`
	Levels int    `json:"levels"`
}

// A contourResponse answers a contourRequest with everything the
// renderer needs to redraw.
type contourResponse struct {
	Map      string             `json:"map"`
	Stats    terrain.Stats      `json:"stats"`
	Contours terrain.ContourSet `json:"contours"`
	Error    string             `json:"error,omitempty"`
}

// handler returns the server's HTTP routes.
func (s *Server) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/stats", s.handleStats)
	mux.HandleFunc("GET /api/scheme", s.handleScheme)
	mux.HandleFunc("GET /ws", s.handleWS)
	return mux
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("map")
	stats, err := s.service.Stats(r.Context(), name)
	if err != nil {
		s.writeError(w, name, err)
		return
	}
	writeJSON(w, stats)
}

func (s *Server) handleScheme(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.scheme)
}

// handleWS upgrades the connection and answers contour requests until
// the renderer disconnects. Every request triggers a full re-extraction
// or a contour cache hit; nothing is updated incrementally.
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()
	s.log.Info("renderer connected", zap.String("remote", conn.RemoteAddr().String()))

	for {
		var req contourRequest
		if err := conn.ReadJSON(&req); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.log.Warn("read failed", zap.Error(err))
			}
			return
		}
		if req.Levels == 0 {
			req.Levels = s.defaultLevelCount
		}

		resp := contourResponse{
			Map: req.Map,
		}
		contours, err := s.service.Contours(r.Context(), req.Map, req.Levels)
		if err == nil {
			resp.Contours = contours
			resp.Stats, err = s.service.Stats(r.Context(), req.Map)
		}
		if err != nil {
			s.log.Warn("contour request failed",
				zap.String("map", req.Map),
				zap.Int("levels", req.Levels),
				zap.Error(err))
			resp.Error = err.Error()
		}

		if err := conn.WriteJSON(resp); err != nil {
			s.log.Warn("write failed", zap.Error(err))
			return
		}
	}
}

func (s *Server) writeError(w http.ResponseWriter, name string, err error) {
	var decodeError *terrain.DecodeError
	switch {
	case errors.Is(err, fs.ErrNotExist):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.As(err, &decodeError),
		errors.Is(err, terrain.ErrInsufficientResolution),
		errors.Is(err, terrain.ErrInvalidLevelCount):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	default:
		s.log.Error("request failed", zap.String("map", name), zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
