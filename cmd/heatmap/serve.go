// seehuhn.de/go/heatmap - heat map rendering from weighted point samples
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"seehuhn.de/go/heatmap"
)

type serveCmd struct {
	RenderOptions `embed:""`

	Addr string `default:"localhost:8080" help:"Address to listen on."`
	Data string `help:"Initial sample file (JSON or GeoJSON)."`
}

func (c *serveCmd) Run(g *Globals) error {
	cfg, err := c.config()
	if err != nil {
		return err
	}
	h := heatmap.New(cfg)
	if c.Data != "" {
		d, err := readDataset(c.Data)
		if err != nil {
			return err
		}
		h.SetData(d)
	}

	srv := &http.Server{
		Addr:              c.Addr,
		Handler:           newServer(h, g.Logger).routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	g.Logger.Info("listening", "addr", c.Addr)
	err = srv.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// server exposes a heat map over HTTP.  Samples arrive over a WebSocket
// connection; the image and the data can be fetched at any time.
type server struct {
	mu  sync.Mutex
	hm  *heatmap.Heatmap
	log *slog.Logger

	upgrader websocket.Upgrader
}

func newServer(h *heatmap.Heatmap, log *slog.Logger) *server {
	return &server{
		hm:  h,
		log: log,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

func (s *server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /heatmap.png", s.handleImage)
	mux.HandleFunc("GET /data", s.handleGetData)
	mux.HandleFunc("PUT /data", s.handlePutData)
	mux.HandleFunc("PUT /extrema", s.handleExtrema)
	mux.HandleFunc("GET /value", s.handleValue)
	mux.HandleFunc("GET /samples", s.handleSamples)
	return mux
}

func (s *server) handleImage(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	s.mu.Lock()
	err := s.hm.EncodePNG(&buf)
	s.mu.Unlock()
	if err != nil {
		s.log.Error("cannot encode image", "err", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(buf.Bytes())
}

func (s *server) handleGetData(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	d := s.hm.Data()
	s.mu.Unlock()
	writeJSON(w, d)
}

func (s *server) handlePutData(w http.ResponseWriter, r *http.Request) {
	d, err := heatmap.ReadDataset(r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.mu.Lock()
	s.hm.SetData(d)
	e := s.hm.Extrema()
	s.mu.Unlock()
	s.log.Info("data replaced", "samples", len(d.Samples))
	writeJSON(w, e)
}

// handleExtrema sets the minimum and/or maximum.  Fields missing from the
// request body are left unchanged.
func (s *server) handleExtrema(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Min *float64 `json:"min"`
		Max *float64 `json:"max"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.mu.Lock()
	if req.Max != nil {
		s.hm.SetMax(*req.Max)
	}
	if req.Min != nil {
		s.hm.SetMin(*req.Min)
	}
	e := s.hm.Extrema()
	s.mu.Unlock()
	writeJSON(w, e)
}

func (s *server) handleValue(w http.ResponseWriter, r *http.Request) {
	x, errX := strconv.Atoi(r.URL.Query().Get("x"))
	y, errY := strconv.Atoi(r.URL.Query().Get("y"))
	if err := errors.Join(errX, errY); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.mu.Lock()
	v := s.hm.ValueAt(x, y)
	s.mu.Unlock()
	writeJSON(w, map[string]int{"value": v})
}

// sampleReply is sent back for every message on the samples socket.
type sampleReply struct {
	Drawn   int             `json:"drawn"`
	Skipped int             `json:"skipped"`
	Extrema heatmap.Extrema `json:"extrema"`
	Error   string          `json:"error,omitempty"`
}

// handleSamples reads samples from a WebSocket connection.  Each message
// is a single sample object or an array of samples.
func (s *server) handleSamples(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn("websocket upgrade failed", "err", err)
		return
	}
	defer conn.Close()
	s.log.Debug("sample stream opened", "remote", r.RemoteAddr)

	for {
		var msg json.RawMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.log.Warn("sample stream failed", "err", err)
			}
			return
		}

		var reply sampleReply
		samples, err := decodeSamples(msg)
		if err != nil {
			reply.Error = err.Error()
		} else {
			s.mu.Lock()
			for _, sample := range samples {
				if s.hm.AddSample(sample) {
					reply.Drawn++
				} else {
					reply.Skipped++
				}
			}
			reply.Extrema = s.hm.Extrema()
			s.mu.Unlock()
		}
		if err := conn.WriteJSON(reply); err != nil {
			s.log.Warn("cannot send reply", "err", err)
			return
		}
	}
}

// decodeSamples reads either one sample or an array of samples.
func decodeSamples(msg json.RawMessage) ([]heatmap.Sample, error) {
	msg = bytes.TrimSpace(msg)
	if len(msg) > 0 && msg[0] == '[' {
		var samples []heatmap.Sample
		if err := json.Unmarshal(msg, &samples); err != nil {
			return nil, err
		}
		return samples, nil
	}
	var sample heatmap.Sample
	if err := json.Unmarshal(msg, &sample); err != nil {
		return nil, err
	}
	return []heatmap.Sample{sample}, nil
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}
