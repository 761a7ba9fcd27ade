package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/DennisDane/geekmagic-go/internal/dashboard"
	"github.com/DennisDane/geekmagic-go/internal/render"
)

// controlMux builds the control server routes. Split from the listener
// so tests can drive the handlers directly.
func (a *App) controlMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", a.handleHealth)
	mux.HandleFunc("GET /status", a.handleStatus)
	mux.HandleFunc("GET /preview.png", a.handlePreview)
	mux.HandleFunc("POST /notify", a.handleNotify)
	mux.HandleFunc("DELETE /notify", a.handleDismiss)
	mux.HandleFunc("POST /screen/next", a.handleScreenNext)
	mux.HandleFunc("POST /screen/prev", a.handleScreenPrev)
	mux.HandleFunc("POST /screen/{index}", a.handleScreenSet)
	return mux
}

func (a *App) handleHealth(w http.ResponseWriter, r *http.Request) {
	a.logger.Debug("health check endpoint hit", "remote_addr", r.RemoteAddr)
	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, "OK")
}

func (a *App) handleStatus(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(a.coordinator.Status()); err != nil {
		a.logger.Error("status encode failed", "error", err)
	}
}

func (a *App) handlePreview(w http.ResponseWriter, r *http.Request) {
	data := a.coordinator.Preview()
	if data == nil {
		http.Error(w, "no frame rendered yet", http.StatusNotFound)
		return
	}

	if s := r.URL.Query().Get("scale"); s != "" {
		scale, err := strconv.Atoi(s)
		if err != nil || scale < 1 || scale > 8 {
			http.Error(w, "scale must be an integer between 1 and 8", http.StatusBadRequest)
			return
		}
		scaled, err := render.ScalePNG(data, scale)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		data = scaled
	}

	w.Header().Set("Content-Type", "image/png")
	_, _ = w.Write(data)
}

type notifyRequest struct {
	Title    string `json:"title"`
	Message  string `json:"message"`
	Icon     string `json:"icon"`
	Duration string `json:"duration"`
}

func (a *App) handleNotify(w http.ResponseWriter, r *http.Request) {
	var req notifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Title) == "" && strings.TrimSpace(req.Message) == "" {
		http.Error(w, "title or message is required", http.StatusBadRequest)
		return
	}

	duration := time.Minute
	if req.Duration != "" {
		d, err := time.ParseDuration(req.Duration)
		if err != nil || d < 0 {
			http.Error(w, "invalid duration", http.StatusBadRequest)
			return
		}
		duration = d
	}

	a.coordinator.Notify(dashboard.Notification{
		Title:   req.Title,
		Message: req.Message,
		Icon:    req.Icon,
	}, duration, time.Now())
	a.logger.Info("notification accepted", "title", req.Title, "duration", duration)
	w.WriteHeader(http.StatusAccepted)
}

func (a *App) handleDismiss(w http.ResponseWriter, r *http.Request) {
	a.coordinator.Dismiss()
	w.WriteHeader(http.StatusNoContent)
}

func (a *App) handleScreenNext(w http.ResponseWriter, r *http.Request) {
	a.coordinator.Next()
	w.WriteHeader(http.StatusAccepted)
}

func (a *App) handleScreenPrev(w http.ResponseWriter, r *http.Request) {
	a.coordinator.Prev()
	w.WriteHeader(http.StatusAccepted)
}

func (a *App) handleScreenSet(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		http.Error(w, "screen index must be an integer", http.StatusBadRequest)
		return
	}
	if err := a.coordinator.SetScreen(index); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.WriteHeader(http.StatusAccepted)
}

// startControlServer runs the control HTTP server in the background.
func (a *App) startControlServer(port int) {
	addr := fmt.Sprintf(":%d", port)
	a.httpServer = &http.Server{
		Addr:    addr,
		Handler: a.controlMux(),
	}

	go func() {
		a.logger.Info("control server starting",
			"address", fmt.Sprintf("http://localhost%s/healthz", addr))
		if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Error("control server failed unexpectedly", "error", err)
		}
	}()
}

func (a *App) closeControlServer() {
	if a.httpServer == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	a.logger.Debug("shutting down control server")
	if err := a.httpServer.Shutdown(ctx); err != nil {
		a.logger.Error("control server shutdown failed", "error", err)
	}
}
