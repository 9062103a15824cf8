// Package web serves the ledger as an HTML form.
//
// Every browser gets its own editing session, identified by a cookie and kept
// in memory until it has been idle for longer than Config.SessionTTL.
package web

import (
	"bytes"
	"context"
	"embed"
	"encoding/json"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/etnz/invoice"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// CookieName is the cookie holding the session id.
const CookieName = "inv_session"

//go:embed templates/*.html
var templatesFS embed.FS

var formTemplate = template.Must(template.ParseFS(templatesFS, "templates/form.html"))

// Server wires the session store and the form template into HTTP handlers.
type Server struct {
	cfg      Config
	logger   *slog.Logger
	sessions *sessionStore
	router   chi.Router
}

// NewServer creates a form server. A nil logger means slog.Default().
func NewServer(cfg Config, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		cfg:      cfg,
		logger:   logger,
		sessions: newSessionStore(cfg.SessionTTL, cfg.MaxSessions),
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/", s.index)
	r.Post("/items", s.addItem)
	r.Post("/items/{id}", s.updateItem)
	r.Post("/items/{id}/delete", s.deleteItem)
	r.Get("/api/ledger", s.apiLedger)
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	s.router = r
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe serves on cfg.Addr until ctx is done.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("shutdown failed", "error", err)
		}
	}()

	s.logger.Info("item form listening", "addr", s.cfg.Addr, "sessionTTL", s.cfg.SessionTTL)
	err := srv.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		<-done
		return nil
	}
	return err
}

// session returns the caller's session, starting a new one when needed.
func (s *Server) session(w http.ResponseWriter, r *http.Request) *invoice.Session {
	if c, err := r.Cookie(CookieName); err == nil {
		if session, ok := s.sessions.get(c.Value); ok {
			return session
		}
	}
	id, session := s.sessions.create()
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	s.logger.Debug("session created", "session", id, "requestId", middleware.GetReqID(r.Context()))
	return session
}

func (s *Server) index(w http.ResponseWriter, r *http.Request) {
	l := s.session(w, r).Ledger()

	var b bytes.Buffer
	if err := formTemplate.Execute(&b, newFormView(l)); err != nil {
		s.logger.Error("form rendering failed", "error", err, "requestId", middleware.GetReqID(r.Context()))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(b.Bytes())
}

func (s *Server) addItem(w http.ResponseWriter, r *http.Request) {
	s.session(w, r).Apply(invoice.Add())
	backToForm(w, r)
}

func (s *Server) updateItem(w http.ResponseWriter, r *http.Request) {
	session := s.session(w, r)
	id, ok := itemID(r)
	if !ok {
		backToForm(w, r)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "malformed form", http.StatusBadRequest)
		return
	}
	var ops []invoice.Operation
	for _, f := range invoice.Fields {
		if values, posted := r.PostForm[f.String()]; posted && len(values) > 0 {
			ops = append(ops, invoice.Update(id, f, values[0]))
		}
	}
	session.Apply(ops...)
	backToForm(w, r)
}

func (s *Server) deleteItem(w http.ResponseWriter, r *http.Request) {
	session := s.session(w, r)
	if id, ok := itemID(r); ok {
		session.Apply(invoice.Remove(id))
	}
	backToForm(w, r)
}

func (s *Server) apiLedger(w http.ResponseWriter, r *http.Request) {
	l := s.session(w, r).Ledger()
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(l); err != nil {
		s.logger.Warn("ledger encoding failed", "error", err)
	}
}

// logRequests logs one record per request.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Info("request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			slog.Int("bytes", ww.BytesWritten()),
			slog.Duration("duration", time.Since(start)),
			slog.String("requestId", middleware.GetReqID(r.Context())),
		)
	})
}

// itemID reads the {id} URL parameter. A malformed id matches no item.
func itemID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	return id, err == nil
}

func backToForm(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
