// Package mockapi serves the blog resource from memory so the client can be
// run and tested without a real backend.
package mockapi

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/matheuskafuri/blogdesk/internal/api"
	"github.com/matheuskafuri/blogdesk/internal/blogs"
	"github.com/matheuskafuri/blogdesk/internal/logger"
)

type Server struct {
	store   *Store
	log     *logger.Logger
	latency time.Duration
}

type Option func(*Server)

func WithLogger(l *logger.Logger) Option {
	return func(s *Server) { s.log = l }
}

// WithLatency delays every response, which makes loading states visible.
func WithLatency(d time.Duration) Option {
	return func(s *Server) { s.latency = d }
}

func New(store *Store, opts ...Option) *Server {
	s := &Server{store: store, log: logger.Discard()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler builds the gin engine. Routes mirror a json-server "blogs" collection.
func (s *Server) Handler() http.Handler {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), s.requestLog())
	if s.latency > 0 {
		r.Use(s.delay())
	}

	r.GET("/blogs", s.listBlogs)
	r.GET("/blogs/:id", s.getBlog)
	r.POST("/blogs", s.createBlog)
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})
	return r
}

// ListenAndServe blocks until ctx is done or the listener fails.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", addr, err)
	}
	return s.Serve(ctx, ln)
}

func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		ErrorLog:          slog.NewLogLogger(s.log.Slog().Handler(), slog.LevelError),
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.Serve(ln) }()
	s.log.Info("mock api listening", "addr", ln.Addr().String())

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	return nil
}

func (s *Server) listBlogs(c *gin.Context) {
	c.JSON(http.StatusOK, s.store.List())
}

func (s *Server) getBlog(c *gin.Context) {
	a, ok := s.store.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.JSON(http.StatusOK, a)
}

func (s *Server) createBlog(c *gin.Context) {
	var a blogs.Article
	if err := c.ShouldBindJSON(&a); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if strings.TrimSpace(a.Title) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title is required"})
		return
	}
	if a.Date == "" {
		a.Date = time.Now().UTC().Format(blogs.TimestampLayout)
	}
	c.JSON(http.StatusCreated, s.store.Add(a))
}

func (s *Server) requestLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.Debug("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
			"request_id", c.GetHeader(api.RequestIDHeader),
		)
	}
}

func (s *Server) delay() gin.HandlerFunc {
	return func(c *gin.Context) {
		select {
		case <-time.After(s.latency):
			c.Next()
		case <-c.Request.Context().Done():
			c.AbortWithStatus(http.StatusServiceUnavailable)
		}
	}
}
