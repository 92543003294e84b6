package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/imbecility/yt-metaproxy/pkg/gateway"
)

type Server struct {
	Host        string
	Port        int
	Gateway     *gateway.Service
	CORSOrigins []string
}

// Handler builds the gin engine with all routes registered.
func (s *Server) Handler() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger())

	if len(s.CORSOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins: s.CORSOrigins,
			AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowHeaders: []string{"Origin", "Content-Type"},
			MaxAge:       12 * time.Hour,
		}))
	}

	r.GET("/health", s.handleHealth)
	r.GET("/channel/:id", s.handleChannel)
	r.GET("/video/:id", s.handleVideo)
	r.GET("/video/:id/segments", s.handleSegments)
	r.POST("/search", s.handleSearch)

	return r
}

// Start serves until ctx is cancelled, then drains in-flight requests.
func (s *Server) Start(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", s.Host, s.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logrus.WithField("addr", "http://"+addr).Info("Starting API server")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logrus.Info("Shutting down API server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		started := time.Now()
		c.Next()

		entry := logrus.WithFields(logrus.Fields{
			"method":  c.Request.Method,
			"path":    c.Request.URL.Path,
			"status":  c.Writer.Status(),
			"latency": time.Since(started),
			"remote":  c.ClientIP(),
		})
		switch {
		case c.Writer.Status() >= http.StatusInternalServerError:
			entry.Error("Request failed")
		case c.Writer.Status() >= http.StatusBadRequest:
			entry.Warn("Request rejected")
		default:
			entry.Info("Request served")
		}
	}
}
