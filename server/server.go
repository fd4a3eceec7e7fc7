package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kotaroooo0/questions"
)

// Server は読み込み済みのコーパスに対する質問応答をHTTPで提供する
type Server struct {
	searcher        *questions.Searcher
	fileMatches     int
	sentenceMatches int
	logger          *slog.Logger
	router          *gin.Engine
}

func New(searcher *questions.Searcher, fileMatches, sentenceMatches int, logger *slog.Logger) *Server {
	s := &Server{
		searcher:        searcher,
		fileMatches:     fileMatches,
		sentenceMatches: sentenceMatches,
		logger:          logger,
	}
	router := gin.New()
	router.Use(gin.Recovery(), RequestIDMiddleware(), LoggingMiddleware(logger))
	router.GET("/healthz", s.HealthHandler)
	router.GET("/answer", s.AnswerQueryHandler)
	router.POST("/answer", s.AnswerHandler)
	router.NoRoute(func(c *gin.Context) {
		SendError(c, http.StatusNotFound, ErrorCodeNotFound, "route not found")
	})
	s.router = router
	return s
}

func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe は ctx がキャンセルされるまで待ち受ける
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr, "documents", s.searcher.Index().Size())
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

type AnswerRequest struct {
	Query           string `json:"query" binding:"required"`
	FileMatches     *int   `json:"file_matches,omitempty"`
	SentenceMatches *int   `json:"sentence_matches,omitempty"`
}

type AnswerResponse struct {
	RequestID string `json:"request_id"`
	*questions.Result
}

func (s *Server) HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"documents": s.searcher.Index().Size(),
	})
}

// AnswerQueryHandler は GET /answer?q=...&file_matches=&sentence_matches=
func (s *Server) AnswerQueryHandler(c *gin.Context) {
	req := AnswerRequest{Query: c.Query("q")}
	if req.Query == "" {
		SendError(c, http.StatusBadRequest, ErrorCodeInvalidQuery, "query parameter 'q' is required")
		return
	}
	for name, dst := range map[string]**int{
		"file_matches":     &req.FileMatches,
		"sentence_matches": &req.SentenceMatches,
	} {
		raw, ok := c.GetQuery(name)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			SendError(c, http.StatusBadRequest, ErrorCodeInvalidRequest, "query parameter '"+name+"' must be an integer")
			return
		}
		*dst = &n
	}
	s.answer(c, req)
}

// AnswerHandler は POST /answer
func (s *Server) AnswerHandler(c *gin.Context) {
	var req AnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		SendError(c, http.StatusBadRequest, ErrorCodeInvalidRequest, "invalid request body: "+err.Error())
		return
	}
	s.answer(c, req)
}

func (s *Server) answer(c *gin.Context, req AnswerRequest) {
	fileMatches, sentenceMatches := s.fileMatches, s.sentenceMatches
	if req.FileMatches != nil {
		fileMatches = *req.FileMatches
	}
	if req.SentenceMatches != nil {
		sentenceMatches = *req.SentenceMatches
	}

	result, err := s.searcher.SearchN(req.Query, fileMatches, sentenceMatches)
	if err != nil {
		if errors.Is(err, questions.ErrInvalidInput) {
			SendError(c, http.StatusBadRequest, ErrorCodeInvalidRequest, err.Error())
			return
		}
		SendInternalError(c, "answer query", err)
		return
	}
	c.JSON(http.StatusOK, AnswerResponse{
		RequestID: c.GetString(requestIDKey),
		Result:    result,
	})
}
