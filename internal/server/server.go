package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"max.ks1230/expense-analyzer/internal/entity/expense"
	"max.ks1230/expense-analyzer/internal/entity/summary"
	"max.ks1230/expense-analyzer/internal/logger"
	"max.ks1230/expense-analyzer/internal/model/storage"
)

const (
	readTimeout     = 30 * time.Second
	writeTimeout    = 30 * time.Second
	shutdownTimeout = 5 * time.Second
)

type datasetStorage interface {
	GetByID(id string) (storage.Dataset, bool)
	SaveByID(id string, d storage.Dataset)
}

// summaryCache is optional; a nil cache disables the cache-aside path.
type summaryCache interface {
	CacheSummary(datasetID string, payload []byte) error
	GetSummary(datasetID string) ([]byte, error)
}

type pipeline interface {
	Run(ctx context.Context, recs []expense.Record, income decimal.Decimal) (*summary.Summary, []string)
}

type config interface {
	Port() int
}

// Server is the local analysis front: upload a statement once, then
// query its summary, advice and CSV export.
type Server struct {
	srv      *http.Server
	storage  datasetStorage
	cache    summaryCache
	pipeline pipeline
}

func New(cfg config, pipeline pipeline, datasets datasetStorage, cache summaryCache) *Server {
	s := &Server{
		storage:  datasets,
		cache:    cache,
		pipeline: pipeline,
	}

	r := mux.NewRouter()
	r.Use(observeRequests)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/datasets", s.handleUpload).Methods("POST")
	api.HandleFunc("/datasets/{id}/summary", s.handleSummary).Methods("GET")
	api.HandleFunc("/datasets/{id}/advice", s.handleAdvice).Methods("GET")
	api.HandleFunc("/datasets/{id}/export", s.handleExport).Methods("GET")

	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	s.srv = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port()),
		Handler:      r,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}
	return s
}

func (s *Server) Serve() {
	logger.Info("http server listening", zap.String("addr", s.srv.Addr))
	err := s.srv.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		logger.Error("failed to serve http", zap.Error(err))
	}
}

func (s *Server) Shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.srv.Shutdown(ctx); err != nil {
		logger.Error("http server shutdown", zap.Error(err))
		return
	}
	logger.Info("http server stopped")
}
