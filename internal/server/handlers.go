package server

import (
	"crypto/sha256"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
	"max.ks1230/expense-analyzer/internal/logger"
	"max.ks1230/expense-analyzer/internal/model/export"
	"max.ks1230/expense-analyzer/internal/model/ingest"
	"max.ks1230/expense-analyzer/internal/model/storage"
)

const (
	maxUploadBytes = 10 << 20
	uploadField    = "statement"
	datasetIDLen   = 12
)

type uploadResponse struct {
	ID      string `json:"id"`
	Records int    `json:"records"`
	Skipped int    `json:"skipped"`
}

type adviceResponse struct {
	Advice []string `json:"advice"`
}

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Error(w, "failed to parse form: file too large or invalid", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile(uploadField)
	if err != nil {
		http.Error(w, "no statement file provided", http.StatusBadRequest)
		return
	}
	defer file.Close()

	if !strings.HasSuffix(strings.ToLower(header.Filename), ".csv") {
		http.Error(w, "file must be a CSV", http.StatusBadRequest)
		return
	}

	res, err := ingest.ReadCSV(file)
	if err != nil {
		http.Error(w, fmt.Sprintf("failed to parse CSV: %v", err), http.StatusBadRequest)
		return
	}

	sum, advice := s.pipeline.Run(r.Context(), res.Records, res.Income)

	id := datasetID(header.Filename, res)
	s.storage.SaveByID(id, storage.Dataset{
		Records: res.Records,
		Summary: sum,
		Advice:  advice,
		Skipped: res.Skipped,
	})

	logger.Info("dataset analyzed",
		zap.String("dataset", id),
		zap.String("file", header.Filename),
		zap.Int("records", len(res.Records)),
		zap.Int("skipped", res.Skipped),
	)
	writeJSON(w, uploadResponse{ID: id, Records: len(res.Records), Skipped: res.Skipped})
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	// The store is the source of truth for dataset existence. A stale
	// cache entry must not resurrect a dataset the store no longer has.
	dataset, ok := s.storage.GetByID(id)
	if !ok {
		http.Error(w, "unknown dataset", http.StatusNotFound)
		return
	}

	if payload, ok := s.cachedSummary(id); ok {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(payload)
		return
	}

	payload, err := json.Marshal(dataset.Summary)
	if err != nil {
		http.Error(w, "failed to encode summary", http.StatusInternalServerError)
		return
	}
	s.cacheSummary(id, payload)

	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(payload)
}

func (s *Server) handleAdvice(w http.ResponseWriter, r *http.Request) {
	dataset, ok := s.storage.GetByID(mux.Vars(r)["id"])
	if !ok {
		http.Error(w, "unknown dataset", http.StatusNotFound)
		return
	}

	advice := dataset.Advice
	if advice == nil {
		advice = []string{}
	}
	writeJSON(w, adviceResponse{Advice: advice})
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	dataset, ok := s.storage.GetByID(mux.Vars(r)["id"])
	if !ok {
		http.Error(w, "unknown dataset", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="category_summary.csv"`)
	if err := export.WriteCategories(csv.NewWriter(w), dataset.Summary); err != nil {
		logger.Error("failed to export summary", zap.Error(err))
	}
}

func (s *Server) cachedSummary(id string) ([]byte, bool) {
	if s.cache == nil {
		return nil, false
	}
	payload, err := s.cache.GetSummary(id)
	if err != nil {
		return nil, false
	}
	return payload, true
}

func (s *Server) cacheSummary(id string, payload []byte) {
	if s.cache == nil {
		return
	}
	if err := s.cache.CacheSummary(id, payload); err != nil {
		logger.Warn("failed to cache summary", zap.String("dataset", id), zap.Error(err))
	}
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}

// datasetID is content-derived so re-uploading the same statement lands
// on the same dataset and its cached summary.
func datasetID(filename string, res ingest.Result) string {
	h := sha256.New()
	h.Write([]byte(filename))
	for _, rec := range res.Records {
		fmt.Fprintf(h, "%s|%s|%s\n", rec.Date.Format("2006-01-02"), rec.Amount.String(), rec.Description)
	}
	return fmt.Sprintf("%x", h.Sum(nil))[:datasetIDLen]
}
