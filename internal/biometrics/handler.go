package biometrics

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/mlukic92/fitpulse/internal/telemetry/tracing"
	"github.com/mlukic92/fitpulse/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=biometrics_test

type snapshotsRepo interface {
	Upsert(ctx context.Context, snapshot Snapshot) (*Snapshot, error)
	ForDate(ctx context.Context, date time.Time) (*Snapshot, error)
}

type Handler struct {
	repo snapshotsRepo
}

func NewHandler(repo snapshotsRepo) *Handler {
	return &Handler{
		repo: repo,
	}
}

func (h *Handler) HandleReport(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.biometrics.report")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var snapshot Snapshot
	if err := json.NewDecoder(r.Body).Decode(&snapshot); err != nil {
		log.Errorf("new biometric snapshot, unmarshal json params: %s", err)
		http.Error(w, "report snapshot failed", http.StatusBadRequest)
		return
	}

	if snapshot.Date.IsZero() {
		snapshot.Date = time.Now()
	}

	stored, err := h.repo.Upsert(ctx, snapshot)
	if err != nil {
		log.Errorf("failed to store biometric snapshot: %s", err)
		http.Error(w, "report snapshot failed", http.StatusInternalServerError)
		return
	}

	storedJson, err := json.Marshal(stored)
	if err != nil {
		log.Errorf("failed to marshal biometric snapshot: %s", err)
		http.Error(w, "report snapshot failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, storedJson, http.StatusCreated)
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.biometrics.get")
	defer span.End()

	vars := mux.Vars(r)
	date, err := time.Parse("2006-01-02", vars["date"])
	if err != nil {
		http.Error(w, "error, invalid date", http.StatusBadRequest)
		return
	}

	snapshot, err := h.repo.ForDate(ctx, date)
	if err != nil {
		if errors.Is(err, ErrSnapshotNotFound) {
			http.Error(w, "snapshot not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to get biometric snapshot: %s", err)
		http.Error(w, "get snapshot failed", http.StatusInternalServerError)
		return
	}

	snapshotJson, err := json.Marshal(snapshot)
	if err != nil {
		log.Errorf("failed to marshal biometric snapshot: %s", err)
		http.Error(w, "get snapshot failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, snapshotJson, http.StatusOK)
}
