package summary

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/mlukic92/fitpulse/internal/recovery"
	"github.com/mlukic92/fitpulse/internal/telemetry/tracing"
	"github.com/mlukic92/fitpulse/internal/workouts"
	"github.com/mlukic92/fitpulse/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

const defaultCorrelationDays = 30

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=summary_test

type summaryService interface {
	ComputeDailySummary(ctx context.Context, date time.Time) (*DailySummary, error)
	GenerateCorrelationData(ctx context.Context, days int) (*CorrelationSeries, error)
	Suggestions(ctx context.Context) ([]recovery.Suggestion, error)
	GetByDate(ctx context.Context, date time.Time) (*DailySummary, error)
	RecoveryBuffer(ctx context.Context, workoutID int) (*recovery.Buffer, error)
}

type Handler struct {
	service summaryService
}

func NewHandler(service summaryService) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.summary.get")
	defer span.End()

	vars := mux.Vars(r)
	date, err := time.Parse("2006-01-02", vars["date"])
	if err != nil {
		http.Error(w, "error, invalid date", http.StatusBadRequest)
		return
	}

	summary, err := h.service.GetByDate(ctx, date)
	if err != nil {
		if errors.Is(err, ErrSummaryNotFound) {
			http.Error(w, "summary not found", http.StatusNotFound)
			return
		}
		log.Errorf("get daily summary: %s", err)
		http.Error(w, "get summary failed", http.StatusInternalServerError)
		return
	}

	summaryJson, err := json.Marshal(summary)
	if err != nil {
		log.Errorf("marshal daily summary: %s", err)
		http.Error(w, "get summary failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, summaryJson, http.StatusOK)
}

func (h *Handler) HandleRecompute(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.summary.recompute")
	defer span.End()

	vars := mux.Vars(r)
	date, err := time.Parse("2006-01-02", vars["date"])
	if err != nil {
		http.Error(w, "error, invalid date", http.StatusBadRequest)
		return
	}

	summary, err := h.service.ComputeDailySummary(ctx, date)
	if err != nil {
		log.Errorf("recompute daily summary: %s", err)
		http.Error(w, "recompute summary failed", http.StatusInternalServerError)
		return
	}

	summaryJson, err := json.Marshal(summary)
	if err != nil {
		log.Errorf("marshal daily summary: %s", err)
		http.Error(w, "recompute summary failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, summaryJson, http.StatusOK)
}

func (h *Handler) HandleCorrelation(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.summary.correlation")
	defer span.End()

	days := defaultCorrelationDays
	if daysParam := r.URL.Query().Get("days"); daysParam != "" {
		parsed, err := strconv.Atoi(daysParam)
		if err != nil || parsed <= 0 {
			http.Error(w, "error, invalid days", http.StatusBadRequest)
			return
		}
		days = parsed
	}

	series, err := h.service.GenerateCorrelationData(ctx, days)
	if err != nil {
		log.Errorf("generate correlation data: %s", err)
		http.Error(w, "correlation failed", http.StatusInternalServerError)
		return
	}

	seriesJson, err := json.Marshal(series)
	if err != nil {
		log.Errorf("marshal correlation series: %s", err)
		http.Error(w, "correlation failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, seriesJson, http.StatusOK)
}

func (h *Handler) HandleRecoveryBuffer(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.summary.recoveryBuffer")
	defer span.End()

	vars := mux.Vars(r)
	workoutID, err := strconv.Atoi(vars["id"])
	if err != nil {
		http.Error(w, "error, workout id invalid", http.StatusBadRequest)
		return
	}

	buffer, err := h.service.RecoveryBuffer(ctx, workoutID)
	if err != nil {
		switch {
		case errors.Is(err, workouts.ErrWorkoutNotFound):
			http.Error(w, "workout not found", http.StatusNotFound)
		case errors.Is(err, ErrWorkoutNotCompleted):
			http.Error(w, "workout not completed", http.StatusBadRequest)
		default:
			log.Errorf("recovery buffer for workout %d: %s", workoutID, err)
			http.Error(w, "recovery buffer failed", http.StatusInternalServerError)
		}
		return
	}

	bufferJson, err := json.Marshal(buffer)
	if err != nil {
		log.Errorf("marshal recovery buffer: %s", err)
		http.Error(w, "recovery buffer failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, bufferJson, http.StatusOK)
}

func (h *Handler) HandleSuggestions(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.summary.suggestions")
	defer span.End()

	suggestions, err := h.service.Suggestions(ctx)
	if err != nil {
		log.Errorf("generate suggestions: %s", err)
		http.Error(w, "suggestions failed", http.StatusInternalServerError)
		return
	}
	if suggestions == nil {
		suggestions = []recovery.Suggestion{}
	}

	suggestionsJson, err := json.Marshal(suggestions)
	if err != nil {
		log.Errorf("marshal suggestions: %s", err)
		http.Error(w, "suggestions failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, suggestionsJson, http.StatusOK)
}
