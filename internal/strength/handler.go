package strength

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/mlukic92/fitpulse/internal/exercises"
	"github.com/mlukic92/fitpulse/internal/telemetry/tracing"
	"github.com/mlukic92/fitpulse/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=strength_test

type classifier interface {
	Classify(ctx context.Context) (map[exercises.MuscleGroup]Category, error)
}

type Handler struct {
	service classifier
}

func NewHandler(service classifier) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) HandleClassify(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.strength.classify")
	defer span.End()

	categories, err := h.service.Classify(ctx)
	if err != nil {
		log.Errorf("strength classification: %s", err)
		http.Error(w, "classification failed", http.StatusInternalServerError)
		return
	}

	categoriesJson, err := json.Marshal(categories)
	if err != nil {
		log.Errorf("marshal strength categories: %s", err)
		http.Error(w, "classification failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, categoriesJson, http.StatusOK)
}
