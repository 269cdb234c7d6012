package profile

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mlukic92/fitpulse/internal/telemetry/tracing"
	"github.com/mlukic92/fitpulse/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=profile_test

type profileRepo interface {
	Get(ctx context.Context) (*UserProfile, error)
	Save(ctx context.Context, p *UserProfile) error
}

type Handler struct {
	repo profileRepo
}

func NewHandler(repo profileRepo) *Handler {
	return &Handler{
		repo: repo,
	}
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profile.get")
	defer span.End()

	p, err := h.repo.Get(ctx)
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			http.Error(w, "profile not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to get profile: %s", err)
		http.Error(w, "failed to get profile", http.StatusInternalServerError)
		return
	}

	pJson, err := json.Marshal(p)
	if err != nil {
		log.Errorf("failed to marshal profile: %s", err)
		http.Error(w, "failed to get profile", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, pJson, http.StatusOK)
}

func (h *Handler) HandleSave(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profile.save")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var p UserProfile
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		log.Errorf("save profile, unmarshal json params: %s", err)
		http.Error(w, "save profile failed", http.StatusBadRequest)
		return
	}

	if p.Sex != "" && !p.Sex.IsValid() {
		http.Error(w, "invalid sex value", http.StatusBadRequest)
		return
	}
	if p.BodyWeightKg < 0 || p.SleepGoalHours < 0 {
		http.Error(w, "invalid profile values", http.StatusBadRequest)
		return
	}

	if err := h.repo.Save(ctx, &p); err != nil {
		log.Errorf("failed to save profile: %s", err)
		http.Error(w, "save profile failed", http.StatusInternalServerError)
		return
	}

	pJson, err := json.Marshal(p)
	if err != nil {
		log.Errorf("failed to marshal saved profile: %s", err)
		http.Error(w, "save profile failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, pJson, http.StatusOK)
}
