package workouts

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/mlukic92/fitpulse/internal/telemetry/tracing"
	"github.com/mlukic92/fitpulse/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service: service,
	}
}

type DeleteWorkoutResponse struct {
	DeletedID int `json:"deletedId"`
}

func (h *Handler) HandleStart(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.start")
	defer span.End()

	workout, err := h.service.Start(ctx)
	if err != nil {
		if errors.Is(err, ErrWorkoutInProgress) {
			http.Error(w, "another workout is already in progress", http.StatusConflict)
			return
		}
		log.Errorf("failed to start workout: %s", err)
		http.Error(w, "start workout failed", http.StatusInternalServerError)
		return
	}

	log.Debugf("workout started: %d", workout.ID)

	workoutJson, err := json.Marshal(workout)
	if err != nil {
		log.Errorf("failed to marshal started workout: %s", err)
		http.Error(w, "start workout failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, workoutJson, http.StatusCreated)
}

func (h *Handler) HandleFinish(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.finish")
	defer span.End()

	workout, err := h.service.Finish(ctx)
	if err != nil {
		switch {
		case errors.Is(err, ErrNoActiveWorkout):
			http.Error(w, "no active workout", http.StatusBadRequest)
		case errors.Is(err, ErrWorkoutAlreadyCompleted):
			http.Error(w, "workout already completed", http.StatusConflict)
		default:
			log.Errorf("failed to finish workout: %s", err)
			http.Error(w, "finish workout failed", http.StatusInternalServerError)
		}
		return
	}

	workoutJson, err := json.Marshal(workout)
	if err != nil {
		log.Errorf("failed to marshal finished workout: %s", err)
		http.Error(w, "finish workout failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, workoutJson, http.StatusOK)
}

func (h *Handler) HandleAddSet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.addset")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var set Set
	if err := json.NewDecoder(r.Body).Decode(&set); err != nil {
		log.Errorf("new set, unmarshal json params: %s", err)
		http.Error(w, "add set failed", http.StatusBadRequest)
		return
	}

	added, err := h.service.AddSet(ctx, set)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidSet):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, ErrNoActiveWorkout):
			http.Error(w, "no active workout", http.StatusBadRequest)
		default:
			log.Errorf("failed to add set [%s] [%s]: %s", set.MuscleGroup, set.ExerciseName, err)
			http.Error(w, "add set failed", http.StatusInternalServerError)
		}
		return
	}

	log.Debugf("new set added: [%s] [%s]: %d", added.MuscleGroup, added.ExerciseName, added.ID)

	setJson, err := json.Marshal(added)
	if err != nil {
		log.Errorf("failed to marshal new set: %s", err)
		http.Error(w, "add set failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, setJson, http.StatusCreated)
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.get")
	defer span.End()

	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	workout, err := h.service.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrWorkoutNotFound) {
			http.Error(w, "workout not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to get workout %d: %s", id, err)
		http.Error(w, "get workout failed", http.StatusInternalServerError)
		return
	}

	workoutJson, err := json.Marshal(workout)
	if err != nil {
		log.Errorf("failed to marshal workout: %s", err)
		http.Error(w, "get workout failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, workoutJson, http.StatusOK)
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.delete")
	defer span.End()

	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	if err := h.service.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrWorkoutNotFound) {
			http.Error(w, "workout not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to delete workout %d: %s", id, err)
		http.Error(w, "delete workout failed", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(DeleteWorkoutResponse{DeletedID: id})
	if err != nil {
		log.Errorf("failed to marshal delete workout response: %s", err)
		http.Error(w, "delete workout failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}

func (h *Handler) HandleListCompleted(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.listcompleted")
	defer span.End()

	workouts, err := h.service.ListCompleted(ctx, nil, nil)
	if err != nil {
		log.Errorf("failed to list workouts: %s", err)
		http.Error(w, "list workouts failed", http.StatusInternalServerError)
		return
	}

	workoutsJson, err := json.Marshal(workouts)
	if err != nil {
		log.Errorf("failed to marshal workouts: %s", err)
		http.Error(w, "list workouts failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, workoutsJson, http.StatusOK)
}
