package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/mlukic92/fitpulse/internal/biometrics"
	"github.com/mlukic92/fitpulse/internal/config"
	"github.com/mlukic92/fitpulse/internal/db"
	"github.com/mlukic92/fitpulse/internal/exercises"
	"github.com/mlukic92/fitpulse/internal/middleware"
	"github.com/mlukic92/fitpulse/internal/nutrition"
	"github.com/mlukic92/fitpulse/internal/nutrition/catalog"
	"github.com/mlukic92/fitpulse/internal/profile"
	"github.com/mlukic92/fitpulse/internal/strength"
	"github.com/mlukic92/fitpulse/internal/summary"
	"github.com/mlukic92/fitpulse/internal/telemetry/metrics"
	"github.com/mlukic92/fitpulse/internal/workouts"

	"github.com/getsentry/sentry-go"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	appTokenHash      string
	versionInfo       string

	config *config.Config
	dbPool *pgxpool.Pool

	exercisesRepo  *exercises.Repo
	profileRepo    *profile.Repo
	workoutsRepo   *workouts.Repo
	nutritionRepo  *nutrition.Repo
	biometricsRepo *biometrics.Repo
	summaryRepo    *summary.Repo

	workoutService *workouts.Service
	foodResolver   *nutrition.Resolver
	strengthSvc    *strength.Service
	summarySvc     *summary.Service

	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
}

type NewServerParams struct {
	Config         *config.Config
	AppTokenHash   string
	VersionInfo    string
	TracingEnabled bool
}

func NewServer(ctx context.Context, params NewServerParams) (*Server, error) {
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         params.Config.PostgresHost,
		DBPort:         params.Config.PostgresPort,
		DBName:         params.Config.PostgresDBName,
		TracingEnabled: params.TracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	}

	promRegistry := metrics.SetupPrometheus()
	metricsManager := metrics.NewManager("fitpulse", "engine", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	exerciseCatalog, err := exercises.LoadCatalog(params.Config.ExercisesDataPath)
	if err != nil {
		return nil, fmt.Errorf("load exercise catalog: %w", err)
	}
	exercisesRepo := exercises.NewRepo(dbPool)
	if err := exercisesRepo.EnsureImported(ctx, exerciseCatalog); err != nil {
		return nil, fmt.Errorf("import exercise catalog: %w", err)
	}

	staples, err := nutrition.LoadStaples(params.Config.StapleFoodsDataPath)
	if err != nil {
		return nil, fmt.Errorf("load staple foods: %w", err)
	}
	log.Debugf("loaded %d staple foods", staples.Len())

	tracedHttpClient := &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
		Timeout:   10 * time.Second,
	}
	catalogClient := catalog.NewClient(
		params.Config.FoodCatalogURL,
		params.Config.FoodCatalogPageSize,
		tracedHttpClient,
	)

	nutritionRepo := nutrition.NewRepo(dbPool)
	foodResolver := nutrition.NewResolver(nutrition.ResolverParams{
		Store:          nutritionRepo,
		Staples:        staples,
		Remote:         catalogClient,
		Metrics:        metricsManager,
		MinResults:     params.Config.SearchMinResults,
		CacheFreshness: time.Duration(params.Config.CacheFreshnessDays) * 24 * time.Hour,
	})

	profileRepo := profile.NewRepo(dbPool)
	workoutsRepo := workouts.NewRepo(dbPool)
	biometricsRepo := biometrics.NewRepo(dbPool)
	summaryRepo := summary.NewRepo(dbPool)

	s := &Server{
		config:       params.Config,
		dbPool:       dbPool,
		appTokenHash: params.AppTokenHash,
		versionInfo:  params.VersionInfo,

		exercisesRepo:  exercisesRepo,
		profileRepo:    profileRepo,
		workoutsRepo:   workoutsRepo,
		nutritionRepo:  nutritionRepo,
		biometricsRepo: biometricsRepo,
		summaryRepo:    summaryRepo,

		workoutService: workouts.NewService(workoutsRepo),
		foodResolver:   foodResolver,
		strengthSvc:    strength.NewService(profileRepo, workoutsRepo),
		summarySvc: summary.NewService(summary.ServiceParams{
			Summaries:        summaryRepo,
			Foods:            nutritionRepo,
			Workouts:         workoutsRepo,
			Profiles:         profileRepo,
			Biometrics:       biometricsRepo,
			Metrics:          metricsManager,
			SuggestionWindow: params.Config.SuggestionWindow,
		}),

		metricsManager: metricsManager,
		promRegistry:   promRegistry,
	}

	return s, nil
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("fitpulse-router"))

	profileHandler := profile.NewHandler(s.profileRepo)
	r.HandleFunc("/profile", profileHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-profile")
	r.HandleFunc("/profile", profileHandler.HandleSave).Methods("PUT", "OPTIONS").Name("save-profile")

	exercisesHandler := exercises.NewHandler(s.exercisesRepo)
	r.HandleFunc("/exercises", exercisesHandler.HandleList).Methods("GET", "OPTIONS").Name("list-exercises")
	r.HandleFunc("/exercises/{id}", exercisesHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-exercise")

	workoutsHandler := workouts.NewHandler(s.workoutService)
	r.HandleFunc("/workouts/start", workoutsHandler.HandleStart).Methods("POST", "OPTIONS").Name("start-workout")
	r.HandleFunc("/workouts/finish", workoutsHandler.HandleFinish).Methods("POST", "OPTIONS").Name("finish-workout")
	r.HandleFunc("/workouts/sets", workoutsHandler.HandleAddSet).Methods("POST", "OPTIONS").Name("add-set")
	r.HandleFunc("/workouts/{id}", workoutsHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-workout")
	r.HandleFunc("/workouts/{id}", workoutsHandler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-workout")
	r.HandleFunc("/workouts", workoutsHandler.HandleListCompleted).Methods("GET", "OPTIONS").Name("list-workouts")

	foodsHandler := nutrition.NewHandler(s.foodResolver, s.nutritionRepo, s.metricsManager)
	r.HandleFunc("/foods/search", foodsHandler.HandleSearch).Methods("GET", "OPTIONS").Name("search-foods")
	r.HandleFunc("/foods/barcode/{code}", foodsHandler.HandleBarcode).Methods("GET", "OPTIONS").Name("barcode-lookup")
	r.HandleFunc("/foods", foodsHandler.HandleAddFood).Methods("POST", "OPTIONS").Name("add-food")
	r.HandleFunc("/foods/{id}", foodsHandler.HandleDeleteFood).Methods("DELETE", "OPTIONS").Name("delete-food")
	r.HandleFunc("/foods/{id}/favorite", foodsHandler.HandleSetFavorite).Methods("PUT", "OPTIONS").Name("set-favorite")
	r.HandleFunc("/foods/favorites", foodsHandler.HandleFavorites).Methods("GET", "OPTIONS").Name("list-favorites")
	r.HandleFunc("/foods/recent", foodsHandler.HandleRecent).Methods("GET", "OPTIONS").Name("recent-foods")
	r.HandleFunc("/foods/log", foodsHandler.HandleLogFood).Methods("POST", "OPTIONS").Name("log-food")
	r.HandleFunc("/foods/log/{date}", foodsHandler.HandleLoggedForDay).Methods("GET", "OPTIONS").Name("logged-for-day")
	r.HandleFunc("/foods/log/{id}", foodsHandler.HandleDeleteLogged).Methods("DELETE", "OPTIONS").Name("delete-logged")

	biometricsHandler := biometrics.NewHandler(s.biometricsRepo)
	r.HandleFunc("/biometrics", biometricsHandler.HandleReport).Methods("POST", "OPTIONS").Name("report-biometrics")
	r.HandleFunc("/biometrics/{date}", biometricsHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-biometrics")

	strengthHandler := strength.NewHandler(s.strengthSvc)
	r.HandleFunc("/strength", strengthHandler.HandleClassify).Methods("GET", "OPTIONS").Name("classify-strength")

	summaryHandler := summary.NewHandler(s.summarySvc)
	r.HandleFunc("/summary/{date}", summaryHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-summary")
	r.HandleFunc("/summary/{date}/recompute", summaryHandler.HandleRecompute).Methods("POST", "OPTIONS").Name("recompute-summary")
	r.HandleFunc("/correlation", summaryHandler.HandleCorrelation).Methods("GET", "OPTIONS").Name("correlation")
	r.HandleFunc("/suggestions", summaryHandler.HandleSuggestions).Methods("GET", "OPTIONS").Name("suggestions")
	r.HandleFunc("/workouts/{id}/recovery-buffer", summaryHandler.HandleRecoveryBuffer).Methods("GET", "OPTIONS").Name("recovery-buffer")

	r.HandleFunc("/version", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(s.versionInfo))
	}).Methods("GET").Name("version")

	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "OPTIONS").Name("unknown")

	authMiddleware := middleware.NewAuthMiddlewareHandler(s.appTokenHash)

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors())
	r.Use(authMiddleware.AuthCheck())
	r.Use(middleware.DrainAndCloseRequest())

	return r
}

func (s *Server) Serve(ctx context.Context, host string, port int) {
	router := s.routerSetup()

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.HandlerFor(
		s.promRegistry,
		promhttp.HandlerOpts{},
	))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close()
		log.Debugln("db pool closed")
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		log.Error(" >>> failed to gracefully shutdown http server")
	}
	log.Warnln("server shut down")

	if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
		log.Error(" >>> failed to gracefully shutdown metrics http server")
	}
	log.Warnln("metrics server shut down")
}
