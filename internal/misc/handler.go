package misc

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/2beens/fitplan/internal/telemetry/tracing"
	"github.com/2beens/fitplan/pkg"

	"github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const healthCheckTimeout = 2 * time.Second

type dbPinger interface {
	Ping(ctx context.Context) error
}

type redisPinger interface {
	Ping(ctx context.Context) *redis.StatusCmd
}

type Handler struct {
	db          dbPinger
	redis       redisPinger
	versionInfo string
}

func NewHandler(db dbPinger, redis redisPinger, versionInfo string) *Handler {
	return &Handler{
		db:          db,
		redis:       redis,
		versionInfo: versionInfo,
	}
}

func (handler *Handler) SetupRoutes(mainRouter *mux.Router) {
	mainRouter.HandleFunc("/", handler.handleRoot).Methods("GET", "POST", "OPTIONS").Name("root")
	mainRouter.HandleFunc("/healthz", handler.handleHealth).Methods("GET").Name("healthz")
	mainRouter.HandleFunc("/myip", handler.handleGetMyIp).Methods("GET").Name("myip")
	mainRouter.HandleFunc("/version", handler.handleGetVersionInfo).Methods("GET").Name("version")
}

func (handler *Handler) handleRoot(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteTextResponseOK(w, "I'm OK, thanks ;)")
}

type healthResponse struct {
	Postgres string `json:"postgres"`
	Redis    string `json:"redis"`
}

// handleHealth reports 503 when either store cannot be reached.
func (handler *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "miscHandler.health")
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
	defer cancel()

	resp := healthResponse{Postgres: "ok", Redis: "ok"}
	status := http.StatusOK

	if err := handler.db.Ping(ctx); err != nil {
		log.Errorf("health: ping postgres: %s", err)
		resp.Postgres = err.Error()
		status = http.StatusServiceUnavailable
	}
	if err := handler.redis.Ping(ctx).Err(); err != nil {
		log.Errorf("health: ping redis: %s", err)
		resp.Redis = err.Error()
		status = http.StatusServiceUnavailable
	}

	if status != http.StatusOK {
		span.SetStatus(codes.Error, "unhealthy")
	}
	pkg.WriteJSON(w, resp, status)
}

func (handler *Handler) handleGetMyIp(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "miscHandler.getMyIp")
	defer span.End()

	ip, err := pkg.ReadUserIP(r)
	if err != nil {
		span.SetStatus(codes.Error, fmt.Sprintf("failed to get user IP address: %s", err))
		log.Errorf("failed to get user IP address: %s", err)
		http.Error(w, "failed to get IP", http.StatusInternalServerError)
		return
	}

	span.SetAttributes(attribute.String("user.ip", ip))
	span.SetStatus(codes.Ok, fmt.Sprintf("user IP address: %s", ip))
	pkg.WriteTextResponseOK(w, ip)
}

func (handler *Handler) handleGetVersionInfo(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteTextResponseOK(w, handler.versionInfo)
}
