package api

import (
	"net/http"
	"time"

	"github.com/claydesk/flowtest-api/internal/config"
	"github.com/claydesk/flowtest-api/internal/store"
)

// Version is the API version reported by the informational endpoints.
const Version = "1.0.0"

// MetaHandler serves the ungated informational endpoints: service
// metadata, health, status, analytics, and the environment snapshot.
// The payloads are fixed-shape records; none of this data is persisted.
type MetaHandler struct {
	cfg       *config.Config
	taskStore store.TaskStore
	userStore store.UserStore
	startedAt time.Time

	// endpointCount is set once by the router after all routes are
	// registered.
	endpointCount int
}

// NewMetaHandler creates a new MetaHandler with the given dependencies.
func NewMetaHandler(cfg *config.Config, taskStore store.TaskStore, userStore store.UserStore) *MetaHandler {
	return &MetaHandler{
		cfg:       cfg,
		taskStore: taskStore,
		userStore: userStore,
		startedAt: time.Now().UTC(),
	}
}

// SetEndpointCount records the number of registered routes for the status
// payload. Called by the router once after registration.
func (h *MetaHandler) SetEndpointCount(n int) {
	h.endpointCount = n
}

// rootResponse is the GET / payload.
type rootResponse struct {
	Message     string            `json:"message"`
	Version     string            `json:"version"`
	Environment string            `json:"environment"`
	Endpoints   map[string]string `json:"endpoints"`
	Timestamp   time.Time         `json:"timestamp"`
}

// Root handles GET /.
func (h *MetaHandler) Root(w http.ResponseWriter, r *http.Request) {
	RespondWithJSON(w, r, http.StatusOK, rootResponse{
		Message:     "FlowTest API",
		Version:     Version,
		Environment: h.cfg.Server.Environment,
		Endpoints: map[string]string{
			"health": "/health",
			"tasks":  "/api/v1/tasks",
			"users":  "/api/v1/users",
			"auth":   "/api/v1/auth",
		},
		Timestamp: time.Now().UTC(),
	})
}

// healthResponse is the GET /health payload.
type healthResponse struct {
	Status      string    `json:"status"`
	Timestamp   time.Time `json:"timestamp"`
	Version     string    `json:"version"`
	Storage     string    `json:"storage"`
	Environment string    `json:"environment"`
}

// Health handles GET /health.
func (h *MetaHandler) Health(w http.ResponseWriter, r *http.Request) {
	RespondWithJSON(w, r, http.StatusOK, healthResponse{
		Status:      "healthy",
		Timestamp:   time.Now().UTC(),
		Version:     Version,
		Storage:     "in-memory",
		Environment: h.cfg.Server.Environment,
	})
}

// statusResponse is the GET /api/v1/status payload.
type statusResponse struct {
	APIVersion     string    `json:"api_version"`
	Features       []string  `json:"features"`
	EndpointsCount int       `json:"endpoints_count"`
	Uptime         string    `json:"uptime"`
	LastRestart    time.Time `json:"last_restart"`
}

// Status handles GET /api/v1/status.
func (h *MetaHandler) Status(w http.ResponseWriter, r *http.Request) {
	RespondWithJSON(w, r, http.StatusOK, statusResponse{
		APIVersion: Version,
		Features: []string{
			"REST API endpoints",
			"JWT authentication",
			"CORS support",
			"Environment configuration",
			"Health monitoring",
		},
		EndpointsCount: h.endpointCount,
		Uptime:         time.Since(h.startedAt).Round(time.Second).String(),
		LastRestart:    h.startedAt,
	})
}

// analyticsResponse is the GET /api/v1/analytics payload.
type analyticsResponse struct {
	TotalTasks     int    `json:"total_tasks"`
	CompletedTasks int    `json:"completed_tasks"`
	TotalUsers     int    `json:"total_users"`
	APICalls       string `json:"api_calls"`
	AvgResponse    string `json:"average_response_time"`

	Uptime      string    `json:"uptime"`
	LastUpdated time.Time `json:"last_updated"`
}

// Analytics handles GET /api/v1/analytics.
func (h *MetaHandler) Analytics(w http.ResponseWriter, r *http.Request) {
	totalTasks, completedTasks, err := h.taskStore.Counts(r.Context())
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	totalUsers, err := h.userStore.Count(r.Context())
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, analyticsResponse{
		TotalTasks:     totalTasks,
		CompletedTasks: completedTasks,
		TotalUsers:     totalUsers,
		// Fixed placeholder strings this surface has always reported;
		// nothing measures either yet.
		APICalls:    "tracked",
		AvgResponse: "< 50ms",
		Uptime:      time.Since(h.startedAt).Round(time.Second).String(),
		LastUpdated: time.Now().UTC(),
	})
}

// environmentResponse is the GET /api/v1/environment payload.
type environmentResponse struct {
	Environment     string          `json:"environment"`
	Storage         string          `json:"storage"`
	SecretKeySet    bool            `json:"secret_key_set"`
	CORSEnabled     bool            `json:"cors_enabled"`
	FeaturesEnabled map[string]bool `json:"features_enabled"`
}

// Environment handles GET /api/v1/environment. SecretKeySet reports
// whether the signing secret was overridden from the insecure default;
// the secret itself is never exposed.
func (h *MetaHandler) Environment(w http.ResponseWriter, r *http.Request) {
	RespondWithJSON(w, r, http.StatusOK, environmentResponse{
		Environment:  h.cfg.Server.Environment,
		Storage:      "in-memory",
		SecretKeySet: !h.cfg.Auth.UsingDefaultSecret(),
		CORSEnabled:  true,
		FeaturesEnabled: map[string]bool{
			"authentication":  true,
			"task_management": true,
			"user_management": true,
			"analytics":       true,
		},
	})
}
