package handlers

import (
	"net/http"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
)

type HealthResponse struct {
	CurrentEnv string    `json:"currentEnv"`
	GoVersion  string    `json:"goVersion"`
	Timestamp  time.Time `json:"timestamp"`
	Name       string    `json:"name"`
}

type HealthHandler struct {
	env  string
	name string
}

func NewHealthHandler(env, name string) *HealthHandler {
	return &HealthHandler{env: env, name: name}
}

// Health godoc
// @Summary  Service health
// @Tags     health
// @Produce  json
// @Success  200  {object}  handlers.HealthResponse
// @Router   /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		CurrentEnv: h.env,
		GoVersion:  runtime.Version(),
		Timestamp:  time.Now().UTC(),
		Name:       h.name,
	})
}

func Ping(c *gin.Context) {
	c.String(http.StatusOK, "pong")
}
