package http

import (
	"github.com/gin-gonic/gin"

	"kodi-assistant/internal/learning"
	"kodi-assistant/pkg/log"
)

// Handler is the public interface for the learning HTTP delivery layer.
type Handler interface {
	Stats(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc learning.UseCase
}

// New creates a new HTTP handler for the learning domain.
func New(l log.Logger, uc learning.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
