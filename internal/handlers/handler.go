package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"clinic-backend/internal/services"
	"clinic-backend/pkg/utils"
)

// Handler exposes the clinic services over HTTP.
type Handler struct {
	login        *services.LoginService
	sessions     *services.SessionAuthority
	registration *services.Registration
	directory    *services.Directory
	ledger       *services.Ledger
	log          *zap.Logger
}

func New(
	login *services.LoginService,
	sessions *services.SessionAuthority,
	registration *services.Registration,
	directory *services.Directory,
	ledger *services.Ledger,
	log *zap.Logger,
) *Handler {
	return &Handler{
		login:        login,
		sessions:     sessions,
		registration: registration,
		directory:    directory,
		ledger:       ledger,
		log:          log,
	}
}

// bind decodes a JSON or form body into dest, answering 400 on failure.
func bind(c *gin.Context, dest interface{}) bool {
	if err := c.ShouldBind(dest); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Invalid input", err.Error())
		return false
	}
	return true
}
