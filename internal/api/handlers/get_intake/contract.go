package get_intake

import (
	"github.com/m04kA/SMC-IntakeGateway/internal/service/intake/models"
)

type IntakeService interface {
	GetSession(sessionID string, userID int64) (*models.Session, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
