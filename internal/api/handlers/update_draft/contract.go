package update_draft

import (
	"context"

	"github.com/m04kA/SMC-IntakeGateway/internal/service/intake/models"
)

type IntakeService interface {
	ApplyChanges(ctx context.Context, sessionID string, userID int64, changes *models.DraftChanges) (*models.Session, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
