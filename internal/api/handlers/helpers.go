package handlers

import (
	"net/http"

	"github.com/fleetops/preflight/internal/pkg/errors"
	"github.com/fleetops/preflight/internal/pkg/utils"
)

// writeServiceError writes an AppError as-is and wraps anything else as
// an internal error
func writeServiceError(w http.ResponseWriter, err error, message string) {
	if appErr, ok := err.(*errors.AppError); ok {
		utils.WriteError(w, appErr)
		return
	}
	utils.WriteError(w, errors.Internal(message, err))
}
