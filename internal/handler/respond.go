package handler

import (
	"encoding/json"
	"net/http"

	"ytlens/pkg/errors"
	"ytlens/pkg/logger"
)

// writeData writes a successful JSON response in the standard envelope
func writeData(w http.ResponseWriter, log *logger.Logger, payload interface{}) {
	response := map[string]interface{}{
		"success": true,
		"data":    payload,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.WithError(err).Error("Failed to encode response")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// writeError maps an error onto the JSON error envelope. Non-AppError
// values are treated as internal errors.
func writeError(w http.ResponseWriter, log *logger.Logger, err error) {
	appErr, ok := err.(*errors.AppError)
	if !ok {
		appErr = errors.NewInternalError("Internal server error", err)
	}
	log.WithError(appErr).Error("Request error")

	errorBody := map[string]interface{}{
		"type":    string(appErr.Type),
		"message": appErr.Message,
	}
	if appErr.Details != nil {
		errorBody["details"] = appErr.Details
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(appErr.StatusCode)

	if encodeErr := json.NewEncoder(w).Encode(map[string]interface{}{
		"success": false,
		"error":   errorBody,
	}); encodeErr != nil {
		log.WithError(encodeErr).Error("Failed to encode error response")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}
