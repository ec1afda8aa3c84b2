package response

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the envelope shared by every error status. Detail is a
// string for most failures and a field→message map for validation errors.
type ErrorResponse struct {
	Detail interface{} `json:"detail"`
}

func JSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

func Error(w http.ResponseWriter, statusCode int, detail interface{}) {
	JSON(w, statusCode, ErrorResponse{Detail: detail})
}

func BadRequest(w http.ResponseWriter, detail interface{}) {
	Error(w, http.StatusBadRequest, detail)
}

func ValidationError(w http.ResponseWriter, errors interface{}) {
	Error(w, http.StatusBadRequest, errors)
}

func NotFound(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Resource not found"
	}
	Error(w, http.StatusNotFound, message)
}

func Conflict(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Conflict"
	}
	Error(w, http.StatusConflict, message)
}

func InternalServerError(w http.ResponseWriter) {
	Error(w, http.StatusInternalServerError, "Internal Server Error")
}
