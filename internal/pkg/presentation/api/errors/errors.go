package errors

import (
	"encoding/json"
	"net/http"
)

// The lookup API reports failures with a single message object. The body
// shape is part of the public contract.
type responseMessage struct {
	Message string `json:"message"`
}

func write(w http.ResponseWriter, code int, message string) {
	body, err := json.Marshal(responseMessage{Message: message})
	if err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Add("Content-Type", "application/json")
	w.Header().Add("Content-Language", "en")
	w.WriteHeader(code)
	w.Write(body)
}

// ReportNotFound sends a 404 with the message configured by the route
// binding for the requested entity kind.
func ReportNotFound(w http.ResponseWriter, message string) {
	write(w, http.StatusNotFound, message)
}

// ReportInternalError sends a 500 without leaking failure detail to the
// caller.
func ReportInternalError(w http.ResponseWriter) {
	write(w, http.StatusInternalServerError, "Internal Server Error")
}
