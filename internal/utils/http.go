package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/novera/models"
)

// WriteJSON serializes data to JSON and writes it to w with statusCode.
//
// The "Content-Type" header is set to "application/json". If marshaling
// fails, 500 Internal Server Error is written and a wrapped error returned.
// The returned int is the number of body bytes written.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteError writes a {"detail": detail} body with statusCode.
func WriteError(w http.ResponseWriter, detail string, statusCode int) (int, error) {
	return WriteJSON(w, models.ErrorResponse{Detail: detail}, statusCode)
}
