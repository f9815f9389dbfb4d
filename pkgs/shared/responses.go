package shared

import (
	"encoding/json"
	"net/http"

	"github.com/DhruvPatel284/supermind-ART/pkgs/models"
)

func JSONResponse(w http.ResponseWriter, trackingID string, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(payload); err != nil {
		Logger.Error("could not write JSON response", "error", err, "trackingId", trackingID)
	}
}

func JSONErrorResponse(w http.ResponseWriter, trackingID string, code int, message string) {
	JSONResponse(w, trackingID, code, models.ErrorResponse{Error: message})
}
