package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"mesa-pos/internal/service"
	"mesa-pos/pkg/logger"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
)

func init() {
	// Money goes out as JSON numbers, the way the front end reads it.
	decimal.MarshalJSONWithoutQuotes = true
}

// writeJSONResponse writes JSON response with given status code and data
func writeJSONResponse(w http.ResponseWriter, log *logger.Logger, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Error("Failed to encode JSON response", "error", err)
		}
	}
}

// writeErrorResponse writes {"error": message} with the given status code
func writeErrorResponse(w http.ResponseWriter, log *logger.Logger, statusCode int, message string) {
	writeJSONResponse(w, log, statusCode, map[string]string{"error": message})
}

// writeServiceError maps service errors onto HTTP status codes.
func writeServiceError(w http.ResponseWriter, log *logger.Logger, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		writeErrorResponse(w, log, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrOrderNotFound):
		writeErrorResponse(w, log, http.StatusNotFound, "Not found")
	case errors.Is(err, service.ErrOrderCompleted):
		writeErrorResponse(w, log, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrFeatureDisabled):
		writeErrorResponse(w, log, http.StatusServiceUnavailable, err.Error())
	default:
		log.Error("Request failed", "error", err)
		writeErrorResponse(w, log, http.StatusInternalServerError, err.Error())
	}
}

// parseRequestBody decodes a JSON body. Unknown fields are ignored because
// the ordering front end sends cart details the API does not store.
func parseRequestBody(r *http.Request, target any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(target)
}

// orderIDFromPath reads the {order_id} route variable.
func orderIDFromPath(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["order_id"], 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
