package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/filehub/internal/common"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// writeServiceError maps the error taxonomy onto the wire contract. Anything
// outside the taxonomy is an internal failure: logged, surfaced uniformly,
// never retried here.
func (s *Server) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, common.ErrorMissingEmail):
		writeError(w, http.StatusBadRequest, "Missing email")
	case errors.Is(err, common.ErrorMissingPassword):
		writeError(w, http.StatusBadRequest, "Missing password")
	case errors.Is(err, common.ErrorAlreadyExists):
		writeError(w, http.StatusBadRequest, "Already exist")
	case errors.Is(err, common.ErrorUnauthorized):
		writeError(w, http.StatusUnauthorized, "Unauthorized")
	case errors.Is(err, common.ErrorMissingName):
		writeError(w, http.StatusBadRequest, "Missing name")
	case errors.Is(err, common.ErrorMissingType):
		writeError(w, http.StatusBadRequest, "Missing type")
	case errors.Is(err, common.ErrorMissingData):
		writeError(w, http.StatusBadRequest, "Missing data")
	case errors.Is(err, common.ErrorParentNotFound):
		writeError(w, http.StatusBadRequest, "Parent not found")
	case errors.Is(err, common.ErrorParentNotFolder):
		writeError(w, http.StatusBadRequest, "Parent is not a folder")
	case errors.Is(err, common.ErrorInvalidID):
		writeError(w, http.StatusBadRequest, "Invalid file ID")
	case errors.Is(err, common.ErrorNotAFile):
		writeError(w, http.StatusBadRequest, "A folder doesn't have content")
	case errors.Is(err, common.ErrorNotFound):
		writeError(w, http.StatusNotFound, "Not found")
	default:
		s.logger.Error(r.Context(), "request failed", "path", r.URL.Path, "error", err.Error())
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}
