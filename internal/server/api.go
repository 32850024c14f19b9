package server

import (
	"errors"
	"net/http"

	json "github.com/goccy/go-json"

	"github.com/rpgo/retirement-projector/internal/calculation"
	"github.com/rpgo/retirement-projector/internal/domain"
	"github.com/rpgo/retirement-projector/internal/output"
)

// ErrorResponse is the body of every non-2xx API response.
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// ProjectionRequest is the body of POST /api/projection and POST /api/compare.
type ProjectionRequest struct {
	Name string `json:"name,omitempty"`
	domain.ProjectionInputs
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleProjection(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeRequest(w, r)
	if !ok {
		return
	}

	result, err := s.engine.RunProjection(r.Context(), req.ProjectionInputs)
	if err != nil {
		s.writeEngineError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, output.NewReport(req.Name, req.ProjectionInputs, result, nil))
}

func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeRequest(w, r)
	if !ok {
		return
	}

	comparison, err := s.engine.CompareStrategies(r.Context(), req.ProjectionInputs)
	if err != nil {
		s.writeEngineError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, comparison)
}

func decodeRequest(w http.ResponseWriter, r *http.Request) (ProjectionRequest, bool) {
	var req ProjectionRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return req, false
	}
	return req, true
}

func (s *Server) writeEngineError(w http.ResponseWriter, err error) {
	if errors.Is(err, calculation.ErrInvalidInputs) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.logger.Errorf("projection failed: %v", err)
	writeError(w, http.StatusInternalServerError, "projection failed")
}

// writeJSON encodes v before writing the status so encoding failures become a 500.
func writeJSON(w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		status = http.StatusInternalServerError
		body, _ = json.Marshal(ErrorResponse{Status: status, Message: "could not encode response"})
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(append(body, '\n'))
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Status: status, Message: message})
}
