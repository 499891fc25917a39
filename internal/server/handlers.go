package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/copygate/internal/evaluation"
	"github.com/jonathan/copygate/internal/repair"
)

// EvaluateRequest is the body of POST /evaluate.
type EvaluateRequest struct {
	ContentType string `json:"content_type" validate:"required"`
	Text        string `json:"text" validate:"required"`
	TestMode    *bool  `json:"test_mode,omitempty"`
}

// FixRequest is the body of POST /fix.
type FixRequest struct {
	DraftID     string `json:"draft_id" validate:"required"`
	ContentType string `json:"content_type" validate:"required"`
	Text        string `json:"text" validate:"required"`
	TestMode    *bool  `json:"test_mode,omitempty"`
}

// FixResponse wraps a fix outcome with its operation id.
type FixResponse struct {
	OperationID string `json:"operation_id"`
	*repair.Outcome
}

// ContentTypeInfo describes one registered content type.
type ContentTypeInfo struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	Template    string `json:"template"`
	RuleCount   int    `json:"rule_count"`
}

func (s *Server) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	var req EvaluateRequest
	if !s.decode(w, r, &req) {
		return
	}

	testMode := s.testMode
	if req.TestMode != nil {
		testMode = *req.TestMode
	}

	report, err := evaluation.Evaluate(s.reg, req.ContentType, req.Text, testMode)
	if err != nil {
		writeError(w, HTTPStatus(err), err.Error())
		return
	}

	s.emitter.EmitEvaluation(req.ContentType, string(report.Decision))
	writeJSON(w, http.StatusOK, report)
}

func (s *Server) handleFix(w http.ResponseWriter, r *http.Request) {
	var req FixRequest
	if !s.decode(w, r, &req) {
		return
	}

	if !s.admission.Acquire(req.DraftID) {
		err := &ErrDraftBusy{DraftID: req.DraftID}
		writeError(w, HTTPStatus(err), err.Error())
		return
	}
	defer s.admission.Release(req.DraftID)

	operationID := uuid.New().String()
	var outcome *repair.Outcome
	var err error
	if req.TestMode != nil {
		outcome, err = s.fixer.RunWithTestMode(r.Context(), req.ContentType, req.Text, *req.TestMode)
	} else {
		outcome, err = s.fixer.Run(r.Context(), req.ContentType, req.Text)
	}
	if err != nil {
		s.logger.Error("fix operation failed",
			zap.String("operation_id", operationID),
			zap.String("content_type", req.ContentType),
			zap.Error(err))
		writeError(w, HTTPStatus(err), err.Error())
		return
	}

	s.logger.Info("fix operation completed",
		zap.String("operation_id", operationID),
		zap.String("content_type", req.ContentType),
		zap.String("state", string(outcome.State)),
		zap.Int("attempt_count", outcome.AttemptCount),
		zap.Bool("used_fallback", outcome.UsedFallback),
		zap.String("similarity_bucket", string(outcome.SimilarityBucket)))

	writeJSON(w, http.StatusOK, FixResponse{OperationID: operationID, Outcome: outcome})
}

func (s *Server) handleContentTypes(w http.ResponseWriter, _ *http.Request) {
	ids := s.reg.ContentTypes()
	infos := make([]ContentTypeInfo, 0, len(ids))
	for _, id := range ids {
		profile, err := s.reg.Profile(id)
		if err != nil {
			continue
		}
		defs, err := s.reg.Rules(id)
		if err != nil {
			continue
		}
		infos = append(infos, ContentTypeInfo{
			ID:          id,
			DisplayName: profile.DisplayName,
			Template:    profile.Template,
			RuleCount:   len(defs),
		})
	}
	writeJSON(w, http.StatusOK, infos)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// decode parses and validates a JSON request body. It writes the error
// response itself and reports whether decoding succeeded.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return false
	}
	if err := validator.New().Struct(dst); err != nil {
		writeError(w, http.StatusBadRequest, "validation error: "+err.Error())
		return false
	}
	return true
}
