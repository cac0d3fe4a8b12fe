package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/jonathan/skillfit/internal/extraction"
	"github.com/jonathan/skillfit/internal/report"
	"github.com/jonathan/skillfit/internal/types"
)

// handleTextInput stores raw document text for the session and returns its id.
func (s *Server) handleTextInput(w http.ResponseWriter, r *http.Request) {
	var req types.TextInputRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	id := s.store.Put(req.Text, req.SourceType)

	s.jsonResponse(w, http.StatusCreated, types.TextInputResponse{
		ID:         id,
		SourceType: req.SourceType,
		CharCount:  len(req.Text),
	})
}

// handleDeleteTextInput removes a stored session document before its TTL.
func (s *Server) handleDeleteTextInput(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if !s.store.Delete(id) {
		err := &ErrDocumentNotFound{ID: id}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"id": id, "status": "deleted"})
}

// handleAnalyzeGap analyzes two pre-extracted skill sets.
func (s *Server) handleAnalyzeGap(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req types.AnalyzeGapRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	rep := report.Build(req.ResumeSkills, req.JDSkills, req.Weights)

	s.jsonResponse(w, http.StatusOK, types.AnalyzeGapResponse{
		Report:       rep,
		AnalysisTime: roundSeconds(time.Since(start)),
	})
}

// handleAnalyzeGapFromText extracts skills from raw text or stored session
// documents, then analyzes the gap.
func (s *Server) handleAnalyzeGapFromText(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req types.AnalyzeGapFromTextRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	if s.extractor == nil {
		err := &ErrNotConfigured{What: "extraction"}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	resumeSkills, err := s.resolveSkills(r, req.ResumeText, req.ResumeID, extraction.SourceResume)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	jdSkills, err := s.resolveSkills(r, req.JDText, req.JDID, extraction.SourceJobDescription)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	rep := report.Build(resumeSkills, jdSkills, req.Weights)

	s.jsonResponse(w, http.StatusOK, types.AnalyzeGapResponse{
		Report:       rep,
		AnalysisTime: roundSeconds(time.Since(start)),
	})
}

// resolveSkills produces an extraction result from either inline text or a
// stored document id. Stored documents cache their extraction so repeated
// analyses do not re-run the LLM.
func (s *Server) resolveSkills(r *http.Request, text, id string, source extraction.SourceType) (*types.SkillExtractionResult, error) {
	if id == "" {
		return s.extractor.Extract(r.Context(), text, source)
	}

	doc := s.store.Get(id)
	if doc == nil {
		return nil, &ErrDocumentNotFound{ID: id}
	}
	if doc.Extracted != nil {
		return doc.Extracted, nil
	}

	result, err := s.extractor.Extract(r.Context(), doc.Text, source)
	if err != nil {
		return nil, err
	}
	s.store.SetExtraction(id, result)
	return result, nil
}

func roundSeconds(d time.Duration) float64 {
	return float64(d.Milliseconds()) / 1000.0
}
