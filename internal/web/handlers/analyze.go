package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/kozaktomas/beauty-advisor/internal/analysis"
	"github.com/kozaktomas/beauty-advisor/internal/constants"
	"github.com/kozaktomas/beauty-advisor/internal/landmarks"
	"github.com/kozaktomas/beauty-advisor/internal/render"
	"github.com/sirupsen/logrus"
)

// AnalyzeHandler runs uploaded photos through the analysis service
type AnalyzeHandler struct {
	service *analysis.Service
	log     logrus.FieldLogger
}

// NewAnalyzeHandler creates a new analyze handler
func NewAnalyzeHandler(service *analysis.Service, log logrus.FieldLogger) *AnalyzeHandler {
	return &AnalyzeHandler{service: service, log: log}
}

// AnalyzeResponse is the JSON body of a successful analysis
type AnalyzeResponse struct {
	*analysis.Report
	Descriptions Descriptions `json:"descriptions"`
}

// Descriptions carries the human readable labels next to the keys
type Descriptions struct {
	Undertone string `json:"undertone"`
	FaceShape string `json:"face_shape"`
	NoseShape string `json:"nose_shape"`
	Eyebrows  string `json:"eyebrows"`
	Lips      string `json:"lips"`
}

func describe(r *analysis.Report) Descriptions {
	c := r.Classification
	return Descriptions{
		Undertone: c.Undertone.Description(),
		FaceShape: c.FaceShape.Description(),
		NoseShape: c.NoseShape.Description(),
		Eyebrows:  c.Brow.Description(),
		Lips:      c.Lip.Description(),
	}
}

// readUpload parses the multipart form and returns the image bytes and the
// optional landmark set.
func readUpload(w http.ResponseWriter, r *http.Request) ([]byte, *landmarks.Set, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, constants.MaxUploadSize)
	if err := r.ParseMultipartForm(constants.MaxUploadSize); err != nil {
		respondError(w, http.StatusBadRequest, "failed to parse multipart form")
		return nil, nil, false
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		respondError(w, http.StatusBadRequest, "file is required")
		return nil, nil, false
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		respondError(w, http.StatusBadRequest, "failed to read file")
		return nil, nil, false
	}

	raw := r.FormValue("landmarks")
	if raw == "" {
		return data, nil, true
	}
	if len(raw) > constants.MaxLandmarkFieldSize {
		respondError(w, http.StatusRequestEntityTooLarge, "landmarks field too large")
		return nil, nil, false
	}
	set, err := landmarks.Parse([]byte(raw))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid landmarks: "+err.Error())
		return nil, nil, false
	}
	return data, set, true
}

func (h *AnalyzeHandler) run(ctx context.Context, w http.ResponseWriter, data []byte, set *landmarks.Set) (*analysis.Report, bool) {
	var (
		report *analysis.Report
		err    error
	)
	if set != nil {
		report, err = h.service.AnalyzeWithLandmarks(ctx, data, set)
	} else {
		report, err = h.service.AnalyzeFrame(ctx, data)
	}

	switch {
	case err == nil:
		return report, true
	case errors.Is(err, analysis.ErrNoFace):
		respondError(w, http.StatusUnprocessableEntity, analysis.ErrNoFace.Error())
	case errors.Is(err, analysis.ErrInvalidImage):
		respondError(w, http.StatusBadRequest, sanitizeForLog(err.Error()))
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		respondError(w, http.StatusGatewayTimeout, "analysis timed out")
	default:
		h.log.WithError(err).Error("analysis failed")
		respondError(w, http.StatusBadGateway, "analysis failed: "+sanitizeForLog(err.Error()))
	}
	return nil, false
}

// Analyze classifies an uploaded photo and returns the report
func (h *AnalyzeHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	data, set, ok := readUpload(w, r)
	if !ok {
		return
	}
	report, ok := h.run(r.Context(), w, data, set)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, AnalyzeResponse{Report: report, Descriptions: describe(report)})
}

// Overlay returns the normalized frame with the landmark mesh drawn on it
func (h *AnalyzeHandler) Overlay(w http.ResponseWriter, r *http.Request) {
	data, set, ok := readUpload(w, r)
	if !ok {
		return
	}
	report, ok := h.run(r.Context(), w, data, set)
	if !ok {
		return
	}

	img, err := render.OverlayJPEG(report.Frame, report.Set)
	if err != nil {
		h.log.WithError(err).Error("overlay encoding failed")
		respondError(w, http.StatusInternalServerError, "failed to render overlay")
		return
	}
	w.Header().Set("Content-Type", "image/jpeg")
	w.Header().Set("X-Analysis-ID", report.ID.String())
	w.WriteHeader(http.StatusOK)
	w.Write(img)
}
