package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/kozaktomas/beauty-advisor/internal/advice"
	"github.com/kozaktomas/beauty-advisor/internal/classify"
)

// AdviceHandler maps labels to advice without a photo
type AdviceHandler struct {
	mapper   *advice.Mapper
	validate *validator.Validate
}

// NewAdviceHandler creates a new advice handler
func NewAdviceHandler(mapper *advice.Mapper, validate *validator.Validate) *AdviceHandler {
	return &AdviceHandler{mapper: mapper, validate: validate}
}

// AdviceRequest names the labels to look up
type AdviceRequest struct {
	FaceShape string `json:"face_shape" validate:"required,oneof=oval round square heart oblong diamond"`
	Undertone string `json:"undertone" validate:"required,oneof=warm olive balanced cool undetermined"`
	NoseShape string `json:"nose_shape" validate:"omitempty,oneof=wide-narrow-bridge wide narrow long thin short balanced"`
}

// Get returns the advice bundle for the requested labels
func (h *AdviceHandler) Get(w http.ResponseWriter, r *http.Request) {
	var req AdviceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, errInvalidRequestBody)
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		respondValidationError(w, err)
		return
	}

	// oneof above guarantees these parse
	face, _ := classify.ParseFaceShape(req.FaceShape)
	undertone, _ := classify.ParseUndertone(req.Undertone)
	nose := classify.NoseBalanced
	if req.NoseShape != "" {
		nose, _ = classify.ParseNoseShape(req.NoseShape)
	}

	respondJSON(w, http.StatusOK, h.mapper.Build(classify.Result{
		Undertone: undertone,
		FaceShape: face,
		NoseShape: nose,
	}))
}
