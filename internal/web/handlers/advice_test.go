package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/kozaktomas/beauty-advisor/internal/advice"
	"github.com/kozaktomas/beauty-advisor/internal/classify"
)

func TestAdviceHandler_Get(t *testing.T) {
	mapper := advice.NewSeededMapper(nil, 1)
	h := NewAdviceHandler(mapper, validator.New())

	tests := []struct {
		name   string
		body   string
		status int
	}{
		{"valid", `{"face_shape":"round","undertone":"warm","nose_shape":"wide"}`, http.StatusOK},
		{"valid without nose", `{"face_shape":"oval","undertone":"cool"}`, http.StatusOK},
		{"unknown face", `{"face_shape":"triangle","undertone":"warm"}`, http.StatusBadRequest},
		{"missing undertone", `{"face_shape":"oval"}`, http.StatusBadRequest},
		{"unknown nose", `{"face_shape":"oval","undertone":"warm","nose_shape":"roman"}`, http.StatusBadRequest},
		{"invalid json", `{`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/advice", bytes.NewBufferString(tt.body))
			recorder := httptest.NewRecorder()
			h.Get(recorder, req)
			assertStatusCode(t, recorder, tt.status)
		})
	}
}

func TestAdviceHandler_MatchesMapper(t *testing.T) {
	mapper := advice.NewSeededMapper(nil, 1)
	h := NewAdviceHandler(mapper, validator.New())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/advice",
		bytes.NewBufferString(`{"face_shape":"square","undertone":"olive","nose_shape":"long"}`))
	recorder := httptest.NewRecorder()
	h.Get(recorder, req)
	assertStatusCode(t, recorder, http.StatusOK)

	var got advice.Bundle
	parseJSONResponse(t, recorder, &got)

	want := mapper.Contouring(classify.FaceSquare, classify.NoseLong, classify.UndertoneOlive)
	if len(got.Contouring) != len(want) {
		t.Fatalf("contouring = %v, want %v", got.Contouring, want)
	}
	for i := range want {
		if got.Contouring[i] != want[i] {
			t.Errorf("contouring[%d] = %q, want %q", i, got.Contouring[i], want[i])
		}
	}
	if len(got.Highlights) == 0 || len(got.Highlights) > advice.MaxHighlights {
		t.Errorf("highlights = %v", got.Highlights)
	}
}
