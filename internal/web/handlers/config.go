package handlers

import (
	"net/http"

	"github.com/kozaktomas/beauty-advisor/internal/config"
	"github.com/kozaktomas/beauty-advisor/internal/constants"
)

// ConfigHandler handles configuration endpoints
type ConfigHandler struct {
	config         *config.Config
	historyEnabled bool
}

// NewConfigHandler creates a new config handler. historyEnabled reflects
// whether a store is actually connected, not just configured.
func NewConfigHandler(cfg *config.Config, historyEnabled bool) *ConfigHandler {
	return &ConfigHandler{
		config:         cfg,
		historyEnabled: historyEnabled,
	}
}

// ConfigResponse represents the configuration response
type ConfigResponse struct {
	LandmarkURL    string `json:"landmark_url"`
	HistoryEnabled bool   `json:"history_enabled"`
	FrameWidth     int    `json:"frame_width"`
	FrameHeight    int    `json:"frame_height"`
	MaxUploadSize  int64  `json:"max_upload_size"`
}

// Get returns the public configuration
func (h *ConfigHandler) Get(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, ConfigResponse{
		LandmarkURL:    h.config.Landmarks.URL,
		HistoryEnabled: h.historyEnabled,
		FrameWidth:     constants.FrameWidth,
		FrameHeight:    constants.FrameHeight,
		MaxUploadSize:  constants.MaxUploadSize,
	})
}
