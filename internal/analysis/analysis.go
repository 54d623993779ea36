// Package analysis ties landmark detection, classification and advice
// together into a single report per frame.
package analysis

import (
	"context"
	"errors"
	"fmt"
	"image"
	"time"

	"github.com/google/uuid"
	"github.com/kozaktomas/beauty-advisor/internal/advice"
	"github.com/kozaktomas/beauty-advisor/internal/classify"
	"github.com/kozaktomas/beauty-advisor/internal/database"
	"github.com/kozaktomas/beauty-advisor/internal/landmarks"
	"github.com/kozaktomas/beauty-advisor/internal/logging"
	"github.com/sirupsen/logrus"
)

// ErrNoFace is returned when the landmark provider finds no face in a frame.
var ErrNoFace = errors.New("no face detected")

// Where a frame came from. Stored with history entries.
const (
	SourceUpload  = "upload"
	SourceCapture = "capture"
	SourceCLI     = "cli"
)

// Report is the outcome of analyzing one frame.
type Report struct {
	ID             uuid.UUID         `json:"id"`
	CreatedAt      time.Time         `json:"created_at"`
	Source         string            `json:"source,omitempty"`
	Width          int               `json:"width"`
	Height         int               `json:"height"`
	Classification classify.Result   `json:"classification"`
	Advice         advice.Bundle     `json:"advice"`
	Landmarks      []landmarks.Point `json:"landmarks,omitempty"`

	// Frame is the normalized frame the labels were computed on.
	Frame image.Image `json:"-"`
	// Set holds the landmarks used for classification.
	Set *landmarks.Set `json:"-"`
}

// Analyze classifies a frame from its landmarks and maps the labels to
// advice. Every call recomputes the whole report.
func Analyze(img image.Image, set *landmarks.Set, mapper *advice.Mapper) Report {
	result := classify.Classify(img, set)
	bounds := img.Bounds()
	return Report{
		ID:             uuid.New(),
		CreatedAt:      time.Now().UTC(),
		Width:          bounds.Dx(),
		Height:         bounds.Dy(),
		Classification: result,
		Advice:         mapper.Build(result),
		Landmarks:      set.Points(),
		Frame:          img,
		Set:            set,
	}
}

// Service owns the long-lived landmark provider and the optional history
// store.
type Service struct {
	provider landmarks.Provider
	mapper   *advice.Mapper
	store    database.AnalysisWriter
	log      logrus.FieldLogger
}

// NewService creates an analysis service. store may be nil to disable
// history. A nil mapper uses the default catalog.
func NewService(provider landmarks.Provider, mapper *advice.Mapper, store database.AnalysisWriter, log logrus.FieldLogger) *Service {
	if mapper == nil {
		mapper = advice.NewMapper(nil, nil)
	}
	if log == nil {
		log = logging.Discard()
	}
	return &Service{provider: provider, mapper: mapper, store: store, log: log}
}

// Mapper returns the advice mapper used for reports.
func (s *Service) Mapper() *advice.Mapper {
	return s.mapper
}

// HistoryEnabled reports whether reports are persisted.
func (s *Service) HistoryEnabled() bool {
	return s.store != nil
}

// AnalyzeFrame decodes an uploaded image and analyzes it.
func (s *Service) AnalyzeFrame(ctx context.Context, data []byte) (*Report, error) {
	img, err := DecodeFrame(data)
	if err != nil {
		return nil, err
	}
	return s.AnalyzeImage(ctx, img, SourceUpload)
}

// AnalyzeImage normalizes img, asks the provider for landmarks and builds a
// report. It returns ErrNoFace when the provider finds no face.
func (s *Service) AnalyzeImage(ctx context.Context, img image.Image, source string) (*Report, error) {
	if s.provider == nil {
		return nil, errors.New("no landmark provider configured")
	}

	frame := NormalizeFrame(img)
	set, err := s.provider.Detect(ctx, frame)
	if err != nil {
		return nil, fmt.Errorf("failed to detect landmarks: %w", err)
	}
	if set == nil {
		s.log.WithField("source", source).Debug("no face detected")
		return nil, ErrNoFace
	}

	return s.finish(ctx, frame, set, source), nil
}

// AnalyzeWithLandmarks analyzes an uploaded image using landmarks supplied
// by the caller instead of the provider.
func (s *Service) AnalyzeWithLandmarks(ctx context.Context, data []byte, set *landmarks.Set) (*Report, error) {
	img, err := DecodeFrame(data)
	if err != nil {
		return nil, err
	}
	return s.AnalyzeImageWithLandmarks(ctx, img, set, SourceUpload)
}

// AnalyzeImageWithLandmarks is AnalyzeWithLandmarks for an already decoded
// image. A nil set means no face.
func (s *Service) AnalyzeImageWithLandmarks(ctx context.Context, img image.Image, set *landmarks.Set, source string) (*Report, error) {
	if set == nil {
		return nil, ErrNoFace
	}
	return s.finish(ctx, NormalizeFrame(img), set, source), nil
}

func (s *Service) finish(ctx context.Context, frame image.Image, set *landmarks.Set, source string) *Report {
	report := Analyze(frame, set, s.mapper)
	report.Source = source

	s.log.WithFields(logrus.Fields{
		"id":         report.ID,
		"source":     source,
		"undertone":  report.Classification.Undertone,
		"face_shape": report.Classification.FaceShape,
		"nose_shape": report.Classification.NoseShape,
	}).Info("frame analyzed")

	s.persist(ctx, &report)
	return &report
}

// persist saves the report when history is enabled. Failures are logged only.
func (s *Service) persist(ctx context.Context, r *Report) {
	if s.store == nil {
		return
	}
	err := s.store.Save(ctx, &database.StoredAnalysis{
		ID:             r.ID,
		Source:         r.Source,
		Width:          r.Width,
		Height:         r.Height,
		Classification: r.Classification,
		Advice:         r.Advice,
		CreatedAt:      r.CreatedAt,
	})
	if err != nil {
		s.log.WithError(err).WithField("id", r.ID).Warn("failed to store analysis")
	}
}

// FromStored rebuilds a report from a history entry. Frame, Set and
// Landmarks are not stored and stay empty.
func FromStored(a database.StoredAnalysis) Report {
	return Report{
		ID:             a.ID,
		CreatedAt:      a.CreatedAt,
		Source:         a.Source,
		Width:          a.Width,
		Height:         a.Height,
		Classification: a.Classification,
		Advice:         a.Advice,
	}
}
