package regression

import (
	"context"
	"fmt"
	"path/filepath"

	"assurly/internal/models"
)

// Registry runs inference against a registered regression model. The
// predictor artifact is reloaded from disk on every call; nothing is cached
// between invocations, so administrative changes to the files take effect
// immediately.
type Registry interface {
	Predict(ctx context.Context, model *models.RegModel, features models.FeatureSet) (float64, error)
}

// ModelLoadError reports an unreadable or corrupt predictor artifact.
type ModelLoadError struct {
	Path string
	Err  error
}

func (e *ModelLoadError) Error() string {
	return fmt.Sprintf("failed to load regression model %q: %v", e.Path, e.Err)
}

func (e *ModelLoadError) Unwrap() error {
	return e.Err
}

// InferenceError reports a predictor rejecting the engineered feature vector.
type InferenceError struct {
	Model  string
	Reason string
}

func (e *InferenceError) Error() string {
	return fmt.Sprintf("model %q rejected feature vector: %s", e.Model, e.Reason)
}

type fileRegistry struct {
	baseDir string
}

// NewFileRegistry returns a Registry backed by artifact files on disk.
// Relative model paths are resolved against baseDir.
func NewFileRegistry(baseDir string) Registry {
	if baseDir == "" {
		baseDir = "."
	}
	return &fileRegistry{baseDir: baseDir}
}

func (r *fileRegistry) Predict(ctx context.Context, model *models.RegModel, features models.FeatureSet) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	path := model.Path
	if !filepath.IsAbs(path) {
		path = filepath.Join(r.baseDir, path)
	}

	artifact, err := LoadArtifact(path)
	if err != nil {
		return 0, err
	}

	return artifact.Predict(features)
}
