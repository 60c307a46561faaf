package regression

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"assurly/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const artifactJSON = `{
  "name": "test model",
  "intercept": 1000.0,
  "weights": {"age": 10.0, "bmi": 100.0, "children": 50.0},
  "levels": {
    "sex": {"female": 0.0, "male": 200.0},
    "smoker": {"no": 0.0, "yes": 5000.0},
    "region": {"northeast": 0.0, "northwest": -50.0, "southeast": -100.0, "southwest": -150.0}
  }
}`

func writeArtifact(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "model.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func testFeatures() models.FeatureSet {
	return models.FeatureSet{
		Age:      40,
		Sex:      models.SexFemale,
		Weight:   100,
		Height:   200,
		Children: 2,
		Smoker:   models.SmokerYes,
		Region:   models.RegionSoutheast,
	}
}

func TestLoadArtifact(t *testing.T) {
	path := writeArtifact(t, artifactJSON)

	artifact, err := LoadArtifact(path)
	require.NoError(t, err)
	assert.Equal(t, "test model", artifact.Name)
	assert.Equal(t, 1000.0, artifact.Intercept)
	assert.Equal(t, 10.0, artifact.Weights["age"])
	assert.Equal(t, 5000.0, artifact.Levels["smoker"]["yes"])
}

func TestLoadArtifactMissingFile(t *testing.T) {
	_, err := LoadArtifact(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)

	var loadErr *ModelLoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestLoadArtifactCorruptFile(t *testing.T) {
	path := writeArtifact(t, "{not json")

	_, err := LoadArtifact(path)
	require.Error(t, err)

	var loadErr *ModelLoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestArtifactPredict(t *testing.T) {
	path := writeArtifact(t, artifactJSON)
	artifact, err := LoadArtifact(path)
	require.NoError(t, err)

	// BMI is 100 / (200/100)^2 = 25, so:
	// 1000 + 10*40 + 100*25 + 50*2 + 0 + 5000 - 100 = 8900
	value, err := artifact.Predict(testFeatures())
	require.NoError(t, err)
	assert.InDelta(t, 8900.0, value, 1e-9)
}

func TestArtifactPredictRejections(t *testing.T) {
	path := writeArtifact(t, artifactJSON)
	artifact, err := LoadArtifact(path)
	require.NoError(t, err)

	tests := []struct {
		name   string
		mutate func(*models.FeatureSet)
	}{
		{name: "zero height", mutate: func(f *models.FeatureSet) { f.Height = 0 }},
		{name: "zero weight", mutate: func(f *models.FeatureSet) { f.Weight = 0 }},
		{name: "unknown sex level", mutate: func(f *models.FeatureSet) { f.Sex = "femme" }},
		{name: "unknown smoker level", mutate: func(f *models.FeatureSet) { f.Smoker = "sometimes" }},
		{name: "unknown region level", mutate: func(f *models.FeatureSet) { f.Region = "central" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			features := testFeatures()
			tt.mutate(&features)

			_, err := artifact.Predict(features)
			require.Error(t, err)

			var inferenceErr *InferenceError
			assert.ErrorAs(t, err, &inferenceErr)
		})
	}
}

func TestArtifactPredictMissingWeights(t *testing.T) {
	artifact := &Artifact{
		Name:      "incomplete",
		Intercept: 1,
		Weights:   map[string]float64{"age": 1},
		Levels:    map[string]map[string]float64{},
	}

	_, err := artifact.Predict(testFeatures())
	require.Error(t, err)

	var inferenceErr *InferenceError
	assert.ErrorAs(t, err, &inferenceErr)
}

func TestFileRegistryPredict(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "model.json"), []byte(artifactJSON), 0o644))

	registry := NewFileRegistry(dir)
	model := &models.RegModel{ID: 1, Name: "test model", Path: "model.json"}

	value, err := registry.Predict(context.Background(), model, testFeatures())
	require.NoError(t, err)
	assert.InDelta(t, 8900.0, value, 1e-9)
}

func TestFileRegistryReloadsPerCall(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "model.json")
	require.NoError(t, os.WriteFile(path, []byte(artifactJSON), 0o644))

	registry := NewFileRegistry(dir)
	model := &models.RegModel{ID: 1, Name: "test model", Path: "model.json"}

	first, err := registry.Predict(context.Background(), model, testFeatures())
	require.NoError(t, err)

	// Swap the artifact on disk; the next call must see the new intercept.
	updated := []byte(`{
  "name": "test model",
  "intercept": 2000.0,
  "weights": {"age": 10.0, "bmi": 100.0, "children": 50.0},
  "levels": {
    "sex": {"female": 0.0, "male": 200.0},
    "smoker": {"no": 0.0, "yes": 5000.0},
    "region": {"northeast": 0.0, "northwest": -50.0, "southeast": -100.0, "southwest": -150.0}
  }
}`)
	require.NoError(t, os.WriteFile(path, updated, 0o644))

	second, err := registry.Predict(context.Background(), model, testFeatures())
	require.NoError(t, err)
	assert.InDelta(t, first+1000.0, second, 1e-9)
}

func TestFileRegistryMissingArtifact(t *testing.T) {
	registry := NewFileRegistry(t.TempDir())
	model := &models.RegModel{ID: 1, Name: "ghost", Path: "missing.json"}

	_, err := registry.Predict(context.Background(), model, testFeatures())
	require.Error(t, err)

	var loadErr *ModelLoadError
	assert.ErrorAs(t, err, &loadErr)
}
