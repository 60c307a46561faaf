package regression

import (
	"encoding/json"
	"fmt"
	"os"

	"assurly/internal/models"
)

// Numeric feature names every artifact must carry a weight for. Body-mass
// index replaces raw weight/height in the engineered vector.
var numericFeatures = []string{"age", "bmi", "children"}

// Categorical feature names every artifact must carry level weights for.
var categoricalFeatures = []string{"sex", "smoker", "region"}

// Artifact is a serialized predictor: a linear form over the six engineered
// features (age, sex, bmi, children, smoker, region). Pre-trained elsewhere;
// this package only evaluates it.
type Artifact struct {
	Name      string                        `json:"name"`
	Intercept float64                       `json:"intercept"`
	Weights   map[string]float64            `json:"weights"`
	Levels    map[string]map[string]float64 `json:"levels"`
}

// LoadArtifact reads and decodes a predictor artifact from disk.
func LoadArtifact(path string) (*Artifact, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ModelLoadError{Path: path, Err: err}
	}

	var artifact Artifact
	if err := json.Unmarshal(data, &artifact); err != nil {
		return nil, &ModelLoadError{Path: path, Err: err}
	}

	return &artifact, nil
}

// Predict evaluates the linear form on the engineered feature vector.
// Categorical fields must already be in model locale.
func (a *Artifact) Predict(features models.FeatureSet) (float64, error) {
	if features.Height <= 0 || features.Weight <= 0 {
		return 0, &InferenceError{Model: a.Name, Reason: "weight and height must be positive"}
	}

	for _, name := range numericFeatures {
		if _, ok := a.Weights[name]; !ok {
			return 0, &InferenceError{Model: a.Name, Reason: fmt.Sprintf("artifact is missing weight for %q", name)}
		}
	}
	for _, name := range categoricalFeatures {
		if _, ok := a.Levels[name]; !ok {
			return 0, &InferenceError{Model: a.Name, Reason: fmt.Sprintf("artifact is missing levels for %q", name)}
		}
	}

	sexWeight, ok := a.Levels["sex"][features.Sex]
	if !ok {
		return 0, &InferenceError{Model: a.Name, Reason: fmt.Sprintf("unknown sex level %q", features.Sex)}
	}
	smokerWeight, ok := a.Levels["smoker"][features.Smoker]
	if !ok {
		return 0, &InferenceError{Model: a.Name, Reason: fmt.Sprintf("unknown smoker level %q", features.Smoker)}
	}
	regionWeight, ok := a.Levels["region"][features.Region]
	if !ok {
		return 0, &InferenceError{Model: a.Name, Reason: fmt.Sprintf("unknown region level %q", features.Region)}
	}

	value := a.Intercept
	value += a.Weights["age"] * float64(features.Age)
	value += a.Weights["bmi"] * features.BMI()
	value += a.Weights["children"] * float64(features.Children)
	value += sexWeight + smokerWeight + regionWeight

	return value, nil
}
