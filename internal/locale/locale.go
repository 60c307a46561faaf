// Package locale maps the categorical feature vocabularies between the
// model-facing locale (English, the storage and inference vocabulary) and the
// display locale (French, the form-facing vocabulary).
//
// Both directions are pure lookups with passthrough on miss: a value already
// in the target vocabulary comes back unchanged, so the transforms are
// idempotent on canonical input. Callers declare the direction explicitly; no
// code here guesses a locale from value content.
package locale

import "assurly/internal/models"

// Locale tags which vocabulary a request's categorical fields are in.
type Locale string

const (
	Model   Locale = "en"
	Display Locale = "fr"
)

var sexToModel = map[string]string{
	"femme": models.SexFemale,
	"homme": models.SexMale,
}

var smokerToModel = map[string]string{
	"oui": models.SmokerYes,
	"non": models.SmokerNo,
}

var regionToModel = map[string]string{
	"Sud Est":    models.RegionSoutheast,
	"Sud Ouest":  models.RegionSouthwest,
	"Nord Est":   models.RegionNortheast,
	"Nord Ouest": models.RegionNorthwest,
}

var sexToDisplay = invert(sexToModel)
var smokerToDisplay = invert(smokerToModel)
var regionToDisplay = invert(regionToModel)

func invert(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[v] = k
	}
	return out
}

func lookup(m map[string]string, v string) string {
	if mapped, ok := m[v]; ok {
		return mapped
	}
	return v
}

// ToModel converts the categorical fields of a feature set from display
// locale to model locale. Values outside the display vocabulary pass through.
func ToModel(fs models.FeatureSet) models.FeatureSet {
	fs.Sex = lookup(sexToModel, fs.Sex)
	fs.Smoker = lookup(smokerToModel, fs.Smoker)
	fs.Region = lookup(regionToModel, fs.Region)
	return fs
}

// ToDisplay is the exact inverse of ToModel, with the same passthrough policy.
func ToDisplay(fs models.FeatureSet) models.FeatureSet {
	fs.Sex = lookup(sexToDisplay, fs.Sex)
	fs.Smoker = lookup(smokerToDisplay, fs.Smoker)
	fs.Region = lookup(regionToDisplay, fs.Region)
	return fs
}

// DisplayPrediction returns a copy of the record with its categorical fields
// rendered in display locale. The stored record keeps model-locale values;
// only the returned projection is handed to presentation.
func DisplayPrediction(p models.Prediction) models.Prediction {
	p.Sex = lookup(sexToDisplay, p.Sex)
	p.Smoker = lookup(smokerToDisplay, p.Smoker)
	p.Region = lookup(regionToDisplay, p.Region)
	return p
}
