package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFeatureSetBMI(t *testing.T) {
	tests := []struct {
		name     string
		weight   float64
		height   float64
		expected float64
	}{
		{name: "two meters one hundred kilos", weight: 100, height: 200, expected: 25},
		{name: "average adult", weight: 70, height: 175, expected: 22.857142857142858},
		{name: "short and light", weight: 50, height: 160, expected: 19.531249999999996},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := FeatureSet{Weight: tt.weight, Height: tt.height}
			assert.InDelta(t, tt.expected, f.BMI(), 1e-9)
		})
	}
}

func TestFeatureSetValidateCategoricals(t *testing.T) {
	valid := FeatureSet{Sex: SexFemale, Smoker: SmokerNo, Region: RegionSoutheast}
	assert.NoError(t, valid.ValidateCategoricals())

	tests := []struct {
		name string
		f    FeatureSet
	}{
		{name: "bad sex", f: FeatureSet{Sex: "femme", Smoker: SmokerNo, Region: RegionSoutheast}},
		{name: "bad smoker", f: FeatureSet{Sex: SexMale, Smoker: "oui", Region: RegionSoutheast}},
		{name: "bad region", f: FeatureSet{Sex: SexMale, Smoker: SmokerYes, Region: "Sud Est"}},
		{name: "empty", f: FeatureSet{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.f.ValidateCategoricals())
		})
	}
}

func TestPredictionFeaturesRoundTrip(t *testing.T) {
	features := FeatureSet{
		Age:      42,
		Sex:      SexMale,
		Weight:   82.5,
		Height:   180,
		Children: 3,
		Smoker:   SmokerNo,
		Region:   RegionNorthwest,
	}

	var p Prediction
	p.ApplyFeatures(features)

	assert.Equal(t, 42, p.Age)
	assert.Equal(t, SexMale, p.Sex)
	assert.Equal(t, features, p.Features())
}
