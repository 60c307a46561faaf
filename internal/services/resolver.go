package services

import (
	"context"
	"errors"
	"fmt"
	"math"

	"assurly/internal/models"
	"assurly/internal/regression"
	"assurly/internal/repository"
)

// ErrMissingModel rejects a staff resolution without a named regression model.
var ErrMissingModel = errors.New("staff prediction requires a regression model")

// ErrUnexpectedModel rejects a self-service resolution that names a model.
var ErrUnexpectedModel = errors.New("self-service prediction cannot name a regression model")

// ErrNoModelsRegistered rejects a self-service resolution against an empty registry.
var ErrNoModelsRegistered = errors.New("no regression models registered")

// PredictionResolver computes and stores a prediction's premium.
type PredictionResolver interface {
	Resolve(ctx context.Context, prediction *models.Prediction) error
}

// Resolver computes a prediction's premium. Staff resolutions run the single
// model named on the record; self-service resolutions scan every registered
// model and keep the maximum, so the end user sees the most conservative
// estimate. Either the whole resolution succeeds and Result is set, or it
// fails and the record is left untouched.
type Resolver struct {
	registry  regression.Registry
	regModels repository.RegModelRepository
}

func NewResolver(registry regression.Registry, regModels repository.RegModelRepository) *Resolver {
	return &Resolver{registry: registry, regModels: regModels}
}

func (r *Resolver) Resolve(ctx context.Context, prediction *models.Prediction) error {
	features := prediction.Features()

	var value float64
	if prediction.MadeByStaff {
		if prediction.RegModelID == nil {
			return ErrMissingModel
		}
		model, err := r.regModels.GetRegModelByID(*prediction.RegModelID)
		if err != nil {
			return fmt.Errorf("regression model %d not found: %w", *prediction.RegModelID, err)
		}
		value, err = r.registry.Predict(ctx, model, features)
		if err != nil {
			return err
		}
	} else {
		if prediction.RegModelID != nil {
			return ErrUnexpectedModel
		}
		best, err := r.bestOfAll(ctx, features)
		if err != nil {
			return err
		}
		value = best
	}

	rounded := math.Round(value*100) / 100
	prediction.Result = &rounded
	return nil
}

// bestOfAll runs every registered model sequentially and returns the maximum.
// A model failing mid-scan fails the whole resolution; entries are never
// skipped or retried.
func (r *Resolver) bestOfAll(ctx context.Context, features models.FeatureSet) (float64, error) {
	regModels, err := r.regModels.GetAllRegModels()
	if err != nil {
		return 0, err
	}
	if len(regModels) == 0 {
		return 0, ErrNoModelsRegistered
	}

	var best float64
	for i := range regModels {
		value, err := r.registry.Predict(ctx, &regModels[i], features)
		if err != nil {
			return 0, err
		}
		if i == 0 || value > best {
			best = value
		}
	}
	return best, nil
}
