package service

import (
	"context"

	"cropadvisor/entities"
)

// FailureNote is returned when no soil reading could be obtained.
const FailureNote = "Unable to analyze soil data. Please try uploading a clearer image or PDF."

type RecommendService interface {
	// Generate scores the farmer's regional candidates against an already
	// obtained reading. It never fails; an empty list is a valid outcome.
	Generate(soil entities.SoilReading, farmer entities.FarmerProfile) entities.Result
	// Recommend obtains the reading from the soil provider first. Provider
	// failures come back as Result{Success: false}.
	Recommend(ctx context.Context, a entities.Artifact, farmer entities.FarmerProfile) entities.Result
}
