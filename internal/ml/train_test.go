package ml

import (
	"math/rand"
	"path/filepath"
	"testing"

	"celiguard/internal/models"
	"celiguard/internal/risk"
	"celiguard/internal/synth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func trainingCohort(t *testing.T, n int, seed int64) ([]models.PatientRecord, []models.RiskClass) {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	cohort := synth.NewGenerator(rng).Cohort(n)

	engine := risk.NewEngine(rng)
	labels := make([]models.RiskClass, n)
	for i, rec := range cohort {
		labels[i] = engine.AssignRisk(rec)
	}
	return cohort, labels
}

func smallTrainConfig() TrainConfig {
	cfg := DefaultTrainConfig()
	cfg.Forest.Trees = 25
	cfg.Softmax.Epochs = 150
	return cfg
}

func TestTrainSelectsAModel(t *testing.T) {
	cohort, labels := trainingCohort(t, 400, 42)

	report, err := Train(cohort, labels, smallTrainConfig(), rand.New(rand.NewSource(42)))
	require.NoError(t, err)

	require.NotNil(t, report.Model)
	assert.Contains(t, []string{KindLogisticRegression, KindRandomForest}, report.Model.Kind)
	assert.Equal(t, report.Model.Kind, report.Metadata.ModelType)
	assert.Equal(t, NumericFeatureNames, report.Metadata.NumericFeatures)
	assert.Equal(t, CategoricalFeatureNames, report.Metadata.CategoricalFeatures)
	assert.Equal(t, 400, report.TrainSize+report.TestSize)
	// Per-class holdout counts round down, so the test set is at most 20%.
	assert.InDelta(t, 80, report.TestSize, 3)

	// The rule-derived labels are mostly learnable; either candidate should
	// clearly beat chance on the holdout.
	assert.Greater(t, report.Metadata.Accuracy, 0.4)
	assert.LessOrEqual(t, report.Metadata.Accuracy, 1.0)
}

func TestTrainedModelEmitsValidDistribution(t *testing.T) {
	cohort, labels := trainingCohort(t, 300, 7)

	report, err := Train(cohort, labels, smallTrainConfig(), rand.New(rand.NewSource(7)))
	require.NoError(t, err)

	for _, rec := range cohort[:25] {
		probs, err := report.Model.ClassProbabilities(rec)
		require.NoError(t, err)
		require.Len(t, probs, models.NumRiskClasses)

		sum := 0.0
		for _, p := range probs {
			assert.GreaterOrEqual(t, p, 0.0)
			assert.LessOrEqual(t, p, 1.0)
			sum += p
		}
		assert.InDelta(t, 1.0, sum, 1e-9)

		idx, err := report.Model.Classify(rec)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, idx, 0)
		assert.Less(t, idx, models.NumRiskClasses)
	}
}

func TestTrainRejectsBadInput(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	_, err := Train(nil, nil, smallTrainConfig(), rng)
	assert.Error(t, err)

	cohort, labels := trainingCohort(t, 10, 1)
	_, err = Train(cohort, labels[:5], smallTrainConfig(), rng)
	assert.Error(t, err)
}

func TestArtifactRoundTrip(t *testing.T) {
	cohort, labels := trainingCohort(t, 300, 13)

	report, err := Train(cohort, labels, smallTrainConfig(), rand.New(rand.NewSource(13)))
	require.NoError(t, err)

	dir := t.TempDir()
	modelPath := filepath.Join(dir, "model.json")
	metadataPath := filepath.Join(dir, "metadata.json")

	require.NoError(t, SaveModel(modelPath, report.Model))
	require.NoError(t, SaveMetadata(metadataPath, report.Metadata))

	loaded, meta, err := LoadArtifacts(modelPath, metadataPath)
	require.NoError(t, err)
	assert.Equal(t, report.Metadata, meta)
	assert.Equal(t, report.Model.Kind, loaded.Kind)

	for _, rec := range cohort[:20] {
		want, err := report.Model.ClassProbabilities(rec)
		require.NoError(t, err)
		got, err := loaded.ClassProbabilities(rec)
		require.NoError(t, err)

		require.Len(t, got, len(want))
		for k := range want {
			assert.InDelta(t, want[k], got[k], 1e-12)
		}
	}
}

func TestLoadModelRejectsUnknownKind(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "model.json")

	bad := &Model{Kind: "Gradient Boosting", Encoder: &Encoder{}}
	require.NoError(t, SaveModel(path, bad))

	_, err := LoadModel(path)
	assert.Error(t, err)
}

func TestLoadModelMissingFile(t *testing.T) {
	_, err := LoadModel(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}
