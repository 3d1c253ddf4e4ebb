package ml

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clusters samples three well-separated Gaussian blobs, one per class.
func clusters(rng *rand.Rand, perClass int) ([][]float64, []int) {
	centers := [][]float64{{0, 0}, {6, 0}, {0, 6}}

	var X [][]float64
	var y []int
	for label, center := range centers {
		for i := 0; i < perClass; i++ {
			X = append(X, []float64{
				center[0] + rng.NormFloat64()*0.5,
				center[1] + rng.NormFloat64()*0.5,
			})
			y = append(y, label)
		}
	}
	return X, y
}

func TestSoftmaxSeparatesClusters(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	X, y := clusters(rng, 40)

	model := TrainSoftmax(X, y, 3, DefaultSoftmaxConfig())

	pred := predictAll(model.Proba, X)
	assert.GreaterOrEqual(t, Accuracy(pred, y), 0.95)
}

func TestSoftmaxProbabilitiesSumToOne(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	X, y := clusters(rng, 20)

	model := TrainSoftmax(X, y, 3, DefaultSoftmaxConfig())

	for _, x := range X {
		probs := model.Proba(x)
		require.Len(t, probs, 3)

		sum := 0.0
		for _, p := range probs {
			assert.GreaterOrEqual(t, p, 0.0)
			assert.LessOrEqual(t, p, 1.0)
			sum += p
		}
		assert.InDelta(t, 1.0, sum, 1e-9)
	}
}
