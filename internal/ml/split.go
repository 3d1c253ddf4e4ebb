package ml

import "math/rand"

// StratifiedSplit partitions sample indices into train and test sets,
// preserving the class proportions of y. testFraction is the share of each
// class held out for testing.
func StratifiedSplit(y []int, classes int, testFraction float64, rng *rand.Rand) (train, test []int) {
	byClass := make([][]int, classes)
	for i, label := range y {
		byClass[label] = append(byClass[label], i)
	}

	for _, indices := range byClass {
		rng.Shuffle(len(indices), func(i, j int) {
			indices[i], indices[j] = indices[j], indices[i]
		})
		cut := int(float64(len(indices)) * testFraction)
		test = append(test, indices[:cut]...)
		train = append(train, indices[cut:]...)
	}

	rng.Shuffle(len(train), func(i, j int) { train[i], train[j] = train[j], train[i] })
	rng.Shuffle(len(test), func(i, j int) { test[i], test[j] = test[j], test[i] })
	return train, test
}
