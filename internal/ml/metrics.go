package ml

// Accuracy is the fraction of predictions matching the truth.
func Accuracy(pred, truth []int) float64 {
	if len(truth) == 0 {
		return 0
	}
	correct := 0
	for i, p := range pred {
		if p == truth[i] {
			correct++
		}
	}
	return float64(correct) / float64(len(truth))
}

// ConfusionMatrix returns counts[actual][predicted].
func ConfusionMatrix(pred, truth []int, classes int) [][]int {
	matrix := make([][]int, classes)
	for i := range matrix {
		matrix[i] = make([]int, classes)
	}
	for i, p := range pred {
		matrix[truth[i]][p]++
	}
	return matrix
}
