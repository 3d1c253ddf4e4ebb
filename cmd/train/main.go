package main

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"

	"celiguard/internal/ml"
	"celiguard/internal/models"
	"celiguard/internal/risk"
	"celiguard/internal/synth"

	"github.com/spf13/cobra"
)

type trainFlags struct {
	samples      int
	seed         int64
	outDir       string
	testFraction float64
	forestTrees  int
	forestDepth  int
}

func main() {
	var flags trainFlags

	root := &cobra.Command{
		Use:   "train",
		Short: "Generate a synthetic celiac cohort and train the risk model",
		Long: "Generates synthetic patient records, labels them with clinical heuristics, " +
			"trains a logistic regression and a random forest, and saves the better model " +
			"as a JSON artifact pair for the API to serve.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTrain(flags)
		},
	}

	f := root.Flags()
	f.IntVar(&flags.samples, "samples", 1500, "Number of synthetic patients to generate")
	f.Int64Var(&flags.seed, "seed", 42, "Random seed for data generation and training")
	f.StringVar(&flags.outDir, "out", "models", "Output directory for the model artifacts")
	f.Float64Var(&flags.testFraction, "test-fraction", 0.2, "Holdout fraction for model selection")
	f.IntVar(&flags.forestTrees, "forest-trees", 200, "Number of trees in the random forest")
	f.IntVar(&flags.forestDepth, "forest-depth", 10, "Maximum tree depth")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func runTrain(flags trainFlags) error {
	rng := rand.New(rand.NewSource(flags.seed))

	fmt.Printf("Generating %d synthetic patient records (seed %d)...\n", flags.samples, flags.seed)
	cohort := synth.NewGenerator(rng).Cohort(flags.samples)

	engine := risk.NewEngine(rng)
	labels := make([]models.RiskClass, len(cohort))
	distribution := make(map[models.RiskClass]int)
	for i, rec := range cohort {
		labels[i] = engine.AssignRisk(rec)
		distribution[labels[i]]++
	}

	fmt.Println("Label distribution:")
	for class := models.RiskLow; class <= models.RiskHigh; class++ {
		count := distribution[class]
		fmt.Printf("  %-8s %5d (%.1f%%)\n", class, count, 100*float64(count)/float64(len(cohort)))
	}

	cfg := ml.DefaultTrainConfig()
	cfg.TestFraction = flags.testFraction
	cfg.Forest.Trees = flags.forestTrees
	cfg.Forest.MaxDepth = flags.forestDepth

	fmt.Printf("Training on %d samples, evaluating on a %.0f%% holdout...\n",
		flags.samples, flags.testFraction*100)
	report, err := ml.Train(cohort, labels, cfg, rng)
	if err != nil {
		return err
	}

	fmt.Printf("Logistic Regression accuracy: %.4f\n", report.LogisticAccuracy)
	fmt.Printf("Random Forest accuracy:       %.4f\n", report.ForestAccuracy)
	fmt.Printf("Selected: %s\n", report.Model.Kind)
	fmt.Println("Confusion matrix (rows=actual, cols=predicted):")
	for actual, row := range report.Confusion {
		fmt.Printf("  %-8s %v\n", models.RiskClass(actual), row)
	}

	modelPath := filepath.Join(flags.outDir, "celiac_risk_model.json")
	metadataPath := filepath.Join(flags.outDir, "model_metadata.json")
	if err := ml.SaveModel(modelPath, report.Model); err != nil {
		return fmt.Errorf("save model: %w", err)
	}
	if err := ml.SaveMetadata(metadataPath, report.Metadata); err != nil {
		return fmt.Errorf("save metadata: %w", err)
	}

	fmt.Printf("Model saved to:    %s\n", modelPath)
	fmt.Printf("Metadata saved to: %s\n", metadataPath)
	return nil
}
