package ml

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Metadata is the companion artifact describing the trained model.
type Metadata struct {
	ModelType           string   `json:"model_type"`
	Accuracy            float64  `json:"accuracy"`
	NumericFeatures     []string `json:"numeric_features"`
	CategoricalFeatures []string `json:"categorical_features"`
}

// SaveModel writes the model artifact as JSON, creating the directory if
// needed.
func SaveModel(path string, m *Model) error {
	return writeJSON(path, m)
}

// LoadModel reads and sanity-checks a model artifact.
func LoadModel(path string) (*Model, error) {
	var m Model
	if err := readJSON(path, &m); err != nil {
		return nil, err
	}
	switch m.Kind {
	case KindLogisticRegression, KindRandomForest:
	default:
		return nil, fmt.Errorf("model artifact %s: unknown kind %q", path, m.Kind)
	}
	if m.Encoder == nil {
		return nil, fmt.Errorf("model artifact %s: missing encoder", path)
	}
	return &m, nil
}

func SaveMetadata(path string, meta *Metadata) error {
	return writeJSON(path, meta)
}

func LoadMetadata(path string) (*Metadata, error) {
	var meta Metadata
	if err := readJSON(path, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadArtifacts loads the model and metadata pair used by the serving
// process.
func LoadArtifacts(modelPath, metadataPath string) (*Model, *Metadata, error) {
	model, err := LoadModel(modelPath)
	if err != nil {
		return nil, nil, err
	}
	meta, err := LoadMetadata(metadataPath)
	if err != nil {
		return nil, nil, err
	}
	return model, meta, nil
}

func writeJSON(path string, v any) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}
