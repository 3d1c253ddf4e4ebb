package storage

import (
	"encoding/json"
	"time"

	"celiguard/internal/models"
)

const timeFormat = "2006-01-02 15:04:05"

// PredictionRecord is one audited prediction: the input, the outcome, and
// when it was served.
type PredictionRecord struct {
	ID        string               `json:"id"`
	Patient   models.PatientRecord `json:"patient"`
	RiskClass string               `json:"risk_class"`
	RiskScore []float64            `json:"risk_score"`
	Message   string               `json:"message"`
	CreatedAt time.Time            `json:"created_at"`
}

func (s *Store) InsertPrediction(rec PredictionRecord) error {
	patientJSON, err := json.Marshal(rec.Patient)
	if err != nil {
		return err
	}
	scoreJSON, err := json.Marshal(rec.RiskScore)
	if err != nil {
		return err
	}

	stmt, err := s.db.Prepare("INSERT INTO predictions(id, patient, risk_class, risk_score, message, created_at) VALUES(?, ?, ?, ?, ?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	_, err = stmt.Exec(rec.ID, string(patientJSON), rec.RiskClass, string(scoreJSON), rec.Message, rec.CreatedAt.UTC().Format(timeFormat))
	return err
}

// RecentPredictions returns the newest audit entries, most recent first.
func (s *Store) RecentPredictions(limit int) ([]PredictionRecord, error) {
	query := `
		SELECT id, patient, risk_class, risk_score, message, created_at
		FROM predictions
		ORDER BY created_at DESC, id
		LIMIT ?
	`
	rows, err := s.db.Query(query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []PredictionRecord
	for rows.Next() {
		var r PredictionRecord
		var patientJSON, scoreJSON, createdStr string

		if err := rows.Scan(&r.ID, &patientJSON, &r.RiskClass, &scoreJSON, &r.Message, &createdStr); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(patientJSON), &r.Patient); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(scoreJSON), &r.RiskScore); err != nil {
			return nil, err
		}

		parsedTime, _ := time.Parse(timeFormat, createdStr)
		r.CreatedAt = parsedTime

		records = append(records, r)
	}
	return records, rows.Err()
}
