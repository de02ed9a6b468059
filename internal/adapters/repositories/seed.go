package repositories

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

type RequestSeed struct {
	RequestID    int     `json:"request_id"`
	ShipperCode  string  `json:"shipper_code"`
	ReceiverCode string  `json:"receiver_code"`
	VolumeTons   float64 `json:"volume_tons"`
	WorkingHours float64 `json:"working_hours"`
}

// loadRequestSeeds reads and structurally checks the seed file. Codes are only
// required to be present; unparsable ones are deliberately allowed through so
// the planner's own validation path stays exercised by seed data.
func loadRequestSeeds(jsonPath string) ([]RequestSeed, error) {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return nil, fmt.Errorf("seed requests: read %q: %w", jsonPath, err)
	}

	var data []RequestSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return nil, fmt.Errorf("seed requests: parse json: %w", err)
	}

	rows := make([]RequestSeed, 0, len(data))
	for i, item := range data {
		if item.RequestID <= 0 {
			return nil, fmt.Errorf("seed requests: invalid request_id at index %d: %d", i+1, item.RequestID)
		}

		shipper := strings.TrimSpace(item.ShipperCode)
		receiver := strings.TrimSpace(item.ReceiverCode)
		if shipper == "" || receiver == "" {
			return nil, fmt.Errorf("seed requests: item at index %d: shipper and receiver codes cannot be empty", i+1)
		}

		rows = append(rows, RequestSeed{
			RequestID:    item.RequestID,
			ShipperCode:  shipper,
			ReceiverCode: receiver,
			VolumeTons:   item.VolumeTons,
			WorkingHours: item.WorkingHours,
		})
	}

	return rows, nil
}
