package snapshot

import (
	"encoding/json"
	"os"

	"fracture-viewer/internal/preset"
)

// ManifestEntry represents one rendered case in the output manifest.
type ManifestEntry struct {
	Name             string  `json:"name"`
	Image            string  `json:"image"`
	FractureLength   float64 `json:"fracture_length"`
	FracturePosition float64 `json:"fracture_position"`
}

// WriteManifest writes manifest.json next to the rendered images.
func WriteManifest(path string, cases []preset.Case) error {
	entries := make([]ManifestEntry, len(cases))
	for i, c := range cases {
		entries[i] = ManifestEntry{
			Name:             c.Name,
			Image:            fileName(c.Name),
			FractureLength:   c.Measurements.FractureLength,
			FracturePosition: c.Measurements.FracturePosition,
		}
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
