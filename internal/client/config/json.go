package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/LabsDAO/data-gamify-network/internal/flagx"
	"github.com/LabsDAO/data-gamify-network/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
// It relies on timex.Duration so JSON can specify intervals either as
// strings like "10s" or as integer nanoseconds. After parsing, values
// are copied into the runtime Config (which uses time.Duration).
type JsonConfig struct {
	StatePath        string         `json:"state_path"`
	UploadsDSN       string         `json:"uploads_dsn"`
	AuthToken        string         `json:"auth_token"`
	UploadPath       string         `json:"upload_path"`
	ProbeStepTimeout timex.Duration `json:"probe_step_timeout"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// Lookup order for the JSON file path:
//  1. Command-line flags (-c or -config) via flagx.JsonConfigFlags().
//  2. If empty, no JSON is loaded and the function returns.
//
// Behavior:
//   - Reads and unmarshals the JSON into JsonConfig.
//   - Copies known fields into the provided Config.
//   - Panics on read or unmarshal errors (caller should recover if desired).
//
// Intended usage is: defaults -> parseJson -> parseFlags, where later stages
// override earlier ones.
func parseJson(cfg *Config) {
	// Resolve file path from flags.
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	cfg.StatePath = jc.StatePath
	cfg.UploadsDSN = jc.UploadsDSN
	cfg.AuthToken = jc.AuthToken
	if jc.UploadPath != "" {
		cfg.UploadPath = jc.UploadPath
	}
	if jc.ProbeStepTimeout.Duration != 0 {
		cfg.ProbeStepTimeout = time.Duration(jc.ProbeStepTimeout.Duration)
	}
}
