package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors the layout of the optional JSON config file.
type StructuredJSONConfig struct {
	App struct {
		SecretToken string `json:"secret_token"`
		Version     string `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		Files struct {
			TempDir string `json:"temp_dir"`
		} `json:"files,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		Host string `json:"host"`
		Port int    `json:"port"`
	} `json:"server,omitempty"`

	Adapter struct {
		RequestTimeout Duration `json:"request_timeout"`
		MaxImageSize   int64    `json:"max_image_size"`
	} `json:"adapter,omitempty"`

	Workers struct {
		SweepInterval Duration `json:"sweep_interval"`
		ArtifactTTL   Duration `json:"artifact_ttl"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			SecretToken: jsonCfg.App.SecretToken,
			Version:     jsonCfg.App.Version,
		},
		Storage: Storage{
			Files: Files{
				TempDir: jsonCfg.Storage.Files.TempDir,
			},
		},
		Server: Server{
			Host: jsonCfg.Server.Host,
			Port: jsonCfg.Server.Port,
		},
		Adapter: Adapter{
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
			MaxImageSize:   jsonCfg.Adapter.MaxImageSize,
		},
		Workers: Workers{
			SweepInterval: time.Duration(jsonCfg.Workers.SweepInterval),
			ArtifactTTL:   time.Duration(jsonCfg.Workers.ArtifactTTL),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
