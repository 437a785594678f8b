package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrUnsupportedExtension is returned for tuning files that are not JSON.
var ErrUnsupportedExtension = errors.New("config file must have .json extension")

const maxTuningFileSize = 1 * 1024 * 1024

// TuningFile is the on-disk form of a Config. Omitted fields keep the value
// of the Config they are applied to, so partial files are fine.
type TuningFile struct {
	Width         *int     `json:"width,omitempty"`
	Height        *int     `json:"height,omitempty"`
	Lanes         *int     `json:"lanes,omitempty"`
	RoadWidth     *int     `json:"road_width,omitempty"`
	CameraHeight  *int     `json:"camera_height,omitempty"`
	DrawDistance  *int     `json:"draw_distance,omitempty"`
	FogDensity    *int     `json:"fog_density,omitempty"`
	FieldOfView   *int     `json:"field_of_view,omitempty"`
	SegmentLength *int     `json:"segment_length,omitempty"`
	RumbleLength  *int     `json:"rumble_length,omitempty"`
	TotalCars     *int     `json:"total_cars,omitempty"`
	FPS           *int     `json:"fps,omitempty"`
	Centrifugal   *float64 `json:"centrifugal,omitempty"`
	Seed          *int64   `json:"seed,omitempty"`
}

// LoadTuningFile reads a tuning file. The path must end in .json and the file
// must be under 1 MiB.
func LoadTuningFile(path string) (*TuningFile, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("%w, got %q", ErrUnsupportedExtension, ext)
	}

	info, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	if info.Size() > maxTuningFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", info.Size(), maxTuningFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	tf := &TuningFile{}
	if err := json.Unmarshal(data, tf); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}
	return tf, nil
}

// Apply overlays the fields present in the file on base and clamps the result.
func (tf *TuningFile) Apply(base Config) Config {
	cfg := base
	setInt(&cfg.Width, tf.Width)
	setInt(&cfg.Height, tf.Height)
	setInt(&cfg.Lanes, tf.Lanes)
	setInt(&cfg.RoadWidth, tf.RoadWidth)
	setInt(&cfg.CameraHeight, tf.CameraHeight)
	setInt(&cfg.DrawDistance, tf.DrawDistance)
	setInt(&cfg.FogDensity, tf.FogDensity)
	setInt(&cfg.FieldOfView, tf.FieldOfView)
	setInt(&cfg.SegmentLength, tf.SegmentLength)
	setInt(&cfg.RumbleLength, tf.RumbleLength)
	setInt(&cfg.TotalCars, tf.TotalCars)
	setInt(&cfg.FPS, tf.FPS)
	if tf.Centrifugal != nil {
		cfg.Centrifugal = *tf.Centrifugal
	}
	if tf.Seed != nil {
		cfg.Seed = *tf.Seed
	}
	return cfg.Clamp()
}

// Load reads path and applies it on top of the defaults.
func Load(path string) (Config, error) {
	tf, err := LoadTuningFile(path)
	if err != nil {
		return Default(), err
	}
	return tf.Apply(Default()), nil
}

func setInt(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}
