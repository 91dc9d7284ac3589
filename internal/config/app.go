package config

import "time"

const defaultDataFile = "data/expenses.json"

type AppConfig struct {
	DataFilePath string `yaml:"data-file"`
	Timezone     string `yaml:"timezone"`
}

func (s *AppConfig) DataFile() string {
	if s.DataFilePath == "" {
		return defaultDataFile
	}
	return s.DataFilePath
}

// Location is the zone "today" is taken in when an expense has no date.
// Unknown zones fall back to UTC.
func (s *AppConfig) Location() *time.Location {
	if s.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
