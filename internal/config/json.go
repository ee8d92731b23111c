package config

import (
	"encoding/json"
	"flag"
	"os"
)

// jsonConfig is a DTO used exclusively for JSON unmarshalling.
type jsonConfig struct {
	DBPath          string `json:"db_path"`
	StatsWindowDays int    `json:"stats_window_days"`
}

// parseJson overlays cfg with values from the JSON file named by -c/-config.
// When neither flag is given, nothing is loaded. Fields absent from the file
// keep their current values. Read or unmarshal errors panic (caller may
// recover if desired).
func parseJson(cfg *Config) {
	path := jsonConfigPath()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DBPath != "" {
		cfg.DBPath = jc.DBPath
	}
	if jc.StatsWindowDays > 0 {
		cfg.StatsWindowDays = jc.StatsWindowDays
	}
}

// jsonConfigPath extracts the config file path from the -c or -config flags,
// ignoring every other argument. Empty when neither flag is present.
func jsonConfigPath() string {
	var path string

	args := filterArgs(os.Args[1:], []string{"-c", "-config"})

	fs := flag.NewFlagSet("json", flag.ContinueOnError)
	fs.StringVar(&path, "config", "", "Path to config file")
	fs.StringVar(&path, "c", "", "Path to config file (short)")
	_ = fs.Parse(args)

	return path
}
