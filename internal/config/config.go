package config

import (
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds the desktop shell configuration
type Config struct {
	Backend  Backend  `yaml:"backend"`
	Window   Window   `yaml:"window"`
	Frontend Frontend `yaml:"frontend"`
}

// Backend describes how to launch the Python backend process.
// The defaults in etc/lazylearn.yaml reproduce the development command:
//
//	python -m uvicorn app.main:app --port 8000 --host 127.0.0.1
//
// run from ../backend relative to the shell's working directory.
type Backend struct {
	Interpreter string `yaml:"interpreter"`
	Module      string `yaml:"module"`
	App         string `yaml:"app"`
	Host        string `yaml:"host"`
	Port        int    `yaml:"port"`
	Dir         string `yaml:"dir"`
}

// Args returns the argument vector passed to the interpreter.
func (b Backend) Args() []string {
	return []string{
		"-m", b.Module, b.App,
		"--port", strconv.Itoa(b.Port),
		"--host", b.Host,
	}
}

// Window holds the main window geometry
type Window struct {
	Title     string `yaml:"title"`
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	MinWidth  int    `yaml:"min_width"`
	MinHeight int    `yaml:"min_height"`
}

// Frontend holds the URL the main window loads
type Frontend struct {
	URL string `yaml:"url"`
}

// LoadFromBytes loads configuration from YAML bytes with environment variable expansion
func LoadFromBytes(data []byte) (Config, error) {
	var c Config
	expanded := os.ExpandEnv(string(data))
	if err := yaml.Unmarshal([]byte(expanded), &c); err != nil {
		return c, err
	}
	return c, nil
}

// LoadFile overlays a YAML config file onto base. Fields the file does not
// set keep their base values. The file is env-expanded like the embedded
// defaults.
func LoadFile(base Config, path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, err
	}
	expanded := os.ExpandEnv(string(data))
	if err := yaml.Unmarshal([]byte(expanded), &base); err != nil {
		return base, err
	}
	return base, nil
}
