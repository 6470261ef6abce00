package config

import "fmt"

type Config struct {
	Transcript TranscriptConfig `yaml:"transcript"`
	Tree       TreeConfig       `yaml:"tree"`
	Logging    LoggingConfig    `yaml:"logging"`
}

type TranscriptConfig struct {
	Input  string `yaml:"input"`
	Output string `yaml:"output"`
}

type TreeConfig struct {
	Root   string `yaml:"root"`
	Output string `yaml:"output"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns a config with every field at its built-in value.
// Both tools run without a config file.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Transcript.Input == "" {
		c.Transcript.Input = "transcript.txt"
	}
	if c.Transcript.Output == "" {
		c.Transcript.Output = "cleaned_transcript.txt"
	}
	if c.Tree.Root == "" {
		c.Tree.Root = "."
	}
	if c.Tree.Output == "" {
		c.Tree.Output = "folder_structure.txt"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "console"
	}
}

func (c *Config) Validate() error {
	c.applyDefaults()

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error")
	}

	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json")
	}

	return nil
}
