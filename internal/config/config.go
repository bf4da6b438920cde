// Package config holds the compiler configuration: leniency modes of the
// front end and the settings of the native build.
package config

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"reflect"

	"github.com/naoina/toml"
)

type Config struct {
	Lexer   LexerConfig
	Codegen CodegenConfig
	Build   BuildConfig
	Log     LogConfig
}

type LexerConfig struct {
	StrictStrings bool
}

type CodegenConfig struct {
	StrictImports bool
}

type BuildConfig struct {
	CC      string
	CFlags  []string `toml:",omitempty"`
	Runtime string
	Output  string
	Type    BuildType
	// EmitCOnly stops the pipeline once the C file is written.
	EmitCOnly bool
}

// LogConfig selects the level, format and destination of the compiler log.
// An empty File logs to stderr.
type LogConfig struct {
	Level  string
	Format string
	File   string `toml:",omitempty"`
}

const (
	DefaultCC      = "gcc"
	DefaultRuntime = "build/rere_runtime.o"
	DefaultOutput  = "a.out"

	DefaultLogLevel  = "warn"
	DefaultLogFormat = "text"
)

func Defaults() Config {
	return Config{
		Build: BuildConfig{
			CC:      DefaultCC,
			Runtime: DefaultRuntime,
			Output:  DefaultOutput,
			Type:    DEBUG,
		},
		Log: LogConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}

// These settings ensure that TOML keys use the same names as Go struct fields.
var tomlSettings = toml.Config{
	NormFieldName: func(rt reflect.Type, key string) string {
		return key
	},
	FieldToKey: func(rt reflect.Type, field string) string {
		return field
	},
	MissingField: func(rt reflect.Type, field string) error {
		return fmt.Errorf("field '%s' is not defined in %s", field, rt.String())
	},
}

// LoadFile decodes file on top of the values already in cfg.
func LoadFile(file string, cfg *Config) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()

	err = tomlSettings.NewDecoder(bufio.NewReader(f)).Decode(cfg)
	// Add file name to errors that have a line number.
	if _, ok := err.(*toml.LineError); ok {
		err = errors.New(file + ", " + err.Error())
	}
	return err
}

// Load returns the defaults overlaid with file. An empty file falls back to
// the user config file, which is optional.
func Load(file string) (Config, error) {
	cfg := Defaults()

	if file == "" {
		userFile, err := UserConfigFile()
		if err != nil {
			return cfg, nil
		}
		if _, err := os.Stat(userFile); err != nil {
			return cfg, nil
		}
		file = userFile
	}

	if err := LoadFile(file, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func Marshal(cfg *Config) ([]byte, error) {
	return tomlSettings.Marshal(cfg)
}
