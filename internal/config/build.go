package config

import "fmt"

type BuildType int

const (
	RELEASE BuildType = iota
	DEBUG
)

func (bt BuildType) String() string {
	switch bt {
	case RELEASE:
		return "release"
	case DEBUG:
		return "debug"
	}
	return "unknown"
}

// Flags are the optimization flags handed to the C compiler.
func (bt BuildType) Flags() []string {
	switch bt {
	case RELEASE:
		return []string{"-O2", "-Wl,-s"}
	default:
		return []string{"-O0", "-g"}
	}
}

func (bt BuildType) MarshalText() ([]byte, error) {
	return []byte(bt.String()), nil
}

func (bt *BuildType) UnmarshalText(text []byte) error {
	switch string(text) {
	case "release":
		*bt = RELEASE
	case "debug":
		*bt = DEBUG
	default:
		return fmt.Errorf("invalid build type %q, expected \"debug\" or \"release\"", text)
	}
	return nil
}
