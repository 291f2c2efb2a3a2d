package console

import (
	"fmt"
	"strings"
)

// Verbosity controls how much detail upstream components send to a console.
type Verbosity int

const (
	VerbositySilent Verbosity = iota
	VerbosityStandard
	VerbosityBinaryOutputs
	VerbosityCommands
	VerbosityAll
)

var verbosityNames = map[Verbosity]string{
	VerbositySilent:        "silent",
	VerbosityStandard:      "standard",
	VerbosityBinaryOutputs: "binary_outputs",
	VerbosityCommands:      "commands",
	VerbosityAll:           "all",
}

func (v Verbosity) String() string {
	if name, ok := verbosityNames[v]; ok {
		return name
	}
	return fmt.Sprintf("verbosity(%d)", int(v))
}

// ShouldPrintStandardInformation reports whether regular progress output is wanted.
func (v Verbosity) ShouldPrintStandardInformation() bool {
	return v >= VerbosityStandard
}

// ShouldPrintCommand reports whether launched command lines should be echoed.
func (v Verbosity) ShouldPrintCommand() bool {
	return v >= VerbosityCommands
}

// ParseVerbosity accepts either a level name or its numeric form (0-4).
func ParseVerbosity(value string) (Verbosity, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	for level, name := range verbosityNames {
		if normalized == name || normalized == fmt.Sprint(int(level)) {
			return level, nil
		}
	}
	return VerbosityStandard, fmt.Errorf("unknown verbosity %q", value)
}
