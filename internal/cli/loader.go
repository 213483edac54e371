package cli

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Error codes reported in CLI output.
const (
	ErrCodeGeneric     = "E001" // Generic/unknown error
	ErrCodeNotFound    = "E002" // Config file not found
	ErrCodeParseFailed = "E003" // Config file did not parse as YAML
	ErrCodeBadConfig   = "E004" // Config parsed but contains invalid fields
)

// LoadError represents an error that occurred while loading a config file.
type LoadError struct {
	Code    string
	Message string
	Path    string
}

func (e *LoadError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s: %s", e.Path, e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// LoadConfig reads a YAML config file into out. Decoding is strict: unknown
// fields are rejected so typos in config keys surface instead of silently
// evaluating defaults.
func LoadConfig(path string, out interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &LoadError{Code: ErrCodeNotFound, Message: "config file not found", Path: path}
		}
		return &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("error reading config file: %v", err), Path: path}
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil {
		return &LoadError{Code: ErrCodeParseFailed, Message: fmt.Sprintf("invalid YAML: %v", err), Path: path}
	}
	return nil
}
