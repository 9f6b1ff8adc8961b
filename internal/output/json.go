package output

import (
	"encoding/json"
	"fmt"

	"github.com/planforge/cli/internal/logging"
)

// JSON is the structured outputer, intended for consumption by other tools.
type JSON struct {
	cfg *Config
}

func NewJSON(config *Config) (JSON, error) {
	return JSON{config}, nil
}

func (f *JSON) Print(value interface{}) {
	b, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		logging.Error("Could not marshal value, error: %v", err)
		f.Error(fmt.Sprintf("Could not marshal value: %v", err))
		return
	}
	f.cfg.OutWriter.Write(append(b, '\n'))
}

func (f *JSON) Error(value interface{}) {
	if err, ok := value.(error); ok {
		value = err.Error()
	}
	errStruct := struct {
		Error interface{} `json:"error"`
	}{value}
	b, err := json.MarshalIndent(errStruct, "", "  ")
	if err != nil {
		logging.Error("Could not marshal value, error: %v", err)
		b = []byte(`{"error": "Could not marshal value"}`)
	}
	f.cfg.ErrWriter.Write(append(b, '\n'))
}

// Notice has no effect for JSON output: notices are informational and would
// corrupt the machine readable output.
func (f *JSON) Notice(value interface{}) {
}

func (f *JSON) Config() *Config {
	return f.cfg
}

func (f *JSON) Type() Format {
	return JSONFormatName
}
