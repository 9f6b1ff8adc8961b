package output

import (
	"fmt"
	"io"
	"reflect"

	"gopkg.in/yaml.v2"

	"github.com/planforge/cli/internal/logging"
)

// Plain is the human readable outputer. Scalars and strings are printed
// as-is, structured values are rendered as yaml, which reads well enough on a
// terminal without requiring reflection-heavy table logic.
type Plain struct {
	cfg *Config
}

func NewPlain(config *Config) (Plain, error) {
	return Plain{config}, nil
}

func (f *Plain) Print(value interface{}) {
	f.write(f.cfg.OutWriter, value)
}

func (f *Plain) Error(value interface{}) {
	f.write(f.cfg.ErrWriter, value)
}

func (f *Plain) Notice(value interface{}) {
	f.write(f.cfg.ErrWriter, value)
}

func (f *Plain) Config() *Config {
	return f.cfg
}

func (f *Plain) Type() Format {
	return PlainFormatName
}

func (f *Plain) write(writer io.Writer, value interface{}) {
	v, err := sprint(value)
	if err != nil {
		logging.Error("Could not sprint value: %v, error: %v", value, err)
		fmt.Fprintf(f.cfg.ErrWriter, "%v\n", value)
		return
	}
	fmt.Fprintln(writer, v)
}

func sprint(value interface{}) (string, error) {
	if value == nil {
		return "", nil
	}

	switch vt := value.(type) {
	case string:
		return vt, nil
	case error:
		return vt.Error(), nil
	case fmt.Stringer:
		return vt.String(), nil
	}

	valueRfl := reflect.ValueOf(value)
	switch valueRfl.Kind() {
	case reflect.Ptr:
		if valueRfl.IsNil() {
			return "", nil
		}
		return sprint(valueRfl.Elem().Interface())
	case reflect.Struct, reflect.Slice, reflect.Map:
		b, err := yaml.Marshal(value)
		if err != nil {
			return "", err
		}
		return string(b), nil
	default:
		return fmt.Sprintf("%v", value), nil
	}
}
