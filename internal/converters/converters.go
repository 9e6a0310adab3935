package converters

import (
	"context"
	"fmt"
	"reflect"
	"regexp"
)

// FileConverter is the contract every file converter implementation must
// satisfy. InputType and OutputType are file extensions without the leading
// dot (e.g. "zarr", "netcdf4") and must be non-empty.
type FileConverter interface {
	// InputType returns the file type the converter accepts.
	InputType() string

	// OutputType returns the file type the converter produces.
	OutputType() string

	// Convert converts the file at inputPath and returns the path of the
	// converted file.
	Convert(ctx context.Context, inputPath string) (string, error)
}

// Ref identifies a converter implementation by its defining package path
// and type name, as stored in dataset info files.
type Ref struct {
	Module string `yaml:"module" json:"module"`
	Class  string `yaml:"class" json:"class"`
}

// in config and info files, converters are named ExtensionA_to_ExtensionB_converter
var namingScheme = regexp.MustCompile(`^(\w+)_to_(\w+)_converter$`)

// Name returns the canonical converter name for an input/output type pair.
func Name(inputType, outputType string) string {
	return fmt.Sprintf("%s_to_%s_converter", inputType, outputType)
}

// ParseName splits a canonical converter name into its input and output
// types. It returns an error if the name does not follow the naming scheme.
func ParseName(name string) (inputType, outputType string, err error) {
	m := namingScheme.FindStringSubmatch(name)
	if m == nil {
		return "", "", fmt.Errorf("invalid converter name %q: expected <input>_to_<output>_converter", name)
	}
	return m[1], m[2], nil
}

// Describe returns the canonical name and the serializable reference for a
// converter implementation. The reference is derived from the implementing
// type, so two instances of the same type describe identically.
func Describe(c FileConverter) (string, Ref) {
	t := reflect.TypeOf(c)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return Name(c.InputType(), c.OutputType()), Ref{
		Module: t.PkgPath(),
		Class:  t.Name(),
	}
}
