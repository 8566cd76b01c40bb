package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

// ErrNoInput is returned when neither --x/--y nor --input provide data.
var ErrNoInput = errors.New("no input: use --x and --y, or --input")

// ErrMixedInput is returned when --input is combined with --x or --y.
var ErrMixedInput = errors.New("--input cannot be combined with --x or --y")

// Input is the on-disk form of a comparison:
//
//	x: [0.9, 0.4, 0.7]
//	y: [0.8, 0.4, 0.6]
//	coefficients: [tau_b, tauap_b]   # optional
type Input struct {
	X            []float64 `yaml:"x"`
	Y            []float64 `yaml:"y"`
	Coefficients []string  `yaml:"coefficients,omitempty"`
}

// ParseValues splits a comma- or whitespace-separated list into numbers.
// Empty fields are skipped. Range and finiteness checks are left to the
// coefficient validators.
func ParseValues(s string) ([]float64, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
	out := make([]float64, 0, len(fields))
	for i, f := range fields {
		v, err := cast.ToFloat64E(f)
		if err != nil {
			return nil, fmt.Errorf("value %d (%q): %w", i, f, err)
		}
		out = append(out, v)
	}

	return out, nil
}

// ReadInput decodes one YAML document from r. Unknown keys are rejected.
func ReadInput(r io.Reader) (*Input, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var in Input
	if err := dec.Decode(&in); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoInput
		}

		return nil, fmt.Errorf("decode input: %w", err)
	}

	return &in, nil
}

// LoadInput reads an Input from path; "-" reads from stdin.
func LoadInput(path string, stdin io.Reader) (*Input, error) {
	if path == "-" {
		return ReadInput(stdin)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	return ReadInput(f)
}
