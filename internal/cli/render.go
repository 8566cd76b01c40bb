package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/ircor/corr"
)

// Row is one rendered coefficient. Value is nil when the coefficient was
// rejected or its value is undefined (NaN), since JSON has no NaN. Error
// holds the typed corr error without the operation prefix, so every
// coefficient rejecting the same input reports the same text.
type Row struct {
	Coefficient string   `json:"coefficient"     yaml:"coefficient"`
	Value       *float64 `json:"value"           yaml:"value"`
	Error       string   `json:"error,omitempty" yaml:"error,omitempty"`
}

// Report is the document written by the compute command.
type Report struct {
	N          int   `json:"n"          yaml:"n"`
	Decreasing bool  `json:"decreasing" yaml:"decreasing"`
	Results    []Row `json:"results"    yaml:"results"`
}

// NewRow converts a corr.Result.
func NewRow(r corr.Result) Row {
	row := Row{Coefficient: r.Coefficient.String()}
	switch {
	case r.Err != nil:
		row.Error = errorText(r.Err)
	case !math.IsNaN(r.Value):
		v := r.Value
		row.Value = &v
	}

	return row
}

func errorText(err error) string {
	var tpe *corr.TiesPresentError
	if errors.As(err, &tpe) {
		return tpe.Error()
	}
	var iie *corr.InvalidInputError
	if errors.As(err, &iie) {
		return iie.Error()
	}

	return err.Error()
}

// Render writes rep to w in format (text, json or yaml).
func Render(w io.Writer, format string, rep Report) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(rep)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rep); err != nil {
			return err
		}

		return enc.Close()
	case "text":
		return renderText(w, rep)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

func renderText(w io.Writer, rep Report) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, r := range rep.Results {
		switch {
		case r.Error != "":
			fmt.Fprintf(tw, "%s\terror: %s\n", r.Coefficient, r.Error)
		case r.Value == nil:
			fmt.Fprintf(tw, "%s\tNaN\n", r.Coefficient)
		default:
			fmt.Fprintf(tw, "%s\t%.6f\n", r.Coefficient, *r.Value)
		}
	}

	return tw.Flush()
}
