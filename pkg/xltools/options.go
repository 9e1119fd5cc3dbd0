// Package xltools merges content between two Excel documents by matching
// cell values, either literally or by fuzzy similarity score.
package xltools

import (
	"fmt"
	"runtime"

	"github.com/go-playground/validator/v10"
	"github.com/xuri/excelize/v2"
)

// Options configures a merge run.
type Options struct {
	// DestMatchColumn is the destination column whose content is matched.
	DestMatchColumn string `validate:"required,excel_column"`
	// SourceMatchColumn is the source column whose content is matched against.
	SourceMatchColumn string `validate:"required,excel_column"`
	// DestValueColumn is the destination column that gets populated.
	DestValueColumn string `validate:"required,excel_column"`
	// SourceValueColumn is the source column the data is taken from.
	SourceValueColumn string `validate:"required,excel_column"`

	// Row bounds, 1-based and inclusive. A max row of -1 means the sheet's
	// actual last row.
	DestMinRow   int `validate:"gte=1"`
	DestMaxRow   int `validate:"gte=-1"`
	SourceMinRow int `validate:"gte=1"`
	SourceMaxRow int `validate:"gte=-1"`

	// IgnoreCase folds case and surrounding whitespace when matching
	// (exact mode only; fuzzy scoring normalizes on its own).
	IgnoreCase bool
	// Highlight is the solid fill applied to changed cells in exact mode,
	// as six hex digits. Empty disables highlighting. Fuzzy mode uses its
	// own fixed score colors instead.
	Highlight string `validate:"omitempty,len=6,hexadecimal"`

	// Fuzzy enables similarity scoring for keys with no literal match.
	Fuzzy bool
	// Threshold is the minimum score accepted as a fuzzy match.
	Threshold int `validate:"gte=0,lte=100"`
	// Weighted selects the weighted ratio over the simple ratio.
	Weighted bool
	// Workers bounds concurrent fuzzy scans. Zero means GOMAXPROCS.
	Workers int `validate:"gte=0"`

	// Output is the path the merged document is saved to. Empty saves in
	// place over the destination document.
	Output string
	// Backup controls whether an in-place save first copies the original
	// destination file aside.
	Backup bool

	// SourceProgress and DestProgress, if set, are called per scanned row.
	SourceProgress func(row int)
	DestProgress   func(row int)
}

// DefaultOptions returns the historical defaults of the tool: match column
// B against W, populate G from AE, start at row 2, accept scores of 90 and
// above.
func DefaultOptions() Options {
	return Options{
		DestMatchColumn:   "B",
		SourceMatchColumn: "W",
		DestValueColumn:   "G",
		SourceValueColumn: "AE",
		DestMinRow:        2,
		DestMaxRow:        -1,
		SourceMinRow:      2,
		SourceMaxRow:      -1,
		Threshold:         90,
		Backup:            true,
	}
}

// ShouldHighlight returns whether exact-mode updates get a fill.
func (o Options) ShouldHighlight() bool {
	return o.Highlight != ""
}

// EffectiveWorkers resolves the zero worker count to GOMAXPROCS.
func (o Options) EffectiveWorkers() int {
	if o.Workers > 0 {
		return o.Workers
	}
	return runtime.GOMAXPROCS(0)
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Column letters must resolve through excelize ("A" .. "XFD").
	_ = v.RegisterValidation("excel_column", func(fl validator.FieldLevel) bool {
		_, err := excelize.ColumnNameToNumber(fl.Field().String())
		return err == nil
	})
	return v
}

// Validate checks the options before any file is touched.
func (o Options) Validate() error {
	if err := validate.Struct(o); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidOptions, err)
	}
	return nil
}
