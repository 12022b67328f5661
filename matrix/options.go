// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for rendering. This file defines:
//   - RenderOption (functional options over internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherRenderOptions helper (internal) that applies options over defaults.
//
// Design goals:
//   - Deterministic behavior: no global state is mutated by options.
//   - No dead switches: each option impacts Render output and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - The defaults reproduce the canonical String() form exactly.
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultRowPrefix precedes the row index in a row label ("R0:").
	DefaultRowPrefix = "R"

	// DefaultLabelSuffix closes a row label.
	DefaultLabelSuffix = ":"

	// DefaultCellSeparator precedes every cell when labels are on and sits
	// between cells when they are off.
	DefaultCellSeparator = " "

	// DefaultRowTerminator ends every rendered row, including the last.
	DefaultRowTerminator = "\n"

	// DefaultRowLabels toggles the "R<i>:" label at the start of each row.
	DefaultRowLabels = true
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicCellSeparatorEmpty = "matrix: WithCellSeparator: separator must be non-empty"
)

// RenderOption mutates internal render options. Safe to apply repeatedly.
// Constructors panic only on nonsensical values (programmer error).
type RenderOption func(*renderOptions)

// renderOptions stores the effective configuration after applying options.
type renderOptions struct {
	rowPrefix     string
	labelSuffix   string
	cellSeparator string
	rowTerminator string
	rowLabels     bool
}

// defaultRenderOptions returns the configuration behind String().
func defaultRenderOptions() renderOptions {
	return renderOptions{
		rowPrefix:     DefaultRowPrefix,
		labelSuffix:   DefaultLabelSuffix,
		cellSeparator: DefaultCellSeparator,
		rowTerminator: DefaultRowTerminator,
		rowLabels:     DefaultRowLabels,
	}
}

// gatherRenderOptions applies opts, in order, over the defaults.
// nil options are skipped.
func gatherRenderOptions(opts ...RenderOption) renderOptions {
	o := defaultRenderOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithRowPrefix replaces the "R" in row labels. An empty prefix renders
// labels as "<i>:".
func WithRowPrefix(prefix string) RenderOption {
	return func(o *renderOptions) { o.rowPrefix = prefix }
}

// WithCellSeparator replaces the single space between cells.
// Panics if sep is empty: cells would run together.
func WithCellSeparator(sep string) RenderOption {
	if sep == "" {
		panic(panicCellSeparatorEmpty)
	}

	return func(o *renderOptions) { o.cellSeparator = sep }
}

// WithRowTerminator replaces the newline ending every row.
func WithRowTerminator(term string) RenderOption {
	return func(o *renderOptions) { o.rowTerminator = term }
}

// WithoutRowLabels drops the "R<i>:" label from each row.
func WithoutRowLabels() RenderOption {
	return func(o *renderOptions) { o.rowLabels = false }
}
