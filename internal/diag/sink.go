package diag

// Sink receives diagnostics as the lexer and parser produce them. Both stages
// report and continue; they never branch on what the sink does with a
// diagnostic. A sink is supplied per parse; if diagnostics from concurrent
// parses must be aggregated, the caller provides a sink that is safe for that
// pattern.
type Sink interface {
	Report(Diagnostic)
}

// Bag is the standard accumulating sink. It keeps diagnostics in report order
// and is not synchronized; use one Bag per parse.
type Bag struct {
	diags []Diagnostic
}

// NewBag returns an empty diagnostic bag.
func NewBag() *Bag {
	return &Bag{}
}

// Report appends a diagnostic to the bag.
func (b *Bag) Report(d Diagnostic) {
	b.diags = append(b.diags, d)
}

// All returns every collected diagnostic in report order.
func (b *Bag) All() []Diagnostic {
	return b.diags
}

// Errors returns only error-severity diagnostics.
func (b *Bag) Errors() []Diagnostic {
	var errs []Diagnostic
	for _, d := range b.diags {
		if d.Severity == SeverityError {
			errs = append(errs, d)
		}
	}
	return errs
}

// ErrorCount returns the number of error-severity diagnostics.
func (b *Bag) ErrorCount() int {
	n := 0
	for _, d := range b.diags {
		if d.Severity == SeverityError {
			n++
		}
	}
	return n
}

// HasErrors reports whether any error-severity diagnostic was collected.
func (b *Bag) HasErrors() bool {
	return b.ErrorCount() > 0
}

// Len returns the total number of collected diagnostics.
func (b *Bag) Len() int {
	return len(b.diags)
}

// ReportError records a bare error message without location context.
func (b *Bag) ReportError(msg string) {
	b.Report(Diagnostic{Severity: SeverityError, Message: msg})
}

// ReportWarning records a bare warning message without location context.
func (b *Bag) ReportWarning(msg string) {
	b.Report(Diagnostic{Severity: SeverityWarning, Message: msg})
}

// ReportInfo records a bare informational message without location context.
func (b *Bag) ReportInfo(msg string) {
	b.Report(Diagnostic{Severity: SeverityInfo, Message: msg})
}

// Discard is a sink that drops every diagnostic.
var Discard Sink = discardSink{}

type discardSink struct{}

func (discardSink) Report(Diagnostic) {}
