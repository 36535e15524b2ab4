package logs

// Span tags every log record written within one unit of work, e.g. checking
// one annotation file.
type Span string

type spanKeyType struct{}

// SpanKey is the context key carrying the current Span.
var SpanKey spanKeyType
