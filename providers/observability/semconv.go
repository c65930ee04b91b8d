package observability

// Semantic conventions for observability attributes, span names and metric
// names used across medcalc.

// --- Operation Attributes ---

const (
	// AttrOperationName is the requested operation name
	AttrOperationName = "operation.name"

	// AttrOperationArgsCount is the number of arguments supplied by the caller
	AttrOperationArgsCount = "operation.args_count"

	// AttrOperationOutcome is "ok" or "error"
	AttrOperationOutcome = "operation.outcome"

	// AttrOperationErrorKind is the failure kind (UnknownOperation, TypeMismatch, ...)
	AttrOperationErrorKind = "operation.error_kind"

	// AttrOperationParameter is the parameter responsible for a failure
	AttrOperationParameter = "operation.parameter"

	// AttrOperationResult is the numeric result of a successful invocation
	AttrOperationResult = "operation.result"

	// AttrOperationDuration is the invocation duration
	AttrOperationDuration = "operation.duration"

	// AttrRegistrySize is the number of registered operations
	AttrRegistrySize = "registry.size"
)

// --- Outcome Values ---

const (
	OutcomeOK    = "ok"
	OutcomeError = "error"

	// UnknownOperationLabel replaces unregistered names in metric labels so
	// arbitrary caller input cannot grow label cardinality.
	UnknownOperationLabel = "unknown"
)

// --- Transport Attributes ---

const (
	// AttrTransport is the transport a server listens on (stdio, http)
	AttrTransport = "transport"

	// AttrHTTPAddr is the HTTP listen address
	AttrHTTPAddr = "http.addr"

	// AttrHTTPMethod is the HTTP method (GET, POST, etc.)
	AttrHTTPMethod = "http.method"

	// AttrHTTPPath is the request path
	AttrHTTPPath = "http.path"
)

// --- General Attributes ---

const (
	// AttrError is the error message
	AttrError = "error"

	// AttrStatus is the span status
	AttrStatus = "status"

	// AttrStatusDescription is the status description
	AttrStatusDescription = "status_description"
)

// --- Span Names ---

const (
	// SpanInvocation wraps one dispatcher invocation
	SpanInvocation = "operation.invoke"
)

// --- Event Names ---

const (
	// EventArgumentsValidated marks successful argument binding
	EventArgumentsValidated = "operation.arguments.validated"

	// EventComputationEnd marks the end of the formula evaluation
	EventComputationEnd = "operation.computation.end"
)

// --- Metric Names ---

const (
	// MetricInvocations counts invocations by operation and outcome
	MetricInvocations = "medcalc_invocations_total"

	// MetricInvocationDuration records invocation latency in seconds
	MetricInvocationDuration = "medcalc_invocation_duration_seconds"
)
