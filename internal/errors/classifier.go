package errors

import (
	"context"
	"errors"
	"log/slog"
)

type ErrorClass int

const (
	ClassInternal ErrorClass = iota
	ClassConfiguration
	ClassInput
	ClassClassification
	ClassOutput
	ClassExternal
)

// ClassifiedError carries an operator-facing diagnostic for a failure,
// separate from the internal error that is logged.
type ClassifiedError struct {
	Class           ErrorClass
	InternalError   error
	OperatorMessage string
	Remediation     string
	OperationName   string
}

// ErrorClassifier maps internal errors onto operator diagnostics and
// process exit codes.
type ErrorClassifier struct {
	logger *slog.Logger
}

func NewErrorClassifier(logger *slog.Logger) *ErrorClassifier {
	return &ErrorClassifier{logger: logger}
}

func (ec *ErrorClassifier) Classify(err error, operation string) *ClassifiedError {
	classified := &ClassifiedError{
		InternalError: err,
		OperationName: operation,
	}

	switch {
	case errors.Is(err, ErrMissingCredentials):
		classified.Class = ClassConfiguration
		classified.OperatorMessage = "API credentials are not configured"
		classified.Remediation = "Set GROQ_API_KEY in the environment or groq.api_key in the config file"
	case errors.Is(err, ErrInvalidConfig):
		classified.Class = ClassConfiguration
		classified.OperatorMessage = "The configuration is invalid"
		classified.Remediation = "Check the config file against configs/config.yaml"
	case errors.Is(err, ErrInputArtifact):
		classified.Class = ClassInput
		classified.OperatorMessage = "The input log file is missing or unreadable"
		classified.Remediation = "Check the --input path, or run fetchlogs to produce one"
	case errors.Is(err, ErrClassification):
		classified.Class = ClassClassification
		classified.OperatorMessage = "The classification backend rejected a request"
		classified.Remediation = "Check backend quota and connectivity"
	case errors.Is(err, ErrReportWrite):
		classified.Class = ClassOutput
		classified.OperatorMessage = "The report could not be written"
		classified.Remediation = "Check the --output path and permissions"
	case errors.Is(err, ErrExternal):
		classified.Class = ClassExternal
		classified.OperatorMessage = "An external service call failed"
		classified.Remediation = "Check AWS credentials and connectivity"
	default:
		classified.Class = ClassInternal
		classified.OperatorMessage = "An unexpected internal error occurred"
		classified.Remediation = ""
	}

	return classified
}

// LogFatal logs the classified failure with its remediation guidance and
// returns the process exit code for it. Only run-fatal errors reach here;
// per-event classification failures are recovered in the pipeline.
func (ec *ErrorClassifier) LogFatal(ctx context.Context, classified *ClassifiedError) int {
	attrs := []any{
		"operation", classified.OperationName,
		"error_class", int(classified.Class),
		"internal_error", classified.InternalError.Error(),
	}
	if classified.Remediation != "" {
		attrs = append(attrs, "remediation", classified.Remediation)
	}
	ec.logger.ErrorContext(ctx, classified.OperatorMessage, attrs...)

	switch classified.Class {
	case ClassConfiguration:
		return 2
	case ClassInput:
		return 3
	default:
		return 1
	}
}
