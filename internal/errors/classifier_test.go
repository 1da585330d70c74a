package errors_test

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "github.com/cloudsecure-ai/cloudsecure/internal/errors"
)

func newClassifier() *apperrors.ErrorClassifier {
	return apperrors.NewErrorClassifier(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestClassify_KnownErrors(t *testing.T) {
	ec := newClassifier()

	cases := []struct {
		err   error
		class apperrors.ErrorClass
	}{
		{apperrors.ErrMissingCredentials, apperrors.ClassConfiguration},
		{apperrors.ErrInvalidConfig, apperrors.ClassConfiguration},
		{apperrors.ErrInputArtifact, apperrors.ClassInput},
		{apperrors.ErrClassification, apperrors.ClassClassification},
		{apperrors.ErrReportWrite, apperrors.ClassOutput},
		{apperrors.ErrExternal, apperrors.ClassExternal},
		{stderrors.New("anything else"), apperrors.ClassInternal},
	}

	for _, tc := range cases {
		classified := ec.Classify(fmt.Errorf("wrapped: %w", tc.err), "op")
		assert.Equal(t, tc.class, classified.Class, tc.err.Error())
		assert.NotEmpty(t, classified.OperatorMessage)
	}
}

func TestClassify_RemediationGuidance(t *testing.T) {
	ec := newClassifier()

	classified := ec.Classify(apperrors.ErrMissingCredentials, "check_credentials")
	assert.Contains(t, classified.Remediation, "GROQ_API_KEY")
}

func TestLogFatal_ExitCodes(t *testing.T) {
	ec := newClassifier()
	ctx := context.Background()

	assert.Equal(t, 2, ec.LogFatal(ctx, ec.Classify(apperrors.ErrMissingCredentials, "op")))
	assert.Equal(t, 3, ec.LogFatal(ctx, ec.Classify(apperrors.ErrInputArtifact, "op")))
	assert.Equal(t, 1, ec.LogFatal(ctx, ec.Classify(stderrors.New("boom"), "op")))
}
