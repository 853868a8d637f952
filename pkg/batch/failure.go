package batch

import (
	"errors"
)

type FailureKind string

const (
	FailureUnsupportedFormat       FailureKind = "UnsupportedFormat"
	FailureFileTooLarge            FailureKind = "FileTooLarge"
	FailureOcr                     FailureKind = "OcrFailure"
	FailureProviderAuth            FailureKind = "ProviderAuthError"
	FailureProviderResponseInvalid FailureKind = "ProviderResponseInvalid"
	FailureProviderTimeout         FailureKind = "ProviderTimeout"
)

// Failure is a typed per-file processing error. Every entry in
// processing_info.failed_files carries one of the kinds above.
type Failure struct {
	Kind FailureKind

	File string

	Err error
}

func (f *Failure) Error() string {
	if f.Err == nil {
		return string(f.Kind)
	}

	return string(f.Kind) + ": " + f.Err.Error()
}

func (f *Failure) Unwrap() error {
	return f.Err
}

func newFailure(kind FailureKind, file string, err error) *Failure {
	return &Failure{
		Kind: kind,

		File: file,

		Err: err,
	}
}

// IsAuth reports whether err is a provider authorization failure,
// which aborts the whole batch.
func IsAuth(err error) bool {
	var failure *Failure

	if errors.As(err, &failure) {
		return failure.Kind == FailureProviderAuth
	}

	return false
}
