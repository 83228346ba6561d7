// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, code lookup and log marshaling

package errors_test

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/ruleset/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "module_not_found",
			code:    errors.ErrModuleNotFound,
			message: "module resolution failed",
			wantStr: "[MODULE_NOT_FOUND] module resolution failed",
		},
		{
			name:    "loader_missing",
			code:    errors.ErrLoaderMissing,
			message: "constructor must not be nil",
			wantStr: "[LOADER_MISSING] constructor must not be nil",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			if err.Code != tt.code {
				t.Errorf("New() code = %v, want %v", err.Code, tt.code)
			}
			if err.Details == nil {
				t.Error("New() details should be initialized")
			}
			if got := err.Error(); got != tt.wantStr {
				t.Errorf("Error() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	base := stderrors.New("no such file")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrapf(base, errors.ErrSuppressionLoad, "cannot read %s", "suppressions.xml")

		if err.Wrapped != base {
			t.Error("Wrapf() should preserve wrapped error")
		}
		want := "[SUPPRESSION_LOAD] cannot read suppressions.xml: no such file"
		if got := err.Error(); got != want {
			t.Errorf("Error() = %q, want %q", got, want)
		}
		if !stderrors.Is(err, base) {
			t.Error("errors.Is should reach the wrapped error")
		}
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		if err := errors.Wrap(nil, errors.ErrInternal, "internal"); err != nil {
			t.Error("Wrap(nil) should return nil")
		}
	})
}

func TestCodeHelpers(t *testing.T) {
	inner := errors.New(errors.ErrPatternInvalid, "bad pattern").WithDetail("pattern", "(")
	outer := fmt.Errorf("configuring filter: %w", inner)

	if !errors.IsErrorCode(outer, errors.ErrPatternInvalid) {
		t.Error("IsErrorCode should find the code through fmt wrapping")
	}
	if errors.IsErrorCode(outer, errors.ErrNotFound) {
		t.Error("IsErrorCode should not match a different code")
	}
	if got := errors.GetErrorCode(stderrors.New("plain")); got != errors.ErrUnknown {
		t.Errorf("GetErrorCode(plain) = %v, want %v", got, errors.ErrUnknown)
	}
	if got := errors.GetErrorDetails(outer)["pattern"]; got != "(" {
		t.Errorf("GetErrorDetails()[pattern] = %v, want (", got)
	}
	if !stderrors.Is(outer, errors.New(errors.ErrPatternInvalid, "other message")) {
		t.Error("errors.Is should compare by code")
	}
}

func TestMarshalZerologObject(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	err := errors.Wrap(stderrors.New("boom"), errors.ErrModuleNotFound, "module resolution failed").
		WithDetail("requested", "Bogus")
	logger.Info().Object("error", err).Msg("")

	out := buf.String()
	for _, want := range []string{`"code":"MODULE_NOT_FOUND"`, `"requested":"Bogus"`, `"cause":"boom"`} {
		if !bytes.Contains([]byte(out), []byte(want)) {
			t.Errorf("log output %s does not contain %s", out, want)
		}
	}
}
