package errors

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errInternalServer = NewInternalServer("error", errors.New("original error"))

func TestNew(t *testing.T) {

	tests := []struct {
		name                string
		err                 *StatusError
		expectedJSON        string
		expectedStatusError StatusError
	}{
		{
			name: "new validation error",
			err:  NewValidation("request", fmt.Errorf("wrapped error")),
			expectedStatusError: StatusError{
				httpCode: http.StatusBadRequest,
				Details: detailError{
					Message: "request validation error: wrapped error",
				},
				cause: fmt.Errorf("wrapped error"),
			},
			expectedJSON: "{\"error\":{\"message\":\"request validation error: wrapped error\",\"code\":\"RequestValidationError\"}}\n",
		},
		{
			name: "new not found error",
			err:  NewNotFound("account", "123456789012"),
			expectedStatusError: StatusError{
				httpCode: http.StatusNotFound,
				Details: detailError{
					Message: "account \"123456789012\" not found",
				},
				cause: nil,
			},
			expectedJSON: "{\"error\":{\"message\":\"account \\\"123456789012\\\" not found\",\"code\":\"NotFoundError\"}}\n",
		},
		{
			name: "new internal server error",
			err:  NewInternalServer("failure message", fmt.Errorf("wrapped error")),
			expectedStatusError: StatusError{
				httpCode: http.StatusInternalServerError,
				Details: detailError{
					Message: "failure message",
				},
				cause: fmt.Errorf("wrapped error"),
			},
			expectedJSON: "{\"error\":{\"message\":\"failure message\",\"code\":\"ServerError\"}}\n",
		},
		{
			name: "new bad requst",
			err:  NewBadRequest("failure message"),
			expectedStatusError: StatusError{
				httpCode: http.StatusBadRequest,
				Details: detailError{
					Message: "failure message",
				},
				cause: nil,
			},
			expectedJSON: "{\"error\":{\"message\":\"failure message\",\"code\":\"ClientError\"}}\n",
		},
		{
			name: "new role not assumable",
			err:  NewRoleNotAssumable("arn:aws:iam::123456789012:role/Audit", fmt.Errorf("access denied")),
			expectedStatusError: StatusError{
				httpCode: http.StatusUnprocessableEntity,
				Details: detailError{
					Message: "role \"arn:aws:iam::123456789012:role/Audit\" is not assumable: access denied",
				},
				cause: fmt.Errorf("access denied"),
			},
			expectedJSON: "{\"error\":{\"message\":\"role \\\"arn:aws:iam::123456789012:role/Audit\\\" is not assumable: access denied\",\"code\":\"RoleNotAssumableError\"}}\n",
		},
		{
			name: "new region unavailable",
			err:  NewRegionUnavailable("ap-east-1", fmt.Errorf("no endpoint")),
			expectedStatusError: StatusError{
				httpCode: http.StatusServiceUnavailable,
				Details: detailError{
					Message: "unable to manage GuardDuty in region ap-east-1: no endpoint",
				},
				cause: fmt.Errorf("no endpoint"),
			},
			expectedJSON: "{\"error\":{\"message\":\"unable to manage GuardDuty in region ap-east-1: no endpoint\",\"code\":\"RegionUnavailableError\"}}\n",
		},
		{
			name: "new unexpected membership",
			err:  NewUnexpectedMembership("123456789012", "Resigned"),
			expectedStatusError: StatusError{
				httpCode: http.StatusConflict,
				Details: detailError{
					Message: "account \"123456789012\" is in unexpected GuardDuty state Resigned",
				},
				cause: nil,
			},
			expectedJSON: "{\"error\":{\"message\":\"account \\\"123456789012\\\" is in unexpected GuardDuty state Resigned\",\"code\":\"UnexpectedMembershipError\"}}\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectedStatusError.Details.Message, tt.err.Error())
			assert.Equal(t, tt.expectedStatusError.httpCode, HTTPCodeForError(tt.err))
			assert.Equal(t, tt.err.OriginalError(), tt.expectedStatusError.cause)

			var b bytes.Buffer
			err := json.NewEncoder(&b).Encode(tt.err)
			require.Nil(t, err)
			assert.Equal(
				t,
				tt.expectedJSON,
				b.String(),
			)
			assert.NotNil(
				t,
				GetStackTraceForError(tt.err),
			)
		})
	}
}

func TestIs(t *testing.T) {

	tests := []struct {
		name        string
		originalErr error
		expErr      error
		result      bool
	}{
		{
			name:        "is matches",
			originalErr: NewValidation("request", fmt.Errorf("wrapped error")),
			expErr:      NewValidation("request", fmt.Errorf("wrapped error")),
			result:      true,
		},
		{
			name:        "is doesn't match",
			originalErr: NewValidation("request", fmt.Errorf("wrapped error")),
			expErr:      NewInternalServer("failure", fmt.Errorf("wrapped error")),
			result:      false,
		},
		{
			name:        "is doesn't match on same error http codes",
			originalErr: NewInternalServer("fail", fmt.Errorf("wrapped error")),
			expErr:      NewInternalServer("failure", fmt.Errorf("wrapped error")),
			result:      false,
		},
		{
			name:        "is comparable",
			originalErr: fmt.Errorf("failure"),
			expErr:      fmt.Errorf("failure"),
			result:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {

			newErr := fmt.Errorf("new error: %w", tt.originalErr)
			assert.Equal(t, Is(newErr, tt.expErr), tt.result)
		})
	}

	t.Run("is returns false on nil", func(t *testing.T) {
		assert.False(t, Is(fmt.Errorf("new error"), nil))
	})

}

func TestFrameFormat(t *testing.T) {
	var tests = []struct {
		err    error
		format string
		want   string
	}{
		{
			errInternalServer,
			"%s",
			"error",
		},
		{
			errInternalServer,
			"%q",
			"\"error\"",
		},
		{
			errInternalServer,
			"%+v",
			"original error\n" +
				"github.com/Optum/guardduty-enabler/pkg/errors.init\n" +
				"\t.+/.*/error_test.go:17\n",
		},
	}

	for i, tt := range tests {
		testFormatRegexp(t, i, tt.err, tt.format, tt.want)
	}
}

func TestErrors_Wrapped(t *testing.T) {
	err1 := NewRoleNotAssumable("arn:aws:iam::123456789012:role/GuardDutyAccept", fmt.Errorf("AccessDenied"))
	err2 := fmt.Errorf("wrapped error1: %w", err1)
	err3 := fmt.Errorf("wrapped error2: %w", err2)

	assert.Equal(t, http.StatusUnprocessableEntity, HTTPCodeForError(err3))
	assert.True(t, Is(err3, err1))
	assert.False(t, Is(err3, nil))
}

func TestErrors_NotStatusErrors(t *testing.T) {
	err := errors.New("failure")

	assert.Equal(t, http.StatusInternalServerError, HTTPCodeForError(err))
	assert.Nil(t, GetStackTraceForError(err))
}

func testFormatRegexp(t *testing.T, n int, arg interface{}, format, want string) {
	t.Helper()
	got := fmt.Sprintf(format, arg)
	gotLines := strings.SplitN(got, "\n", -1)
	wantLines := strings.SplitN(want, "\n", -1)

	if len(wantLines) > len(gotLines) {
		t.Errorf("test %d: wantLines(%d) > gotLines(%d):\n got: %q\nwant: %q", n+1, len(wantLines), len(gotLines), got, want)
		return
	}

	for i, w := range wantLines {
		match, err := regexp.MatchString(w, gotLines[i])
		if err != nil {
			t.Fatal(err)
		}
		if !match {
			t.Errorf("test %d: line %d: fmt.Sprintf(%q, err):\n got: %q\nwant: %q", n+1, i+1, format, got, want)
		}
	}
}
