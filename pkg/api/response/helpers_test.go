package response

import (
	gErrors "errors"
	"testing"

	"github.com/Optum/guardduty-enabler/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestCreateAPIGatewayJSONResponse(t *testing.T) {
	resp := CreateAPIGatewayJSONResponse(200, map[string]int{"enrolled": 3})

	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Headers["Content-Type"])
	assert.JSONEq(t, `{"enrolled": 3}`, resp.Body)
}

func TestCreateAPIGatewayErrorResponse(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		expCode int
		expBody string
	}{
		{
			name:    "should keep the status of a status error",
			err:     errors.NewNotFound("account", "123456789012"),
			expCode: 404,
			expBody: `{"error":{"message":"account \"123456789012\" not found","code":"NotFoundError"}}`,
		},
		{
			name:    "should hide unknown errors",
			err:     gErrors.New("boom"),
			expCode: 500,
			expBody: `{"error":{"message":"unknown error","code":"ServerError"}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := CreateAPIGatewayErrorResponse(tt.err)
			assert.Equal(t, tt.expCode, resp.StatusCode)
			assert.JSONEq(t, tt.expBody, resp.Body)
		})
	}
}

func TestServerError(t *testing.T) {
	resp := ServerError()

	assert.Equal(t, 500, resp.StatusCode)
	assert.JSONEq(t, `{"error":{"message":"Internal server error","code":"ServerError"}}`, resp.Body)
}
