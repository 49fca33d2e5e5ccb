package arn

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/Optum/guardduty-enabler/pkg/errors"
	"github.com/aws/aws-sdk-go/aws/arn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFromString(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		expArn *ARN
		expErr error
	}{
		{
			name:  "when valid arn provided. An appropriate ARN object is returned.",
			input: "arn:aws:iam::123456789012:role/test",
			expArn: &ARN{
				arn.ARN{
					Partition: "aws",
					Service:   "iam",
					AccountID: "123456789012",
					Resource:  "role/test",
				},
			},
			expErr: nil,
		},
		{
			name:   "when an invalid arn provided. An error is returned.",
			input:  "arn:aws:iam::role/test",
			expArn: nil,
			expErr: errors.NewValidation("arn", fmt.Errorf("arn: not enough sections")),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {

			newArn, err := NewFromArn(tt.input)
			if tt.expErr == nil {
				assert.Nil(t, err)
			} else {
				assert.True(t, errors.Is(err, tt.expErr), "actual error %q doesn't match expected error %q", err, tt.expErr)
			}
			assert.Equal(t, tt.expArn, newArn)
		})
	}
}

func TestNewRole(t *testing.T) {
	role := NewRole("123456789012", "OrganizationAccountAccessRole")

	assert.Equal(t, "arn:aws:iam::123456789012:role/OrganizationAccountAccessRole", role.String())
	assert.Equal(t, "OrganizationAccountAccessRole", *role.IAMResourceName())
}

func TestIAMResourceName(t *testing.T) {
	t.Run("nested path returns last element", func(t *testing.T) {
		role := New("aws", "iam", "", "123456789012", "role/path/to/Audit")
		assert.Equal(t, "Audit", *role.IAMResourceName())
	})

	t.Run("non iam arn returns nil", func(t *testing.T) {
		topic := New("aws", "sns", "us-east-1", "123456789012", "enable-guardduty")
		assert.Nil(t, topic.IAMResourceName())
	})
}

func TestJSON(t *testing.T) {
	type holder struct {
		Role *ARN `json:"role"`
	}

	var h holder
	err := json.Unmarshal([]byte(`{"role": "arn:aws:iam::123456789012:role/Audit"}`), &h)
	require.Nil(t, err)
	assert.Equal(t, "123456789012", h.Role.AccountID)

	out, err := json.Marshal(h)
	require.Nil(t, err)
	assert.JSONEq(t, `{"role": "arn:aws:iam::123456789012:role/Audit"}`, string(out))

	err = json.Unmarshal([]byte(`{"role": "not-an-arn"}`), &h)
	assert.NotNil(t, err)
}
