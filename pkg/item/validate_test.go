package item

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeBodyCreate(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{
			name: "valid payload",
			body: `{"name":"T","description":"D"}`,
		},
		{
			name: "empty body is an empty payload",
			body: "",
		},
		{
			name:    "non-string name",
			body:    `{"name":123}`,
			wantErr: msgNameRequired,
		},
		{
			name:    "non-string description",
			body:    `{"name":"T","description":false}`,
			wantErr: msgDescriptionString,
		},
		{
			name:    "malformed json",
			body:    `{"name":`,
			wantErr: msgInvalidBody,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req CreateRequest
			err := decodeBody(strings.NewReader(tt.body), &req)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, IsValidationError(err))
			assert.Equal(t, tt.wantErr, err.Error())
		})
	}
}

func TestValidateCreate(t *testing.T) {
	tests := []struct {
		name    string
		req     CreateRequest
		wantErr bool
	}{
		{name: "name present", req: CreateRequest{Name: strPtr("T")}},
		{name: "name missing", req: CreateRequest{Description: strPtr("no name")}, wantErr: true},
		{name: "name empty", req: CreateRequest{Name: strPtr("")}, wantErr: true},
		{name: "name whitespace", req: CreateRequest{Name: strPtr("   ")}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateCreate(tt.req)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, msgNameRequired, err.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateUpdate(t *testing.T) {
	tests := []struct {
		name    string
		req     UpdateRequest
		wantErr bool
	}{
		{name: "empty payload is a touch", req: UpdateRequest{}},
		{name: "description only", req: UpdateRequest{Description: strPtr("Z")}},
		{name: "name present", req: UpdateRequest{Name: strPtr("Y")}},
		{name: "name empty", req: UpdateRequest{Name: strPtr("")}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateUpdate(tt.req)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
