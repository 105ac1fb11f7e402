package logx_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"dri_index/pkg/logx"
)

func TestSensitiveDataMaskerMask(t *testing.T) {
	rq := require.New(t)

	masker := logx.NewSensitiveDataMasker()

	testCases := []struct {
		name   string
		input  []byte
		output []byte
	}{
		{
			name:   "Password",
			input:  []byte(`{"hello":"world","password":"abc123"}`),
			output: []byte(`{"hello":"world","password":"[MASKED]"}`),
		},
		{
			name:   "Password capital letter",
			input:  []byte(`{"hello":"world","Password":"abc123"}`),
			output: []byte(`{"hello":"world","Password":"[MASKED]"}`),
		},
		{
			name:   "API key",
			input:  []byte(`{"api_key":"sk-proj-abc123","model":"gpt-4o-mini"}`),
			output: []byte(`{"api_key":"[MASKED]","model":"gpt-4o-mini"}`),
		},
		{
			name:   "Session id and email",
			input:  []byte(`{"context": {"session_id": "sess-42", "email": "john@doe.com"}, "consent": true}`),
			output: []byte(`{"context": {"session_id": "[MASKED]", "email": "[MASKED]"}, "consent": true}`),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			output := masker.Mask(tc.input)

			rq.Equal(tc.output, output, "%s vs %s", tc.output, output)
		})
	}
}
