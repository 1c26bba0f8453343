package securityValidator

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeEmailRequestWireNames(t *testing.T) {
	body := []byte(`{"email_content":"Klik hier om uw account te verifieren","sender":"info@fake-bank.com","subject":"Actie vereist"}`)

	var req AnalyzeEmailRequest
	require.NoError(t, json.Unmarshal(body, &req))
	assert.Equal(t, "Klik hier om uw account te verifieren", req.Content)
	assert.Equal(t, "info@fake-bank.com", req.Sender)
	assert.NoError(t, validate.Struct(&req))
}

func TestAnalyzeEmailRequestRequiresContent(t *testing.T) {
	var req AnalyzeEmailRequest
	require.NoError(t, json.Unmarshal([]byte(`{"sender":"info@fake-bank.com"}`), &req))
	assert.Error(t, validate.Struct(&req))
}

func TestAnalyzeNetworkRequestWireNames(t *testing.T) {
	body := []byte(`{"source_ip":"192.168.1.100","destination_ip":"10.0.0.5","protocol":"HTTP","payload_sample":"GET /"}`)

	var req AnalyzeNetworkRequest
	require.NoError(t, json.Unmarshal(body, &req))
	assert.Equal(t, "HTTP", req.Protocol)
	assert.Equal(t, "GET /", req.Payload)
	assert.NoError(t, validate.Struct(&req))
}
