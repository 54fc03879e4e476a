package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCredentialsFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "credentials.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadCredentials(t *testing.T) {
	path := writeCredentialsFile(t, `{"user": "jenkins", "token": "s3cret"}`)

	creds, err := LoadCredentials(path)
	require.NoError(t, err)
	assert.Equal(t, "jenkins", creds.User)
	assert.Equal(t, "s3cret", creds.Token)
}

func TestLoadCredentialsPreservesValuesExactly(t *testing.T) {
	// Values round-trip byte for byte, extra keys are ignored.
	path := writeCredentialsFile(t,
		`{"user": "svc account/ci", "token": "AQAB==:x", "comment": "unused"}`)

	creds, err := LoadCredentials(path)
	require.NoError(t, err)
	assert.Equal(t, "svc account/ci", creds.User)
	assert.Equal(t, "AQAB==:x", creds.Token)
}

func TestLoadCredentialsInvalidJSON(t *testing.T) {
	path := writeCredentialsFile(t, `{"user": "jenkins", token`)

	_, err := LoadCredentials(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidJSON)
}

func TestLoadCredentialsMissingFields(t *testing.T) {
	tests := []struct {
		name    string
		content string
		field   string
	}{
		{name: "no user key", content: `{"token": "s3cret"}`, field: "user"},
		{name: "user not a string", content: `{"user": 42, "token": "s3cret"}`, field: "user"},
		{name: "user is null", content: `{"user": null, "token": "s3cret"}`, field: "user"},
		{name: "no token key", content: `{"user": "jenkins"}`, field: "token"},
		{name: "token not a string", content: `{"user": "jenkins", "token": ["s3cret"]}`, field: "token"},
		{name: "top-level array", content: `["jenkins", "s3cret"]`, field: "user"},
		{name: "top-level string", content: `"jenkins"`, field: "user"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeCredentialsFile(t, tt.content)

			creds, err := LoadCredentials(path)
			require.Error(t, err)

			var missing *MissingFieldError
			require.ErrorAs(t, err, &missing)
			assert.Equal(t, tt.field, missing.Field)
			assert.Zero(t, creds)
		})
	}
}

func TestLoadCredentialsFileMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no-such-file.json")

	_, err := LoadCredentials(path)
	require.Error(t, err)

	var fileErr *FileReadError
	require.ErrorAs(t, err, &fileErr)
	assert.Equal(t, path, fileErr.Path)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
