package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// Credentials holds the Jenkins user and API token read from the
// credentials file.
type Credentials struct {
	User  string
	Token string
}

// ErrInvalidJSON reports a credentials file whose contents are not
// syntactically valid JSON.
var ErrInvalidJSON = errors.New("credentials file doesn't contain valid JSON")

// MissingFieldError reports a credentials file that parsed as JSON but does
// not carry the named key with a string value.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("credentials file is missing valid '%s' key", e.Field)
}

// FileReadError reports a credentials file that could not be read in full.
type FileReadError struct {
	Path string
	Err  error
}

func (e *FileReadError) Error() string {
	return fmt.Sprintf("couldn't open credentials file %s: %v", e.Path, e.Err)
}

func (e *FileReadError) Unwrap() error { return e.Err }

// LoadCredentials reads the JSON credentials file at path and extracts the
// required user and token fields. The returned strings are independent of
// the parse buffer.
func LoadCredentials(path string) (Credentials, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Credentials{}, &FileReadError{Path: path, Err: err}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Credentials{}, &FileReadError{Path: path, Err: err}
	}

	// A size mismatch against the stat result signals a short read.
	if int64(len(data)) != info.Size() {
		return Credentials{}, &FileReadError{
			Path: path,
			Err:  fmt.Errorf("read %d bytes, expected %d", len(data), info.Size()),
		}
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return Credentials{}, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}

	obj, ok := doc.(map[string]any)
	if !ok {
		return Credentials{}, &MissingFieldError{Field: "user"}
	}

	user, ok := obj["user"].(string)
	if !ok {
		return Credentials{}, &MissingFieldError{Field: "user"}
	}

	token, ok := obj["token"].(string)
	if !ok {
		return Credentials{}, &MissingFieldError{Field: "token"}
	}

	return Credentials{User: user, Token: token}, nil
}
