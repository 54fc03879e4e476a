package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitProjects(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  []string
	}{
		{name: "three projects", value: "a:b:c", want: []string{"a", "b", "c"}},
		{name: "single project", value: "frontend", want: []string{"frontend"}},
		{name: "empty segment kept", value: "a::b", want: []string{"a", "", "b"}},
		{name: "trailing delimiter", value: "a:", want: []string{"a", ""}},
		{name: "no trimming", value: " a : b", want: []string{" a ", " b"}},
		{name: "empty value", value: "", want: []string{""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitProjects(tt.value))
		})
	}
}
