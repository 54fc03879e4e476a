package config

import (
	"errors"
	"strings"
)

// ErrProjectsNotSet reports that the PROJECTS environment variable is
// absent. The lookup itself happens in the CLI layer so this package stays
// free of process environment access.
var ErrProjectsNotSet = errors.New("PROJECTS is not set in the environment")

// SplitProjects splits a PROJECTS-style value into an ordered list of
// project names. Empty segments between consecutive delimiters are kept;
// no trimming or name validation is performed.
func SplitProjects(value string) []string {
	return strings.Split(value, ":")
}
