// Package engine defines the CI build-trigger abstraction and the
// sequential driver that walks a project list.
package engine

import (
	"context"

	"jenkinsbuilder/internal/logger"
)

// BuildTrigger is an interface for CI engines that can start a build of a
// single project.
type BuildTrigger interface {
	// TriggerBuild triggers a build for the given project
	TriggerBuild(ctx context.Context, project string) error
}

// TriggerAll triggers a build for each project in order. It stops at the
// first project whose trigger fails and returns that failure; remaining
// projects are not attempted.
func TriggerAll(ctx context.Context, trigger BuildTrigger, projects []string) error {
	for _, project := range projects {
		if err := trigger.TriggerBuild(ctx, project); err != nil {
			return err
		}
		logger.Info("Triggered build", "project", project)
	}
	return nil
}
