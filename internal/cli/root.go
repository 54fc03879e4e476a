// Package cli implements the jenkins-builder command line interface.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"jenkinsbuilder/internal/config"
	"jenkinsbuilder/internal/engine"
	"jenkinsbuilder/internal/engine/jenkins"
	"jenkinsbuilder/internal/exitcode"
	"jenkinsbuilder/internal/logger"

	"github.com/spf13/cobra"
)

// version is set via ldflags during build.
var version = "0.1.0"

type options struct {
	credentialFile string
	jenkinsHost    string
}

// NewRootCmd builds the jenkins-builder root command.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "jenkins-builder",
		Short: "Trigger Jenkins builds for a list of projects",
		Long: `jenkins-builder triggers a build of every project named in the PROJECTS
environment variable (colon-separated) against a Jenkins host, in order,
stopping at the first project whose trigger fails.`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), opts)
		},
	}

	// -h is taken by --jenkins-host, so register --help without a shorthand
	// before cobra installs its default one.
	cmd.Flags().Bool("help", false, "help for jenkins-builder")
	cmd.Flags().StringVarP(&opts.credentialFile, "credential-file", "c", "",
		"Read user credentials from this JSON file")
	cmd.Flags().StringVarP(&opts.jenkinsHost, "jenkins-host", "h", "",
		"Base URL of Jenkins")
	_ = cmd.MarkFlagRequired("credential-file")
	_ = cmd.MarkFlagRequired("jenkins-host")

	return cmd
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	logger.Init(logger.LevelFromEnv())

	// Cancel in-flight requests on interrupt.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cmd := NewRootCmd()
	if err := cmd.ExecuteContext(ctx); err != nil {
		code := exitcode.From(err)
		if code == exitcode.Usage {
			// Run failures were already logged where they happened; only
			// usage problems still need reporting here.
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			fmt.Fprint(os.Stderr, cmd.UsageString())
		}
		return code
	}
	return exitcode.Success
}

// run loads the environment and credentials, then triggers every project in
// order. Every failure comes back wrapped with the exit code it implies.
func run(ctx context.Context, opts *options) error {
	projectsEnv, ok := os.LookupEnv("PROJECTS")
	if !ok {
		logger.Error("PROJECTS is not set in the environment")
		return exitcode.New(exitcode.InvalidArgument, config.ErrProjectsNotSet)
	}
	projects := config.SplitProjects(projectsEnv)

	creds, err := config.LoadCredentials(opts.credentialFile)
	if err != nil {
		logger.Error("Couldn't load credentials", "file", opts.credentialFile, "error", err)
		return exitcode.New(credentialsExitCode(err), err)
	}

	client := jenkins.NewClient(jenkins.Config{
		URL:      opts.jenkinsHost,
		Username: creds.User,
		Token:    creds.Token,
	})

	if err := engine.TriggerAll(ctx, client, projects); err != nil {
		var status *jenkins.StatusError
		if errors.As(err, &status) {
			return exitcode.New(status.Code, err)
		}
		return exitcode.New(exitcode.TransportFailure, err)
	}
	return nil
}

// credentialsExitCode maps a LoadCredentials failure to its exit code.
func credentialsExitCode(err error) int {
	var missing *config.MissingFieldError
	switch {
	case errors.Is(err, config.ErrInvalidJSON):
		return exitcode.InvalidJSON
	case errors.As(err, &missing):
		if missing.Field == "user" {
			return exitcode.MissingUser
		}
		return exitcode.MissingToken
	default:
		return exitcode.InvalidArgument
	}
}
