package main

import (
	"fmt"

	"github.com/limegreen-studio/studio"
	"github.com/limegreen-studio/studio/build"
)

// Run executes the build command.
func (c *BuildCmd) Run(deps *Dependencies) error {
	if c.Concurrency > 0 {
		deps.Builder.Concurrency = c.Concurrency
	}

	progress := func(event build.ProgressEvent) {
		switch event.Type {
		case build.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "Building %d files into %s\n", event.Total, c.Out)
		case build.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  fail %s: %v\n", event.Path, event.Error)
		}
	}

	result, err := deps.Builder.Build(deps.Ctx, progress)
	if result != nil {
		fmt.Fprintf(deps.Stdout, "  %d written, %d unchanged, %d failed (%s)\n",
			result.Written, result.Unchanged, result.Failed, build.FormatBytes(result.Bytes))
	}
	if err != nil {
		if result == nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", studio.ErrorMessage(err))
		}
		return err
	}

	fmt.Fprintf(deps.Stdout, "Build %s complete\n", result.ID)
	return nil
}
