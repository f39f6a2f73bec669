// Command chainconfig loads the build configuration from the environment and
// prints it in the host tool's shape with secrets redacted.
//
// Usage:
//
//	chainconfig [--network NAME] [--secrets-file PATH] [--log-level LEVEL] [--log-format text|json]
//
// Invalid flags exit with status 2, any other failure with status 1.
package main

import (
	"fmt"
	"os"

	"github.com/dmitrymomot/chainconfig/cmd/chainconfig/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "chainconfig: %v\n", err)
		os.Exit(cmd.ExitCode(err))
	}
}
