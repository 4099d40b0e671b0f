package main

import (
	"os"

	"github.com/msto63/mathsex/cmd/mathsex/cmd"
	mxerror "github.com/msto63/mathsex/foundation/core/error"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(mxerror.GetCode(err).ExitCode())
	}
}
