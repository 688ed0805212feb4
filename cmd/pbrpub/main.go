package main

import (
	"context"
	"fmt"
	"os"

	"github.com/chazuruo/pbrpub/internal/cli"
	pbrerrors "github.com/chazuruo/pbrpub/internal/errors"
)

// Version is set at build time using ldflags
var Version = "dev"

// Commit is set at build time using ldflags
var Commit = "unknown"

// Date is set at build time using ldflags
var Date = "unknown"

func main() {
	rootCmd := cli.NewRootCommand(cli.BuildInfo{
		Version: Version,
		Commit:  Commit,
		Date:    Date,
	})

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(pbrerrors.ExitCode(err))
	}
}
