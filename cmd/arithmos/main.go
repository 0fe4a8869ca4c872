package main

import (
	"context"
	"os"

	"github.com/agbru/arithmos/internal/app"
	apperrors "github.com/agbru/arithmos/internal/errors"
)

func main() {
	application, err := app.New(os.Args, os.Stderr)
	if err != nil {
		os.Stderr.WriteString("arithmos: " + err.Error() + "\n")
		os.Exit(apperrors.ExitErrorGeneric)
	}

	exitCode := application.Run(context.Background(), os.Stdout)
	os.Exit(exitCode)
}
