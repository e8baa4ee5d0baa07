package main

import (
	"context"
	"fmt"
	"os"

	"github.com/GuillemIscla/live-bootcamp-project/internal/bootstrap"
)

func main() {
	if err := bootstrap.Run(context.Background()); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "auth-server failed: %v\n", err)
		os.Exit(1)
	}
}
