package main

import (
	"context"
	"os"

	"github.com/pwnholic/xkcdown/internal"
	"github.com/pwnholic/xkcdown/internal/clients"
)

func init() {
	internal.InitDefaultLogger(internal.INFO)
}

func main() {
	cmd := newRootCmd(clients.NewWebsiteConfig(), ".")
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		internal.ErrorLog("%s", err.Error())
		os.Exit(1)
	}
}
