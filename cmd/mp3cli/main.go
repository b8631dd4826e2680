package main

import (
	"github.com/robotalks/mp3.go/pkg/cli/sh"
	env "github.com/robotalks/mp3.go/pkg/l1/env/connector"

	_ "github.com/robotalks/mp3.go/pkg/cli/cmds/all"
)

//go-build: CGO_ENABLED=0

func init() {
	env.SetupFlags()
}

func main() {
	sh.Main()
}
