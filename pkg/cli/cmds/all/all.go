// Package all pulls in all command providers for the shell.
package all

import (
	_ "github.com/robotalks/mp3.go/pkg/cli/cmds/player"
)
