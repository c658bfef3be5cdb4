// Package all pulls in every command provider for the shell.
package all

import (
	_ "github.com/robomotive/diffbase.go/pkg/cli/cmds/base"
)
