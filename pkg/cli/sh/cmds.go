package sh

import (
	"encoding/json"
	"fmt"

	"github.com/abiosoft/ishell"

	"github.com/robomotive/diffbase.go/pkg/l1"
)

// commands is the global command registry. Command packages add
// theirs through AddCmds in init.
var commands = []*ishell.Cmd{
	&DiscoverCmd,
	&ConnectCmd,
	&DisconnectCmd,
}

// AddCmds registers commands with shells created afterwards.
func AddCmds(cmds ...*ishell.Cmd) {
	commands = append(commands, cmds...)
}

// DiscoverCmd lists registered controllers.
var DiscoverCmd = ishell.Cmd{
	Name:    "discover",
	Aliases: []string{"list", "l"},
	Help:    "",
	Func: func(c *ishell.Context) {
		s := ShellFrom(c)
		infoList, err := s.DiscoverControllers(nil)
		if err != nil {
			c.Err(err)
			return
		}
		if s.OutputJSON {
			if infoList == nil {
				infoList = []l1.ControllerInfo{}
			}
			out, err := json.Marshal(infoList)
			if err != nil {
				c.Err(err)
				return
			}
			c.Println(string(out))
			return
		}
		if len(infoList) == 0 {
			c.Println("No controllers found")
			return
		}
		for _, info := range infoList {
			c.Println(formatInfo(info))
		}
	},
}

// ConnectCmd connects a controller, given as "TYPE ID", "TYPE/ID",
// a bare TYPE to pick among controllers of that type, or nothing to
// pick among everything discovered.
var ConnectCmd = ishell.Cmd{
	Name:    "connect",
	Aliases: []string{"c"},
	Help:    "[TYPE ID | TYPE/ID | TYPE]",
	Func: func(c *ishell.Context) {
		s := ShellFrom(c)
		ref, err := resolveRef(s, c.Args)
		if err != nil {
			c.Err(err)
			return
		}
		if err := s.Connect(ref); err != nil {
			c.Err(err)
		}
	},
}

func resolveRef(s *Shell, args []string) (l1.ControllerRef, error) {
	if len(args) >= 2 {
		return l1.ControllerRef{Type: args[0], ID: args[1]}, nil
	}
	var filter func(l1.ControllerInfo) bool
	if len(args) == 1 {
		if ref, err := l1.ParseControllerRef(args[0]); err == nil {
			return ref, nil
		}
		filter = func(info l1.ControllerInfo) bool {
			return info.Ref.Type == args[0]
		}
	}
	info, err := s.SelectController(filter)
	if err != nil {
		return l1.ControllerRef{}, err
	}
	if info == nil {
		return l1.ControllerRef{}, fmt.Errorf("no controller discovered")
	}
	return info.Ref, nil
}

// DisconnectCmd drops the current connection.
var DisconnectCmd = ishell.Cmd{
	Name:    "disconnect",
	Aliases: []string{"d"},
	Help:    "",
	Func: func(c *ishell.Context) {
		ShellFrom(c).Disconnect()
	},
}
