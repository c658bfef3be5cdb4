package sh

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"reflect"
	"time"

	"github.com/abiosoft/ishell"

	fx "github.com/robomotive/diffbase.go/pkg/framework"
	"github.com/robomotive/diffbase.go/pkg/l1"
	env "github.com/robomotive/diffbase.go/pkg/l1/env/connector"
	"github.com/robomotive/diffbase.go/pkg/l1/msgs"
)

// Shell is an interactive session talking to one controller at a
// time through a registry.
type Shell struct {
	Interactive bool
	OutputJSON  bool
	AutoConnect bool

	Shell  *ishell.Shell
	Config *env.Config

	sess *session
}

// session is one live controller connection and the loop pumping it.
type session struct {
	ref    l1.ControllerRef
	cancel context.CancelFunc
	loop   *fx.Loop
	conn   l1.ControllerConn
}

const (
	shellKey          = "$shell"
	unconnectedPrompt = "[none] > "
	commandTimeout    = time.Second
)

var (
	evalOnly   bool
	outputJSON bool
)

func init() {
	flag.BoolVar(&evalOnly, "e", evalOnly, "Evaluation only, no interactive shell.")
	flag.BoolVar(&outputJSON, "json", outputJSON, "Print output in JSON.")
}

// New creates a shell with all registered commands installed.
func New(conf *env.Config) *Shell {
	s := &Shell{
		Interactive: !evalOnly,
		OutputJSON:  outputJSON,

		Shell:  ishell.New(),
		Config: conf,
	}
	s.Shell.Set(shellKey, s)
	s.Shell.SetPrompt(unconnectedPrompt)
	for _, cmd := range commands {
		s.Shell.AddCmd(cmd)
	}
	return s
}

// ShellFrom recovers the Shell from an ishell context.
func ShellFrom(c *ishell.Context) *Shell {
	return c.Get(shellKey).(*Shell)
}

// MustBeConnected guards a command func behind an open connection.
func MustBeConnected(fn func(c *ishell.Context)) func(c *ishell.Context) {
	return func(c *ishell.Context) {
		if ShellFrom(c).sess == nil {
			c.Err(fmt.Errorf("not connected"))
			return
		}
		fn(c)
	}
}

// DoCommand sends a command to the connected controller, waits for
// the reply and prints it.
func DoCommand(c *ishell.Context, msg fx.Message) error {
	s := ShellFrom(c)
	if s.sess == nil {
		err := fmt.Errorf("not connected")
		c.Err(err)
		return err
	}
	future := s.sess.conn.DoCommand(msg)
	select {
	case res := <-future.ResultChan():
		if res.Err != nil {
			c.Err(res.Err)
			return res.Err
		}
		return s.printResult(c, res.Msg)
	case <-time.After(commandTimeout):
		c.Err(fmt.Errorf("command timeout"))
		return context.DeadlineExceeded
	}
}

func (s *Shell) printResult(c *ishell.Context, msg fx.Message) error {
	if s.OutputJSON {
		out, err := json.Marshal(msg.(msgs.SerializableMessage).Serializable())
		if err != nil {
			c.Err(err)
			return err
		}
		c.Println(string(out))
		return nil
	}
	if _, ok := msg.(*msgs.CommandOK); ok {
		c.Println("OK")
		return nil
	}
	c.Printf("%s %s\n",
		reflect.Indirect(reflect.ValueOf(msg)).Type().Name(),
		msg.(msgs.SerializableMessage).Serializable().String())
	return nil
}

// WithAutoConnect makes Run connect to the configured controller
// before handling commands.
func (s *Shell) WithAutoConnect(en bool) *Shell {
	s.AutoConnect = en
	return s
}

// DiscoverControllers lists registered controllers, optionally
// filtered.
func (s *Shell) DiscoverControllers(filter func(l1.ControllerInfo) bool) ([]l1.ControllerInfo, error) {
	connector, err := s.Config.NewConnector()
	if err != nil {
		return nil, err
	}
	infoList, err := connector.Discover(context.TODO())
	if err != nil {
		return nil, err
	}
	if filter == nil {
		return infoList, nil
	}
	items := infoList[:0]
	for _, info := range infoList {
		if filter(info) {
			items = append(items, info)
		}
	}
	return items, nil
}

// SelectController discovers controllers and, when several match,
// lets the user pick one.
func (s *Shell) SelectController(filter func(l1.ControllerInfo) bool) (*l1.ControllerInfo, error) {
	infoList, err := s.DiscoverControllers(filter)
	switch {
	case err != nil:
		return nil, err
	case len(infoList) == 0:
		return nil, nil
	case len(infoList) == 1:
		return &infoList[0], nil
	case !s.Interactive:
		return nil, fmt.Errorf("more than 1 controllers discovered in non-interactive mode")
	}
	items := make([]string, len(infoList))
	for n, info := range infoList {
		items[n] = formatInfo(info)
	}
	index := s.Shell.MultiChoice(items, "Which one to connect?")
	return &infoList[index], nil
}

// Connect opens a connection to ref, replacing any current one.
func (s *Shell) Connect(ref l1.ControllerRef) error {
	connector, err := s.Config.NewConnector()
	if err != nil {
		return err
	}
	ctx, cancel := context.WithCancel(context.Background())
	conn, err := connector.Connect(ctx, ref)
	if err != nil {
		cancel()
		return err
	}
	sess := &session{ref: ref, cancel: cancel, conn: conn, loop: fx.NewLoop()}
	if adder, ok := conn.(fx.LoopAdder); ok {
		sess.loop.Add(adder)
	}
	s.Disconnect()
	s.sess = sess
	go sess.loop.Run(ctx)
	s.Shell.SetPrompt(fmt.Sprintf("%s > ", ref.Name()))
	return nil
}

// Disconnect drops the current connection, if any.
func (s *Shell) Disconnect() {
	if s.sess == nil {
		return
	}
	s.sess.cancel()
	s.sess = nil
	s.Shell.SetPrompt(unconnectedPrompt)
}

// Run executes args as one command, or enters the interactive
// prompt when no args are given.
func (s *Shell) Run(args ...string) {
	if s.AutoConnect && s.Config.Ref.IsValid() {
		if s.Interactive {
			s.Shell.Printf("Connecting %s ...\n", s.Config.Ref.Name())
		}
		if err := s.Connect(s.Config.Ref); err != nil {
			log.Fatalf("connect %q failed: %v", s.Config.Ref.Name(), err)
		}
	}

	if len(args) > 0 {
		if err := s.Shell.Process(args...); err != nil {
			log.Fatalln(err)
		}
		return
	}
	if !s.Interactive {
		log.Fatalln("command expected")
	}
	s.Shell.Run()
}

// Main is the single-call entry point for shell binaries.
func Main() {
	flag.Parse()
	New(env.NewConfig()).WithAutoConnect(true).Run(flag.Args()...)
}

func formatInfo(info l1.ControllerInfo) string {
	if info.Meta.Description == "" {
		return info.Ref.Name()
	}
	return info.Ref.Name() + ": " + info.Meta.Description
}
