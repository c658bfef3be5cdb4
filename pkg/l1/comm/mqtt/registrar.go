package mqtt

import (
	"context"
	"encoding/json"

	fx "github.com/robomotive/diffbase.go/pkg/framework"
	"github.com/robomotive/diffbase.go/pkg/l1"
	"github.com/robomotive/diffbase.go/pkg/l1/comm"
)

// Registrar registers an L1 controller over MQTT. Presence is a
// retained "meta" topic: metadata while the controller is up,
// cleared on shutdown and, via the broker will, on abnormal death.
type Registrar struct {
	Queue *Queue
	Info  l1.ControllerInfo

	metaJSON  []byte
	registrar comm.Registrar
}

// NewRegistrar creates a Registrar for the given controller.
func NewRegistrar(brokerURL string, info l1.ControllerInfo) (*Registrar, error) {
	meta, err := json.Marshal(&info.Meta)
	if err != nil {
		panic(err)
	}
	opts, topicPrefix, err := ParseURL(brokerURL)
	if err != nil {
		return nil, err
	}
	opts.SetBinaryWill(topicPrefix+metaTopic(info.Ref), nil, 1, true)
	if opts.ClientID == "" {
		opts.SetClientID("diffbase:" + info.Ref.Name())
	}
	r := &Registrar{
		Queue:    NewQueue(opts, topicPrefix),
		Info:     info,
		metaJSON: meta,
	}
	r.Queue.OnConnect = r.announce
	r.registrar.Init(ControllerSide(r.Queue, info.Ref))
	return r, nil
}

// SendEvent implements Registrar.
func (r *Registrar) SendEvent(ctx context.Context, msg fx.Message) error {
	return r.registrar.SendEvent(ctx, msg)
}

// AddToLoop implements LoopAdder.
func (r *Registrar) AddToLoop(loop *fx.Loop) {
	loop.Add(&r.registrar)
	loop.AddRunnable(r)
}

// Run implements Runnable.
func (r *Registrar) Run(ctx context.Context) error {
	r.Queue.Connect()
	<-ctx.Done()
	r.withdraw()
	r.Queue.Close()
	return nil
}

func (r *Registrar) announce() {
	r.Queue.Retain(metaTopic(r.Info.Ref), r.metaJSON)
}

func (r *Registrar) withdraw() {
	r.Queue.Retain(metaTopic(r.Info.Ref), nil)
}

func metaTopic(ref l1.ControllerRef) string {
	return ref.Name() + "/meta"
}
