package msgs

import (
	"fmt"

	"github.com/golang/protobuf/proto"

	fx "github.com/robomotive/diffbase.go/pkg/framework"
)

// SerializableMessage is a loop message with a wire form.
type SerializableMessage interface {
	fx.Message
	TypeID() uint32
	Serializable() proto.Message
}

// MessageTypes maps type IDs to message prototypes. Domain packages
// add their messages through Register in init.
var MessageTypes = map[uint32]SerializableMessage{}

// Register adds message prototypes to the registry. A duplicate
// type ID is a programming error and panics.
func Register(protos ...SerializableMessage) {
	for _, p := range protos {
		id := p.TypeID()
		if _, dup := MessageTypes[id]; dup {
			panic(fmt.Sprintf("duplicate message type id %x", id))
		}
		MessageTypes[id] = p
	}
}

// TypedFrom wraps a serializable message in an envelope.
func TypedFrom(msg fx.Message) (*Typed, error) {
	s, ok := msg.(SerializableMessage)
	if !ok {
		return nil, ErrNotSerializable
	}
	data, err := proto.Marshal(s.Serializable())
	if err != nil {
		return nil, err
	}
	return &Typed{TypeId: s.TypeID(), Message: data}, nil
}

// Decode unwraps the envelope into a registered message.
func (p Typed) Decode() (fx.Message, error) {
	prototype, ok := MessageTypes[p.TypeId]
	if !ok {
		return nil, &ErrUnknownType{TypeID: p.TypeId}
	}
	msg := prototype.NewMessage()
	if err := proto.Unmarshal(p.Message, msg.(SerializableMessage).Serializable()); err != nil {
		return nil, err
	}
	return msg, nil
}
