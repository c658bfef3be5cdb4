package msgs

import (
	"github.com/golang/protobuf/proto"

	fx "github.com/robomotive/diffbase.go/pkg/framework"
	"github.com/robomotive/diffbase.go/pkg/l1/msgs"
)

// BaseDrive commands the base with a Cartesian velocity.
type BaseDrive struct {
	Linear  float64 `protobuf:"fixed64,1,opt,name=linear,proto3" json:"linear,omitempty"`
	Angular float64 `protobuf:"fixed64,2,opt,name=angular,proto3" json:"angular,omitempty"`
}

// NewMessage implements Message.
func (m *BaseDrive) NewMessage() fx.Message { return &BaseDrive{} }

// TypeID implements SerializableMessage.
func (m *BaseDrive) TypeID() uint32 { return BaseDriveTypeID }

// Serializable implements SerializableMessage.
func (m *BaseDrive) Serializable() proto.Message { return m }

// ProtoMessage implements proto.Message.
func (m *BaseDrive) ProtoMessage() {}

// Reset implements proto.Message.
func (m *BaseDrive) Reset() { *m = BaseDrive{} }

// String implements proto.Message.
func (m *BaseDrive) String() string { return proto.CompactTextString(m) }

// BaseRawDrive commands the base with a raw speed/radius pair,
// bypassing the Cartesian mapping.
type BaseRawDrive struct {
	Speed  int32 `protobuf:"varint,1,opt,name=speed,proto3" json:"speed,omitempty"`
	Radius int32 `protobuf:"varint,2,opt,name=radius,proto3" json:"radius,omitempty"`
}

// NewMessage implements Message.
func (m *BaseRawDrive) NewMessage() fx.Message { return &BaseRawDrive{} }

// TypeID implements SerializableMessage.
func (m *BaseRawDrive) TypeID() uint32 { return BaseRawDriveTypeID }

// Serializable implements SerializableMessage.
func (m *BaseRawDrive) Serializable() proto.Message { return m }

// ProtoMessage implements proto.Message.
func (m *BaseRawDrive) ProtoMessage() {}

// Reset implements proto.Message.
func (m *BaseRawDrive) Reset() { *m = BaseRawDrive{} }

// String implements proto.Message.
func (m *BaseRawDrive) String() string { return proto.CompactTextString(m) }

// BaseOdomReset clears accumulated odometry.
type BaseOdomReset struct {
}

// NewMessage implements Message.
func (m *BaseOdomReset) NewMessage() fx.Message { return &BaseOdomReset{} }

// TypeID implements SerializableMessage.
func (m *BaseOdomReset) TypeID() uint32 { return BaseOdomResetTypeID }

// Serializable implements SerializableMessage.
func (m *BaseOdomReset) Serializable() proto.Message { return m }

// ProtoMessage implements proto.Message.
func (m *BaseOdomReset) ProtoMessage() {}

// Reset implements proto.Message.
func (m *BaseOdomReset) Reset() { *m = BaseOdomReset{} }

// String implements proto.Message.
func (m *BaseOdomReset) String() string { return proto.CompactTextString(m) }

// BaseJointStateQuery queries wheel joint state.
type BaseJointStateQuery struct {
}

// NewMessage implements Message.
func (m *BaseJointStateQuery) NewMessage() fx.Message { return &BaseJointStateQuery{} }

// TypeID implements SerializableMessage.
func (m *BaseJointStateQuery) TypeID() uint32 { return BaseJointStateQueryTypeID }

// Serializable implements SerializableMessage.
func (m *BaseJointStateQuery) Serializable() proto.Message { return m }

// ProtoMessage implements proto.Message.
func (m *BaseJointStateQuery) ProtoMessage() {}

// Reset implements proto.Message.
func (m *BaseJointStateQuery) Reset() { *m = BaseJointStateQuery{} }

// String implements proto.Message.
func (m *BaseJointStateQuery) String() string { return proto.CompactTextString(m) }

// BaseJointState is the response for BaseJointStateQuery.
// Angles are cumulative wheel rotations in radians, rates in rad/s.
type BaseJointState struct {
	AngleLeft  float64 `protobuf:"fixed64,1,opt,name=angle_left,json=angleLeft,proto3" json:"angle_left,omitempty"`
	RateLeft   float64 `protobuf:"fixed64,2,opt,name=rate_left,json=rateLeft,proto3" json:"rate_left,omitempty"`
	AngleRight float64 `protobuf:"fixed64,3,opt,name=angle_right,json=angleRight,proto3" json:"angle_right,omitempty"`
	RateRight  float64 `protobuf:"fixed64,4,opt,name=rate_right,json=rateRight,proto3" json:"rate_right,omitempty"`
}

// NewMessage implements Message.
func (m *BaseJointState) NewMessage() fx.Message { return &BaseJointState{} }

// TypeID implements SerializableMessage.
func (m *BaseJointState) TypeID() uint32 { return BaseJointStateReplyTypeID }

// Serializable implements SerializableMessage.
func (m *BaseJointState) Serializable() proto.Message { return m }

// ProtoMessage implements proto.Message.
func (m *BaseJointState) ProtoMessage() {}

// Reset implements proto.Message.
func (m *BaseJointState) Reset() { *m = BaseJointState{} }

// String implements proto.Message.
func (m *BaseJointState) String() string { return proto.CompactTextString(m) }

// BaseVelocityQuery queries the current velocity set-point.
type BaseVelocityQuery struct {
}

// NewMessage implements Message.
func (m *BaseVelocityQuery) NewMessage() fx.Message { return &BaseVelocityQuery{} }

// TypeID implements SerializableMessage.
func (m *BaseVelocityQuery) TypeID() uint32 { return BaseVelocityQueryTypeID }

// Serializable implements SerializableMessage.
func (m *BaseVelocityQuery) Serializable() proto.Message { return m }

// ProtoMessage implements proto.Message.
func (m *BaseVelocityQuery) ProtoMessage() {}

// Reset implements proto.Message.
func (m *BaseVelocityQuery) Reset() { *m = BaseVelocityQuery{} }

// String implements proto.Message.
func (m *BaseVelocityQuery) String() string { return proto.CompactTextString(m) }

// BaseVelocity is the response for BaseVelocityQuery.
type BaseVelocity struct {
	Linear  float64 `protobuf:"fixed64,1,opt,name=linear,proto3" json:"linear,omitempty"`
	Angular float64 `protobuf:"fixed64,2,opt,name=angular,proto3" json:"angular,omitempty"`
}

// NewMessage implements Message.
func (m *BaseVelocity) NewMessage() fx.Message { return &BaseVelocity{} }

// TypeID implements SerializableMessage.
func (m *BaseVelocity) TypeID() uint32 { return BaseVelocityReplyTypeID }

// Serializable implements SerializableMessage.
func (m *BaseVelocity) Serializable() proto.Message { return m }

// ProtoMessage implements proto.Message.
func (m *BaseVelocity) ProtoMessage() {}

// Reset implements proto.Message.
func (m *BaseVelocity) Reset() { *m = BaseVelocity{} }

// String implements proto.Message.
func (m *BaseVelocity) String() string { return proto.CompactTextString(m) }

// BaseOdometry is an Event message carrying per-cycle pose increments
// and rates integrated from wheel encoders.
type BaseOdometry struct {
	DX          float64 `protobuf:"fixed64,1,opt,name=dx,proto3" json:"dx,omitempty"`
	DY          float64 `protobuf:"fixed64,2,opt,name=dy,proto3" json:"dy,omitempty"`
	DHeading    float64 `protobuf:"fixed64,3,opt,name=dheading,proto3" json:"dheading,omitempty"`
	RateX       float64 `protobuf:"fixed64,4,opt,name=rate_x,json=rateX,proto3" json:"rate_x,omitempty"`
	RateY       float64 `protobuf:"fixed64,5,opt,name=rate_y,json=rateY,proto3" json:"rate_y,omitempty"`
	RateHeading float64 `protobuf:"fixed64,6,opt,name=rate_heading,json=rateHeading,proto3" json:"rate_heading,omitempty"`
}

// NewMessage implements Message.
func (m *BaseOdometry) NewMessage() fx.Message { return &BaseOdometry{} }

// TypeID implements SerializableMessage.
func (m *BaseOdometry) TypeID() uint32 { return BaseOdometryEventTypeID }

// Serializable implements SerializableMessage.
func (m *BaseOdometry) Serializable() proto.Message { return m }

// ProtoMessage implements proto.Message.
func (m *BaseOdometry) ProtoMessage() {}

// Reset implements proto.Message.
func (m *BaseOdometry) Reset() { *m = BaseOdometry{} }

// String implements proto.Message.
func (m *BaseOdometry) String() string { return proto.CompactTextString(m) }

// TypeIDs
const (
	BaseDriveTypeID           uint32 = msgs.GroupBase | 0x0000
	BaseRawDriveTypeID        uint32 = msgs.GroupBase | 0x0001
	BaseOdomResetTypeID       uint32 = msgs.GroupBase | 0x0002
	BaseJointStateQueryTypeID uint32 = msgs.GroupBase | 0x0003
	BaseJointStateReplyTypeID uint32 = msgs.GroupBase | msgs.TypeIDMaskReply | 0x0003
	BaseVelocityQueryTypeID   uint32 = msgs.GroupBase | 0x0004
	BaseVelocityReplyTypeID   uint32 = msgs.GroupBase | msgs.TypeIDMaskReply | 0x0004
	BaseOdometryEventTypeID   uint32 = msgs.GroupBase | msgs.TypeIDKindEvent | 0x0000
)

func init() {
	msgs.Register(
		(*BaseDrive)(nil),
		(*BaseRawDrive)(nil),
		(*BaseOdomReset)(nil),
		(*BaseJointStateQuery)(nil),
		(*BaseJointState)(nil),
		(*BaseVelocityQuery)(nil),
		(*BaseVelocity)(nil),
		(*BaseOdometry)(nil),
	)
}
