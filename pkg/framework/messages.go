package framework

// Message is data passed between controllers through the loop.
type Message interface {
	// NewMessage creates an empty message of the same type.
	NewMessage() Message
}

// MessageStore holds the messages of the current iteration.
type MessageStore interface {
	// ProcessMessages walks the stored messages with proc.
	// Messages not explicitly taken stay in the store.
	ProcessMessages(MessageProcessor)

	MessageAppender
}

// MessageAppender adds messages for a later processing pass.
type MessageAppender interface {
	AddMessages(msgs ...Message)
}

// MessageProcessor examines one message at a time.
type MessageProcessor interface {
	ProcessMessage(MessageProcessingContext)
}

// ProcessMessageFunc adapts a plain func into a MessageProcessor.
type ProcessMessageFunc func(MessageProcessingContext)

// ProcessMessage implements MessageProcessor.
func (f ProcessMessageFunc) ProcessMessage(mc MessageProcessingContext) {
	f(mc)
}

// MessageProcessingContext is the processor's view of one message.
type MessageProcessingContext interface {
	// CurrentMessage is the message under examination.
	CurrentMessage() Message
	// MessageTaken consumes the message, removing it from the store.
	MessageTaken()
	// StopProcessing leaves the remaining messages unexamined.
	StopProcessing()

	MessageAppender
}
