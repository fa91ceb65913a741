package protocol

// STOMP protocol version implemented by this library
const ProtocolVersion = "1.0"

// Client commands
const (
	CmdConnect     = "CONNECT"
	CmdDisconnect  = "DISCONNECT"
	CmdSend        = "SEND"
	CmdSubscribe   = "SUBSCRIBE"
	CmdUnsubscribe = "UNSUBSCRIBE"
	CmdAck         = "ACK"
	CmdBegin       = "BEGIN"
	CmdCommit      = "COMMIT"
	CmdAbort       = "ABORT"
)

// Server commands
const (
	CmdConnected = "CONNECTED"
	CmdMessage   = "MESSAGE"
	CmdReceipt   = "RECEIPT"
	CmdError     = "ERROR"
)

// Well-known header names. Incoming header names are normalized to
// lowercase, so these match the post-normalization form.
const (
	HdrLogin         = "login"
	HdrPasscode      = "passcode"
	HdrDestination   = "destination"
	HdrContentLength = "content-length"
	HdrContentType   = "content-type"
	HdrReceipt       = "receipt"
	HdrReceiptID     = "receipt-id"
	HdrMessageID     = "message-id"
	HdrTransaction   = "transaction"
	HdrPersistent    = "persistent"
	HdrMessage       = "message"
	HdrAck           = "ack"
	HdrID            = "id"
	HdrPrefetch      = "prefetch"
	HdrExchange      = "exchange"
	HdrRoutingKey    = "routing_key"
	HdrDurable       = "durable"
	HdrAutoDelete    = "auto-delete"
	HdrAckTimeout    = "ack-timeout"
	HdrNumMessages   = "num-messages"
)

// Framing bytes. Frames are always written with the NUL+newline terminator;
// on read the trailing newline is only consumed when the peer uses the
// newline convention (eof_nl).
const (
	FrameNull    = byte(0x00)
	FrameNewline = byte('\n')
)

// HeaderSeparator is emitted between a header name and its value.
const HeaderSeparator = ": "

// AccessRefusedMessage is the message header value brokers send on an ERROR
// frame when credentials are rejected during the handshake.
const AccessRefusedMessage = "access_refused"
