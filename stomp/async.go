package stomp

// AsyncConn adapts a Conn to a cooperative execution model: every verb
// returns a Future that completes when the underlying blocking exchange
// does. The connection contract is unchanged — at most one operation may be
// outstanding, so await each future before issuing the next verb.
type AsyncConn struct {
	conn *Conn
}

// Async returns the cooperative facade over this connection
func (c *Conn) Async() *AsyncConn {
	return &AsyncConn{conn: c}
}

// Conn returns the underlying blocking connection
func (a *AsyncConn) Conn() *Conn {
	return a.conn
}

// runAsync executes fn on its own goroutine, resolving the future with its
// result.
func runAsync[T any](fn func() (T, error)) *Future[T] {
	f := newFuture[T]()
	go func() {
		v, err := fn()
		f.complete(v, err)
	}()
	return f
}

// runAsyncVoid executes fn on its own goroutine for verbs with no result
// value.
func runAsyncVoid(fn func() error) *Future[struct{}] {
	return runAsync(func() (struct{}, error) {
		return struct{}{}, fn()
	})
}

// Send publishes body to a destination
func (a *AsyncConn) Send(destination string, body []byte, headers ...Header) *Future[struct{}] {
	return runAsyncVoid(func() error { return a.conn.Send(destination, body, headers...) })
}

// SendNoReceipt publishes body without awaiting a receipt
func (a *AsyncConn) SendNoReceipt(destination string, body []byte, headers ...Header) *Future[struct{}] {
	return runAsyncVoid(func() error { return a.conn.SendNoReceipt(destination, body, headers...) })
}

// Subscribe registers for messages from a destination
func (a *AsyncConn) Subscribe(destination string, headers ...Header) *Future[struct{}] {
	return runAsyncVoid(func() error { return a.conn.Subscribe(destination, headers...) })
}

// Unsubscribe cancels a subscription
func (a *AsyncConn) Unsubscribe(destination string, headers ...Header) *Future[struct{}] {
	return runAsyncVoid(func() error { return a.conn.Unsubscribe(destination, headers...) })
}

// Ack acknowledges a message by id
func (a *AsyncConn) Ack(messageID string, headers ...Header) *Future[struct{}] {
	return runAsyncVoid(func() error { return a.conn.Ack(messageID, headers...) })
}

// ReceiveMessage returns the next message
func (a *AsyncConn) ReceiveMessage() *Future[*Message] {
	return runAsync(func() (*Message, error) { return a.conn.ReceiveMessage() })
}

// Begin starts a transaction
func (a *AsyncConn) Begin() *Future[string] {
	return runAsync(func() (string, error) { return a.conn.Begin() })
}

// Commit commits a transaction
func (a *AsyncConn) Commit(id string) *Future[struct{}] {
	return runAsyncVoid(func() error { return a.conn.Commit(id) })
}

// Abort aborts a transaction
func (a *AsyncConn) Abort(id string) *Future[struct{}] {
	return runAsyncVoid(func() error { return a.conn.Abort(id) })
}

// CommitAll commits every live transaction
func (a *AsyncConn) CommitAll() *Future[struct{}] {
	return runAsyncVoid(a.conn.CommitAll)
}

// AbortAll aborts every live transaction
func (a *AsyncConn) AbortAll() *Future[struct{}] {
	return runAsyncVoid(a.conn.AbortAll)
}

// Disconnect tears the connection down
func (a *AsyncConn) Disconnect() *Future[struct{}] {
	return runAsyncVoid(a.conn.Disconnect)
}
