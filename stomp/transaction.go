package stomp

import (
	"github.com/israelio/stomp-go-client/internal/protocol"
)

// Begin starts a transaction and returns its id. The id joins the
// connection's live set once the server receipt arrives.
func (c *Conn) Begin() (string, error) {
	if c.closed {
		return "", ErrClosed
	}

	id := c.nextTransactionID()
	if _, err := c.Request(protocol.CmdBegin, Headers{}.Add(protocol.HdrTransaction, id), nil); err != nil {
		return "", err
	}

	c.transactions[id] = struct{}{}
	c.metrics.TransactionBegun()
	return id, nil
}

// Commit commits a transaction and removes it from the live set.
func (c *Conn) Commit(id string) error {
	if _, err := c.Request(protocol.CmdCommit, Headers{}.Add(protocol.HdrTransaction, id), nil); err != nil {
		return err
	}
	delete(c.transactions, id)
	c.metrics.TransactionCommitted()
	return nil
}

// Abort aborts a transaction and removes it from the live set.
func (c *Conn) Abort(id string) error {
	if _, err := c.Request(protocol.CmdAbort, Headers{}.Add(protocol.HdrTransaction, id), nil); err != nil {
		return err
	}
	delete(c.transactions, id)
	c.metrics.TransactionAborted()
	return nil
}

// CommitAll commits every live transaction, smallest id (lexicographic)
// first, re-reading the live set after each commit.
func (c *Conn) CommitAll() error {
	return c.drainTransactions(c.Commit)
}

// AbortAll aborts every live transaction, smallest id (lexicographic)
// first, re-reading the live set after each abort.
func (c *Conn) AbortAll() error {
	return c.drainTransactions(c.Abort)
}

func (c *Conn) drainTransactions(complete func(string) error) error {
	for len(c.transactions) > 0 {
		ids := c.Transactions()
		if err := complete(ids[0]); err != nil {
			return err
		}
	}
	return nil
}
