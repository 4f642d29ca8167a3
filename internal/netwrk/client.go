package netwrk

import (
	"bufio"
	"fmt"
	"log/slog"
	"net"
	"sync"
)

// Client is the player's side of a match connection.
type Client struct {
	conn net.Conn
	r    *bufio.Reader

	mu  sync.Mutex
	seq uint64
}

// Connect dials the match server. The match starts as soon as the connection is accepted.
func Connect(addr string) (*Client, error) {
	slog.Debug("connecting to server...", slog.String("addr", addr))
	conn, err := net.Dial("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to server at %s: %w", addr, err)
	}
	return NewClient(conn), nil
}

func NewClient(conn net.Conn) *Client {
	return &Client{conn: conn, r: bufio.NewReader(conn)}
}

// SendInput numbers m and writes it to the server. It is safe to call from
// several goroutines.
func (c *Client) SendInput(m InputMessage) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.seq++
	m.Seq = c.seq
	if err := WriteFrame(c.conn, m.Marshal()); err != nil {
		return fmt.Errorf("could not send input to server: %w", err)
	}
	return nil
}

func (c *Client) SendCommand(cmd string) error {
	return c.SendInput(InputMessage{Command: cmd})
}

// ReadSnapshot blocks until the next snapshot arrives. Only one goroutine may read.
func (c *Client) ReadSnapshot() (SnapshotMessage, error) {
	frame, err := ReadFrame(c.r)
	if err != nil {
		return SnapshotMessage{}, err
	}
	return UnmarshalSnapshot(frame)
}

func (c *Client) Close() error {
	return c.conn.Close()
}
