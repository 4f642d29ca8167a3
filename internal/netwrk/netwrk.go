// Package netwrk carries inputs and snapshots between the terminal client and
// the match server as length-prefixed protobuf frames over TCP.
package netwrk

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"log"
	"log/slog"
	"net"

	"google.golang.org/protobuf/encoding/protowire"
)

// MaxFrameSize bounds a single message on the wire.
const MaxFrameSize = 64 << 10

var ErrFrameTooLarge = errors.New("frame too large")

// WriteFrame writes payload prefixed by its varint length in a single Write.
func WriteFrame(w io.Writer, payload []byte) error {
	if len(payload) > MaxFrameSize {
		return fmt.Errorf("%w: %d bytes", ErrFrameTooLarge, len(payload))
	}
	buf := make([]byte, 0, len(payload)+binary.MaxVarintLen64)
	buf = protowire.AppendVarint(buf, uint64(len(payload)))
	buf = append(buf, payload...)
	_, err := w.Write(buf)
	return err
}

// ReadFrame reads one frame written by WriteFrame. A clean end of stream
// before the length prefix returns io.EOF.
func ReadFrame(r *bufio.Reader) ([]byte, error) {
	n, err := binary.ReadUvarint(r)
	if err != nil {
		return nil, err
	}
	if n > MaxFrameSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrFrameTooLarge, n)
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// Listen starts listening on addr for TCP connections and serves them.
func Listen(addr string, handle func(net.Conn)) error {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("error setting up listener on %s: %w", addr, err)
	}
	defer listener.Close()

	slog.Info("listening", slog.String("addr", listener.Addr().String()))
	return Serve(listener, handle)
}

// Serve accepts connections until the listener is closed, handing each one
// to handle on its own goroutine.
func Serve(listener net.Listener, handle func(net.Conn)) error {
	for {
		conn, err := listener.Accept()
		if errors.Is(err, net.ErrClosed) {
			return nil
		}
		if err != nil {
			log.Println(err)
			continue
		}
		go handle(conn)
	}
}
