package listener

import (
	"io"
)

const (
	backspace = 0x08
	del       = 0x7f

	readSize = 512
)

// lineConn adapts a raw client connection for the console. Input is handed
// on a whole line at a time with line endings turned into \n, and output
// \n becomes \r\n.
//
// Telnet sends \r\n or \r\0, ssh without a pty sends a bare \r. A telnet
// client in character mode sends each key in its own packet, so the line
// being typed is kept across reads and backspace or delete can erase any
// character of it.
type lineConn struct {
	rw io.ReadWriter

	buf   []byte
	line  []byte
	ready []byte
	sawCR bool
	err   error

	scratch []byte
}

func newLineConn(rw io.ReadWriter) io.ReadWriter {
	return &lineConn{
		rw:  rw,
		buf: make([]byte, readSize),
	}
}

func (c *lineConn) Read(p []byte) (int, error) {
	for len(c.ready) == 0 {
		if c.err != nil {
			if len(c.line) == 0 {
				return 0, c.err
			}
			// Hand over what was typed before the connection ended.
			c.ready = append(c.ready, c.line...)
			c.line = c.line[:0]
			break
		}

		n, err := c.rw.Read(c.buf)
		c.edit(c.buf[:n])
		c.err = err
		if n == 0 && err == nil {
			return 0, nil
		}
	}

	n := copy(p, c.ready)
	c.ready = append(c.ready[:0], c.ready[n:]...)
	return n, nil
}

// edit applies raw input to the line being typed, moving it to ready each
// time a line ending arrives.
func (c *lineConn) edit(in []byte) {
	for _, b := range in {
		switch {
		case b == '\r':
			c.endLine()
			c.sawCR = true
			continue
		case (b == '\n' || b == 0) && c.sawCR:
			// second half of \r\n or \r\0
		case b == '\n':
			c.endLine()
		case b == 0:
		case b == backspace || b == del:
			if len(c.line) > 0 {
				c.line = c.line[:len(c.line)-1]
			}
		default:
			c.line = append(c.line, b)
		}
		c.sawCR = false
	}
}

func (c *lineConn) endLine() {
	c.ready = append(c.ready, c.line...)
	c.ready = append(c.ready, '\n')
	c.line = c.line[:0]
}

func (c *lineConn) Write(p []byte) (int, error) {
	c.scratch = c.scratch[:0]
	for _, b := range p {
		if b == '\n' {
			c.scratch = append(c.scratch, '\r')
		}
		c.scratch = append(c.scratch, b)
	}
	_, err := c.rw.Write(c.scratch)
	// Report the caller's length so the added \r bytes stay invisible.
	return len(p), err
}
