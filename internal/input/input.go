// Package input turns raw terminal bytes into engine actions.
package input

import (
	"bufio"
	"sync"

	"github.com/tomz197/skyraid/internal/loop"
	"github.com/tomz197/skyraid/internal/object"
)

const (
	keyEsc   = '\x1b'
	keyCtrlC = '\x03'
)

// Stream delivers input bytes via a channel so the host can drain them without blocking.
type Stream struct {
	ch       chan byte
	done     chan struct{}
	finished chan struct{}
	stop     sync.Once
	closed   bool
	decoder  Decoder
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
// The goroutine exits at the first read error or, after Close, at the next byte read.
// A read already blocked on r only returns when the owner closes the reader.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{
		ch:       make(chan byte, 128),
		done:     make(chan struct{}),
		finished: make(chan struct{}),
	}
	go func() {
		defer close(s.finished)
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			select {
			case s.ch <- b:
			case <-s.done:
				return
			}
		}
	}()
	return s
}

// Close stops delivering bytes. Safe to call more than once.
func (s *Stream) Close() {
	s.stop.Do(func() { close(s.done) })
}

// Actions drains all available bytes (non-blocking) and decodes them.
// Once the reader is exhausted a Quit action is returned.
func (s *Stream) Actions() []loop.Action {
	var buf []byte
drain:
	for !s.closed {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	actions := s.decoder.Feed(buf)
	if s.closed {
		actions = append(actions, loop.Action{Kind: loop.ActionQuit})
	}
	return actions
}

// Decoder maps key bytes to actions. It keeps an unfinished escape sequence
// between calls so arrow keys split across reads still decode.
type Decoder struct {
	pending []byte
}

// Feed decodes buf, prefixed by any escape sequence left over from the previous call.
func (d *Decoder) Feed(buf []byte) []loop.Action {
	if len(d.pending) > 0 {
		buf = append(d.pending, buf...)
		d.pending = nil
	}

	var out []loop.Action
	for i := 0; i < len(buf); i++ {
		b := buf[i]

		if b == keyEsc {
			// CSI sequence: ESC [ <code>
			if i+2 >= len(buf) {
				if i+1 == len(buf) || buf[i+1] == '[' {
					d.pending = append(d.pending, buf[i:]...)
					break
				}
				continue
			}
			if buf[i+1] != '[' {
				continue
			}
			switch buf[i+2] {
			case 'C': // Right arrow
				out = append(out, loop.Action{Kind: loop.ActionRight})
			case 'D': // Left arrow
				out = append(out, loop.Action{Kind: loop.ActionLeft})
			}
			i += 2
			continue
		}

		if a, ok := decodeByte(b); ok {
			out = append(out, a)
		}
	}
	return out
}

// Decode maps a complete buffer to actions without carrying state.
func Decode(buf []byte) []loop.Action {
	var d Decoder
	return d.Feed(buf)
}

func decodeByte(b byte) (loop.Action, bool) {
	switch b {
	case 'q', 'Q', keyCtrlC:
		return loop.Action{Kind: loop.ActionQuit}, true
	case 'a', 'A':
		return loop.Action{Kind: loop.ActionLeft}, true
	case 'd', 'D':
		return loop.Action{Kind: loop.ActionRight}, true
	case ' ':
		return loop.Action{Kind: loop.ActionFire}, true
	case '\n', '\r':
		return loop.Action{Kind: loop.ActionStart}, true
	case 'p', 'P':
		return loop.Action{Kind: loop.ActionTogglePause}, true
	case 'r', 'R':
		return loop.Action{Kind: loop.ActionRestart}, true
	case 'm', 'M':
		return loop.Action{Kind: loop.ActionToggleMute}, true
	case '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return loop.Action{Kind: loop.ActionSelectColor, Color: object.PlayerColors[int(b-'0')]}, true
	}
	return loop.Action{}, false
}
