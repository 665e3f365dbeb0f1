package protocol

// LineSplitter cuts an incoming byte stream into newline-terminated lines.
// Bytes are staged in a FifoBuffer; a line longer than LineMax without a
// terminator is dropped and counted as an overflow.
type LineSplitter struct {
	fifo      *FifoBuffer
	discard   bool // dropping bytes until the next terminator
	Overflows uint32
}

// NewLineSplitter creates a splitter sized for LineMax lines
func NewLineSplitter() *LineSplitter {
	return &LineSplitter{
		fifo: NewFifoBuffer(LineMax + 1),
	}
}

// Feed pushes data into the splitter and calls emit for every complete line.
// The slice handed to emit excludes the terminator and is owned by the callee.
func (l *LineSplitter) Feed(data []byte, emit func(line []byte)) {
	for len(data) > 0 {
		n := l.fifo.Write(data)
		data = data[n:]

		for {
			idx := l.fifo.IndexByte(LineTerminator)
			if idx < 0 {
				break
			}
			line := l.fifo.Next(idx)
			l.fifo.Pop(1)
			if l.discard {
				// tail of an overlong line
				l.discard = false
				continue
			}
			emit(line)
		}

		if l.fifo.Free() == 0 {
			// Full with no terminator in sight
			l.fifo.Reset()
			if !l.discard {
				l.Overflows++
			}
			l.discard = true
		}
	}
}

// Pending returns how many bytes of an unterminated line are buffered
func (l *LineSplitter) Pending() int {
	return l.fifo.Available()
}

// Reset drops any partial line
func (l *LineSplitter) Reset() {
	l.fifo.Reset()
	l.discard = false
}
