package basexml

import "io"

// NewEncoder returns a stream encoder using StdEncoding.
func NewEncoder(w io.Writer) io.WriteCloser {
	return StdEncoding.NewEncoder(w)
}

// NewEncoder returns an encoder writing to w. Data is written in whole
// chunks; the caller must Close the encoder to flush a final partial chunk
// and the termination sequence. Closing does not close w.
func (enc *Encoding) NewEncoder(w io.Writer) io.WriteCloser {
	return &encoder{enc: enc, w: w}
}

type encoder struct {
	enc    *Encoding
	w      io.Writer
	err    error
	buf    [BlockSize]byte // buffered partial chunk
	nbuf   int
	out    [170 * EncodedBlockSize]byte
	closed bool
}

func (e *encoder) Write(p []byte) (n int, err error) {
	if e.err != nil {
		return 0, e.err
	}
	if e.closed {
		return 0, errEncoderClosed
	}

	// Leading fringe.
	if e.nbuf > 0 {
		var i int
		for i = 0; i < len(p) && e.nbuf < BlockSize; i++ {
			e.buf[e.nbuf] = p[i]
			e.nbuf++
		}
		n += i
		p = p[i:]
		if e.nbuf < BlockSize {
			return n, nil
		}
		EncodeBlock(e.out[:], e.buf[:])
		if err := e.write(e.out[:EncodedBlockSize]); err != nil {
			return n, err
		}
		e.nbuf = 0
	}

	// Large interior chunks.
	for len(p) >= BlockSize {
		nn := len(e.out) / EncodedBlockSize * BlockSize
		if nn > len(p) {
			nn = len(p)
		}
		nn -= nn % BlockSize
		m := e.enc.Encode(e.out[:], p[:nn])
		if err := e.write(e.out[:m]); err != nil {
			return n, err
		}
		n += nn
		p = p[nn:]
	}

	// Trailing fringe.
	copy(e.buf[:], p)
	e.nbuf = len(p)
	n += len(p)
	return n, nil
}

func (e *encoder) write(p []byte) error {
	if _, err := e.w.Write(p); err != nil {
		e.err = &IOError{Op: "write", Err: err}
	}
	return e.err
}

// Close flushes any pending output from the encoder.
func (e *encoder) Close() error {
	if e.closed || e.err != nil {
		return e.err
	}
	e.closed = true
	if e.nbuf > 0 {
		m := e.enc.encodeTail(e.out[:], e.buf[:e.nbuf])
		e.nbuf = 0
		return e.write(e.out[:m])
	}
	return nil
}

// NewDecoder returns a stream decoder using StdEncoding.
func NewDecoder(r io.Reader) io.Reader {
	return StdEncoding.NewDecoder(r)
}

// NewDecoder returns a decoder reading from r. After the termination
// sequence the decoder reports io.EOF and does not read from r again.
func (enc *Encoding) NewDecoder(r io.Reader) io.Reader {
	return &decoder{f: newFramer(enc, 0), r: r}
}

type decoder struct {
	f       *framer
	r       io.Reader
	err     error
	readErr error
	buf     [342 * GroupSize]byte // leftover input
	nbuf    int
	out     []byte // leftover decoded output
	outbuf  [1024]byte
}

func (d *decoder) Read(p []byte) (n int, err error) {
	if len(p) == 0 {
		return 0, nil
	}

	for {
		// Copy leftover output from last decode.
		if len(d.out) > 0 {
			n = copy(p, d.out)
			d.out = d.out[n:]
			return n, nil
		}
		if d.err != nil {
			return 0, d.err
		}

		// Decode the complete groups in the buffer.
		out := d.outbuf[:0]
		i := 0
		for ; i+GroupSize <= d.nbuf && !d.f.done; i += GroupSize {
			rel, err := d.f.next(d.buf[i : i+GroupSize])
			out = append(out, rel...)
			if err != nil {
				d.err = err
				break
			}
		}
		d.nbuf = copy(d.buf[:], d.buf[i:d.nbuf])
		if d.f.done && d.err == nil {
			d.err = io.EOF
		}
		if len(out) > 0 || d.err != nil {
			d.out = out
			continue
		}

		// Out of input, handle the end of the stream.
		if d.readErr != nil {
			if d.readErr != io.EOF {
				d.err = &IOError{Op: "read", Err: d.readErr}
				continue
			}
			rel, err := d.f.finish(d.nbuf)
			d.out = append(d.outbuf[:0], rel...)
			d.err = err
			if err == nil {
				d.err = io.EOF
			}
			continue
		}

		// Read more data.
		nn, err := d.r.Read(d.buf[d.nbuf:])
		d.nbuf += nn
		d.readErr = err
	}
}
