package barline

import "io"

type proxyWriter struct {
	io.WriteCloser
	p *Progress
}

func (x proxyWriter) Write(b []byte) (int, error) {
	n, err := x.WriteCloser.Write(b)
	x.p.Increment(float64(n))
	return n, err
}

type proxyReaderFrom struct {
	proxyWriter
	rf io.ReaderFrom
}

func (x proxyReaderFrom) ReadFrom(r io.Reader) (int64, error) {
	n, err := x.rf.ReadFrom(r)
	x.p.Increment(float64(n))
	return n, err
}

type toClose struct {
	io.Writer
}

func (toClose) Close() error {
	return nil
}

// ProxyWriter wraps w with a writer which increments the progress by the
// number of bytes written. The returned writer implements io.ReaderFrom
// whenever w does. Panics if w is nil.
func (p *Progress) ProxyWriter(w io.Writer) io.WriteCloser {
	if w == nil {
		panic("expected non nil io.Writer")
	}
	wc, ok := w.(io.WriteCloser)
	if !ok {
		wc = toClose{w}
	}
	pw := proxyWriter{wc, p}
	if rf, ok := w.(io.ReaderFrom); ok {
		return proxyReaderFrom{pw, rf}
	}
	return pw
}
