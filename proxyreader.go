package barline

import "io"

type proxyReader struct {
	io.ReadCloser
	p *Progress
}

func (x proxyReader) Read(b []byte) (int, error) {
	n, err := x.ReadCloser.Read(b)
	x.p.Increment(float64(n))
	return n, err
}

type proxyWriterTo struct {
	proxyReader
}

func (x proxyWriterTo) WriteTo(w io.Writer) (int64, error) {
	n, err := x.ReadCloser.(io.WriterTo).WriteTo(w)
	x.p.Increment(float64(n))
	return n, err
}

// ProxyReader wraps r with a reader which increments the progress by the
// number of bytes read. The returned reader implements io.WriterTo whenever
// r does. Panics if r is nil.
func (p *Progress) ProxyReader(r io.Reader) io.ReadCloser {
	if r == nil {
		panic("expected non nil io.Reader")
	}
	rc, ok := r.(io.ReadCloser)
	if !ok {
		rc = io.NopCloser(r)
	}
	pr := proxyReader{rc, p}
	if _, ok := r.(io.WriterTo); ok {
		return proxyWriterTo{pr}
	}
	return pr
}
