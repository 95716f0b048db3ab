// Package rangereader caps reads from an io.ReadCloser at a byte budget.
//
// It exists to stream the body of a ranged download: the source file is
// positioned at the range start by the caller, and the reader hands out at
// most the range length before reporting io.EOF. The underlying ReadCloser
// is closed as soon as the budget is spent or the source itself runs dry,
// so callers handing the reader to a response body writer do not need to
// arrange a separate close.
package rangereader

import "io"

type reader struct {
	src    io.ReadCloser
	budget int64
	closed bool
}

// New returns a reader delivering at most n bytes from src. When the budget
// is exhausted, or src returns io.EOF early, src is closed and every further
// Read returns io.EOF.
func New(src io.ReadCloser, n int64) io.Reader {
	return &reader{src: src, budget: n}
}

func (r *reader) Read(p []byte) (int, error) {
	if r.budget <= 0 {
		r.close()
		return 0, io.EOF
	}
	if int64(len(p)) > r.budget {
		p = p[:r.budget]
	}

	n, err := r.src.Read(p)
	r.budget -= int64(n)

	if err != nil {
		if err == io.EOF {
			r.budget = 0
			r.close()
		}
		return n, err
	}
	if r.budget == 0 {
		r.close()
		return n, io.EOF
	}
	return n, nil
}

func (r *reader) close() {
	if !r.closed {
		r.closed = true
		_ = r.src.Close()
	}
}
