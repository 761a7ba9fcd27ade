package dashboard

// ring is a fixed-capacity sample buffer for one entity.
type ring struct {
	buf   []float64
	start int
	n     int
}

const historyCap = 60

func newRing() *ring {
	return &ring{buf: make([]float64, historyCap)}
}

func (r *ring) push(v float64) {
	if r.n < len(r.buf) {
		r.buf[(r.start+r.n)%len(r.buf)] = v
		r.n++
		return
	}
	r.buf[r.start] = v
	r.start = (r.start + 1) % len(r.buf)
}

// values returns the samples oldest first.
func (r *ring) values() []float64 {
	out := make([]float64, r.n)
	for i := 0; i < r.n; i++ {
		out[i] = r.buf[(r.start+i)%len(r.buf)]
	}
	return out
}
