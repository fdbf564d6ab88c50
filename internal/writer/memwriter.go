package writer

// MemWriter captures output bytes in memory.
type MemWriter struct {
	Buf []byte
}

// Commit stores a copy of buf.
func (w *MemWriter) Commit(buf []byte) error {
	w.Buf = append(w.Buf[:0], buf...)
	return nil
}
