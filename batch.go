package objmesh

import "bytes"

// Batch is a newline-aligned slice of the mapped input buffer together with
// the (v, t, n) running totals observed by the producer strictly before
// this batch. Batches are non-owning views into the facade-owned input
// buffer; the ring carries pointers to Batch values living in a
// facade-owned array, never copies of the underlying bytes.
type Batch struct {
	ID    int
	Data  []byte
	VSeen uint32
	TSeen uint32
	NSeen uint32
}

// nextBatchSpan returns the next newline-aligned span of approximately
// targetSize bytes starting at offset, and the offset immediately after it.
//
// The boundary is min(offset+targetSize, len(input)); if that index falls
// inside a line, the span is extended to include the first '\n' at or after
// it. When no further '\n' exists, the span runs to EOF.
func nextBatchSpan(input []byte, offset, targetSize int) (data []byte, next int) {
	if offset >= len(input) {
		return nil, offset
	}

	end := offset + targetSize
	if end >= len(input) {
		return input[offset:], len(input)
	}

	if nl := bytes.IndexByte(input[end:], '\n'); nl >= 0 {
		end += nl + 1
	} else {
		end = len(input)
	}

	return input[offset:end], end
}

// countBatchLines performs the producer's critical-path counting pass: one
// linear, branch-light scan over data that increments totals by line kind
// only, without any numeric parsing. It must stay cheap since it runs
// serially on the single producer goroutine for every batch cut.
func countBatchLines(data []byte) (v, t, n uint32) {
	for len(data) > 0 {
		nl := bytes.IndexByte(data, '\n')
		var line []byte
		if nl >= 0 {
			line, data = data[:nl], data[nl+1:]
		} else {
			line, data = data, nil
		}

		switch classifyLineKindOnly(line) {
		case linePosition:
			v++
		case lineTexture:
			t++
		case lineNormal:
			n++
		}
	}
	return v, t, n
}
