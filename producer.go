package objmesh

import "github.com/calvinalkan/objmesh/internal/ring"

// countBatches performs the up-front linear scan needed to size the batch
// and artifact arrays before spawning any goroutine. input must be
// non-empty; the facade rejects empty input before this is called.
func countBatches(input []byte, batchSize int) int {
	n := 0
	offset := 0
	for offset < len(input) {
		_, next := nextBatchSpan(input, offset, batchSize)
		offset = next
		n++
	}
	return n
}

// runProducer cuts batches from input, publishes them to r, and emits one
// sentinel (nil) per consumer once the input is exhausted. batches is a
// facade-owned array sized to exactly the batch count; the ring carries
// pointers into it, never copies.
//
// Backpressure: a backlog ring holds a batch that could not be pushed to r
// immediately. Before publishing each batch, and once more after the last
// one, the producer moves every backlogged batch into r, spinning with a
// back-off hint until r accepts it; it does not cut further batches while
// the backlog is non-empty. The backlog therefore holds at most one batch.
func runProducer(input []byte, batchSize int, batches []Batch, r *ring.Ring[*Batch], numConsumers int) {
	backlogCap := 4 * r.Cap()
	if backlogCap < 64 {
		backlogCap = 64
	}
	backlog := ring.New[*Batch](backlogCap)

	drainBacklog := func() {
		for {
			item, ok := backlog.TryPop()
			if !ok {
				return
			}
			if r.TryPush(item) {
				continue
			}
			var bo ring.Backoff
			for !r.TryPush(item) {
				bo.Spin()
			}
		}
	}

	publish := func(b *Batch) {
		drainBacklog()
		if r.TryPush(b) {
			return
		}
		var bo ring.Backoff
		for !backlog.TryPush(b) {
			bo.Spin()
		}
	}

	var vSeen, tSeen, nSeen uint32
	offset := 0

	for id := 0; id < len(batches); id++ {
		data, next := nextBatchSpan(input, offset, batchSize)
		offset = next

		v, t, n := countBatchLines(data)

		b := &batches[id]
		b.ID = id
		b.Data = data
		b.VSeen = vSeen
		b.TSeen = tSeen
		b.NSeen = nSeen

		vSeen += v
		tSeen += t
		nSeen += n

		publish(b)
	}

	drainBacklog()

	for i := 0; i < numConsumers; i++ {
		var bo ring.Backoff
		for !r.TryPush(nil) {
			bo.Spin()
		}
	}
}
