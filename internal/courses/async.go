package courses

import "context"

// Pending is a scan running in the background.
type Pending struct {
	done    chan struct{}
	catalog *Catalog
	err     error
}

// ScanAsync starts Scan on its own goroutine. Cancelling ctx aborts the walk.
func ScanAsync(ctx context.Context, opt Options) *Pending {
	pending := &Pending{done: make(chan struct{})}

	go func() {
		defer close(pending.done)

		pending.catalog, pending.err = Scan(ctx, opt)
	}()

	return pending
}

// Done is closed once the scan has finished.
func (p *Pending) Done() <-chan struct{} {
	return p.done
}

// Wait blocks until the scan has finished and returns its result.
func (p *Pending) Wait() (*Catalog, error) {
	<-p.done

	return p.catalog, p.err
}
