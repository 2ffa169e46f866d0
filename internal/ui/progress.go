package ui

import (
	"fmt"

	"github.com/sgaunet/bullets"
)

// FetchProgress shows pagination progress on a single updatable line.
type FetchProgress struct {
	updatable *bullets.UpdatableLogger
	handle    *bullets.BulletHandle
	pages     int
	total     int
}

// NewFetchProgress creates a progress display on updatable.
func NewFetchProgress(updatable *bullets.UpdatableLogger) *FetchProgress {
	return &FetchProgress{updatable: updatable}
}

// PageRequested shows the page being fetched.
func (p *FetchProgress) PageRequested(page int) {
	msg := fmt.Sprintf("Fetching builds (page %d, %d so far)...", page, p.total)
	if p.handle == nil {
		p.handle = p.updatable.InfoHandle(msg)
		return
	}
	p.handle.Update(bullets.InfoLevel, msg)
}

// PageReceived records the size of a received page.
func (p *FetchProgress) PageReceived(page, count int) {
	p.pages = page
	p.total += count
}

// Done turns the progress line into a success summary.
func (p *FetchProgress) Done() {
	if p.handle == nil {
		return
	}
	p.handle.Success(fmt.Sprintf("Fetched %d builds (%d pages)", p.total, p.pages))
}

// Fail turns the progress line into an error.
func (p *FetchProgress) Fail(err error) {
	if p.handle == nil {
		return
	}
	p.handle.Error("Fetching builds failed: " + err.Error())
}

// Pages returns the number of pages received so far.
func (p *FetchProgress) Pages() int {
	return p.pages
}

// Total returns the number of builds received so far.
func (p *FetchProgress) Total() int {
	return p.total
}
