package piwik

import "sync"

// Page is the context a set of providers runs in. It owns the single command
// queue that every provider on the page writes to.
type Page struct {
	// Domain is the document domain, used to build fallback event labels.
	Domain string
	// Secure is true when the page was loaded over https.
	Secure bool

	once  sync.Once
	queue *Queue
}

type PageOption func(*Page)

// WithQueue adopts a buffer that already exists, for example one created by
// an earlier copy of the tracking snippet.
func WithQueue(q *Queue) PageOption {
	return func(p *Page) {
		p.queue = q
	}
}

func NewPage(domain string, secure bool, opts ...PageOption) *Page {
	p := &Page{Domain: domain, Secure: secure}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Queue returns the page's command buffer, creating it on first use. An
// existing buffer is never replaced.
func (p *Page) Queue() *Queue {
	p.once.Do(func() {
		if p.queue == nil {
			p.queue = NewQueue()
		}
	})
	return p.queue
}

func (p *Page) scheme() string {
	if p.Secure {
		return "https"
	}
	return "http"
}
