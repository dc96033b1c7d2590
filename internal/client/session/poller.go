package session

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/addiskitchen/platform/internal/client/gateway"
	"github.com/addiskitchen/platform/pkg/logger"
)

// Poller re-checks the signed-in user on a fixed interval so an
// expired or revoked credential is noticed without waiting for the
// next user action. It stops cleanly when its owner goes away.
type Poller struct {
	gw       *gateway.Gateway
	interval time.Duration
	onUser   func(*gateway.User)
	log      *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewPoller creates a poller. onUser receives the refreshed user on
// every successful check; session expiry is reported through the
// gateway client's OnSessionExpired handler, not here.
func NewPoller(gw *gateway.Gateway, interval time.Duration, onUser func(*gateway.User)) *Poller {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	return &Poller{
		gw:       gw,
		interval: interval,
		onUser:   onUser,
		log:      logger.Get(),
	}
}

// Start begins polling. Calling Start on a running poller is a no-op.
func (p *Poller) Start(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.done = make(chan struct{})

	go p.run(ctx)
}

// Stop halts polling and waits for the loop to exit
func (p *Poller) Stop() {
	p.mu.Lock()
	cancel, done := p.cancel, p.done
	p.cancel = nil
	p.done = nil
	p.mu.Unlock()

	if cancel != nil {
		cancel()
		<-done
	}
}

func (p *Poller) run(ctx context.Context) {
	defer close(p.done)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.check(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.check(ctx)
		}
	}
}

func (p *Poller) check(ctx context.Context) {
	user, err := p.gw.Me(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		// Auth failures already cleared the credential inside the
		// gateway; transient failures are just logged.
		if !gateway.IsAuthError(err) {
			p.log.Debug("auth poll failed", zap.Error(err))
		}
		return
	}
	if p.onUser != nil {
		p.onUser(user)
	}
}
