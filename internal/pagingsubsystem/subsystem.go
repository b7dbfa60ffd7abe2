// Package pagingsubsystem composes the paging queue, mapper, codec, and
// scheduler behind the six operations a BTS control loop calls: add,
// generate, update_ccch, reset, and the two read-only queries
// queue_length and group_empty.
//
// Grounded on internal/dmr/calltracker/call_tracker.go's constructor
// shape (collaborators passed in, no package-level globals) and its
// per-method otel span plus structured-log-on-error style.
package pagingsubsystem

import (
	"context"
	"log/slog"
	"time"

	"github.com/gsm-bts/pager/internal/pagingbus"
	"github.com/gsm-bts/pager/internal/pagingconfig"
	"github.com/gsm-bts/pager/internal/pagingconst"
	"github.com/gsm-bts/pager/internal/pagingmapper"
	"github.com/gsm-bts/pager/internal/pagingmetrics"
	"github.com/gsm-bts/pager/internal/pagingqueue"
	"github.com/gsm-bts/pager/internal/pagingrecord"
	"github.com/gsm-bts/pager/internal/pagingscheduler"
	"github.com/gsm-bts/pager/internal/pagingtrace"
)

// Subsystem is the paging subsystem's public entry point. It is not safe
// for concurrent use (spec.md §5): the BTS control loop owns it and calls
// its methods from a single goroutine.
type Subsystem struct {
	store    *pagingqueue.Store
	desc     pagingconfig.CcchDescriptor
	lifetime time.Duration
	clock    func() time.Time
	logger   *slog.Logger

	metrics *pagingmetrics.Metrics
	bus     *pagingbus.Mirror
}

// Option configures optional Subsystem collaborators.
type Option func(*Subsystem)

// WithMetrics attaches a Prometheus instrumentation sink.
func WithMetrics(m *pagingmetrics.Metrics) Option {
	return func(s *Subsystem) { s.metrics = m }
}

// WithBus attaches a non-authoritative Redis mirror.
func WithBus(b *pagingbus.Mirror) Option {
	return func(s *Subsystem) { s.bus = b }
}

// WithClock overrides the wall-clock source; tests use this to control
// expiration comparisons deterministically.
func WithClock(clock func() time.Time) Option {
	return func(s *Subsystem) { s.clock = clock }
}

// New builds a Subsystem from cfg, which must already pass Validate.
// logger may be nil, in which case a discarding logger is used.
func New(cfg pagingconfig.Config, logger *slog.Logger, opts ...Option) (*Subsystem, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &Subsystem{
		store:    pagingqueue.NewStore(cfg.NumPagingMax),
		desc:     cfg.CCCH,
		lifetime: cfg.PagingLifetime,
		clock:    time.Now,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Add enqueues a paging attempt for group with the given identity and
// channel-needed value (spec.md §4.2, §6 "add"). A duplicate identity
// refreshes the queued record's expiration and Add returns nil:
// pagingqueue.Add's ErrDuplicate is non-fatal and is reported only through
// the "duplicate" outcome passed to metrics and the bus.
func (s *Subsystem) Add(ctx context.Context, group int, identityLV []byte, chanNeeded uint8) error {
	ctx, span := pagingtrace.Start(ctx, "Subsystem.Add")
	defer span.End()

	rec := pagingrecord.Record{
		IdentityLV:     identityLV,
		ChanNeeded:     chanNeeded & 3,
		ExpirationTime: s.clock().Add(s.lifetime),
	}
	err := s.store.Add(group, rec)

	outcome := addOutcome(err)
	if s.metrics != nil {
		s.metrics.RecordAdd(outcome)
		s.metrics.SetQueueLength(float64(s.store.QueueLength()))
	}
	if s.bus != nil {
		s.bus.Publish(ctx, pagingbus.Event{
			Kind: "add", Group: group, Outcome: outcome, Time: s.clock(),
		})
	}

	switch outcome {
	case "ok", "duplicate":
		return nil
	default:
		s.logger.Warn("paging add rejected",
			slog.Int("group", group), slog.String("reason", outcome))
		return err
	}
}

func addOutcome(err error) string {
	switch err {
	case nil:
		return "ok"
	case pagingqueue.ErrDuplicate:
		return "duplicate"
	case pagingqueue.ErrQueueFull:
		return "full"
	case pagingqueue.ErrTooBig:
		return "too_big"
	case pagingqueue.ErrBadGroup:
		return "bad_group"
	default:
		return "error"
	}
}

// Generate produces the next CCCH MAC block for frame fn into out, which
// must be at least pagingconst.MACBlockLen bytes (spec.md §4.4, §6
// "generate"). It returns the number of bytes written.
func (s *Subsystem) Generate(ctx context.Context, fn uint32, out []byte) (int, error) {
	ctx, span := pagingtrace.Start(ctx, "Subsystem.Generate")
	defer span.End()

	start := s.clock()
	ft := pagingmapper.NewFrameTime(fn)
	n, outcome, err := pagingscheduler.Generate(s.store, s.desc, ft, start, out)
	if err != nil {
		s.logger.Error("paging generate failed", slog.String("frame", ft.String()), slog.Any("error", err))
		return 0, err
	}

	if s.metrics != nil {
		s.metrics.RecordGenerate(outcome.Format, time.Since(start).Seconds())
		s.metrics.RecordRetireRequeue(outcome.NumRetired, outcome.NumRequeued)
		s.metrics.SetQueueLength(float64(s.store.QueueLength()))
	}
	if s.bus != nil {
		s.bus.Publish(ctx, pagingbus.Event{
			Kind: "generate", Group: outcome.Group, Format: outcome.Format,
			NumSelected: outcome.NumSelected, NumRetired: outcome.NumRetired,
			NumRequeued: outcome.NumRequeued, Time: start,
		})
	}

	return n, nil
}

// UpdateCCCH installs a new CCCH descriptor (spec.md §6 "update_ccch").
// Every later Generate call maps frames to groups under the new
// descriptor; existing queued records are left in their current group
// slots and are not redistributed (spec.md §9, open question 3 — chosen
// policy, not a rebucketing pass, since a mid-flight rebucket would risk
// reordering records the BSC already accounted for via num_paging).
func (s *Subsystem) UpdateCCCH(desc pagingconfig.CcchDescriptor) error {
	if err := desc.Validate(); err != nil {
		return err
	}
	s.desc = desc
	return nil
}

// Reset drops every queued record (spec.md §6 "reset") and returns the
// number of records that were dropped.
func (s *Subsystem) Reset(ctx context.Context) int {
	_, span := pagingtrace.Start(ctx, "Subsystem.Reset")
	defer span.End()

	dropped := s.store.Reset()
	if s.metrics != nil {
		s.metrics.SetQueueLength(0)
	}
	s.logger.Info("paging queue reset", slog.Int("dropped", dropped))
	return dropped
}

// QueueLength returns the total number of queued records across all
// groups (spec.md §6 "queue_length").
func (s *Subsystem) QueueLength() int {
	return s.store.QueueLength()
}

// GroupEmpty reports whether group has no queued records (spec.md §6
// "group_empty").
func (s *Subsystem) GroupEmpty(group int) bool {
	return s.store.GroupEmpty(group)
}

// NumGroups returns G, the fixed number of paging groups the store
// dimensions for.
func (s *Subsystem) NumGroups() int {
	return pagingconst.TotalQueueSlots
}
