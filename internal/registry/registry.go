// Package registry 实现日志登记簿及其进程级单例绑定。
//
// Registry 保存按插入顺序排列的日志条目，条目的构造委托给 factory.Factory。
// Holder 负责单例的生命周期：
//
//	Uninitialized --Instance()--> Active --Destroy()--> Uninitialized
//
// 使用示例：
//
//	reg := registry.Instance()
//	if err := reg.Append("info", "Application started"); err != nil {
//	    return err
//	}
//	reg.DumpAll()
//	registry.Destroy()
package registry

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/oriys/logbook/internal/domain"
	"github.com/oriys/logbook/internal/factory"
	"github.com/oriys/logbook/internal/metrics"
)

// Options 控制登记簿的行为。
type Options struct {
	// Writer DumpAll 的输出目标，默认 os.Stdout
	Writer io.Writer
	// Factory 条目工厂，默认使用 en 词汇表
	Factory *factory.Factory
	// Logger 诊断日志，默认丢弃
	Logger logrus.FieldLogger
	// Metrics 指标集合，可为 nil
	Metrics *metrics.Metrics
}

// Option 修改 Options。
type Option func(*Options)

// WithWriter 设置 DumpAll 的输出目标。
func WithWriter(w io.Writer) Option { return func(o *Options) { o.Writer = w } }

// WithFactory 设置条目工厂。
func WithFactory(f *factory.Factory) Option { return func(o *Options) { o.Factory = f } }

// WithLogger 设置诊断日志。
func WithLogger(l logrus.FieldLogger) Option { return func(o *Options) { o.Logger = l } }

// WithMetrics 设置指标集合。
func WithMetrics(m *metrics.Metrics) Option { return func(o *Options) { o.Metrics = m } }

func buildOptions(opts []Option) Options {
	var o Options
	for _, fn := range opts {
		fn(&o)
	}
	if o.Writer == nil {
		o.Writer = os.Stdout
	}
	if o.Factory == nil {
		o.Factory = factory.Default()
	}
	if o.Logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		o.Logger = l
	}
	return o
}

// Registry 是按插入顺序保存日志条目的登记簿。
// 可被多个 goroutine 并发使用。
type Registry struct {
	id  string
	opt Options
	log logrus.FieldLogger

	mu       sync.RWMutex
	entries  []domain.LogEntry
	released bool
}

// New 创建一个空登记簿。
// 通常通过 Holder.Instance 获取共享实例；直接调用 New 适用于显式依赖注入的场景。
func New(opts ...Option) *Registry {
	o := buildOptions(opts)
	id := uuid.New().String()
	return &Registry{
		id:  id,
		opt: o,
		log: o.Logger.WithField("registry_id", id),
	}
}

// ID 返回登记簿的代次标识，每次创建都不同。
func (r *Registry) ID() string { return r.id }

// Append 通过工厂构造条目并追加到末尾。
// 工厂返回的错误原样返回，此时序列保持不变。
func (r *Registry) Append(tag, message string) error {
	entry, err := r.opt.Factory.Create(tag, message)
	if err != nil {
		r.opt.Metrics.RecordRejected()
		r.log.WithError(err).WithField("tag", tag).Debug("Rejected log entry")
		return err
	}

	r.mu.Lock()
	if r.released {
		r.mu.Unlock()
		return fmt.Errorf("%w: %s", domain.ErrRegistryReleased, r.id)
	}
	r.entries = append(r.entries, entry)
	n := len(r.entries)
	r.mu.Unlock()

	r.opt.Metrics.RecordAppend(entry.Category.String(), n)
	r.log.WithFields(logrus.Fields{
		"category": entry.Category.String(),
		"position": n,
	}).Debug("Appended log entry")
	return nil
}

// DumpAll 将全部条目按插入顺序逐行写出，不修改序列。
// 只有写入目标失败时才返回错误。
func (r *Registry) DumpAll() error {
	entries := r.Entries()
	r.opt.Metrics.RecordDump()
	r.log.WithField("count", len(entries)).Debug("Dumping log entries")
	for _, e := range entries {
		if _, err := fmt.Fprintln(r.opt.Writer, e.Text); err != nil {
			return err
		}
	}
	return nil
}

// Entries 返回条目快照。
func (r *Registry) Entries() []domain.LogEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.LogEntry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Len 返回当前条目数。
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// Released 报告登记簿是否已被销毁。
func (r *Registry) Released() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.released
}

// release 丢弃全部条目并拒绝后续追加。
func (r *Registry) release() {
	r.mu.Lock()
	dropped := len(r.entries)
	r.entries = nil
	r.released = true
	r.mu.Unlock()

	r.opt.Metrics.RecordRelease()
	r.log.WithField("dropped", dropped).Debug("Released registry")
}
