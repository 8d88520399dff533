// Package metrics 提供 Prometheus 指标采集的统一封装。
// 该包集中定义登记簿的关键指标（追加、拒绝、输出、销毁），便于在各模块复用并保持标签一致。
package metrics

import (
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"
)

// Metrics 封装登记簿运行时指标集合。
// 方法对 nil 接收者安全，未启用指标时调用方可以直接传 nil。
type Metrics struct {
	// EntriesAppended 成功追加的条目数
	// 标签: category
	EntriesAppended *prometheus.CounterVec

	// EntriesRejected 因类别无法识别而被拒绝的追加次数
	EntriesRejected prometheus.Counter

	// EntriesStored 当前登记簿中的条目数
	EntriesStored prometheus.Gauge

	// Dumps 输出全部条目的次数
	Dumps prometheus.Counter

	// Releases 登记簿被销毁的次数
	Releases prometheus.Counter
}

// NewMetrics 创建并注册一组 Prometheus 指标。
// reg 为 nil 时注册到 prometheus.DefaultRegisterer。
func NewMetrics(namespace string, reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)
	return &Metrics{
		EntriesAppended: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "entries_appended_total",
				Help:      "Total number of log entries appended to the registry",
			},
			[]string{"category"},
		),
		EntriesRejected: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "entries_rejected_total",
				Help:      "Total number of appends rejected for an unknown category",
			},
		),
		EntriesStored: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "entries_stored",
				Help:      "Number of entries currently held by the registry",
			},
		),
		Dumps: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "dumps_total",
				Help:      "Total number of dump operations",
			},
		),
		Releases: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "registry_releases_total",
				Help:      "Total number of times the registry was destroyed",
			},
		),
	}
}

// RecordAppend 记录一次成功追加，stored 为追加后的条目数。
func (m *Metrics) RecordAppend(category string, stored int) {
	if m == nil {
		return
	}
	m.EntriesAppended.WithLabelValues(category).Inc()
	m.EntriesStored.Set(float64(stored))
}

// RecordRejected 记录一次被拒绝的追加。
func (m *Metrics) RecordRejected() {
	if m == nil {
		return
	}
	m.EntriesRejected.Inc()
}

// RecordDump 记录一次输出操作。
func (m *Metrics) RecordDump() {
	if m == nil {
		return
	}
	m.Dumps.Inc()
}

// RecordRelease 记录一次销毁，存量归零。
func (m *Metrics) RecordRelease() {
	if m == nil {
		return
	}
	m.Releases.Inc()
	m.EntriesStored.Set(0)
}

// WriteText 以 Prometheus 文本格式输出 gatherer 中的全部指标。
func WriteText(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
