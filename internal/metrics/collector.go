// Package metrics 以 Prometheus 指标导出注册表内容
package metrics

import (
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"instreg/pkg/registry"
)

var instancesDesc = prometheus.NewDesc(
	"instreg_registered_instances",
	"Number of registered instances by type label.",
	[]string{"type"},
	nil,
)

// Collector 在每次采集时根据注册表当前内容计算各类型的条目数
type Collector struct {
	reg registry.Registry
}

// NewCollector 创建注册表指标采集器
func NewCollector(reg registry.Registry) *Collector {
	return &Collector{reg: reg}
}

// Describe 实现 prometheus.Collector
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- instancesDesc
}

// Collect 实现 prometheus.Collector
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	counts := make(map[string]int)
	for _, s := range c.reg.List() {
		counts[s.Type]++
	}

	for typeLabel, n := range counts {
		ch <- prometheus.MustNewConstMetric(instancesDesc, prometheus.GaugeValue, float64(n), typeLabel)
	}
}

// WriteText 以 Prometheus 文本格式写出注册表指标
func WriteText(w io.Writer, reg registry.Registry) error {
	promReg := prometheus.NewRegistry()
	if err := promReg.Register(NewCollector(reg)); err != nil {
		return err
	}

	families, err := promReg.Gather()
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
