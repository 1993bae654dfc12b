package rewards

import "time"

// NoopMetricsCollector is a no-op implementation of MetricsCollector
type NoopMetricsCollector struct{}

func (n *NoopMetricsCollector) RecordMatrixLoad(time.Duration, int, int) {}
func (n *NoopMetricsCollector) RecordRecommendation(string, float64)     {}
func (n *NoopMetricsCollector) RecordCardMiss(string)                    {}
func (n *NoopMetricsCollector) RecordError(string, string)               {}
