package metrics_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tupyy/async-engine/pkg/metrics"
	"github.com/tupyy/async-engine/pkg/scheduler"
)

var _ = Describe("Exporter", func() {
	var (
		reg *prom.Registry
		e   *metrics.Exporter
	)

	BeforeEach(func() {
		reg = prom.NewRegistry()

		var err error
		e, err = metrics.NewExporter("test", reg, metrics.ExporterOptions{})
		Expect(err).NotTo(HaveOccurred())
	})

	It("should reuse collectors already registered", func() {
		again, err := metrics.NewExporter("test", reg, metrics.ExporterOptions{})
		Expect(err).NotTo(HaveOccurred())

		again.RecordWorkers(4)

		count, err := testutil.GatherAndCount(reg, "test_pool_workers")
		Expect(err).NotTo(HaveOccurred())
		Expect(count).To(Equal(1))
	})

	It("should count finished tasks by state", func() {
		e.RecordTaskFinished(scheduler.StateCompleted)
		e.RecordTaskFinished(scheduler.StateCompleted)
		e.RecordTaskFinished(scheduler.StateCanceled)

		count, err := testutil.GatherAndCount(reg, "test_tasks_finished_total")
		Expect(err).NotTo(HaveOccurred())
		Expect(count).To(Equal(2))
	})

	It("should observe step durations", func() {
		e.RecordStepDuration(-1, 2*time.Millisecond)
		e.RecordStepDuration(10, time.Millisecond)

		count, err := testutil.GatherAndCount(reg, "test_step_duration_seconds")
		Expect(err).NotTo(HaveOccurred())
		Expect(count).To(Equal(2))
	})

	It("should follow a running scheduler", func() {
		s := scheduler.NewScheduler(2, scheduler.WithMetrics(e))

		a := s.Submit(0, func(*scheduler.Async, any) bool { return false }, nil, nil)
		a.Wait()
		s.Close()

		count, err := testutil.GatherAndCount(reg, "test_tasks_finished_total", "test_pool_workers")
		Expect(err).NotTo(HaveOccurred())
		Expect(count).To(Equal(2))
	})

	It("should ignore a nil exporter", func() {
		var nilExporter *metrics.Exporter
		Expect(func() { nilExporter.RecordQueueDepth(3) }).NotTo(Panic())
	})

	DescribeTable("priority labels",
		func(priority int, label string) {
			Expect(metrics.PriorityLabel(priority)).To(Equal(label))
		},
		Entry("boosted", scheduler.PriorityMustRunNext, "must_run_next"),
		Entry("negative", -3, "urgent"),
		Entry("default", 0, "normal"),
		Entry("positive", 10, "background"),
	)
})
