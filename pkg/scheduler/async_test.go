package scheduler_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/tupyy/async-engine/pkg/scheduler"
)

var _ = Describe("Async", func() {
	var s *scheduler.Scheduler

	AfterEach(func() {
		if s != nil {
			s.Close()
			s = nil
		}
	})

	Context("callbacks", func() {
		It("should run callbacks once in registration order", func() {
			s = scheduler.NewScheduler(1)
			_, release := occupy(s)
			rec := &recorder{}

			a := s.Submit(0, func(*scheduler.Async, any) bool { return false }, nil, nil)
			a.AddCallback(func(*scheduler.Async) { rec.add("first") })
			a.AddCallback(func(*scheduler.Async) { rec.add("second") })
			Expect(rec.get()).To(BeEmpty())

			close(release)
			Eventually(rec.get).Should(Equal([]string{"first", "second"}))
			Consistently(rec.get, 50*time.Millisecond).Should(HaveLen(2))
		})

		It("should run a callback immediately on a finished handle", func() {
			s = scheduler.NewScheduler(0)
			a := s.Submit(0, func(*scheduler.Async, any) bool { return false }, nil, nil)

			var got *scheduler.Async
			a.AddCallback(func(cb *scheduler.Async) { got = cb })

			Expect(got).To(BeIdenticalTo(a))
		})
	})

	Context("result", func() {
		It("should expose the result set by the step", func() {
			s = scheduler.NewScheduler(1)

			a := s.Submit(0, func(a *scheduler.Async, data any) bool {
				a.SetResult(data.(int) * 2)
				return false
			}, 21, nil)

			a.Wait()
			Expect(a.IsFinished()).To(BeTrue())
			Expect(a.Result()).To(Equal(42))
			Expect(a.Err()).NotTo(HaveOccurred())
		})
	})

	Context("waiting", func() {
		It("should stop waiting when the context is done", func() {
			s = scheduler.NewScheduler(1)
			a, release := occupy(s)
			defer close(release)

			ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
			defer cancel()

			err := a.WaitContext(ctx)
			Expect(err).To(MatchError(context.DeadlineExceeded))
			Expect(a.IsStopped()).To(BeFalse())
		})

		It("should return at once for a finished handle", func() {
			s = scheduler.NewScheduler(0)
			a := s.Submit(0, func(*scheduler.Async, any) bool { return false }, nil, nil)

			Expect(a.WaitContext(context.Background())).To(Succeed())
		})
	})

	Context("identity", func() {
		It("should give every handle its own id", func() {
			s = scheduler.NewScheduler(0)
			a := s.Submit(0, func(*scheduler.Async, any) bool { return false }, nil, nil)
			b := s.Submit(0, func(*scheduler.Async, any) bool { return false }, nil, nil)

			Expect(a.ID()).NotTo(Equal(b.ID()))
		})
	})

	DescribeTable("state names",
		func(state scheduler.State, name string, terminal bool) {
			Expect(state.String()).To(Equal(name))
			Expect(state.Terminal()).To(Equal(terminal))
		},
		Entry("pending", scheduler.StatePending, "pending", false),
		Entry("running", scheduler.StateRunning, "running", false),
		Entry("waiting", scheduler.StateWaiting, "waiting", false),
		Entry("canceled", scheduler.StateCanceled, "canceled", true),
		Entry("completed", scheduler.StateCompleted, "completed", true),
	)
})
