package scheduler_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/tupyy/async-engine/pkg/scheduler"
)

var _ = Describe("Set", func() {
	var (
		s   *scheduler.Scheduler
		set *scheduler.Set
	)

	BeforeEach(func() {
		set = scheduler.NewSet()
	})

	AfterEach(func() {
		if s != nil {
			s.Close()
			s = nil
		}
	})

	It("should drop members once they finish", func() {
		s = scheduler.NewScheduler(1)
		_, release := occupy(s)

		a := s.Submit(0, func(*scheduler.Async, any) bool { return false }, nil, nil)
		set.Add(a)
		set.Add(a)
		Expect(set.Len()).To(Equal(1))

		close(release)
		Eventually(set.IsEmpty).Should(BeTrue())
	})

	It("should not keep a handle that already finished", func() {
		s = scheduler.NewScheduler(0)
		a := s.Submit(0, func(*scheduler.Async, any) bool { return false }, nil, nil)

		set.Add(a)

		Expect(set.IsEmpty()).To(BeTrue())
	})

	It("should cancel every member", func() {
		s = scheduler.NewScheduler(1)
		_, release := occupy(s)
		defer close(release)

		a := s.Submit(0, func(*scheduler.Async, any) bool { return false }, nil, nil)
		b := s.Submit(0, func(*scheduler.Async, any) bool { return false }, nil, nil)
		set.Add(a)
		set.Add(b)

		set.Cancel()

		Expect(a.IsCanceled()).To(BeTrue())
		Expect(b.IsCanceled()).To(BeTrue())
		Expect(set.IsEmpty()).To(BeTrue())
	})

	It("should forget members on Clear without touching them", func() {
		s = scheduler.NewScheduler(1)
		_, release := occupy(s)

		a := s.Submit(0, func(*scheduler.Async, any) bool { return false }, nil, nil)
		set.Add(a)

		set.Clear()

		Expect(set.IsEmpty()).To(BeTrue())
		Expect(a.IsStopped()).To(BeFalse())
		close(release)
		Eventually(a.IsFinished).Should(BeTrue())
	})

	It("should wait for all members", func() {
		s = scheduler.NewScheduler(2)
		_, release := occupy(s)

		a := s.Submit(0, func(*scheduler.Async, any) bool { return false }, nil, nil)
		set.Add(a)
		go func() {
			time.Sleep(50 * time.Millisecond)
			close(release)
		}()
		blocked := s.Submit(0, func(*scheduler.Async, any) bool {
			time.Sleep(20 * time.Millisecond)
			return false
		}, nil, nil)
		set.Add(blocked)

		Expect(set.Wait(context.Background())).To(Succeed())
		Expect(a.IsFinished()).To(BeTrue())
		Expect(blocked.IsFinished()).To(BeTrue())
	})
})
