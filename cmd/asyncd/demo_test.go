package main

import (
	"bytes"
	"context"
	"strings"
	"time"

	"github.com/fatih/color"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("demo", func() {
	var noColor bool

	BeforeEach(func() {
		noColor = color.NoColor
		color.NoColor = true
	})

	AfterEach(func() {
		color.NoColor = noColor
	})

	// Given a long task mid-run on the only worker
	// When an urgent task is submitted
	// Then the urgent task runs between the first and second long steps
	It("should interleave the urgent task after the first long step", func() {
		for range 5 {
			// Arrange
			var out bytes.Buffer
			d := &demoOptions{longSteps: 5, stepDuration: 20 * time.Millisecond}

			// Act
			err := runDemo(context.Background(), d, &out)

			// Assert
			Expect(err).NotTo(HaveOccurred())
			Expect(strings.Fields(strings.ReplaceAll(out.String(), " completed", "_completed"))).To(Equal([]string{
				"L1", "U", "U_completed", "L2", "L3", "L4", "L5", "L_completed",
			}))
		}
	})

	It("should stop waiting when the context is done", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
		defer cancel()

		var out bytes.Buffer
		err := runDemo(ctx, &demoOptions{longSteps: 100, stepDuration: 10 * time.Millisecond}, &out)

		Expect(err).To(MatchError(context.DeadlineExceeded))
	})
})
