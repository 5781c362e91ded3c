package events_test

import (
	"context"
	"testing"
	"time"

	"github.com/scheffer1/CVFast-sub000/internal/events"

	"github.com/stretchr/testify/assert"
)

func TestBus(t *testing.T) {
	t.Run("Should deliver to every subscriber in order", func(t *testing.T) {
		bus := events.NewBus()

		var first, second []string
		bus.SubscribeTouched(func(_ context.Context, evt events.CurriculumTouched) {
			first = append(first, evt.CurriculumID)
		})
		bus.SubscribeTouched(func(_ context.Context, evt events.CurriculumTouched) {
			second = append(second, evt.CurriculumID)
		})

		now := time.Now()
		bus.PublishTouched(context.Background(), events.CurriculumTouched{CurriculumID: "c1", At: now})
		bus.PublishTouched(context.Background(), events.CurriculumTouched{CurriculumID: "c2", At: now})

		assert.Equal(t, []string{"c1", "c2"}, first)
		assert.Equal(t, []string{"c1", "c2"}, second)
	})

	t.Run("Should tolerate publishing with no subscribers", func(t *testing.T) {
		bus := events.NewBus()
		assert.NotPanics(t, func() {
			bus.PublishTouched(context.Background(), events.CurriculumTouched{CurriculumID: "c1"})
		})
	})
}
