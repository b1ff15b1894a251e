package clock

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStepFiresAtDivider(t *testing.T) {
	c := New()
	var fastCount, slowCount int
	c.Register(1, 0, func() { fastCount++ })
	c.Register(3, 0, func() { slowCount++ })

	for i := 0; i < 9; i++ {
		c.Step()
	}

	assert.Equal(t, 9, fastCount)
	assert.Equal(t, 3, slowCount)
}

func TestRegistrationOrderIsFiringOrder(t *testing.T) {
	c := New()
	var order []string
	c.Register(1, 0, func() { order = append(order, "ppu") })
	c.Register(3, 0, func() { order = append(order, "cpu") })

	c.Step()
	c.Step()
	c.Step()

	assert.Equal(t, []string{"ppu", "ppu", "ppu", "cpu"}, order)
}

func TestStartStopsAtContextCancellation(t *testing.T) {
	c := New()
	var count int
	c.Register(1, 0, func() { count++ })

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c.Start(ctx, 1000, time.Millisecond)

	assert.Equal(t, 0, count, "Start should return immediately on an already-canceled context")
}

func TestStopEndsTheNextBatch(t *testing.T) {
	c := New()
	var count int
	c.Register(1, 0, func() { count++ })

	ctx := context.Background()
	go func() {
		c.Start(ctx, 10, time.Millisecond)
	}()

	time.Sleep(5 * time.Millisecond)
	c.Stop()
	time.Sleep(5 * time.Millisecond)

	snapshot := count
	time.Sleep(20 * time.Millisecond)

	assert.Equal(t, snapshot, count, "no further steps should run after Stop")
}
