package file

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestScheduleRunsJobOnInterval(t *testing.T) {
	t.Parallel()

	ticks := make(chan struct{}, 8)
	scheduler, err := Schedule(20*time.Millisecond, func() {
		select {
		case ticks <- struct{}{}:
		default:
		}
	})
	require.NoError(t, err)
	defer scheduler.Stop()

	select {
	case <-ticks:
	case <-time.After(5 * time.Second):
		t.Fatal("scheduled job never ran")
	}
}

func TestScheduleRejectsNonPositiveInterval(t *testing.T) {
	t.Parallel()

	_, err := Schedule(0, func() {})
	require.Error(t, err)

	_, err = Schedule(-time.Second, func() {})
	require.Error(t, err)
}
