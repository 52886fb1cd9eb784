package timer_test

import (
	"testing"
	"time"

	"github.com/hugoinit/hugoinit/pkg/utils/timer"
	"github.com/stretchr/testify/require"
)

func TestGetTimingBeforeStart(t *testing.T) {
	t.Parallel()

	tmr := timer.New()

	total, stage := tmr.GetTiming()

	require.Equal(t, time.Duration(0), total)
	require.Equal(t, time.Duration(0), stage)
}

func TestGetTimingAfterStart(t *testing.T) {
	t.Parallel()

	tmr := timer.New()
	tmr.Start()

	time.Sleep(5 * time.Millisecond)

	total, stage := tmr.GetTiming()

	require.Positive(t, total)
	require.Positive(t, stage)
	require.GreaterOrEqual(t, total, stage)
}

func TestNewStageResetsStageClock(t *testing.T) {
	t.Parallel()

	tmr := timer.New()
	tmr.Start()

	time.Sleep(5 * time.Millisecond)
	tmr.NewStage()

	total, stage := tmr.GetTiming()

	require.Greater(t, total, stage)
}
