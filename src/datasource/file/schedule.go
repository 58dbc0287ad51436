package file

import (
	"fmt"
	"time"

	"github.com/robfig/cron"
)

// Schedule runs job every interval until the returned scheduler is stopped.
// It covers deployments that re-run preprocessing on a timer instead of
// watching the filesystem for new exports.
func Schedule(interval time.Duration, job func()) (*cron.Cron, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("schedule: interval must be positive, got %s", interval)
	}

	c := cron.New()
	if err := c.AddFunc(fmt.Sprintf("@every %s", interval), job); err != nil {
		return nil, fmt.Errorf("schedule job: %w", err)
	}
	c.Start()
	return c, nil
}
