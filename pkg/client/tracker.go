package client

import "github.com/sirupsen/logrus"

// activityTracker remembers what was already logged or done during the current game
type activityTracker struct {
	keys   map[string]bool
	logger logrus.FieldLogger
}

func newActivityTracker(logger logrus.FieldLogger) *activityTracker {
	return &activityTracker{
		keys:   make(map[string]bool),
		logger: logger,
	}
}

// update logs the key the first time it is seen
func (a *activityTracker) update(key string) {
	if a.keys[key] {
		return
	}

	a.logger.Info(key)
	a.keys[key] = true
}

func (a *activityTracker) has(key string) bool {
	return a.keys[key]
}

func (a *activityTracker) add(key string) {
	a.keys[key] = true
}

func (a *activityTracker) clear() {
	a.keys = make(map[string]bool)
}
