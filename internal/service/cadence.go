package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
)

// Cadence computes drawing times from a standard 5-field cron expression.
type Cadence struct {
	expr     string
	schedule cron.Schedule
	loc      *time.Location
}

// NewCadence parses expr in loc. "@every" style delays are rejected because a
// drawing must land on a calendar time.
func NewCadence(expr string, loc *time.Location) (*Cadence, error) {
	if loc == nil {
		loc = time.Local
	}
	expr = strings.TrimSpace(expr)
	if strings.HasPrefix(expr, "@every") {
		return nil, fmt.Errorf("draw schedule %q: fixed delays are not supported", expr)
	}

	sched, err := cron.ParseStandard(expr)
	if err != nil {
		return nil, fmt.Errorf("parsing draw schedule %q: %w", expr, err)
	}
	spec, ok := sched.(*cron.SpecSchedule)
	if !ok {
		return nil, fmt.Errorf("draw schedule %q: unsupported schedule type", expr)
	}
	if !strings.HasPrefix(expr, "TZ=") && !strings.HasPrefix(expr, "CRON_TZ=") {
		spec.Location = loc
	}

	c := &Cadence{expr: expr, schedule: spec, loc: spec.Location}
	if c.Next(time.Now()).IsZero() {
		return nil, fmt.Errorf("draw schedule %q never fires", expr)
	}
	return c, nil
}

// Next returns the first drawing time strictly after from.
func (c *Cadence) Next(from time.Time) time.Time {
	return c.schedule.Next(from)
}

// Location is the zone drawing times are computed in.
func (c *Cadence) Location() *time.Location {
	return c.loc
}

func (c *Cadence) String() string {
	return c.expr
}
