package service

import (
	"time"

	"weekly-lottery/internal/core/domain"
)

// nopMetrics is used when no recorder is wired.
type nopMetrics struct{}

func (nopMetrics) EntryAccepted(string, int64)                    {}
func (nopMetrics) EntryRejected(string, string)                   {}
func (nopMetrics) PoolChanged(string, int64, int)                 {}
func (nopMetrics) DrawCompleted(string, domain.DrawStatus, int64) {}
func (nopMetrics) RewardsDelivered(string, int)                   {}
func (nopMetrics) SaveCompleted(error, time.Duration)             {}
