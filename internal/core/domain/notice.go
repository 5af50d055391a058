package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NoticeKind identifies the event a notice reports.
type NoticeKind string

const (
	NoticeEntryAccepted   NoticeKind = "ENTRY_ACCEPTED"
	NoticeDrawingStarted  NoticeKind = "DRAWING_STARTED"
	NoticeNoEntries       NoticeKind = "NO_ENTRIES"
	NoticeWinner          NoticeKind = "WINNER_ANNOUNCED"
	NoticePrizeAwarded    NoticeKind = "PRIZE_AWARDED"
	NoticePrizeDeferred   NoticeKind = "PRIZE_DEFERRED"
	NoticeOfflineDelivery NoticeKind = "OFFLINE_PRIZE_DELIVERED"
	NoticeNextDrawing     NoticeKind = "NEXT_DRAWING"
	NoticeStatus          NoticeKind = "STATUS"
)

// Notice is a plain-text message for one participant or the whole server.
type Notice struct {
	Kind        NoticeKind `json:"kind"`
	Participant *uuid.UUID `json:"participant,omitempty"`
	Currency    string     `json:"currency,omitempty"`
	Amount      int64      `json:"amount,omitempty"`
	Message     string     `json:"message"`
	At          time.Time  `json:"at"`
}

func EntryAcceptedNotice(participant uuid.UUID, currency CurrencyInfo, amount int64, formatted string, at time.Time) Notice {
	return Notice{
		Kind:        NoticeEntryAccepted,
		Participant: &participant,
		Currency:    currency.ID,
		Amount:      amount,
		Message:     fmt.Sprintf("You have entered the %s lottery with %s!", currency.Name, formatted),
		At:          at,
	}
}

func DrawingStartedNotice(at time.Time) Notice {
	return Notice{
		Kind:    NoticeDrawingStarted,
		Message: "The weekly lottery drawing is now taking place!",
		At:      at,
	}
}

func NoEntriesNotice(currency CurrencyInfo, at time.Time) Notice {
	return Notice{
		Kind:     NoticeNoEntries,
		Currency: currency.ID,
		Message:  fmt.Sprintf("No entries were made for the %s lottery this week.", currency.Name),
		At:       at,
	}
}

func WinnerNotice(winner uuid.UUID, currency CurrencyInfo, prize int64, formatted string, at time.Time) Notice {
	return Notice{
		Kind:        NoticeWinner,
		Participant: &winner,
		Currency:    currency.ID,
		Amount:      prize,
		Message:     fmt.Sprintf("%s has won the %s lottery! Prize: %s!", winner, currency.Name, formatted),
		At:          at,
	}
}

func PrizeAwardedNotice(winner uuid.UUID, currency CurrencyInfo, prize int64, formatted string, at time.Time) Notice {
	return Notice{
		Kind:        NoticePrizeAwarded,
		Participant: &winner,
		Currency:    currency.ID,
		Amount:      prize,
		Message: fmt.Sprintf("Congratulations! You won the %s lottery! Your prize of %s has been added to your account.",
			currency.Name, formatted),
		At: at,
	}
}

func PrizeDeferredNotice(winner uuid.UUID, currency CurrencyInfo, prize int64, formatted string, at time.Time) Notice {
	return Notice{
		Kind:        NoticePrizeDeferred,
		Participant: &winner,
		Currency:    currency.ID,
		Amount:      prize,
		Message:     fmt.Sprintf("Your %s lottery prize of %s will be delivered when you next join.", currency.Name, formatted),
		At:          at,
	}
}

func OfflineDeliveryNotice(reward PendingReward, currency CurrencyInfo, formatted string, at time.Time) Notice {
	p := reward.ParticipantID
	return Notice{
		Kind:        NoticeOfflineDelivery,
		Participant: &p,
		Currency:    currency.ID,
		Amount:      reward.Amount,
		Message: fmt.Sprintf("While you were away, you won the %s lottery on %s! Your prize of %s has been added to your account.",
			currency.Name, reward.WonAt.Format("January 2"), formatted),
		At: at,
	}
}

func NextDrawingNotice(next time.Time, at time.Time) Notice {
	return Notice{
		Kind:    NoticeNextDrawing,
		Message: "The next lottery drawing will take place on " + FormatDrawingTime(next),
		At:      at,
	}
}

// StatusNotice renders the multi-line status broadcast.
func StatusNotice(report StatusReport, at time.Time) Notice {
	var b strings.Builder
	b.WriteString("===== Weekly Lottery Status =====\n")
	for _, p := range report.Pools {
		fmt.Fprintf(&b, "%s Pool: %s (%d participants)\n", p.Name, p.FormattedTotal, p.Participants)
	}
	fmt.Fprintf(&b, "Next drawing: %s (%s remaining)\n", FormatDrawingTime(report.NextDrawing), report.Remaining)
	b.WriteString("===========================")
	return Notice{
		Kind:    NoticeStatus,
		Message: b.String(),
		At:      at,
	}
}
