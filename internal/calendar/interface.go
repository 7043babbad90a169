package calendar

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Month returns the 42-day grid of a month with events overlaid.
	Month(ctx context.Context, input MonthInput) (MonthOutput, error)
	// ExportICS renders the month's events as an iCalendar file.
	ExportICS(ctx context.Context, input MonthInput) (ExportOutput, error)
	// Resolve turns a relative anchor like "next month" into a MonthInput.
	Resolve(ctx context.Context, anchor string) (MonthInput, error)
}
