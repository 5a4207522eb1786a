package usecase

import (
	"fmt"
	"time"
)

// DefaultDeliveryBusinessDays is the promised delivery span.
const DefaultDeliveryBusinessDays = 2

// deliveryDateLayout is the wire format for order dates.
const deliveryDateLayout = "2006-01-02"

// DeliveryDate advances from start one calendar day at a time, counting
// only Monday-Friday, and returns the date on which the count reaches
// businessDays. There is no holiday calendar. A malformed start date
// returns the underlying parse error; callers translate it.
func DeliveryDate(start string, businessDays int) (time.Time, error) {
	day, err := time.Parse(deliveryDateLayout, start)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse delivery start date: %w", err)
	}

	count := 0
	for count < businessDays {
		day = day.AddDate(0, 0, 1)
		if isBusinessDay(day) {
			count++
		}
	}
	return day, nil
}

func isBusinessDay(day time.Time) bool {
	weekday := day.Weekday()
	return weekday != time.Saturday && weekday != time.Sunday
}
