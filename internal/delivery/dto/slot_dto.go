package dto

import "github.com/google/uuid"

// Response DTOs

// SlotResponse is one entry of a doctor's daily grid. Time is clinic-local
// HH:MM, Datetime the same instant in RFC3339 for booking round trips.
type SlotResponse struct {
	Time      string `json:"time"`
	Datetime  string `json:"datetime"`
	Available bool   `json:"available"`
}

type DaySlotsResponse struct {
	DoctorID uuid.UUID      `json:"doctor_id"`
	Date     string         `json:"date"` // YYYY-MM-DD
	Slots    []SlotResponse `json:"slots"`
}
