package models

import "time"

// Schedule is a bookable [StartDateTime, EndDateTime) slot, shared by all doctors.
type Schedule struct {
	ID            string    `json:"id"`
	StartDateTime time.Time `json:"startDateTime"`
	EndDateTime   time.Time `json:"endDateTime"`
	TimeModel
}

// DoctorSchedule binds a Schedule to a Doctor. IsBooked only ever moves
// from false to true.
type DoctorSchedule struct {
	DoctorID   string `json:"doctorId"`
	ScheduleID string `json:"scheduleId"`
	IsBooked   bool   `json:"isBooked"`
	TimeModel
}
