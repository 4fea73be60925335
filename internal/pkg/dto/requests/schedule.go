package requests

type CreateSchedule struct {
	StartDate string `json:"startDate" validate:"required,date_yyyymmdd"`
	EndDate   string `json:"endDate" validate:"required,date_yyyymmdd"`
	StartTime string `json:"startTime" validate:"required,time_hhmm"`
	EndTime   string `json:"endTime" validate:"required,time_hhmm"`
}

type AssignDoctorSchedules struct {
	ScheduleIDs []string `json:"scheduleIds" validate:"required,min=1,dive,uuid"`
}

type ScheduleFilters struct {
	StartDateTime string `json:"startDateTime" validate:"omitempty,rfc3339"`
	EndDateTime   string `json:"endDateTime" validate:"omitempty,rfc3339"`
}
