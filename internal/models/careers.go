package models

// JobApplication is one row of the careers job application list.
type JobApplication struct {
	FullName  string     `json:"full_name"`
	Email     string     `json:"email"`
	Phone     FlexString `json:"phone"`
	Gender    *string    `json:"gender"`
	JobTitle  string     `json:"job_title"`
	CreatedAt string     `json:"created_at"`
	ResumeURL string     `json:"resume_url"`
}

// InterviewSchedule is one row of the careers interview schedule list.
type InterviewSchedule struct {
	AppFullName   string     `json:"app_full_name"`
	AppEmail      string     `json:"app_email"`
	AppPhone      FlexString `json:"app_phone"`
	JobTitle      string     `json:"job_title"`
	ScheduleDate  string     `json:"schedule_date"`
	InterviewType string     `json:"interview_type"`
	EmployeeID    FlexString `json:"employee_id"`
	Status        string     `json:"status"`
}

const (
	InterviewOnline  = "online"
	InterviewOffline = "offline"
)
