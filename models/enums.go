package models

// ApplicationStatus is the pipeline stage of a job application.
type ApplicationStatus string

const (
	StatusApplied   ApplicationStatus = "Applied"
	StatusInterview ApplicationStatus = "Interview"
	StatusOffer     ApplicationStatus = "Offer"
	StatusRejected  ApplicationStatus = "Rejected"
	StatusWithdrawn ApplicationStatus = "Withdrawn"
	StatusAccepted  ApplicationStatus = "Accepted"
)

// ApplicationStatuses lists every status in pipeline order.
var ApplicationStatuses = []ApplicationStatus{
	StatusApplied, StatusInterview, StatusOffer, StatusRejected, StatusWithdrawn, StatusAccepted,
}

// Valid reports whether s is one of the known statuses.
func (s ApplicationStatus) Valid() bool {
	for _, v := range ApplicationStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// Closed reports whether the application no longer needs attention.
func (s ApplicationStatus) Closed() bool {
	return s == StatusRejected || s == StatusWithdrawn || s == StatusAccepted
}

type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

func (p Priority) Valid() bool {
	for _, v := range Priorities {
		if v == p {
			return true
		}
	}
	return false
}

type EmploymentType string

const (
	EmploymentFullTime   EmploymentType = "Full-time"
	EmploymentPartTime   EmploymentType = "Part-time"
	EmploymentContract   EmploymentType = "Contract"
	EmploymentInternship EmploymentType = "Internship"
)

var EmploymentTypes = []EmploymentType{
	EmploymentFullTime, EmploymentPartTime, EmploymentContract, EmploymentInternship,
}

func (e EmploymentType) Valid() bool {
	for _, v := range EmploymentTypes {
		if v == e {
			return true
		}
	}
	return false
}

type InterviewType string

const (
	InterviewPhone     InterviewType = "Phone"
	InterviewVideo     InterviewType = "Video"
	InterviewInPerson  InterviewType = "In-person"
	InterviewTechnical InterviewType = "Technical"
	InterviewFinal     InterviewType = "Final"
)

var InterviewTypes = []InterviewType{
	InterviewPhone, InterviewVideo, InterviewInPerson, InterviewTechnical, InterviewFinal,
}

type InterviewStatus string

const (
	InterviewScheduled   InterviewStatus = "Scheduled"
	InterviewCompleted   InterviewStatus = "Completed"
	InterviewCancelled   InterviewStatus = "Cancelled"
	InterviewRescheduled InterviewStatus = "Rescheduled"
)

var InterviewStatuses = []InterviewStatus{
	InterviewScheduled, InterviewCompleted, InterviewCancelled, InterviewRescheduled,
}

// ActivityType tags an activity log entry. Entries are written by database triggers.
type ActivityType string

const (
	ActivityApplicationCreated ActivityType = "application_created"
	ActivityStatusChange       ActivityType = "status_change"
	ActivityNotesUpdate        ActivityType = "notes_update"
	ActivityInterviewScheduled ActivityType = "interview_scheduled"
	ActivityInterviewCompleted ActivityType = "interview_completed"
)

var ActivityTypes = []ActivityType{
	ActivityApplicationCreated,
	ActivityStatusChange,
	ActivityNotesUpdate,
	ActivityInterviewScheduled,
	ActivityInterviewCompleted,
}
