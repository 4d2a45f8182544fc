package models

// Presentation is the display metadata a view attaches to an enum value.
type Presentation struct {
	Label string `json:"label"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

var fallbackPresentation = Presentation{Icon: "clock", Color: "gray"}

func (s ApplicationStatus) Presentation() Presentation {
	switch s {
	case StatusApplied:
		return Presentation{Label: "Applied", Icon: "send", Color: "blue"}
	case StatusInterview:
		return Presentation{Label: "Interview", Icon: "users", Color: "yellow"}
	case StatusOffer:
		return Presentation{Label: "Offer", Icon: "gift", Color: "green"}
	case StatusRejected:
		return Presentation{Label: "Rejected", Icon: "x-circle", Color: "red"}
	case StatusWithdrawn:
		return Presentation{Label: "Withdrawn", Icon: "undo", Color: "gray"}
	case StatusAccepted:
		return Presentation{Label: "Accepted", Icon: "check-circle", Color: "purple"}
	}
	p := fallbackPresentation
	p.Label = string(s)
	return p
}

func (t InterviewType) Presentation() Presentation {
	switch t {
	case InterviewPhone:
		return Presentation{Label: "Phone", Icon: "phone", Color: "blue"}
	case InterviewVideo:
		return Presentation{Label: "Video", Icon: "video", Color: "green"}
	case InterviewInPerson:
		return Presentation{Label: "In-person", Icon: "map-pin", Color: "purple"}
	case InterviewTechnical:
		return Presentation{Label: "Technical", Icon: "clock", Color: "orange"}
	case InterviewFinal:
		return Presentation{Label: "Final", Icon: "calendar", Color: "red"}
	}
	p := fallbackPresentation
	p.Label = string(t)
	return p
}

func (a ActivityType) Presentation() Presentation {
	switch a {
	case ActivityApplicationCreated:
		return Presentation{Label: "Application created", Icon: "plus", Color: "blue"}
	case ActivityStatusChange:
		return Presentation{Label: "Status changed", Icon: "clock", Color: "yellow"}
	case ActivityNotesUpdate:
		return Presentation{Label: "Notes updated", Icon: "message-square", Color: "gray"}
	case ActivityInterviewScheduled:
		return Presentation{Label: "Interview scheduled", Icon: "calendar", Color: "purple"}
	case ActivityInterviewCompleted:
		return Presentation{Label: "Interview completed", Icon: "check-circle", Color: "green"}
	}
	p := fallbackPresentation
	p.Label = string(a)
	return p
}
