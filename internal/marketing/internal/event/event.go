package event

const RegistrationEventName = "marketing_registration_events"

const (
	// 等候名单登记
	KindWaitlist = "waitlist"
	// 教练入驻申请
	KindCoachApplication = "coach_application"
)

type RegistrationEvent struct {
	Kind  string `json:"kind"`
	Email string `json:"email"`
	Name  string `json:"name"`
}
