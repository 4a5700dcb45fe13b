package mail

type LeadClosedEmailData struct {
	AgentName string
	LeadName  string
}
