package mail

type HotLeadAlertData struct {
	Name                 string
	Source               string
	CompletionPercentage int
	MaskedEmail          string
	MaskedPhone          string
	MaskedDebtAmount     string
	DashboardLink        string
}

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
	AlertsTo string
}
