package mail

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

type digestData struct {
	Date      string
	Prospects []digestRow
}

type digestRow struct {
	Name        string
	Company     string
	URL         string
	WarmthScore int
	NextCheckIn string
}
