package mail

import (
	"bytes"
	"fmt"
	"html/template"

	"gopkg.in/gomail.v2"

	"github.com/daware/warmtrack/internal/entity"
)

// digestTemplate is embedded so the binary has no runtime asset dependency.
var digestTemplate = template.Must(template.New("digest").Parse(`
<h2>Warming queue for {{.Date}}</h2>
<p>{{len .Prospects}} prospect(s) due for a check-in today, warmest first:</p>
<table border="1" cellpadding="4">
  <tr><th>Name</th><th>Company</th><th>Profile</th><th>Warmth</th><th>Due</th></tr>
  {{range .Prospects}}
  <tr>
    <td>{{.Name}}</td>
    <td>{{.Company}}</td>
    <td><a href="{{.URL}}">{{.URL}}</a></td>
    <td>{{.WarmthScore}}</td>
    <td>{{.NextCheckIn}}</td>
  </tr>
  {{end}}
</table>
`))

func NewEmailSender(host string, port int, user, password string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     user,
	}
}

// SendDueDigest emails the due-today queue in the order it was handed over.
func (s *EmailSender) SendDueDigest(to string, prospects []*entity.Prospect) error {
	data := digestData{Date: entity.Today()}
	for _, p := range prospects {
		data.Prospects = append(data.Prospects, digestRow{
			Name:        p.Name,
			Company:     p.Company,
			URL:         p.LinkedInURL,
			WarmthScore: p.WarmthScore,
			NextCheckIn: p.NextCheckIn,
		})
	}

	var body bytes.Buffer
	if err := digestTemplate.Execute(&body, data); err != nil {
		return fmt.Errorf("render digest template: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("Warming queue: %d due on %s", len(prospects), data.Date))
	m.SetBody("text/html", body.String())

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("send digest email: %w", err)
	}
	return nil
}
