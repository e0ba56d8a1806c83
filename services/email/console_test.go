package emailsvc

import (
	"bytes"
	"net/mail"
	"testing"
	texttmpl "text/template"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/masomo-desk/core"
	"github.com/trezcool/masomo-desk/tests"
)

func TestConsoleService_SendMessages(t *testing.T) {
	conf := &core.Config{AppName: "Student Management System"}
	conf.DefaultFromEmail = mail.Address{Name: "School", Address: "noreply@school.test"}
	out := new(bytes.Buffer)
	svc := NewConsoleService(out, conf, &testutil.Logger{})

	amy := []mail.Address{{Name: "Amy", Address: "amy@test.cd"}}
	svc.SendMessages(
		&core.EmailMessage{To: amy, Subject: "New notification", BodyStr: "Fees are due"},
		&core.EmailMessage{
			To:           amy,
			Subject:      "Event",
			Template:     texttmpl.Must(texttmpl.New("event").Parse("{{.Title}} on {{.Date}}")),
			TemplateData: eventData{Title: "Sports day", Date: "2024-04-02"},
		},
		&core.EmailMessage{Subject: "no recipient", BodyStr: "dropped"},
		&core.EmailMessage{To: amy, Subject: "no content"},
	)

	sent := svc.SentMessages()
	require.Len(t, sent, 2)
	bodies := []string{sent[0].TextContent, sent[1].TextContent}
	assert.ElementsMatch(t, []string{"Fees are due", "Sports day on 2024-04-02"}, bodies)
	assert.Contains(t, out.String(), "Subject: [Student Management System] New notification")
	assert.Contains(t, out.String(), `From: "School" <noreply@school.test>`)
	assert.NotContains(t, out.String(), "dropped")
}

type eventData struct {
	Title string
	Date  string
}
