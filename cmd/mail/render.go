package main

import (
	"encoding/json"
	"fmt"
	"html/template"
	"path/filepath"
	"time"

	"github.com/tythe-barn/time-tracker/backend/internal/domain"
	"github.com/wneessen/go-mail"
)

type mailTemplate struct {
	file    string
	subject string
}

var mailTemplates = map[string]mailTemplate{
	"shift_closed": {file: "shift_closed_email.html", subject: "Tythe Barn Time Tracker - Shift Closed"},
}

var templateFuncs = template.FuncMap{
	"formatTime": func(t time.Time) string {
		return t.Format("Mon 02 Jan 2006 15:04")
	},
	"formatHours": func(hours float64) string {
		return fmt.Sprintf("%.2f", hours)
	},
}

// decodedMail 是从队列中取出并解码后的邮件，Data 已还原为具体类型
type decodedMail struct {
	Type string
	To   string
	Data any
}

func decodeMailMessage(body []byte) (*decodedMail, error) {
	var raw struct {
		Type string          `json:"type"`
		To   string          `json:"to"`
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, err
	}

	decoded := &decodedMail{Type: raw.Type, To: raw.To}

	switch raw.Type {
	case "shift_closed":
		data := domain.ShiftClosedMailData{}
		if err := json.Unmarshal(raw.Data, &data); err != nil {
			return nil, err
		}
		decoded.Data = data
	default:
		return nil, fmt.Errorf("不支持的邮件类型: %s", raw.Type)
	}

	return decoded, nil
}

func loadTemplates(dir string) (map[string]*template.Template, error) {
	templates := make(map[string]*template.Template, len(mailTemplates))
	for mailType, mt := range mailTemplates {
		tmpl, err := template.New(mt.file).Funcs(templateFuncs).ParseFiles(filepath.Join(dir, mt.file))
		if err != nil {
			return nil, err
		}
		templates[mailType] = tmpl
	}
	return templates, nil
}

func buildMail(from string, message *decodedMail, templates map[string]*template.Template) (*mail.Msg, error) {
	tmpl, ok := templates[message.Type]
	if !ok {
		return nil, fmt.Errorf("不支持的邮件类型: %s", message.Type)
	}

	msg := mail.NewMsg()
	if err := msg.From(from); err != nil {
		return nil, fmt.Errorf("无法设置邮件发件人: %w", err)
	}
	if err := msg.To(message.To); err != nil {
		return nil, fmt.Errorf("无法设置邮件收件人: %w", err)
	}
	if err := msg.SetBodyHTMLTemplate(tmpl, message.Data); err != nil {
		return nil, fmt.Errorf("无法设置邮件正文: %w", err)
	}
	msg.Subject(mailTemplates[message.Type].subject)

	return msg, nil
}
