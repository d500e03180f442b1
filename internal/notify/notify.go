// Package notify sends best-effort alerts about incoming inquiries: an
// immediate email per inquiry and a Redis-buffered daily digest. Every
// path is a no-op when its transport is not configured; nothing here may
// fail the inquiry write itself.
package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/smtp"
	"os"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/prisha-enterprises/backoffice/internal/models"
	"github.com/prisha-enterprises/backoffice/internal/redissvc"
)

var (
	alertFrom        = os.Getenv("ALERT_FROM")  // sender email
	alertTo          = os.Getenv("ALERT_TO")    // receiver email
	smtpServer       = os.Getenv("SMTP_SERVER") // smtp.example.com
	smtpPort         = os.Getenv("SMTP_PORT")   // e.g., 587
	smtpUser         = os.Getenv("SMTP_USER")
	smtpPassword     = os.Getenv("SMTP_PASS")
	smtpAuthDisabled = os.Getenv("SMTP_AUTH_DISABLED")

	rdb *redis.Client
	ctx context.Context
)

// SetRedisService enables the daily digest buffer.
func SetRedisService(rs *redissvc.RedisService) {
	rdb = rs.Rdb()
	ctx = rs.Ctx()
}

// DailyInquiryLogKey buffers the day's inquiries for the evening digest.
const DailyInquiryLogKey = "inquiries:log:daily"

// InquiryReceived records the inquiry for the digest and fires the alert
// email when SMTP is configured.
func InquiryReceived(q models.Inquiry) {
	logInquiryEvent(q)

	if smtpServer == "" || alertTo == "" {
		return
	}
	subject := fmt.Sprintf("New inquiry from %s", q.Name)
	body := fmt.Sprintf("Name: %s\nEmail: %s\nPhone: %s\nCompany: %s\nSource: %s\nProduct: %s\n\n%s\n\nReceived: %s",
		q.Name, q.Email, q.Phone, q.Company, q.Source, q.Product, q.Message, q.Date.Format(time.RFC3339))
	sendMail(subject, body, "")
}

type inquiryLogEntry struct {
	ID      string    `json:"id"`
	Name    string    `json:"name"`
	Source  string    `json:"source"`
	Product string    `json:"product,omitempty"`
	Time    time.Time `json:"time"`
}

func logInquiryEvent(q models.Inquiry) {
	if rdb == nil {
		return
	}
	entry := inquiryLogEntry{
		ID:      q.ID,
		Name:    q.Name,
		Source:  q.Source,
		Product: q.Product,
		Time:    q.Date,
	}
	data, _ := json.Marshal(entry)
	_ = rdb.RPush(ctx, DailyInquiryLogKey, data).Err()
}

// StartDailyDigest sleeps until the end of each day and mails a summary
// of everything buffered since the last one.
func StartDailyDigest(interval time.Duration) {
	for {
		now := time.Now()
		next := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 0, 0, now.Location())
		if now.After(next) {
			next = next.Add(interval)
		}
		time.Sleep(time.Until(next))
		SendDailyDigest()
	}
}

// SendDailyDigest drains the buffer and mails the aggregated summary.
func SendDailyDigest() {
	if rdb == nil {
		return
	}
	entries, err := rdb.LRange(ctx, DailyInquiryLogKey, 0, -1).Result()
	if err != nil || len(entries) == 0 {
		return
	}
	_ = rdb.Del(ctx, DailyInquiryLogKey).Err() // clear after reading

	var logs []inquiryLogEntry
	sourceCounts := make(map[string]int)
	for _, item := range entries {
		var entry inquiryLogEntry
		if err := json.Unmarshal([]byte(item), &entry); err == nil {
			logs = append(logs, entry)
			sourceCounts[entry.Source]++
		}
	}

	var sb strings.Builder
	sb.WriteString("<h2>Daily Inquiry Digest</h2>")
	sb.WriteString(fmt.Sprintf("<p>Total inquiries: <strong>%d</strong></p>", len(logs)))

	sb.WriteString("<h3>By Source</h3><ul>")
	for source, count := range sourceCounts {
		sb.WriteString(fmt.Sprintf("<li><code>%s</code>: %d</li>", source, count))
	}
	sb.WriteString("</ul>")

	sb.WriteString("<h3>Full List</h3><ul>")
	for _, entry := range logs {
		line := fmt.Sprintf("<li><b>%s</b> via <code>%s</code>", entry.Name, entry.Source)
		if entry.Product != "" {
			line += fmt.Sprintf(" about %s", entry.Product)
		}
		line += fmt.Sprintf(" at %s</li>", entry.Time.Format(time.RFC822))
		sb.WriteString(line)
	}
	sb.WriteString("</ul>")

	sendMail("Daily Inquiry Digest", sb.String(), "text/html")
}

func sendMail(subject, body, contentType string) {
	if smtpServer == "" || alertTo == "" {
		return
	}

	headers := []string{
		"From: " + alertFrom,
		"To: " + alertTo,
		"Subject: " + subject,
	}
	if contentType != "" {
		headers = append(headers,
			"MIME-Version: 1.0",
			fmt.Sprintf("Content-Type: %s; charset=\"UTF-8\"", contentType))
	}
	msg := strings.Join(append(headers, "", body), "\r\n")

	addr := fmt.Sprintf("%s:%s", smtpServer, smtpPort)
	auth := smtp.PlainAuth("", smtpUser, smtpPassword, smtpServer)
	if smtpAuthDisabled != "" {
		auth = nil
	}

	go func() {
		if err := smtp.SendMail(addr, auth, alertFrom, []string{alertTo}, []byte(msg)); err != nil {
			log.Printf("Failed to send alert email: %v\n", err)
		}
	}()
}
