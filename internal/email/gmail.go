package email

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"

	"github.com/softwarepar/softwarepar/internal/config"
)

// GmailSender implements Sender using the Gmail API.
type GmailSender struct {
	service       *gmail.Service
	senderAddress string
	senderName    string
}

// NewGmailSender creates a new GmailSender from email config. It accepts a
// service account credentials JSON with domain-wide delegation, or OAuth2
// client credentials plus a refresh token for the sender mailbox.
func NewGmailSender(ctx context.Context, cfg config.EmailConfig) (*GmailSender, error) {
	if cfg.SenderAddress == "" {
		return nil, fmt.Errorf("gmail: sender address is required")
	}

	var svc *gmail.Service
	var err error

	switch {
	case cfg.Gmail.CredentialsJSON != "":
		// Service account with domain-wide delegation, impersonating the sender
		jwtConfig, jwtErr := google.JWTConfigFromJSON([]byte(cfg.Gmail.CredentialsJSON), gmail.GmailSendScope)
		if jwtErr != nil {
			return nil, fmt.Errorf("gmail: failed to parse credentials: %w", jwtErr)
		}
		jwtConfig.Subject = cfg.SenderAddress
		svc, err = gmail.NewService(ctx, option.WithHTTPClient(jwtConfig.Client(ctx)))
	case cfg.Gmail.RefreshToken != "":
		// OAuth2 refresh token, for mailboxes without domain-wide delegation
		oauthCfg := &oauth2.Config{
			ClientID:     cfg.Gmail.ClientID,
			ClientSecret: cfg.Gmail.ClientSecret,
			Endpoint:     google.Endpoint,
			Scopes:       []string{gmail.GmailSendScope},
		}
		token := &oauth2.Token{RefreshToken: cfg.Gmail.RefreshToken}
		svc, err = gmail.NewService(ctx, option.WithHTTPClient(oauthCfg.Client(ctx, token)))
	default:
		return nil, fmt.Errorf("gmail: credentials are required")
	}
	if err != nil {
		return nil, fmt.Errorf("gmail: failed to create service: %w", err)
	}

	return &GmailSender{
		service:       svc,
		senderAddress: cfg.SenderAddress,
		senderName:    cfg.SenderName,
	}, nil
}

// Send sends an email via the Gmail API.
func (g *GmailSender) Send(ctx context.Context, msg Message) error {
	from := g.senderAddress
	if g.senderName != "" {
		from = fmt.Sprintf("%s <%s>", g.senderName, g.senderAddress)
	}

	// Build the MIME message
	var emailContent string
	if msg.HTMLBody != "" && msg.TextBody != "" {
		// Multipart alternative (HTML + text)
		boundary := "boundary_softwarepar_email"
		emailContent = strings.Join([]string{
			"From: " + from,
			"To: " + msg.To,
			"Subject: " + msg.Subject,
			"MIME-Version: 1.0",
			"Content-Type: multipart/alternative; boundary=" + boundary,
			"",
			"--" + boundary,
			"Content-Type: text/plain; charset=UTF-8",
			"Content-Transfer-Encoding: 7bit",
			"",
			msg.TextBody,
			"",
			"--" + boundary,
			"Content-Type: text/html; charset=UTF-8",
			"Content-Transfer-Encoding: 7bit",
			"",
			msg.HTMLBody,
			"",
			"--" + boundary + "--",
		}, "\r\n")
	} else if msg.HTMLBody != "" {
		emailContent = strings.Join([]string{
			"From: " + from,
			"To: " + msg.To,
			"Subject: " + msg.Subject,
			"MIME-Version: 1.0",
			"Content-Type: text/html; charset=UTF-8",
			"",
			msg.HTMLBody,
		}, "\r\n")
	} else {
		emailContent = strings.Join([]string{
			"From: " + from,
			"To: " + msg.To,
			"Subject: " + msg.Subject,
			"MIME-Version: 1.0",
			"Content-Type: text/plain; charset=UTF-8",
			"",
			msg.TextBody,
		}, "\r\n")
	}

	gmailMsg := &gmail.Message{
		Raw: base64.URLEncoding.EncodeToString([]byte(emailContent)),
	}

	_, err := g.service.Users.Messages.Send("me", gmailMsg).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("gmail: failed to send email: %w", err)
	}

	return nil
}
