package notify

import (
	"context"
	"fmt"
	"log"
	"time"

	"familytree/backend/internal/models"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
)

// SESNotifier sends notification emails through Amazon SES.
type SESNotifier struct {
	client    *sesv2.Client
	fromEmail string
	baseURL   string
}

// NewSESNotifier builds the SES-backed notifier. Returns an error when the
// AWS configuration cannot be loaded.
func NewSESNotifier(region, fromEmail, baseURL string) (*SESNotifier, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.TODO(),
		awsconfig.WithRegion(region),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	log.Printf("Email notifications enabled: from=%s, region=%s", fromEmail, region)
	return &SESNotifier{
		client:    sesv2.NewFromConfig(cfg),
		fromEmail: fromEmail,
		baseURL:   baseURL,
	}, nil
}

func (n *SESNotifier) RequestSubmitted(ctx context.Context, email, name string, score int, autoApproved bool) {
	subject := "Votre demande de validation familiale"
	var body string
	if autoApproved {
		body = fmt.Sprintf("Bonjour %s,\n\nVotre connexion familiale a été validée automatiquement (score: %d/100).\nVous pouvez maintenant consulter l'arbre familial: %s\n", name, score, n.baseURL)
	} else {
		body = fmt.Sprintf("Bonjour %s,\n\nVotre demande a été soumise pour validation (score: %d/100).\nUn administrateur l'examinera prochainement.\n", name, score)
	}
	n.send(ctx, email, subject, body)
}

func (n *SESNotifier) RequestReviewed(ctx context.Context, email, name string, status models.RequestStatus, comment string) {
	var subject, body string
	if status == models.StatusApproved {
		subject = "Demande approuvée"
		body = fmt.Sprintf("Bonjour %s,\n\nVotre demande a été approuvée. Vous avez été ajouté(e) à l'arbre familial: %s\n", name, n.baseURL)
	} else {
		subject = "Demande rejetée"
		body = fmt.Sprintf("Bonjour %s,\n\nVotre demande de validation familiale a été rejetée.\n", name)
	}
	if comment != "" {
		body += fmt.Sprintf("\nCommentaire: %s\n", comment)
	}
	n.send(ctx, email, subject, body)
}

// send dispatches the email in the background. The caller's context may be
// cancelled as soon as the response is written, so the send gets its own
// deadline.
func (n *SESNotifier) send(_ context.Context, toEmail, subject, textBody string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		input := &sesv2.SendEmailInput{
			FromEmailAddress: aws.String(n.fromEmail),
			Destination: &types.Destination{
				ToAddresses: []string{toEmail},
			},
			Content: &types.EmailContent{
				Simple: &types.Message{
					Subject: &types.Content{
						Data:    aws.String(subject),
						Charset: aws.String("UTF-8"),
					},
					Body: &types.Body{
						Text: &types.Content{
							Data:    aws.String(textBody),
							Charset: aws.String("UTF-8"),
						},
					},
				},
			},
		}

		if _, err := n.client.SendEmail(ctx, input); err != nil {
			log.Printf("Failed to send notification email to %s: %v", toEmail, err)
		}
	}()
}
