package email

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
	PortalURL   string // Base URL of the supplier portal (e.g., "https://zelo.example.com")
}

type SMTPEmailService struct {
	config SMTPConfig
	dialer *gomail.Dialer
}

func NewSMTPEmailService(config SMTPConfig) *SMTPEmailService {
	dialer := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)

	return &SMTPEmailService{
		config: config,
		dialer: dialer,
	}
}

func (s *SMTPEmailService) portalLink(action, token string) string {
	return fmt.Sprintf("%s/supplier?action=%s&token=%s", s.config.PortalURL, action, token)
}

// SendAssignmentEmail notifies a supplier that an assistance was assigned
// to them and carries the acceptance link.
func (s *SMTPEmailService) SendAssignmentEmail(to, buildingName, description, acceptanceToken string) error {
	acceptURL := s.portalLink("accept", acceptanceToken)

	subject := fmt.Sprintf("Nova assistência atribuída - %s", buildingName)
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Nova Assistência Atribuída</h2>
			<p>Foi-lhe atribuída uma nova assistência no edifício <strong>%s</strong>.</p>
			<p><strong>Descrição:</strong> %s</p>
			<p>Para aceitar ou recusar, utilize o link abaixo:</p>
			<p><a href="%s">Responder à Assistência</a></p>
			<p>Ou copie e cole este URL no seu navegador:</p>
			<p>%s</p>
		</body>
		</html>
	`, buildingName, description, acceptURL, acceptURL)

	plainBody := fmt.Sprintf(`
Nova Assistência Atribuída

Foi-lhe atribuída uma nova assistência no edifício %s.

Descrição: %s

Para aceitar ou recusar, visite:
%s
	`, buildingName, description, acceptURL)

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

// SendSchedulingEmail asks the supplier to pick a date after accepting
// without one.
func (s *SMTPEmailService) SendSchedulingEmail(to, buildingName, schedulingToken string) error {
	scheduleURL := s.portalLink("schedule", schedulingToken)

	subject := fmt.Sprintf("Agendamento pendente - %s", buildingName)
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Agendamento Pendente</h2>
			<p>A assistência no edifício <strong>%s</strong> aguarda agendamento.</p>
			<p>Escolha uma data através do link abaixo:</p>
			<p><a href="%s">Agendar Assistência</a></p>
			<p>Ou copie e cole este URL no seu navegador:</p>
			<p>%s</p>
		</body>
		</html>
	`, buildingName, scheduleURL, scheduleURL)

	plainBody := fmt.Sprintf(`
Agendamento Pendente

A assistência no edifício %s aguarda agendamento.

Escolha uma data visitando:
%s
	`, buildingName, scheduleURL)

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

// SendValidationRequestEmail asks the requester to confirm the work was
// done after the supplier marks it complete.
func (s *SMTPEmailService) SendValidationRequestEmail(to, buildingName, validationToken string) error {
	validateURL := s.portalLink("validate", validationToken)

	subject := fmt.Sprintf("Validação de trabalho concluído - %s", buildingName)
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Trabalho Concluído</h2>
			<p>O fornecedor marcou como concluída a assistência no edifício <strong>%s</strong>.</p>
			<p>Por favor confirme que o trabalho foi realizado:</p>
			<p><a href="%s">Validar Conclusão</a></p>
			<p>Ou copie e cole este URL no seu navegador:</p>
			<p>%s</p>
		</body>
		</html>
	`, buildingName, validateURL, validateURL)

	plainBody := fmt.Sprintf(`
Trabalho Concluído

O fornecedor marcou como concluída a assistência no edifício %s.

Por favor confirme que o trabalho foi realizado visitando:
%s
	`, buildingName, validateURL)

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

// SendSameDayReminderEmail reminds the supplier of a visit scheduled for
// today.
func (s *SMTPEmailService) SendSameDayReminderEmail(to, buildingName, scheduledAt string) error {
	subject := fmt.Sprintf("Lembrete: visita hoje - %s", buildingName)
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Lembrete de Visita</h2>
			<p>Tem uma assistência agendada para hoje no edifício <strong>%s</strong>.</p>
			<p><strong>Data e hora:</strong> %s</p>
		</body>
		</html>
	`, buildingName, scheduledAt)

	plainBody := fmt.Sprintf(`
Lembrete de Visita

Tem uma assistência agendada para hoje no edifício %s.

Data e hora: %s
	`, buildingName, scheduledAt)

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

// SendCompletionReminderEmail nudges the supplier the day after the
// scheduled visit to report the outcome.
func (s *SMTPEmailService) SendCompletionReminderEmail(to, buildingName, schedulingToken string) error {
	portalURL := s.portalLink("view", schedulingToken)

	subject := fmt.Sprintf("A visita foi realizada? - %s", buildingName)
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Confirmação de Visita</h2>
			<p>A assistência no edifício <strong>%s</strong> estava agendada para ontem.</p>
			<p>Por favor indique se o trabalho foi concluído ou se precisa de reagendar:</p>
			<p><a href="%s">Atualizar Assistência</a></p>
			<p>Ou copie e cole este URL no seu navegador:</p>
			<p>%s</p>
		</body>
		</html>
	`, buildingName, portalURL, portalURL)

	plainBody := fmt.Sprintf(`
Confirmação de Visita

A assistência no edifício %s estava agendada para ontem.

Por favor indique se o trabalho foi concluído ou se precisa de reagendar:
%s
	`, buildingName, portalURL)

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) sendEmail(to, subject, htmlBody, plainBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.config.FromAddress)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
