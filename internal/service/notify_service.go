package service

import (
	"bytes"
	"fmt"
	"html/template"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"fleetbook/internal/db"
	"fleetbook/internal/entities"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
)

type NotifyService struct {
}

func NewNotifyService() *NotifyService {
	return &NotifyService{}
}

// SendBookingEmail renders and sends the booking email asynchronously; a
// failed send is logged, never surfaced to the caller.
func (s *NotifyService) SendBookingEmail(booking db.Booking, vehicle db.Vehicle, status string) {
	emailData := entities.BookingEmailData{
		Name:               booking.Name,
		BookingID:          booking.ID,
		VehicleModel:       vehicle.Model,
		VehicleTrim:        vehicle.Trim,
		VehicleNickname:    vehicle.Nickname,
		StartDateFormatted: booking.StartDate.String(),
		EndDateFormatted:   booking.EndDate.String(),
		Status:             status,
		CurrentYear:        time.Now().UTC().Year(),
	}

	emailSubject := fmt.Sprintf("Your vehicle booking #%d is %s", booking.ID, status)
	plainTextBody := fmt.Sprintf(
		"Hello %s,\n\nYour vehicle booking is %s.\n\n"+
			"Booking Details:\n"+
			"Booking ID: %d\n"+
			"Vehicle: %s %s\n"+
			"Start: %s\n"+
			"End: %s\n\n"+
			"Thank you for using the vehicle loan system.",
		emailData.Name, status, emailData.BookingID, emailData.VehicleModel, emailData.VehicleTrim,
		emailData.StartDateFormatted, emailData.EndDateFormatted,
	)

	tmplPath := filepath.Join("internal", "templates", "booking_email.html")
	tmpl, err := template.ParseFiles(tmplPath)
	if err != nil {
		log.Printf("WARNING: could not parse email template (%s): %v", tmplPath, err)
		return
	}

	var htmlBodyBuffer bytes.Buffer
	if err := tmpl.Execute(&htmlBodyBuffer, emailData); err != nil {
		log.Printf("WARNING: could not execute email template for booking %d: %v", booking.ID, err)
		return
	}
	htmlBody := htmlBodyBuffer.String()

	go func(toEmail, toName, subject, plainBody, htmlBodyContent string) {
		if errEmail := SendEmailWithSendGrid(toEmail, toName, subject, plainBody, htmlBodyContent); errEmail != nil {
			log.Printf("WARNING (async): email send failed for booking %d: %v", booking.ID, errEmail)
		}
	}(booking.Email, booking.Name, emailSubject, plainTextBody, htmlBody)
}

// SendBookingSMS sends the short confirmation asynchronously.
func (s *NotifyService) SendBookingSMS(booking db.Booking, vehicle db.Vehicle, status string) {
	smsMessage := fmt.Sprintf("Vehicle loan: booking #%d (%s) is %s.\n%s to %s.\nMore details in your email.",
		booking.ID, vehicle.Model, status,
		booking.StartDate, booking.EndDate,
	)

	go func(toNumber, body string) {
		if errSMS := SendSMS(toNumber, body); errSMS != nil {
			log.Printf("WARNING (async): SMS send failed for booking %d to %s: %v", booking.ID, toNumber, errSMS)
		}
	}(booking.Phone, smsMessage)
}

func SendEmailWithSendGrid(toEmailAddress, toName, subject, plainTextContent, htmlContent string) error {
	sendgridAPIKey := os.Getenv("SENDGRID_API_KEY")
	if sendgridAPIKey == "" {
		log.Println("WARNING: SENDGRID_API_KEY is not set. Email will not be sent.")
		return fmt.Errorf("SENDGRID_API_KEY is not set")
	}

	fromEmail := os.Getenv("SENDGRID_FROM_EMAIL")
	if fromEmail == "" {
		log.Println("WARNING: SENDGRID_FROM_EMAIL is not set. Email will not be sent.")
		return fmt.Errorf("SENDGRID_FROM_EMAIL is not set")
	}

	fromName := os.Getenv("SENDGRID_FROM_NAME")
	if fromName == "" {
		fromName = "Fleetbook"
	}

	from := mail.NewEmail(fromName, fromEmail)
	to := mail.NewEmail(toName, toEmailAddress)

	message := mail.NewSingleEmail(from, subject, to, plainTextContent, htmlContent)

	client := sendgrid.NewSendClient(sendgridAPIKey)
	response, err := client.Send(message)
	if err != nil {
		log.Printf("Error sending email via SendGrid to %s: %v", toEmailAddress, err)
		return fmt.Errorf("sendgrid send failed: %w", err)
	}

	if response.StatusCode >= 200 && response.StatusCode < 300 {
		log.Printf("Email sent to %s (subject: %s). Status: %d", toEmailAddress, subject, response.StatusCode)
		return nil
	}

	log.Printf("SendGrid returned non-success status %d for %s. Body: %s",
		response.StatusCode, toEmailAddress, response.Body)
	return fmt.Errorf("sendgrid returned non-success status %d: %s", response.StatusCode, response.Body)
}

func SendSMS(toNumber string, messageBody string) error {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")
	fromNumber := os.Getenv("TWILIO_FROM_NUMBER")

	if accountSid == "" || authToken == "" || fromNumber == "" {
		log.Println("WARNING: Twilio credentials (SID, token or from number) are not set. SMS will not be sent.")
		return fmt.Errorf("twilio credentials not fully configured")
	}

	if !strings.HasPrefix(toNumber, "+") {
		log.Printf("WARNING: destination number %q is not E.164 (must start with '+'). SMS may fail.", toNumber)
	}

	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username:   accountSid,
		Password:   authToken,
		AccountSid: accountSid,
	})

	params := &openapi.CreateMessageParams{}
	params.SetTo(toNumber)
	params.SetFrom(fromNumber)
	params.SetBody(messageBody)

	resp, err := client.Api.CreateMessage(params)
	if err != nil {
		log.Printf("Error sending SMS to %s via Twilio: %v", toNumber, err)
		return fmt.Errorf("sms send failed: %w", err)
	}

	if resp != nil && resp.Sid != nil {
		log.Printf("SMS sent to %s. Message SID: %s", toNumber, *resp.Sid)
	}
	return nil
}
