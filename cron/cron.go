package cron

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/Hephzy-d/elderly-care-connect/db"
	"github.com/Hephzy-d/elderly-care-connect/models"
	"github.com/Hephzy-d/elderly-care-connect/utils"
)

// StartCronJobs initializes and starts the cron scheduler for booking reminders
func StartCronJobs() {
	fmt.Println("Starting cron job scheduler...")
	c := cron.New()
	// Run every minute to check for bookings in the next hour
	_, err := c.AddFunc("* * * * *", sendBookingReminders)
	if err != nil {
		log.Fatalf("Failed to add cron job: %v", err)
	}
	c.Start()
	log.Println("Cron job scheduler started for booking reminders")
}

// reminderDate returns UTC midnight of t's UTC calendar day. Booking service
// dates are parsed from "YYYY-MM-DD" and therefore stored as UTC midnight, so
// the cron query has to compare against the same instant.
func reminderDate(t time.Time) time.Time {
	utc := t.UTC()
	return time.Date(utc.Year(), utc.Month(), utc.Day(), 0, 0, 0, 0, time.UTC)
}

// sendBookingReminders checks for upcoming bookings and sends reminders
func sendBookingReminders() {
	now := time.Now()
	today := reminderDate(now)

	var bookings []models.Booking
	err := db.DB.Preload("Client.User").Preload("Caregiver.User").
		Where("status = ? AND service_date = ?", models.BookingConfirmed, today).
		Find(&bookings).Error
	if err != nil {
		log.Printf("Error fetching bookings for reminders: %v", err)
		return
	}

	// Keep bookings starting roughly an hour from now
	startWindow := now.Add(55 * time.Minute)
	endWindow := now.Add(65 * time.Minute)

	for _, booking := range bookings {
		start, err := time.Parse("15:04", booking.StartTime)
		if err != nil {
			continue
		}
		startAt := time.Date(now.Year(), now.Month(), now.Day(), start.Hour(), start.Minute(), 0, 0, now.Location())
		if startAt.Before(startWindow) || startAt.After(endWindow) {
			continue
		}

		if err := sendReminderEmail(&booking); err != nil {
			log.Printf("Failed to send reminder for booking %d: %v", booking.ID, err)
			continue
		}
		log.Printf("Sent reminder for booking %d to %s", booking.ID, booking.Client.User.Email)
	}
}

// sendReminderEmail constructs and sends the reminder email
func sendReminderEmail(booking *models.Booking) error {
	subject := "Reminder: Upcoming Care Visit"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>This is a reminder for your care visit scheduled in one hour.</p>
		<p><strong>Details:</strong></p>
		<ul>
			<li><strong>Caregiver:</strong> %s %s</li>
			<li><strong>Date:</strong> %s</li>
			<li><strong>Time:</strong> %s - %s</li>
			<li><strong>Address:</strong> %s</li>
		</ul>
		<p>If you need to reschedule or cancel, contact us as soon as possible.</p>
		<p>Best regards,</p>
		<p>Elderly Care Connect</p>
	`, booking.Client.User.FirstName,
		booking.Caregiver.User.FirstName, booking.Caregiver.User.LastName,
		booking.ServiceDate.Format("2006-01-02"),
		booking.StartTime, booking.EndTime,
		booking.ServiceAddress)

	return utils.SendEmail(booking.Client.User.Email, subject, body)
}
