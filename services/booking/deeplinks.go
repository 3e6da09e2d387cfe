package booking

import (
	"fmt"
	"net/url"
	"time"

	"glowbook/models"
)

// DeepLinks are the external URLs summarizing a confirmed booking. Both are
// pure functions of the confirmed session plus its service; generating them
// never touches session state.
type DeepLinks struct {
	WhatsApp string `json:"whatsapp"`
	Calendar string `json:"calendar"`
}

const calendarTimeLayout = "20060102T150405Z"

// WhatsAppLink builds a wa.me URL with a pre-filled reservation message.
func WhatsAppLink(phone string, svc models.Service, professionalName, date, timeStr string) string {
	msg := fmt.Sprintf("Hola! Quiero confirmar mi reserva de %s", svc.Name)
	if professionalName != "" {
		msg += " con " + professionalName
	}
	msg += fmt.Sprintf(" para el %s a las %s.", humanDate(date), timeStr)
	return "https://wa.me/" + phone + "?text=" + url.QueryEscape(msg)
}

// CalendarLink builds a Google Calendar render URL. The event runs from the
// selected date/time for the total duration (base service plus add-ons),
// formatted as basic UTC.
func CalendarLink(svc models.Service, professionalName, date, timeStr string, totalDurationMinutes int) (string, error) {
	start, err := time.Parse("2006-01-02 15:04", date+" "+timeStr)
	if err != nil {
		return "", fmt.Errorf("invalid booking date/time %q %q: %w", date, timeStr, err)
	}
	end := start.Add(time.Duration(totalDurationMinutes) * time.Minute)

	title := svc.Name
	if professionalName != "" {
		title += " con " + professionalName
	}

	v := url.Values{}
	v.Set("action", "TEMPLATE")
	v.Set("text", title)
	v.Set("dates", start.Format(calendarTimeLayout)+"/"+end.Format(calendarTimeLayout))
	v.Set("details", "Reserva confirmada a través de Glowbook.")
	return "https://calendar.google.com/calendar/render?" + v.Encode(), nil
}

// humanDate reformats "YYYY-MM-DD" as "DD/MM/YYYY" for the message body.
func humanDate(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return t.Format("02/01/2006")
}
