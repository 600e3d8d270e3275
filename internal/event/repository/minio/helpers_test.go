package minio

import (
	"time"

	"event-calendar-webhook/internal/event/repository"
)

func putOptions(name string, created time.Time) repository.PutFileOptions {
	return repository.PutFileOptions{
		Name:        name,
		Content:     "BEGIN:VCALENDAR\r\nEND:VCALENDAR\r\n",
		ContentType: "text/calendar",
		CreatedAt:   created,
	}
}
