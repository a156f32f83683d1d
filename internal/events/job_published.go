package events

import "time"

const JobLifecycleTopic = "recruit.job.lifecycle.v1"

type JobPublishedEvent struct {
	EventType   string    `json:"event_type"`
	RequestID   string    `json:"request_id,omitempty"`
	JobID       string    `json:"job_id"`
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	PublishedAt time.Time `json:"published_at"`
	OccurredAt  time.Time `json:"occurred_at"`
}
