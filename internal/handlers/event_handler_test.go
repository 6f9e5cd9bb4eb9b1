package handlers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validEventRequest() EventRequest {
	limit := 10
	return EventRequest{
		EventName:        "spring classic",
		EventType:        1,
		Limit:            &limit,
		Distance:         120.5,
		RouteDescription: "rolling hills",
		Date:             time.Now().Add(72 * time.Hour),
		Start:            "Kraków",
		Finish:           "Zakopane",
		Region:           6,
		Category:         1,
	}
}

func TestEventFieldError(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*EventRequest)
		wantMsg string
	}{
		{
			name:    "valid request",
			mutate:  func(r *EventRequest) {},
			wantMsg: "",
		},
		{
			name:    "unknown event type",
			mutate:  func(r *EventRequest) { r.EventType = 99 },
			wantMsg: "Invalid event type.",
		},
		{
			name:    "unknown region",
			mutate:  func(r *EventRequest) { r.Region = 17 },
			wantMsg: "Invalid region.",
		},
		{
			name:    "unknown category",
			mutate:  func(r *EventRequest) { r.Category = 0 },
			wantMsg: "Invalid category.",
		},
		{
			name: "negative limit",
			mutate: func(r *EventRequest) {
				limit := -1
				r.Limit = &limit
			},
			wantMsg: "Limit cannot be negative.",
		},
		{
			name:    "zero distance",
			mutate:  func(r *EventRequest) { r.Distance = 0 },
			wantMsg: "Distance must be greater than 0.",
		},
		{
			name:    "negative distance",
			mutate:  func(r *EventRequest) { r.Distance = -5 },
			wantMsg: "Distance must be greater than 0.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validEventRequest()
			tt.mutate(&req)
			assert.Equal(t, tt.wantMsg, eventFieldError(&req))
		})
	}
}

func TestPresentOrFutureDate(t *testing.T) {
	assert.True(t, presentOrFutureDate(time.Now().Add(24*time.Hour)))
	assert.True(t, presentOrFutureDate(time.Now().UTC()))
	assert.False(t, presentOrFutureDate(time.Now().Add(-48*time.Hour)))
}
