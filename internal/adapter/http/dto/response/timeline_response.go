package response

import "repairtrack/internal/domain/entities"

type TimelineResponse struct {
	RequestID string                   `json:"request_id"`
	Entries   []entities.TimelineEntry `json:"entries"`
}

func FromTimeline(requestID string, t entities.Timeline) TimelineResponse {
	return TimelineResponse{RequestID: requestID, Entries: t.Entries}
}
