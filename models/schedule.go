package models

import "time"

// DaySlot marks a single weekday within a time-slot group. DayOfWeek follows
// the external 0 = Sunday convention shared with the web client.
type DaySlot struct {
	DayOfWeek int  `bson:"dayOfWeek" json:"dayOfWeek"`
	IsActive  bool `bson:"isActive" json:"isActive"`
}

// TimeSlotGroup is the wire representation of one configured posting time:
// a wall-clock "HH:MM" and the weekdays it applies to.
type TimeSlotGroup struct {
	Time  string    `bson:"time" json:"time" binding:"required"`
	Slots []DaySlot `bson:"slots" json:"slots" binding:"required"`
}

// PostingSchedule is the per-profile recurring posting schedule document.
type PostingSchedule struct {
	ProfileID string          `bson:"profileId" json:"profileId"`
	Timezone  string          `bson:"timezone" json:"timezone"`
	TimeSlots []TimeSlotGroup `bson:"timeSlots" json:"timeSlots"`
	UpdatedAt time.Time       `bson:"updatedAt" json:"updatedAt"`
}

// SaveScheduleRequest defines the payload for saving a posting schedule.
type SaveScheduleRequest struct {
	Timezone  string          `json:"timezone"`
	TimeSlots []TimeSlotGroup `json:"timeSlots" binding:"required"`
}
