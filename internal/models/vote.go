package models

import (
	"time"
)

// TargetType names what a vote points at.
type TargetType string

const (
	TargetQuestion TargetType = "question"
	TargetAnswer   TargetType = "answer"
)

// Vote is one viewer's current vote on one target. Stored as a relation keyed
// by (viewer, target), never as a field on the shared entity, so the same
// collections stay valid once there is more than one viewer.
type Vote struct {
	ViewerID   string     `json:"viewer_id"`
	TargetID   string     `json:"target_id"`
	TargetType TargetType `json:"target_type"`
	Value      int        `json:"value"` // 1 or -1
	CreatedAt  time.Time  `json:"created_at"`
}
