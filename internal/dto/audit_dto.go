// FILE: internal/dto/audit_dto.go
package dto

import "github.com/google/uuid"

// AuditMessage is the payload published on the in-process audit topic
// for every entitlement mutation.
type AuditMessage struct {
	Action     string                 `json:"action"`
	EntityType string                 `json:"entity_type"`
	EntityId   uuid.UUID              `json:"entity_id"`
	Details    map[string]interface{} `json:"details,omitempty"`
}
