package domain

// EntityType identifies the kind of domain entity (used in audit logs).
type EntityType string

const (
	EntityTypeTopic EntityType = "TOPIC"
	EntityTypeEntry EntityType = "ENTRY"
)

func (e EntityType) String() string { return string(e) }

func (e EntityType) IsValid() bool {
	switch e {
	case EntityTypeTopic, EntityTypeEntry:
		return true
	}
	return false
}

// AuditAction represents the kind of mutation recorded in the audit log.
type AuditAction string

const (
	AuditActionCreate AuditAction = "CREATE"
	AuditActionUpdate AuditAction = "UPDATE"
)

func (a AuditAction) String() string { return string(a) }

func (a AuditAction) IsValid() bool {
	switch a {
	case AuditActionCreate, AuditActionUpdate:
		return true
	}
	return false
}
