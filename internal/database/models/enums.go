package models

// MemberRole represents the role of a member in an organization. The set is
// closed: arbitrary role strings are rejected at validation time.
type MemberRole string

const (
	MemberRoleAdmin  MemberRole = "ADMIN"
	MemberRoleMember MemberRole = "MEMBER"
)

// ExerciseStatus defines the lifecycle states of an exercise
type ExerciseStatus string

const (
	ExerciseStatusPlanned   ExerciseStatus = "PLANNED"
	ExerciseStatusOngoing   ExerciseStatus = "ONGOING"
	ExerciseStatusCompleted ExerciseStatus = "COMPLETED"
)

// IsValid checks if the MemberRole is valid
func (r MemberRole) IsValid() bool {
	switch r {
	case MemberRoleAdmin, MemberRoleMember:
		return true
	}
	return false
}

// IsValid checks if the ExerciseStatus is valid
func (s ExerciseStatus) IsValid() bool {
	switch s {
	case ExerciseStatusPlanned, ExerciseStatusOngoing, ExerciseStatusCompleted:
		return true
	}
	return false
}
