package domain

import "strings"

// TrainerRole роль сотрудника
type TrainerRole string

const (
	RoleTrainer TrainerRole = "trainer"
	RoleStaff   TrainerRole = "staff"
)

// TrainerStatus статус сотрудника
type TrainerStatus string

const (
	TrainerActive   TrainerStatus = "active"
	TrainerInactive TrainerStatus = "inactive"
)

// ParseTrainerStatus только явный active делает тренера доступным,
// любое другое значение считается inactive
func ParseTrainerStatus(raw string) TrainerStatus {
	if strings.EqualFold(strings.TrimSpace(raw), string(TrainerActive)) {
		return TrainerActive
	}
	return TrainerInactive
}

// ParseTrainerRole нормализует регистр роли
func ParseTrainerRole(raw string) TrainerRole {
	return TrainerRole(strings.ToLower(strings.TrimSpace(raw)))
}

// Trainer тренер или сотрудник зала
type Trainer struct {
	ID     int64
	Name   string
	Role   TrainerRole
	Status TrainerStatus
}

// IsActive returns true if the trainer can take new schedules
func (t *Trainer) IsActive() bool {
	return t.Status == TrainerActive
}

// FindTrainer ищет тренера в пуле по ID
func FindTrainer(pool []Trainer, id int64) (Trainer, bool) {
	for _, t := range pool {
		if t.ID == id {
			return t, true
		}
	}
	return Trainer{}, false
}

// RequiredRoleFor роль, которую требует расписание текущего тренера.
// Если тренера нет в пуле, требуется trainer (самое строгое условие).
func RequiredRoleFor(pool []Trainer, currentTrainerID int64) TrainerRole {
	if t, ok := FindTrainer(pool, currentTrainerID); ok && t.Role == RoleStaff {
		return RoleStaff
	}
	return RoleTrainer
}
