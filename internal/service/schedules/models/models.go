package models

import (
	"time"

	"github.com/m04kA/SMC-GymScheduleService/internal/domain"
	"github.com/m04kA/SMC-GymScheduleService/pkg/ptr"
)

// Request модели

// CheckAvailabilityRequest запрос на проверку занятости тренера
type CheckAvailabilityRequest struct {
	TrainerID       int64      `json:"trainerId"`
	StartTime       *time.Time `json:"startTime"` // RFC 3339
	DurationMinutes int        `json:"durationMinutes"`
}

// Response модели

// ScheduleResponse расписание
type ScheduleResponse struct {
	ID              int64     `json:"id"`
	TrainerID       int64     `json:"trainerId"`
	StartTime       time.Time `json:"startTime"`
	EndTime         time.Time `json:"endTime"`
	DurationMinutes int       `json:"durationMinutes"`
	Status          string    `json:"status"`
	Kind            string    `json:"kind"`
	Notes           *string   `json:"notes,omitempty"`
}

// TrainerResponse тренер
type TrainerResponse struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	Status string `json:"status"`
}

// AvailabilityResponse результат проверки занятости
type AvailabilityResponse struct {
	TrainerID int64              `json:"trainerId"`
	Available bool               `json:"available"`
	Conflicts []ScheduleResponse `json:"conflicts"`
}

// ReassignmentResponse запись журнала
type ReassignmentResponse struct {
	ID              int64     `json:"id"`
	ScheduleID      int64     `json:"scheduleId"`
	FromTrainerID   int64     `json:"fromTrainerId"`
	ToTrainerID     int64     `json:"toTrainerId"`
	ActorID         int64     `json:"actorId"`
	RequestID       *string   `json:"requestId,omitempty"`
	StartTime       time.Time `json:"startTime"`
	DurationMinutes int       `json:"durationMinutes"`
	CreatedAt       time.Time `json:"createdAt"`
}

// ReassignmentListResponse список записей журнала
type ReassignmentListResponse struct {
	Reassignments []ReassignmentResponse `json:"reassignments"`
}

// Методы конвертации

// FromDomainSchedule конвертирует domain модель в DTO
func FromDomainSchedule(s domain.Schedule) ScheduleResponse {
	resp := ScheduleResponse{
		ID:              s.ID,
		TrainerID:       s.TrainerID,
		StartTime:       s.StartTime,
		EndTime:         s.End(),
		DurationMinutes: s.DurationMinutes,
		Status:          string(s.Status),
		Kind:            string(s.Kind()),
	}
	if s.Notes != "" {
		resp.Notes = ptr.Ptr(s.Notes)
	}
	return resp
}

// FromDomainScheduleList всегда возвращает не-nil срез
func FromDomainScheduleList(schedules []domain.Schedule) []ScheduleResponse {
	resp := make([]ScheduleResponse, 0, len(schedules))
	for _, s := range schedules {
		resp = append(resp, FromDomainSchedule(s))
	}
	return resp
}

// FromDomainTrainer конвертирует domain модель в DTO
func FromDomainTrainer(t domain.Trainer) TrainerResponse {
	return TrainerResponse{
		ID:     t.ID,
		Name:   t.Name,
		Role:   string(t.Role),
		Status: string(t.Status),
	}
}

// FromDomainTrainerList всегда возвращает не-nil срез
func FromDomainTrainerList(trainers []domain.Trainer) []TrainerResponse {
	resp := make([]TrainerResponse, 0, len(trainers))
	for _, t := range trainers {
		resp = append(resp, FromDomainTrainer(t))
	}
	return resp
}

// FromDomainReassignment конвертирует domain модель в DTO
func FromDomainReassignment(r *domain.Reassignment) *ReassignmentResponse {
	if r == nil {
		return nil
	}

	resp := &ReassignmentResponse{
		ID:              r.ID,
		ScheduleID:      r.ScheduleID,
		FromTrainerID:   r.FromTrainerID,
		ToTrainerID:     r.ToTrainerID,
		ActorID:         r.ActorID,
		StartTime:       r.StartTime,
		DurationMinutes: r.DurationMinutes,
		CreatedAt:       r.CreatedAt,
	}
	if r.RequestID != "" {
		resp.RequestID = ptr.Ptr(r.RequestID)
	}
	return resp
}

// FromDomainReassignmentList конвертирует список domain моделей в DTO
func FromDomainReassignmentList(list []*domain.Reassignment) *ReassignmentListResponse {
	resp := &ReassignmentListResponse{
		Reassignments: make([]ReassignmentResponse, 0, len(list)),
	}

	for _, r := range list {
		if item := FromDomainReassignment(r); item != nil {
			resp.Reassignments = append(resp.Reassignments, *item)
		}
	}

	return resp
}
