package handler

import (
	"strings"

	recordsv1 "github.com/ogurasousui/hr-smart-records/internal/adapters/grpc/recordsv1"
	"github.com/ogurasousui/hr-smart-records/internal/core/records"
)

func toProtoEmployees(c records.Collection) []*recordsv1.Employee {
	out := make([]*recordsv1.Employee, 0, len(c))
	for _, e := range c {
		out = append(out, toProtoEmployee(e))
	}
	return out
}

func toProtoEmployee(e records.Employee) *recordsv1.Employee {
	history := make([]*recordsv1.HistoryRecord, 0, len(e.History))
	for _, r := range e.History {
		history = append(history, toProtoHistoryRecord(r))
	}
	return &recordsv1.Employee{
		ID:         e.ID,
		FirstName:  e.FirstName,
		LastName:   e.LastName,
		Email:      e.Email,
		Phone:      e.Phone,
		Position:   e.Position,
		Department: string(e.Department),
		Status:     string(e.Status),
		StartDate:  e.StartDate,
		AvatarURL:  e.AvatarURL,
		Bio:        e.Bio,
		History:    history,
	}
}

func toProtoHistoryRecord(r records.HistoryRecord) *recordsv1.HistoryRecord {
	return &recordsv1.HistoryRecord{
		ID:          r.ID,
		Date:        r.Date,
		Type:        string(r.Type),
		Title:       r.Title,
		Description: r.Description,
		AIEnhanced:  r.AIEnhanced,
	}
}

func toDomainEmployee(e *recordsv1.Employee) records.Employee {
	history := make([]records.HistoryRecord, 0, len(e.GetHistory()))
	for _, r := range e.GetHistory() {
		if r == nil {
			continue
		}
		history = append(history, records.HistoryRecord{
			ID:          r.ID,
			Date:        r.Date,
			Type:        records.HistoryType(r.Type),
			Title:       r.Title,
			Description: r.Description,
			AIEnhanced:  r.AIEnhanced,
		})
	}
	return records.Employee{
		ID:         strings.TrimSpace(e.ID),
		FirstName:  e.FirstName,
		LastName:   e.LastName,
		Email:      e.Email,
		Phone:      e.Phone,
		Position:   e.Position,
		Department: records.Department(e.Department),
		Status:     records.Status(e.Status),
		StartDate:  e.StartDate,
		AvatarURL:  e.AvatarURL,
		Bio:        e.Bio,
		History:    history,
	}
}

func toDomainEmployeeDraft(d *recordsv1.EmployeeDraft) records.EmployeeDraft {
	return records.EmployeeDraft{
		FirstName:  d.FirstName,
		LastName:   d.LastName,
		Email:      d.Email,
		Position:   d.Position,
		Department: records.Department(d.Department),
		StartDate:  d.StartDate,
	}
}

func toDomainHistoryDraft(d *recordsv1.HistoryDraft) records.HistoryDraft {
	return records.HistoryDraft{
		Type:        records.HistoryType(d.Type),
		Title:       d.Title,
		Description: d.Description,
		AIEnhanced:  d.AIEnhanced,
	}
}
