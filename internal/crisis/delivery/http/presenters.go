package http

import (
	"time"

	"monitoring-srv/internal/crisis"
	"monitoring-srv/internal/model"
)

// --- Request DTOs ---

type listCrisesReq struct {
	TrackerID string `form:"tracker_id"`
	Status    string `form:"status"`
}

func (r listCrisesReq) toInput() crisis.ListInput {
	return crisis.ListInput{
		TrackerID: r.TrackerID,
		Status:    model.CrisisStatus(r.Status),
	}
}

type addActionReq struct {
	Action     string    `json:"action"`
	AssignedTo string    `json:"assigned_to"`
	DueDate    time.Time `json:"due_date"`
}

func (r addActionReq) toInput() crisis.AddActionInput {
	return crisis.AddActionInput{
		Action:     r.Action,
		AssignedTo: r.AssignedTo,
		DueDate:    r.DueDate,
	}
}

type updateActionReq struct {
	Status     *string    `json:"status"`
	AssignedTo *string    `json:"assigned_to"`
	DueDate    *time.Time `json:"due_date"`
}

func (r updateActionReq) toInput(actionID string) crisis.UpdateActionInput {
	ip := crisis.UpdateActionInput{
		ActionID:   actionID,
		AssignedTo: r.AssignedTo,
		DueDate:    r.DueDate,
	}
	if r.Status != nil {
		st := model.ActionStatus(*r.Status)
		ip.Status = &st
	}
	return ip
}
