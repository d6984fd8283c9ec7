package usecase

import (
	"context"
	"fmt"
	"time"

	"monitoring-srv/internal/crisis"
	"monitoring-srv/internal/crisis/repository"
	"monitoring-srv/internal/model"
	postgresPkg "monitoring-srv/pkg/postgre"
)

func (uc *usecase) List(ctx context.Context, sc model.Scope, ip crisis.ListInput) ([]model.CrisisEvent, error) {
	events, err := uc.repo.List(ctx, sc, repository.ListOptions{
		Filter: repository.Filter{
			TrackerID: ip.TrackerID,
			Status:    ip.Status,
		},
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.crisis.usecase.List: %v", err)
		return nil, err
	}
	return events, nil
}

func (uc *usecase) Detail(ctx context.Context, sc model.Scope, id string) (model.CrisisEvent, error) {
	ev, err := uc.repo.Detail(ctx, sc, id)
	if err != nil {
		if err == repository.ErrNotFound {
			return model.CrisisEvent{}, crisis.ErrCrisisNotFound
		}
		uc.l.Errorf(ctx, "internal.crisis.usecase.Detail: %v", err)
		return model.CrisisEvent{}, err
	}
	return ev, nil
}

// Escalate advances the incident one step regardless of score:
// monitoring becomes active, active becomes escalated. An already
// escalated incident is left unchanged.
func (uc *usecase) Escalate(ctx context.Context, sc model.Scope, id string) (model.CrisisEvent, error) {
	ev, err := uc.liveEvent(ctx, sc, id, "Escalate")
	if err != nil {
		return model.CrisisEvent{}, err
	}

	switch ev.Status {
	case model.CrisisMonitoring:
		ev.Status = model.CrisisActive
		ev.Timeline = append(ev.Timeline, model.TimelineEntry{
			Timestamp: time.Now(),
			Event:     "Crisis activated by operator",
			Type:      model.TimelineEscalation,
			Details:   fmt.Sprintf("score %d", ev.Score),
		})
	case model.CrisisActive:
		ev.Status = model.CrisisEscalated
		ev.Timeline = append(ev.Timeline, model.TimelineEntry{
			Timestamp: time.Now(),
			Event:     "Crisis escalated by operator",
			Type:      model.TimelineEscalation,
			Details:   fmt.Sprintf("score %d", ev.Score),
		})
	}

	updated, err := uc.repo.Update(ctx, repository.UpdateOptions{Event: ev})
	if err != nil {
		uc.l.Errorf(ctx, "internal.crisis.usecase.Escalate: %v", err)
		return model.CrisisEvent{}, err
	}
	return updated, nil
}

// Resolve closes the incident. Resolved is terminal; the next score
// crossing opens a new event.
func (uc *usecase) Resolve(ctx context.Context, sc model.Scope, id string) (model.CrisisEvent, error) {
	ev, err := uc.liveEvent(ctx, sc, id, "Resolve")
	if err != nil {
		return model.CrisisEvent{}, err
	}

	ev.Status = model.CrisisResolved
	ev.Timeline = append(ev.Timeline, model.TimelineEntry{
		Timestamp: time.Now(),
		Event:     "Crisis resolved by operator",
		Type:      model.TimelineResolution,
		Details:   fmt.Sprintf("score %d", ev.Score),
	})
	uc.clearBelow(ev.TrackerID)

	updated, err := uc.repo.Update(ctx, repository.UpdateOptions{Event: ev})
	if err != nil {
		uc.l.Errorf(ctx, "internal.crisis.usecase.Resolve: %v", err)
		return model.CrisisEvent{}, err
	}
	return updated, nil
}

func (uc *usecase) AddAction(ctx context.Context, sc model.Scope, id string, ip crisis.AddActionInput) (model.CrisisEvent, error) {
	if ip.Action == "" {
		return model.CrisisEvent{}, crisis.ErrActionRequired
	}

	ev, err := uc.liveEvent(ctx, sc, id, "AddAction")
	if err != nil {
		return model.CrisisEvent{}, err
	}

	ev.Actions = append(ev.Actions, model.ResponseAction{
		ID:         postgresPkg.NewUUID(),
		Action:     ip.Action,
		Status:     model.ActionPending,
		AssignedTo: ip.AssignedTo,
		DueDate:    ip.DueDate,
	})
	ev.Timeline = append(ev.Timeline, model.TimelineEntry{
		Timestamp: time.Now(),
		Event:     "Response action added",
		Type:      model.TimelineResponse,
		Details:   ip.Action,
	})

	updated, err := uc.repo.Update(ctx, repository.UpdateOptions{Event: ev})
	if err != nil {
		uc.l.Errorf(ctx, "internal.crisis.usecase.AddAction: %v", err)
		return model.CrisisEvent{}, err
	}
	return updated, nil
}

// UpdateAction mutates one response action. Allowed on resolved events
// too, so post-mortem bookkeeping can finish.
func (uc *usecase) UpdateAction(ctx context.Context, sc model.Scope, id string, ip crisis.UpdateActionInput) (model.CrisisEvent, error) {
	if ip.Status != nil {
		switch *ip.Status {
		case model.ActionPending, model.ActionInProgress, model.ActionCompleted:
		default:
			return model.CrisisEvent{}, crisis.ErrInvalidStatus
		}
	}

	ev, err := uc.repo.Detail(ctx, sc, id)
	if err != nil {
		if err == repository.ErrNotFound {
			return model.CrisisEvent{}, crisis.ErrCrisisNotFound
		}
		uc.l.Errorf(ctx, "internal.crisis.usecase.UpdateAction.Detail: %v", err)
		return model.CrisisEvent{}, err
	}

	idx := -1
	for i := range ev.Actions {
		if ev.Actions[i].ID == ip.ActionID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return model.CrisisEvent{}, crisis.ErrActionNotFound
	}

	if ip.Status != nil {
		ev.Actions[idx].Status = *ip.Status
	}
	if ip.AssignedTo != nil {
		ev.Actions[idx].AssignedTo = *ip.AssignedTo
	}
	if ip.DueDate != nil {
		ev.Actions[idx].DueDate = *ip.DueDate
	}
	ev.Timeline = append(ev.Timeline, model.TimelineEntry{
		Timestamp: time.Now(),
		Event:     "Response action updated",
		Type:      model.TimelineResponse,
		Details:   ev.Actions[idx].Action,
	})

	updated, err := uc.repo.Update(ctx, repository.UpdateOptions{Event: ev})
	if err != nil {
		uc.l.Errorf(ctx, "internal.crisis.usecase.UpdateAction: %v", err)
		return model.CrisisEvent{}, err
	}
	return updated, nil
}

// liveEvent loads a non-resolved event or reports why it cannot be acted on.
func (uc *usecase) liveEvent(ctx context.Context, sc model.Scope, id, op string) (model.CrisisEvent, error) {
	ev, err := uc.repo.Detail(ctx, sc, id)
	if err != nil {
		if err == repository.ErrNotFound {
			return model.CrisisEvent{}, crisis.ErrCrisisNotFound
		}
		uc.l.Errorf(ctx, "internal.crisis.usecase.%s: %v", op, err)
		return model.CrisisEvent{}, err
	}
	if ev.Status == model.CrisisResolved {
		return model.CrisisEvent{}, crisis.ErrCrisisResolved
	}
	return ev, nil
}
