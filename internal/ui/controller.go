// Package ui holds the operator's view state (home, form and list screens)
// and the transitions that drive the member API.
package ui

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"gym-membership-go/internal/client"
	"gym-membership-go/pkg/logger"
)

// API is the part of the member API the controller needs.
type API interface {
	ListMembers(ctx context.Context) ([]client.Member, error)
	CreateMember(ctx context.Context, input client.MemberInput) (int64, error)
	UpdateMember(ctx context.Context, id int64, input client.MemberInput) (int64, error)
	DeleteMember(ctx context.Context, id int64) (int64, error)
}

// Confirm asks the operator a yes/no question before destructive actions.
type Confirm func(prompt string) bool

const (
	msgLoadFailed       = "Error loading members from the server."
	msgSaved            = "Member saved successfully."
	msgUpdated          = "Member updated successfully."
	msgSaveFailed       = "Error saving member."
	msgUpdateFailed     = "Error updating member."
	msgDeleted          = "Member deleted."
	msgDeleteFailed     = "Error deleting member."
	msgNothingSelected  = "No members selected to delete."
	msgBulkDeleted      = "Selected members deleted."
	msgBulkDeleteFailed = "Error deleting selected members."
)

type Controller struct {
	api     API
	confirm Confirm
	log     logger.Logger
	state   State
}

func NewController(api API, confirm Confirm, log logger.Logger) *Controller {
	if confirm == nil {
		confirm = func(string) bool { return true }
	}
	return &Controller{
		api:     api,
		confirm: confirm,
		log:     log,
		state:   newState(),
	}
}

// State returns a copy of the current view state.
func (c *Controller) State() State {
	return c.state.Snapshot()
}

// SetView switches screens. Leaving the list drops the selection; entering
// it reloads the cache.
func (c *Controller) SetView(ctx context.Context, v View) {
	c.state.View = v
	c.state.Message = ""

	if v != ViewList {
		c.clearSelection()
		return
	}
	c.refresh(ctx)
}

// Refresh reloads the list cache without changing screens.
func (c *Controller) Refresh(ctx context.Context) {
	c.refresh(ctx)
}

func (c *Controller) refresh(ctx context.Context) bool {
	items, err := c.api.ListMembers(ctx)
	if err != nil {
		c.log.BusinessError("ui: load members failed", err)
		c.state.Message = msgLoadFailed
		return false
	}
	c.state.Members = items
	c.pruneSelection()
	return true
}

func (c *Controller) ResetForm() {
	c.state.EditingID = 0
	c.state.Form = Form{}
}

// SetField edits one field of the draft.
func (c *Controller) SetField(name, value string) error {
	return SetField(&c.state.Form, name, value)
}

// SaveMember trims the draft, validates it and creates or updates it.
// Validation failures send nothing and are returned as *ValidationError.
func (c *Controller) SaveMember(ctx context.Context) error {
	form := trimForm(c.state.Form)
	if verr := Validate(form); verr != nil {
		c.log.BusinessError("ui: draft rejected", verr, "field", verr.Field)
		c.state.Message = verr.Message
		return verr
	}

	var (
		err       error
		okMessage string
		errorMsg  string
	)
	if c.state.Editing() {
		_, err = c.api.UpdateMember(ctx, c.state.EditingID, form)
		okMessage, errorMsg = msgUpdated, msgUpdateFailed
	} else {
		_, err = c.api.CreateMember(ctx, form)
		okMessage, errorMsg = msgSaved, msgSaveFailed
	}
	if err != nil {
		c.log.BusinessError("ui: save member failed", err, "editing_id", c.state.EditingID)
		c.state.Message = errorMsg
		return err
	}

	c.state.Message = okMessage
	c.refresh(ctx)
	c.state.View = ViewList
	c.ResetForm()
	return nil
}

// EditMember loads a listed record into the draft and opens the form.
func (c *Controller) EditMember(m client.Member) {
	c.state.EditingID = m.ID
	c.state.Form = formFromMember(m)
	c.state.View = ViewForm
	c.state.Message = fmt.Sprintf("Editing member #%d", m.ID)
}

// EditMemberByID is EditMember for a record in the list cache.
func (c *Controller) EditMemberByID(id int64) error {
	for _, m := range c.state.Members {
		if m.ID == id {
			c.EditMember(m)
			return nil
		}
	}
	return fmt.Errorf("member #%d is not in the list", id)
}

func (c *Controller) DeleteMember(ctx context.Context, id int64) error {
	if !c.confirm("Are you sure you want to delete this member?") {
		return nil
	}

	if _, err := c.api.DeleteMember(ctx, id); err != nil {
		c.log.BusinessError("ui: delete member failed", err, "id", id)
		c.state.Message = msgDeleteFailed
		return err
	}

	c.state.Message = msgDeleted
	c.refresh(ctx)
	return nil
}

func (c *Controller) ToggleSelection(id int64) {
	if _, ok := c.state.selected[id]; ok {
		delete(c.state.selected, id)
		return
	}
	c.state.selected[id] = struct{}{}
}

// ToggleSelectAll selects every listed row, or clears the selection when
// every row is already selected.
func (c *Controller) ToggleSelectAll() {
	if c.state.AllSelected() {
		c.clearSelection()
		return
	}
	c.clearSelection()
	for _, m := range c.state.Members {
		c.state.selected[m.ID] = struct{}{}
	}
}

// DeleteSelected removes every selected member with concurrent requests and
// waits for all of them. Any failure yields one generic message; which
// deletes committed is only visible after the next reload.
func (c *Controller) DeleteSelected(ctx context.Context) error {
	ids := c.state.Selected()
	if len(ids) == 0 {
		c.state.Message = msgNothingSelected
		return nil
	}
	if !c.confirm(fmt.Sprintf("Delete %d selected member(s)?", len(ids))) {
		return nil
	}

	var g errgroup.Group
	for _, id := range ids {
		g.Go(func() error {
			_, err := c.api.DeleteMember(ctx, id)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		c.log.BusinessError("ui: bulk delete failed", err, "count", len(ids))
		c.state.Message = msgBulkDeleteFailed
		return err
	}

	c.state.Message = msgBulkDeleted
	c.refresh(ctx)
	c.clearSelection()
	return nil
}

func (c *Controller) clearSelection() {
	c.state.selected = make(map[int64]struct{})
}

// pruneSelection drops selected ids that are no longer listed.
func (c *Controller) pruneSelection() {
	listed := make(map[int64]struct{}, len(c.state.Members))
	for _, m := range c.state.Members {
		listed[m.ID] = struct{}{}
	}
	for id := range c.state.selected {
		if _, ok := listed[id]; !ok {
			delete(c.state.selected, id)
		}
	}
}
