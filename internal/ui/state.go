package ui

import (
	"fmt"
	"sort"
	"strings"

	"gym-membership-go/internal/client"
)

type View string

const (
	ViewHome View = "home"
	ViewForm View = "form"
	ViewList View = "list"
)

func ParseView(value string) (View, error) {
	switch v := View(value); v {
	case ViewHome, ViewForm, ViewList:
		return v, nil
	default:
		return "", fmt.Errorf("unknown view %q", value)
	}
}

// Form is the draft being edited. All values are raw text as typed.
type Form = client.MemberInput

// FormFields lists the draft's field names in display order.
var FormFields = []string{
	"name", "sex", "age", "dob", "address", "state", "country", "email",
	"emergency_contact", "emergency_phone", "membership_type", "medications",
	"allergies", "past_injuries", "medical_conditions", "medical_contact",
	"medical_contact_phone", "other_info", "payment_type",
}

// SetField assigns one draft field by its wire name.
func SetField(f *Form, name, value string) error {
	ptr := fieldPtr(f, name)
	if ptr == nil {
		return fmt.Errorf("unknown field %q", name)
	}
	*ptr = value
	return nil
}

// trimForm strips surrounding whitespace from every field, so the values
// that are validated are the ones sent.
func trimForm(f Form) Form {
	for _, name := range FormFields {
		ptr := fieldPtr(&f, name)
		*ptr = strings.TrimSpace(*ptr)
	}
	return f
}

// Field reads one draft field by its wire name.
func Field(f Form, name string) (string, bool) {
	ptr := fieldPtr(&f, name)
	if ptr == nil {
		return "", false
	}
	return *ptr, true
}

func fieldPtr(f *Form, name string) *string {
	switch name {
	case "name":
		return &f.Name
	case "sex":
		return &f.Sex
	case "age":
		return &f.Age
	case "dob":
		return &f.DOB
	case "address":
		return &f.Address
	case "state":
		return &f.State
	case "country":
		return &f.Country
	case "email":
		return &f.Email
	case "emergency_contact":
		return &f.EmergencyContact
	case "emergency_phone":
		return &f.EmergencyPhone
	case "membership_type":
		return &f.MembershipType
	case "medications":
		return &f.Medications
	case "allergies":
		return &f.Allergies
	case "past_injuries":
		return &f.PastInjuries
	case "medical_conditions":
		return &f.MedicalConditions
	case "medical_contact":
		return &f.MedicalContact
	case "medical_contact_phone":
		return &f.MedicalContactPhone
	case "other_info":
		return &f.OtherInfo
	case "payment_type":
		return &f.PaymentType
	default:
		return nil
	}
}

// State is everything the operator sees. It is owned by a Controller and
// only changed through its methods.
type State struct {
	View    View
	Message string
	Members []client.Member
	// EditingID is zero when the draft is a new record.
	EditingID int64
	Form      Form
	selected  map[int64]struct{}
}

func newState() State {
	return State{View: ViewHome, selected: make(map[int64]struct{})}
}

func (s State) Editing() bool {
	return s.EditingID != 0
}

func (s State) IsSelected(id int64) bool {
	_, ok := s.selected[id]
	return ok
}

// Selected returns the selected ids in ascending order.
func (s State) Selected() []int64 {
	ids := make([]int64, 0, len(s.selected))
	for id := range s.selected {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// AllSelected reports whether the selection is exactly the listed ids. It is
// derived on every call so it can never drift from the selection.
func (s State) AllSelected() bool {
	if len(s.Members) == 0 || len(s.selected) != len(s.Members) {
		return false
	}
	for _, m := range s.Members {
		if _, ok := s.selected[m.ID]; !ok {
			return false
		}
	}
	return true
}

// Snapshot returns a copy safe to keep after further transitions.
func (s State) Snapshot() State {
	out := s
	out.Members = append([]client.Member(nil), s.Members...)
	out.selected = make(map[int64]struct{}, len(s.selected))
	for id := range s.selected {
		out.selected[id] = struct{}{}
	}
	return out
}

func formFromMember(m client.Member) Form {
	return m.MemberInput
}
