package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	memberdomain "gym-membership-go/internal/domain/member"
)

type memberRequest struct {
	Name                text `json:"name"`
	Sex                 text `json:"sex"`
	Age                 text `json:"age"`
	DOB                 text `json:"dob"`
	Address             text `json:"address"`
	State               text `json:"state"`
	Country             text `json:"country"`
	Email               text `json:"email"`
	EmergencyContact    text `json:"emergency_contact"`
	EmergencyPhone      text `json:"emergency_phone"`
	MembershipType      text `json:"membership_type"`
	Medications         text `json:"medications"`
	Allergies           text `json:"allergies"`
	PastInjuries        text `json:"past_injuries"`
	MedicalConditions   text `json:"medical_conditions"`
	MedicalContact      text `json:"medical_contact"`
	MedicalContactPhone text `json:"medical_contact_phone"`
	OtherInfo           text `json:"other_info"`
	PaymentType         text `json:"payment_type"`
}

func (req memberRequest) fields() memberdomain.Fields {
	return memberdomain.Fields{
		Name:                string(req.Name),
		Sex:                 string(req.Sex),
		Age:                 string(req.Age),
		DOB:                 string(req.DOB),
		Address:             string(req.Address),
		State:               string(req.State),
		Country:             string(req.Country),
		Email:               string(req.Email),
		EmergencyContact:    string(req.EmergencyContact),
		EmergencyPhone:      string(req.EmergencyPhone),
		MembershipType:      string(req.MembershipType),
		Medications:         string(req.Medications),
		Allergies:           string(req.Allergies),
		PastInjuries:        string(req.PastInjuries),
		MedicalConditions:   string(req.MedicalConditions),
		MedicalContact:      string(req.MedicalContact),
		MedicalContactPhone: string(req.MedicalContactPhone),
		OtherInfo:           string(req.OtherInfo),
		PaymentType:         string(req.PaymentType),
	}
}

type memberResponse struct {
	ID                  int64     `json:"id"`
	Name                string    `json:"name"`
	Sex                 string    `json:"sex"`
	Age                 string    `json:"age"`
	DOB                 string    `json:"dob"`
	Address             string    `json:"address"`
	State               string    `json:"state"`
	Country             string    `json:"country"`
	Email               string    `json:"email"`
	EmergencyContact    string    `json:"emergency_contact"`
	EmergencyPhone      string    `json:"emergency_phone"`
	MembershipType      string    `json:"membership_type"`
	Medications         string    `json:"medications"`
	Allergies           string    `json:"allergies"`
	PastInjuries        string    `json:"past_injuries"`
	MedicalConditions   string    `json:"medical_conditions"`
	MedicalContact      string    `json:"medical_contact"`
	MedicalContactPhone string    `json:"medical_contact_phone"`
	OtherInfo           string    `json:"other_info"`
	PaymentType         string    `json:"payment_type"`
	CreatedAt           time.Time `json:"created_at"`
}

type createResponse struct {
	Success bool  `json:"success"`
	ID      int64 `json:"id"`
}

type changesResponse struct {
	Success bool  `json:"success"`
	Changes int64 `json:"changes"`
}

func (h *Handlers) ListMembers(w http.ResponseWriter, r *http.Request) {
	items, err := h.Members.List(r.Context())
	if err != nil {
		h.log.InternalError("members: select failed", err)
		writeError(w, http.StatusInternalServerError, memberdomain.ErrSelectFailed.Error())
		return
	}

	response := make([]memberResponse, 0, len(items))
	for _, m := range items {
		response = append(response, toMemberResponse(m))
	}

	writeJSON(w, http.StatusOK, response)
}

func (h *Handlers) CreateMember(w http.ResponseWriter, r *http.Request) {
	var req memberRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}

	created, err := h.Members.Create(r.Context(), req.fields())
	if err != nil {
		h.log.InternalError("members: insert failed", err)
		writeError(w, http.StatusInternalServerError, memberdomain.ErrInsertFailed.Error())
		return
	}

	h.log.Debug("members: created", "id", created.ID)
	writeJSON(w, http.StatusOK, createResponse{Success: true, ID: created.ID})
}

func (h *Handlers) UpdateMember(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req memberRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}

	changes, err := h.Members.Update(r.Context(), id, req.fields())
	if err != nil {
		h.log.InternalError("members: update failed", err, "id", id)
		writeError(w, http.StatusInternalServerError, memberdomain.ErrUpdateFailed.Error())
		return
	}

	writeJSON(w, http.StatusOK, changesResponse{Success: true, Changes: changes})
}

func (h *Handlers) DeleteMember(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	changes, err := h.Members.Delete(r.Context(), id)
	if err != nil {
		h.log.InternalError("members: delete failed", err, "id", id)
		writeError(w, http.StatusInternalServerError, memberdomain.ErrDeleteFailed.Error())
		return
	}

	writeJSON(w, http.StatusOK, changesResponse{Success: true, Changes: changes})
}

func toMemberResponse(m memberdomain.Member) memberResponse {
	return memberResponse{
		ID:                  m.ID,
		Name:                m.Name,
		Sex:                 m.Sex,
		Age:                 m.Age,
		DOB:                 m.DOB,
		Address:             m.Address,
		State:               m.State,
		Country:             m.Country,
		Email:               m.Email,
		EmergencyContact:    m.EmergencyContact,
		EmergencyPhone:      m.EmergencyPhone,
		MembershipType:      m.MembershipType,
		Medications:         m.Medications,
		Allergies:           m.Allergies,
		PastInjuries:        m.PastInjuries,
		MedicalConditions:   m.MedicalConditions,
		MedicalContact:      m.MedicalContact,
		MedicalContactPhone: m.MedicalContactPhone,
		OtherInfo:           m.OtherInfo,
		PaymentType:         m.PaymentType,
		CreatedAt:           m.CreatedAt,
	}
}
