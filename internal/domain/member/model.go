package member

import "time"

// Member is one gym membership record. Every field except ID and CreatedAt
// is optional free text; required-field checks live in the client.
type Member struct {
	ID                  int64     `gorm:"primaryKey;autoIncrement"`
	Name                string    `gorm:"type:text"`
	Sex                 string    `gorm:"type:text"`
	Age                 string    `gorm:"type:text"`
	DOB                 string    `gorm:"column:dob;type:text"`
	Address             string    `gorm:"type:text"`
	State               string    `gorm:"type:text"`
	Country             string    `gorm:"type:text"`
	Email               string    `gorm:"type:text"`
	EmergencyContact    string    `gorm:"type:text"`
	EmergencyPhone      string    `gorm:"type:text"`
	MembershipType      string    `gorm:"type:text"`
	Medications         string    `gorm:"type:text"`
	Allergies           string    `gorm:"type:text"`
	PastInjuries        string    `gorm:"type:text"`
	MedicalConditions   string    `gorm:"type:text"`
	MedicalContact      string    `gorm:"type:text"`
	MedicalContactPhone string    `gorm:"type:text"`
	OtherInfo           string    `gorm:"type:text"`
	PaymentType         string    `gorm:"type:text"`
	// CreatedAt is stamped by gorm when the row is inserted; updates never
	// include it.
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Member) TableName() string {
	return "members"
}

// Fields is the client-writable part of a member: everything but ID and
// CreatedAt. Create and Update both take a full set of fields.
type Fields struct {
	Name                string
	Sex                 string
	Age                 string
	DOB                 string
	Address             string
	State               string
	Country             string
	Email               string
	EmergencyContact    string
	EmergencyPhone      string
	MembershipType      string
	Medications         string
	Allergies           string
	PastInjuries        string
	MedicalConditions   string
	MedicalContact      string
	MedicalContactPhone string
	OtherInfo           string
	PaymentType         string
}

// NewMember builds an unsaved record from fields.
func NewMember(f Fields) Member {
	return Member{
		Name:                f.Name,
		Sex:                 f.Sex,
		Age:                 f.Age,
		DOB:                 f.DOB,
		Address:             f.Address,
		State:               f.State,
		Country:             f.Country,
		Email:               f.Email,
		EmergencyContact:    f.EmergencyContact,
		EmergencyPhone:      f.EmergencyPhone,
		MembershipType:      f.MembershipType,
		Medications:         f.Medications,
		Allergies:           f.Allergies,
		PastInjuries:        f.PastInjuries,
		MedicalConditions:   f.MedicalConditions,
		MedicalContact:      f.MedicalContact,
		MedicalContactPhone: f.MedicalContactPhone,
		OtherInfo:           f.OtherInfo,
		PaymentType:         f.PaymentType,
	}
}

func (m Member) Fields() Fields {
	return Fields{
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
	}
}

// Columns maps column names to values for a full-row replacement. id and
// created_at are never part of it.
func (f Fields) Columns() map[string]interface{} {
	return map[string]interface{}{
		"name":                  f.Name,
		"sex":                   f.Sex,
		"age":                   f.Age,
		"dob":                   f.DOB,
		"address":               f.Address,
		"state":                 f.State,
		"country":               f.Country,
		"email":                 f.Email,
		"emergency_contact":     f.EmergencyContact,
		"emergency_phone":       f.EmergencyPhone,
		"membership_type":       f.MembershipType,
		"medications":           f.Medications,
		"allergies":             f.Allergies,
		"past_injuries":         f.PastInjuries,
		"medical_conditions":    f.MedicalConditions,
		"medical_contact":       f.MedicalContact,
		"medical_contact_phone": f.MedicalContactPhone,
		"other_info":            f.OtherInfo,
		"payment_type":          f.PaymentType,
	}
}
