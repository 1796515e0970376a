package models

import (
	"encoding/json"
	"fmt"
)

// StringField distinguishes an absent key (Set false) from an explicit
// null (Set true, nil Value) and from a value (Set true, non-nil Value).
// Absent keys leave the stored column untouched; explicit nulls clear it.
type StringField struct {
	Set   bool
	Value *string
}

func (f *StringField) UnmarshalJSON(data []byte) error {
	f.Set = true
	return json.Unmarshal(data, &f.Value)
}

type IntField struct {
	Set   bool
	Value *int
}

func (f *IntField) UnmarshalJSON(data []byte) error {
	f.Set = true
	return json.Unmarshal(data, &f.Value)
}

type FloatField struct {
	Set   bool
	Value *float64
}

func (f *FloatField) UnmarshalJSON(data []byte) error {
	f.Set = true
	return json.Unmarshal(data, &f.Value)
}

type PersonalSection struct {
	Email     StringField `json:"email"`
	FirstName StringField `json:"firstName"`
	LastName  StringField `json:"lastName"`
	Age       IntField    `json:"age"`
}

func (s *PersonalSection) HasUpdates() bool {
	return s.Email.Set || s.FirstName.Set || s.LastName.Set || s.Age.Set
}

// BusinessSection accepts only the known business profile fields.
// Unknown keys fail decoding instead of being silently dropped.
type BusinessSection struct {
	BusinessName      StringField `json:"businessName"`
	Industry          StringField `json:"industry"`
	BusinessStage     StringField `json:"businessStage"`
	RevenueProjection FloatField  `json:"revenueProjection"`
	YearsOfExperience IntField    `json:"yearsOfExperience"`
	EducationLevel    StringField `json:"educationLevel"`
}

var businessFields = map[string]bool{
	"businessName":      true,
	"industry":          true,
	"businessStage":     true,
	"revenueProjection": true,
	"yearsOfExperience": true,
	"educationLevel":    true,
}

func (s *BusinessSection) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	for key := range raw {
		if !businessFields[key] {
			return fmt.Errorf("unknown business field %q", key)
		}
	}
	type section BusinessSection
	return json.Unmarshal(data, (*section)(s))
}

func (s *BusinessSection) HasUpdates() bool {
	return s.BusinessName.Set || s.Industry.Set || s.BusinessStage.Set ||
		s.RevenueProjection.Set || s.YearsOfExperience.Set || s.EducationLevel.Set
}

// FinancialsSection accepts only the known financial data fields.
type FinancialsSection struct {
	MonthlyIncome   FloatField `json:"monthlyIncome"`
	MonthlyExpenses FloatField `json:"monthlyExpenses"`
	SavingsAmount   FloatField `json:"savingsAmount"`
	DebtAmount      FloatField `json:"debtAmount"`
}

var financialsFields = map[string]bool{
	"monthlyIncome":   true,
	"monthlyExpenses": true,
	"savingsAmount":   true,
	"debtAmount":      true,
}

func (s *FinancialsSection) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	for key := range raw {
		if !financialsFields[key] {
			return fmt.Errorf("unknown financials field %q", key)
		}
	}
	type section FinancialsSection
	return json.Unmarshal(data, (*section)(s))
}

func (s *FinancialsSection) HasUpdates() bool {
	return s.MonthlyIncome.Set || s.MonthlyExpenses.Set ||
		s.SavingsAmount.Set || s.DebtAmount.Set
}

// ProfileSync is the request document for the profile sync endpoint.
// Sections left out of the request stay nil and are skipped entirely.
type ProfileSync struct {
	FirebaseUID string             `json:"userId"`
	Personal    *PersonalSection   `json:"personal"`
	Business    *BusinessSection   `json:"business"`
	Financials  *FinancialsSection `json:"financials"`
}
