package validatorx

import (
	"sync"

	gpvalidator "github.com/go-playground/validator/v10"
	"github.com/muhammadheryan/medsupply/model"
)

var (
	v   *gpvalidator.Validate
	mut sync.Mutex
)

// Init initializes the validator singleton (idempotent)
func Init() {
	mut.Lock()
	defer mut.Unlock()
	if v != nil {
		return
	}
	v = gpvalidator.New()
	v.RegisterStructValidation(recipientValidation, model.Recipient{})
}

// ValidateStruct validates a struct using go-playground/validator
func ValidateStruct(s interface{}) error {
	if v == nil {
		Init()
	}
	return v.Struct(s)
}

// a prescription goes to the employee or to exactly one of their family members
func recipientValidation(sl gpvalidator.StructLevel) {
	r := sl.Current().Interface().(model.Recipient)
	if r.IsFamilyMember && r.FamilyMemberID == 0 {
		sl.ReportError(r.FamilyMemberID, "FamilyMemberID", "family_member_id", "required_with_flag", "")
	}
	if !r.IsFamilyMember && r.FamilyMemberID != 0 {
		sl.ReportError(r.FamilyMemberID, "FamilyMemberID", "family_member_id", "excluded_without_flag", "")
	}
}
