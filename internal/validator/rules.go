package validator

import (
	"log"

	"wealthcoach_backend/internal/auth"
	"wealthcoach_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules adds the enum checks used by the DTO binding tags.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-role", validateRole)
	mustRegister("is-employment-type", validateEmploymentType)
	mustRegister("is-loan-type", validateLoanType)
	mustRegister("is-consent-type", validateConsentType)
	mustRegister("is-applicant-type", validateApplicantType)
}

// Empty values pass; pair with 'required' when the field is mandatory.

func validateRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return auth.ValidateRole(value) == nil
}

func validateEmploymentType(fl validator.FieldLevel) bool {
	switch models.EmploymentType(fl.Field().String()) {
	case "", models.EmploymentEmployed, models.EmploymentSelfEmployed,
		models.EmploymentUnemployed, models.EmploymentRetired, models.EmploymentStudent:
		return true
	}
	return false
}

func validateLoanType(fl validator.FieldLevel) bool {
	switch models.LoanType(fl.Field().String()) {
	case "", models.LoanPersonal, models.LoanRealEstate, models.LoanCar,
		models.LoanBusiness, models.LoanEducation, models.LoanOther:
		return true
	}
	return false
}

func validateConsentType(fl validator.FieldLevel) bool {
	switch models.ConsentType(fl.Field().String()) {
	case "", models.ConsentDataProcessing, models.ConsentMarketing,
		models.ConsentDataSharing, models.ConsentTermsOfService:
		return true
	}
	return false
}

func validateApplicantType(fl validator.FieldLevel) bool {
	switch models.ApplicantType(fl.Field().String()) {
	case "", models.ApplicantPrimary, models.ApplicantSecondary:
		return true
	}
	return false
}
