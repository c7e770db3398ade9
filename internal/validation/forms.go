package validation

import "tourgate/internal/domain"

// BookingForm is the create/modify booking submission.
type BookingForm struct {
	TourPackageID   domain.ID `json:"tourPackageId" validate:"required,min=1"`
	TravelDate      string    `json:"travelDate" validate:"required,futuredate"`
	Phone           string    `json:"phone" validate:"required,min=10,max=15"`
	Country         string    `json:"country" validate:"required,min=2,max=100"`
	NumberOfPeople  int       `json:"numberOfPeople" validate:"required,min=1,max=20"`
	SpecialRequests string    `json:"specialRequests" validate:"omitempty"`
}

// LocationForm is one dynamic row of the package authoring form.
type LocationForm struct {
	Name        string `json:"name" validate:"required,min=2"`
	Description string `json:"description" validate:"required,min=10"`
	Image       string `json:"image"`
}

// TourPlanDayForm is one itinerary day row.
type TourPlanDayForm struct {
	Title       string `json:"title" validate:"required,min=2"`
	Activity    string `json:"activity" validate:"required,min=5"`
	Description string `json:"description" validate:"required,min=10"`
	EndOfTheDay string `json:"endOfTheDay" validate:"required,min=3"`
}

// TourPackageForm is the package authoring submission. Both collections need
// at least one row; removing every row in the UI still has to fail here with
// a field message rather than being silently accepted.
type TourPackageForm struct {
	Title            string            `json:"title" validate:"required,min=3,max=255"`
	Country          string            `json:"country" validate:"required,min=2,max=100"`
	PackageType      string            `json:"packageType" validate:"required,min=3,max=100"`
	Price            float64           `json:"prices" validate:"required,gt=0"`
	Image            string            `json:"image" validate:"required,min=3"`
	Alt              string            `json:"alt" validate:"required,min=3,max=255"`
	ShortDescription string            `json:"shortDescription" validate:"required,min=10,max=500"`
	Description      string            `json:"description" validate:"required,min=20"`
	Locations        []LocationForm    `json:"locations" validate:"required,min=1,dive"`
	TourPlanDays     []TourPlanDayForm `json:"tourPlanDays" validate:"required,min=1,dive"`
}

// EmployeeForm creates a staff account.
type EmployeeForm struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email,max=100"`
	Password string `json:"password" validate:"required,min=6,max=50"`
	Role     string `json:"role" validate:"required,oneof=EMPLOYEE ADMIN"`
}

// ProfileForm updates the current user's own account. NewPassword is
// optional but must meet the minimum length when present.
type ProfileForm struct {
	Name            string `json:"name" validate:"required,min=2,max=100"`
	Email           string `json:"email" validate:"required,email"`
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"omitempty,min=6"`
}

// ForgotPasswordForm starts the OTP flow.
type ForgotPasswordForm struct {
	Email string `json:"email" validate:"required,email"`
}

// OTPForm verifies the emailed code.
type OTPForm struct {
	Email string `json:"email" validate:"required,email"`
	OTP   string `json:"otp" validate:"required,len=6,numeric"`
}
