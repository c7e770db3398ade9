package validation

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func futureDate() string {
	return time.Now().UTC().AddDate(0, 1, 0).Format("2006-01-02")
}

func validBookingForm() BookingForm {
	return BookingForm{
		TourPackageID:  3,
		TravelDate:     futureDate(),
		Phone:          "0812345678",
		Country:        "Japan",
		NumberOfPeople: 4,
	}
}

func fieldMessages(t *testing.T, err error) map[string]string {
	t.Helper()
	var fe FieldErrors
	if !errors.As(err, &fe) {
		t.Fatalf("expected FieldErrors, got %T: %v", err, err)
	}
	out := make(map[string]string, len(fe))
	for _, f := range fe {
		out[f.Field] = f.Message
	}
	return out
}

func TestBookingFormValid(t *testing.T) {
	v := New()
	if err := v.Struct(validBookingForm()); err != nil {
		t.Fatalf("valid form rejected: %v", err)
	}
}

func TestBookingFormBounds(t *testing.T) {
	v := New()

	form := validBookingForm()
	form.NumberOfPeople = 21
	fields := fieldMessages(t, v.Struct(form))
	if _, ok := fields["numberOfPeople"]; !ok {
		t.Error("expected numberOfPeople failure for 21 people")
	}

	form = validBookingForm()
	form.Phone = "123"
	fields = fieldMessages(t, v.Struct(form))
	if _, ok := fields["phone"]; !ok {
		t.Error("expected phone failure for too-short phone")
	}

	form = validBookingForm()
	form.TravelDate = "2001-01-01"
	fields = fieldMessages(t, v.Struct(form))
	if msg := fields["travelDate"]; msg != "Travel date must be a future date" {
		t.Errorf("travelDate message = %q", msg)
	}

	form = validBookingForm()
	form.Country = "J"
	if err := v.Struct(form); err == nil {
		t.Error("expected country failure for one character")
	}
}

func validPackageForm() TourPackageForm {
	return TourPackageForm{
		Title:            "Highlights of Kyushu",
		Country:          "Japan",
		PackageType:      "Adventure",
		Price:            500,
		Image:            "/images/kyushu.jpg",
		Alt:              "Kyushu volcano trail",
		ShortDescription: "A week across southern Japan.",
		Description:      "Seven days of onsen towns, volcano hikes and coastal trains.",
		Locations: []LocationForm{
			{Name: "Beppu", Description: "Hot spring town on the east coast.", Image: ""},
		},
		TourPlanDays: []TourPlanDayForm{
			{Title: "Day 1", Activity: "Arrival and onsen", Description: "Check in and soak the flight off.", EndOfTheDay: "Dinner at the ryokan"},
		},
	}
}

func TestTourPackageFormValid(t *testing.T) {
	v := New()
	if err := v.Struct(validPackageForm()); err != nil {
		t.Fatalf("valid form rejected: %v", err)
	}
}

func TestTourPackageFormRequiresOneOfEachCollection(t *testing.T) {
	v := New()

	form := validPackageForm()
	form.Locations = []LocationForm{}
	fields := fieldMessages(t, v.Struct(form))
	msg, ok := fields["locations"]
	if !ok {
		t.Fatal("expected a locations failure for an empty collection")
	}
	if !strings.Contains(msg, "At least 1") {
		t.Errorf("locations message = %q", msg)
	}

	form = validPackageForm()
	form.TourPlanDays = nil
	if err := v.Struct(form); err == nil {
		t.Error("expected tourPlanDays failure for a missing collection")
	}
}

func TestTourPackageFormValidatesNestedRows(t *testing.T) {
	v := New()
	form := validPackageForm()
	form.TourPlanDays[0].Activity = "nap"
	fields := fieldMessages(t, v.Struct(form))
	if _, ok := fields["tourPlanDays[0].activity"]; !ok {
		t.Errorf("expected nested activity failure, got %v", fields)
	}
}

func TestEmployeeFormRole(t *testing.T) {
	v := New()
	form := EmployeeForm{Name: "Ana", Email: "ana@example.com", Password: "secret1", Role: "CUSTOMER"}
	fields := fieldMessages(t, v.Struct(form))
	if _, ok := fields["role"]; !ok {
		t.Error("expected role failure for CUSTOMER")
	}

	form.Role = "EMPLOYEE"
	if err := v.Struct(form); err != nil {
		t.Errorf("valid employee form rejected: %v", err)
	}
}

func TestProfileFormOptionalNewPassword(t *testing.T) {
	v := New()
	form := ProfileForm{Name: "Ana", Email: "ana@example.com", CurrentPassword: "oldpass"}
	if err := v.Struct(form); err != nil {
		t.Errorf("empty new password should be allowed: %v", err)
	}

	form.NewPassword = "short"
	if err := v.Struct(form); err == nil {
		t.Error("expected newPassword failure below six characters")
	}
}

func TestOTPForm(t *testing.T) {
	v := New()
	form := OTPForm{Email: "ana@example.com", OTP: "123456"}
	if err := v.Struct(form); err != nil {
		t.Errorf("valid otp rejected: %v", err)
	}

	form.OTP = "12345"
	if err := v.Struct(form); err == nil {
		t.Error("expected failure for five digits")
	}

	form.OTP = "12345a"
	if err := v.Struct(form); err == nil {
		t.Error("expected failure for non-numeric otp")
	}
}
