// services/customer_service.go
package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"
	"sort"
	"strings"
	"time"

	"managebooking-backend/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ErrCustomerNotFound is returned when a customer does not exist or belongs
// to a different user. The two cases are deliberately indistinguishable to
// the caller.
var ErrCustomerNotFound = errors.New("customer_not_found")

// ValidationErrors maps a field name to its violation message. All checks run
// before returning so the caller can present every problem at once.
type ValidationErrors map[string]string

func (v ValidationErrors) Error() string {
	fields := make([]string, 0, len(v))
	for f := range v {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+v[f])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// CustomerInput carries the fields an operator submits when registering or
// editing a guest. IsCheckedOut is a pointer so an edit can leave the flag
// untouched when the form omits it.
type CustomerInput struct {
	Name         string    `json:"name"`
	MobileNumber string    `json:"mobileNumber"`
	Nationality  string    `json:"nationality"`
	Gender       string    `json:"gender"`
	IDNumber     string    `json:"idNumber"`
	Address      string    `json:"address"`
	BedType      string    `json:"bedType"`
	RoomType     string    `json:"roomType"`
	RoomNumber   string    `json:"roomNumber"`
	BirthDate    time.Time `json:"birthDate"`
	CheckIn      time.Time `json:"checkIn"`
	CheckOut     time.Time `json:"checkOut"`
	RatePerDay   float64   `json:"ratePerDay"`
	IsCheckedOut *bool     `json:"isCheckedOut,omitempty"`
}

// CustomerService owns the guest lifecycle: registration, edits, checkout,
// reactivation and deletion, plus the occupancy and billing rules that go
// with them. Every method takes the owning user's id explicitly.
type CustomerService struct {
	DB *gorm.DB
}

func NewCustomerService(db *gorm.DB) *CustomerService {
	return &CustomerService{DB: db}
}

// CalculateTotalBill is rate-per-day times the stay length in whole days,
// rounded up. A stay of 25 hours bills 2 days. Non-positive durations bill
// 0.00 rather than going negative.
func CalculateTotalBill(checkIn, checkOut time.Time, ratePerDay float64) float64 {
	if !checkOut.After(checkIn) {
		return 0
	}
	days := math.Ceil(checkOut.Sub(checkIn).Hours() / 24)
	return days * ratePerDay
}

// validate runs every field check and returns the full set of violations.
// excludeID skips a customer's own row in the occupancy check (0 for new
// registrations). Must run inside the same transaction as the write so the
// occupancy answer cannot go stale.
func (s *CustomerService) validate(tx *gorm.DB, userID uint, in CustomerInput, excludeID uint) ValidationErrors {
	errs := ValidationErrors{}

	required := []struct {
		field, value, label string
	}{
		{"name", in.Name, "Name"},
		{"mobileNumber", in.MobileNumber, "Mobile Number"},
		{"nationality", in.Nationality, "Nationality"},
		{"gender", in.Gender, "Gender"},
		{"idNumber", in.IDNumber, "ID"},
		{"address", in.Address, "Address"},
		{"bedType", in.BedType, "Bed Type"},
		{"roomType", in.RoomType, "Room Type"},
		{"roomNumber", in.RoomNumber, "Room Number"},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			errs[r.field] = r.label + " is required."
		}
	}
	if in.BirthDate.IsZero() {
		errs["birthDate"] = "Birth Date is required."
	}

	if in.CheckIn.IsZero() {
		errs["checkIn"] = "Check In date and time is required."
	}
	if in.CheckOut.IsZero() {
		errs["checkOut"] = "Check Out date and time is required."
	}
	if !in.CheckIn.IsZero() && !in.CheckOut.IsZero() && !in.CheckOut.After(in.CheckIn) {
		errs["checkOut"] = "Check Out date and time must be after Check In date and time."
	}
	if in.RatePerDay <= 0 {
		errs["ratePerDay"] = "Rate per Day must be greater than zero."
	}

	// Occupancy invariant: within one user's active customers the room
	// numbers must be pairwise distinct.
	if strings.TrimSpace(in.RoomNumber) != "" {
		var count int64
		q := tx.Model(&models.Customer{}).
			Where("user_id = ? AND room_number = ? AND is_checked_out = ?", userID, in.RoomNumber, false)
		if excludeID != 0 {
			q = q.Where("id <> ?", excludeID)
		}
		if err := q.Count(&count).Error; err != nil {
			log.Printf("❌ occupancy check failed for user %d room %s: %v", userID, in.RoomNumber, err)
			errs["roomNumber"] = "Could not verify room availability. Please try again."
		} else if count > 0 {
			if excludeID != 0 {
				errs["roomNumber"] = fmt.Sprintf("Room %s is already occupied by another customer.", in.RoomNumber)
			} else {
				errs["roomNumber"] = fmt.Sprintf("Room %s is already occupied.", in.RoomNumber)
			}
		}
	}

	return errs
}

// recordEvent appends an audit row inside the current transaction.
func recordEvent(tx *gorm.DB, c *models.Customer, action string) error {
	details, _ := json.Marshal(map[string]interface{}{
		"roomNumber": c.RoomNumber,
		"totalBill":  c.TotalBill,
	})
	ev := models.BookingEvent{
		CustomerID: c.ID,
		UserID:     c.UserID,
		Action:     action,
		Details:    datatypes.JSON(details),
	}
	return tx.Create(&ev).Error
}

// Register validates the input, computes the total bill and persists a new
// active customer for userID. The occupancy check and the insert share one
// transaction so two concurrent registrations cannot both claim a room.
func (s *CustomerService) Register(userID uint, in CustomerInput) (*models.Customer, error) {
	var created models.Customer

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		if errs := s.validate(tx, userID, in, 0); len(errs) > 0 {
			return errs
		}

		created = models.Customer{
			Name:         in.Name,
			MobileNumber: in.MobileNumber,
			Nationality:  in.Nationality,
			Gender:       in.Gender,
			IDNumber:     in.IDNumber,
			Address:      in.Address,
			BedType:      in.BedType,
			RoomType:     in.RoomType,
			RoomNumber:   in.RoomNumber,
			BirthDate:    in.BirthDate,
			CheckIn:      in.CheckIn,
			CheckOut:     in.CheckOut,
			RatePerDay:   in.RatePerDay,
			TotalBill:    CalculateTotalBill(in.CheckIn, in.CheckOut, in.RatePerDay),
			IsCheckedOut: false,
			UserID:       userID,
		}

		if err := tx.Create(&created).Error; err != nil {
			return fmt.Errorf("failed to create customer: %w", err)
		}
		return recordEvent(tx, &created, models.EventRegistered)
	})
	if txErr != nil {
		return nil, txErr
	}

	log.Printf("✅ Customer %s registered in room %s for user %d (total bill: %.2f)",
		created.Name, created.RoomNumber, userID, created.TotalBill)
	return &created, nil
}

// Update re-runs the registration validations (occupancy excluding the
// customer's own row), recomputes the bill from the possibly changed
// dates/rate, and persists all fields. NotFound when the row is absent or
// owned by someone else.
func (s *CustomerService) Update(customerID, userID uint, in CustomerInput) (*models.Customer, error) {
	var updated models.Customer

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		var existing models.Customer
		if err := tx.Where("id = ? AND user_id = ?", customerID, userID).First(&existing).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCustomerNotFound
			}
			return fmt.Errorf("failed to load customer %d: %w", customerID, err)
		}

		if errs := s.validate(tx, userID, in, customerID); len(errs) > 0 {
			return errs
		}

		existing.Name = in.Name
		existing.MobileNumber = in.MobileNumber
		existing.Nationality = in.Nationality
		existing.Gender = in.Gender
		existing.IDNumber = in.IDNumber
		existing.Address = in.Address
		existing.BedType = in.BedType
		existing.RoomType = in.RoomType
		existing.RoomNumber = in.RoomNumber
		existing.BirthDate = in.BirthDate
		existing.CheckIn = in.CheckIn
		existing.CheckOut = in.CheckOut
		existing.RatePerDay = in.RatePerDay
		existing.TotalBill = CalculateTotalBill(in.CheckIn, in.CheckOut, in.RatePerDay)
		if in.IsCheckedOut != nil {
			existing.IsCheckedOut = *in.IsCheckedOut
		}

		if err := tx.Save(&existing).Error; err != nil {
			return fmt.Errorf("failed to update customer %d: %w", customerID, err)
		}
		updated = existing
		return recordEvent(tx, &updated, models.EventUpdated)
	})
	if txErr != nil {
		return nil, txErr
	}

	log.Printf("✅ Customer %d updated for user %d (total bill: %.2f)", customerID, userID, updated.TotalBill)
	return &updated, nil
}

// Checkout flips the flag and nothing else; the total bill stays frozen at
// its last computed value. Checking out an already checked-out customer is a
// no-op.
func (s *CustomerService) Checkout(customerID, userID uint) (*models.Customer, error) {
	return s.setCheckedOut(customerID, userID, true, models.EventCheckedOut)
}

// Reactivate brings a checked-out customer back to active. Scoped to the
// calling user like every other mutation.
func (s *CustomerService) Reactivate(customerID, userID uint) (*models.Customer, error) {
	return s.setCheckedOut(customerID, userID, false, models.EventReactivated)
}

func (s *CustomerService) setCheckedOut(customerID, userID uint, flag bool, action string) (*models.Customer, error) {
	var customer models.Customer

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ? AND user_id = ?", customerID, userID).First(&customer).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCustomerNotFound
			}
			return fmt.Errorf("failed to load customer %d: %w", customerID, err)
		}

		if customer.IsCheckedOut == flag {
			return nil
		}

		customer.IsCheckedOut = flag
		if err := tx.Model(&customer).Update("is_checked_out", flag).Error; err != nil {
			return fmt.Errorf("failed to update customer %d: %w", customerID, err)
		}
		return recordEvent(tx, &customer, action)
	})
	if txErr != nil {
		return nil, txErr
	}

	log.Printf("✅ Customer %d %s for user %d (total bill: %.2f)", customerID, action, userID, customer.TotalBill)
	return &customer, nil
}

// Delete removes the customer scoped to (id, user).
func (s *CustomerService) Delete(customerID, userID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var customer models.Customer
		if err := tx.Where("id = ? AND user_id = ?", customerID, userID).First(&customer).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCustomerNotFound
			}
			return fmt.Errorf("failed to load customer %d: %w", customerID, err)
		}

		if err := tx.Delete(&customer).Error; err != nil {
			return fmt.Errorf("failed to delete customer %d: %w", customerID, err)
		}
		return recordEvent(tx, &customer, models.EventDeleted)
	})
}

// List filters: "" (everything), "in-hotel" (active), "checkout" (checked out).
const (
	FilterInHotel  = "in-hotel"
	FilterCheckout = "checkout"
)

// List returns the user's customers, newest first, optionally filtered by
// checked-out state.
func (s *CustomerService) List(userID uint, filter string) ([]models.Customer, error) {
	q := s.DB.Where("user_id = ?", userID)
	switch filter {
	case FilterInHotel:
		q = q.Where("is_checked_out = ?", false)
	case FilterCheckout:
		q = q.Where("is_checked_out = ?", true)
	}

	var customers []models.Customer
	if err := q.Order("created_at DESC").Find(&customers).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve customers: %w", err)
	}
	return customers, nil
}

// GetByID loads one customer scoped to its owner.
func (s *CustomerService) GetByID(customerID, userID uint) (*models.Customer, error) {
	var customer models.Customer
	if err := s.DB.Where("id = ? AND user_id = ?", customerID, userID).First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to load customer %d: %w", customerID, err)
	}
	return &customer, nil
}

// OccupiedRooms lists the room numbers of the user's active customers,
// excluding empty values and, when excludeID is non-zero, that customer's own
// room. Used to populate the registration/edit forms.
func (s *CustomerService) OccupiedRooms(userID, excludeID uint) ([]string, error) {
	q := s.DB.Model(&models.Customer{}).
		Where("user_id = ? AND is_checked_out = ? AND room_number <> ''", userID, false)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}

	var rooms []string
	if err := q.Order("room_number ASC").Pluck("room_number", &rooms).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve occupied rooms: %w", err)
	}
	return rooms, nil
}

// Events returns the audit trail for one customer, newest first.
func (s *CustomerService) Events(customerID, userID uint) ([]models.BookingEvent, error) {
	// Ownership gate first; events themselves are not user-scoped rows.
	if _, err := s.GetByID(customerID, userID); err != nil {
		return nil, err
	}

	var events []models.BookingEvent
	if err := s.DB.Where("customer_id = ?", customerID).
		Order("id DESC").
		Find(&events).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve events: %w", err)
	}
	return events, nil
}
