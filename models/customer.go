// models/customer.go
package models

import (
	"math"
	"time"
)

// Customer is one guest's stay record: who stayed, in which room, for which
// dates, and what the stay costs. Every customer belongs to exactly one user
// (the operator who registered the guest); all reads and writes are scoped by
// user_id.
type Customer struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Name         string `gorm:"size:100" json:"name"`
	MobileNumber string `gorm:"size:15;column:mobile_number" json:"mobileNumber"`
	Nationality  string `json:"nationality"`
	Gender       string `gorm:"size:20" json:"gender"`
	IDNumber     string `gorm:"size:50;column:id_number" json:"idNumber"`
	Address      string `gorm:"type:text" json:"address"`
	BedType      string `gorm:"size:50;column:bed_type" json:"bedType"`
	RoomType     string `gorm:"size:50;column:room_type" json:"roomType"`
	RoomNumber   string `gorm:"size:50;column:room_number;index" json:"roomNumber"`

	BirthDate time.Time `gorm:"column:birth_date" json:"birthDate"`
	CheckIn   time.Time `gorm:"column:check_in" json:"checkIn"`
	CheckOut  time.Time `gorm:"column:check_out" json:"checkOut"`

	RatePerDay float64 `gorm:"type:decimal(18,2);column:rate_per_day" json:"ratePerDay"`
	TotalBill  float64 `gorm:"type:decimal(18,2);column:total_bill" json:"totalBill"`

	IsCheckedOut bool `gorm:"column:is_checked_out;default:false;index" json:"isCheckedOut"`

	// Owning operator. RESTRICT so a user with customers cannot be dropped
	// out from under them.
	UserID uint `gorm:"index;column:user_id" json:"userId"`
	User   User `gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT" json:"-"`
}

// StayDays returns the length of the stay in whole days, rounded up.
// A check-out at or before check-in counts as zero days.
func (c Customer) StayDays() int {
	if !c.CheckOut.After(c.CheckIn) {
		return 0
	}
	return int(math.Ceil(c.CheckOut.Sub(c.CheckIn).Hours() / 24))
}
