package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultPhotoURL is the placeholder avatar assigned to every employee who
// has not uploaded an ID-card photo yet.
const DefaultPhotoURL = "https://cdn-icons-png.flaticon.com/512/149/149071.png"

// Employee is the single directory record. The schema is a superset of every
// revision of the API: role, email, address and phone are optional so older
// records without them still decode cleanly.
//
// Password holds the bcrypt digest and is never serialized to JSON; read
// paths additionally go through the explicit projection types below.
type Employee struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name       string             `bson:"name" json:"name"`
	Prno       string             `bson:"prno" json:"prno"`
	Email      string             `bson:"email,omitempty" json:"email,omitempty"`
	MobileNo   string             `bson:"mobileNo" json:"mobileNo"`
	DOB        time.Time          `bson:"dob" json:"dob"`
	Password   string             `bson:"password" json:"-"`
	Department string             `bson:"department" json:"department"`
	Role       string             `bson:"role,omitempty" json:"role,omitempty"`
	Address    string             `bson:"address,omitempty" json:"address,omitempty"`
	Phone      string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Photo      string             `bson:"photo" json:"photo"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
}

// ProfileView is the restricted public projection served by /profile/:empNumber.
type ProfileView struct {
	Name       string    `json:"name"`
	Prno       string    `json:"prno"`
	DOB        time.Time `json:"dob"`
	CreatedAt  time.Time `json:"createdAt"`
	Department string    `json:"department"`
	Role       string    `json:"role,omitempty"`
	Email      string    `json:"email,omitempty"`
}

// CardView is the broader projection served by /user/:prno. It includes
// contact fields and the photo reference but never the password hash.
type CardView struct {
	Prno       string    `json:"prno"`
	Name       string    `json:"name"`
	Email      string    `json:"email,omitempty"`
	Phone      string    `json:"phone,omitempty"`
	Department string    `json:"department"`
	DOB        time.Time `json:"dob"`
	Address    string    `json:"address,omitempty"`
	Photo      string    `json:"photo"`
	Role       string    `json:"role,omitempty"`
}

// DirectoryEntry is the projection used by the full directory listing. It
// carries every stored field except the password hash.
type DirectoryEntry struct {
	ID         primitive.ObjectID `json:"id"`
	Name       string             `json:"name"`
	Prno       string             `json:"prno"`
	Email      string             `json:"email,omitempty"`
	MobileNo   string             `json:"mobileNo"`
	DOB        time.Time          `json:"dob"`
	Department string             `json:"department"`
	Role       string             `json:"role,omitempty"`
	Address    string             `json:"address,omitempty"`
	Phone      string             `json:"phone,omitempty"`
	Photo      string             `json:"photo"`
	CreatedAt  time.Time          `json:"createdAt"`
}

func (e *Employee) Profile() ProfileView {
	return ProfileView{
		Name:       e.Name,
		Prno:       e.Prno,
		DOB:        e.DOB,
		CreatedAt:  e.CreatedAt,
		Department: e.Department,
		Role:       e.Role,
		Email:      e.Email,
	}
}

func (e *Employee) Card() CardView {
	return CardView{
		Prno:       e.Prno,
		Name:       e.Name,
		Email:      e.Email,
		Phone:      e.Phone,
		Department: e.Department,
		DOB:        e.DOB,
		Address:    e.Address,
		Photo:      e.Photo,
		Role:       e.Role,
	}
}

func (e *Employee) Directory() DirectoryEntry {
	return DirectoryEntry{
		ID:         e.ID,
		Name:       e.Name,
		Prno:       e.Prno,
		Email:      e.Email,
		MobileNo:   e.MobileNo,
		DOB:        e.DOB,
		Department: e.Department,
		Role:       e.Role,
		Address:    e.Address,
		Phone:      e.Phone,
		Photo:      e.Photo,
		CreatedAt:  e.CreatedAt,
	}
}
