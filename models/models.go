package models

import (
	"database/sql/driver"
	"time"

	"gorm.io/gorm"
)

// Base model with common fields
type BaseModel struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}

// JSON field type for GORM
type JSON []byte

func (j JSON) Value() (driver.Value, error) {
	if j.IsNull() {
		return nil, nil
	}
	return string(j), nil
}

func (j *JSON) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}
	s, ok := value.([]byte)
	if !ok {
		return nil
	}
	*j = append((*j)[0:0], s...)
	return nil
}

func (j JSON) MarshalJSON() ([]byte, error) {
	if j == nil {
		return []byte("null"), nil
	}
	return j, nil
}

func (j *JSON) UnmarshalJSON(data []byte) error {
	if j == nil {
		return nil
	}
	*j = append((*j)[0:0], data...)
	return nil
}

func (j JSON) IsNull() bool {
	return len(j) == 0 || string(j) == "null"
}

// User model
type User struct {
	BaseModel
	Username string `json:"username" gorm:"size:100;not null;uniqueIndex"`
	Password string `json:"-" gorm:"size:255;not null"`
	Email    string `json:"email" gorm:"size:255;uniqueIndex"`
	Phone    string `json:"phone" gorm:"size:20"`
	Role     string `json:"role" gorm:"size:50;not null;default:'student';type:enum('director','admin','professor','student')"` // director, admin, professor, student
	Status   string `json:"status" gorm:"size:50;not null;default:'active';type:enum('active','inactive','suspended')"`         // active, inactive, suspended
	Avatar   string `json:"avatar" gorm:"size:500"`

	// Relationships
	Student   *Student   `json:"student,omitempty" gorm:"foreignKey:UserID"`
	Professor *Professor `json:"professor,omitempty" gorm:"foreignKey:UserID"`
}

// SchoolClass model, one named group of students (e.g. "L1-CPD")
type SchoolClass struct {
	BaseModel
	Name     string `json:"name" gorm:"size:100;not null;uniqueIndex"`
	Level    string `json:"level" gorm:"size:50"` // L1, L2, L3, M1, M2
	Track    string `json:"track" gorm:"size:100"`
	Capacity int    `json:"capacity"`
	Active   bool   `json:"active" gorm:"default:true"`

	// Relationships
	Students []Student `json:"students,omitempty" gorm:"foreignKey:ClassID"`
	Courses  []Course  `json:"courses,omitempty" gorm:"foreignKey:ClassID"`
}

// Student model
type Student struct {
	BaseModel
	UserID      *uint      `json:"user_id" gorm:"uniqueIndex"`
	ClassID     uint       `json:"class_id"`
	FirstName   string     `json:"first_name" gorm:"size:100"`
	LastName    string     `json:"last_name" gorm:"size:100"`
	Email       string     `json:"email" gorm:"size:255"`
	Phone       string     `json:"phone" gorm:"size:20"`
	DateOfBirth *time.Time `json:"date_of_birth"`
	Address     string     `json:"address" gorm:"size:500"`

	// Relationships
	User  *User       `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Class SchoolClass `json:"class,omitempty" gorm:"foreignKey:ClassID"`
}

// Professor model
type Professor struct {
	BaseModel
	UserID     *uint  `json:"user_id" gorm:"uniqueIndex"`
	FirstName  string `json:"first_name" gorm:"size:100"`
	LastName   string `json:"last_name" gorm:"size:100"`
	Email      string `json:"email" gorm:"size:255"`
	Phone      string `json:"phone" gorm:"size:20"`
	Speciality string `json:"speciality" gorm:"size:200"`
	Grade      string `json:"grade" gorm:"size:100"` // Assistant, Maître de conférences, Professeur
	Active     bool   `json:"active" gorm:"default:true"`

	// Relationships
	User    *User    `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Courses []Course `json:"courses,omitempty" gorm:"foreignKey:ProfessorID"`
}

// Course model (teaching unit, a.k.a. module)
type Course struct {
	BaseModel
	Name        string `json:"name" gorm:"size:255;not null"`
	Code        string `json:"code" gorm:"size:100;uniqueIndex"`
	ClassID     uint   `json:"class_id"`
	ProfessorID uint   `json:"professor_id"`
	Hours       int    `json:"hours"`
	Coefficient int    `json:"coefficient" gorm:"default:1"`
	Semester    string `json:"semester" gorm:"size:50"`
	Description string `json:"description" gorm:"type:text"`
	Status      string `json:"status" gorm:"size:50;default:'active';type:enum('active','inactive')"` // active, inactive

	// Relationships
	Class     SchoolClass `json:"class,omitempty" gorm:"foreignKey:ClassID"`
	Professor Professor   `json:"professor,omitempty" gorm:"foreignKey:ProfessorID"`
}

// Room model
type Room struct {
	BaseModel
	Name     string `json:"name" gorm:"size:100;not null;uniqueIndex"`
	Building string `json:"building" gorm:"size:100"`
	Capacity int    `json:"capacity"`
	Status   string `json:"status" gorm:"size:50;not null;default:'available';type:enum('available','occupied','maintenance')"` // available, occupied, maintenance
}

// Notification model
type Notification struct {
	BaseModel
	UserID  uint       `json:"user_id" gorm:"not null"`
	Title   string     `json:"title" gorm:"size:255;not null"`
	Message string     `json:"message" gorm:"type:text;not null"`
	Type    string     `json:"type" gorm:"size:50;not null;type:enum('info','warning','error','success')"` // info, warning, error, success
	Read    bool       `json:"read" gorm:"default:false"`
	ReadAt  *time.Time `json:"read_at"`

	// Relationships
	User User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

// Log model for activity tracking
type ActivityLog struct {
	BaseModel
	UserID     uint   `json:"user_id"`
	Action     string `json:"action" gorm:"size:100;not null"`
	Resource   string `json:"resource" gorm:"size:100;not null"`
	ResourceID uint   `json:"resource_id"`
	Details    JSON   `json:"details" gorm:"type:json"`
	IPAddress  string `json:"ip_address" gorm:"size:45"`
	UserAgent  string `json:"user_agent" gorm:"size:500"`

	// Relationships
	User User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}
