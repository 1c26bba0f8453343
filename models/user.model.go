package models

import "gorm.io/gorm"

// User represents a platform account (employees taking the awareness course)
type User struct {
	gorm.Model
	Name       string `json:"name"`
	Email      string `json:"email" gorm:"uniqueIndex;not null"`
	Password   string `json:"-"`
	Department string `json:"department"`
	Role       string `json:"role" gorm:"default:EMPLOYEE"` // EMPLOYEE, SECURITY, ADMIN
	IsDeleted  bool   `gorm:"default:false"`
}
