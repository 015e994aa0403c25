package dto

import (
	"socialelections/internal/core"
	"time"
)

// 建立 employee
type CreateEmployeeDto struct {
	TechnicalUnitID string     `json:"technicalUnitId" binding:"required"`
	FirstName       string     `json:"firstName" binding:"required"`
	LastName        string     `json:"lastName" binding:"required"`
	Email           string     `json:"email" binding:"required,email"`
	Phone           string     `json:"phone,omitempty"`
	Role            string     `json:"role,omitempty"`
	StartDate       *time.Time `json:"startDate,omitempty"`
	Status          string     `json:"status,omitempty"` // active | inactive，預設 active
}

// UpdateEmployeeDto 只更新有帶的欄位；改 technicalUnitId 會移除舊 unit 的所有 OR membership
type UpdateEmployeeDto struct {
	TechnicalUnitID *string    `json:"technicalUnitId,omitempty" binding:"omitempty,min=1"`
	FirstName       *string    `json:"firstName,omitempty" binding:"omitempty,min=1"`
	LastName        *string    `json:"lastName,omitempty" binding:"omitempty,min=1"`
	Email           *string    `json:"email,omitempty" binding:"omitempty,email"`
	Phone           *string    `json:"phone,omitempty"`
	Role            *string    `json:"role,omitempty"`
	StartDate       *time.Time `json:"startDate,omitempty"`
	Status          *string    `json:"status,omitempty" binding:"omitempty,oneof=active inactive"`
}

// OrMembershipFlagDto 只會出現在 employee 實際擁有的類別
type OrMembershipFlagDto struct {
	Member bool `json:"member"`
	Order  int  `json:"order"`
}

type EmployeeResponseDto struct {
	ID              string                                  `json:"id"`
	TechnicalUnitID string                                  `json:"technicalUnitId"`
	FirstName       string                                  `json:"firstName"`
	LastName        string                                  `json:"lastName"`
	Email           string                                  `json:"email"`
	Phone           string                                  `json:"phone,omitempty"`
	Role            string                                  `json:"role,omitempty"`
	StartDate       *time.Time                              `json:"startDate,omitempty"`
	Status          string                                  `json:"status"`
	OrMembership    map[core.ORCategory]OrMembershipFlagDto `json:"orMembership,omitempty"`
	CreatedAt       time.Time                               `json:"createdAt"`
	UpdatedAt       time.Time                               `json:"updatedAt"`
}
