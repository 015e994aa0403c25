package dto

import "time"

type AddressDto struct {
	Street     string `json:"street"`
	Number     string `json:"number"`
	PostalCode string `json:"postalCode"`
	City       string `json:"city"`
	Country    string `json:"country"`
}

type ElectionBodiesDto struct {
	CPBW      bool `json:"cpbw"`
	OR        bool `json:"or"`
	SDWorkers bool `json:"sdWorkers"`
	SDClerks  bool `json:"sdClerks"`
}

// 建立 technical unit；manager 另外透過 PUT /manager 指派
type CreateTechnicalUnitDto struct {
	CompanyID         string            `json:"companyId" binding:"required"`
	Name              string            `json:"name" binding:"required"`
	Code              string            `json:"code" binding:"required"`
	Description       string            `json:"description,omitempty"`
	NumberOfEmployees int               `json:"numberOfEmployees" binding:"gte=0"`
	Department        string            `json:"department,omitempty"`
	Location          AddressDto        `json:"location"`
	Status            string            `json:"status,omitempty"`
	Language          string            `json:"language" binding:"required,oneof=N F N+F D"`
	PCWorkers         string            `json:"pcWorkers,omitempty"`
	PCClerks          string            `json:"pcClerks,omitempty"`
	FodDossierBase    string            `json:"fodDossierBase,omitempty"`
	FodDossierSuffix  string            `json:"fodDossierSuffix,omitempty"`
	ElectionBodies    ElectionBodiesDto `json:"electionBodies"`
}

// UpdateTechnicalUnitDto 只更新有帶的欄位；manager 不在這裡改
type UpdateTechnicalUnitDto struct {
	Name              *string            `json:"name,omitempty" binding:"omitempty,min=1"`
	Code              *string            `json:"code,omitempty" binding:"omitempty,min=1"`
	Description       *string            `json:"description,omitempty"`
	NumberOfEmployees *int               `json:"numberOfEmployees,omitempty" binding:"omitempty,gte=0"`
	Department        *string            `json:"department,omitempty"`
	Location          *AddressDto        `json:"location,omitempty"`
	Status            *string            `json:"status,omitempty" binding:"omitempty,oneof=active inactive"`
	Language          *string            `json:"language,omitempty" binding:"omitempty,oneof=N F N+F D"`
	PCWorkers         *string            `json:"pcWorkers,omitempty"`
	PCClerks          *string            `json:"pcClerks,omitempty"`
	FodDossierBase    *string            `json:"fodDossierBase,omitempty"`
	FodDossierSuffix  *string            `json:"fodDossierSuffix,omitempty"`
	ElectionBodies    *ElectionBodiesDto `json:"electionBodies,omitempty"`
}

type SetManagerDto struct {
	EmployeeID string `json:"employeeId" binding:"required"`
}

type TechnicalUnitResponseDto struct {
	ID                string            `json:"id"`
	CompanyID         string            `json:"companyId"`
	Name              string            `json:"name"`
	Code              string            `json:"code"`
	Description       string            `json:"description,omitempty"`
	NumberOfEmployees int               `json:"numberOfEmployees"`
	Manager           string            `json:"manager"` // 空字串代表沒有 manager
	Department        string            `json:"department,omitempty"`
	Location          AddressDto        `json:"location"`
	Status            string            `json:"status"`
	Language          string            `json:"language"`
	PCWorkers         string            `json:"pcWorkers,omitempty"`
	PCClerks          string            `json:"pcClerks,omitempty"`
	FodDossierBase    string            `json:"fodDossierBase,omitempty"`
	FodDossierSuffix  string            `json:"fodDossierSuffix,omitempty"`
	ElectionBodies    ElectionBodiesDto `json:"electionBodies"`
	CreatedAt         time.Time         `json:"createdAt"`
	UpdatedAt         time.Time         `json:"updatedAt"`
}
