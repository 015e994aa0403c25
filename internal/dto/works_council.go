package dto

import "socialelections/internal/core"

type MemberDto struct {
	EmployeeID string          `json:"employeeId" binding:"required"`
	Category   core.ORCategory `json:"category" binding:"required,or_category"`
}

// bulk 操作：無法解析或不屬於該 unit 的 id 會被略過
type BulkMembersDto struct {
	EmployeeIDs []string        `json:"employeeIds" binding:"required"`
	Category    core.ORCategory `json:"category" binding:"required,or_category"`
}

type ReorderDto struct {
	Category   core.ORCategory `json:"category" binding:"required,or_category"`
	OrderedIDs []string        `json:"orderedIds" binding:"required"`
}

// ImportResultDto 是 Excel 匯入後每個類別的結果
type ImportResultDto struct {
	Rows       int                     `json:"rows"`
	Matched    int                     `json:"matched"`
	Unmatched  []string                `json:"unmatched,omitempty"`
	Categories map[core.ORCategory]int `json:"categories"`
}

type IntegrityViolationDto struct {
	TechnicalUnitID string          `json:"technicalUnitId"`
	Category        core.ORCategory `json:"category"`
	Kind            string          `json:"kind"`
	Detail          string          `json:"detail"`
}

type IntegrityReportDto struct {
	Scopes     int                     `json:"scopes"`
	Violations []IntegrityViolationDto `json:"violations"`
	Repaired   int                     `json:"repaired"`
}
