package core

import "strings"

// ORCategory 是 Ondernemingsraad 的四個法定類別
type ORCategory string

const (
	ORCategoryArbeiders  ORCategory = "arbeiders"
	ORCategoryBedienden  ORCategory = "bedienden"
	ORCategoryKaderleden ORCategory = "kaderleden"
	ORCategoryJeugdige   ORCategory = "jeugdige"
)

// ORCategories 依固定順序列出所有類別（排序、匯出、加鎖都用這個順序）
var ORCategories = []ORCategory{
	ORCategoryArbeiders,
	ORCategoryBedienden,
	ORCategoryKaderleden,
	ORCategoryJeugdige,
}

func (c ORCategory) Valid() bool {
	for _, v := range ORCategories {
		if c == v {
			return true
		}
	}
	return false
}

// Rank 回傳類別在 ORCategories 中的位置，未知類別排最後
func (c ORCategory) Rank() int {
	for i, v := range ORCategories {
		if c == v {
			return i
		}
	}
	return len(ORCategories)
}

// ParseORCategoryLoose 用於 Excel 匯入，接受 "Arbeider", "bedienden (OR)", "Kader" 這類寫法
func ParseORCategoryLoose(raw string) (ORCategory, bool) {
	v := strings.ToLower(strings.TrimSpace(raw))
	if v == "" {
		return "", false
	}
	switch {
	case strings.Contains(v, "arbeider"):
		return ORCategoryArbeiders, true
	case strings.Contains(v, "bediend"):
		return ORCategoryBedienden, true
	case strings.Contains(v, "kader"):
		return ORCategoryKaderleden, true
	case strings.Contains(v, "jeugd"):
		return ORCategoryJeugdige, true
	}
	return "", false
}

type EmployeeStatus string

const (
	EmployeeStatusActive   EmployeeStatus = "active"
	EmployeeStatusInactive EmployeeStatus = "inactive"
)

type UnitStatus string

const (
	UnitStatusActive   UnitStatus = "active"
	UnitStatusInactive UnitStatus = "inactive"
)

// UnitLanguage 依地區：Vlaanderen=N, Wallonië=F, Brussel=N+F, Duitstalig=D
type UnitLanguage string

const (
	UnitLanguageDutch     UnitLanguage = "N"
	UnitLanguageFrench    UnitLanguage = "F"
	UnitLanguageBilingual UnitLanguage = "N+F"
	UnitLanguageGerman    UnitLanguage = "D"
)

// LedgerOp 是 ledger mutation 的名稱，用在 metric label 與 audit log
type LedgerOp string

const (
	LedgerOpAdd        LedgerOp = "add_member"
	LedgerOpRemove     LedgerOp = "remove_member"
	LedgerOpBulkAdd    LedgerOp = "bulk_add"
	LedgerOpBulkRemove LedgerOp = "bulk_remove"
	LedgerOpReorder    LedgerOp = "reorder"
	LedgerOpPurge      LedgerOp = "purge"
	LedgerOpRepair     LedgerOp = "repair"
)
