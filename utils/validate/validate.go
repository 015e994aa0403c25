package validate

import (
	"fmt"
	"reflect"
	"socialelections/internal/core"
	cErr "socialelections/internal/pkg/error"
	"socialelections/internal/pkg/request"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// 輸出格式化的 validator error（欄位 json 名/型別/規則列表）
func ValidationErrorResponse(c *gin.Context, obj interface{}, err error) string {
	if errs, ok := err.(validator.ValidationErrors); ok {
		var b strings.Builder
		b.WriteString("Validation error:\n")
		for _, fe := range errs {
			field := jsonFieldName(obj, fe.StructField())
			ftype := fieldType(obj, fe.StructField())
			format := getFieldFormat(obj, fe.StructField())
			b.WriteString(fmt.Sprintf(" - Field \"%s\" (type: %s) failed the '%s' validation (rules: %v)\n",
				field, ftype, fe.Tag(), format))
		}
		return b.String()
	}
	return fmt.Sprintf("Validation error: %s", err.Error())
}

func jsonFieldName(obj interface{}, structField string) string {
	t := reflect.TypeOf(obj)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if f, ok := t.FieldByName(structField); ok {
		tag := f.Tag.Get("json")
		if tag != "" && tag != "-" {
			return strings.Split(tag, ",")[0]
		}
	}
	return structField
}

func fieldType(obj interface{}, structField string) string {
	t := reflect.TypeOf(obj)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if f, ok := t.FieldByName(structField); ok {
		return f.Type.Name()
	}
	return ""
}

func getFieldFormat(obj interface{}, structField string) []string {
	t := reflect.TypeOf(obj)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if f, ok := t.FieldByName(structField); ok {
		tag := f.Tag.Get("binding")
		if tag != "" {
			return strings.Split(tag, ",")
		}
	}
	return nil
}

func ParseObjectID(c *gin.Context, key string) (id primitive.ObjectID, cause error, responseErr error) {
	id, err := primitive.ObjectIDFromHex(c.Param(key))
	if err != nil {
		return primitive.NilObjectID, err, cErr.ValidatePathParamsErr("invalid " + key)
	}
	return id, nil, nil
}

// ParseObjectIDs 給 bulk 操作用：無法解析的 id 直接略過，回傳略過的原始值
func ParseObjectIDs(raw []string) (ids []primitive.ObjectID, skipped []string) {
	ids = make([]primitive.ObjectID, 0, len(raw))
	for _, value := range raw {
		id, err := primitive.ObjectIDFromHex(strings.TrimSpace(value))
		if err != nil {
			skipped = append(skipped, value)
			continue
		}
		ids = append(ids, id)
	}
	return ids, skipped
}

// ParseCategoryQuery 讀取 ?category=，空值代表全部類別
func ParseCategoryQuery(c *gin.Context) (*core.ORCategory, error) {
	raw := strings.TrimSpace(c.Query("category"))
	if raw == "" {
		return nil, nil
	}
	category := core.ORCategory(raw)
	if !category.Valid() {
		return nil, cErr.InvalidCategory("unknown category " + raw)
	}
	return &category, nil
}

func BindAndValidate(c *gin.Context, req any) (cause error, responseErr error) {
	if err := c.ShouldBindJSON(req); err != nil {
		if appErr := request.GetError(req, err); appErr.ErrorCode() == cErr.INVALID_CATEGORY {
			return err, appErr
		}
		return err, cErr.ValidateErr(ValidationErrorResponse(c, req, err))
	}
	return nil, nil
}

// ===== Employee status =====
var validEmployeeStatuses = []core.EmployeeStatus{
	core.EmployeeStatusActive,
	core.EmployeeStatusInactive,
}

func IsValidEmployeeStatus(status string) bool {
	for _, v := range validEmployeeStatuses {
		if core.EmployeeStatus(status) == v {
			return true
		}
	}
	return false
}

// ===== Unit language =====
var validUnitLanguages = []core.UnitLanguage{
	core.UnitLanguageDutch,
	core.UnitLanguageFrench,
	core.UnitLanguageBilingual,
	core.UnitLanguageGerman,
}

func IsValidUnitLanguage(language string) bool {
	for _, v := range validUnitLanguages {
		if core.UnitLanguage(language) == v {
			return true
		}
	}
	return false
}
