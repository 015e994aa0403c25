package error

const (
	// 0 ~ 999: 成功類別
	SUCCESS = 0 // 200 OK

	// 40000 ~ 49999: 用戶請求錯誤 (400 系列)
	BAD_REQUEST_BODY    = 40000 // 400 - 無效的請求體
	BAD_REQUEST_PARAMS  = 40001 // 400 - 無效的請求參數
	BAD_REQUEST_HEADERS = 40002 // 400 - 無效的請求標頭
	CROSS_UNIT_MISMATCH = 40006 // 400 - 員工不屬於目標 technical unit
	INVALID_CATEGORY    = 40007 // 400 - 未知的 OR 類別
	INVALID_IMPORT_FILE = 40008 // 400 - 無法解析的匯入檔案

	// 40100 ~ 40399: 驗證與權限錯誤 (401 403 系列)
	UNAUTHORIZED = 40100 // 401 - 未授權
	FORBIDDEN    = 40301 // 403 - 禁止訪問

	// 40400 ~ 40499: 資源錯誤 (404 系列)
	NOT_FOUND                = 40400 // 404 - 資源未找到
	EMPLOYEE_NOT_FOUND       = 40401 // 404 - 員工不存在
	TECHNICAL_UNIT_NOT_FOUND = 40402 // 404 - technical unit 不存在

	// 40900 ~ 40999: 狀態衝突 (409 系列)
	CONFLICT = 40900 // 409 - 資源衝突

	// 50000 ~ 50199: 伺服器內部錯誤 (500 系列)
	INTERNAL_ERROR           = 50000 // 500 - 內部錯誤
	DATABASE_ERROR           = 50001 // 500 - 資料庫錯誤
	SERVICE_UNAVAILABLE      = 50002 // 503 - 服務暫停 (維護模式)
	COUNCIL_CREATION_FAILURE = 50003 // 500 - works council 建立失敗
	SCOPE_LOCK_UNAVAILABLE   = 50004 // 503 - 無法取得 (unit, category) lock

	// 50400 ~ 50499
	GATEWAY_TIMEOUT = 50400 // 504 - 逾時
)
