// Package recordsv1 は records.v1.RecordsService のメッセージとサービス定義です。
// メッセージは JSON コーデックで送受信されます。
package recordsv1

// HistoryRecord は職務履歴 1 件です。
type HistoryRecord struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
	AIEnhanced  bool   `json:"ai_enhanced,omitempty"`
}

// Employee は社員 1 名分の記録です。
type Employee struct {
	ID         string           `json:"id"`
	FirstName  string           `json:"first_name"`
	LastName   string           `json:"last_name"`
	Email      string           `json:"email"`
	Phone      string           `json:"phone"`
	Position   string           `json:"position"`
	Department string           `json:"department"`
	Status     string           `json:"status"`
	StartDate  string           `json:"start_date"`
	AvatarURL  string           `json:"avatar_url"`
	Bio        string           `json:"bio"`
	History    []*HistoryRecord `json:"history"`
}

// EmployeeDraft は社員追加の入力です。
type EmployeeDraft struct {
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Email      string `json:"email,omitempty"`
	Position   string `json:"position"`
	Department string `json:"department,omitempty"`
	StartDate  string `json:"start_date,omitempty"`
}

// HistoryDraft は履歴追加の入力です。
type HistoryDraft struct {
	Type        string `json:"type,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description"`
	AIEnhanced  bool   `json:"ai_enhanced,omitempty"`
}

type ListEmployeesRequest struct {
	SearchTerm string `json:"search_term"`
}

type ListEmployeesResponse struct {
	Employees  []*Employee `json:"employees"`
	SearchTerm string      `json:"search_term"`
}

type GetEmployeeRequest struct {
	ID string `json:"id"`
}

type GetEmployeeResponse struct {
	Employee *Employee `json:"employee"`
}

type AddEmployeeRequest struct {
	Draft *EmployeeDraft `json:"draft"`
}

type AddEmployeeResponse struct {
	Employee *Employee `json:"employee"`
}

type UpdateEmployeeRequest struct {
	Employee *Employee `json:"employee"`
}

type UpdateEmployeeResponse struct {
	Updated bool `json:"updated"`
}

// AddHistoryRequest の EmployeeID が空の場合、セッションで選択中の社員が対象になります。
type AddHistoryRequest struct {
	EmployeeID string        `json:"employee_id,omitempty"`
	Draft      *HistoryDraft `json:"draft"`
}

type AddHistoryResponse struct {
	Record *HistoryRecord `json:"record"`
}

type ExportCollectionRequest struct{}

type ExportCollectionResponse struct {
	FileName string `json:"file_name"`
	Data     string `json:"data"`
}

type ImportCollectionRequest struct {
	Data string `json:"data"`
}

type ImportCollectionResponse struct {
	Count int32 `json:"count"`
}

type DepartmentBreakdownRequest struct{}

type DepartmentCount struct {
	Department string `json:"department"`
	Count      int32  `json:"count"`
}

type DepartmentBreakdownResponse struct {
	Departments []*DepartmentCount `json:"departments"`
}

type GenerateBioRequest struct {
	EmployeeID string `json:"employee_id"`
}

type GenerateBioResponse struct {
	Bio      string `json:"bio"`
	Fallback bool   `json:"fallback"`
}

type EnhanceNoteRequest struct {
	Text string `json:"text"`
	Type string `json:"type,omitempty"`
}

type EnhanceNoteResponse struct {
	Text     string `json:"text"`
	Fallback bool   `json:"fallback"`
}

type SelectEmployeeRequest struct {
	ID string `json:"id"`
}

// SelectEmployeeResponse の Employee は、ID に一致する社員がいない場合 nil です。
type SelectEmployeeResponse struct {
	Employee *Employee `json:"employee,omitempty"`
}

type GetSelectionRequest struct{}

type GetSelectionResponse struct {
	Employee   *Employee `json:"employee,omitempty"`
	SearchTerm string    `json:"search_term"`
}
