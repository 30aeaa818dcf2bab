package records

// Department は社員の所属部署です。
type Department string

const (
	DepartmentIT         Department = "IT"
	DepartmentHR         Department = "HR"
	DepartmentSales      Department = "Sales"
	DepartmentMarketing  Department = "Marketing"
	DepartmentOperations Department = "Operations"
)

// Departments は部署を定義順に返します。
func Departments() []Department {
	return []Department{
		DepartmentIT,
		DepartmentHR,
		DepartmentSales,
		DepartmentMarketing,
		DepartmentOperations,
	}
}

// Status は社員の在籍状態を表します。
type Status string

const (
	StatusActive    Status = "Active"
	StatusProbation Status = "Probation"
	StatusResigned  Status = "Resigned"
	StatusOnLeave   Status = "On Leave"
)

// HistoryType は職務履歴の種別です。
type HistoryType string

const (
	HistoryPromotion         HistoryType = "Promotion"
	HistoryTransfer          HistoryType = "Transfer"
	HistoryPerformanceReview HistoryType = "Performance Review"
	HistoryIncident          HistoryType = "Incident"
	HistoryAward             HistoryType = "Award"
)

// HistoryRecord は社員に紐づく履歴レコードです。作成後は変更されません。
type HistoryRecord struct {
	ID          string      `json:"id"`
	Date        string      `json:"date"`
	Type        HistoryType `json:"type"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	AIEnhanced  bool        `json:"aiEnhanced,omitempty"`
}

// Employee は社員エンティティです。
type Employee struct {
	ID         string          `json:"id"`
	FirstName  string          `json:"firstName"`
	LastName   string          `json:"lastName"`
	Email      string          `json:"email"`
	Phone      string          `json:"phone"`
	Position   string          `json:"position"`
	Department Department      `json:"department"`
	Status     Status          `json:"status"`
	StartDate  string          `json:"startDate"`
	AvatarURL  string          `json:"avatarUrl"`
	Bio        string          `json:"bio"`
	History    []HistoryRecord `json:"history"`
}

// Collection は社員の順序付き集合です。永続化は常にこの単位で行います。
type Collection []Employee

// DepartmentCount は部署ごとの人数です。
type DepartmentCount struct {
	Department Department `json:"department"`
	Count      int        `json:"count"`
}

// GeneratedText は文章生成の結果です。Fallback が true の場合 Text は代替文言です。
type GeneratedText struct {
	Text     string
	Fallback bool
}

func isValidDepartment(d Department) bool {
	for _, candidate := range Departments() {
		if d == candidate {
			return true
		}
	}
	return false
}

func isValidStatus(s Status) bool {
	switch s {
	case StatusActive, StatusProbation, StatusResigned, StatusOnLeave:
		return true
	default:
		return false
	}
}

func isValidHistoryType(t HistoryType) bool {
	switch t {
	case HistoryPromotion, HistoryTransfer, HistoryPerformanceReview, HistoryIncident, HistoryAward:
		return true
	default:
		return false
	}
}

func cloneEmployee(e Employee) Employee {
	clone := e
	if e.History != nil {
		clone.History = make([]HistoryRecord, len(e.History))
		copy(clone.History, e.History)
	}
	return clone
}

func cloneCollection(c Collection) Collection {
	if c == nil {
		return Collection{}
	}
	out := make(Collection, len(c))
	for i := range c {
		out[i] = cloneEmployee(c[i])
	}
	return out
}
