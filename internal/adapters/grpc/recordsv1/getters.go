package recordsv1

// 以下のアクセサは nil レシーバでもゼロ値を返します。

func (x *ListEmployeesRequest) GetSearchTerm() string {
	if x != nil {
		return x.SearchTerm
	}
	return ""
}

func (x *GetEmployeeRequest) GetID() string {
	if x != nil {
		return x.ID
	}
	return ""
}

func (x *AddEmployeeRequest) GetDraft() *EmployeeDraft {
	if x != nil {
		return x.Draft
	}
	return nil
}

func (x *UpdateEmployeeRequest) GetEmployee() *Employee {
	if x != nil {
		return x.Employee
	}
	return nil
}

func (x *AddHistoryRequest) GetEmployeeID() string {
	if x != nil {
		return x.EmployeeID
	}
	return ""
}

func (x *AddHistoryRequest) GetDraft() *HistoryDraft {
	if x != nil {
		return x.Draft
	}
	return nil
}

func (x *ImportCollectionRequest) GetData() string {
	if x != nil {
		return x.Data
	}
	return ""
}

func (x *GenerateBioRequest) GetEmployeeID() string {
	if x != nil {
		return x.EmployeeID
	}
	return ""
}

func (x *EnhanceNoteRequest) GetText() string {
	if x != nil {
		return x.Text
	}
	return ""
}

func (x *EnhanceNoteRequest) GetType() string {
	if x != nil {
		return x.Type
	}
	return ""
}

func (x *SelectEmployeeRequest) GetID() string {
	if x != nil {
		return x.ID
	}
	return ""
}

func (x *Employee) GetHistory() []*HistoryRecord {
	if x != nil {
		return x.History
	}
	return nil
}
