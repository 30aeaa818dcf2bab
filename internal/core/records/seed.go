package records

// SeedCollection は保存データが無い場合に使用する初期データを返します。
func SeedCollection() Collection {
	return Collection{
		{
			ID:         "EMP-001",
			FirstName:  "Somchai",
			LastName:   "Jaidee",
			Email:      "somchai.j@company.com",
			Phone:      "081-234-5678",
			Position:   "Senior Developer",
			Department: DepartmentIT,
			Status:     StatusActive,
			StartDate:  "2020-05-15",
			AvatarURL:  "https://picsum.photos/seed/somchai/200/200",
			Bio:        "",
			History: []HistoryRecord{
				{
					ID:          "1",
					Date:        "2023-01-15",
					Type:        HistoryPromotion,
					Title:       "Promoted to Senior",
					Description: "Demonstrated exceptional leadership in the Mobile App project.",
				},
				{
					ID:          "2",
					Date:        "2021-12-01",
					Type:        HistoryPerformanceReview,
					Title:       "Year End Review 2021",
					Description: "Met all KPIs. Needs to improve English communication skills.",
				},
			},
		},
		{
			ID:         "EMP-002",
			FirstName:  "Somsri",
			LastName:   "Rakngan",
			Email:      "somsri.r@company.com",
			Phone:      "089-987-6543",
			Position:   "HR Manager",
			Department: DepartmentHR,
			Status:     StatusActive,
			StartDate:  "2019-02-01",
			AvatarURL:  "https://picsum.photos/seed/somsri/200/200",
			Bio: "Somsri is a dedicated HR professional with over 5 years of experience in talent acquisition " +
				"and employee relations. She has successfully streamlined the recruitment process and implemented " +
				"effective employee retention strategies.",
			History: []HistoryRecord{},
		},
		{
			ID:         "EMP-003",
			FirstName:  "John",
			LastName:   "Doe",
			Email:      "john.d@company.com",
			Phone:      "02-111-2222",
			Position:   "Sales Executive",
			Department: DepartmentSales,
			Status:     StatusProbation,
			StartDate:  "2023-11-01",
			AvatarURL:  "https://picsum.photos/seed/john/200/200",
			Bio:        "",
			History:    []HistoryRecord{},
		},
	}
}
