package records

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestService_LoadsFromStore(t *testing.T) {
	t.Parallel()

	store := &recordingStore{initial: SeedCollection()}
	svc := newTestService(t, store, nil)

	got := svc.Employees(context.Background())
	if len(got) != 3 {
		t.Fatalf("expected 3 employees, got %d", len(got))
	}
	if store.saves() != 0 {
		t.Fatalf("loading must not persist, got %d saves", store.saves())
	}
}

func TestService_Search(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, &recordingStore{initial: SeedCollection()}, nil)
	ctx := context.Background()

	cases := []struct {
		term string
		want []string
	}{
		{term: "", want: []string{"EMP-001", "EMP-002", "EMP-003"}},
		{term: "som", want: []string{"EMP-001", "EMP-002"}},
		{term: "SOM", want: []string{"EMP-001", "EMP-002"}},
		{term: "doe", want: []string{"EMP-003"}},
		{term: "manager", want: []string{"EMP-002"}},
		{term: "e", want: []string{"EMP-001", "EMP-002", "EMP-003"}},
		{term: "nobody", want: []string{}},
		{term: "company.com", want: []string{}},
	}

	for _, tc := range cases {
		got := svc.Search(ctx, tc.term)
		ids := make([]string, 0, len(got))
		for _, e := range got {
			ids = append(ids, e.ID)
		}
		if !reflect.DeepEqual(ids, tc.want) {
			t.Errorf("Search(%q) = %v, want %v", tc.term, ids, tc.want)
		}
	}

	if len(svc.Employees(ctx)) != 3 {
		t.Fatalf("search must not mutate the collection")
	}
}

func TestService_AddEmployee_Defaults(t *testing.T) {
	t.Parallel()

	store := &recordingStore{initial: SeedCollection()}
	svc := newTestService(t, store, nil)
	ctx := context.Background()

	created, err := svc.AddEmployee(ctx, EmployeeDraft{
		FirstName:  "Kai",
		LastName:   "Lee",
		Position:   "Analyst",
		Department: DepartmentIT,
		StartDate:  "2024-01-01",
	})
	if err != nil {
		t.Fatalf("AddEmployee returned error: %v", err)
	}

	all := svc.Employees(ctx)
	if len(all) != 4 {
		t.Fatalf("expected 4 employees, got %d", len(all))
	}
	last := all[len(all)-1]
	if last.ID != "EMP-004" || created.ID != "EMP-004" {
		t.Fatalf("expected EMP-004, got %s / %s", last.ID, created.ID)
	}
	if last.Status != StatusProbation {
		t.Errorf("expected Probation, got %s", last.Status)
	}
	if len(last.History) != 0 || last.History == nil {
		t.Errorf("expected empty non-nil history, got %#v", last.History)
	}
	if last.Email != "kai@company.com" {
		t.Errorf("unexpected synthesized email %q", last.Email)
	}
	if last.Phone != "-" {
		t.Errorf("unexpected phone %q", last.Phone)
	}
	if last.AvatarURL != "https://ui-avatars.com/api/?name=Kai+Lee&background=random" {
		t.Errorf("unexpected avatar %q", last.AvatarURL)
	}
	if last.StartDate != "2024-01-01" || last.Department != DepartmentIT {
		t.Errorf("unexpected start date / department: %s %s", last.StartDate, last.Department)
	}

	if store.saves() != 1 {
		t.Fatalf("expected exactly one persist, got %d", store.saves())
	}
	if !reflect.DeepEqual(store.last(), all) {
		t.Fatalf("persisted collection differs from memory")
	}
}

func TestService_AddEmployee_KeepsExplicitEmailAndDefaultsDate(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, &recordingStore{initial: Collection{}}, nil)

	created, err := svc.AddEmployee(context.Background(), EmployeeDraft{
		FirstName: "Ann",
		LastName:  "Park",
		Position:  "Designer",
		Email:     "ann.p@example.com",
	})
	if err != nil {
		t.Fatalf("AddEmployee returned error: %v", err)
	}
	if created.Email != "ann.p@example.com" {
		t.Errorf("explicit email overwritten: %q", created.Email)
	}
	if created.StartDate != "2024-03-10" {
		t.Errorf("expected start date from clock, got %q", created.StartDate)
	}
	if created.Department != DepartmentIT {
		t.Errorf("expected IT default, got %q", created.Department)
	}
	if created.ID != "EMP-001" {
		t.Errorf("expected EMP-001 in empty collection, got %s", created.ID)
	}
}

func TestService_AddEmployee_IncompleteDraft(t *testing.T) {
	t.Parallel()

	drafts := map[string]EmployeeDraft{
		"no first name": {LastName: "Lee", Position: "Analyst"},
		"no last name":  {FirstName: "Kai", Position: "Analyst"},
		"no position":   {FirstName: "Kai", LastName: "Lee"},
		"blank values":  {FirstName: "  ", LastName: "Lee", Position: "Analyst"},
	}

	for name, draft := range drafts {
		draft := draft
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			store := &recordingStore{initial: SeedCollection()}
			svc := newTestService(t, store, nil)

			_, err := svc.AddEmployee(context.Background(), draft)
			if !errors.Is(err, ErrIncompleteDraft) {
				t.Fatalf("expected ErrIncompleteDraft, got %v", err)
			}
			if got := len(svc.Employees(context.Background())); got != 3 {
				t.Fatalf("collection length changed to %d", got)
			}
			if store.saves() != 0 {
				t.Fatalf("rejected draft must not persist")
			}
		})
	}
}

func TestService_AddEmployee_InvalidInput(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, &recordingStore{initial: SeedCollection()}, nil)
	ctx := context.Background()

	_, err := svc.AddEmployee(ctx, EmployeeDraft{FirstName: "A", LastName: "B", Position: "C", Department: "Legal"})
	if !errors.Is(err, ErrInvalidDepartment) {
		t.Fatalf("expected ErrInvalidDepartment, got %v", err)
	}

	_, err = svc.AddEmployee(ctx, EmployeeDraft{FirstName: "A", LastName: "B", Position: "C", StartDate: "01/02/2024"})
	if !errors.Is(err, ErrInvalidStartDate) {
		t.Fatalf("expected ErrInvalidStartDate, got %v", err)
	}
}

func TestService_AddEmployee_IDUniqueAfterImport(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, &recordingStore{initial: SeedCollection()}, nil)
	ctx := context.Background()

	if _, err := svc.Import(ctx, []byte(`[{"id":"EMP-001","firstName":"A","history":[]},{"id":"EMP-007","firstName":"B"}]`)); err != nil {
		t.Fatalf("Import returned error: %v", err)
	}

	created, err := svc.AddEmployee(ctx, EmployeeDraft{FirstName: "Kai", LastName: "Lee", Position: "Analyst"})
	if err != nil {
		t.Fatalf("AddEmployee returned error: %v", err)
	}
	if created.ID != "EMP-008" {
		t.Fatalf("expected EMP-008 after importing EMP-007, got %s", created.ID)
	}
}

func TestService_AddEmployee_IgnoresOversizedImportedID(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, &recordingStore{initial: SeedCollection()}, nil)
	ctx := context.Background()

	if _, err := svc.Import(ctx, []byte(`[{"id":"EMP-9223372036854775807","firstName":"A","history":[]}]`)); err != nil {
		t.Fatalf("Import returned error: %v", err)
	}

	created, err := svc.AddEmployee(ctx, EmployeeDraft{FirstName: "Kai", LastName: "Lee", Position: "Analyst"})
	if err != nil {
		t.Fatalf("AddEmployee returned error: %v", err)
	}
	if created.ID != "EMP-002" {
		t.Fatalf("expected EMP-002, got %s", created.ID)
	}
}

func TestService_UpdateEmployee(t *testing.T) {
	t.Parallel()

	store := &recordingStore{initial: SeedCollection()}
	svc := newTestService(t, store, nil)
	ctx := context.Background()

	target, _ := svc.Employee(ctx, "EMP-003")
	target.Status = StatusActive
	target.Position = "Senior Sales Executive"

	ok, err := svc.UpdateEmployee(ctx, *target)
	if err != nil || !ok {
		t.Fatalf("UpdateEmployee = %v, %v", ok, err)
	}

	got, _ := svc.Employee(ctx, "EMP-003")
	if got.Status != StatusActive || got.Position != "Senior Sales Executive" {
		t.Fatalf("update not applied: %+v", got)
	}
	if store.saves() != 1 {
		t.Fatalf("expected one persist, got %d", store.saves())
	}
}

func TestService_UpdateEmployee_KeepsStoredHistory(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, &recordingStore{initial: SeedCollection()}, nil)
	ctx := context.Background()
	want := SeedCollection()[0].History

	cases := map[string][]HistoryRecord{
		"nil":      nil,
		"empty":    {},
		"modified": {{ID: "forged", Date: "2020-01-01", Type: HistoryAward, Title: "forged", Description: "forged"}},
	}
	for name, history := range cases {
		target, _ := svc.Employee(ctx, "EMP-001")
		target.Position = "Lead " + name
		target.History = history

		ok, err := svc.UpdateEmployee(ctx, *target)
		if err != nil || !ok {
			t.Fatalf("%s: UpdateEmployee = %v, %v", name, ok, err)
		}
		got, _ := svc.Employee(ctx, "EMP-001")
		if got.Position != "Lead "+name {
			t.Fatalf("%s: update not applied: %+v", name, got)
		}
		if !reflect.DeepEqual(got.History, want) {
			t.Fatalf("%s: history changed by update: %+v", name, got.History)
		}
	}
}

func TestService_UpdateEmployee_UnknownIDIsNoop(t *testing.T) {
	t.Parallel()

	store := &recordingStore{initial: SeedCollection()}
	svc := newTestService(t, store, nil)
	ctx := context.Background()
	before := svc.Employees(ctx)

	ghost := before[0]
	ghost.ID = "EMP-999"
	ghost.FirstName = "Ghost"

	ok, err := svc.UpdateEmployee(ctx, ghost)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatalf("expected no match")
	}
	if !reflect.DeepEqual(svc.Employees(ctx), before) {
		t.Fatalf("collection changed by unmatched update")
	}
	if store.saves() != 0 {
		t.Fatalf("unmatched update must not persist")
	}
}

func TestService_UpdateEmployee_RejectsUnknownEnums(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, &recordingStore{initial: SeedCollection()}, nil)
	ctx := context.Background()
	e, _ := svc.Employee(ctx, "EMP-001")

	bad := *e
	bad.Status = "Retired"
	if _, err := svc.UpdateEmployee(ctx, bad); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}

	bad = *e
	bad.Department = "Finance"
	if _, err := svc.UpdateEmployee(ctx, bad); !errors.Is(err, ErrInvalidDepartment) {
		t.Fatalf("expected ErrInvalidDepartment, got %v", err)
	}
}

func TestService_AddHistory_PrependsToTargetOnly(t *testing.T) {
	t.Parallel()

	store := &recordingStore{initial: SeedCollection()}
	svc := newTestService(t, store, nil)
	ctx := context.Background()
	before := svc.Employees(ctx)

	record, err := svc.AddHistory(ctx, "EMP-001", HistoryDraft{
		Type:        HistoryAward,
		Title:       "Employee of the Month",
		Description: "Shipped the payroll migration early.",
	})
	if err != nil {
		t.Fatalf("AddHistory returned error: %v", err)
	}
	if record.ID != "rec-1" || record.Date != "2024-03-10" {
		t.Fatalf("unexpected generated fields: %+v", record)
	}

	after := svc.Employees(ctx)
	target := after[0]
	if len(target.History) != len(before[0].History)+1 {
		t.Fatalf("expected exactly one new record, got %d", len(target.History))
	}
	if target.History[0] != *record {
		t.Fatalf("new record must be first, got %+v", target.History[0])
	}
	if !reflect.DeepEqual(target.History[1:], before[0].History) {
		t.Fatalf("existing history must be preserved in order")
	}
	for i := 1; i < len(after); i++ {
		if !reflect.DeepEqual(after[i].History, before[i].History) {
			t.Fatalf("history of %s changed", after[i].ID)
		}
	}
	if store.saves() != 1 {
		t.Fatalf("expected one persist, got %d", store.saves())
	}
}

func TestService_AddHistory_Validation(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, &recordingStore{initial: SeedCollection()}, nil)
	ctx := context.Background()

	if _, err := svc.AddHistory(ctx, "EMP-001", HistoryDraft{Title: "only title"}); !errors.Is(err, ErrIncompleteDraft) {
		t.Fatalf("expected ErrIncompleteDraft, got %v", err)
	}
	if _, err := svc.AddHistory(ctx, "EMP-001", HistoryDraft{Title: "t", Description: "d", Type: "Demotion"}); !errors.Is(err, ErrInvalidHistoryType) {
		t.Fatalf("expected ErrInvalidHistoryType, got %v", err)
	}
	if _, err := svc.AddHistory(ctx, "EMP-404", HistoryDraft{Title: "t", Description: "d"}); !errors.Is(err, ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound, got %v", err)
	}

	record, err := svc.AddHistory(ctx, "EMP-002", HistoryDraft{Title: "t", Description: "d"})
	if err != nil {
		t.Fatalf("AddHistory returned error: %v", err)
	}
	if record.Type != HistoryPerformanceReview {
		t.Fatalf("expected default type, got %s", record.Type)
	}
}

func TestService_ExportIsReadOnlyAndRoundTrips(t *testing.T) {
	t.Parallel()

	store := &recordingStore{initial: SeedCollection()}
	svc := newTestService(t, store, nil)
	ctx := context.Background()

	raw, err := svc.Export(ctx)
	if err != nil {
		t.Fatalf("Export returned error: %v", err)
	}
	if !strings.Contains(string(raw), "\n  {") {
		t.Fatalf("expected indented JSON, got %s", raw)
	}
	if store.saves() != 0 {
		t.Fatalf("export must not persist")
	}

	other := newTestService(t, &recordingStore{initial: Collection{}}, nil)
	n, err := other.Import(ctx, raw)
	if err != nil {
		t.Fatalf("Import returned error: %v", err)
	}
	if n != 3 || !reflect.DeepEqual(other.Employees(ctx), svc.Employees(ctx)) {
		t.Fatalf("export/import round trip mismatch")
	}
}

func TestService_Import_ReplacesWholesale(t *testing.T) {
	t.Parallel()

	store := &recordingStore{initial: SeedCollection()}
	svc := newTestService(t, store, nil)
	ctx := context.Background()

	n, err := svc.Import(ctx, []byte(`  [{"id":"X-1","firstName":"A","lastName":"B","department":"HR","status":"Active","history":[]}]  `))
	if err != nil {
		t.Fatalf("Import returned error: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 imported, got %d", n)
	}

	got := svc.Employees(ctx)
	want := Collection{{ID: "X-1", FirstName: "A", LastName: "B", Department: DepartmentHR, Status: StatusActive, History: []HistoryRecord{}}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected exactly the imported sequence, got %+v", got)
	}
	if !reflect.DeepEqual(store.last(), want) {
		t.Fatalf("import must persist the new collection")
	}
}

func TestService_Import_Rejections(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		raw  string
		want error
	}{
		{name: "not json", raw: "not json", want: ErrImportMalformed},
		{name: "empty input", raw: "", want: ErrImportMalformed},
		{name: "empty array", raw: "[]", want: ErrImportShape},
		{name: "object", raw: `{"id":"EMP-001"}`, want: ErrImportShape},
		{name: "null", raw: "null", want: ErrImportShape},
		{name: "first without id", raw: `[{"firstName":"A"},{"id":"X"}]`, want: ErrImportShape},
		{name: "first with empty id", raw: `[{"id":""}]`, want: ErrImportShape},
		{name: "first not object", raw: `["EMP-001"]`, want: ErrImportShape},
		{name: "numeric id", raw: `[{"id":5}]`, want: ErrImportShape},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			store := &recordingStore{initial: SeedCollection()}
			svc := newTestService(t, store, nil)
			ctx := context.Background()

			_, err := svc.Import(ctx, []byte(tc.raw))
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
			if !reflect.DeepEqual(svc.Employees(ctx), SeedCollection()) {
				t.Fatalf("rejected import changed the collection")
			}
			if store.saves() != 0 {
				t.Fatalf("rejected import must not persist")
			}
		})
	}
}

func TestService_DepartmentBreakdown(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, &recordingStore{initial: SeedCollection()}, nil)
	ctx := context.Background()
	if _, err := svc.AddEmployee(ctx, EmployeeDraft{FirstName: "A", LastName: "B", Position: "Dev"}); err != nil {
		t.Fatalf("AddEmployee returned error: %v", err)
	}

	got := svc.DepartmentBreakdown(ctx)
	want := []DepartmentCount{
		{Department: DepartmentIT, Count: 2},
		{Department: DepartmentHR, Count: 1},
		{Department: DepartmentSales, Count: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected breakdown %+v", got)
	}
}

func TestService_PersistFailureIsSilent(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, NewLocalStore(failingBlob{}, "", quietLogger()), nil)
	ctx := context.Background()

	if len(svc.Employees(ctx)) != 3 {
		t.Fatalf("expected seed data when storage is unreadable")
	}
	if _, err := svc.AddEmployee(ctx, EmployeeDraft{FirstName: "A", LastName: "B", Position: "C"}); err != nil {
		t.Fatalf("write failure must not surface, got %v", err)
	}
	if len(svc.Employees(ctx)) != 4 {
		t.Fatalf("in-memory collection must still change")
	}
}

func TestService_GenerateBio(t *testing.T) {
	t.Parallel()

	writer := &stubWriter{bio: GeneratedText{Text: "A seasoned developer."}}
	store := &recordingStore{initial: SeedCollection()}
	svc := newTestService(t, store, writer)
	ctx := context.Background()

	result, err := svc.GenerateBio(ctx, "EMP-001")
	if err != nil {
		t.Fatalf("GenerateBio returned error: %v", err)
	}
	if result.Text != "A seasoned developer." || result.Fallback {
		t.Fatalf("unexpected result %+v", result)
	}
	got, _ := svc.Employee(ctx, "EMP-001")
	if got.Bio != "A seasoned developer." {
		t.Fatalf("bio not stored: %q", got.Bio)
	}
	if store.saves() != 1 {
		t.Fatalf("expected one persist, got %d", store.saves())
	}

	if _, err := svc.GenerateBio(ctx, "EMP-404"); !errors.Is(err, ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound, got %v", err)
	}
}

func TestService_GenerateBio_FallbackIsNotStored(t *testing.T) {
	t.Parallel()

	writer := &stubWriter{bio: GeneratedText{Text: "service unavailable", Fallback: true}}
	store := &recordingStore{initial: SeedCollection()}
	svc := newTestService(t, store, writer)
	ctx := context.Background()

	result, err := svc.GenerateBio(ctx, "EMP-002")
	if err != nil {
		t.Fatalf("GenerateBio returned error: %v", err)
	}
	if !result.Fallback || result.Text != "service unavailable" {
		t.Fatalf("expected fallback result, got %+v", result)
	}
	got, _ := svc.Employee(ctx, "EMP-002")
	if got.Bio != SeedCollection()[1].Bio {
		t.Fatalf("fallback text must not replace the bio")
	}
	if store.saves() != 0 {
		t.Fatalf("fallback must not persist")
	}
}

func TestService_GenerateBio_MergesOnlyBioOverConcurrentEdit(t *testing.T) {
	t.Parallel()

	writer := &stubWriter{bio: GeneratedText{Text: "fresh bio"}}
	svc := newTestService(t, &recordingStore{initial: SeedCollection()}, writer)
	ctx := context.Background()

	writer.beforeReturn = func() {
		e, _ := svc.Employee(ctx, "EMP-001")
		e.Position = "Tech Lead"
		if _, err := svc.UpdateEmployee(ctx, *e); err != nil {
			t.Errorf("UpdateEmployee returned error: %v", err)
		}
	}

	if _, err := svc.GenerateBio(ctx, "EMP-001"); err != nil {
		t.Fatalf("GenerateBio returned error: %v", err)
	}
	got, _ := svc.Employee(ctx, "EMP-001")
	if got.Position != "Tech Lead" || got.Bio != "fresh bio" {
		t.Fatalf("expected both edits to survive, got position=%q bio=%q", got.Position, got.Bio)
	}
}

func TestService_GenerateBio_DiscardsWhenEmployeeReplaced(t *testing.T) {
	t.Parallel()

	writer := &stubWriter{bio: GeneratedText{Text: "late bio"}}
	svc := newTestService(t, &recordingStore{initial: SeedCollection()}, writer)
	ctx := context.Background()

	writer.beforeReturn = func() {
		if _, err := svc.Import(ctx, []byte(`[{"id":"X-1"}]`)); err != nil {
			t.Errorf("Import returned error: %v", err)
		}
	}

	result, err := svc.GenerateBio(ctx, "EMP-001")
	if !errors.Is(err, ErrStaleResponse) {
		t.Fatalf("expected ErrStaleResponse, got %v", err)
	}
	if result.Text != "late bio" {
		t.Fatalf("generated text should still be returned, got %q", result.Text)
	}
	all := svc.Employees(ctx)
	if len(all) != 1 || all[0].Bio != "" {
		t.Fatalf("stale bio must be discarded, got %+v", all)
	}
}

func TestService_EnhanceNote(t *testing.T) {
	t.Parallel()

	writer := &stubWriter{enhance: GeneratedText{Text: "Polished note."}}
	svc := newTestService(t, &recordingStore{initial: SeedCollection()}, writer)
	ctx := context.Background()

	if got := svc.EnhanceNote(ctx, "late 3 times", HistoryIncident); got.Text != "Polished note." || got.Fallback {
		t.Fatalf("unexpected enhancement %+v", got)
	}
	if got := svc.EnhanceNote(ctx, "   ", HistoryIncident); !got.Fallback || got.Text != "   " {
		t.Fatalf("blank note should fall back to itself, got %+v", got)
	}
}

func TestService_WithoutWriterFallsBack(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, &recordingStore{initial: SeedCollection()}, nil)
	ctx := context.Background()

	if got := svc.EnhanceNote(ctx, "rough", HistoryAward); !got.Fallback || got.Text != "rough" {
		t.Fatalf("expected original text back, got %+v", got)
	}
	result, err := svc.GenerateBio(ctx, "EMP-001")
	if err != nil || !result.Fallback {
		t.Fatalf("expected fallback without error, got %+v, %v", result, err)
	}
}
