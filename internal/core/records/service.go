package records

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	dateLayout = "2006-01-02"

	// ExportFileName はエクスポートファイルの既定名です。
	ExportFileName = "hr_records_backup.json"

	defaultPhone       = "-"
	defaultEmailDomain = "company.com"
	avatarBaseURL      = "https://ui-avatars.com/api/"
)

// Clock は現在時刻を提供します。
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now().UTC()
}

// TransactionManager はトランザクション制御の抽象化です。
type TransactionManager interface {
	WithinReadOnly(ctx context.Context, fn func(context.Context) error) error
	WithinReadWrite(ctx context.Context, fn func(context.Context) error) error
}

type noopTransactionManager struct{}

func (noopTransactionManager) WithinReadOnly(ctx context.Context, fn func(context.Context) error) error {
	if fn == nil {
		return nil
	}
	return fn(ctx)
}

func (noopTransactionManager) WithinReadWrite(ctx context.Context, fn func(context.Context) error) error {
	if fn == nil {
		return nil
	}
	return fn(ctx)
}

// Writer は文章生成サービスへの窓口です。失敗時も代替文言を返し、エラーは返しません。
type Writer interface {
	Bio(ctx context.Context, e Employee) GeneratedText
	Enhance(ctx context.Context, raw string, t HistoryType) GeneratedText
}

type unavailableWriter struct{}

func (unavailableWriter) Bio(context.Context, Employee) GeneratedText {
	return GeneratedText{Fallback: true}
}

func (unavailableWriter) Enhance(_ context.Context, raw string, _ HistoryType) GeneratedText {
	return GeneratedText{Text: raw, Fallback: true}
}

// UseCase は社員記録ユースケースの公開インターフェースです。
type UseCase interface {
	Employees(ctx context.Context) Collection
	Employee(ctx context.Context, id string) (*Employee, bool)
	Search(ctx context.Context, term string) Collection
	AddEmployee(ctx context.Context, draft EmployeeDraft) (*Employee, error)
	UpdateEmployee(ctx context.Context, updated Employee) (bool, error)
	AddHistory(ctx context.Context, employeeID string, draft HistoryDraft) (*HistoryRecord, error)
	Export(ctx context.Context) ([]byte, error)
	Import(ctx context.Context, raw []byte) (int, error)
	DepartmentBreakdown(ctx context.Context) []DepartmentCount
	GenerateBio(ctx context.Context, employeeID string) (GeneratedText, error)
	EnhanceNote(ctx context.Context, raw string, t HistoryType) GeneratedText
}

// EmployeeDraft は社員追加フォームの入力です。
type EmployeeDraft struct {
	FirstName  string
	LastName   string
	Email      string
	Position   string
	Department Department
	StartDate  string
}

// HistoryDraft は履歴追加フォームの入力です。
type HistoryDraft struct {
	Type        HistoryType
	Title       string
	Description string
	AIEnhanced  bool
}

// Option は Service の生成オプションです。
type Option func(*Service)

// WithClock は時刻の取得元を差し替えます。
func WithClock(c Clock) Option {
	return func(s *Service) {
		if c != nil {
			s.clock = c
		}
	}
}

// WithTransactionManager は保存時のトランザクション制御を設定します。
func WithTransactionManager(tx TransactionManager) Option {
	return func(s *Service) {
		if tx != nil {
			s.tx = tx
		}
	}
}

// WithLogger はロガーを設定します。
func WithLogger(l logrus.FieldLogger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithRecordIDGenerator は履歴レコード ID の採番方法を差し替えます。
func WithRecordIDGenerator(fn func() string) Option {
	return func(s *Service) {
		if fn != nil {
			s.newRecordID = fn
		}
	}
}

// Service はメモリ上の社員コレクションを唯一の正として保持し、変更のたびに全体を保存します。
type Service struct {
	mu          sync.Mutex
	employees   Collection
	store       Store
	writer      Writer
	clock       Clock
	tx          TransactionManager
	logger      logrus.FieldLogger
	newRecordID func() string
}

// NewService は保存領域からコレクションを読み込んで Service を生成します。
func NewService(ctx context.Context, store Store, writer Writer, opts ...Option) *Service {
	if writer == nil {
		writer = unavailableWriter{}
	}
	s := &Service{
		store:       store,
		writer:      writer,
		clock:       realClock{},
		tx:          noopTransactionManager{},
		logger:      logrus.StandardLogger(),
		newRecordID: newTimeOrderedID,
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		s.employees = store.Load(txCtx)
		return nil
	}); err != nil {
		s.logger.WithError(err).Warn("failed to open read transaction, using seed data")
		s.employees = SeedCollection()
	}
	return s
}

// Employees はコレクションの複製を返します。
func (s *Service) Employees(_ context.Context) Collection {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneCollection(s.employees)
}

// Employee は ID に一致する社員の複製を返します。
func (s *Service) Employee(_ context.Context, id string) (*Employee, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.indexOf(id)
	if idx < 0 {
		return nil, false
	}
	e := cloneEmployee(s.employees[idx])
	return &e, true
}

// Search は名・姓・役職のいずれかに term を大文字小文字を区別せず含む社員を返します。
func (s *Service) Search(_ context.Context, term string) Collection {
	s.mu.Lock()
	defer s.mu.Unlock()
	return filterCollection(s.employees, term)
}

func filterCollection(c Collection, term string) Collection {
	needle := strings.ToLower(term)
	out := make(Collection, 0, len(c))
	for _, e := range c {
		if strings.Contains(strings.ToLower(e.FirstName), needle) ||
			strings.Contains(strings.ToLower(e.LastName), needle) ||
			strings.Contains(strings.ToLower(e.Position), needle) {
			out = append(out, cloneEmployee(e))
		}
	}
	return out
}

// AddEmployee は試用期間ステータスの社員を末尾に追加します。
func (s *Service) AddEmployee(ctx context.Context, draft EmployeeDraft) (*Employee, error) {
	firstName := strings.TrimSpace(draft.FirstName)
	lastName := strings.TrimSpace(draft.LastName)
	position := strings.TrimSpace(draft.Position)
	if firstName == "" || lastName == "" || position == "" {
		return nil, ErrIncompleteDraft
	}

	department := draft.Department
	if department == "" {
		department = DepartmentIT
	}
	if !isValidDepartment(department) {
		return nil, fmt.Errorf("department %q: %w", department, ErrInvalidDepartment)
	}

	startDate := strings.TrimSpace(draft.StartDate)
	if startDate == "" {
		startDate = s.today()
	} else if _, err := time.Parse(dateLayout, startDate); err != nil {
		return nil, fmt.Errorf("start date %q: %w", startDate, ErrInvalidStartDate)
	}

	email := strings.TrimSpace(draft.Email)
	if email == "" {
		email = strings.ToLower(firstName) + "@" + defaultEmailDomain
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	created := Employee{
		ID:         nextEmployeeID(s.employees),
		FirstName:  firstName,
		LastName:   lastName,
		Email:      email,
		Phone:      defaultPhone,
		Position:   position,
		Department: department,
		Status:     StatusProbation,
		StartDate:  startDate,
		AvatarURL:  avatarURL(firstName, lastName),
		Bio:        "",
		History:    []HistoryRecord{},
	}

	next := cloneCollection(s.employees)
	next = append(next, created)
	s.commit(ctx, next)

	s.logger.WithField("employee_id", created.ID).Info("employee added")
	out := cloneEmployee(created)
	return &out, nil
}

// UpdateEmployee は ID が一致する社員を置き換えます。一致しない場合は何もせず false を返します。
// 履歴は AddHistory でのみ変更するため、updated.History は無視され保存済みの履歴が維持されます。
func (s *Service) UpdateEmployee(ctx context.Context, updated Employee) (bool, error) {
	if strings.TrimSpace(updated.ID) == "" {
		return false, ErrInvalidID
	}
	if !isValidDepartment(updated.Department) {
		return false, fmt.Errorf("department %q: %w", updated.Department, ErrInvalidDepartment)
	}
	if !isValidStatus(updated.Status) {
		return false, fmt.Errorf("status %q: %w", updated.Status, ErrInvalidStatus)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if idx := s.indexOf(updated.ID); idx >= 0 {
		updated.History = s.employees[idx].History
	}
	return s.replace(ctx, updated), nil
}

func (s *Service) replace(ctx context.Context, updated Employee) bool {
	idx := s.indexOf(updated.ID)
	if idx < 0 {
		s.logger.WithField("employee_id", updated.ID).Debug("update ignored, employee not found")
		return false
	}
	next := cloneCollection(s.employees)
	next[idx] = cloneEmployee(updated)
	if next[idx].History == nil {
		next[idx].History = []HistoryRecord{}
	}
	s.commit(ctx, next)
	return true
}

// AddHistory は履歴レコードを社員の履歴の先頭に追加します。
func (s *Service) AddHistory(ctx context.Context, employeeID string, draft HistoryDraft) (*HistoryRecord, error) {
	title := strings.TrimSpace(draft.Title)
	description := strings.TrimSpace(draft.Description)
	if title == "" || description == "" {
		return nil, ErrIncompleteDraft
	}

	recordType := draft.Type
	if recordType == "" {
		recordType = HistoryPerformanceReview
	}
	if !isValidHistoryType(recordType) {
		return nil, fmt.Errorf("type %q: %w", recordType, ErrInvalidHistoryType)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(employeeID)
	if idx < 0 {
		return nil, ErrEmployeeNotFound
	}

	record := HistoryRecord{
		ID:          s.newRecordID(),
		Date:        s.today(),
		Type:        recordType,
		Title:       title,
		Description: description,
		AIEnhanced:  draft.AIEnhanced,
	}

	updated := cloneEmployee(s.employees[idx])
	updated.History = append([]HistoryRecord{record}, updated.History...)
	s.replace(ctx, updated)

	s.logger.WithFields(logrus.Fields{
		"employee_id": employeeID,
		"record_id":   record.ID,
		"type":        record.Type,
	}).Info("history record added")
	return &record, nil
}

// Export はコレクション全体を整形済み JSON として返します。状態は変更しません。
func (s *Service) Export(_ context.Context) ([]byte, error) {
	s.mu.Lock()
	snapshot := cloneCollection(s.employees)
	s.mu.Unlock()

	raw, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("records: encode export: %w", err)
	}
	return raw, nil
}

// Import は raw を解析し、妥当であればコレクション全体を置き換えます。取り込んだ件数を返します。
func (s *Service) Import(ctx context.Context, raw []byte) (int, error) {
	imported, err := parseImport(raw)
	if err != nil {
		s.logger.WithError(err).Warn("import rejected")
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.commit(ctx, imported)

	s.logger.WithField("count", len(imported)).Info("records imported")
	return len(imported), nil
}

func parseImport(raw []byte) (Collection, error) {
	trimmed := bytes.TrimSpace(raw)
	if !json.Valid(trimmed) {
		return nil, ErrImportMalformed
	}

	var items []json.RawMessage
	if err := json.Unmarshal(trimmed, &items); err != nil || len(items) == 0 {
		return nil, ErrImportShape
	}

	var first map[string]any
	if err := json.Unmarshal(items[0], &first); err != nil || !truthy(first["id"]) {
		return nil, ErrImportShape
	}

	var c Collection
	if err := json.Unmarshal(trimmed, &c); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrImportShape, err)
	}
	for i := range c {
		if c[i].History == nil {
			c[i].History = []HistoryRecord{}
		}
	}
	return c, nil
}

func truthy(v any) bool {
	switch value := v.(type) {
	case nil:
		return false
	case string:
		return value != ""
	case bool:
		return value
	case float64:
		return value != 0
	default:
		return true
	}
}

// DepartmentBreakdown は部署ごとの人数を部署の定義順に返します。0 人の部署は含みません。
func (s *Service) DepartmentBreakdown(_ context.Context) []DepartmentCount {
	s.mu.Lock()
	defer s.mu.Unlock()

	counts := make(map[Department]int, len(Departments()))
	for _, e := range s.employees {
		counts[e.Department]++
	}

	out := make([]DepartmentCount, 0, len(counts))
	for _, d := range Departments() {
		if counts[d] > 0 {
			out = append(out, DepartmentCount{Department: d, Count: counts[d]})
		}
	}
	return out
}

// GenerateBio は社員の履歴から自己紹介文を生成し、代替文言でなければ bio に保存します。
// 生成中に他の項目が更新されても bio 以外は上書きしません。
func (s *Service) GenerateBio(ctx context.Context, employeeID string) (GeneratedText, error) {
	snapshot, ok := s.Employee(ctx, employeeID)
	if !ok {
		return GeneratedText{}, ErrEmployeeNotFound
	}

	result := s.writer.Bio(ctx, *snapshot)
	if result.Fallback {
		return result, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(employeeID)
	if idx < 0 {
		s.logger.WithField("employee_id", employeeID).Warn("discarding generated bio, employee no longer exists")
		return result, ErrStaleResponse
	}

	current := cloneEmployee(s.employees[idx])
	current.Bio = result.Text
	s.replace(ctx, current)
	return result, nil
}

// EnhanceNote はメモを整った文章に書き直します。失敗時は元の文章を返します。
func (s *Service) EnhanceNote(ctx context.Context, raw string, t HistoryType) GeneratedText {
	if strings.TrimSpace(raw) == "" {
		return GeneratedText{Text: raw, Fallback: true}
	}
	if t == "" {
		t = HistoryPerformanceReview
	}
	return s.writer.Enhance(ctx, raw, t)
}

// commit はコレクションを差し替えて保存します。保存の失敗は記録のみ行います。呼び出し側でロックを保持してください。
func (s *Service) commit(ctx context.Context, next Collection) {
	s.employees = next
	err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		return s.store.Save(txCtx, next)
	})
	if err != nil {
		s.logger.WithError(err).Error("failed to persist records")
	}
}

func (s *Service) indexOf(id string) int {
	for i := range s.employees {
		if s.employees[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Service) today() string {
	return s.clock.Now().UTC().Format(dateLayout)
}

func avatarURL(firstName, lastName string) string {
	return avatarBaseURL + "?name=" + url.QueryEscape(firstName) + "+" + url.QueryEscape(lastName) + "&background=random"
}

func newTimeOrderedID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
