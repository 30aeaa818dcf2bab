package records

import (
	"context"
	"errors"
	"strings"
	"sync"
)

// DialogState は入力ダイアログの開閉状態です。
type DialogState int

const (
	DialogClosed DialogState = iota
	DialogOpen
)

// Session は 1 利用者分の画面状態 (選択中の社員、検索語、入力ダイアログ) を保持します。
type Session struct {
	svc *Service

	mu          sync.Mutex
	selectedID  string
	searchTerm  string
	employeeDlg DialogState
	employeeDft EmployeeDraft
	historyDlg  DialogState
	historyDft  HistoryDraft
	// historyGen はダイアログを開閉するたびに進み、完了が遅れた文章生成の結果を捨てるために使います。
	historyGen uint64
}

// NewSession は Session を生成します。
func NewSession(svc *Service) *Session {
	s := &Session{svc: svc}
	s.employeeDft = s.blankEmployeeDraft()
	s.historyDft = blankHistoryDraft()
	return s
}

// Select は詳細表示する社員を設定します。ID の存在は検証しません。
func (s *Session) Select(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedID = id
}

// Clear は選択を解除します。
func (s *Session) Clear() {
	s.Select("")
}

// SelectedID は選択中の ID を返します。
func (s *Session) SelectedID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectedID
}

// Selected は選択中の社員を返します。存在しない ID が選択されている場合は未選択として扱います。
func (s *Session) Selected(ctx context.Context) (*Employee, bool) {
	id := s.SelectedID()
	if id == "" {
		return nil, false
	}
	return s.svc.Employee(ctx, id)
}

// SetSearchTerm は検索語を設定します。
func (s *Session) SetSearchTerm(term string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.searchTerm = term
}

// SearchTerm は現在の検索語を返します。
func (s *Session) SearchTerm() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.searchTerm
}

// Visible は現在の検索語で絞り込んだ社員一覧を返します。
func (s *Session) Visible(ctx context.Context) Collection {
	return s.svc.Search(ctx, s.SearchTerm())
}

// OpenAddEmployee は社員追加ダイアログを開きます。
func (s *Session) OpenAddEmployee() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.employeeDlg = DialogOpen
}

// AddEmployeeState は社員追加ダイアログの状態と入力中の内容を返します。
func (s *Session) AddEmployeeState() (DialogState, EmployeeDraft) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.employeeDlg, s.employeeDft
}

// EditAddEmployee は入力中の社員情報を変更します。
func (s *Session) EditAddEmployee(edit func(*EmployeeDraft)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.employeeDlg != DialogOpen {
		return ErrDialogClosed
	}
	edit(&s.employeeDft)
	return nil
}

// CancelAddEmployee はダイアログを閉じます。入力内容は保持されます。
func (s *Session) CancelAddEmployee() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.employeeDlg = DialogClosed
}

// ResetAddEmployee はダイアログを閉じ、入力内容を初期値に戻します。
// 1 回の呼び出しで入力から保存まで行う経路が、失敗した入力を次の呼び出しに残さないために使います。
func (s *Session) ResetAddEmployee() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.employeeDlg = DialogClosed
	s.employeeDft = s.blankEmployeeDraft()
}

// SaveAddEmployee は入力内容で社員を追加し、ダイアログを閉じて追加した社員を選択します。
// 必須項目が欠けている場合はダイアログを開いたままにします。
func (s *Session) SaveAddEmployee(ctx context.Context) (*Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.employeeDlg != DialogOpen {
		return nil, ErrDialogClosed
	}

	created, err := s.svc.AddEmployee(ctx, s.employeeDft)
	if err != nil {
		return nil, err
	}

	s.employeeDlg = DialogClosed
	s.selectedID = created.ID
	s.employeeDft = s.blankEmployeeDraft()
	return created, nil
}

// OpenAddHistory は選択中の社員に対する履歴追加ダイアログを開きます。
func (s *Session) OpenAddHistory() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selectedID == "" {
		return ErrNoSelection
	}
	s.historyDlg = DialogOpen
	s.historyGen++
	return nil
}

// AddHistoryState は履歴追加ダイアログの状態と入力中の内容を返します。
func (s *Session) AddHistoryState() (DialogState, HistoryDraft) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.historyDlg, s.historyDft
}

// EditAddHistory は入力中の履歴を変更します。
func (s *Session) EditAddHistory(edit func(*HistoryDraft)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.historyDlg != DialogOpen {
		return ErrDialogClosed
	}
	before := s.historyDft.Description
	edit(&s.historyDft)
	if s.historyDft.Description != before {
		s.historyDft.AIEnhanced = false
	}
	return nil
}

// CancelAddHistory はダイアログを閉じます。
func (s *Session) CancelAddHistory() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.historyDlg = DialogClosed
	s.historyGen++
}

// EnhanceHistoryDraft は入力中の説明文を文章生成で書き直します。
// 生成中にダイアログが閉じられた、または説明文が変更された場合、結果は破棄されます。
func (s *Session) EnhanceHistoryDraft(ctx context.Context) (GeneratedText, error) {
	s.mu.Lock()
	if s.historyDlg != DialogOpen {
		s.mu.Unlock()
		return GeneratedText{}, ErrDialogClosed
	}
	draft := s.historyDft
	gen := s.historyGen
	s.mu.Unlock()

	if strings.TrimSpace(draft.Description) == "" {
		return GeneratedText{Text: draft.Description, Fallback: true}, nil
	}

	result := s.svc.EnhanceNote(ctx, draft.Description, draft.Type)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.historyDlg != DialogOpen || s.historyGen != gen || s.historyDft.Description != draft.Description {
		return result, ErrStaleResponse
	}
	s.historyDft.Description = result.Text
	s.historyDft.AIEnhanced = !result.Fallback
	return result, nil
}

// SaveAddHistory は選択中の社員に履歴を追加し、ダイアログを閉じます。
func (s *Session) SaveAddHistory(ctx context.Context) (*HistoryRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.historyDlg != DialogOpen {
		return nil, ErrDialogClosed
	}
	if s.selectedID == "" {
		return nil, ErrNoSelection
	}

	record, err := s.svc.AddHistory(ctx, s.selectedID, s.historyDft)
	if err != nil {
		if errors.Is(err, ErrEmployeeNotFound) {
			s.historyDlg = DialogClosed
			s.historyGen++
		}
		return nil, err
	}

	s.historyDlg = DialogClosed
	s.historyGen++
	s.historyDft = blankHistoryDraft()
	return record, nil
}

func (s *Session) blankEmployeeDraft() EmployeeDraft {
	return EmployeeDraft{Department: DepartmentIT, StartDate: s.svc.today()}
}

func blankHistoryDraft() HistoryDraft {
	return HistoryDraft{Type: HistoryPerformanceReview}
}

// DefaultSessionID はセッション ID が指定されない場合に使用する ID です。
const DefaultSessionID = "default"

// DefaultMaxSessions は Sessions が同時に保持するセッション数の既定の上限です。
const DefaultMaxSessions = 1024

// Sessions はセッション ID ごとの Session を管理します。
// 上限を超えると最も長く使われていないセッションから破棄します。
type Sessions struct {
	svc   *Service
	max   int
	mu    sync.Mutex
	tick  uint64
	items map[string]*sessionEntry
}

type sessionEntry struct {
	sess     *Session
	lastUsed uint64
}

// SessionsOption は Sessions の挙動を調整します。
type SessionsOption func(*Sessions)

// WithMaxSessions は保持するセッション数の上限を設定します。0 以下は既定値を使います。
func WithMaxSessions(n int) SessionsOption {
	return func(r *Sessions) {
		if n > 0 {
			r.max = n
		}
	}
}

// NewSessions は Sessions を生成します。
func NewSessions(svc *Service, opts ...SessionsOption) *Sessions {
	r := &Sessions{svc: svc, max: DefaultMaxSessions, items: make(map[string]*sessionEntry)}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Get は ID に対応する Session を返します。存在しない場合は生成します。
func (r *Sessions) Get(id string) *Session {
	if strings.TrimSpace(id) == "" {
		id = DefaultSessionID
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tick++
	if entry, ok := r.items[id]; ok {
		entry.lastUsed = r.tick
		return entry.sess
	}
	for len(r.items) >= r.max {
		r.evictOldest()
	}
	sess := NewSession(r.svc)
	r.items[id] = &sessionEntry{sess: sess, lastUsed: r.tick}
	return sess
}

func (r *Sessions) evictOldest() {
	oldestID := ""
	var oldest uint64
	for id, entry := range r.items {
		if oldestID == "" || entry.lastUsed < oldest {
			oldestID, oldest = id, entry.lastUsed
		}
	}
	if oldestID != "" {
		delete(r.items, oldestID)
		r.svc.logger.WithField("session_id", oldestID).Debug("session evicted")
	}
}

// Len は管理中のセッション数を返します。
func (r *Sessions) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.items)
}
