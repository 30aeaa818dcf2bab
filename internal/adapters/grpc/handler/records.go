package handler

import (
	"context"
	"strings"

	recordsv1 "github.com/ogurasousui/hr-smart-records/internal/adapters/grpc/recordsv1"
	"github.com/ogurasousui/hr-smart-records/internal/core/records"
	"github.com/sirupsen/logrus"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// RecordsGrpcHandler は RecordsService の gRPC 実装です。
type RecordsGrpcHandler struct {
	svc      records.UseCase
	sessions *records.Sessions
	logger   logrus.FieldLogger
	recordsv1.UnimplementedRecordsServiceServer
}

// NewRecordsGrpcHandler は RecordsGrpcHandler を生成します。
func NewRecordsGrpcHandler(svc records.UseCase, sessions *records.Sessions, logger logrus.FieldLogger) *RecordsGrpcHandler {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &RecordsGrpcHandler{svc: svc, sessions: sessions, logger: logger}
}

// session はメタデータ x-session-id に対応するセッションを返します。
func (h *RecordsGrpcHandler) session(ctx context.Context) *records.Session {
	var id string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(recordsv1.SessionMetadataKey); len(values) > 0 {
			id = values[0]
		}
	}
	return h.sessions.Get(id)
}

// ListEmployees は検索語をセッションに保存し、一致する社員を返します。
func (h *RecordsGrpcHandler) ListEmployees(ctx context.Context, req *recordsv1.ListEmployeesRequest) (*recordsv1.ListEmployeesResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	sess := h.session(ctx)
	sess.SetSearchTerm(req.GetSearchTerm())

	return &recordsv1.ListEmployeesResponse{
		Employees:  toProtoEmployees(sess.Visible(ctx)),
		SearchTerm: sess.SearchTerm(),
	}, nil
}

// GetEmployee は社員を 1 名返します。
func (h *RecordsGrpcHandler) GetEmployee(ctx context.Context, req *recordsv1.GetEmployeeRequest) (*recordsv1.GetEmployeeResponse, error) {
	if req == nil || strings.TrimSpace(req.GetID()) == "" {
		return nil, status.Error(codes.InvalidArgument, "id is required")
	}

	found, ok := h.svc.Employee(ctx, req.GetID())
	if !ok {
		return nil, toStatusError(records.ErrEmployeeNotFound)
	}
	return &recordsv1.GetEmployeeResponse{Employee: toProtoEmployee(*found)}, nil
}

// AddEmployee はセッションの追加ダイアログを通して社員を追加し、追加した社員を選択します。
func (h *RecordsGrpcHandler) AddEmployee(ctx context.Context, req *recordsv1.AddEmployeeRequest) (*recordsv1.AddEmployeeResponse, error) {
	if req == nil || req.GetDraft() == nil {
		return nil, status.Error(codes.InvalidArgument, "draft is required")
	}

	sess := h.session(ctx)
	sess.OpenAddEmployee()
	draft := toDomainEmployeeDraft(req.GetDraft())
	if err := sess.EditAddEmployee(func(d *records.EmployeeDraft) {
		d.FirstName = draft.FirstName
		d.LastName = draft.LastName
		d.Email = draft.Email
		d.Position = draft.Position
		if draft.Department != "" {
			d.Department = draft.Department
		}
		if draft.StartDate != "" {
			d.StartDate = draft.StartDate
		}
	}); err != nil {
		return nil, toStatusError(err)
	}

	created, err := sess.SaveAddEmployee(ctx)
	if err != nil {
		sess.ResetAddEmployee()
		return nil, toStatusError(err)
	}

	return &recordsv1.AddEmployeeResponse{Employee: toProtoEmployee(*created)}, nil
}

// UpdateEmployee は社員を置き換えます。該当する社員がいない場合 updated は false です。
func (h *RecordsGrpcHandler) UpdateEmployee(ctx context.Context, req *recordsv1.UpdateEmployeeRequest) (*recordsv1.UpdateEmployeeResponse, error) {
	if req == nil || req.GetEmployee() == nil {
		return nil, status.Error(codes.InvalidArgument, "employee is required")
	}

	updated, err := h.svc.UpdateEmployee(ctx, toDomainEmployee(req.GetEmployee()))
	if err != nil {
		return nil, toStatusError(err)
	}
	return &recordsv1.UpdateEmployeeResponse{Updated: updated}, nil
}

// AddHistory は履歴を追加します。employee_id が空の場合はセッションで選択中の社員が対象です。
func (h *RecordsGrpcHandler) AddHistory(ctx context.Context, req *recordsv1.AddHistoryRequest) (*recordsv1.AddHistoryResponse, error) {
	if req == nil || req.GetDraft() == nil {
		return nil, status.Error(codes.InvalidArgument, "draft is required")
	}

	draft := toDomainHistoryDraft(req.GetDraft())

	if strings.TrimSpace(req.GetEmployeeID()) != "" {
		record, err := h.svc.AddHistory(ctx, req.GetEmployeeID(), draft)
		if err != nil {
			return nil, toStatusError(err)
		}
		return &recordsv1.AddHistoryResponse{Record: toProtoHistoryRecord(*record)}, nil
	}

	sess := h.session(ctx)
	if err := sess.OpenAddHistory(); err != nil {
		return nil, toStatusError(err)
	}
	if err := sess.EditAddHistory(func(d *records.HistoryDraft) {
		d.Type = draft.Type
		d.Title = draft.Title
		d.Description = draft.Description
	}); err != nil {
		return nil, toStatusError(err)
	}
	// 説明文の変更で落ちたフラグを、クライアントが送った値で戻す
	if err := sess.EditAddHistory(func(d *records.HistoryDraft) { d.AIEnhanced = draft.AIEnhanced }); err != nil {
		return nil, toStatusError(err)
	}
	record, err := sess.SaveAddHistory(ctx)
	if err != nil {
		sess.CancelAddHistory()
		return nil, toStatusError(err)
	}
	return &recordsv1.AddHistoryResponse{Record: toProtoHistoryRecord(*record)}, nil
}

// ExportCollection はコレクション全体を JSON 文書として返します。
func (h *RecordsGrpcHandler) ExportCollection(ctx context.Context, _ *recordsv1.ExportCollectionRequest) (*recordsv1.ExportCollectionResponse, error) {
	data, err := h.svc.Export(ctx)
	if err != nil {
		return nil, toStatusError(err)
	}
	return &recordsv1.ExportCollectionResponse{FileName: records.ExportFileName, Data: string(data)}, nil
}

// ImportCollection はコレクション全体を置き換えます。
func (h *RecordsGrpcHandler) ImportCollection(ctx context.Context, req *recordsv1.ImportCollectionRequest) (*recordsv1.ImportCollectionResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	count, err := h.svc.Import(ctx, []byte(req.GetData()))
	if err != nil {
		return nil, toStatusError(err)
	}
	return &recordsv1.ImportCollectionResponse{Count: int32(count)}, nil
}

// DepartmentBreakdown は部署ごとの人数を返します。
func (h *RecordsGrpcHandler) DepartmentBreakdown(ctx context.Context, _ *recordsv1.DepartmentBreakdownRequest) (*recordsv1.DepartmentBreakdownResponse, error) {
	counts := h.svc.DepartmentBreakdown(ctx)
	out := make([]*recordsv1.DepartmentCount, 0, len(counts))
	for _, c := range counts {
		out = append(out, &recordsv1.DepartmentCount{Department: string(c.Department), Count: int32(c.Count)})
	}
	return &recordsv1.DepartmentBreakdownResponse{Departments: out}, nil
}

// GenerateBio は自己紹介文を生成します。
func (h *RecordsGrpcHandler) GenerateBio(ctx context.Context, req *recordsv1.GenerateBioRequest) (*recordsv1.GenerateBioResponse, error) {
	if req == nil || strings.TrimSpace(req.GetEmployeeID()) == "" {
		return nil, status.Error(codes.InvalidArgument, "employee_id is required")
	}

	result, err := h.svc.GenerateBio(ctx, req.GetEmployeeID())
	if err != nil {
		return nil, toStatusError(err)
	}
	return &recordsv1.GenerateBioResponse{Bio: result.Text, Fallback: result.Fallback}, nil
}

// EnhanceNote はメモを書き直した文章を返します。
func (h *RecordsGrpcHandler) EnhanceNote(ctx context.Context, req *recordsv1.EnhanceNoteRequest) (*recordsv1.EnhanceNoteResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	result := h.svc.EnhanceNote(ctx, req.GetText(), records.HistoryType(req.GetType()))
	return &recordsv1.EnhanceNoteResponse{Text: result.Text, Fallback: result.Fallback}, nil
}

// SelectEmployee はセッションの選択中社員を切り替えます。空の ID は選択解除です。
func (h *RecordsGrpcHandler) SelectEmployee(ctx context.Context, req *recordsv1.SelectEmployeeRequest) (*recordsv1.SelectEmployeeResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	sess := h.session(ctx)
	if strings.TrimSpace(req.GetID()) == "" {
		sess.Clear()
		return &recordsv1.SelectEmployeeResponse{}, nil
	}

	sess.Select(req.GetID())
	selected, ok := sess.Selected(ctx)
	if !ok {
		h.logger.WithField("employee_id", req.GetID()).Debug("selected employee does not exist")
		return &recordsv1.SelectEmployeeResponse{}, nil
	}
	return &recordsv1.SelectEmployeeResponse{Employee: toProtoEmployee(*selected)}, nil
}

// GetSelection はセッションの選択中社員と検索語を返します。
func (h *RecordsGrpcHandler) GetSelection(ctx context.Context, _ *recordsv1.GetSelectionRequest) (*recordsv1.GetSelectionResponse, error) {
	sess := h.session(ctx)
	resp := &recordsv1.GetSelectionResponse{SearchTerm: sess.SearchTerm()}
	if selected, ok := sess.Selected(ctx); ok {
		resp.Employee = toProtoEmployee(*selected)
	}
	return resp, nil
}
