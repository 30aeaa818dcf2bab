package recordsv1

import (
	"context"

	"github.com/ogurasousui/hr-smart-records/internal/adapters/grpc/codec"
	"google.golang.org/grpc"
)

// ServiceName は完全修飾サービス名です。
const ServiceName = "records.v1.RecordsService"

// SessionMetadataKey はセッション ID を運ぶメタデータキーです。
const SessionMetadataKey = "x-session-id"

const (
	RecordsService_ListEmployees_FullMethodName       = "/records.v1.RecordsService/ListEmployees"
	RecordsService_GetEmployee_FullMethodName         = "/records.v1.RecordsService/GetEmployee"
	RecordsService_AddEmployee_FullMethodName         = "/records.v1.RecordsService/AddEmployee"
	RecordsService_UpdateEmployee_FullMethodName      = "/records.v1.RecordsService/UpdateEmployee"
	RecordsService_AddHistory_FullMethodName          = "/records.v1.RecordsService/AddHistory"
	RecordsService_ExportCollection_FullMethodName    = "/records.v1.RecordsService/ExportCollection"
	RecordsService_ImportCollection_FullMethodName    = "/records.v1.RecordsService/ImportCollection"
	RecordsService_DepartmentBreakdown_FullMethodName = "/records.v1.RecordsService/DepartmentBreakdown"
	RecordsService_GenerateBio_FullMethodName         = "/records.v1.RecordsService/GenerateBio"
	RecordsService_EnhanceNote_FullMethodName         = "/records.v1.RecordsService/EnhanceNote"
	RecordsService_SelectEmployee_FullMethodName      = "/records.v1.RecordsService/SelectEmployee"
	RecordsService_GetSelection_FullMethodName        = "/records.v1.RecordsService/GetSelection"
)

// RecordsServiceServer はサーバー側の実装が満たすインターフェースです。
type RecordsServiceServer interface {
	ListEmployees(context.Context, *ListEmployeesRequest) (*ListEmployeesResponse, error)
	GetEmployee(context.Context, *GetEmployeeRequest) (*GetEmployeeResponse, error)
	AddEmployee(context.Context, *AddEmployeeRequest) (*AddEmployeeResponse, error)
	UpdateEmployee(context.Context, *UpdateEmployeeRequest) (*UpdateEmployeeResponse, error)
	AddHistory(context.Context, *AddHistoryRequest) (*AddHistoryResponse, error)
	ExportCollection(context.Context, *ExportCollectionRequest) (*ExportCollectionResponse, error)
	ImportCollection(context.Context, *ImportCollectionRequest) (*ImportCollectionResponse, error)
	DepartmentBreakdown(context.Context, *DepartmentBreakdownRequest) (*DepartmentBreakdownResponse, error)
	GenerateBio(context.Context, *GenerateBioRequest) (*GenerateBioResponse, error)
	EnhanceNote(context.Context, *EnhanceNoteRequest) (*EnhanceNoteResponse, error)
	SelectEmployee(context.Context, *SelectEmployeeRequest) (*SelectEmployeeResponse, error)
	GetSelection(context.Context, *GetSelectionRequest) (*GetSelectionResponse, error)
}

// RegisterRecordsServiceServer は srv を gRPC サーバーに登録します。
func RegisterRecordsServiceServer(s grpc.ServiceRegistrar, srv RecordsServiceServer) {
	s.RegisterService(&RecordsService_ServiceDesc, srv)
}

// unary はリクエスト型ごとの MethodHandler を組み立てます。
func unary[Req, Resp any](fullMethod string, call func(RecordsServiceServer, context.Context, *Req) (*Resp, error)) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(RecordsServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(RecordsServiceServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// RecordsService_ServiceDesc は records.v1.RecordsService のサービス定義です。
var RecordsService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*RecordsServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "ListEmployees", Handler: unary(RecordsService_ListEmployees_FullMethodName, RecordsServiceServer.ListEmployees)},
		{MethodName: "GetEmployee", Handler: unary(RecordsService_GetEmployee_FullMethodName, RecordsServiceServer.GetEmployee)},
		{MethodName: "AddEmployee", Handler: unary(RecordsService_AddEmployee_FullMethodName, RecordsServiceServer.AddEmployee)},
		{MethodName: "UpdateEmployee", Handler: unary(RecordsService_UpdateEmployee_FullMethodName, RecordsServiceServer.UpdateEmployee)},
		{MethodName: "AddHistory", Handler: unary(RecordsService_AddHistory_FullMethodName, RecordsServiceServer.AddHistory)},
		{MethodName: "ExportCollection", Handler: unary(RecordsService_ExportCollection_FullMethodName, RecordsServiceServer.ExportCollection)},
		{MethodName: "ImportCollection", Handler: unary(RecordsService_ImportCollection_FullMethodName, RecordsServiceServer.ImportCollection)},
		{MethodName: "DepartmentBreakdown", Handler: unary(RecordsService_DepartmentBreakdown_FullMethodName, RecordsServiceServer.DepartmentBreakdown)},
		{MethodName: "GenerateBio", Handler: unary(RecordsService_GenerateBio_FullMethodName, RecordsServiceServer.GenerateBio)},
		{MethodName: "EnhanceNote", Handler: unary(RecordsService_EnhanceNote_FullMethodName, RecordsServiceServer.EnhanceNote)},
		{MethodName: "SelectEmployee", Handler: unary(RecordsService_SelectEmployee_FullMethodName, RecordsServiceServer.SelectEmployee)},
		{MethodName: "GetSelection", Handler: unary(RecordsService_GetSelection_FullMethodName, RecordsServiceServer.GetSelection)},
	},
	Streams: []grpc.StreamDesc{},
}

// RecordsServiceClient は records.v1.RecordsService のクライアントです。
type RecordsServiceClient interface {
	ListEmployees(ctx context.Context, in *ListEmployeesRequest, opts ...grpc.CallOption) (*ListEmployeesResponse, error)
	GetEmployee(ctx context.Context, in *GetEmployeeRequest, opts ...grpc.CallOption) (*GetEmployeeResponse, error)
	AddEmployee(ctx context.Context, in *AddEmployeeRequest, opts ...grpc.CallOption) (*AddEmployeeResponse, error)
	UpdateEmployee(ctx context.Context, in *UpdateEmployeeRequest, opts ...grpc.CallOption) (*UpdateEmployeeResponse, error)
	AddHistory(ctx context.Context, in *AddHistoryRequest, opts ...grpc.CallOption) (*AddHistoryResponse, error)
	ExportCollection(ctx context.Context, in *ExportCollectionRequest, opts ...grpc.CallOption) (*ExportCollectionResponse, error)
	ImportCollection(ctx context.Context, in *ImportCollectionRequest, opts ...grpc.CallOption) (*ImportCollectionResponse, error)
	DepartmentBreakdown(ctx context.Context, in *DepartmentBreakdownRequest, opts ...grpc.CallOption) (*DepartmentBreakdownResponse, error)
	GenerateBio(ctx context.Context, in *GenerateBioRequest, opts ...grpc.CallOption) (*GenerateBioResponse, error)
	EnhanceNote(ctx context.Context, in *EnhanceNoteRequest, opts ...grpc.CallOption) (*EnhanceNoteResponse, error)
	SelectEmployee(ctx context.Context, in *SelectEmployeeRequest, opts ...grpc.CallOption) (*SelectEmployeeResponse, error)
	GetSelection(ctx context.Context, in *GetSelectionRequest, opts ...grpc.CallOption) (*GetSelectionResponse, error)
}

type recordsServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewRecordsServiceClient はクライアントを生成します。呼び出しは常に JSON コーデックを使います。
func NewRecordsServiceClient(cc grpc.ClientConnInterface) RecordsServiceClient {
	return &recordsServiceClient{cc: cc}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	callOpts := append([]grpc.CallOption{grpc.CallContentSubtype(codec.Name)}, opts...)
	if err := cc.Invoke(ctx, method, in, out, callOpts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *recordsServiceClient) ListEmployees(ctx context.Context, in *ListEmployeesRequest, opts ...grpc.CallOption) (*ListEmployeesResponse, error) {
	return invoke[ListEmployeesResponse](ctx, c.cc, RecordsService_ListEmployees_FullMethodName, in, opts)
}

func (c *recordsServiceClient) GetEmployee(ctx context.Context, in *GetEmployeeRequest, opts ...grpc.CallOption) (*GetEmployeeResponse, error) {
	return invoke[GetEmployeeResponse](ctx, c.cc, RecordsService_GetEmployee_FullMethodName, in, opts)
}

func (c *recordsServiceClient) AddEmployee(ctx context.Context, in *AddEmployeeRequest, opts ...grpc.CallOption) (*AddEmployeeResponse, error) {
	return invoke[AddEmployeeResponse](ctx, c.cc, RecordsService_AddEmployee_FullMethodName, in, opts)
}

func (c *recordsServiceClient) UpdateEmployee(ctx context.Context, in *UpdateEmployeeRequest, opts ...grpc.CallOption) (*UpdateEmployeeResponse, error) {
	return invoke[UpdateEmployeeResponse](ctx, c.cc, RecordsService_UpdateEmployee_FullMethodName, in, opts)
}

func (c *recordsServiceClient) AddHistory(ctx context.Context, in *AddHistoryRequest, opts ...grpc.CallOption) (*AddHistoryResponse, error) {
	return invoke[AddHistoryResponse](ctx, c.cc, RecordsService_AddHistory_FullMethodName, in, opts)
}

func (c *recordsServiceClient) ExportCollection(ctx context.Context, in *ExportCollectionRequest, opts ...grpc.CallOption) (*ExportCollectionResponse, error) {
	return invoke[ExportCollectionResponse](ctx, c.cc, RecordsService_ExportCollection_FullMethodName, in, opts)
}

func (c *recordsServiceClient) ImportCollection(ctx context.Context, in *ImportCollectionRequest, opts ...grpc.CallOption) (*ImportCollectionResponse, error) {
	return invoke[ImportCollectionResponse](ctx, c.cc, RecordsService_ImportCollection_FullMethodName, in, opts)
}

func (c *recordsServiceClient) DepartmentBreakdown(ctx context.Context, in *DepartmentBreakdownRequest, opts ...grpc.CallOption) (*DepartmentBreakdownResponse, error) {
	return invoke[DepartmentBreakdownResponse](ctx, c.cc, RecordsService_DepartmentBreakdown_FullMethodName, in, opts)
}

func (c *recordsServiceClient) GenerateBio(ctx context.Context, in *GenerateBioRequest, opts ...grpc.CallOption) (*GenerateBioResponse, error) {
	return invoke[GenerateBioResponse](ctx, c.cc, RecordsService_GenerateBio_FullMethodName, in, opts)
}

func (c *recordsServiceClient) EnhanceNote(ctx context.Context, in *EnhanceNoteRequest, opts ...grpc.CallOption) (*EnhanceNoteResponse, error) {
	return invoke[EnhanceNoteResponse](ctx, c.cc, RecordsService_EnhanceNote_FullMethodName, in, opts)
}

func (c *recordsServiceClient) SelectEmployee(ctx context.Context, in *SelectEmployeeRequest, opts ...grpc.CallOption) (*SelectEmployeeResponse, error) {
	return invoke[SelectEmployeeResponse](ctx, c.cc, RecordsService_SelectEmployee_FullMethodName, in, opts)
}

func (c *recordsServiceClient) GetSelection(ctx context.Context, in *GetSelectionRequest, opts ...grpc.CallOption) (*GetSelectionResponse, error) {
	return invoke[GetSelectionResponse](ctx, c.cc, RecordsService_GetSelection_FullMethodName, in, opts)
}
