package recordsv1

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// UnimplementedRecordsServiceServer は埋め込み用の既定実装です。全メソッドが Unimplemented を返します。
type UnimplementedRecordsServiceServer struct{}

func (UnimplementedRecordsServiceServer) ListEmployees(context.Context, *ListEmployeesRequest) (*ListEmployeesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListEmployees not implemented")
}

func (UnimplementedRecordsServiceServer) GetEmployee(context.Context, *GetEmployeeRequest) (*GetEmployeeResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetEmployee not implemented")
}

func (UnimplementedRecordsServiceServer) AddEmployee(context.Context, *AddEmployeeRequest) (*AddEmployeeResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method AddEmployee not implemented")
}

func (UnimplementedRecordsServiceServer) UpdateEmployee(context.Context, *UpdateEmployeeRequest) (*UpdateEmployeeResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdateEmployee not implemented")
}

func (UnimplementedRecordsServiceServer) AddHistory(context.Context, *AddHistoryRequest) (*AddHistoryResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method AddHistory not implemented")
}

func (UnimplementedRecordsServiceServer) ExportCollection(context.Context, *ExportCollectionRequest) (*ExportCollectionResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ExportCollection not implemented")
}

func (UnimplementedRecordsServiceServer) ImportCollection(context.Context, *ImportCollectionRequest) (*ImportCollectionResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ImportCollection not implemented")
}

func (UnimplementedRecordsServiceServer) DepartmentBreakdown(context.Context, *DepartmentBreakdownRequest) (*DepartmentBreakdownResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method DepartmentBreakdown not implemented")
}

func (UnimplementedRecordsServiceServer) GenerateBio(context.Context, *GenerateBioRequest) (*GenerateBioResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GenerateBio not implemented")
}

func (UnimplementedRecordsServiceServer) EnhanceNote(context.Context, *EnhanceNoteRequest) (*EnhanceNoteResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method EnhanceNote not implemented")
}

func (UnimplementedRecordsServiceServer) SelectEmployee(context.Context, *SelectEmployeeRequest) (*SelectEmployeeResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SelectEmployee not implemented")
}

func (UnimplementedRecordsServiceServer) GetSelection(context.Context, *GetSelectionRequest) (*GetSelectionResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetSelection not implemented")
}
