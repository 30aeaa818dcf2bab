package handler

import (
	"errors"

	"github.com/ogurasousui/hr-smart-records/internal/core/records"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func toStatusError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, records.ErrIncompleteDraft),
		errors.Is(err, records.ErrInvalidID),
		errors.Is(err, records.ErrInvalidDepartment),
		errors.Is(err, records.ErrInvalidStatus),
		errors.Is(err, records.ErrInvalidHistoryType),
		errors.Is(err, records.ErrInvalidStartDate),
		errors.Is(err, records.ErrImportMalformed),
		errors.Is(err, records.ErrImportShape):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, records.ErrNoSelection), errors.Is(err, records.ErrDialogClosed):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, records.ErrEmployeeNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, records.ErrStaleResponse):
		return status.Error(codes.Aborted, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
