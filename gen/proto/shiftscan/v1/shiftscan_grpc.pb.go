// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.4.0
// - protoc             (unknown)
// source: shiftscan/v1/shiftscan.proto

package shiftscanv1

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.62.0 or later.
const _ = grpc.SupportPackageIsVersion8

const (
	ShiftScanService_AnalyzeShiftReport_FullMethodName = "/shiftscan.v1.ShiftScanService/AnalyzeShiftReport"
	ShiftScanService_GetReport_FullMethodName          = "/shiftscan.v1.ShiftScanService/GetReport"
	ShiftScanService_ListReports_FullMethodName        = "/shiftscan.v1.ShiftScanService/ListReports"
	ShiftScanService_TopDepartments_FullMethodName     = "/shiftscan.v1.ShiftScanService/TopDepartments"
	ShiftScanService_TopItems_FullMethodName           = "/shiftscan.v1.ShiftScanService/TopItems"
	ShiftScanService_ExportReports_FullMethodName      = "/shiftscan.v1.ShiftScanService/ExportReports"
	ShiftScanService_CreateStore_FullMethodName        = "/shiftscan.v1.ShiftScanService/CreateStore"
	ShiftScanService_ListStores_FullMethodName         = "/shiftscan.v1.ShiftScanService/ListStores"
)

// ShiftScanServiceClient is the client API for ShiftScanService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type ShiftScanServiceClient interface {
	// AnalyzeShiftReport runs the extraction pipeline on an uploaded document
	// and persists the result, deduplicating on the recognized text.
	AnalyzeShiftReport(ctx context.Context, in *AnalyzeShiftReportRequest, opts ...grpc.CallOption) (*AnalyzeShiftReportResponse, error)
	GetReport(ctx context.Context, in *GetReportRequest, opts ...grpc.CallOption) (*GetReportResponse, error)
	ListReports(ctx context.Context, in *ListReportsRequest, opts ...grpc.CallOption) (*ListReportsResponse, error)
	TopDepartments(ctx context.Context, in *TopRequest, opts ...grpc.CallOption) (*TopResponse, error)
	TopItems(ctx context.Context, in *TopRequest, opts ...grpc.CallOption) (*TopResponse, error)
	ExportReports(ctx context.Context, in *ExportReportsRequest, opts ...grpc.CallOption) (*ExportReportsResponse, error)
	CreateStore(ctx context.Context, in *CreateStoreRequest, opts ...grpc.CallOption) (*CreateStoreResponse, error)
	ListStores(ctx context.Context, in *ListStoresRequest, opts ...grpc.CallOption) (*ListStoresResponse, error)
}

type shiftScanServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewShiftScanServiceClient(cc grpc.ClientConnInterface) ShiftScanServiceClient {
	return &shiftScanServiceClient{cc}
}

func (c *shiftScanServiceClient) AnalyzeShiftReport(ctx context.Context, in *AnalyzeShiftReportRequest, opts ...grpc.CallOption) (*AnalyzeShiftReportResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(AnalyzeShiftReportResponse)
	err := c.cc.Invoke(ctx, ShiftScanService_AnalyzeShiftReport_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *shiftScanServiceClient) GetReport(ctx context.Context, in *GetReportRequest, opts ...grpc.CallOption) (*GetReportResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetReportResponse)
	err := c.cc.Invoke(ctx, ShiftScanService_GetReport_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *shiftScanServiceClient) ListReports(ctx context.Context, in *ListReportsRequest, opts ...grpc.CallOption) (*ListReportsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListReportsResponse)
	err := c.cc.Invoke(ctx, ShiftScanService_ListReports_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *shiftScanServiceClient) TopDepartments(ctx context.Context, in *TopRequest, opts ...grpc.CallOption) (*TopResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(TopResponse)
	err := c.cc.Invoke(ctx, ShiftScanService_TopDepartments_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *shiftScanServiceClient) TopItems(ctx context.Context, in *TopRequest, opts ...grpc.CallOption) (*TopResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(TopResponse)
	err := c.cc.Invoke(ctx, ShiftScanService_TopItems_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *shiftScanServiceClient) ExportReports(ctx context.Context, in *ExportReportsRequest, opts ...grpc.CallOption) (*ExportReportsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportReportsResponse)
	err := c.cc.Invoke(ctx, ShiftScanService_ExportReports_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *shiftScanServiceClient) CreateStore(ctx context.Context, in *CreateStoreRequest, opts ...grpc.CallOption) (*CreateStoreResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CreateStoreResponse)
	err := c.cc.Invoke(ctx, ShiftScanService_CreateStore_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *shiftScanServiceClient) ListStores(ctx context.Context, in *ListStoresRequest, opts ...grpc.CallOption) (*ListStoresResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListStoresResponse)
	err := c.cc.Invoke(ctx, ShiftScanService_ListStores_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ShiftScanServiceServer is the server API for ShiftScanService service.
// All implementations must embed UnimplementedShiftScanServiceServer
// for forward compatibility
type ShiftScanServiceServer interface {
	// AnalyzeShiftReport runs the extraction pipeline on an uploaded document
	// and persists the result, deduplicating on the recognized text.
	AnalyzeShiftReport(context.Context, *AnalyzeShiftReportRequest) (*AnalyzeShiftReportResponse, error)
	GetReport(context.Context, *GetReportRequest) (*GetReportResponse, error)
	ListReports(context.Context, *ListReportsRequest) (*ListReportsResponse, error)
	TopDepartments(context.Context, *TopRequest) (*TopResponse, error)
	TopItems(context.Context, *TopRequest) (*TopResponse, error)
	ExportReports(context.Context, *ExportReportsRequest) (*ExportReportsResponse, error)
	CreateStore(context.Context, *CreateStoreRequest) (*CreateStoreResponse, error)
	ListStores(context.Context, *ListStoresRequest) (*ListStoresResponse, error)
	mustEmbedUnimplementedShiftScanServiceServer()
}

// UnimplementedShiftScanServiceServer must be embedded to have forward compatible implementations.
type UnimplementedShiftScanServiceServer struct {
}

func (UnimplementedShiftScanServiceServer) AnalyzeShiftReport(context.Context, *AnalyzeShiftReportRequest) (*AnalyzeShiftReportResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method AnalyzeShiftReport not implemented")
}
func (UnimplementedShiftScanServiceServer) GetReport(context.Context, *GetReportRequest) (*GetReportResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetReport not implemented")
}
func (UnimplementedShiftScanServiceServer) ListReports(context.Context, *ListReportsRequest) (*ListReportsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListReports not implemented")
}
func (UnimplementedShiftScanServiceServer) TopDepartments(context.Context, *TopRequest) (*TopResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method TopDepartments not implemented")
}
func (UnimplementedShiftScanServiceServer) TopItems(context.Context, *TopRequest) (*TopResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method TopItems not implemented")
}
func (UnimplementedShiftScanServiceServer) ExportReports(context.Context, *ExportReportsRequest) (*ExportReportsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExportReports not implemented")
}
func (UnimplementedShiftScanServiceServer) CreateStore(context.Context, *CreateStoreRequest) (*CreateStoreResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateStore not implemented")
}
func (UnimplementedShiftScanServiceServer) ListStores(context.Context, *ListStoresRequest) (*ListStoresResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListStores not implemented")
}
func (UnimplementedShiftScanServiceServer) mustEmbedUnimplementedShiftScanServiceServer() {}

// UnsafeShiftScanServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to ShiftScanServiceServer will
// result in compilation errors.
type UnsafeShiftScanServiceServer interface {
	mustEmbedUnimplementedShiftScanServiceServer()
}

func RegisterShiftScanServiceServer(s grpc.ServiceRegistrar, srv ShiftScanServiceServer) {
	s.RegisterService(&ShiftScanService_ServiceDesc, srv)
}

func _ShiftScanService_AnalyzeShiftReport_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(AnalyzeShiftReportRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ShiftScanServiceServer).AnalyzeShiftReport(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ShiftScanService_AnalyzeShiftReport_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ShiftScanServiceServer).AnalyzeShiftReport(ctx, req.(*AnalyzeShiftReportRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ShiftScanService_GetReport_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetReportRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ShiftScanServiceServer).GetReport(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ShiftScanService_GetReport_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ShiftScanServiceServer).GetReport(ctx, req.(*GetReportRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ShiftScanService_ListReports_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListReportsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ShiftScanServiceServer).ListReports(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ShiftScanService_ListReports_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ShiftScanServiceServer).ListReports(ctx, req.(*ListReportsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ShiftScanService_TopDepartments_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(TopRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ShiftScanServiceServer).TopDepartments(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ShiftScanService_TopDepartments_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ShiftScanServiceServer).TopDepartments(ctx, req.(*TopRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ShiftScanService_TopItems_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(TopRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ShiftScanServiceServer).TopItems(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ShiftScanService_TopItems_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ShiftScanServiceServer).TopItems(ctx, req.(*TopRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ShiftScanService_ExportReports_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportReportsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ShiftScanServiceServer).ExportReports(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ShiftScanService_ExportReports_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ShiftScanServiceServer).ExportReports(ctx, req.(*ExportReportsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ShiftScanService_CreateStore_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateStoreRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ShiftScanServiceServer).CreateStore(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ShiftScanService_CreateStore_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ShiftScanServiceServer).CreateStore(ctx, req.(*CreateStoreRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ShiftScanService_ListStores_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListStoresRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ShiftScanServiceServer).ListStores(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ShiftScanService_ListStores_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ShiftScanServiceServer).ListStores(ctx, req.(*ListStoresRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ShiftScanService_ServiceDesc is the grpc.ServiceDesc for ShiftScanService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var ShiftScanService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "shiftscan.v1.ShiftScanService",
	HandlerType: (*ShiftScanServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "AnalyzeShiftReport",
			Handler:    _ShiftScanService_AnalyzeShiftReport_Handler,
		},
		{
			MethodName: "GetReport",
			Handler:    _ShiftScanService_GetReport_Handler,
		},
		{
			MethodName: "ListReports",
			Handler:    _ShiftScanService_ListReports_Handler,
		},
		{
			MethodName: "TopDepartments",
			Handler:    _ShiftScanService_TopDepartments_Handler,
		},
		{
			MethodName: "TopItems",
			Handler:    _ShiftScanService_TopItems_Handler,
		},
		{
			MethodName: "ExportReports",
			Handler:    _ShiftScanService_ExportReports_Handler,
		},
		{
			MethodName: "CreateStore",
			Handler:    _ShiftScanService_CreateStore_Handler,
		},
		{
			MethodName: "ListStores",
			Handler:    _ShiftScanService_ListStores_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "shiftscan/v1/shiftscan.proto",
}
