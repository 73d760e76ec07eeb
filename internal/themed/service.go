package themed

import (
	"context"
	"encoding/json"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "themedeck.v1.ThemeService"

// Full method names, as seen by interceptors.
const (
	MethodGetTheme     = "/" + ServiceName + "/GetTheme"
	MethodListThemes   = "/" + ServiceName + "/ListThemes"
	MethodSetSelection = "/" + ServiceName + "/SetSelection"
	MethodGetVariables = "/" + ServiceName + "/GetVariables"
)

// ThemeServiceServer is implemented by Server. Requests and responses are
// google.protobuf.Struct messages so no generated code is required.
type ThemeServiceServer interface {
	GetTheme(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	ListThemes(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	SetSelection(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	GetVariables(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
}

type unaryCall func(srv ThemeServiceServer, ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)

func unaryHandler(fullMethod string, call unaryCall) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(ThemeServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(ThemeServiceServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// ThemeServiceDesc describes the service for grpc.Server.RegisterService.
var ThemeServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*ThemeServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetTheme",
			Handler: unaryHandler(MethodGetTheme, func(srv ThemeServiceServer, ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
				return srv.GetTheme(ctx, req)
			}),
		},
		{
			MethodName: "ListThemes",
			Handler: unaryHandler(MethodListThemes, func(srv ThemeServiceServer, ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
				return srv.ListThemes(ctx, req)
			}),
		},
		{
			MethodName: "SetSelection",
			Handler: unaryHandler(MethodSetSelection, func(srv ThemeServiceServer, ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
				return srv.SetSelection(ctx, req)
			}),
		},
		{
			MethodName: "GetVariables",
			Handler: unaryHandler(MethodGetVariables, func(srv ThemeServiceServer, ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
				return srv.GetVariables(ctx, req)
			}),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "themedeck/v1/theme.proto",
}

// RegisterThemeServiceServer registers srv on s.
func RegisterThemeServiceServer(s grpc.ServiceRegistrar, srv ThemeServiceServer) {
	s.RegisterService(&ThemeServiceDesc, srv)
}

// toStruct converts any JSON-encodable value into a Struct.
func toStruct(v any) (*structpb.Struct, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode message: %w", err)
	}
	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("encode message: %w", err)
	}
	return structpb.NewStruct(fields)
}

// fromStruct decodes a Struct into v using its json tags.
func fromStruct(s *structpb.Struct, v any) error {
	data, err := json.Marshal(s.AsMap())
	if err != nil {
		return fmt.Errorf("decode message: %w", err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode message: %w", err)
	}
	return nil
}

// Message shapes carried inside the Structs.

// SelectionRequest is the body of GetTheme and SetSelection. Empty fields keep
// the current value.
type SelectionRequest struct {
	Palette string `json:"palette,omitempty"`
	Style   string `json:"style,omitempty"`
}

// VariablesRequest is the body of GetVariables. Format is optional; when set
// the response also carries the rendered text.
type VariablesRequest struct {
	Format   string `json:"format,omitempty"`
	Selector string `json:"selector,omitempty"`
}
