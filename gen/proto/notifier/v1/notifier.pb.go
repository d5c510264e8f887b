// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: proto/notifier/v1/notifier.proto

package notifierv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type ProcessGuideRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// Absolute path of the guide document on the server host.
	Path string `protobuf:"bytes,1,opt,name=path,proto3" json:"path,omitempty"`
	// Optional customer phone supplied with the upload; used only when the
	// document itself carries no phone.
	PhoneHint     string `protobuf:"bytes,2,opt,name=phone_hint,json=phoneHint,proto3" json:"phone_hint,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ProcessGuideRequest) Reset() {
	*x = ProcessGuideRequest{}
	mi := &file_proto_notifier_v1_notifier_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProcessGuideRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProcessGuideRequest) ProtoMessage() {}

func (x *ProcessGuideRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_notifier_v1_notifier_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProcessGuideRequest.ProtoReflect.Descriptor instead.
func (*ProcessGuideRequest) Descriptor() ([]byte, []int) {
	return file_proto_notifier_v1_notifier_proto_rawDescGZIP(), []int{0}
}

func (x *ProcessGuideRequest) GetPath() string {
	if x != nil {
		return x.Path
	}
	return ""
}

func (x *ProcessGuideRequest) GetPhoneHint() string {
	if x != nil {
		return x.PhoneHint
	}
	return ""
}

type ProcessGuideResponse struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// One of: delivered, wrong_format, no_data, no_match, delivery_failed.
	Outcome        string `protobuf:"bytes,1,opt,name=outcome,proto3" json:"outcome,omitempty"`
	Delivered      bool   `protobuf:"varint,2,opt,name=delivered,proto3" json:"delivered,omitempty"`
	TrackingNumber string `protobuf:"bytes,3,opt,name=tracking_number,json=trackingNumber,proto3" json:"tracking_number,omitempty"`
	Carrier        string `protobuf:"bytes,4,opt,name=carrier,proto3" json:"carrier,omitempty"`
	CustomerName   string `protobuf:"bytes,5,opt,name=customer_name,json=customerName,proto3" json:"customer_name,omitempty"`
	// Matching tier used: phone, name or address. Empty when unmatched.
	MatchedBy     string `protobuf:"bytes,6,opt,name=matched_by,json=matchedBy,proto3" json:"matched_by,omitempty"`
	Confidence    int32  `protobuf:"varint,7,opt,name=confidence,proto3" json:"confidence,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ProcessGuideResponse) Reset() {
	*x = ProcessGuideResponse{}
	mi := &file_proto_notifier_v1_notifier_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProcessGuideResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProcessGuideResponse) ProtoMessage() {}

func (x *ProcessGuideResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_notifier_v1_notifier_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProcessGuideResponse.ProtoReflect.Descriptor instead.
func (*ProcessGuideResponse) Descriptor() ([]byte, []int) {
	return file_proto_notifier_v1_notifier_proto_rawDescGZIP(), []int{1}
}

func (x *ProcessGuideResponse) GetOutcome() string {
	if x != nil {
		return x.Outcome
	}
	return ""
}

func (x *ProcessGuideResponse) GetDelivered() bool {
	if x != nil {
		return x.Delivered
	}
	return false
}

func (x *ProcessGuideResponse) GetTrackingNumber() string {
	if x != nil {
		return x.TrackingNumber
	}
	return ""
}

func (x *ProcessGuideResponse) GetCarrier() string {
	if x != nil {
		return x.Carrier
	}
	return ""
}

func (x *ProcessGuideResponse) GetCustomerName() string {
	if x != nil {
		return x.CustomerName
	}
	return ""
}

func (x *ProcessGuideResponse) GetMatchedBy() string {
	if x != nil {
		return x.MatchedBy
	}
	return ""
}

func (x *ProcessGuideResponse) GetConfidence() int32 {
	if x != nil {
		return x.Confidence
	}
	return 0
}

type GatewayHealthRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GatewayHealthRequest) Reset() {
	*x = GatewayHealthRequest{}
	mi := &file_proto_notifier_v1_notifier_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GatewayHealthRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GatewayHealthRequest) ProtoMessage() {}

func (x *GatewayHealthRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_notifier_v1_notifier_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GatewayHealthRequest.ProtoReflect.Descriptor instead.
func (*GatewayHealthRequest) Descriptor() ([]byte, []int) {
	return file_proto_notifier_v1_notifier_proto_rawDescGZIP(), []int{2}
}

type GatewayHealthResponse struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	Healthy        bool                   `protobuf:"varint,1,opt,name=healthy,proto3" json:"healthy,omitempty"`
	Message        string                 `protobuf:"bytes,2,opt,name=message,proto3" json:"message,omitempty"`
	CircuitState   string                 `protobuf:"bytes,3,opt,name=circuit_state,json=circuitState,proto3" json:"circuit_state,omitempty"`
	ResponseTimeMs int64                  `protobuf:"varint,4,opt,name=response_time_ms,json=responseTimeMs,proto3" json:"response_time_ms,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *GatewayHealthResponse) Reset() {
	*x = GatewayHealthResponse{}
	mi := &file_proto_notifier_v1_notifier_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GatewayHealthResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GatewayHealthResponse) ProtoMessage() {}

func (x *GatewayHealthResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_notifier_v1_notifier_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GatewayHealthResponse.ProtoReflect.Descriptor instead.
func (*GatewayHealthResponse) Descriptor() ([]byte, []int) {
	return file_proto_notifier_v1_notifier_proto_rawDescGZIP(), []int{3}
}

func (x *GatewayHealthResponse) GetHealthy() bool {
	if x != nil {
		return x.Healthy
	}
	return false
}

func (x *GatewayHealthResponse) GetMessage() string {
	if x != nil {
		return x.Message
	}
	return ""
}

func (x *GatewayHealthResponse) GetCircuitState() string {
	if x != nil {
		return x.CircuitState
	}
	return ""
}

func (x *GatewayHealthResponse) GetResponseTimeMs() int64 {
	if x != nil {
		return x.ResponseTimeMs
	}
	return 0
}

type ExportOrdersRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// YYYY-MM-DD, both optional. Only from -> from..today. Only to ->
	// beginning..to. Neither -> everything shipped.
	FromDate string `protobuf:"bytes,1,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"`
	ToDate   string `protobuf:"bytes,2,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`
	// "xlsx" (default) or "csv".
	Format        string `protobuf:"bytes,3,opt,name=format,proto3" json:"format,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportOrdersRequest) Reset() {
	*x = ExportOrdersRequest{}
	mi := &file_proto_notifier_v1_notifier_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportOrdersRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportOrdersRequest) ProtoMessage() {}

func (x *ExportOrdersRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_notifier_v1_notifier_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportOrdersRequest.ProtoReflect.Descriptor instead.
func (*ExportOrdersRequest) Descriptor() ([]byte, []int) {
	return file_proto_notifier_v1_notifier_proto_rawDescGZIP(), []int{4}
}

func (x *ExportOrdersRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ExportOrdersRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

func (x *ExportOrdersRequest) GetFormat() string {
	if x != nil {
		return x.Format
	}
	return ""
}

type ExportOrdersResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Content       []byte                 `protobuf:"bytes,1,opt,name=content,proto3" json:"content,omitempty"`
	Format        string                 `protobuf:"bytes,2,opt,name=format,proto3" json:"format,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportOrdersResponse) Reset() {
	*x = ExportOrdersResponse{}
	mi := &file_proto_notifier_v1_notifier_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportOrdersResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportOrdersResponse) ProtoMessage() {}

func (x *ExportOrdersResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_notifier_v1_notifier_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportOrdersResponse.ProtoReflect.Descriptor instead.
func (*ExportOrdersResponse) Descriptor() ([]byte, []int) {
	return file_proto_notifier_v1_notifier_proto_rawDescGZIP(), []int{5}
}

func (x *ExportOrdersResponse) GetContent() []byte {
	if x != nil {
		return x.Content
	}
	return nil
}

func (x *ExportOrdersResponse) GetFormat() string {
	if x != nil {
		return x.Format
	}
	return ""
}

var File_proto_notifier_v1_notifier_proto protoreflect.FileDescriptor

const file_proto_notifier_v1_notifier_proto_rawDesc = "" +
	"\n" +
	" proto/notifier/v1/notifier.proto\x12\vnotifier.v1\"H\n" +
	"\x13ProcessGuideRequest\x12\x12\n" +
	"\x04path\x18\x01 \x01(\tR\x04path\x12\x1d\n" +
	"\n" +
	"phone_hint\x18\x02 \x01(\tR\tphoneHint\"\xf5\x01\n" +
	"\x14ProcessGuideResponse\x12\x18\n" +
	"\aoutcome\x18\x01 \x01(\tR\aoutcome\x12\x1c\n" +
	"\tdelivered\x18\x02 \x01(\bR\tdelivered\x12'\n" +
	"\x0ftracking_number\x18\x03 \x01(\tR\x0etrackingNumber\x12\x18\n" +
	"\acarrier\x18\x04 \x01(\tR\acarrier\x12#\n" +
	"\rcustomer_name\x18\x05 \x01(\tR\fcustomerName\x12\x1d\n" +
	"\n" +
	"matched_by\x18\x06 \x01(\tR\tmatchedBy\x12\x1e\n" +
	"\n" +
	"confidence\x18\a \x01(\x05R\n" +
	"confidence\"\x16\n" +
	"\x14GatewayHealthRequest\"\x9a\x01\n" +
	"\x15GatewayHealthResponse\x12\x18\n" +
	"\ahealthy\x18\x01 \x01(\bR\ahealthy\x12\x18\n" +
	"\amessage\x18\x02 \x01(\tR\amessage\x12#\n" +
	"\rcircuit_state\x18\x03 \x01(\tR\fcircuitState\x12(\n" +
	"\x10response_time_ms\x18\x04 \x01(\x03R\x0eresponseTimeMs\"c\n" +
	"\x13ExportOrdersRequest\x12\x1b\n" +
	"\tfrom_date\x18\x01 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x02 \x01(\tR\x06toDate\x12\x16\n" +
	"\x06format\x18\x03 \x01(\tR\x06format\"H\n" +
	"\x14ExportOrdersResponse\x12\x18\n" +
	"\acontent\x18\x01 \x01(\fR\acontent\x12\x16\n" +
	"\x06format\x18\x02 \x01(\tR\x06format2\xbe\x01\n" +
	"\x0fNotifierService\x12S\n" +
	"\fProcessGuide\x12 .notifier.v1.ProcessGuideRequest\x1a!.notifier.v1.ProcessGuideResponse\x12V\n" +
	"\rGatewayHealth\x12!.notifier.v1.GatewayHealthRequest\x1a\".notifier.v1.GatewayHealthResponse2d\n" +
	"\rExportService\x12S\n" +
	"\fExportOrders\x12 .notifier.v1.ExportOrdersRequest\x1a!.notifier.v1.ExportOrdersResponseBDZBgithub.com/dfrestrepo/guia-notify/gen/proto/notifier/v1;notifierv1b\x06proto3"

var (
	file_proto_notifier_v1_notifier_proto_rawDescOnce sync.Once
	file_proto_notifier_v1_notifier_proto_rawDescData []byte
)

func file_proto_notifier_v1_notifier_proto_rawDescGZIP() []byte {
	file_proto_notifier_v1_notifier_proto_rawDescOnce.Do(func() {
		file_proto_notifier_v1_notifier_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_proto_notifier_v1_notifier_proto_rawDesc), len(file_proto_notifier_v1_notifier_proto_rawDesc)))
	})
	return file_proto_notifier_v1_notifier_proto_rawDescData
}

var file_proto_notifier_v1_notifier_proto_msgTypes = make([]protoimpl.MessageInfo, 6)
var file_proto_notifier_v1_notifier_proto_goTypes = []any{
	(*ProcessGuideRequest)(nil),   // 0: notifier.v1.ProcessGuideRequest
	(*ProcessGuideResponse)(nil),  // 1: notifier.v1.ProcessGuideResponse
	(*GatewayHealthRequest)(nil),  // 2: notifier.v1.GatewayHealthRequest
	(*GatewayHealthResponse)(nil), // 3: notifier.v1.GatewayHealthResponse
	(*ExportOrdersRequest)(nil),   // 4: notifier.v1.ExportOrdersRequest
	(*ExportOrdersResponse)(nil),  // 5: notifier.v1.ExportOrdersResponse
}
var file_proto_notifier_v1_notifier_proto_depIdxs = []int32{
	0, // 0: notifier.v1.NotifierService.ProcessGuide:input_type -> notifier.v1.ProcessGuideRequest
	2, // 1: notifier.v1.NotifierService.GatewayHealth:input_type -> notifier.v1.GatewayHealthRequest
	4, // 2: notifier.v1.ExportService.ExportOrders:input_type -> notifier.v1.ExportOrdersRequest
	1, // 3: notifier.v1.NotifierService.ProcessGuide:output_type -> notifier.v1.ProcessGuideResponse
	3, // 4: notifier.v1.NotifierService.GatewayHealth:output_type -> notifier.v1.GatewayHealthResponse
	5, // 5: notifier.v1.ExportService.ExportOrders:output_type -> notifier.v1.ExportOrdersResponse
	3, // [3:6] is the sub-list for method output_type
	0, // [0:3] is the sub-list for method input_type
	0, // [0:0] is the sub-list for extension type_name
	0, // [0:0] is the sub-list for extension extendee
	0, // [0:0] is the sub-list for field type_name
}

func init() { file_proto_notifier_v1_notifier_proto_init() }
func file_proto_notifier_v1_notifier_proto_init() {
	if File_proto_notifier_v1_notifier_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_proto_notifier_v1_notifier_proto_rawDesc), len(file_proto_notifier_v1_notifier_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   6,
			NumExtensions: 0,
			NumServices:   2,
		},
		GoTypes:           file_proto_notifier_v1_notifier_proto_goTypes,
		DependencyIndexes: file_proto_notifier_v1_notifier_proto_depIdxs,
		MessageInfos:      file_proto_notifier_v1_notifier_proto_msgTypes,
	}.Build()
	File_proto_notifier_v1_notifier_proto = out.File
	file_proto_notifier_v1_notifier_proto_goTypes = nil
	file_proto_notifier_v1_notifier_proto_depIdxs = nil
}
