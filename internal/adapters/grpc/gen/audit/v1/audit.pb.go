// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.10
// 	protoc        (unknown)
// source: audit/v1/audit.proto

package auditpb

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	structpb "google.golang.org/protobuf/types/known/structpb"
	timestamppb "google.golang.org/protobuf/types/known/timestamppb"
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

type EntityKind int32

const (
	EntityKind_ENTITY_KIND_UNSPECIFIED EntityKind = 0
	EntityKind_ENTITY_KIND_PERSON      EntityKind = 1
	EntityKind_ENTITY_KIND_CONTRACT    EntityKind = 2
	EntityKind_ENTITY_KIND_TASK        EntityKind = 3
)

// Enum value maps for EntityKind.
var (
	EntityKind_name = map[int32]string{
		0: "ENTITY_KIND_UNSPECIFIED",
		1: "ENTITY_KIND_PERSON",
		2: "ENTITY_KIND_CONTRACT",
		3: "ENTITY_KIND_TASK",
	}
	EntityKind_value = map[string]int32{
		"ENTITY_KIND_UNSPECIFIED": 0,
		"ENTITY_KIND_PERSON":      1,
		"ENTITY_KIND_CONTRACT":    2,
		"ENTITY_KIND_TASK":        3,
	}
)

func (x EntityKind) Enum() *EntityKind {
	p := new(EntityKind)
	*p = x
	return p
}

func (x EntityKind) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (EntityKind) Descriptor() protoreflect.EnumDescriptor {
	return file_audit_v1_audit_proto_enumTypes[0].Descriptor()
}

func (EntityKind) Type() protoreflect.EnumType {
	return &file_audit_v1_audit_proto_enumTypes[0]
}

func (x EntityKind) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use EntityKind.Descriptor instead.
func (EntityKind) EnumDescriptor() ([]byte, []int) {
	return file_audit_v1_audit_proto_rawDescGZIP(), []int{0}
}

type ChangeType int32

const (
	ChangeType_CHANGE_TYPE_UNSPECIFIED ChangeType = 0
	ChangeType_CHANGE_TYPE_CREATED     ChangeType = 1
	ChangeType_CHANGE_TYPE_CHANGED     ChangeType = 2
	ChangeType_CHANGE_TYPE_DELETED     ChangeType = 3
)

// Enum value maps for ChangeType.
var (
	ChangeType_name = map[int32]string{
		0: "CHANGE_TYPE_UNSPECIFIED",
		1: "CHANGE_TYPE_CREATED",
		2: "CHANGE_TYPE_CHANGED",
		3: "CHANGE_TYPE_DELETED",
	}
	ChangeType_value = map[string]int32{
		"CHANGE_TYPE_UNSPECIFIED": 0,
		"CHANGE_TYPE_CREATED":     1,
		"CHANGE_TYPE_CHANGED":     2,
		"CHANGE_TYPE_DELETED":     3,
	}
)

func (x ChangeType) Enum() *ChangeType {
	p := new(ChangeType)
	*p = x
	return p
}

func (x ChangeType) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (ChangeType) Descriptor() protoreflect.EnumDescriptor {
	return file_audit_v1_audit_proto_enumTypes[1].Descriptor()
}

func (ChangeType) Type() protoreflect.EnumType {
	return &file_audit_v1_audit_proto_enumTypes[1]
}

func (x ChangeType) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use ChangeType.Descriptor instead.
func (ChangeType) EnumDescriptor() ([]byte, []int) {
	return file_audit_v1_audit_proto_rawDescGZIP(), []int{1}
}

type HistoryEvent struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Kind          EntityKind             `protobuf:"varint,2,opt,name=kind,proto3,enum=audit.v1.EntityKind" json:"kind,omitempty"`
	EntityId      string                 `protobuf:"bytes,3,opt,name=entity_id,json=entityId,proto3" json:"entity_id,omitempty"`
	Change        ChangeType             `protobuf:"varint,4,opt,name=change,proto3,enum=audit.v1.ChangeType" json:"change,omitempty"`
	ActorUserId   string                 `protobuf:"bytes,5,opt,name=actor_user_id,json=actorUserId,proto3" json:"actor_user_id,omitempty"`
	OccurredAt    *timestamppb.Timestamp `protobuf:"bytes,6,opt,name=occurred_at,json=occurredAt,proto3" json:"occurred_at,omitempty"`
	Snapshot      *structpb.Struct       `protobuf:"bytes,7,opt,name=snapshot,proto3" json:"snapshot,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *HistoryEvent) Reset() {
	*x = HistoryEvent{}
	mi := &file_audit_v1_audit_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *HistoryEvent) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*HistoryEvent) ProtoMessage() {}

func (x *HistoryEvent) ProtoReflect() protoreflect.Message {
	mi := &file_audit_v1_audit_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use HistoryEvent.ProtoReflect.Descriptor instead.
func (*HistoryEvent) Descriptor() ([]byte, []int) {
	return file_audit_v1_audit_proto_rawDescGZIP(), []int{0}
}

func (x *HistoryEvent) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *HistoryEvent) GetKind() EntityKind {
	if x != nil {
		return x.Kind
	}
	return EntityKind_ENTITY_KIND_UNSPECIFIED
}

func (x *HistoryEvent) GetEntityId() string {
	if x != nil {
		return x.EntityId
	}
	return ""
}

func (x *HistoryEvent) GetChange() ChangeType {
	if x != nil {
		return x.Change
	}
	return ChangeType_CHANGE_TYPE_UNSPECIFIED
}

func (x *HistoryEvent) GetActorUserId() string {
	if x != nil {
		return x.ActorUserId
	}
	return ""
}

func (x *HistoryEvent) GetOccurredAt() *timestamppb.Timestamp {
	if x != nil {
		return x.OccurredAt
	}
	return nil
}

func (x *HistoryEvent) GetSnapshot() *structpb.Struct {
	if x != nil {
		return x.Snapshot
	}
	return nil
}

type SecurityLog struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Event         string                 `protobuf:"bytes,2,opt,name=event,proto3" json:"event,omitempty"`
	ActorUserId   string                 `protobuf:"bytes,3,opt,name=actor_user_id,json=actorUserId,proto3" json:"actor_user_id,omitempty"`
	Target        string                 `protobuf:"bytes,4,opt,name=target,proto3" json:"target,omitempty"`
	OccurredAt    *timestamppb.Timestamp `protobuf:"bytes,5,opt,name=occurred_at,json=occurredAt,proto3" json:"occurred_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SecurityLog) Reset() {
	*x = SecurityLog{}
	mi := &file_audit_v1_audit_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SecurityLog) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SecurityLog) ProtoMessage() {}

func (x *SecurityLog) ProtoReflect() protoreflect.Message {
	mi := &file_audit_v1_audit_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SecurityLog.ProtoReflect.Descriptor instead.
func (*SecurityLog) Descriptor() ([]byte, []int) {
	return file_audit_v1_audit_proto_rawDescGZIP(), []int{1}
}

func (x *SecurityLog) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *SecurityLog) GetEvent() string {
	if x != nil {
		return x.Event
	}
	return ""
}

func (x *SecurityLog) GetActorUserId() string {
	if x != nil {
		return x.ActorUserId
	}
	return ""
}

func (x *SecurityLog) GetTarget() string {
	if x != nil {
		return x.Target
	}
	return ""
}

func (x *SecurityLog) GetOccurredAt() *timestamppb.Timestamp {
	if x != nil {
		return x.OccurredAt
	}
	return nil
}

type ListHistoryRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Limit         int32                  `protobuf:"varint,1,opt,name=limit,proto3" json:"limit,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListHistoryRequest) Reset() {
	*x = ListHistoryRequest{}
	mi := &file_audit_v1_audit_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListHistoryRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListHistoryRequest) ProtoMessage() {}

func (x *ListHistoryRequest) ProtoReflect() protoreflect.Message {
	mi := &file_audit_v1_audit_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListHistoryRequest.ProtoReflect.Descriptor instead.
func (*ListHistoryRequest) Descriptor() ([]byte, []int) {
	return file_audit_v1_audit_proto_rawDescGZIP(), []int{2}
}

func (x *ListHistoryRequest) GetLimit() int32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

type ListHistoryResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Events        []*HistoryEvent        `protobuf:"bytes,1,rep,name=events,proto3" json:"events,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListHistoryResponse) Reset() {
	*x = ListHistoryResponse{}
	mi := &file_audit_v1_audit_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListHistoryResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListHistoryResponse) ProtoMessage() {}

func (x *ListHistoryResponse) ProtoReflect() protoreflect.Message {
	mi := &file_audit_v1_audit_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListHistoryResponse.ProtoReflect.Descriptor instead.
func (*ListHistoryResponse) Descriptor() ([]byte, []int) {
	return file_audit_v1_audit_proto_rawDescGZIP(), []int{3}
}

func (x *ListHistoryResponse) GetEvents() []*HistoryEvent {
	if x != nil {
		return x.Events
	}
	return nil
}

type ListSecurityLogsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Limit         int32                  `protobuf:"varint,1,opt,name=limit,proto3" json:"limit,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListSecurityLogsRequest) Reset() {
	*x = ListSecurityLogsRequest{}
	mi := &file_audit_v1_audit_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListSecurityLogsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListSecurityLogsRequest) ProtoMessage() {}

func (x *ListSecurityLogsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_audit_v1_audit_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListSecurityLogsRequest.ProtoReflect.Descriptor instead.
func (*ListSecurityLogsRequest) Descriptor() ([]byte, []int) {
	return file_audit_v1_audit_proto_rawDescGZIP(), []int{4}
}

func (x *ListSecurityLogsRequest) GetLimit() int32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

type ListSecurityLogsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Logs          []*SecurityLog         `protobuf:"bytes,1,rep,name=logs,proto3" json:"logs,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListSecurityLogsResponse) Reset() {
	*x = ListSecurityLogsResponse{}
	mi := &file_audit_v1_audit_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListSecurityLogsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListSecurityLogsResponse) ProtoMessage() {}

func (x *ListSecurityLogsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_audit_v1_audit_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListSecurityLogsResponse.ProtoReflect.Descriptor instead.
func (*ListSecurityLogsResponse) Descriptor() ([]byte, []int) {
	return file_audit_v1_audit_proto_rawDescGZIP(), []int{5}
}

func (x *ListSecurityLogsResponse) GetLogs() []*SecurityLog {
	if x != nil {
		return x.Logs
	}
	return nil
}

var File_audit_v1_audit_proto protoreflect.FileDescriptor

const file_audit_v1_audit_proto_rawDesc = "" +
	"\n" +
	"\x14audit/v1/audit.proto\x12\baudit.v1\x1a\x1cgoogle/protobuf/struct.proto\x1a\x1fgoogle/protobuf/timestamp.proto\"\xa9\x02\n" +
	"\fHistoryEvent\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12(\n" +
	"\x04kind\x18\x02 \x01(\x0e2\x14.audit.v1.EntityKindR\x04kind\x12\x1b\n" +
	"\tentity_id\x18\x03 \x01(\tR\bentityId\x12,\n" +
	"\x06change\x18\x04 \x01(\x0e2\x14.audit.v1.ChangeTypeR\x06change\x12\"\n" +
	"\ractor_user_id\x18\x05 \x01(\tR\vactorUserId\x12;\n" +
	"\voccurred_at\x18\x06 \x01(\v2\x1a.google.protobuf.TimestampR\n" +
	"occurredAt\x123\n" +
	"\bsnapshot\x18\a \x01(\v2\x17.google.protobuf.StructR\bsnapshot\"\xac\x01\n" +
	"\vSecurityLog\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x14\n" +
	"\x05event\x18\x02 \x01(\tR\x05event\x12\"\n" +
	"\ractor_user_id\x18\x03 \x01(\tR\vactorUserId\x12\x16\n" +
	"\x06target\x18\x04 \x01(\tR\x06target\x12;\n" +
	"\voccurred_at\x18\x05 \x01(\v2\x1a.google.protobuf.TimestampR\n" +
	"occurredAt\"*\n" +
	"\x12ListHistoryRequest\x12\x14\n" +
	"\x05limit\x18\x01 \x01(\x05R\x05limit\"E\n" +
	"\x13ListHistoryResponse\x12.\n" +
	"\x06events\x18\x01 \x03(\v2\x16.audit.v1.HistoryEventR\x06events\"/\n" +
	"\x17ListSecurityLogsRequest\x12\x14\n" +
	"\x05limit\x18\x01 \x01(\x05R\x05limit\"E\n" +
	"\x18ListSecurityLogsResponse\x12)\n" +
	"\x04logs\x18\x01 \x03(\v2\x15.audit.v1.SecurityLogR\x04logs*q\n" +
	"\n" +
	"EntityKind\x12\x1b\n" +
	"\x17ENTITY_KIND_UNSPECIFIED\x10\x00\x12\x16\n" +
	"\x12ENTITY_KIND_PERSON\x10\x01\x12\x18\n" +
	"\x14ENTITY_KIND_CONTRACT\x10\x02\x12\x14\n" +
	"\x10ENTITY_KIND_TASK\x10\x03*t\n" +
	"\n" +
	"ChangeType\x12\x1b\n" +
	"\x17CHANGE_TYPE_UNSPECIFIED\x10\x00\x12\x17\n" +
	"\x13CHANGE_TYPE_CREATED\x10\x01\x12\x17\n" +
	"\x13CHANGE_TYPE_CHANGED\x10\x02\x12\x17\n" +
	"\x13CHANGE_TYPE_DELETED\x10\x032\xb5\x01\n" +
	"\fAuditService\x12J\n" +
	"\vListHistory\x12\x1c.audit.v1.ListHistoryRequest\x1a\x1d.audit.v1.ListHistoryResponse\x12Y\n" +
	"\x10ListSecurityLogs\x12!.audit.v1.ListSecurityLogsRequest\x1a\".audit.v1.ListSecurityLogsResponseBQZOgithub.com/ogurasousui/team-tracker/internal/adapters/grpc/gen/audit/v1;auditpbb\x06proto3"

var (
	file_audit_v1_audit_proto_rawDescOnce sync.Once
	file_audit_v1_audit_proto_rawDescData []byte
)

func file_audit_v1_audit_proto_rawDescGZIP() []byte {
	file_audit_v1_audit_proto_rawDescOnce.Do(func() {
		file_audit_v1_audit_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_audit_v1_audit_proto_rawDesc), len(file_audit_v1_audit_proto_rawDesc)))
	})
	return file_audit_v1_audit_proto_rawDescData
}

var file_audit_v1_audit_proto_enumTypes = make([]protoimpl.EnumInfo, 2)
var file_audit_v1_audit_proto_msgTypes = make([]protoimpl.MessageInfo, 6)
var file_audit_v1_audit_proto_goTypes = []any{
	(EntityKind)(0),                  // 0: audit.v1.EntityKind
	(ChangeType)(0),                  // 1: audit.v1.ChangeType
	(*HistoryEvent)(nil),             // 2: audit.v1.HistoryEvent
	(*SecurityLog)(nil),              // 3: audit.v1.SecurityLog
	(*ListHistoryRequest)(nil),       // 4: audit.v1.ListHistoryRequest
	(*ListHistoryResponse)(nil),      // 5: audit.v1.ListHistoryResponse
	(*ListSecurityLogsRequest)(nil),  // 6: audit.v1.ListSecurityLogsRequest
	(*ListSecurityLogsResponse)(nil), // 7: audit.v1.ListSecurityLogsResponse
	(*timestamppb.Timestamp)(nil),    // 8: google.protobuf.Timestamp
	(*structpb.Struct)(nil),          // 9: google.protobuf.Struct
}
var file_audit_v1_audit_proto_depIdxs = []int32{
	0, // 0: audit.v1.HistoryEvent.kind:type_name -> audit.v1.EntityKind
	1, // 1: audit.v1.HistoryEvent.change:type_name -> audit.v1.ChangeType
	8, // 2: audit.v1.HistoryEvent.occurred_at:type_name -> google.protobuf.Timestamp
	9, // 3: audit.v1.HistoryEvent.snapshot:type_name -> google.protobuf.Struct
	8, // 4: audit.v1.SecurityLog.occurred_at:type_name -> google.protobuf.Timestamp
	2, // 5: audit.v1.ListHistoryResponse.events:type_name -> audit.v1.HistoryEvent
	3, // 6: audit.v1.ListSecurityLogsResponse.logs:type_name -> audit.v1.SecurityLog
	4, // 7: audit.v1.AuditService.ListHistory:input_type -> audit.v1.ListHistoryRequest
	6, // 8: audit.v1.AuditService.ListSecurityLogs:input_type -> audit.v1.ListSecurityLogsRequest
	5, // 9: audit.v1.AuditService.ListHistory:output_type -> audit.v1.ListHistoryResponse
	7, // 10: audit.v1.AuditService.ListSecurityLogs:output_type -> audit.v1.ListSecurityLogsResponse
	9, // [9:11] is the sub-list for method output_type
	7, // [7:9] is the sub-list for method input_type
	7, // [7:7] is the sub-list for extension type_name
	7, // [7:7] is the sub-list for extension extendee
	0, // [0:7] is the sub-list for field type_name
}

func init() { file_audit_v1_audit_proto_init() }
func file_audit_v1_audit_proto_init() {
	if File_audit_v1_audit_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_audit_v1_audit_proto_rawDesc), len(file_audit_v1_audit_proto_rawDesc)),
			NumEnums:      2,
			NumMessages:   6,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_audit_v1_audit_proto_goTypes,
		DependencyIndexes: file_audit_v1_audit_proto_depIdxs,
		EnumInfos:         file_audit_v1_audit_proto_enumTypes,
		MessageInfos:      file_audit_v1_audit_proto_msgTypes,
	}.Build()
	File_audit_v1_audit_proto = out.File
	file_audit_v1_audit_proto_goTypes = nil
	file_audit_v1_audit_proto_depIdxs = nil
}
